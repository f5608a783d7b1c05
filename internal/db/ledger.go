package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-engine/internal/types"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Skill lists are stored as JSONB at the persistence edge; everywhere else
// they are typed slices.

func marshalList(items []string) []byte {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return data
}

func unmarshalList(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

// CreateSkill inserts a skill into the ledger.
func (db *DB) CreateSkill(ctx context.Context, skill types.Skill) (*types.Skill, error) {
	if skill.Proficiency == 0 {
		skill.Proficiency = 3
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, proficiency)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		skill.Name, skill.Category, skill.Proficiency,
	).Scan(&skill.ID, &skill.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return &skill, nil
}

// ListSkills returns all ledger skills in insertion order.
func (db *DB) ListSkills(ctx context.Context) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, category, proficiency, created_at
		 FROM skills ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// UpdateSkill replaces a skill's mutable fields.
func (db *DB) UpdateSkill(ctx context.Context, skill types.Skill) (*types.Skill, error) {
	err := db.pool.QueryRow(ctx,
		`UPDATE skills SET name = $2, category = $3, proficiency = $4
		 WHERE id = $1
		 RETURNING created_at`,
		skill.ID, skill.Name, skill.Category, skill.Proficiency,
	).Scan(&skill.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Kind: "skill", ID: skill.ID}
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return &skill, nil
}

// DeleteSkill removes a skill from the ledger.
func (db *DB) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Kind: "skill", ID: id}
	}
	return nil
}

// CreateProject inserts a project into the ledger.
func (db *DB) CreateProject(ctx context.Context, project types.Project) (*types.Project, error) {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, technologies, impact, domain, url, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		project.Title, project.Description, marshalList(project.Technologies),
		project.Impact, project.Domain, project.URL, project.StartDate, project.EndDate,
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// ListProjects returns all ledger projects in insertion order.
func (db *DB) ListProjects(ctx context.Context) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, technologies, impact, domain, url, start_date, end_date, created_at
		 FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		var p types.Project
		var technologies []byte
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &technologies,
			&p.Impact, &p.Domain, &p.URL, &p.StartDate, &p.EndDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Technologies = unmarshalList(technologies)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProject replaces a project's mutable fields.
func (db *DB) UpdateProject(ctx context.Context, project types.Project) (*types.Project, error) {
	err := db.pool.QueryRow(ctx,
		`UPDATE projects SET title = $2, description = $3, technologies = $4,
		        impact = $5, domain = $6, url = $7, start_date = $8, end_date = $9
		 WHERE id = $1
		 RETURNING created_at`,
		project.ID, project.Title, project.Description, marshalList(project.Technologies),
		project.Impact, project.Domain, project.URL, project.StartDate, project.EndDate,
	).Scan(&project.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Kind: "project", ID: project.ID}
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

// DeleteProject removes a project from the ledger.
func (db *DB) DeleteProject(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Kind: "project", ID: id}
	}
	return nil
}

// CreateExperience inserts a work experience into the ledger.
func (db *DB) CreateExperience(ctx context.Context, exp types.Experience) (*types.Experience, error) {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO experiences (company, role, description, technologies, location, is_current, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		exp.Company, exp.Role, exp.Description, marshalList(exp.Technologies),
		exp.Location, exp.IsCurrent, exp.StartDate, exp.EndDate,
	).Scan(&exp.ID, &exp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return &exp, nil
}

// ListExperiences returns all work experiences in insertion order.
func (db *DB) ListExperiences(ctx context.Context) ([]types.Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, company, role, description, technologies, location, is_current, start_date, end_date, created_at
		 FROM experiences ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var experiences []types.Experience
	for rows.Next() {
		var e types.Experience
		var technologies []byte
		if err := rows.Scan(&e.ID, &e.Company, &e.Role, &e.Description, &technologies,
			&e.Location, &e.IsCurrent, &e.StartDate, &e.EndDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		e.Technologies = unmarshalList(technologies)
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

// UpdateExperience replaces a work experience's mutable fields.
func (db *DB) UpdateExperience(ctx context.Context, exp types.Experience) (*types.Experience, error) {
	err := db.pool.QueryRow(ctx,
		`UPDATE experiences SET company = $2, role = $3, description = $4, technologies = $5,
		        location = $6, is_current = $7, start_date = $8, end_date = $9
		 WHERE id = $1
		 RETURNING created_at`,
		exp.ID, exp.Company, exp.Role, exp.Description, marshalList(exp.Technologies),
		exp.Location, exp.IsCurrent, exp.StartDate, exp.EndDate,
	).Scan(&exp.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Kind: "experience", ID: exp.ID}
		}
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return &exp, nil
}

// DeleteExperience removes a work experience from the ledger.
func (db *DB) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Kind: "experience", ID: id}
	}
	return nil
}

// CreateAchievement inserts an achievement into the ledger.
func (db *DB) CreateAchievement(ctx context.Context, ach types.Achievement) (*types.Achievement, error) {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO achievements (title, description, date)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		ach.Title, ach.Description, ach.Date,
	).Scan(&ach.ID, &ach.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}
	return &ach, nil
}

// ListAchievements returns all achievements in insertion order.
func (db *DB) ListAchievements(ctx context.Context) ([]types.Achievement, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, date, created_at
		 FROM achievements ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []types.Achievement
	for rows.Next() {
		var a types.Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Date, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// UpdateAchievement replaces an achievement's mutable fields.
func (db *DB) UpdateAchievement(ctx context.Context, ach types.Achievement) (*types.Achievement, error) {
	err := db.pool.QueryRow(ctx,
		`UPDATE achievements SET title = $2, description = $3, date = $4
		 WHERE id = $1
		 RETURNING created_at`,
		ach.ID, ach.Title, ach.Description, ach.Date,
	).Scan(&ach.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Kind: "achievement", ID: ach.ID}
		}
		return nil, fmt.Errorf("failed to update achievement: %w", err)
	}
	return &ach, nil
}

// DeleteAchievement removes an achievement from the ledger.
func (db *DB) DeleteAchievement(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Kind: "achievement", ID: id}
	}
	return nil
}
