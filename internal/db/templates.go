package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-engine/internal/types"
)

// CreateTemplate stores a placeholder-bearing template.
func (db *DB) CreateTemplate(ctx context.Context, tmpl types.ResumeTemplate) (*types.ResumeTemplate, error) {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resume_templates (name, content)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		tmpl.Name, tmpl.Content,
	).Scan(&tmpl.ID, &tmpl.CreatedAt, &tmpl.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return &tmpl, nil
}

// GetTemplate retrieves a template by id.
func (db *DB) GetTemplate(ctx context.Context, id uuid.UUID) (*types.ResumeTemplate, error) {
	var tmpl types.ResumeTemplate
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, content, created_at, updated_at
		 FROM resume_templates WHERE id = $1`,
		id,
	).Scan(&tmpl.ID, &tmpl.Name, &tmpl.Content, &tmpl.CreatedAt, &tmpl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Kind: "template", ID: id}
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &tmpl, nil
}

// ListTemplates returns all templates, newest first.
func (db *DB) ListTemplates(ctx context.Context) ([]types.ResumeTemplate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, content, created_at, updated_at
		 FROM resume_templates ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []types.ResumeTemplate
	for rows.Next() {
		var t types.ResumeTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// DeleteTemplate removes a template. Resumes generated from it keep their
// documents; only the reference is cleared.
func (db *DB) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resume_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Kind: "template", ID: id}
	}
	return nil
}
