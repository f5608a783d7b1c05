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

// CreateResume persists a freshly generated resume at version 1.
func (db *DB) CreateResume(ctx context.Context, resume *types.GeneratedResume) (*types.GeneratedResume, error) {
	var analysis []byte
	if resume.Analysis != nil {
		data, err := json.Marshal(resume.Analysis)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal analysis: %w", err)
		}
		analysis = data
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO generated_resumes
		   (template_id, job_description, document_output, rendered_artifact_path,
		    match_score, matched_skills, missing_skills, analysis)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, version, created_at`,
		resume.TemplateID, resume.JobDescription, resume.DocumentOutput, resume.RenderedArtifactPath,
		resume.MatchScore, marshalList(resume.MatchedSkills), marshalList(resume.MissingSkills), analysis,
	).Scan(&resume.ID, &resume.Version, &resume.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return resume, nil
}

// GetResume retrieves a resume by id.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.GeneratedResume, error) {
	var r types.GeneratedResume
	var matched, missing, analysis []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, template_id, job_description, document_output, rendered_artifact_path,
		        match_score, matched_skills, missing_skills, analysis, version, created_at
		 FROM generated_resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.TemplateID, &r.JobDescription, &r.DocumentOutput, &r.RenderedArtifactPath,
		&r.MatchScore, &matched, &missing, &analysis, &r.Version, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Kind: "resume", ID: id}
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	r.MatchedSkills = unmarshalList(matched)
	r.MissingSkills = unmarshalList(missing)
	if len(analysis) > 0 {
		var breakdown types.MatchScoreBreakdown
		if err := json.Unmarshal(analysis, &breakdown); err == nil {
			r.Analysis = &breakdown
		}
	}
	return &r, nil
}

// ListResumes returns recent resumes without their analysis payloads.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]types.GeneratedResume, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, template_id, job_description, document_output, rendered_artifact_path,
		        match_score, matched_skills, missing_skills, version, created_at
		 FROM generated_resumes ORDER BY created_at DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []types.GeneratedResume
	for rows.Next() {
		var r types.GeneratedResume
		var matched, missing []byte
		if err := rows.Scan(&r.ID, &r.TemplateID, &r.JobDescription, &r.DocumentOutput, &r.RenderedArtifactPath,
			&r.MatchScore, &matched, &missing, &r.Version, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		r.MatchedSkills = unmarshalList(matched)
		r.MissingSkills = unmarshalList(missing)
		resumes = append(resumes, r)
	}
	return resumes, rows.Err()
}

// UpdateResumeDocument replaces the document under an optimistic version
// check and returns the new version. A stale expectedVersion yields a
// VersionConflictError without modifying the row.
func (db *DB) UpdateResumeDocument(ctx context.Context, id uuid.UUID, document string, expectedVersion int) (int, error) {
	var newVersion int
	err := db.pool.QueryRow(ctx,
		`UPDATE generated_resumes
		 SET document_output = $2, version = version + 1
		 WHERE id = $1 AND version = $3
		 RETURNING version`,
		id, document, expectedVersion,
	).Scan(&newVersion)
	if err == nil {
		return newVersion, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to update resume document: %w", err)
	}

	// Distinguish a missing resume from a concurrent modification.
	var exists bool
	if checkErr := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM generated_resumes WHERE id = $1)`, id,
	).Scan(&exists); checkErr != nil {
		return 0, fmt.Errorf("failed to update resume document: %w", checkErr)
	}
	if !exists {
		return 0, &NotFoundError{Kind: "resume", ID: id}
	}
	return 0, &VersionConflictError{ID: id, Expected: expectedVersion}
}

// DeleteResume removes a resume and its chat history.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM generated_resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Kind: "resume", ID: id}
	}
	return nil
}
