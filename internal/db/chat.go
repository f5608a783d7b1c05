package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-engine/internal/types"
)

// AppendChatTurns appends turns to a resume's refinement history in order.
func (db *DB) AppendChatTurns(ctx context.Context, resumeID uuid.UUID, turns []types.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, turn := range turns {
		batch.Queue(
			`INSERT INTO chat_turns (resume_id, role, content) VALUES ($1, $2, $3)`,
			resumeID, turn.Role, turn.Content)
	}

	results := db.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range turns {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to append chat turn: %w", err)
		}
	}
	return nil
}

// ListChatTurns returns a resume's refinement history in append order.
func (db *DB) ListChatTurns(ctx context.Context, resumeID uuid.UUID) ([]types.ChatTurn, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT role, content FROM chat_turns WHERE resume_id = $1 ORDER BY id`,
		resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat turns: %w", err)
	}
	defer rows.Close()

	var turns []types.ChatTurn
	for rows.Next() {
		var t types.ChatTurn
		if err := rows.Scan(&t.Role, &t.Content); err != nil {
			return nil, fmt.Errorf("failed to scan chat turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}
