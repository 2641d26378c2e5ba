package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCorrectiveActionParams holds a diagnosis and the emergency post that answers it
type CreateCorrectiveActionParams struct {
	AdminID       uuid.UUID
	StrategyID    uuid.UUID
	AverageReach  float64
	Threshold     float64
	Diagnosis     string
	PostContent   string
	ImageURL      *string
	ScheduledTime time.Time
}

const sqlCreateStrategyDiagnosis = `
INSERT INTO strategy_diagnoses (admin_id, strategy_id, average_reach, threshold, diagnosis, corrective_post_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, admin_id, strategy_id, average_reach, threshold, diagnosis, corrective_post_id, created_at
`

// CreateCorrectiveAction inserts the pending emergency post and its diagnosis record together
func (s *Store) CreateCorrectiveAction(ctx context.Context, params CreateCorrectiveActionParams) (StrategyDiagnosis, Post, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return StrategyDiagnosis{}, Post{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var post Post
	err = tx.GetContext(ctx, &post, sqlCreatePost,
		params.AdminID,
		params.StrategyID,
		params.PostContent,
		params.ImageURL,
		params.ScheduledTime)
	if err != nil {
		s.logger.Error(ctx, "failed to create corrective post", err)
		return StrategyDiagnosis{}, Post{}, fmt.Errorf("failed to create corrective post: %w", err)
	}

	var diagnosis StrategyDiagnosis
	err = tx.GetContext(ctx, &diagnosis, sqlCreateStrategyDiagnosis,
		params.AdminID,
		params.StrategyID,
		params.AverageReach,
		params.Threshold,
		params.Diagnosis,
		post.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to create strategy diagnosis", err)
		return StrategyDiagnosis{}, Post{}, fmt.Errorf("failed to create strategy diagnosis: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return StrategyDiagnosis{}, Post{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return diagnosis, post, nil
}

const sqlListStrategyDiagnoses = `
SELECT id, admin_id, strategy_id, average_reach, threshold, diagnosis, corrective_post_id, created_at
FROM strategy_diagnoses
WHERE strategy_id = $1 AND admin_id = $2
ORDER BY created_at DESC
`

// ListStrategyDiagnoses returns the corrective history of a strategy
func (s *Store) ListStrategyDiagnoses(ctx context.Context, adminID, strategyID uuid.UUID) ([]StrategyDiagnosis, error) {
	diagnoses := []StrategyDiagnosis{}
	err := s.db.SelectContext(ctx, &diagnoses, sqlListStrategyDiagnoses, strategyID, adminID)
	if err != nil {
		s.logger.Error(ctx, "failed to list strategy diagnoses", err)
		return nil, fmt.Errorf("failed to list strategy diagnoses: %w", err)
	}
	return diagnoses, nil
}
