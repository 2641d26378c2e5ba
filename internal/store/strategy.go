package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateStrategyParams represents parameters for creating a strategy
type CreateStrategyParams struct {
	AdminID         uuid.UUID
	Type            string
	Content         StrategyContent
	ExpectedOutcome string
}

const strategyColumns = `id, admin_id, type, content, status, expected_outcome, created_at, updated_at`

const sqlCreateStrategy = `
INSERT INTO strategies (admin_id, type, content, expected_outcome)
VALUES ($1, $2, $3, $4)
RETURNING ` + strategyColumns

// CreateStrategyWithPosts creates an active strategy and its scheduled posts in one transaction
func (s *Store) CreateStrategyWithPosts(ctx context.Context, params CreateStrategyParams, posts []CreatePostParams) (Strategy, []Post, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Strategy{}, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var strategy Strategy
	err = tx.GetContext(ctx, &strategy, sqlCreateStrategy,
		params.AdminID,
		params.Type,
		params.Content,
		params.ExpectedOutcome)
	if err != nil {
		s.logger.Error(ctx, "failed to create strategy", err)
		return Strategy{}, nil, fmt.Errorf("failed to create strategy: %w", err)
	}

	created := make([]Post, 0, len(posts))
	for _, p := range posts {
		p.AdminID = strategy.AdminID
		p.StrategyID = &strategy.ID
		var post Post
		err = tx.GetContext(ctx, &post, sqlCreatePost,
			p.AdminID,
			p.StrategyID,
			p.Content,
			p.ImageURL,
			p.ScheduledTime)
		if err != nil {
			s.logger.Error(ctx, "failed to create strategy post", err)
			return Strategy{}, nil, fmt.Errorf("failed to create strategy post: %w", err)
		}
		created = append(created, post)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Strategy{}, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return strategy, created, nil
}

const sqlGetStrategyByID = `
SELECT ` + strategyColumns + `
FROM strategies
WHERE id = $1 AND admin_id = $2
`

// GetStrategyByID retrieves a strategy owned by the given admin
func (s *Store) GetStrategyByID(ctx context.Context, adminID, strategyID uuid.UUID) (Strategy, error) {
	var strategy Strategy
	err := s.db.GetContext(ctx, &strategy, sqlGetStrategyByID, strategyID, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Strategy{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get strategy", err)
		return Strategy{}, fmt.Errorf("failed to get strategy: %w", err)
	}
	return strategy, nil
}

const sqlListStrategiesByAdmin = `
SELECT ` + strategyColumns + `
FROM strategies
WHERE admin_id = $1
ORDER BY created_at DESC
`

// ListStrategiesByAdmin returns every strategy for an admin, newest first
func (s *Store) ListStrategiesByAdmin(ctx context.Context, adminID uuid.UUID) ([]Strategy, error) {
	strategies := []Strategy{}
	err := s.db.SelectContext(ctx, &strategies, sqlListStrategiesByAdmin, adminID)
	if err != nil {
		s.logger.Error(ctx, "failed to list strategies", err)
		return nil, fmt.Errorf("failed to list strategies: %w", err)
	}
	return strategies, nil
}

const sqlListActiveStrategies = `
SELECT ` + strategyColumns + `
FROM strategies
WHERE status = 'active'
ORDER BY created_at
`

// ListActiveStrategies returns every active strategy across admins
func (s *Store) ListActiveStrategies(ctx context.Context) ([]Strategy, error) {
	var strategies []Strategy
	err := s.db.SelectContext(ctx, &strategies, sqlListActiveStrategies)
	if err != nil {
		s.logger.Error(ctx, "failed to list active strategies", err)
		return nil, fmt.Errorf("failed to list active strategies: %w", err)
	}
	return strategies, nil
}

const sqlListAdminsWithActiveStrategy = `
SELECT DISTINCT admin_id
FROM strategies
WHERE status = 'active'
`

// ListAdminsWithActiveStrategy returns the distinct admins that have at least one active strategy
func (s *Store) ListAdminsWithActiveStrategy(ctx context.Context) ([]uuid.UUID, error) {
	var adminIDs []uuid.UUID
	err := s.db.SelectContext(ctx, &adminIDs, sqlListAdminsWithActiveStrategy)
	if err != nil {
		s.logger.Error(ctx, "failed to list admins with active strategy", err)
		return nil, fmt.Errorf("failed to list admins with active strategy: %w", err)
	}
	return adminIDs, nil
}

const sqlUpdateStrategyStatus = `
UPDATE strategies
SET status = $2, updated_at = $3
WHERE id = $1 AND status = 'active'
`

// UpdateStrategyStatus moves an active strategy to a terminal status.
// Returns ErrNotFound when the strategy does not exist or is no longer active.
func (s *Store) UpdateStrategyStatus(ctx context.Context, strategyID uuid.UUID, status string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateStrategyStatus, strategyID, status, time.Now().UTC())
	if err != nil {
		s.logger.Error(ctx, "failed to update strategy status", err)
		return fmt.Errorf("failed to update strategy status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
