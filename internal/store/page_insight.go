package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreatePageInsightParams represents a daily page insights snapshot
type CreatePageInsightParams struct {
	AdminID    uuid.UUID
	PageID     string
	Reach      int
	Engagement int
}

const sqlCreatePageInsight = `
INSERT INTO page_insights (admin_id, page_id, reach, engagement)
VALUES ($1, $2, $3, $4)
RETURNING id, admin_id, page_id, reach, engagement, captured_at
`

// CreatePageInsight stores a page insights snapshot
func (s *Store) CreatePageInsight(ctx context.Context, params CreatePageInsightParams) (PageInsight, error) {
	var insight PageInsight
	err := s.db.GetContext(ctx, &insight, sqlCreatePageInsight,
		params.AdminID,
		params.PageID,
		params.Reach,
		params.Engagement)
	if err != nil {
		s.logger.Error(ctx, "failed to create page insight", err)
		return PageInsight{}, fmt.Errorf("failed to create page insight: %w", err)
	}
	return insight, nil
}

const sqlListPageInsights = `
SELECT id, admin_id, page_id, reach, engagement, captured_at
FROM page_insights
WHERE admin_id = $1
ORDER BY captured_at DESC
LIMIT $2
`

// ListPageInsights returns the most recent snapshots for an admin's page
func (s *Store) ListPageInsights(ctx context.Context, adminID uuid.UUID, limit int) ([]PageInsight, error) {
	insights := []PageInsight{}
	err := s.db.SelectContext(ctx, &insights, sqlListPageInsights, adminID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list page insights", err)
		return nil, fmt.Errorf("failed to list page insights: %w", err)
	}
	return insights, nil
}
