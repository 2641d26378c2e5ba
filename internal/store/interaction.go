package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateInteractionParams represents parameters for recording a handled interaction
type CreateInteractionParams struct {
	AdminID    uuid.UUID
	ExternalID string
	Type       string
	SenderRole string
	Content    string
	PostID     *string
	ParentID   *string
}

const sqlListInteractionExternalIDs = `
SELECT external_id
FROM interactions
`

// ListInteractionExternalIDs returns every external id ever recorded
func (s *Store) ListInteractionExternalIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids, sqlListInteractionExternalIDs)
	if err != nil {
		s.logger.Error(ctx, "failed to list interaction external ids", err)
		return nil, fmt.Errorf("failed to list interaction external ids: %w", err)
	}
	return ids, nil
}

const sqlInteractionExists = `
SELECT EXISTS (SELECT 1 FROM interactions WHERE external_id = $1)
`

// InteractionExists checks whether an external id has been recorded
func (s *Store) InteractionExists(ctx context.Context, externalID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlInteractionExists, externalID)
	if err != nil {
		s.logger.Error(ctx, "failed to check interaction existence", err)
		return false, fmt.Errorf("failed to check interaction existence: %w", err)
	}
	return exists, nil
}

const sqlCreateInteraction = `
INSERT INTO interactions (admin_id, external_id, type, sender_role, content, post_id, parent_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, admin_id, external_id, type, sender_role, content, post_id, parent_id, created_at
`

// CreateInteraction records a handled interaction. A repeated external id returns ErrDuplicate.
func (s *Store) CreateInteraction(ctx context.Context, params CreateInteractionParams) (Interaction, error) {
	var interaction Interaction
	err := s.db.GetContext(ctx, &interaction, sqlCreateInteraction,
		params.AdminID,
		params.ExternalID,
		params.Type,
		params.SenderRole,
		params.Content,
		params.PostID,
		params.ParentID)
	if err != nil {
		if isUniqueViolation(err) {
			return Interaction{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create interaction", err)
		return Interaction{}, fmt.Errorf("failed to create interaction: %w", err)
	}
	return interaction, nil
}

const sqlListInteractionsByAdmin = `
SELECT id, admin_id, external_id, type, sender_role, content, post_id, parent_id, created_at
FROM interactions
WHERE admin_id = $1
ORDER BY created_at DESC
LIMIT $2
`

// ListInteractionsByAdmin returns the most recent interactions for an admin
func (s *Store) ListInteractionsByAdmin(ctx context.Context, adminID uuid.UUID, limit int) ([]Interaction, error) {
	interactions := []Interaction{}
	err := s.db.SelectContext(ctx, &interactions, sqlListInteractionsByAdmin, adminID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list interactions", err)
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return interactions, nil
}
