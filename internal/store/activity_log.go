package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateActivityLogParams represents parameters for an activity log entry
type CreateActivityLogParams struct {
	AdminID uuid.UUID
	Level   string
	Action  string
	Details string
}

const sqlCreateActivityLog = `
INSERT INTO activity_logs (admin_id, level, action, details)
VALUES ($1, $2, $3, $4)
RETURNING id, admin_id, level, action, details, created_at
`

// CreateActivityLog appends an entry to an admin's activity feed
func (s *Store) CreateActivityLog(ctx context.Context, params CreateActivityLogParams) (ActivityLog, error) {
	var entry ActivityLog
	err := s.db.GetContext(ctx, &entry, sqlCreateActivityLog,
		params.AdminID,
		params.Level,
		params.Action,
		params.Details)
	if err != nil {
		s.logger.Error(ctx, "failed to create activity log", err)
		return ActivityLog{}, fmt.Errorf("failed to create activity log: %w", err)
	}
	return entry, nil
}

const sqlListActivityLogs = `
SELECT id, admin_id, level, action, details, created_at
FROM activity_logs
WHERE admin_id = $1
ORDER BY created_at DESC
LIMIT $2
`

// ListActivityLogs returns an admin's most recent activity
func (s *Store) ListActivityLogs(ctx context.Context, adminID uuid.UUID, limit int) ([]ActivityLog, error) {
	entries := []ActivityLog{}
	err := s.db.SelectContext(ctx, &entries, sqlListActivityLogs, adminID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list activity logs", err)
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return entries, nil
}
