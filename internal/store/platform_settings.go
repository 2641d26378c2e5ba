package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// UpsertPlatformSettingsParams represents a page connection for an admin
type UpsertPlatformSettingsParams struct {
	AdminID           uuid.UUID
	PageID            string
	PageName          *string
	AccessToken       string
	NotificationEmail *string
	NotificationPhone *string
}

const platformSettingsColumns = `admin_id, page_id, page_name, access_token, notification_email, notification_phone, created_at, updated_at`

const sqlUpsertPlatformSettings = `
INSERT INTO platform_settings (admin_id, page_id, page_name, access_token, notification_email, notification_phone)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (admin_id) DO UPDATE
SET page_id = EXCLUDED.page_id,
    page_name = EXCLUDED.page_name,
    access_token = EXCLUDED.access_token,
    notification_email = EXCLUDED.notification_email,
    notification_phone = EXCLUDED.notification_phone,
    updated_at = NOW()
RETURNING ` + platformSettingsColumns

// UpsertPlatformSettings creates or replaces an admin's page connection
func (s *Store) UpsertPlatformSettings(ctx context.Context, params UpsertPlatformSettingsParams) (PlatformSettings, error) {
	var settings PlatformSettings
	err := s.db.GetContext(ctx, &settings, sqlUpsertPlatformSettings,
		params.AdminID,
		params.PageID,
		params.PageName,
		params.AccessToken,
		params.NotificationEmail,
		params.NotificationPhone)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert platform settings", err)
		return PlatformSettings{}, fmt.Errorf("failed to upsert platform settings: %w", err)
	}
	return settings, nil
}

const sqlGetPlatformSettings = `
SELECT ` + platformSettingsColumns + `
FROM platform_settings
WHERE admin_id = $1
`

// GetPlatformSettings returns an admin's page connection or ErrNotFound
func (s *Store) GetPlatformSettings(ctx context.Context, adminID uuid.UUID) (PlatformSettings, error) {
	var settings PlatformSettings
	err := s.db.GetContext(ctx, &settings, sqlGetPlatformSettings, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PlatformSettings{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get platform settings", err)
		return PlatformSettings{}, fmt.Errorf("failed to get platform settings: %w", err)
	}
	return settings, nil
}

const sqlListPlatformSettings = `
SELECT ` + platformSettingsColumns + `
FROM platform_settings
ORDER BY created_at
`

// ListPlatformSettings returns every connected page
func (s *Store) ListPlatformSettings(ctx context.Context) ([]PlatformSettings, error) {
	var settings []PlatformSettings
	err := s.db.SelectContext(ctx, &settings, sqlListPlatformSettings)
	if err != nil {
		s.logger.Error(ctx, "failed to list platform settings", err)
		return nil, fmt.Errorf("failed to list platform settings: %w", err)
	}
	return settings, nil
}

const sqlDeletePlatformSettings = `
DELETE FROM platform_settings
WHERE admin_id = $1
`

// DeletePlatformSettings removes an admin's page connection
func (s *Store) DeletePlatformSettings(ctx context.Context, adminID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeletePlatformSettings, adminID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete platform settings", err)
		return fmt.Errorf("failed to delete platform settings: %w", err)
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
