package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"villanova-server/internal/clients/graph"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"

	"github.com/google/uuid"
)

// SettingsStore defines the database operations required by SettingsProcessor
type SettingsStore interface {
	UpsertPlatformSettings(ctx context.Context, params store.UpsertPlatformSettingsParams) (store.PlatformSettings, error)
	GetPlatformSettings(ctx context.Context, adminID uuid.UUID) (store.PlatformSettings, error)
	DeletePlatformSettings(ctx context.Context, adminID uuid.UUID) error
}

type TokenVerifier interface {
	ValidateToken(ctx context.Context, pageID, token string) graph.TokenValidation
	GetPageAccessToken(ctx context.Context, userToken, targetPageID string) (string, error)
}

type TokenSealer interface {
	Seal(plaintext string) (string, error)
}

type ActivityRecorder interface {
	Info(ctx context.Context, adminID uuid.UUID, action, format string, args ...any)
	Success(ctx context.Context, adminID uuid.UUID, action, format string, args ...any)
}

var ErrInvalidPageToken = errors.New("page token rejected")

// ConnectParams is an admin's request to connect a page
type ConnectParams struct {
	PageID            string
	AccessToken       string
	NotificationEmail *string
	NotificationPhone *string
}

type SettingsProcessor struct {
	store    SettingsStore
	verifier TokenVerifier
	sealer   TokenSealer
	activity ActivityRecorder
	logger   *observability.Logger
}

func New(store SettingsStore, verifier TokenVerifier, sealer TokenSealer, activity ActivityRecorder, logger *observability.Logger) *SettingsProcessor {
	return &SettingsProcessor{
		store:    store,
		verifier: verifier,
		sealer:   sealer,
		activity: activity,
		logger:   logger,
	}
}

// Connect validates the submitted token against the page, resolves the page
// token and stores it sealed.
func (p *SettingsProcessor) Connect(ctx context.Context, adminID uuid.UUID, params ConnectParams) (store.PlatformSettings, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID},
		observability.Field{Key: "page_id", Value: params.PageID},
	)

	validation := p.verifier.ValidateToken(ctx, params.PageID, params.AccessToken)
	if !validation.Valid {
		p.logger.Warn(ctx, "page token rejected")
		return store.PlatformSettings{}, fmt.Errorf("%w: %s", ErrInvalidPageToken, validation.Error)
	}

	pageToken, err := p.verifier.GetPageAccessToken(ctx, params.AccessToken, params.PageID)
	if err != nil {
		return store.PlatformSettings{}, fmt.Errorf("%w: %v", ErrInvalidPageToken, err)
	}

	sealed, err := p.sealer.Seal(pageToken)
	if err != nil {
		return store.PlatformSettings{}, fmt.Errorf("failed to seal page token: %w", err)
	}

	var pageName *string
	if validation.Name != "" {
		name := validation.Name
		pageName = &name
	}

	settings, err := p.store.UpsertPlatformSettings(ctx, store.UpsertPlatformSettingsParams{
		AdminID:           adminID,
		PageID:            params.PageID,
		PageName:          pageName,
		AccessToken:       sealed,
		NotificationEmail: params.NotificationEmail,
		NotificationPhone: params.NotificationPhone,
	})
	if err != nil {
		return store.PlatformSettings{}, err
	}

	p.logger.Info(ctx, "platform connected")
	p.activity.Success(ctx, adminID, "platform_connected", "Connected page %s", validation.Name)
	return settings, nil
}

func (p *SettingsProcessor) Get(ctx context.Context, adminID uuid.UUID) (store.PlatformSettings, error) {
	return p.store.GetPlatformSettings(ctx, adminID)
}

// Disconnect removes the admin's page connection. The bot and scheduler stop
// acting for the admin on their next pass.
func (p *SettingsProcessor) Disconnect(ctx context.Context, adminID uuid.UUID) error {
	if err := p.store.DeletePlatformSettings(ctx, adminID); err != nil {
		return err
	}
	p.activity.Info(ctx, adminID, "platform_disconnected", "Disconnected the page")
	return nil
}
