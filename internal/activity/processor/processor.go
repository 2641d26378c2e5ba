package processor

import (
	"context"
	"fmt"

	"villanova-server/internal/observability"
	"villanova-server/internal/store"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ActivityStore defines the database operations required by ActivityProcessor
type ActivityStore interface {
	CreateActivityLog(ctx context.Context, params store.CreateActivityLogParams) (store.ActivityLog, error)
	ListActivityLogs(ctx context.Context, adminID uuid.UUID, limit int) ([]store.ActivityLog, error)
	ListInteractionsByAdmin(ctx context.Context, adminID uuid.UUID, limit int) ([]store.Interaction, error)
}

// ActivityProcessor records what the agent did on an admin's behalf
type ActivityProcessor struct {
	store  ActivityStore
	hub    *Hub
	logger *observability.Logger
}

func New(store ActivityStore, hub *Hub, logger *observability.Logger) *ActivityProcessor {
	return &ActivityProcessor{store: store, hub: hub, logger: logger}
}

// Info, Success and Error append an entry at that level. Failures are logged and never returned.
func (p *ActivityProcessor) Info(ctx context.Context, adminID uuid.UUID, action, format string, args ...any) {
	p.record(ctx, adminID, store.ActivityLevelInfo, action, fmt.Sprintf(format, args...))
}

func (p *ActivityProcessor) Success(ctx context.Context, adminID uuid.UUID, action, format string, args ...any) {
	p.record(ctx, adminID, store.ActivityLevelSuccess, action, fmt.Sprintf(format, args...))
}

func (p *ActivityProcessor) Error(ctx context.Context, adminID uuid.UUID, action, format string, args ...any) {
	p.record(ctx, adminID, store.ActivityLevelError, action, fmt.Sprintf(format, args...))
}

func (p *ActivityProcessor) record(ctx context.Context, adminID uuid.UUID, level, action, details string) {
	entry, err := p.store.CreateActivityLog(ctx, store.CreateActivityLogParams{
		AdminID: adminID,
		Level:   level,
		Action:  action,
		Details: details,
	})
	if err != nil {
		p.logger.WarnWithError(observability.WithFields(ctx,
			observability.Field{Key: "admin_id", Value: adminID},
			observability.Field{Key: "activity_action", Value: action},
		), "failed to record activity", err)
		return
	}
	p.hub.Publish(entry)
}

// List returns the most recent entries, newest first
func (p *ActivityProcessor) List(ctx context.Context, adminID uuid.UUID, limit int) ([]store.ActivityLog, error) {
	entries, err := p.store.ListActivityLogs(ctx, adminID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []store.ActivityLog{}
	}
	return entries, nil
}

// Subscribe streams new entries for adminID until the returned func is called
func (p *ActivityProcessor) Subscribe(adminID uuid.UUID) (<-chan store.ActivityLog, func()) {
	return p.hub.Subscribe(adminID)
}

// ListInteractions returns the comments and messages the bot answered, newest first
func (p *ActivityProcessor) ListInteractions(ctx context.Context, adminID uuid.UUID, limit int) ([]store.Interaction, error) {
	interactions, err := p.store.ListInteractionsByAdmin(ctx, adminID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = []store.Interaction{}
	}
	return interactions, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
