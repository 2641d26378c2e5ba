package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"villanova-server/internal/observability"
	"villanova-server/internal/store"
)

var (
	ErrAlreadyHandled = errors.New("interaction already handled")
	ErrInFlight       = errors.New("interaction is being handled by another cycle")
)

// Store is the persistent side of the ledger
type Store interface {
	ListInteractionExternalIDs(ctx context.Context) ([]string, error)
	InteractionExists(ctx context.Context, externalID string) (bool, error)
	CreateInteraction(ctx context.Context, params store.CreateInteractionParams) (store.Interaction, error)
}

// Ledger remembers which external events have been answered. Memory is a cache
// over storage: entries are only ever added, and storage is consulted whenever
// memory misses.
type Ledger struct {
	store  Store
	logger *observability.Logger

	mu       sync.RWMutex
	handled  map[string]struct{}
	inFlight map[string]struct{}
}

func New(store Store, logger *observability.Logger) *Ledger {
	return &Ledger{
		store:    store,
		logger:   logger,
		handled:  make(map[string]struct{}),
		inFlight: make(map[string]struct{}),
	}
}

// Sync loads every recorded external id into memory
func (l *Ledger) Sync(ctx context.Context) error {
	ids, err := l.store.ListInteractionExternalIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync interaction ledger: %w", err)
	}

	l.mu.Lock()
	for _, id := range ids {
		l.handled[id] = struct{}{}
	}
	size := len(l.handled)
	l.mu.Unlock()

	l.logger.Info(observability.WithFields(ctx, observability.Field{Key: "ledger_size", Value: size}), "interaction ledger synced")
	return nil
}

// IsHandled checks memory first and falls back to storage, backfilling memory on a storage hit
func (l *Ledger) IsHandled(ctx context.Context, externalID string) (bool, error) {
	if l.inMemory(externalID) {
		return true, nil
	}

	exists, err := l.store.InteractionExists(ctx, externalID)
	if err != nil {
		return false, err
	}
	if exists {
		l.remember(externalID)
	}
	return exists, nil
}

// Acquire claims externalID for a reply. It fails with ErrAlreadyHandled when the
// id is recorded and with ErrInFlight when another caller holds the claim.
// The caller must either Record or Release the claim.
func (l *Ledger) Acquire(ctx context.Context, externalID string) (*Claim, error) {
	l.mu.Lock()
	if _, ok := l.handled[externalID]; ok {
		l.mu.Unlock()
		return nil, ErrAlreadyHandled
	}
	if _, ok := l.inFlight[externalID]; ok {
		l.mu.Unlock()
		return nil, ErrInFlight
	}
	l.inFlight[externalID] = struct{}{}
	l.mu.Unlock()

	exists, err := l.store.InteractionExists(ctx, externalID)
	if err != nil {
		l.release(externalID)
		return nil, err
	}
	if exists {
		l.mu.Lock()
		l.handled[externalID] = struct{}{}
		delete(l.inFlight, externalID)
		l.mu.Unlock()
		return nil, ErrAlreadyHandled
	}

	return &Claim{ledger: l, externalID: externalID}, nil
}

func (l *Ledger) inMemory(externalID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.handled[externalID]
	return ok
}

func (l *Ledger) remember(externalID string) {
	l.mu.Lock()
	l.handled[externalID] = struct{}{}
	l.mu.Unlock()
}

func (l *Ledger) release(externalID string) {
	l.mu.Lock()
	delete(l.inFlight, externalID)
	l.mu.Unlock()
}

// Claim is an exclusive in-process right to answer one external event
type Claim struct {
	ledger     *Ledger
	externalID string
	once       sync.Once
}

func (c *Claim) ExternalID() string {
	return c.externalID
}

// Record persists the interaction and marks the id handled. Call it only after
// the reply has been sent. A storage duplicate still counts as handled.
func (c *Claim) Record(ctx context.Context, params store.CreateInteractionParams) error {
	params.ExternalID = c.externalID

	var recordErr error
	c.once.Do(func() {
		_, err := c.ledger.store.CreateInteraction(ctx, params)
		if err != nil && !errors.Is(err, store.ErrDuplicate) {
			recordErr = fmt.Errorf("failed to record interaction: %w", err)
		}
		// The reply went out either way, so this process must not answer again.
		c.ledger.mu.Lock()
		c.ledger.handled[c.externalID] = struct{}{}
		delete(c.ledger.inFlight, c.externalID)
		c.ledger.mu.Unlock()
	})
	return recordErr
}

// Release gives the claim up without recording, so a later cycle may retry
func (c *Claim) Release() {
	c.once.Do(func() {
		c.ledger.release(c.externalID)
	})
}
