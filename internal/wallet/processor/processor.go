package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"villanova-server/internal/observability"
	"villanova-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

const recentTransactionsLimit = 20

// WalletStore defines the database operations required by WalletProcessor
type WalletStore interface {
	GetWalletBalance(ctx context.Context, adminID uuid.UUID) (float64, error)
	DebitWallet(ctx context.Context, adminID uuid.UUID, amount float64, description string) (float64, error)
	ListWalletTransactions(ctx context.Context, adminID uuid.UUID, limit int) ([]store.WalletTransaction, error)
}

// WalletProcessor is the credit gate in front of AI generation and paid posts.
// Top-ups happen in the payments platform; this service only spends.
type WalletProcessor struct {
	store  WalletStore
	logger *observability.Logger
}

type Wallet struct {
	Balance      float64                   `json:"balance"`
	Transactions []store.WalletTransaction `json:"transactions"`
}

func New(store WalletStore, logger *observability.Logger) *WalletProcessor {
	return &WalletProcessor{store: store, logger: logger}
}

// DeductCredits debits amount and returns the new balance, or ErrInsufficientFunds
func (p *WalletProcessor) DeductCredits(ctx context.Context, adminID uuid.UUID, amount float64, description string) (float64, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID},
		observability.Field{Key: "amount", Value: amount},
	)
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := p.store.DebitWallet(ctx, adminID, amount, description)
	if err != nil {
		if errors.Is(err, store.ErrInsufficientBalance) {
			p.logger.Warn(ctx, "credit deduction rejected, insufficient funds")
			return 0, ErrInsufficientFunds
		}
		return 0, fmt.Errorf("failed to deduct credits: %w", err)
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "balance", Value: balance}), "credits deducted")
	return balance, nil
}

// HasCredits reports whether the admin can afford amount without spending it
func (p *WalletProcessor) HasCredits(ctx context.Context, adminID uuid.UUID, amount float64) (bool, error) {
	balance, err := p.store.GetWalletBalance(ctx, adminID)
	if err != nil {
		return false, fmt.Errorf("failed to check balance: %w", err)
	}
	return balance >= amount, nil
}

func (p *WalletProcessor) GetWallet(ctx context.Context, adminID uuid.UUID) (Wallet, error) {
	balance, err := p.store.GetWalletBalance(ctx, adminID)
	if err != nil {
		return Wallet{}, err
	}
	transactions, err := p.store.ListWalletTransactions(ctx, adminID, recentTransactionsLimit)
	if err != nil {
		return Wallet{}, err
	}
	if transactions == nil {
		transactions = []store.WalletTransaction{}
	}
	return Wallet{Balance: balance, Transactions: transactions}, nil
}
