package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetWalletBalance = `
SELECT balance
FROM wallets
WHERE admin_id = $1
`

// GetWalletBalance returns the admin's balance. An admin without a wallet has a zero balance.
func (s *Store) GetWalletBalance(ctx context.Context, adminID uuid.UUID) (float64, error) {
	var balance float64
	err := s.db.GetContext(ctx, &balance, sqlGetWalletBalance, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		s.logger.Error(ctx, "failed to get wallet balance", err)
		return 0, fmt.Errorf("failed to get wallet balance: %w", err)
	}
	return balance, nil
}

const sqlDebitWallet = `
UPDATE wallets
SET balance = balance - $2, updated_at = NOW()
WHERE admin_id = $1 AND balance >= $2
RETURNING balance
`

const sqlCreateWalletTransaction = `
INSERT INTO wallet_transactions (admin_id, amount, type, description, balance_after)
VALUES ($1, $2, $3, $4, $5)
`

// DebitWallet atomically deducts amount and records the transaction.
// Returns ErrInsufficientBalance when the balance is lower than amount.
func (s *Store) DebitWallet(ctx context.Context, adminID uuid.UUID, amount float64, description string) (float64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var balance float64
	err = tx.GetContext(ctx, &balance, sqlDebitWallet, adminID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrInsufficientBalance
		}
		s.logger.Error(ctx, "failed to debit wallet", err)
		return 0, fmt.Errorf("failed to debit wallet: %w", err)
	}

	_, err = tx.ExecContext(ctx, sqlCreateWalletTransaction, adminID, amount, WalletTransactionDebit, description, balance)
	if err != nil {
		s.logger.Error(ctx, "failed to record wallet transaction", err)
		return 0, fmt.Errorf("failed to record wallet transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return balance, nil
}

const sqlListWalletTransactions = `
SELECT id, admin_id, amount, type, description, balance_after, created_at
FROM wallet_transactions
WHERE admin_id = $1
ORDER BY created_at DESC
LIMIT $2
`

// ListWalletTransactions returns the most recent wallet movements for an admin
func (s *Store) ListWalletTransactions(ctx context.Context, adminID uuid.UUID, limit int) ([]WalletTransaction, error) {
	transactions := []WalletTransaction{}
	err := s.db.SelectContext(ctx, &transactions, sqlListWalletTransactions, adminID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list wallet transactions", err)
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	return transactions, nil
}
