package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
)

func getBalance(ctx context.Context, q querier, userID string) (int, error) {
	var balance int
	err := q.QueryRow(ctx, `SELECT balance FROM users WHERE user_id = $1`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultBalance, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// ensureUser creates the user row with the default balance on first touch
func ensureUser(ctx context.Context, q querier, userID string) error {
	_, err := q.Exec(ctx, `
		INSERT INTO users (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, domain.DefaultBalance)
	if err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

func adjustBalance(ctx context.Context, q querier, userID string, delta int) (int, error) {
	if err := ensureUser(ctx, q, userID); err != nil {
		return 0, err
	}

	var balance int
	err := q.QueryRow(ctx, `
		UPDATE users
		SET balance = balance + $2, updated_at = NOW()
		WHERE user_id = $1 AND balance + $2 >= 0
		RETURNING balance
	`, userID, delta).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isPgError(err, PgErrorCodeCheckViolation) {
			return 0, domain.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("failed to adjust balance: %w", err)
	}
	return balance, nil
}

func setBalance(ctx context.Context, q querier, userID string, balance int) error {
	if balance < 0 {
		return domain.ErrNegativeBalance
	}
	_, err := q.Exec(ctx, `
		INSERT INTO users (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = EXCLUDED.balance, updated_at = NOW()
	`, userID, balance)
	if err != nil {
		if isPgError(err, PgErrorCodeCheckViolation) {
			return domain.ErrNegativeBalance
		}
		return fmt.Errorf("failed to set balance: %w", err)
	}
	return nil
}
