package balancerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/pg"
)

const (
	getQuery = `SELECT id, user_id, current_balance, last_refilled_at FROM balances WHERE user_id = $1`

	createQuery = `
		INSERT INTO balances (user_id, current_balance)
		VALUES ($1, $2)
		RETURNING id, user_id, current_balance, last_refilled_at`

	applyDeltaQuery = `
		UPDATE balances
		SET current_balance = current_balance + $2
		WHERE user_id = $1 AND current_balance + $2 >= 0
		RETURNING id, user_id, current_balance, last_refilled_at`

	existsQuery = `SELECT EXISTS (SELECT 1 FROM balances WHERE user_id = $1)`

	grantRefillQuery = `
		UPDATE balances
		SET current_balance = current_balance + $2, last_refilled_at = $3
		WHERE user_id = $1 AND (last_refilled_at IS NULL OR last_refilled_at <= $4)
		RETURNING id, user_id, current_balance, last_refilled_at`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	var b domain.Balance
	if err := row.Scan(&b.ID, &b.UserID, &b.CurrentBalance, &b.LastRefilledAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Get(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := scanBalance(r.db.QueryRow(ctx, getQuery, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		zap.L().Error("failed to get balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("get balance: %w", err))
	}
	return balance, nil
}

func (r *Repository) Create(ctx context.Context, userID int, startBalance int64) (*domain.Balance, error) {
	balance, err := scanBalance(r.db.QueryRow(ctx, createQuery, userID, startBalance))
	if err != nil {
		zap.L().Error("failed to create balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("create balance: %w", err))
	}
	return balance, nil
}

// ApplyDelta adds delta to the balance in one conditional statement, so two
// concurrent debits can never both pass a stale sufficiency check.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, delta int64) (*domain.Balance, error) {
	balance, err := scanBalance(r.db.QueryRow(ctx, applyDeltaQuery, userID, delta))
	if err == nil {
		return balance, nil
	}
	if pg.IsOutOfRange(err) {
		return nil, fmt.Errorf("%w: balance would overflow", domain.ErrInvalidInput)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to apply balance delta", zap.Int("user_id", userID), zap.Int64("delta", delta), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("apply delta: %w", err))
	}

	var exists bool
	if err := r.db.QueryRow(ctx, existsQuery, userID).Scan(&exists); err != nil {
		zap.L().Error("failed to probe balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("probe balance: %w", err))
	}
	if !exists {
		return nil, domain.ErrAccountNotFound
	}
	return nil, domain.ErrInsufficientFunds
}

// GrantRefill credits amount unless the previous refill happened less than
// cooldown before now. When the cooldown holds, the unchanged balance is
// returned with granted=false.
func (r *Repository) GrantRefill(ctx context.Context, userID int, amount int64, now time.Time, cooldown time.Duration) (*domain.Balance, bool, error) {
	balance, err := scanBalance(r.db.QueryRow(ctx, grantRefillQuery, userID, amount, now, now.Add(-cooldown)))
	if err == nil {
		return balance, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to grant refill", zap.Int("user_id", userID), zap.Error(err))
		return nil, false, pg.Classify(fmt.Errorf("grant refill: %w", err))
	}

	balance, err = r.Get(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return balance, false, nil
}
