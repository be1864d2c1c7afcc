package ledgerrepo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/pg"
)

const (
	appendQuery = `
		INSERT INTO ledger_entries (user_id, kind, amount, balance_after, round_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	listByUserQuery = `
		SELECT id, user_id, kind, amount, balance_after, round_id, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2`
)

// Repository is the append-only journal of balance movements.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	err := r.db.QueryRow(ctx, appendQuery,
		entry.UserID, string(entry.Kind), entry.Amount, entry.BalanceAfter, entry.RoundID, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Int("user_id", entry.UserID), zap.String("kind", string(entry.Kind)), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("append ledger entry: %w", err))
	}
	return entry, nil
}

// ListByUserID returns the newest entries first.
func (r *Repository) ListByUserID(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx, listByUserQuery, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Int("user_id", userID), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("list ledger entries: %w", err))
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var (
			e    domain.LedgerEntry
			kind string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &kind, &e.Amount, &e.BalanceAfter, &e.RoundID, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Kind = domain.EntryKind(kind)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.Classify(fmt.Errorf("iterate ledger entries: %w", err))
	}
	return entries, nil
}
