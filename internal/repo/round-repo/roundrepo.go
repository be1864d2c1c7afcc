package roundrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/pg"
)

const roundColumns = `id, user_id, game, phase, base_wager, wager, outcome, multiplier, payout, settled, state, version, created_at, updated_at`

const (
	createQuery = `
		INSERT INTO rounds (id, user_id, game, phase, base_wager, wager, outcome, multiplier, payout, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING version`

	getQuery          = `SELECT ` + roundColumns + ` FROM rounds WHERE id = $1`
	getForUpdateQuery = `SELECT ` + roundColumns + ` FROM rounds WHERE id = $1 FOR UPDATE`

	updateQuery = `
		UPDATE rounds
		SET phase = $2, wager = $3, outcome = $4, multiplier = $5, payout = $6, state = $7,
			updated_at = $8, version = version + 1
		WHERE id = $1 AND version = $9 AND NOT settled
		RETURNING version`

	markSettledQuery = `
		UPDATE rounds
		SET settled = TRUE, phase = 'TERMINAL', payout = $2, updated_at = $3, version = version + 1
		WHERE id = $1 AND NOT settled`

	findStaleQuery = `
		SELECT ` + roundColumns + `
		FROM rounds
		WHERE NOT settled
			AND ((phase = 'SETTLING' AND updated_at < $1) OR (phase = 'ACTIVE' AND updated_at < $2))
		ORDER BY updated_at
		LIMIT $3`

	listByUserQuery = `
		SELECT ` + roundColumns + `
		FROM rounds
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanRound(row pgx.Row) (*domain.Round, error) {
	var (
		r       domain.Round
		phase   string
		outcome string
		state   json.RawMessage
		mult    decimal.Decimal
	)
	err := row.Scan(&r.ID, &r.UserID, &r.Game, &phase, &r.BaseWager, &r.Wager, &outcome,
		&mult, &r.Payout, &r.Settled, &state, &r.Version, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.Phase = domain.Phase(phase)
	r.Outcome = outcome
	r.Multiplier = mult
	r.State = state
	return &r, nil
}

func (r *Repository) Create(ctx context.Context, round *domain.Round) (*domain.Round, error) {
	err := r.db.QueryRow(ctx, createQuery,
		round.ID, round.UserID, round.Game, string(round.Phase), round.BaseWager, round.Wager,
		round.Outcome, round.Multiplier, round.Payout, round.State, round.CreatedAt,
	).Scan(&round.Version)
	if err != nil {
		zap.L().Error("can't insert round", zap.Stringer("round_id", round.ID), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("create round: %w", err))
	}
	round.UpdatedAt = round.CreatedAt
	return round, nil
}

func (r *Repository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Round, error) {
	round, err := scanRound(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		zap.L().Error("can't load round", zap.Stringer("round_id", id), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("get round: %w", err))
	}
	return round, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	return r.get(ctx, getQuery, id)
}

// GetForUpdate locks the round row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	return r.get(ctx, getForUpdateQuery, id)
}

// Update persists the mutable round fields guarded by the optimistic version.
func (r *Repository) Update(ctx context.Context, round *domain.Round) error {
	var version int
	err := r.db.QueryRow(ctx, updateQuery,
		round.ID, string(round.Phase), round.Wager, round.Outcome, round.Multiplier, round.Payout,
		round.State, round.UpdatedAt, round.Version,
	).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRoundClosed
		}
		zap.L().Error("can't update round", zap.Stringer("round_id", round.ID), zap.Error(err))
		return pg.Classify(fmt.Errorf("update round: %w", err))
	}
	round.Version = version
	return nil
}

// MarkSettled flips the exactly-once guard. It reports false when the round
// had already been settled.
func (r *Repository) MarkSettled(ctx context.Context, id uuid.UUID, payout int64, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, markSettledQuery, id, payout, now)
	if err != nil {
		zap.L().Error("can't mark round settled", zap.Stringer("round_id", id), zap.Error(err))
		return false, pg.Classify(fmt.Errorf("mark settled: %w", err))
	}
	return tag.RowsAffected() == 1, nil
}

// FindStale returns unsettled rounds stuck in SETTLING since before
// settlingBefore or left ACTIVE since before activeBefore, oldest first.
func (r *Repository) FindStale(ctx context.Context, settlingBefore, activeBefore time.Time, limit int) ([]domain.Round, error) {
	return r.list(ctx, findStaleQuery, settlingBefore, activeBefore, limit)
}

func (r *Repository) ListByUserID(ctx context.Context, userID, limit int) ([]domain.Round, error) {
	return r.list(ctx, listByUserQuery, userID, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Round, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch rounds", zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("list rounds: %w", err))
	}
	defer rows.Close()

	var rounds []domain.Round
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			zap.L().Error("failed to scan round row", zap.Error(err))
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rounds = append(rounds, *round)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.Classify(fmt.Errorf("iterate rounds: %w", err))
	}
	return rounds, nil
}
