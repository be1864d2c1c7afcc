package roundrepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
)

var columns = []string{"id", "user_id", "game", "phase", "base_wager", "wager", "outcome",
	"multiplier", "payout", "settled", "state", "version", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func roundRow(rows *pgxmock.Rows, id uuid.UUID, phase string, settled bool, at time.Time) *pgxmock.Rows {
	return rows.AddRow(id, 1, "blackjack", phase, int64(200), int64(200), "",
		decimal.Zero, int64(0), settled, json.RawMessage(`{"deck":[]}`), 1, at, at)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	round := &domain.Round{
		ID:         uuid.New(),
		UserID:     1,
		Game:       "words",
		Phase:      domain.PhaseActive,
		BaseWager:  100,
		Wager:      100,
		Multiplier: decimal.Zero,
		State:      json.RawMessage(`{"target":"grape"}`),
		CreatedAt:  now,
	}

	mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
		WithArgs(round.ID, 1, "words", "ACTIVE", int64(100), int64(100), "", decimal.Zero, int64(0), round.State, now).
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(1))

	created, err := repo.Create(context.Background(), round)
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)
	assert.Equal(t, now, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("locked row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(getForUpdateQuery)).
			WithArgs(id).
			WillReturnRows(roundRow(pgxmock.NewRows(columns), id, "ACTIVE", false, now))

		round, err := repo.GetForUpdate(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.PhaseActive, round.Phase)
		assert.Equal(t, int64(200), round.Wager)
		assert.JSONEq(t, `{"deck":[]}`, string(round.State))
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(getForUpdateQuery)).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetForUpdate(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrRoundNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	round := &domain.Round{
		ID:         uuid.New(),
		Phase:      domain.PhaseSettling,
		Wager:      400,
		Outcome:    "WIN",
		Multiplier: decimal.NewFromInt(2),
		Payout:     800,
		State:      json.RawMessage(`{}`),
		UpdatedAt:  now,
		Version:    3,
	}

	t.Run("version bumped", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(updateQuery)).
			WithArgs(round.ID, "SETTLING", int64(400), "WIN", decimal.NewFromInt(2), int64(800), round.State, now, 3).
			WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(4))

		require.NoError(t, repo.Update(context.Background(), round))
		assert.Equal(t, 4, round.Version)
	})

	t.Run("stale version", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(updateQuery)).
			WithArgs(round.ID, "SETTLING", int64(400), "WIN", decimal.NewFromInt(2), int64(800), round.State, now, 4).
			WillReturnError(pgx.ErrNoRows)

		assert.ErrorIs(t, repo.Update(context.Background(), round), domain.ErrRoundClosed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkSettled(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		want      bool
		expectErr bool
	}{
		{
			name: "first settlement",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(markSettledQuery)).
					WithArgs(id, int64(400), now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			want: true,
		},
		{
			name: "already settled",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(markSettledQuery)).
					WithArgs(id, int64(400), now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			want: false,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(markSettledQuery)).
					WithArgs(id, int64(400), now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.MarkSettled(context.Background(), id, 400, now)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindStale(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	settlingBefore := now.Add(-time.Minute)
	activeBefore := now.Add(-30 * time.Minute)
	a, b := uuid.New(), uuid.New()

	rows := pgxmock.NewRows(columns)
	roundRow(rows, a, "SETTLING", false, now.Add(-2*time.Minute))
	roundRow(rows, b, "ACTIVE", false, now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(findStaleQuery)).
		WithArgs(settlingBefore, activeBefore, 100).
		WillReturnRows(rows)

	rounds, err := repo.FindStale(context.Background(), settlingBefore, activeBefore, 100)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, a, rounds[0].ID)
	assert.Equal(t, domain.PhaseSettling, rounds[0].Phase)
	assert.Equal(t, domain.PhaseActive, rounds[1].Phase)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(listByUserQuery)).
		WithArgs(1, 20).
		WillReturnError(errors.New("database error"))

	rounds, err := repo.ListByUserID(context.Background(), 1, 20)
	assert.Error(t, err)
	assert.Nil(t, rounds)
	assert.NoError(t, mock.ExpectationsWereMet())
}
