package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "user found",
			login: "player@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "created_at"}).
					AddRow(1, "player@example.com", "hashed", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(findByLoginQuery)).
					WithArgs("player@example.com").
					WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Login: "player@example.com", PasswordHash: "hashed", CreatedAt: createdAt},
		},
		{
			name:  "user not found",
			login: "ghost@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByLoginQuery)).
					WithArgs("ghost@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:  "database error",
			login: "player@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByLoginQuery)).
					WithArgs("player@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
			WithArgs("new@example.com", "hashed").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))

		user, err := repo.Create(context.Background(), &domain.User{Login: "new@example.com", PasswordHash: "hashed"})
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, createdAt, user.CreatedAt)
	})

	t.Run("unique violation", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
			WithArgs("new@example.com", "hashed").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		user, err := repo.Create(context.Background(), &domain.User{Login: "new@example.com", PasswordHash: "hashed"})
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
