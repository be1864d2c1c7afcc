package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/pg"
)

const (
	findByLoginQuery = `SELECT id, login, password_hash, created_at FROM users WHERE login = $1`
	createQuery      = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// FindByLogin returns nil, nil when no user owns the login.
func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, findByLoginQuery, login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("find user by login", zap.String("login", login), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("find user: %w", err))
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.db.QueryRow(ctx, createQuery, user.Login, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("insert user", zap.String("login", user.Login), zap.Error(err))
		return nil, pg.Classify(fmt.Errorf("create user: %w", err))
	}
	return user, nil
}
