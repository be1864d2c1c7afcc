package authservice

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/handlers/balance"
	"github.com/MaxwellWhoSquats/acex/internal/pg"
	"github.com/MaxwellWhoSquats/acex/pkg/auth"
)

const minPasswordLen = 8

var (
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo       Repo
	balanceService balance.Service
	txManager      pg.TXManager
	hashService    auth.HashServiceInterface
	jwtService     auth.JWTServiceInterface
	tokenTTL       time.Duration
}

func New(
	repo Repo,
	balanceService balance.Service,
	txManager pg.TXManager,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		userRepo:       repo,
		balanceService: balanceService,
		txManager:      txManager,
		hashService:    hashService,
		jwtService:     jwtService,
		tokenTTL:       tokenTTL,
	}
}

// Register creates the user and opens their account in one transaction.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	if _, err := mail.ParseAddress(login); err != nil {
		return nil, fmt.Errorf("%w: login must be an email address", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must have at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	var user *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.Create(ctx, &domain.User{Login: login, PasswordHash: hashedPassword})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := s.balanceService.CreateBalance(ctx, user.ID); err != nil {
			return fmt.Errorf("create balance: %w", err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user", zap.String("login", login), zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
