package balanceservice

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/metrics"
	"github.com/MaxwellWhoSquats/acex/internal/pg"
)

type BalanceRepo interface {
	Get(ctx context.Context, userID int) (*domain.Balance, error)
	Create(ctx context.Context, userID int, startBalance int64) (*domain.Balance, error)
	ApplyDelta(ctx context.Context, userID int, delta int64) (*domain.Balance, error)
	GrantRefill(ctx context.Context, userID int, amount int64, now time.Time, cooldown time.Duration) (*domain.Balance, bool, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByUserID(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error)
}

type Options struct {
	StartingBalance int64
	RefillAmount    int64
	RefillCooldown  time.Duration
	HistoryLimit    int
	// MaxAdjust bounds the magnitude of a single direct balance change.
	MaxAdjust       int64
	Backoff         func() retry.Backoff
}

// DefaultMaxAdjust keeps every direct change far from BIGINT overflow.
const DefaultMaxAdjust int64 = 100_000_000_000

type Service struct {
	balanceRepo BalanceRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
	opts        Options
	now         func() time.Time
}

func New(balanceRepo BalanceRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, opts Options) *Service {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 100
	}
	if opts.MaxAdjust <= 0 {
		opts.MaxAdjust = DefaultMaxAdjust
	}
	if opts.Backoff == nil {
		opts.Backoff = pg.DefaultBackoff
	}
	return &Service{
		balanceRepo: balanceRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
		opts:        opts,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for refills and journal entries.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// CreateBalance opens the account of a freshly registered user.
func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	var balance *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.balanceRepo.Create(ctx, userID, s.opts.StartingBalance)
		if err != nil {
			return err
		}
		if s.opts.StartingBalance > 0 {
			return s.journal(ctx, balance, s.opts.StartingBalance, domain.EntryRef{Kind: domain.EntryAdjust})
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to create balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// ApplyDelta moves the balance by delta cents and journals the movement in
// the same transaction. A debit that would go below zero fails with
// domain.ErrInsufficientFunds and changes nothing.
func (s *Service) ApplyDelta(ctx context.Context, userID int, delta int64, ref domain.EntryRef) (*domain.Balance, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: amount must not be zero", domain.ErrInvalidInput)
	}

	var balance *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.balanceRepo.ApplyDelta(ctx, userID, delta)
		if err != nil {
			return err
		}
		return s.journal(ctx, balance, delta, ref)
	})
	if err != nil {
		zap.L().Info("balance change rejected",
			zap.Int("user_id", userID), zap.Int64("delta", delta), zap.String("kind", string(ref.Kind)), zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Adjust is the direct balance change exposed over HTTP. It owns its
// transaction, so transient failures rerun the whole change.
func (s *Service) Adjust(ctx context.Context, userID int, amount int64) (*domain.Balance, error) {
	if amount > s.opts.MaxAdjust || amount < -s.opts.MaxAdjust {
		return nil, fmt.Errorf("%w: amount magnitude exceeds %d", domain.ErrInvalidInput, s.opts.MaxAdjust)
	}
	return pg.RetryTransient(ctx, s.opts.Backoff(), "adjust balance", func(ctx context.Context) (*domain.Balance, error) {
		return s.ApplyDelta(ctx, userID, amount, domain.EntryRef{Kind: domain.EntryAdjust})
	})
}

// GrantRefill credits the refill amount at most once per cooldown window.
// A refused refill returns a *domain.CooldownError.
func (s *Service) GrantRefill(ctx context.Context, userID int) (*domain.RefillResult, error) {
	now := s.now()
	result, err := pg.RetryTransient(ctx, s.opts.Backoff(), "grant refill", func(ctx context.Context) (domain.RefillResult, error) {
		var result domain.RefillResult
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			balance, granted, err := s.balanceRepo.GrantRefill(ctx, userID, s.opts.RefillAmount, now, s.opts.RefillCooldown)
			if err != nil {
				return err
			}
			result = domain.RefillResult{Granted: granted, Balance: balance.CurrentBalance}
			if !granted {
				result.TimeRemaining = s.remaining(balance.LastRefilledAt, now)
				return nil
			}
			return s.journal(ctx, balance, s.opts.RefillAmount, domain.EntryRef{Kind: domain.EntryRefill})
		})
		return result, err
	})
	if err != nil {
		zap.L().Error("failed to grant refill", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	metrics.RecordRefill(result.Granted)
	if !result.Granted {
		return nil, &domain.CooldownError{Remaining: result.TimeRemaining}
	}
	zap.L().Info("refill granted", zap.Int("user_id", userID), zap.Int64("balance", result.Balance))
	return &result, nil
}

func (s *Service) RefillStatus(ctx context.Context, userID int) (*domain.RefillStatus, error) {
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance.LastRefilledAt == nil || !s.now().Before(balance.LastRefilledAt.Add(s.opts.RefillCooldown)) {
		return &domain.RefillStatus{CanRefill: true}, nil
	}
	return &domain.RefillStatus{TimeRemaining: s.remaining(balance.LastRefilledAt, s.now())}, nil
}

// remaining is the wait until the next refill, clamped to [1ms, cooldown].
func (s *Service) remaining(last *time.Time, now time.Time) time.Duration {
	cooldown := s.opts.RefillCooldown
	if last == nil {
		return time.Millisecond
	}
	rem := cooldown - now.Sub(*last)
	switch {
	case rem > cooldown:
		return cooldown
	case rem < time.Millisecond:
		return time.Millisecond
	}
	return rem.Truncate(time.Millisecond)
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByUserID(ctx, userID, s.opts.HistoryLimit)
	if err != nil {
		zap.L().Error("failed to fetch ledger", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) journal(ctx context.Context, balance *domain.Balance, amount int64, ref domain.EntryRef) error {
	_, err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
		UserID:       balance.UserID,
		Kind:         ref.Kind,
		Amount:       amount,
		BalanceAfter: balance.CurrentBalance,
		RoundID:      ref.RoundID,
		CreatedAt:    s.now(),
	})
	return err
}
