// Package roundservice coordinates wagers, round engines and the balance
// ledger so that every round is paid out exactly once.
package roundservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/game"
	"github.com/MaxwellWhoSquats/acex/internal/metrics"
	"github.com/MaxwellWhoSquats/acex/internal/pg"
)

type RoundRepo interface {
	Create(ctx context.Context, round *domain.Round) (*domain.Round, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	Update(ctx context.Context, round *domain.Round) error
	MarkSettled(ctx context.Context, id uuid.UUID, payout int64, now time.Time) (bool, error)
	FindStale(ctx context.Context, settlingBefore, activeBefore time.Time, limit int) ([]domain.Round, error)
	ListByUserID(ctx context.Context, userID, limit int) ([]domain.Round, error)
}

type Ledger interface {
	ApplyDelta(ctx context.Context, userID int, delta int64, ref domain.EntryRef) (*domain.Balance, error)
}

type Engines interface {
	New(kind game.Kind, cfg game.Config) (game.Engine, error)
	Restore(kind game.Kind, state []byte) (game.Engine, error)
}

type Options struct {
	// RoundTTL is how long an ACTIVE round may sit idle before the
	// reconciler force-resolves it.
	RoundTTL time.Duration
	// SettleGrace keeps the reconciler away from settlements still owned by
	// the request that started them.
	SettleGrace  time.Duration
	HistoryLimit int
	Backoff      func() retry.Backoff
}

// Snapshot is a round together with the player-facing view of its engine.
type Snapshot struct {
	Round *domain.Round
	View  any
}

type Service struct {
	rounds    RoundRepo
	ledger    Ledger
	engines   Engines
	txManager pg.TXManager
	opts      Options
	now       func() time.Time
	newID     func() uuid.UUID
}

func New(rounds RoundRepo, ledger Ledger, engines Engines, txManager pg.TXManager, opts Options) *Service {
	if opts.RoundTTL <= 0 {
		opts.RoundTTL = 30 * time.Minute
	}
	if opts.SettleGrace <= 0 {
		opts.SettleGrace = time.Minute
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 50
	}
	if opts.Backoff == nil {
		opts.Backoff = pg.DefaultBackoff
	}
	return &Service{
		rounds:    rounds,
		ledger:    ledger,
		engines:   engines,
		txManager: txManager,
		opts:      opts,
		now:       time.Now,
		newID:     uuid.New,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// PlaceBet debits the wager and opens a round in one transaction. Invalid
// input is rejected before the store is touched. Rounds decided by the deal
// itself are settled before returning.
func (s *Service) PlaceBet(ctx context.Context, userID int, kind game.Kind, wager int64, cfg game.Config) (*Snapshot, error) {
	if wager <= 0 {
		return nil, fmt.Errorf("%w: wager must be positive", domain.ErrInvalidInput)
	}
	engine, err := s.engines.New(kind, cfg)
	if err != nil {
		return nil, err
	}

	now := s.now()
	round := &domain.Round{
		ID:         s.newID(),
		UserID:     userID,
		Game:       string(kind),
		Phase:      domain.PhaseActive,
		BaseWager:  wager,
		Wager:      wager,
		Multiplier: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := record(round, engine); err != nil {
		return nil, err
	}

	err = s.retryTx(ctx, "place bet", func(ctx context.Context) error {
		if _, err := s.ledger.ApplyDelta(ctx, userID, -wager, domain.EntryRef{Kind: domain.EntryBet, RoundID: &round.ID}); err != nil {
			return err
		}
		_, err := s.rounds.Create(ctx, round)
		return err
	})
	if err != nil {
		metrics.RecordBet(string(kind), "fail", 0)
		return nil, err
	}
	metrics.RecordBet(string(kind), "success", wager)
	zap.L().Info("bet placed",
		zap.Int("user_id", userID), zap.Stringer("round_id", round.ID), zap.String("game", round.Game), zap.Int64("wager", wager))

	return s.finish(ctx, round, engine), nil
}

// Act applies one player action under the round row lock. Extra stakes are
// debited in the same transaction, so a rejected action costs nothing.
func (s *Service) Act(ctx context.Context, userID int, roundID uuid.UUID, action game.Action) (*Snapshot, error) {
	var (
		round  *domain.Round
		engine game.Engine
		extra  int64
	)
	err := s.retryTx(ctx, "act", func(ctx context.Context) error {
		var err error
		extra = 0
		round, err = s.rounds.GetForUpdate(ctx, roundID)
		if err != nil {
			return err
		}
		if round.UserID != userID {
			return domain.ErrRoundNotFound
		}
		if round.Phase != domain.PhaseActive {
			return fmt.Errorf("%w: round is %s", domain.ErrRoundClosed, round.Phase)
		}

		engine, err = s.engines.Restore(game.Kind(round.Game), round.State)
		if err != nil {
			return err
		}

		if staker, ok := engine.(game.Staker); ok {
			extra, err = staker.ExtraStake(action, round.BaseWager)
			if err != nil {
				return err
			}
			if extra > 0 {
				ref := domain.EntryRef{Kind: domain.EntryDouble, RoundID: &round.ID}
				if _, err := s.ledger.ApplyDelta(ctx, userID, -extra, ref); err != nil {
					return err
				}
				round.Wager += extra
			}
		}

		if err := engine.Apply(action); err != nil {
			return err
		}
		round.UpdatedAt = s.now()
		if err := record(round, engine); err != nil {
			return err
		}
		return s.rounds.Update(ctx, round)
	})
	if err != nil {
		return nil, err
	}
	if extra > 0 {
		metrics.RecordStake(round.Game, extra)
	}

	return s.finish(ctx, round, engine), nil
}

// retryTx runs fn in its own transaction and reruns the whole transaction
// on transient store failures.
func (s *Service) retryTx(ctx context.Context, op string, fn pg.TransactionalFn) error {
	_, err := pg.RetryTransient(ctx, s.opts.Backoff(), op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.txManager.Begin(ctx, fn)
	})
	return err
}

// finish settles a decided round and builds the response snapshot. A failed
// settlement leaves the round SETTLING for the reconciler.
func (s *Service) finish(ctx context.Context, round *domain.Round, engine game.Engine) *Snapshot {
	if round.Phase == domain.PhaseSettling {
		settled, err := s.Settle(ctx, round.ID)
		if err != nil {
			zap.L().Error("settlement deferred", zap.Stringer("round_id", round.ID), zap.Error(err))
		} else {
			round = settled
		}
	}
	return &Snapshot{Round: round, View: engine.View()}
}

// record copies the engine state and, once decided, its result onto round.
func record(round *domain.Round, engine game.Engine) error {
	state, err := json.Marshal(engine)
	if err != nil {
		return fmt.Errorf("encode %s state: %w", round.Game, err)
	}
	round.State = state

	if engine.Done() {
		round.Phase = domain.PhaseSettling
		round.Outcome = string(engine.Outcome())
		round.Multiplier = game.RoundMultiplier(engine.Multiplier())
		round.Payout = game.Payout(round.Wager, round.Multiplier)
	}
	return nil
}

// Settle credits the payout of a decided round exactly once. Calling it on an
// already settled round returns the recorded result without touching the
// balance. Transient store failures are retried with exponential backoff.
func (s *Service) Settle(ctx context.Context, roundID uuid.UUID) (*domain.Round, error) {
	started := time.Now()
	var credited bool

	round, err := pg.RetryTransient(ctx, s.opts.Backoff(), "settle", func(ctx context.Context) (*domain.Round, error) {
		round, fresh, err := s.settleOnce(ctx, roundID)
		credited = fresh
		return round, err
	})
	if err != nil {
		return nil, err
	}

	if credited {
		metrics.RecordSettlement(round.Game, round.Outcome, round.Payout, started)
		zap.L().Info("round settled",
			zap.Stringer("round_id", round.ID), zap.String("outcome", round.Outcome), zap.Int64("payout", round.Payout))
	}
	return round, nil
}

func (s *Service) settleOnce(ctx context.Context, roundID uuid.UUID) (*domain.Round, bool, error) {
	var (
		round *domain.Round
		fresh bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		round, err = s.rounds.GetForUpdate(ctx, roundID)
		if err != nil {
			return err
		}
		if round.Settled {
			return nil
		}
		if round.Phase != domain.PhaseSettling {
			return fmt.Errorf("%w: round is still %s", domain.ErrInvalidAction, round.Phase)
		}

		if round.Payout > 0 {
			ref := domain.EntryRef{Kind: domain.EntryPayout, RoundID: &round.ID}
			if _, err := s.ledger.ApplyDelta(ctx, round.UserID, round.Payout, ref); err != nil {
				return err
			}
		}

		now := s.now()
		ok, err := s.rounds.MarkSettled(ctx, round.ID, round.Payout, now)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: settled concurrently", domain.ErrRoundClosed)
		}
		round.Settled = true
		round.Phase = domain.PhaseTerminal
		round.UpdatedAt = now
		fresh = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return round, fresh, nil
}

// SettleRound is the player-initiated settlement retry.
func (s *Service) SettleRound(ctx context.Context, userID int, roundID uuid.UUID) (*domain.Round, error) {
	if _, err := s.owned(ctx, userID, roundID); err != nil {
		return nil, err
	}
	return s.Settle(ctx, roundID)
}

// Expire force-resolves an abandoned round and settles it.
func (s *Service) Expire(ctx context.Context, roundID uuid.UUID) (*domain.Round, error) {
	err := s.retryTx(ctx, "expire", func(ctx context.Context) error {
		round, err := s.rounds.GetForUpdate(ctx, roundID)
		if err != nil {
			return err
		}
		if round.Settled || round.Phase != domain.PhaseActive {
			return nil
		}

		engine, err := s.engines.Restore(game.Kind(round.Game), round.State)
		if err != nil {
			return err
		}
		engine.Expire()
		round.UpdatedAt = s.now()
		if err := record(round, engine); err != nil {
			return err
		}
		if round.Phase != domain.PhaseSettling {
			return fmt.Errorf("%s engine did not resolve on expiry", round.Game)
		}
		zap.L().Info("round expired", zap.Stringer("round_id", round.ID), zap.String("outcome", round.Outcome))
		return s.rounds.Update(ctx, round)
	})
	if err != nil {
		return nil, err
	}
	return s.Settle(ctx, roundID)
}

// FindStale lists rounds the reconciler should look at.
func (s *Service) FindStale(ctx context.Context, limit int) ([]domain.Round, error) {
	now := s.now()
	return s.rounds.FindStale(ctx, now.Add(-s.opts.SettleGrace), now.Add(-s.opts.RoundTTL), limit)
}

func (s *Service) GetRound(ctx context.Context, userID int, roundID uuid.UUID) (*Snapshot, error) {
	round, err := s.owned(ctx, userID, roundID)
	if err != nil {
		return nil, err
	}
	engine, err := s.engines.Restore(game.Kind(round.Game), round.State)
	if err != nil {
		zap.L().Error("can't restore round", zap.Stringer("round_id", roundID), zap.Error(err))
		return nil, err
	}
	return &Snapshot{Round: round, View: engine.View()}, nil
}

func (s *Service) ListRounds(ctx context.Context, userID int) ([]domain.Round, error) {
	rounds, err := s.rounds.ListByUserID(ctx, userID, s.opts.HistoryLimit)
	if err != nil {
		zap.L().Error("failed to list rounds", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return rounds, nil
}

// owned hides rounds of other players behind ErrRoundNotFound.
func (s *Service) owned(ctx context.Context, userID int, roundID uuid.UUID) (*domain.Round, error) {
	round, err := s.rounds.Get(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if round.UserID != userID {
		return nil, domain.ErrRoundNotFound
	}
	return round, nil
}
