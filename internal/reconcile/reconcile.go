// Package reconcile finishes rounds that no request will finish: settlements
// whose credit was never confirmed and rounds abandoned by their player.
package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/metrics"
)

const (
	actionSettle = "settle"
	actionExpire = "expire"
)

type Rounds interface {
	FindStale(ctx context.Context, limit int) ([]domain.Round, error)
	Settle(ctx context.Context, roundID uuid.UUID) (*domain.Round, error)
	Expire(ctx context.Context, roundID uuid.UUID) (*domain.Round, error)
}

type Options struct {
	Interval  time.Duration
	Workers   int
	BatchSize int
}

type Service struct {
	rounds     Rounds
	workerPool WorkerPoolI
	interval   time.Duration
	limit      int
	inflight   sync.Map
}

func New(rounds Rounds, opts Options) *Service {
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Second
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	return &Service{
		rounds:     rounds,
		workerPool: NewWorkerPool(opts.Workers),
		interval:   opts.Interval,
		limit:      opts.BatchSize,
	}
}

// Start runs reconcile passes until ctx is cancelled and closes the worker
// pool on the way out. The returned channel is closed when the loop exits.
func (s *Service) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	zap.L().Info("reconciler started", zap.Duration("interval", s.interval))
	go func() {
		defer close(done)
		defer s.workerPool.Close()
		s.run(ctx)
	}()
	return done
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("reconciler stopped")
			return
		case <-ticker.C:
			if err := s.Pass(ctx); err != nil {
				zap.L().Error("reconcile pass failed", zap.Error(err))
			}
		}
	}
}

// Pass handles one batch of stale rounds and waits for every queued round
// to finish. A round already being handled by an earlier pass is skipped.
func (s *Service) Pass(ctx context.Context) error {
	rounds, err := s.rounds.FindStale(ctx, s.limit)
	if err != nil {
		return fmt.Errorf("find stale rounds: %w", err)
	}
	metrics.SetStaleRounds(len(rounds))
	if len(rounds) == 0 {
		return nil
	}
	zap.L().Info("reconciling stale rounds", zap.Int("count", len(rounds)))

	var (
		g    errgroup.Group
		done sync.WaitGroup
	)
	for _, round := range rounds {
		round := round

		if _, loaded := s.inflight.LoadOrStore(round.ID, struct{}{}); loaded {
			continue
		}

		done.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer done.Done()
				defer s.inflight.Delete(round.ID)
				return s.handleRound(ctx, round)
			})
			if err != nil {
				done.Done()
				s.inflight.Delete(round.ID)
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	done.Wait()
	return err
}

func (s *Service) handleRound(ctx context.Context, round domain.Round) error {
	var (
		action string
		err    error
	)
	switch round.Phase {
	case domain.PhaseSettling:
		action = actionSettle
		_, err = s.rounds.Settle(ctx, round.ID)
	case domain.PhaseActive:
		action = actionExpire
		_, err = s.rounds.Expire(ctx, round.ID)
	default:
		return nil
	}
	metrics.RecordReconcile(action, err)
	if err != nil {
		return fmt.Errorf("%s round %s: %w", action, round.ID, err)
	}
	zap.L().Info("round reconciled", zap.String("action", action), zap.Stringer("round_id", round.ID))
	return nil
}
