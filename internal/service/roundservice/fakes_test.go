package roundservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/game"
	"github.com/MaxwellWhoSquats/acex/internal/game/blackjack"
	"github.com/MaxwellWhoSquats/acex/internal/pg"
)

// memStore keeps balances and rounds in memory with the same conditional
// semantics as the Postgres repositories.
type memStore struct {
	mu       sync.Mutex
	balances map[int]int64
	rounds   map[uuid.UUID]domain.Round
	entries  []domain.LedgerEntry
	minSeen  int64
}

func newMemStore(balances map[int]int64) *memStore {
	return &memStore{balances: balances, rounds: make(map[uuid.UUID]domain.Round)}
}

func (m *memStore) balance(userID int) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[userID]
}

func (m *memStore) entriesOf(kind domain.EntryKind) []domain.LedgerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range m.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type memLedger struct{ *memStore }

func (l memLedger) ApplyDelta(_ context.Context, userID int, delta int64, ref domain.EntryRef) (*domain.Balance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.balances[userID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if current+delta < 0 {
		return nil, domain.ErrInsufficientFunds
	}
	current += delta
	l.balances[userID] = current
	if current < l.minSeen {
		l.minSeen = current
	}
	l.entries = append(l.entries, domain.LedgerEntry{UserID: userID, Kind: ref.Kind, Amount: delta, BalanceAfter: current, RoundID: ref.RoundID})
	return &domain.Balance{UserID: userID, CurrentBalance: current}, nil
}

type memRounds struct{ *memStore }

func clone(r domain.Round) *domain.Round {
	r.State = append([]byte(nil), r.State...)
	return &r
}

func (m memRounds) Create(_ context.Context, round *domain.Round) (*domain.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	round.Version = 1
	m.rounds[round.ID] = *clone(*round)
	return round, nil
}

func (m memRounds) Get(_ context.Context, id uuid.UUID) (*domain.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[id]
	if !ok {
		return nil, domain.ErrRoundNotFound
	}
	return clone(r), nil
}

func (m memRounds) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	return m.Get(ctx, id)
}

func (m memRounds) Update(_ context.Context, round *domain.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.rounds[round.ID]
	if !ok || stored.Version != round.Version || stored.Settled {
		return domain.ErrRoundClosed
	}
	round.Version++
	m.rounds[round.ID] = *clone(*round)
	return nil
}

func (m memRounds) MarkSettled(_ context.Context, id uuid.UUID, payout int64, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[id]
	if !ok || r.Settled {
		return false, nil
	}
	r.Settled = true
	r.Phase = domain.PhaseTerminal
	r.Payout = payout
	r.UpdatedAt = now
	r.Version++
	m.rounds[id] = r
	return true, nil
}

func (m memRounds) FindStale(_ context.Context, settlingBefore, activeBefore time.Time, limit int) ([]domain.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Round
	for _, r := range m.rounds {
		if r.Settled {
			continue
		}
		if (r.Phase == domain.PhaseSettling && r.UpdatedAt.Before(settlingBefore)) ||
			(r.Phase == domain.PhaseActive && r.UpdatedAt.Before(activeBefore)) {
			out = append(out, *clone(r))
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m memRounds) ListByUserID(_ context.Context, userID, limit int) ([]domain.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Round
	for _, r := range m.rounds {
		if r.UserID == userID && len(out) < limit {
			out = append(out, *clone(r))
		}
	}
	return out, nil
}

type passthroughTx struct{}

func (passthroughTx) Begin(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }

// deckFactory deals every blackjack round from the same prepared deck.
type deckFactory struct{ deck []blackjack.Card }

func (deckFactory) Kind() game.Kind { return game.KindBlackjack }

func (f deckFactory) New(game.Config, game.Rand) (game.Engine, error) {
	return blackjack.NewWithDeck(f.deck)
}

func (deckFactory) Restore(data []byte) (game.Engine, error) {
	return blackjack.Factory{}.Restore(data)
}

func deck(ranks ...string) []blackjack.Card {
	cards := make([]blackjack.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = blackjack.Card{Rank: r, Suit: "hearts"}
	}
	return cards
}

// flakyLedger fails the first failures calls with a transient error.
type flakyLedger struct {
	memLedger
	failures int
	calls    int
}

func (l *flakyLedger) ApplyDelta(ctx context.Context, userID int, delta int64, ref domain.EntryRef) (*domain.Balance, error) {
	l.calls++
	if l.calls <= l.failures {
		return nil, fmt.Errorf("%w: conn reset", domain.ErrStoreUnavailable)
	}
	return l.memLedger.ApplyDelta(ctx, userID, delta, ref)
}
