package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Balance amounts are integer cents.
type Balance struct {
	ID             int        `db:"id"`
	UserID         int        `db:"user_id"`
	CurrentBalance int64      `db:"current_balance"`
	LastRefilledAt *time.Time `db:"last_refilled_at"`
}

type EntryKind string

const (
	EntryBet    EntryKind = "bet"
	EntryDouble EntryKind = "double"
	EntryPayout EntryKind = "payout"
	EntryRefund EntryKind = "refund"
	EntryRefill EntryKind = "refill"
	EntryAdjust EntryKind = "adjust"
)

// EntryRef describes why a balance moved.
type EntryRef struct {
	Kind    EntryKind
	RoundID *uuid.UUID
}

type LedgerEntry struct {
	ID           int64      `db:"id"`
	UserID       int        `db:"user_id"`
	Kind         EntryKind  `db:"kind"`
	Amount       int64      `db:"amount"`
	BalanceAfter int64      `db:"balance_after"`
	RoundID      *uuid.UUID `db:"round_id"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Phase string

const (
	PhaseNotStarted Phase = "NOT_STARTED"
	PhaseActive     Phase = "ACTIVE"
	PhaseSettling   Phase = "SETTLING"
	PhaseTerminal   Phase = "TERMINAL"
)

type Round struct {
	ID         uuid.UUID       `db:"id"`
	UserID     int             `db:"user_id"`
	Game       string          `db:"game"`
	Phase      Phase           `db:"phase"`
	BaseWager  int64           `db:"base_wager"`
	Wager      int64           `db:"wager"`
	Outcome    string          `db:"outcome"`
	Multiplier decimal.Decimal `db:"multiplier"`
	Payout     int64           `db:"payout"`
	Settled    bool            `db:"settled"`
	State      json.RawMessage `db:"state"`
	Version    int             `db:"version"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

type RefillResult struct {
	Granted       bool
	Balance       int64
	TimeRemaining time.Duration
}

type RefillStatus struct {
	CanRefill     bool
	TimeRemaining time.Duration
}
