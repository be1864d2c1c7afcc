// Package game defines the round engine contract shared by every wager game
// and the payout arithmetic used to settle them.
package game

import (
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindBlackjack Kind = "blackjack"
	KindHoneybear Kind = "honeybear"
	KindWords     Kind = "words"
	KindAsteroids Kind = "asteroids"
)

type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "WIN"
	OutcomeLose Outcome = "LOSE"
	OutcomePush Outcome = "PUSH"
)

// Action is a player move. Which fields matter depends on the game.
type Action struct {
	Type  string `json:"type"`
	Cell  *int   `json:"cell,omitempty"`
	Cells []int  `json:"cells,omitempty"`
	Guess string `json:"guess,omitempty"`
}

// Config carries the per-round options chosen when the bet is placed.
type Config struct {
	Board      int `json:"board,omitempty"`
	Difficulty int `json:"difficulty,omitempty"`
	Length     int `json:"length,omitempty"`
	Asteroids  int `json:"asteroids,omitempty"`
	Target     int `json:"target,omitempty"`
}

// Engine is the state machine of one round. Engines are pure: they never
// touch balances and can be serialised with encoding/json at any point.
type Engine interface {
	Kind() Kind
	Apply(a Action) error
	Done() bool
	Outcome() Outcome
	// Multiplier is the payout factor applied to the total wager once Done.
	Multiplier() decimal.Decimal
	// Expire forces a resolution for a round abandoned by its player.
	Expire()
	View() any
}

// Staker is implemented by engines whose actions can raise the stake.
type Staker interface {
	ExtraStake(a Action, baseWager int64) (int64, error)
}

// Payout converts a multiplier into whole cents, rounding half away from zero.
func Payout(wager int64, multiplier decimal.Decimal) int64 {
	return decimal.NewFromInt(wager).Mul(multiplier).Round(0).IntPart()
}

// RoundMultiplier rounds to the two places stored with a round.
func RoundMultiplier(m decimal.Decimal) decimal.Decimal {
	return m.Round(2)
}

var houseEdge = decimal.RequireFromString("0.98")

// HouseMultiplier returns 0.98 × Π ratios, rounded to two places.
func HouseMultiplier(ratios ...decimal.Decimal) decimal.Decimal {
	m := houseEdge
	for _, r := range ratios {
		m = m.Mul(r)
	}
	return RoundMultiplier(m)
}
