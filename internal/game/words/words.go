// Package words is a four-attempt letter guessing game scored like Wordle.
package words

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/game"
)

const (
	ActionGuess = "guess"

	MaxAttempts   = 4
	DefaultLength = 5
)

var payouts = map[int]decimal.Decimal{
	4: decimal.NewFromInt(1),
	5: decimal.NewFromInt(3),
	6: decimal.NewFromInt(5),
}

type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

type Attempt struct {
	Word  string `json:"word"`
	Marks []Mark `json:"marks"`
}

type state struct {
	Length   int          `json:"length"`
	Target   string       `json:"target"`
	Attempts []Attempt    `json:"attempts"`
	Finished bool         `json:"finished"`
	Outcome  game.Outcome `json:"outcome"`
}

type Game struct {
	st state
}

type Factory struct{}

func (Factory) Kind() game.Kind { return game.KindWords }

func (Factory) New(cfg game.Config, rng game.Rand) (game.Engine, error) {
	length := cfg.Length
	if length == 0 {
		length = DefaultLength
	}
	dict := Dictionary(length)
	if dict == nil {
		return nil, fmt.Errorf("%w: word length must be 4, 5 or 6", domain.ErrInvalidInput)
	}
	return NewWithTarget(dict[rng.IntN(len(dict))]), nil
}

func (Factory) Restore(data []byte) (game.Engine, error) {
	g := &Game{}
	if err := json.Unmarshal(data, &g.st); err != nil {
		return nil, err
	}
	return g, nil
}

func NewWithTarget(target string) *Game {
	return &Game{st: state{Length: len(target), Target: target, Attempts: []Attempt{}}}
}

func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.st)
}

func (g *Game) Kind() game.Kind { return game.KindWords }

func (g *Game) Done() bool { return g.st.Finished }

func (g *Game) Outcome() game.Outcome { return g.st.Outcome }

func (g *Game) Multiplier() decimal.Decimal {
	if g.st.Outcome != game.OutcomeWin {
		return decimal.Zero
	}
	return payouts[g.st.Length]
}

func (g *Game) Apply(a game.Action) error {
	if g.st.Finished {
		return domain.ErrRoundClosed
	}
	if a.Type != ActionGuess {
		return fmt.Errorf("%w: unknown words action %q", domain.ErrInvalidAction, a.Type)
	}

	guess := strings.ToLower(strings.TrimSpace(a.Guess))
	if err := g.validate(guess); err != nil {
		return err
	}

	marks := Score(guess, g.st.Target)
	g.st.Attempts = append(g.st.Attempts, Attempt{Word: guess, Marks: marks})

	switch {
	case guess == g.st.Target:
		g.finish(game.OutcomeWin)
	case len(g.st.Attempts) >= MaxAttempts:
		g.finish(game.OutcomeLose)
	}
	return nil
}

func (g *Game) validate(guess string) error {
	if len(guess) != g.st.Length {
		return fmt.Errorf("%w: guess must have %d letters", domain.ErrInvalidAction, g.st.Length)
	}
	for _, r := range guess {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("%w: guess must contain letters a-z only", domain.ErrInvalidAction)
		}
	}
	return nil
}

// Score marks exact positions first, then marks a letter present only while
// the target still has unmatched copies of it.
func Score(guess, target string) []Mark {
	marks := make([]Mark, len(guess))
	pool := make(map[byte]int)

	for i := 0; i < len(guess); i++ {
		if guess[i] == target[i] {
			marks[i] = MarkCorrect
		} else {
			pool[target[i]]++
		}
	}
	for i := 0; i < len(guess); i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		if pool[guess[i]] > 0 {
			marks[i] = MarkPresent
			pool[guess[i]]--
		} else {
			marks[i] = MarkAbsent
		}
	}
	return marks
}

// Expire forfeits an unfinished round.
func (g *Game) Expire() {
	if !g.st.Finished {
		g.finish(game.OutcomeLose)
	}
}

func (g *Game) finish(o game.Outcome) {
	g.st.Finished = true
	g.st.Outcome = o
}

type View struct {
	Length    int          `json:"length"`
	Attempts  []Attempt    `json:"attempts"`
	Remaining int          `json:"remaining"`
	Target    string       `json:"target,omitempty"`
	Outcome   game.Outcome `json:"outcome,omitempty"`
}

func (g *Game) View() any {
	v := View{
		Length:    g.st.Length,
		Attempts:  g.st.Attempts,
		Remaining: MaxAttempts - len(g.st.Attempts),
		Outcome:   g.st.Outcome,
	}
	if g.st.Finished {
		v.Target = g.st.Target
	}
	return v
}
