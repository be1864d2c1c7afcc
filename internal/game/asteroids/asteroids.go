// Package asteroids is a 5×5 minefield where the player commits to a number
// of safe cells and may uncover several of them in one move.
package asteroids

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/game"
)

const (
	ActionReveal = "reveal"

	Cells = 25

	DefaultAsteroids = 3
	DefaultTarget    = 5
)

type state struct {
	Asteroids []int        `json:"asteroids"`
	Target    int          `json:"target"`
	Revealed  []int        `json:"revealed"`
	Hit       []int        `json:"hit,omitempty"`
	Finished  bool         `json:"finished"`
	Outcome   game.Outcome `json:"outcome"`
}

type Game struct {
	st state
}

type Factory struct{}

func (Factory) Kind() game.Kind { return game.KindAsteroids }

func (Factory) New(cfg game.Config, rng game.Rand) (game.Engine, error) {
	if cfg.Asteroids == 0 {
		cfg.Asteroids = DefaultAsteroids
	}
	if cfg.Target == 0 {
		cfg.Target = DefaultTarget
	}
	if err := validate(cfg.Asteroids, cfg.Target); err != nil {
		return nil, err
	}
	cells := make([]int, Cells)
	for i := range cells {
		cells[i] = i
	}
	game.Shuffle(rng, Cells, func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	return NewWithField(cells[:cfg.Asteroids], cfg.Target)
}

func (Factory) Restore(data []byte) (game.Engine, error) {
	g := &Game{}
	if err := json.Unmarshal(data, &g.st); err != nil {
		return nil, err
	}
	return g, nil
}

func validate(asteroids, target int) error {
	if asteroids < 1 || asteroids > Cells-1 {
		return fmt.Errorf("%w: asteroids must be between 1 and %d", domain.ErrInvalidInput, Cells-1)
	}
	if target < 1 || target > Cells-asteroids {
		return fmt.Errorf("%w: target must be between 1 and %d", domain.ErrInvalidInput, Cells-asteroids)
	}
	return nil
}

// NewWithField builds a round with known asteroid cells.
func NewWithField(asteroids []int, target int) (*Game, error) {
	if err := validate(len(asteroids), target); err != nil {
		return nil, err
	}
	field := append([]int(nil), asteroids...)
	sort.Ints(field)
	return &Game{st: state{Asteroids: field, Target: target, Revealed: []int{}}}, nil
}

func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.st)
}

func (g *Game) Kind() game.Kind { return game.KindAsteroids }

func (g *Game) Done() bool { return g.st.Finished }

func (g *Game) Outcome() game.Outcome { return g.st.Outcome }

func (g *Game) Multiplier() decimal.Decimal {
	if g.st.Outcome != game.OutcomeWin {
		return decimal.Zero
	}
	return SafeMultiplier(len(g.st.Asteroids), len(g.st.Revealed))
}

// SafeMultiplier is 0.98 × Π_{i<safe} (25-i)/(25-asteroids-i), or 1 when no
// safe cell has been uncovered.
func SafeMultiplier(asteroids, safe int) decimal.Decimal {
	if safe == 0 {
		return decimal.NewFromInt(1)
	}
	ratios := make([]decimal.Decimal, safe)
	for i := range ratios {
		ratios[i] = decimal.NewFromInt(int64(Cells - i)).Div(decimal.NewFromInt(int64(Cells - asteroids - i)))
	}
	return game.HouseMultiplier(ratios...)
}

func (g *Game) Apply(a game.Action) error {
	if g.st.Finished {
		return domain.ErrRoundClosed
	}
	if a.Type != ActionReveal {
		return fmt.Errorf("%w: unknown asteroids action %q", domain.ErrInvalidAction, a.Type)
	}

	cells := a.Cells
	if a.Cell != nil {
		cells = append([]int{*a.Cell}, cells...)
	}
	if err := g.checkCells(cells); err != nil {
		return err
	}

	for _, c := range cells {
		if g.isAsteroid(c) {
			g.st.Hit = append(g.st.Hit, c)
		}
	}
	if len(g.st.Hit) > 0 {
		g.finish(game.OutcomeLose)
		return nil
	}

	g.st.Revealed = append(g.st.Revealed, cells...)
	if len(g.st.Revealed) >= g.st.Target {
		g.finish(game.OutcomeWin)
	}
	return nil
}

func (g *Game) checkCells(cells []int) error {
	if len(cells) == 0 {
		return fmt.Errorf("%w: reveal needs at least one cell", domain.ErrInvalidAction)
	}
	if len(g.st.Revealed)+len(cells) > g.st.Target {
		return fmt.Errorf("%w: only %d cells left to reveal", domain.ErrInvalidAction, g.st.Target-len(g.st.Revealed))
	}
	seen := make(map[int]bool, len(g.st.Revealed)+len(cells))
	for _, c := range g.st.Revealed {
		seen[c] = true
	}
	for _, c := range cells {
		if c < 0 || c >= Cells {
			return fmt.Errorf("%w: cell %d is off the board", domain.ErrInvalidAction, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: cell %d already revealed", domain.ErrInvalidAction, c)
		}
		seen[c] = true
	}
	return nil
}

func (g *Game) isAsteroid(cell int) bool {
	i := sort.SearchInts(g.st.Asteroids, cell)
	return i < len(g.st.Asteroids) && g.st.Asteroids[i] == cell
}

// Expire cashes out the safe cells uncovered so far.
func (g *Game) Expire() {
	if !g.st.Finished {
		g.finish(game.OutcomeWin)
	}
}

func (g *Game) finish(o game.Outcome) {
	g.st.Finished = true
	g.st.Outcome = o
}

type View struct {
	AsteroidCount int             `json:"asteroidCount"`
	Target        int             `json:"target"`
	Revealed      []int           `json:"revealed"`
	Hit           []int           `json:"hit,omitempty"`
	Asteroids     []int           `json:"asteroids,omitempty"`
	TargetPayout  decimal.Decimal `json:"targetMultiplier"`
	Outcome       game.Outcome    `json:"outcome,omitempty"`
}

func (g *Game) View() any {
	v := View{
		AsteroidCount: len(g.st.Asteroids),
		Target:        g.st.Target,
		Revealed:      g.st.Revealed,
		Hit:           g.st.Hit,
		TargetPayout:  SafeMultiplier(len(g.st.Asteroids), g.st.Target),
		Outcome:       g.st.Outcome,
	}
	if g.st.Finished {
		v.Asteroids = g.st.Asteroids
	}
	return v
}
