// Package honeybear is a climbing risk grid: each row hides a fixed number of
// bees and the player picks one cell per row, bottom up, cashing out whenever
// they like.
package honeybear

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/game"
)

const (
	ActionReveal  = "reveal"
	ActionCashout = "cashout"

	DefaultBoard = 25
)

var boardSides = map[int]int{25: 5, 36: 6}

type state struct {
	Side     int          `json:"side"`
	Bees     int          `json:"bees"`
	Hives    [][]int      `json:"hives"`
	Picks    []int        `json:"picks"`
	Stung    *int         `json:"stung,omitempty"`
	Finished bool         `json:"finished"`
	Outcome  game.Outcome `json:"outcome"`
}

type Game struct {
	st state
}

type Factory struct{}

func (Factory) Kind() game.Kind { return game.KindHoneybear }

func (Factory) New(cfg game.Config, rng game.Rand) (game.Engine, error) {
	return New(cfg, rng)
}

func (Factory) Restore(data []byte) (game.Engine, error) {
	g := &Game{}
	if err := json.Unmarshal(data, &g.st); err != nil {
		return nil, err
	}
	return g, nil
}

// New places cfg.Difficulty bees in every row of a cfg.Board grid.
func New(cfg game.Config, rng game.Rand) (*Game, error) {
	board := cfg.Board
	if board == 0 {
		board = DefaultBoard
	}
	side, ok := boardSides[board]
	if !ok {
		return nil, fmt.Errorf("%w: board must be 25 or 36 cells", domain.ErrInvalidInput)
	}
	bees := cfg.Difficulty
	if bees == 0 {
		bees = 1
	}
	if bees < 1 || bees > 3 {
		return nil, fmt.Errorf("%w: difficulty must be between 1 and 3", domain.ErrInvalidInput)
	}

	hives := make([][]int, side)
	for row := range hives {
		cols := make([]int, side)
		for i := range cols {
			cols[i] = i
		}
		game.Shuffle(rng, side, func(i, j int) { cols[i], cols[j] = cols[j], cols[i] })
		hives[row] = append([]int(nil), cols[:bees]...)
	}
	return NewWithHives(side, bees, hives), nil
}

// NewWithHives builds a game with a known bee layout. hives[row] lists the
// bee columns of that row.
func NewWithHives(side, bees int, hives [][]int) *Game {
	return &Game{st: state{Side: side, Bees: bees, Hives: hives, Picks: []int{}}}
}

func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.st)
}

func (g *Game) Kind() game.Kind { return game.KindHoneybear }

func (g *Game) Done() bool { return g.st.Finished }

func (g *Game) Outcome() game.Outcome { return g.st.Outcome }

// ActiveRow is the only row that accepts a pick.
func (g *Game) ActiveRow() int { return len(g.st.Picks) }

func (g *Game) Multiplier() decimal.Decimal {
	if g.st.Outcome != game.OutcomeWin {
		return decimal.Zero
	}
	return RowMultiplier(g.st.Side, g.st.Bees, len(g.st.Picks))
}

// RowMultiplier is 1 before any row is cleared and
// 0.98 × (side/(side-bees))^rows afterwards.
func RowMultiplier(side, bees, rows int) decimal.Decimal {
	if rows == 0 {
		return decimal.NewFromInt(1)
	}
	ratio := decimal.NewFromInt(int64(side)).Div(decimal.NewFromInt(int64(side - bees)))
	ratios := make([]decimal.Decimal, rows)
	for i := range ratios {
		ratios[i] = ratio
	}
	return game.HouseMultiplier(ratios...)
}

func (g *Game) Apply(a game.Action) error {
	if g.st.Finished {
		return domain.ErrRoundClosed
	}

	switch a.Type {
	case ActionReveal:
		if a.Cell == nil {
			return fmt.Errorf("%w: reveal needs a cell", domain.ErrInvalidAction)
		}
		return g.reveal(*a.Cell)
	case ActionCashout:
		g.finish(game.OutcomeWin)
		return nil
	}
	return fmt.Errorf("%w: unknown honeybear action %q", domain.ErrInvalidAction, a.Type)
}

func (g *Game) reveal(cell int) error {
	side := g.st.Side
	if cell < 0 || cell >= side*side {
		return fmt.Errorf("%w: cell %d is off the board", domain.ErrInvalidAction, cell)
	}
	row, col := cell/side, cell%side
	if row != g.ActiveRow() {
		return fmt.Errorf("%w: only row %d can be picked", domain.ErrInvalidAction, g.ActiveRow())
	}

	for _, bee := range g.st.Hives[row] {
		if bee == col {
			g.st.Stung = &cell
			g.finish(game.OutcomeLose)
			return nil
		}
	}

	g.st.Picks = append(g.st.Picks, col)
	if len(g.st.Picks) == side {
		g.finish(game.OutcomeWin)
	}
	return nil
}

// Expire cashes out at whatever the cleared rows are worth.
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
	Side              int             `json:"side"`
	Bees              int             `json:"bees"`
	ActiveRow         int             `json:"activeRow"`
	Picks             []int           `json:"picks"`
	CurrentMultiplier decimal.Decimal `json:"currentMultiplier"`
	NextMultiplier    decimal.Decimal `json:"nextMultiplier"`
	Hives             [][]int         `json:"hives,omitempty"`
	Stung             *int            `json:"stung,omitempty"`
	Outcome           game.Outcome    `json:"outcome,omitempty"`
}

// View reveals the bee layout only once the round is over.
func (g *Game) View() any {
	cleared := len(g.st.Picks)
	v := View{
		Side:              g.st.Side,
		Bees:              g.st.Bees,
		ActiveRow:         cleared,
		Picks:             g.st.Picks,
		CurrentMultiplier: RowMultiplier(g.st.Side, g.st.Bees, cleared),
		Stung:             g.st.Stung,
		Outcome:           g.st.Outcome,
	}
	if cleared < g.st.Side {
		v.NextMultiplier = RowMultiplier(g.st.Side, g.st.Bees, cleared+1)
	}
	if g.st.Finished {
		v.Hives = g.st.Hives
	}
	return v
}
