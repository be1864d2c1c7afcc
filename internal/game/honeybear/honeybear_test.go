package honeybear

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/game"
)

func cell(row, col, side int) *int {
	c := row*side + col
	return &c
}

// every row keeps its only bee in column 0.
func firstColumnHives(side int) [][]int {
	hives := make([][]int, side)
	for i := range hives {
		hives[i] = []int{0}
	}
	return hives
}

func TestRowMultiplier(t *testing.T) {
	tests := []struct {
		name             string
		side, bees, rows int
		want             string
	}{
		{"no rows cleared", 5, 1, 0, "1"},
		{"one row easy", 5, 1, 1, "1.23"},
		{"two rows easy", 5, 1, 2, "1.53"},
		{"one row hard", 5, 3, 1, "2.45"},
		{"one row six wide", 6, 2, 1, "1.47"},
		{"four wide single bee", 4, 1, 1, "1.31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RowMultiplier(tt.side, tt.bees, tt.rows)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestRowMultiplierMonotonic(t *testing.T) {
	for _, side := range []int{5, 6} {
		for bees := 1; bees <= 3; bees++ {
			prev := RowMultiplier(side, bees, 0)
			for rows := 1; rows <= side; rows++ {
				next := RowMultiplier(side, bees, rows)
				assert.True(t, next.GreaterThanOrEqual(prev), "side %d bees %d rows %d", side, bees, rows)
				prev = next
			}
		}
	}
}

func TestNewValidation(t *testing.T) {
	rng := game.NewSeededRand(1, 1)

	_, err := New(game.Config{Board: 30}, rng)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = New(game.Config{Board: 25, Difficulty: 4}, rng)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	g, err := New(game.Config{Board: 36, Difficulty: 3}, rng)
	require.NoError(t, err)
	require.Len(t, g.st.Hives, 6)
	for _, row := range g.st.Hives {
		require.Len(t, row, 3)
		seen := map[int]bool{}
		for _, col := range row {
			assert.True(t, col >= 0 && col < 6)
			assert.False(t, seen[col])
			seen[col] = true
		}
	}
}

func TestRevealOnlyActiveRow(t *testing.T) {
	g := NewWithHives(5, 1, firstColumnHives(5))

	err := g.Apply(game.Action{Type: ActionReveal, Cell: cell(1, 2, 5)})
	assert.ErrorIs(t, err, domain.ErrInvalidAction)

	require.NoError(t, g.Apply(game.Action{Type: ActionReveal, Cell: cell(0, 2, 5)}))
	assert.Equal(t, 1, g.ActiveRow())
	assert.False(t, g.Done())

	err = g.Apply(game.Action{Type: ActionReveal, Cell: cell(0, 3, 5)})
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
}

func TestBeeLoses(t *testing.T) {
	g := NewWithHives(5, 1, firstColumnHives(5))
	require.NoError(t, g.Apply(game.Action{Type: ActionReveal, Cell: cell(0, 1, 5)}))
	require.NoError(t, g.Apply(game.Action{Type: ActionReveal, Cell: cell(1, 0, 5)}))

	assert.True(t, g.Done())
	assert.Equal(t, game.OutcomeLose, g.Outcome())
	assert.True(t, g.Multiplier().IsZero())
	assert.NotEmpty(t, g.View().(View).Hives)
}

func TestCashout(t *testing.T) {
	g := NewWithHives(5, 1, firstColumnHives(5))
	require.NoError(t, g.Apply(game.Action{Type: ActionReveal, Cell: cell(0, 4, 5)}))
	require.NoError(t, g.Apply(game.Action{Type: ActionReveal, Cell: cell(1, 4, 5)}))
	require.NoError(t, g.Apply(game.Action{Type: ActionCashout}))

	assert.Equal(t, game.OutcomeWin, g.Outcome())
	assert.True(t, decimal.RequireFromString("1.53").Equal(g.Multiplier()))
	assert.Equal(t, int64(153), game.Payout(100, g.Multiplier()))
	assert.ErrorIs(t, g.Apply(game.Action{Type: ActionCashout}), domain.ErrRoundClosed)
}

func TestClearingEveryRowWins(t *testing.T) {
	g := NewWithHives(5, 1, firstColumnHives(5))
	for row := 0; row < 5; row++ {
		require.NoError(t, g.Apply(game.Action{Type: ActionReveal, Cell: cell(row, 1, 5)}))
	}
	assert.True(t, g.Done())
	assert.Equal(t, game.OutcomeWin, g.Outcome())
	assert.True(t, RowMultiplier(5, 1, 5).Equal(g.Multiplier()))
}

func TestExpireCashesOut(t *testing.T) {
	g := NewWithHives(5, 2, [][]int{{0, 1}, {0, 1}, {0, 1}, {0, 1}, {0, 1}})
	g.Expire()
	assert.Equal(t, game.OutcomeWin, g.Outcome())
	assert.True(t, decimal.NewFromInt(1).Equal(g.Multiplier()))
}

func TestViewHidesHives(t *testing.T) {
	g := NewWithHives(5, 1, firstColumnHives(5))
	v := g.View().(View)
	assert.Nil(t, v.Hives)
	assert.True(t, decimal.NewFromInt(1).Equal(v.CurrentMultiplier))
	assert.True(t, decimal.RequireFromString("1.23").Equal(v.NextMultiplier))
}

func TestRestore(t *testing.T) {
	g := NewWithHives(5, 1, firstColumnHives(5))
	require.NoError(t, g.Apply(game.Action{Type: ActionReveal, Cell: cell(0, 3, 5)}))

	data, err := json.Marshal(g)
	require.NoError(t, err)
	restored, err := Factory{}.Restore(data)
	require.NoError(t, err)

	assert.Equal(t, 1, restored.(*Game).ActiveRow())
	assert.ErrorIs(t, restored.Apply(game.Action{Type: ActionReveal}), domain.ErrInvalidAction)
}
