package asteroids

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/game"
)

func reveal(cells ...int) game.Action { return game.Action{Type: ActionReveal, Cells: cells} }

func TestSafeMultiplier(t *testing.T) {
	tests := []struct {
		name            string
		asteroids, safe int
		want            string
	}{
		{"nothing revealed", 3, 0, "1"},
		{"one of one asteroid", 1, 1, "1.02"},
		{"one safe of three", 3, 1, "1.11"},
		{"two safe of three", 3, 2, "1.27"},
		{"last safe cell", 24, 1, "24.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeMultiplier(tt.asteroids, tt.safe)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFactoryValidation(t *testing.T) {
	rng := game.NewSeededRand(3, 4)
	tests := []struct {
		name string
		cfg  game.Config
	}{
		{"negative asteroids", game.Config{Asteroids: -1, Target: 1}},
		{"full board", game.Config{Asteroids: 25, Target: 1}},
		{"negative target", game.Config{Asteroids: 5, Target: -2}},
		{"default target too large", game.Config{Asteroids: 22}},
		{"target too large", game.Config{Asteroids: 5, Target: 21}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Factory{}.New(tt.cfg, rng)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	e, err := Factory{}.New(game.Config{Asteroids: 5, Target: 20}, rng)
	require.NoError(t, err)
	assert.Len(t, e.(*Game).st.Asteroids, 5)

	e, err = Factory{}.New(game.Config{}, rng)
	require.NoError(t, err)
	assert.Len(t, e.(*Game).st.Asteroids, DefaultAsteroids)
	assert.Equal(t, DefaultTarget, e.(*Game).st.Target)
}

func TestSimultaneousRevealWins(t *testing.T) {
	g, err := NewWithField([]int{0, 1, 2}, 3)
	require.NoError(t, err)

	require.NoError(t, g.Apply(reveal(10, 11)))
	assert.False(t, g.Done())
	require.NoError(t, g.Apply(reveal(12)))

	assert.Equal(t, game.OutcomeWin, g.Outcome())
	assert.True(t, SafeMultiplier(3, 3).Equal(g.Multiplier()))
}

func TestAnyAsteroidLoses(t *testing.T) {
	g, err := NewWithField([]int{0, 1, 2}, 4)
	require.NoError(t, err)

	require.NoError(t, g.Apply(reveal(10, 2, 11)))
	assert.Equal(t, game.OutcomeLose, g.Outcome())
	assert.Equal(t, []int{2}, g.st.Hit)
	assert.Empty(t, g.st.Revealed)
	assert.True(t, g.Multiplier().IsZero())
	assert.Equal(t, []int{0, 1, 2}, g.View().(View).Asteroids)
}

func TestRevealValidation(t *testing.T) {
	g, err := NewWithField([]int{24}, 2)
	require.NoError(t, err)
	cell := 5

	assert.ErrorIs(t, g.Apply(reveal()), domain.ErrInvalidAction)
	assert.ErrorIs(t, g.Apply(reveal(25)), domain.ErrInvalidAction)
	assert.ErrorIs(t, g.Apply(reveal(3, 3)), domain.ErrInvalidAction)
	assert.ErrorIs(t, g.Apply(reveal(1, 2, 3)), domain.ErrInvalidAction)

	require.NoError(t, g.Apply(game.Action{Type: ActionReveal, Cell: &cell}))
	assert.ErrorIs(t, g.Apply(reveal(5)), domain.ErrInvalidAction)
	assert.False(t, g.Done())
}

func TestExpire(t *testing.T) {
	g, err := NewWithField([]int{0, 1, 2}, 5)
	require.NoError(t, err)
	g.Expire()
	assert.Equal(t, game.OutcomeWin, g.Outcome())
	assert.True(t, decimal.NewFromInt(1).Equal(g.Multiplier()))

	g, err = NewWithField([]int{0, 1, 2}, 5)
	require.NoError(t, err)
	require.NoError(t, g.Apply(reveal(20)))
	g.Expire()
	assert.True(t, SafeMultiplier(3, 1).Equal(g.Multiplier()))
}

func TestRestore(t *testing.T) {
	g, err := NewWithField([]int{7}, 2)
	require.NoError(t, err)
	require.NoError(t, g.Apply(reveal(0)))

	data, err := json.Marshal(g)
	require.NoError(t, err)
	restored, err := Factory{}.Restore(data)
	require.NoError(t, err)

	require.NoError(t, restored.Apply(reveal(7)))
	assert.Equal(t, game.OutcomeLose, restored.Outcome())
}
