package game_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/game"
	"github.com/MaxwellWhoSquats/acex/internal/game/asteroids"
	"github.com/MaxwellWhoSquats/acex/internal/game/blackjack"
	"github.com/MaxwellWhoSquats/acex/internal/game/honeybear"
	"github.com/MaxwellWhoSquats/acex/internal/game/words"
)

func TestPayout(t *testing.T) {
	tests := []struct {
		name  string
		wager int64
		mult  string
		want  int64
	}{
		{"lose", 200, "0", 0},
		{"push", 200, "1", 200},
		{"double", 200, "2", 400},
		{"natural", 200, "2.5", 500},
		{"rounds half up", 1, "2.5", 3},
		{"grid", 333, "1.23", 410},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, game.Payout(tt.wager, decimal.RequireFromString(tt.mult)))
		})
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	items := make([]int, 30)
	for i := range items {
		items[i] = i
	}
	game.Shuffle(game.NewSeededRand(9, 9), len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	assert.Len(t, seen, 30)
}

func TestNewRand(t *testing.T) {
	rng := game.NewRand()
	for i := 0; i < 100; i++ {
		n := rng.IntN(52)
		require.True(t, n >= 0 && n < 52)
	}
}

func newRegistry() *game.Registry {
	return game.NewRegistry(game.NewSeededRand(1, 2),
		blackjack.Factory{}, honeybear.Factory{}, words.Factory{}, asteroids.Factory{})
}

func TestRegistry(t *testing.T) {
	reg := newRegistry()

	_, err := reg.New("roulette", game.Config{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cases := []struct {
		kind game.Kind
		cfg  game.Config
	}{
		{game.KindBlackjack, game.Config{}},
		{game.KindHoneybear, game.Config{Board: 36, Difficulty: 2}},
		{game.KindWords, game.Config{Length: 4}},
		{game.KindAsteroids, game.Config{Asteroids: 3, Target: 5}},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			e, err := reg.New(tc.kind, tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, e.Kind())

			data, err := json.Marshal(e)
			require.NoError(t, err)
			restored, err := reg.Restore(tc.kind, data)
			require.NoError(t, err)
			assert.Equal(t, e.View(), restored.View())
		})
	}

	_, err = reg.Restore(game.KindWords, []byte("{"))
	assert.Error(t, err)
}
