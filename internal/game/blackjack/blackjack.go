package blackjack

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/game"
)

const (
	ActionHit    = "hit"
	ActionStand  = "stand"
	ActionDouble = "double"
)

var (
	multWin     = decimal.NewFromInt(2)
	multNatural = decimal.RequireFromString("2.5")
	multPush    = decimal.NewFromInt(1)
)

type state struct {
	Deck     []Card       `json:"deck"`
	Player   []Card       `json:"player"`
	Dealer   []Card       `json:"dealer"`
	Acted    bool         `json:"acted"`
	Doubled  bool         `json:"doubled"`
	Natural  bool         `json:"natural"`
	Finished bool         `json:"finished"`
	Outcome  game.Outcome `json:"outcome"`
}

type Game struct {
	st state
}

type Factory struct{}

func (Factory) Kind() game.Kind { return game.KindBlackjack }

func (Factory) New(_ game.Config, rng game.Rand) (game.Engine, error) {
	return NewWithDeck(ShuffledDeck(rng))
}

func (Factory) Restore(data []byte) (game.Engine, error) {
	g := &Game{}
	if err := json.Unmarshal(data, &g.st); err != nil {
		return nil, err
	}
	return g, nil
}

// NewWithDeck deals player, dealer, player, dealer from the top of deck and
// resolves naturals immediately.
func NewWithDeck(deck []Card) (*Game, error) {
	if len(deck) < 4 {
		return nil, fmt.Errorf("%w: deck has %d cards", domain.ErrInvalidInput, len(deck))
	}
	d := append([]Card(nil), deck...)
	g := &Game{st: state{
		Player: []Card{d[0], d[2]},
		Dealer: []Card{d[1], d[3]},
		Deck:   d[4:],
	}}

	playerBJ, dealerBJ := isBlackjack(g.st.Player), isBlackjack(g.st.Dealer)
	switch {
	case playerBJ && dealerBJ:
		g.finish(game.OutcomePush)
	case playerBJ:
		g.st.Natural = true
		g.finish(game.OutcomeWin)
	case dealerBJ:
		g.finish(game.OutcomeLose)
	}
	return g, nil
}

func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.st)
}

func (g *Game) Kind() game.Kind { return game.KindBlackjack }

func (g *Game) Done() bool { return g.st.Finished }

func (g *Game) Outcome() game.Outcome { return g.st.Outcome }

func (g *Game) Multiplier() decimal.Decimal {
	switch g.st.Outcome {
	case game.OutcomeWin:
		if g.st.Natural {
			return multNatural
		}
		return multWin
	case game.OutcomePush:
		return multPush
	}
	return decimal.Zero
}

func (g *Game) canDouble() bool {
	return !g.st.Finished && !g.st.Acted && len(g.st.Player) == 2
}

// ExtraStake charges the base wager again for a double down.
func (g *Game) ExtraStake(a game.Action, baseWager int64) (int64, error) {
	if a.Type != ActionDouble {
		return 0, nil
	}
	if !g.canDouble() {
		return 0, fmt.Errorf("%w: double is only allowed on the first two cards", domain.ErrInvalidAction)
	}
	return baseWager, nil
}

func (g *Game) Apply(a game.Action) error {
	if g.st.Finished {
		return domain.ErrRoundClosed
	}

	if a.Type != ActionStand && len(g.st.Deck) == 0 {
		return fmt.Errorf("%w: deck exhausted", domain.ErrInvalidAction)
	}

	switch a.Type {
	case ActionHit:
		g.st.Acted = true
		g.hit()
		if v := HandValue(g.st.Player); v > 21 {
			g.finish(game.OutcomeLose)
		} else if v == 21 {
			g.stand()
		}
	case ActionStand:
		g.st.Acted = true
		g.stand()
	case ActionDouble:
		if !g.canDouble() {
			return fmt.Errorf("%w: double is only allowed on the first two cards", domain.ErrInvalidAction)
		}
		g.st.Acted = true
		g.st.Doubled = true
		g.hit()
		if HandValue(g.st.Player) > 21 {
			g.finish(game.OutcomeLose)
		} else {
			g.stand()
		}
	default:
		return fmt.Errorf("%w: unknown blackjack action %q", domain.ErrInvalidAction, a.Type)
	}
	return nil
}

func (g *Game) Expire() {
	if !g.st.Finished {
		g.stand()
	}
}

func (g *Game) hit() {
	g.st.Player = append(g.st.Player, g.st.Deck[0])
	g.st.Deck = g.st.Deck[1:]
}

func (g *Game) stand() {
	g.st.Dealer, g.st.Deck = DealerPlay(g.st.Dealer, g.st.Deck)
	g.finish(Compare(HandValue(g.st.Player), HandValue(g.st.Dealer)))
}

func (g *Game) finish(o game.Outcome) {
	g.st.Finished = true
	g.st.Outcome = o
}

// Compare decides a hand once both sides stopped drawing.
func Compare(player, dealer int) game.Outcome {
	switch {
	case player > 21:
		return game.OutcomeLose
	case dealer > 21:
		return game.OutcomeWin
	case player == dealer:
		return game.OutcomePush
	case player > dealer:
		return game.OutcomeWin
	}
	return game.OutcomeLose
}

type View struct {
	Player      []Card       `json:"player"`
	Dealer      []Card       `json:"dealer"`
	HiddenCards int          `json:"hiddenCards"`
	PlayerValue int          `json:"playerValue"`
	DealerValue int          `json:"dealerValue"`
	CanDouble   bool         `json:"canDouble"`
	Doubled     bool         `json:"doubled"`
	Outcome     game.Outcome `json:"outcome,omitempty"`
}

// View hides the dealer hole card until the hand is over.
func (g *Game) View() any {
	v := View{
		Player:      g.st.Player,
		PlayerValue: HandValue(g.st.Player),
		CanDouble:   g.canDouble(),
		Doubled:     g.st.Doubled,
		Outcome:     g.st.Outcome,
	}
	if g.st.Finished {
		v.Dealer = g.st.Dealer
	} else {
		v.Dealer = g.st.Dealer[:1]
		v.HiddenCards = len(g.st.Dealer) - 1
	}
	v.DealerValue = HandValue(v.Dealer)
	return v
}
