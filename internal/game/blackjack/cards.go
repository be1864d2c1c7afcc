package blackjack

import (
	"strconv"

	"github.com/MaxwellWhoSquats/acex/internal/game"
)

type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

var (
	suits = []string{"hearts", "diamonds", "clubs", "spades"}
	ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

func (c Card) value() int {
	switch c.Rank {
	case "A":
		return 1
	case "J", "Q", "K":
		return 10
	}
	v, _ := strconv.Atoi(c.Rank)
	return v
}

// NewDeck returns the 52 distinct cards in a fixed order.
func NewDeck() []Card {
	deck := make([]Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

func ShuffledDeck(rng game.Rand) []Card {
	deck := NewDeck()
	game.Shuffle(rng, len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// HandValue totals the non-aces first and then takes each ace as 11 while
// that keeps the running total at or below 21, otherwise as 1. Aces are not
// revalued afterwards, so A,A,10 is 22.
func HandValue(cards []Card) int {
	total, aces := 0, 0
	for _, c := range cards {
		if c.Rank == "A" {
			aces++
			continue
		}
		total += c.value()
	}
	for ; aces > 0; aces-- {
		if total+11 <= 21 {
			total += 11
		} else {
			total++
		}
	}
	return total
}

func isBlackjack(cards []Card) bool {
	return len(cards) == 2 && HandValue(cards) == 21
}

// DealerPlay draws from deck while the dealer total is below 17 and returns
// the final hand and the remaining deck.
func DealerPlay(hand, deck []Card) ([]Card, []Card) {
	for HandValue(hand) < 17 && len(deck) > 0 {
		hand = append(hand, deck[0])
		deck = deck[1:]
	}
	return hand, deck
}
