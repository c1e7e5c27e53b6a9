package shoe

import (
	"math/rand/v2"

	"github.com/arcanaland/twentyone/internal/card"
)

// Shoe is an ordered pile of cards. The top of the shoe is the end of the slice.
type Shoe struct {
	cards []card.Card
}

// ShuffledDeck builds a shoe of numDecks standard 52-card decks and shuffles it
// with rng. A nil rng uses the global source.
func ShuffledDeck(numDecks int, rng *rand.Rand) *Shoe {
	s := FromCards(build(numDecks))
	s.Shuffle(rng)
	return s
}

// FromCards returns an unshuffled shoe whose last card is drawn first.
func FromCards(cards []card.Card) *Shoe {
	return &Shoe{cards: cards}
}

func build(numDecks int) []card.Card {
	if numDecks < 0 {
		numDecks = 0
	}
	cards := make([]card.Card, 0, numDecks*len(card.Ranks)*len(card.Suits))
	for _, r := range card.Ranks {
		for _, s := range card.Suits {
			for i := 0; i < numDecks; i++ {
				cards = append(cards, card.New(s, r))
			}
		}
	}
	return cards
}

func (s *Shoe) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) { s.cards[i], s.cards[j] = s.cards[j], s.cards[i] }
	if rng == nil {
		rand.Shuffle(len(s.cards), swap)
		return
	}
	rng.Shuffle(len(s.cards), swap)
}

// Draw pops the top card. An exhausted shoe returns the placeholder card.
func (s *Shoe) Draw() card.Card {
	if len(s.cards) == 0 {
		return card.Card{}
	}
	c := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return c
}

func (s *Shoe) Remaining() int {
	return len(s.cards)
}
