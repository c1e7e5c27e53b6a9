package hand

import (
	"errors"

	"github.com/arcanaland/twentyone/internal/card"
)

const (
	// Blackjack is the best total a hand can reach.
	Blackjack = 21
	// DealerStand is the total at which the dealer stops drawing.
	DealerStand = 17
	// MaxCards is the hand capacity. A hand that reaches it stands.
	MaxCards = 10
)

// ErrTerminal is returned when a card is added to a hand that already stood or busted.
var ErrTerminal = errors.New("hand is standing or bust")

// Role selects the Ace counting policy.
type Role uint8

const (
	Player Role = iota
	Dealer
)

func (r Role) String() string {
	if r == Dealer {
		return "dealer"
	}
	return "player"
}

// Hand holds one participant's cards and the running total.
//
// Each Ace is counted high or low once, when it is added, and never
// reconsidered. A hand with several Aces may therefore end on a lower total
// than the best possible one.
type Hand struct {
	role     Role
	cards    []card.Card
	total    int
	standing bool
	bust     bool
}

func New(role Role) *Hand {
	return &Hand{role: role, cards: make([]card.Card, 0, MaxCards)}
}

// AddCard appends c and updates the total and the terminal flags.
func (h *Hand) AddCard(c card.Card) error {
	if h.IsTerminal() {
		return ErrTerminal
	}
	h.cards = append(h.cards, c)
	h.total += h.valueOf(c)

	if len(h.cards) == MaxCards {
		h.standing = true
	}
	if h.total > Blackjack {
		h.bust = true
	}
	return nil
}

// valueOf decides how much c adds given the total before it.
func (h *Hand) valueOf(c card.Card) int {
	if c.Rank != card.Ace {
		return c.Rank.BaseValue(false)
	}
	high := h.total + c.Rank.BaseValue(true)
	switch h.role {
	case Dealer:
		return c.Rank.BaseValue(high >= DealerStand && high < Blackjack)
	default:
		return c.Rank.BaseValue(high <= Blackjack)
	}
}

// Stand ends the hand's turn. Standing twice is a bug in the caller.
func (h *Hand) Stand() {
	if h.standing {
		panic("hand: stand called on a standing hand")
	}
	h.standing = true
}

// MarkBust flags the hand as bust. It has no effect unless the total is over 21.
func (h *Hand) MarkBust() {
	if h.total > Blackjack {
		h.bust = true
	}
}

func (h *Hand) HasBlackjack() bool {
	return len(h.cards) == 2 && h.total == Blackjack
}

// CanSplit reports whether the hand is an opening pair of the same rank.
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

func (h *Hand) IsTerminal() bool {
	return h.standing || h.bust
}

func (h *Hand) Role() Role { return h.role }
func (h *Hand) Total() int { return h.total }
func (h *Hand) IsStanding() bool { return h.standing }
func (h *Hand) IsBust() bool { return h.bust }
func (h *Hand) Len() int { return len(h.cards) }
func (h *Hand) Card(i int) card.Card { return h.cards[i] }

// Cards returns a copy of the held cards.
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// SetFaceDown changes the display flag of the i-th card.
func (h *Hand) SetFaceDown(i int, down bool) {
	if i < 0 || i >= len(h.cards) {
		return
	}
	h.cards[i].FaceDown = down
}

// VisibleTotal sums the face-up cards the way they were counted. It is what an
// opponent can see.
func (h *Hand) VisibleTotal() int {
	hidden := 0
	replay := New(h.role)
	for _, c := range h.cards {
		v := replay.valueOf(c)
		replay.total += v
		if c.FaceDown {
			hidden += v
		}
	}
	return h.total - hidden
}
