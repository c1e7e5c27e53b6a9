package card

// Rank identifies a card's face. The zero value is NoRank, used by the
// placeholder card an exhausted shoe hands out.
type Rank uint8

const (
	NoRank Rank = iota
	_
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every playable rank in ascending order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// BaseValue returns the blackjack value of the rank. Face cards are worth 10,
// an Ace is worth 11 when aceHigh is set and 1 otherwise.
func (r Rank) BaseValue(aceHigh bool) int {
	switch {
	case r == Ace && aceHigh:
		return 11
	case r == Ace:
		return 1
	case r >= Two && r <= Ten:
		return int(r)
	case r >= Jack && r <= King:
		return 10
	default:
		return 0
	}
}

// String returns the short rank name shown on a card face.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ten:
		return "10"
	case NoRank:
		return ""
	default:
		return string(rune('0' + r))
	}
}

// Suit is decorative only.
type Suit uint8

const (
	NoSuit Suit = iota
	Hearts
	Clubs
	Spades
	Diamonds
)

var Suits = []Suit{Hearts, Clubs, Spades, Diamonds}

// String returns the suit glyph.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	default:
		return ""
	}
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Card represents a playing card. FaceDown only affects rendering.
type Card struct {
	Suit     Suit
	Rank     Rank
	FaceDown bool
}

// New returns a face-up card.
func New(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// IsEmpty reports whether c is the placeholder card.
func (c Card) IsEmpty() bool {
	return c.Rank == NoRank
}

func (c Card) String() string {
	if c.IsEmpty() {
		return ""
	}
	return c.Rank.String() + c.Suit.String()
}
