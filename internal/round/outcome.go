package round

import "github.com/arcanaland/twentyone/internal/hand"

// Outcome is the result of a resolved round.
type Outcome uint8

const (
	PlayerWin Outcome = iota + 1
	DealerWin
	Push
	PlayerBlackjack
)

func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "Player won normally"
	case DealerWin:
		return "Dealer won normally"
	case Push:
		return "Game ended even"
	case PlayerBlackjack:
		return "Black jack baby!"
	default:
		return "unknown outcome"
	}
}

// Resolve compares two finished hands. The rules are checked in order and the
// first match wins.
func Resolve(player, dealer *hand.Hand) Outcome {
	switch {
	case player.IsBust():
		return DealerWin
	case player.HasBlackjack() && !dealer.HasBlackjack():
		return PlayerBlackjack
	case player.HasBlackjack() && dealer.HasBlackjack():
		return Push
	case dealer.HasBlackjack():
		return DealerWin
	case dealer.IsBust() || player.Total() > dealer.Total():
		return PlayerWin
	case player.Total() == dealer.Total():
		return Push
	case player.Total() < dealer.Total():
		return DealerWin
	}
	panic("round: no outcome matched")
}
