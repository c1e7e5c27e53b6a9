package round

// Tally counts outcomes over the rounds of one session.
type Tally struct {
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
}

func (t *Tally) Record(o Outcome) {
	switch o {
	case PlayerWin:
		t.Wins++
	case DealerWin:
		t.Losses++
	case Push:
		t.Pushes++
	case PlayerBlackjack:
		t.Blackjacks++
	}
}

func (t Tally) Rounds() int {
	return t.Wins + t.Losses + t.Pushes + t.Blackjacks
}
