package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally(t *testing.T) {
	var tally Tally
	for _, o := range []Outcome{PlayerWin, DealerWin, DealerWin, Push, PlayerBlackjack, Outcome(0)} {
		tally.Record(o)
	}
	assert.Equal(t, Tally{Wins: 1, Losses: 2, Pushes: 1, Blackjacks: 1}, tally)
	assert.Equal(t, 5, tally.Rounds())
}
