package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/arcanaland/twentyone/internal/round"
	"github.com/arcanaland/twentyone/internal/shoe"
)

var testID = uuid.MustParse("1a2b3c4d-0000-4000-8000-000000000000")

// deal returns a round dealt in order: player, dealer, player, dealer.
func deal(cards ...card.Card) *round.Round {
	stacked := make([]card.Card, len(cards))
	for i, c := range cards {
		stacked[len(cards)-1-i] = c
	}
	return round.New(shoe.FromCards(stacked), round.WithID(testID))
}

func TestRenderHidesHoleCard(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	rd := deal(
		card.New(card.Spades, card.Ten),
		card.New(card.Clubs, card.King),
		card.New(card.Hearts, card.Ace),
		card.New(card.Diamonds, card.Seven),
	)

	r.Render(rd, round.Tally{Wins: 2, Losses: 1})
	out := buf.String()

	assert.NotContains(t, out, "\x1b[2J", "no clear when not a terminal")
	assert.Contains(t, out, "Round: 1a2b3c4d")
	assert.Contains(t, out, "DEALER: (10)")
	assert.Contains(t, out, "PLAYER: (21)")
	assert.Contains(t, out, "|    10||    A |")
	assert.Contains(t, out, "|    K ||+    +|")
	assert.Contains(t, out, "|  ++  |")
	assert.NotContains(t, out, "|    7 |")
	assert.Contains(t, out, "Session: 2 won, 1 lost, 0 even, 0 blackjack")
}

func TestRenderRevealedDealer(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	rd := deal(
		card.New(card.Spades, card.Ten),
		card.New(card.Clubs, card.King),
		card.New(card.Hearts, card.Nine),
		card.New(card.Diamonds, card.Seven),
	)
	require.NoError(t, rd.Stand())
	_, err := rd.Finish()
	require.NoError(t, err)

	r.Render(rd, round.Tally{})
	out := buf.String()
	assert.Contains(t, out, "DEALER: (17)")
	assert.Contains(t, out, "|    K ||    7 |")
	assert.Contains(t, out, "|  ♣   ||  ♦   |")
	assert.NotContains(t, out, "|+    +|")
}

func TestRenderRowsAligned(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{}).Render(deal(
		card.New(card.Spades, card.Two),
		card.New(card.Clubs, card.Three),
		card.New(card.Hearts, card.Four),
		card.New(card.Diamonds, card.Five),
	), round.Tally{})

	var cardRows int
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "|") {
			cardRows++
			assert.Equal(t, 16, len([]rune(line)), "line %q", line)
		}
	}
	assert.Equal(t, 14, cardRows)
}

func TestCardBackColor(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{Color: true, CardBackColor: "#ff8000"})
	back := r.cardFace(card.Card{Rank: card.Two, FaceDown: true})
	assert.Equal(t, "\x1b[38;2;255;128;0m|+    +|\x1b[0m", back[1])
	assert.Equal(t, cardEdge, back[0])

	r = New(&bytes.Buffer{}, Options{Color: true, CardBackColor: "blue"})
	back = r.cardFace(card.Card{Rank: card.Two, FaceDown: true})
	assert.Equal(t, "|+    +|", back[1])
}

func TestPlaceholderCard(t *testing.T) {
	face := New(&bytes.Buffer{}, Options{}).cardFace(card.Card{})
	assert.Equal(t, "|      |", face[1])
	assert.Equal(t, "|      |", face[3])
}

func TestMenu(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})

	r.Menu(false)
	assert.Contains(t, buf.String(), "(1) Hit\n(2) Stand\n(4) Exit\n")
	assert.NotContains(t, buf.String(), "Split")

	buf.Reset()
	r.Menu(true)
	assert.Contains(t, buf.String(), "(2) Stand\n(3) Split\n(4) Exit\n")
}

func TestDrawnAndResult(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})

	r.Drawn(card.New(card.Hearts, card.Queen))
	assert.Equal(t, "(♥, Q)\n", buf.String())

	buf.Reset()
	r.Result(round.PlayerBlackjack)
	assert.Equal(t, "\nGame result: Black jack baby!\n", buf.String())
}
