package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/arcanaland/twentyone/internal/hand"
	"github.com/arcanaland/twentyone/internal/round"
)

const (
	clearScreen  = "\x1b[2J\x1b[H"
	defaultWidth = 80
	cardEdge     = "+------+"
)

// Options controls how the scoreboard is drawn.
type Options struct {
	Color         bool
	CardBackColor string
}

// Renderer draws the game to a writer. When the writer is a terminal the
// screen is cleared before each scoreboard.
type Renderer struct {
	out      io.Writer
	terminal bool
	width    int
	backRGB  string

	label *colorize.Color
	value *colorize.Color
	red   *colorize.Color
	win   *colorize.Color
	lose  *colorize.Color
	even  *colorize.Color
}

func New(out io.Writer, opts Options) *Renderer {
	r := &Renderer{
		out:   out,
		width: defaultWidth,
		label: colorize.New(colorize.FgCyan),
		value: colorize.New(colorize.FgHiWhite),
		red:   colorize.New(colorize.FgRed),
		win:   colorize.New(colorize.FgGreen, colorize.Bold),
		lose:  colorize.New(colorize.FgRed, colorize.Bold),
		even:  colorize.New(colorize.FgYellow, colorize.Bold),
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.terminal = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			r.width = w
		}
	}

	for _, c := range []*colorize.Color{r.label, r.value, r.red, r.win, r.lose, r.even} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if opts.Color {
		if c, err := colorful.Hex(opts.CardBackColor); err == nil {
			cr, cg, cb := c.RGB255()
			r.backRGB = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", cr, cg, cb)
		}
	}
	return r
}

// Render draws the full scoreboard for rd.
func (r *Renderer) Render(rd *round.Round, tally round.Tally) {
	var sb strings.Builder
	if r.terminal {
		sb.WriteString(clearScreen)
	}

	fmt.Fprintf(&sb, "%s %s\n", r.label.Sprint("Round:"), r.value.Sprint(shortID(rd)))
	sb.WriteString(strings.Repeat("-", min(r.width, defaultWidth)))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s %s\n", r.label.Sprint("DEALER:"), r.value.Sprintf("(%d)", rd.Dealer.VisibleTotal()))
	r.writeCards(&sb, rd.Dealer)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "%s %s\n", r.label.Sprint("PLAYER:"), r.value.Sprintf("(%d)", rd.Player.Total()))
	r.writeCards(&sb, rd.Player)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "%s %s\n", r.label.Sprint("Session:"), r.value.Sprintf(
		"%d won, %d lost, %d even, %d blackjack", tally.Wins, tally.Losses, tally.Pushes, tally.Blackjacks))

	io.WriteString(r.out, sb.String())
}

func shortID(rd *round.Round) string {
	id := rd.ID.String()
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// writeCards draws the hand as a row of boxed cards.
func (r *Renderer) writeCards(sb *strings.Builder, h *hand.Hand) {
	cards := h.Cards()
	if len(cards) == 0 {
		return
	}
	rows := [7]strings.Builder{}
	for _, c := range cards {
		face := r.cardFace(c)
		for i := range rows {
			rows[i].WriteString(face[i])
		}
	}
	for i := range rows {
		sb.WriteString(rows[i].String())
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
}

func (r *Renderer) cardFace(c card.Card) [7]string {
	if c.FaceDown {
		back := [7]string{
			cardEdge,
			"|+    +|",
			"| +  + |",
			"|  ++  |",
			"| +  + |",
			"|+    +|",
			cardEdge,
		}
		if r.backRGB != "" {
			for i := 1; i < 6; i++ {
				back[i] = r.backRGB + back[i] + "\x1b[0m"
			}
		}
		return back
	}

	suit := c.Suit.String()
	if suit == "" {
		suit = " "
	}
	if c.Suit.Red() {
		suit = r.red.Sprint(suit)
	}
	return [7]string{
		cardEdge,
		fmt.Sprintf("|    %-2s|", c.Rank.String()),
		"|      |",
		fmt.Sprintf("|  %s   |", suit),
		"|      |",
		"|      |",
		cardEdge,
	}
}

// Menu prints the move prompt. Split is listed only when allowed.
func (r *Renderer) Menu(canSplit bool) {
	var sb strings.Builder
	sb.WriteString("\nEnter your move!\n")
	sb.WriteString("(1) Hit\n")
	sb.WriteString("(2) Stand\n")
	if canSplit {
		sb.WriteString("(3) Split\n")
	}
	sb.WriteString("(4) Exit\n")
	io.WriteString(r.out, sb.String())
}

// Drawn echoes a card the player just drew.
func (r *Renderer) Drawn(c card.Card) {
	suit := c.Suit.String()
	if c.Suit.Red() {
		suit = r.red.Sprint(suit)
	}
	fmt.Fprintf(r.out, "(%s, %s)\n", suit, c.Rank.String())
}

// Result prints the outcome line below the final scoreboard.
func (r *Renderer) Result(o round.Outcome) {
	c := r.even
	switch o {
	case round.PlayerWin, round.PlayerBlackjack:
		c = r.win
	case round.DealerWin:
		c = r.lose
	}
	fmt.Fprintf(r.out, "\nGame result: %s\n", c.Sprint(o.String()))
}
