package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/twentyone/internal/input"
	"github.com/arcanaland/twentyone/internal/render"
	"github.com/arcanaland/twentyone/internal/round"
	"github.com/arcanaland/twentyone/internal/shoe"
)

// ErrExit stops the session when the player picks Exit.
var ErrExit = errors.New("player exited")

// CommandReader is the blocking source of player commands. It returns io.EOF
// when no more input will arrive.
type CommandReader interface {
	ReadCommand() (input.Command, error)
}

// Session plays rounds until the player exits or the input ends.
type Session struct {
	In       CommandReader
	Display  *render.Renderer
	Notices  io.Writer
	Logger   *slog.Logger
	Decks    int
	Pause    time.Duration
	Rand     *rand.Rand
	MaxRound int

	// NewShoe overrides how each round's shoe is built.
	NewShoe func() round.Drawer
	// Sleep overrides time.Sleep between rounds.
	Sleep func(time.Duration)

	tally round.Tally
}

// Tally returns the outcomes recorded so far.
func (s *Session) Tally() round.Tally {
	return s.tally
}

// Run plays rounds until Exit or end of input, both of which return nil. A
// positive MaxRound limits the number of rounds.
func (s *Session) Run() error {
	s.defaults()
	for n := 0; s.MaxRound <= 0 || n < s.MaxRound; n++ {
		err := s.playRound()
		if errors.Is(err, ErrExit) || errors.Is(err, io.EOF) {
			s.Logger.Debug("session ended", "reason", err.Error(), "rounds", s.tally.Rounds())
			return nil
		}
		if err != nil {
			return err
		}
		s.Sleep(s.Pause)
	}
	return nil
}

func (s *Session) defaults() {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.Notices == nil {
		s.Notices = io.Discard
	}
	if s.Sleep == nil {
		s.Sleep = time.Sleep
	}
	if s.NewShoe == nil {
		s.NewShoe = func() round.Drawer {
			return shoe.ShuffledDeck(s.Decks, s.Rand)
		}
	}
}

func (s *Session) playRound() error {
	rd := round.New(s.NewShoe(), round.WithLogger(s.Logger))

	for rd.Phase() == round.PlayerTurn {
		s.Display.Render(rd, s.tally)
		s.Display.Menu(rd.Player.CanSplit())

		cmd, err := s.In.ReadCommand()
		if errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			s.notice("Error reading input: %v", err)
			s.Logger.Warn("input failed, ending player turn", "round", rd.ID.String(), "error", err)
			rd.Forfeit()
			break
		}

		if err := s.apply(rd, cmd); err != nil {
			return err
		}
	}

	outcome, err := rd.Finish()
	if err != nil {
		return fmt.Errorf("finish round %s: %w", rd.ID, err)
	}
	s.tally.Record(outcome)

	s.Display.Render(rd, s.tally)
	s.Display.Result(outcome)
	return nil
}

func (s *Session) apply(rd *round.Round, cmd input.Command) error {
	switch cmd {
	case input.Hit:
		c, err := rd.Hit()
		if err != nil {
			return fmt.Errorf("hit: %w", err)
		}
		s.Display.Drawn(c)
	case input.Stand:
		if err := rd.Stand(); err != nil {
			return fmt.Errorf("stand: %w", err)
		}
	case input.Split:
		if err := rd.Split(); err != nil {
			s.notice("Cannot split: %v", err)
		}
	case input.Exit:
		return ErrExit
	default:
		s.notice("Unknown command, pick one of the listed moves")
	}
	return nil
}

func (s *Session) notice(format string, args ...any) {
	fmt.Fprintln(s.Notices, colorize.YellowString(format, args...))
}
