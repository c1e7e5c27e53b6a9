package round

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/arcanaland/twentyone/internal/hand"
)

var (
	ErrNotPlayerTurn    = errors.New("not the player's turn")
	ErrNotDealerTurn    = errors.New("not the dealer's turn")
	ErrNotResolved      = errors.New("round is not resolved")
	ErrSplitUnsupported = errors.New("split is not supported yet")
	ErrCannotSplit      = errors.New("hand cannot be split")
)

// Phase is the state of a round.
type Phase uint8

const (
	Dealing Phase = iota
	PlayerTurn
	DealerTurn
	Resolution
)

func (p Phase) String() string {
	switch p {
	case Dealing:
		return "dealing"
	case PlayerTurn:
		return "player turn"
	case DealerTurn:
		return "dealer turn"
	case Resolution:
		return "resolution"
	default:
		return "unknown"
	}
}

// Drawer hands out cards. It must never fail; an empty source returns the
// placeholder card.
type Drawer interface {
	Draw() card.Card
}

// Round is a single game between the player and the dealer. It owns both
// hands and the shoe until it is resolved.
type Round struct {
	ID     uuid.UUID
	Player *hand.Hand
	Dealer *hand.Hand

	shoe   Drawer
	phase  Phase
	logger *slog.Logger
}

type option func(*Round)

// WithLogger sets the logger used for round events.
func WithLogger(l *slog.Logger) option {
	return func(r *Round) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithID overrides the generated round ID.
func WithID(id uuid.UUID) option {
	return func(r *Round) {
		r.ID = id
	}
}

// New deals the opening hands from shoe and returns the round in its first
// interactive phase. A player natural skips the player's turn.
func New(shoe Drawer, opts ...option) *Round {
	r := &Round{
		ID:     uuid.New(),
		Player: hand.New(hand.Player),
		Dealer: hand.New(hand.Dealer),
		shoe:   shoe,
		phase:  Dealing,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("round", r.ID.String())

	r.deal(r.Player)
	r.deal(r.Dealer)
	r.deal(r.Player)
	r.deal(r.Dealer)
	r.Dealer.SetFaceDown(1, true)

	r.logger.Debug("dealt",
		"player", r.Player.Cards(), "player_total", r.Player.Total(),
		"dealer_up", r.Dealer.Card(0).String())

	r.phase = PlayerTurn
	if r.Player.HasBlackjack() {
		r.logger.Debug("player natural")
		r.endPlayerTurn()
	}
	return r
}

func (r *Round) deal(h *hand.Hand) card.Card {
	c := r.shoe.Draw()
	if err := h.AddCard(c); err != nil {
		panic(fmt.Sprintf("round: deal to %s: %v", h.Role(), err))
	}
	return c
}

func (r *Round) Phase() Phase {
	return r.phase
}

func (r *Round) endPlayerTurn() {
	r.phase = DealerTurn
}

// Hit draws one card for the player. The turn ends when the hand busts or
// reaches capacity.
func (r *Round) Hit() (card.Card, error) {
	if r.phase != PlayerTurn {
		return card.Card{}, ErrNotPlayerTurn
	}
	c := r.shoe.Draw()
	if err := r.Player.AddCard(c); err != nil {
		return card.Card{}, fmt.Errorf("hit: %w", err)
	}
	r.logger.Debug("player hit", "card", c.String(), "total", r.Player.Total())
	if r.Player.IsTerminal() {
		r.endPlayerTurn()
	}
	return c, nil
}

// Stand ends the player's turn.
func (r *Round) Stand() error {
	if r.phase != PlayerTurn {
		return ErrNotPlayerTurn
	}
	r.Player.Stand()
	r.logger.Debug("player stand", "total", r.Player.Total())
	r.endPlayerTurn()
	return nil
}

// Split is accepted only for a splittable opening pair and is not playable yet.
func (r *Round) Split() error {
	if r.phase != PlayerTurn {
		return ErrNotPlayerTurn
	}
	if !r.Player.CanSplit() {
		return ErrCannotSplit
	}
	return ErrSplitUnsupported
}

// Forfeit ends the player's turn without standing, e.g. when input fails.
func (r *Round) Forfeit() {
	if r.phase == PlayerTurn {
		r.logger.Debug("player turn forfeited", "total", r.Player.Total())
		r.endPlayerTurn()
	}
}

// PlayDealer runs the dealer's fixed policy: draw below 17, stand from 17,
// bust above 21. It is skipped when the player busted or either side holds a
// natural.
func (r *Round) PlayDealer() error {
	if r.phase != DealerTurn {
		return ErrNotDealerTurn
	}
	defer func() { r.phase = Resolution }()

	if r.Player.IsBust() || r.Player.HasBlackjack() || r.Dealer.HasBlackjack() {
		r.logger.Debug("dealer play skipped")
		return nil
	}
	r.Dealer.SetFaceDown(1, false)

	for {
		if r.Dealer.Total() > hand.Blackjack {
			r.Dealer.MarkBust()
			break
		}
		if r.Dealer.Total() >= hand.DealerStand {
			if !r.Dealer.IsStanding() {
				r.Dealer.Stand()
			}
			break
		}
		// stood at capacity below 17
		if r.Dealer.IsTerminal() {
			break
		}
		c := r.deal(r.Dealer)
		r.logger.Debug("dealer hit", "card", c.String(), "total", r.Dealer.Total())
	}
	r.logger.Debug("dealer done", "total", r.Dealer.Total(), "bust", r.Dealer.IsBust())
	return nil
}

// Outcome resolves the round. The hole card is turned up for display.
func (r *Round) Outcome() (Outcome, error) {
	if r.phase != Resolution {
		return 0, ErrNotResolved
	}
	r.Dealer.SetFaceDown(1, false)
	o := Resolve(r.Player, r.Dealer)
	r.logger.Debug("resolved", "outcome", o.String(),
		"player_total", r.Player.Total(), "dealer_total", r.Dealer.Total())
	return o, nil
}

// Finish plays out the rest of the round after the player's turn.
func (r *Round) Finish() (Outcome, error) {
	r.Forfeit()
	if r.phase == DealerTurn {
		if err := r.PlayDealer(); err != nil {
			return 0, err
		}
	}
	return r.Outcome()
}
