package menace

import (
	"math/rand"
	"time"

	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// punishment is the number of beads added to a drawn move after a loss.
const punishment = -1

// Option configures an Agent.
type Option func(a *Agent)

// WithSeed seeds the random source used to draw beads.
func WithSeed(seed int64) Option {
	return func(a *Agent) {
		a.r = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws beads with r.
func WithRand(r *rand.Rand) Option {
	return func(a *Agent) {
		if r != nil {
			a.r = r
		}
	}
}

// step is a bead drawn during the current game: which matchbox, and which move (in the matchbox's own
// orientation).
type step struct {
	entry int
	move  game.Single
}

// Agent is a MENACE player.
type Agent struct {
	Config
	player game.Player
	r      *rand.Rand

	store *Store
	moved []step
}

// New creates a MENACE and fills all of its matchboxes.
func New(conf Config, opts ...Option) (*Agent, error) {
	if !conf.IsValid() {
		return nil, errors.Errorf("Config is not valid: %+v", conf)
	}
	a := &Agent{
		Config: conf,
		r:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}

	start := time.Now()
	a.store = NewStore(conf.InitialBeads)
	log.Debug().
		Int("matchboxes", a.store.Len()).
		Dur("took", time.Since(start)).
		Msg("filled matchboxes")
	return a, nil
}

func (a *Agent) Symbol() game.Player     { return a.player }
func (a *Agent) SetSymbol(p game.Player) { a.player = p }
func (a *Agent) String() string          { return "Menace" }

// Store returns the matchboxes of the agent.
func (a *Agent) Store() *Store { return a.store }

// Move draws a bead from the matchbox of the board and returns the cell to play.
func (a *Agent) Move(board *mnk.Board) (game.Single, error) {
	if a.player != mnk.Cross && a.player != mnk.Nought {
		return game.NoMove, errors.Errorf("%v has no symbol", a)
	}
	if a.Died() {
		log.Warn().Msgf("%v (%v) died", a, a.player)
		return game.NoMove, errors.WithStack(ErrDied)
	}

	// the matchboxes were filled as if X always starts
	var swapped *mnk.Board
	if a.needsSwap(board) {
		swapped = mnk.SwapColours(board)
	} else {
		swapped = board.Clone()
	}

	id, t, ok := a.store.Lookup(swapped)
	if !ok {
		return game.NoMove, errors.Wrapf(ErrUnknownState, "%v (%v) cannot find\n%v", a, a.player, board)
	}
	move, err := a.store.Box(id).Move(a.r)
	if err != nil {
		return game.NoMove, err
	}
	a.moved = append(a.moved, step{entry: id, move: move})
	return t.Move(move), nil
}

// Learn rewards (or punishes) every bead drawn in the game that just ended.
func (a *Agent) Learn(winner game.Player) {
	var beads int
	switch winner {
	case game.Player(game.None):
		beads = a.TieReward
	case a.player:
		beads = a.WinReward
	default:
		beads = punishment
	}

	for _, s := range a.moved {
		a.store.Box(s.entry).Add(s.move, beads)
	}
	log.Debug().Int("moves", len(a.moved)).Int("beads", beads).Msgf("%v (%v) learned", a, a.player)
	a.moved = a.moved[:0]
}

// Forget drops the moves of a game that was abandoned before it could be learned from.
func (a *Agent) Forget() { a.moved = a.moved[:0] }

// Died returns true when MENACE has no beads left to open a game with, or no beads left to answer any opening.
func (a *Agent) Died() bool {
	if a.store.Box(a.store.Root()).Dead() {
		return true
	}
	for _, id := range a.store.Openings() {
		if !a.store.Box(id).Dead() {
			return false
		}
	}
	return true
}

// opened returns true if the agent made the first move of the game on b.
func (a *Agent) opened(b *mnk.Board) bool {
	own := game.Colour(a.player)
	return b.Count(own) == b.Count(own.Swap())
}

// needsSwap returns true if b has to be recoloured so that X made the first move.
func (a *Agent) needsSwap(b *mnk.Board) bool {
	if a.opened(b) {
		return a.player != mnk.Cross
	}
	return a.player != mnk.Nought
}
