package menace

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ArenaOption configures an Arena.
type ArenaOption func(a *Arena)

// WithArenaSeed seeds the coin that decides who opens a game.
func WithArenaSeed(seed int64) ArenaOption {
	return func(a *Arena) {
		a.r = rand.New(rand.NewSource(seed))
	}
}

// WithAlternate makes A and B take turns opening, starting with A, instead of flipping a coin.
func WithAlternate() ArenaOption {
	return func(a *Arena) {
		a.alternate = true
	}
}

// forgetter is a Player that remembers its moves until it learns. It is told to forget them when a new game starts.
type forgetter interface {
	Forget()
}

// Arena plays games between two players. Both players are told the winner after every game.
type Arena struct {
	r     *rand.Rand
	board *mnk.Board
	A, B  Player
	Statistics

	// state
	currentPlayer Player
	alternate     bool
	name          string
	gameNumber    int
	id            uuid.UUID
}

// NewArena makes an arena for two players.
func NewArena(a, b Player, name string, opts ...ArenaOption) *Arena {
	if name == "" {
		name = "UNKNOWN GAME"
	}
	ar := &Arena{
		r:          rand.New(rand.NewSource(time.Now().UnixNano())),
		board:      mnk.New(),
		A:          a,
		B:          b,
		Statistics: makeStatistics(),
		name:       name,
	}
	for _, opt := range opts {
		opt(ar)
	}
	return ar
}

// Play plays a game, and returns the winner. If it is a draw, the returned player is None.
//
// If a player cannot move the game is abandoned: nobody learns and the error is returned.
func (a *Arena) Play(enc OutputEncoder) (winner game.Player, err error) {
	a.board.Reset()
	for _, p := range []Player{a.A, a.B} {
		if f, ok := p.(forgetter); ok {
			f.Forget()
		}
	}
	a.gameNumber++
	a.id = uuid.New()

	var aOpens bool
	if a.alternate {
		aOpens = a.gameNumber%2 == 1
	} else {
		aOpens = a.r.Intn(2) == 0
	}
	if aOpens {
		a.A.SetSymbol(mnk.Cross)
		a.B.SetSymbol(mnk.Nought)
		a.currentPlayer = a.A
	} else {
		a.A.SetSymbol(mnk.Nought)
		a.B.SetSymbol(mnk.Cross)
		a.currentPlayer = a.B
	}

	logger := log.With().Str("game", a.id.String()).Int("number", a.gameNumber).Logger()
	logger.Debug().Msgf("Playing %s. %s (%v) opens", a.name, a.nameOf(a.currentPlayer), a.currentPlayer)

	var ended bool
	for ended, winner = a.board.Ended(); !ended; ended, winner = a.board.Ended() {
		var best game.Single
		if best, err = a.currentPlayer.Move(a.board.Clone()); err != nil {
			logger.Warn().Err(err).Msgf("%s (%v) could not move", a.nameOf(a.currentPlayer), a.currentPlayer)
			return game.Player(game.None), errors.WithMessagef(err, "%s (%v) could not move", a.nameOf(a.currentPlayer), a.currentPlayer)
		}
		move := game.PlayerMove{Player: a.currentPlayer.Symbol(), Single: best}
		if err = a.board.Apply(move); err != nil {
			return game.Player(game.None), errors.WithMessagef(err, "%s (%v) made an illegal move", a.nameOf(a.currentPlayer), a.currentPlayer)
		}
		logger.Trace().Msgf("%s: %v", a.nameOf(a.currentPlayer), move)

		if enc != nil {
			if err = enc.Encode(a); err != nil {
				return game.Player(game.None), errors.WithMessage(err, "Unable to encode game")
			}
		}
		a.switchPlayer()
	}

	a.A.Learn(winner)
	a.B.Learn(winner)
	a.update(winner)
	logger.Debug().Msgf("Winner %v", winner)
	return winner, nil
}

// Run plays games until n games are played or a player cannot move.
func (a *Arena) Run(n int, enc OutputEncoder) error {
	for i := 0; i < n; i++ {
		if _, err := a.Play(enc); err != nil {
			return err
		}
	}
	log.Info().Msgf("%s: A (%v) wins %d, loss %d, draw %d", a.name, a.A, a.Wins[nameA], a.Losses[nameA], a.Draws[nameA])
	return nil
}

func (a *Arena) GameNumber() int   { return a.gameNumber }
func (a *Arena) Name() string      { return a.name }
func (a *Arena) State() game.State { return a.board }
func (a *Arena) Current() Player   { return a.currentPlayer }
func (a *Arena) Board() *mnk.Board { return a.board.Clone() }
func (a *Arena) ID() uuid.UUID     { return a.id }

func (a *Arena) nameOf(p Player) string {
	if p == a.A {
		return nameA
	}
	return nameB
}

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.A:
		a.currentPlayer = a.B
	case a.B:
		a.currentPlayer = a.A
	}
}

// update records the outcome of a game for both sides.
func (a *Arena) update(winner game.Player) {
	for name, p := range map[string]Player{nameA: a.A, nameB: a.B} {
		switch winner {
		case game.Player(game.None):
			a.record(name, draw)
		case p.Symbol():
			a.record(name, win)
		default:
			a.record(name, loss)
		}
	}
}
