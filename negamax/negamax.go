// Package negamax implements a perfect tic-tac-toe player.
//
// The player searches the whole game tree with the negamax algorithm and alpha-beta pruning. Negamax is minimax
// written from the point of view of whoever is on move: the value of a position for one player is the negated value
// for the other. Among equally good moves one is picked at random, so the player cannot be exploited by replaying
// the same line.
package negamax

import (
	"math"
	"math/rand"
	"time"

	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/pkg/errors"
)

const inf = math.MaxInt32

// Option configures an Agent.
type Option func(a *Agent)

// WithSeed seeds the tie-breaking random source.
func WithSeed(seed int64) Option {
	return func(a *Agent) {
		a.r = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r to break ties.
func WithRand(r *rand.Rand) Option {
	return func(a *Agent) {
		if r != nil {
			a.r = r
		}
	}
}

// Agent plays perfectly. It does not learn.
type Agent struct {
	player game.Player
	r      *rand.Rand
}

// New creates a perfect player. The symbol has to be set before it is asked to move.
func New(opts ...Option) *Agent {
	a := &Agent{
		r: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Agent) Symbol() game.Player     { return a.player }
func (a *Agent) SetSymbol(p game.Player) { a.player = p }
func (a *Agent) String() string          { return "Negamax" }

// Learn does nothing. A perfect player has nothing to learn.
func (a *Agent) Learn(winner game.Player) {}

// Move picks one of the best moves at random. The board is not modified.
func (a *Agent) Move(board *mnk.Board) (game.Single, error) {
	if a.player != mnk.Cross && a.player != mnk.Nought {
		return game.NoMove, errors.Errorf("%v has no symbol", a)
	}
	best, _ := a.BestMoves(board)
	if len(best) == 0 {
		return game.NoMove, errors.Wrapf(game.ErrMoveExhausted, "no empty cell on\n%v", board)
	}
	return best[a.r.Intn(len(best))], nil
}

// BestMoves returns all the moves that share the best value, in ascending order, along with that value.
func (a *Agent) BestMoves(board *mnk.Board) (best []game.Single, value int) {
	b := board.Clone()
	value = -inf
	for _, move := range b.Moves() {
		b.Set(move, game.Colour(a.player))
		v := -a.negamaxAlphaBeta(b, -inf+1, inf, -1)
		b.Set(move, game.None)

		switch {
		case v > value:
			value = v
			best = append(best[:0], move)
		case v == value:
			best = append(best, move)
		}
	}
	return best, value
}

// Evaluate returns the value of the board for the agent, assuming it is the agent's turn: 1 for a win, -1 for a
// loss and 0 for a tie, with perfect play from both sides.
func (a *Agent) Evaluate(board *mnk.Board) int {
	return a.negamaxAlphaBeta(board.Clone(), -inf+1, inf, 1)
}

// heuristic values a board from the point of view of the agent.
func (a *Agent) heuristic(b *mnk.Board) int {
	switch b.Winner() {
	case a.player:
		return 1
	case game.Player(game.None):
		return 0
	}
	return -1
}

// negamaxAlphaBeta returns the value of the board for the player on move. color is 1 when the agent is on move
// and -1 when its opponent is. Moves are made and undone on b.
func (a *Agent) negamaxAlphaBeta(b *mnk.Board, alpha, beta, color int) int {
	if b.Terminal() {
		return color * a.heuristic(b)
	}

	mover := game.Colour(a.player)
	if color != 1 {
		mover = game.Colour(game.Opponent(a.player))
	}

	value := -inf
	for _, move := range b.Moves() {
		b.Set(move, mover)
		value = max(value, -a.negamaxAlphaBeta(b, -beta, -alpha, -color))
		b.Set(move, game.None)

		alpha = max(alpha, value)
		if alpha >= beta {
			break
		}
	}
	return value
}
