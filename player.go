package menace

import (
	"math/rand"

	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/pkg/errors"
)

var (
	_ Player = &Agent{}
	_ Player = &Random{}
)

// Random plays a random empty cell. It never learns.
type Random struct {
	player game.Player
	r      *rand.Rand
}

// NewRandom creates a random player.
func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

func (p *Random) Move(b *mnk.Board) (game.Single, error) {
	moves := b.Moves()
	if len(moves) == 0 {
		return game.NoMove, errors.Wrapf(game.ErrMoveExhausted, "no empty cell on\n%v", b)
	}
	return moves[p.r.Intn(len(moves))], nil
}

func (p *Random) Learn(winner game.Player) {}
func (p *Random) Symbol() game.Player      { return p.player }
func (p *Random) SetSymbol(pl game.Player) { p.player = pl }
func (p *Random) String() string           { return "Random" }
