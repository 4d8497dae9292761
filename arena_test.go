package menace

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/gorgonia/menace/negamax"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheater always plays the centre.
type cheater struct{ Random }

func (c *cheater) Move(b *mnk.Board) (game.Single, error) { return 4, nil }

// quitter gives up whenever it is asked to move.
type quitter struct{ Random }

func (q *quitter) Move(b *mnk.Board) (game.Single, error) { return game.NoMove, errors.New("quit") }

// frames counts what the arena encodes.
type frames struct {
	n       int
	games   []int
	flushed bool
}

func (f *frames) Encode(ms game.MetaState) error {
	f.n++
	if len(f.games) == 0 || f.games[len(f.games)-1] != ms.GameNumber() {
		f.games = append(f.games, ms.GameNumber())
	}
	return nil
}

func (f *frames) Flush() error { f.flushed = true; return nil }

func TestArenaPerfectPlayersTie(t *testing.T) {
	a := NewArena(negamax.New(negamax.WithSeed(1)), negamax.New(negamax.WithSeed(2)), "", WithArenaSeed(1337))
	assert.Equal(t, "UNKNOWN GAME", a.Name())
	require.NoError(t, a.Run(10, nil))

	assert.Equal(t, 10, a.Draws[nameA])
	assert.Equal(t, 10, a.Draws[nameB])
	assert.Zero(t, a.Wins[nameA]+a.Wins[nameB])
	assert.Zero(t, a.WinRate(nameA))
	assert.Equal(t, 10, a.GameNumber())
	assert.True(t, a.Board().Full())
}

func TestArenaIllegalMove(t *testing.T) {
	a := NewArena(&cheater{Random: *NewRandom(1)}, &cheater{Random: *NewRandom(2)}, "cheats", WithAlternate())
	_, err := a.Play(nil)
	require.Error(t, err)

	var me game.MoveError
	assert.True(t, errors.As(err, &me), "got %v", err)
	assert.Equal(t, game.Single(4), me.Single)
	assert.Equal(t, mnk.Nought, me.Player)
	assert.Zero(t, a.Games(nameA))
}

func TestArenaDeadPlayer(t *testing.T) {
	m, err := New(DefaultConfig(), WithSeed(1))
	require.NoError(t, err)
	m.SetSymbol(mnk.Cross)
	for !m.Died() {
		if _, err = m.Move(mnk.New()); err != nil {
			break
		}
		m.Learn(mnk.Nought)
	}

	a := NewArena(m, NewRandom(1), "dead", WithAlternate())
	err = a.Run(5, nil)
	assert.True(t, errors.Is(err, ErrDied), "got %v", err)
	assert.Equal(t, 1, a.GameNumber())
}

func TestArenaAbandonedGameIsForgotten(t *testing.T) {
	m, err := New(DefaultConfig(), WithSeed(1337))
	require.NoError(t, err)
	q := &quitter{Random: *NewRandom(1)}
	a := NewArena(m, q, "abandoned", WithAlternate())

	// game 1: MENACE opens, then B quits
	_, err = a.Play(nil)
	require.Error(t, err)
	assert.Equal(t, Player(q), a.Current())
	require.Len(t, m.moved, 1)

	// game 2: B opens, so MENACE never draws from the empty board
	a.B = NewRandom(2)
	_, err = a.Play(nil)
	require.NoError(t, err)
	assert.Equal(t, mnk.Nought, m.Symbol())
	assert.Empty(t, m.moved)

	root := m.Store().Box(m.Store().Root())
	for _, move := range mnk.New().Moves() {
		assert.Equal(t, DefaultConfig().InitialBeads, root.Weight(move), "cell %d", move)
	}
	assert.Equal(t, 1, a.Games(nameA))
}

func TestArenaStatistics(t *testing.T) {
	m, err := New(DefaultConfig(), WithSeed(1337))
	require.NoError(t, err)
	enc := new(frames)
	a := NewArena(m, NewRandom(1337), "menace vs random", WithAlternate())

	const games = 50
	var moves int
	for i := 0; i < games; i++ {
		winner, err := a.Play(enc)
		require.NoError(t, err)
		ended, w := a.Board().Ended()
		assert.True(t, ended)
		assert.Equal(t, w, winner)
		moves += a.Board().MoveNumber()

		// A opens the odd games
		if i%2 == 0 {
			assert.Equal(t, mnk.Cross, m.Symbol())
		} else {
			assert.Equal(t, mnk.Nought, m.Symbol())
		}
	}

	assert.Equal(t, moves, enc.n)
	assert.Len(t, enc.games, games)
	assert.Equal(t, games, a.Games(nameA))
	assert.Equal(t, games, a.Games(nameB))
	assert.Equal(t, games, a.Wins[nameA]+a.Losses[nameA]+a.Draws[nameA])
	assert.Equal(t, a.Wins[nameA], a.Losses[nameB])
	assert.Equal(t, a.Losses[nameA], a.Wins[nameB])
	assert.Equal(t, a.Draws[nameA], a.Draws[nameB])
	assert.InDelta(t, float32(a.Wins[nameA])/games, a.WinRate(nameA), 1e-6)
}

func TestArenaMetaState(t *testing.T) {
	a := NewArena(NewRandom(1), NewRandom(2), "random", WithArenaSeed(1))
	var ms game.MetaState = a
	_, err := a.Play(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, ms.GameNumber())
	assert.Equal(t, "random", ms.Name())
	ended, _ := ms.State().Ended()
	assert.True(t, ended)
	assert.NotEqual(t, uuid.Nil, a.ID())
}
