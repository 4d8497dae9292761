package menace

import (
	"testing"

	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	X = game.Black
	O = game.White
	Z = game.None
)

func TestNewStore(t *testing.T) {
	s := NewStore(3)
	assert.Equal(t, 765, s.Len())

	var terminal int
	for id := 0; id < s.Len(); id++ {
		if s.Terminal(id) {
			terminal++
			assert.True(t, s.Box(id).Dead(), "terminal matchbox %d should be empty", id)
			assert.Empty(t, s.Children(id))
			continue
		}
		b := s.Board(id)
		for _, m := range b.Moves() {
			assert.Equal(t, 3, s.Box(id).Weight(m))
		}
		assert.Equal(t, 3*len(b.Moves()), s.Box(id).Total())
	}
	assert.Equal(t, 138, terminal)

	assert.True(t, s.Board(s.Root()).Eq(mnk.New()))
	assert.Len(t, s.Openings(), 3)
	for _, id := range s.Openings() {
		b := s.Board(id)
		assert.Equal(t, 1, b.Count(X))
		assert.Equal(t, 0, b.Count(O))
		assert.Contains(t, s.Children(s.Root()), id)
	}
}

func TestStoreLookup(t *testing.T) {
	s := NewStore(1)
	for id := 0; id < s.Len(); id++ {
		b := s.Board(id)
		for _, t1 := range mnk.Transforms() {
			found, t2, ok := s.Lookup(t1.Apply(b))
			require.True(t, ok)
			assert.Equal(t, id, found, "%v of\n%vresolved to another matchbox", t1, b)
			assert.Equal(t, b.Key(), t2.Apply(t1.Apply(b)).Key())
		}
	}
}

func TestStoreLookupUnreachable(t *testing.T) {
	s := NewStore(1)
	for _, b := range []*mnk.Board{
		mnk.FromCells(O),
		mnk.FromCells(X, X, X),
		mnk.FromCells(X, X, X, O, O, O),
	} {
		id, _, ok := s.Lookup(b)
		assert.False(t, ok)
		assert.Equal(t, -1, id)
	}
}

func TestStoreToDot(t *testing.T) {
	s := NewStore(2)
	dot, err := s.ToDot()
	require.NoError(t, err)
	assert.Contains(t, dot, "digraph G")
	assert.Contains(t, dot, "0->1")
	assert.Contains(t, dot, "Matchbox")
}
