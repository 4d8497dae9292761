package menace

import (
	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/gorgonia/menace/matchbox"
	"golang.org/x/exp/slices"
)

type entry struct {
	key      mnk.Key
	box      *matchbox.Matchbox
	children []int
	terminal bool
}

// Store holds one matchbox for every position that can be reached in a game opened by X, up to symmetry. Entries
// are identified by a handle that stays valid for the lifetime of the Store.
type Store struct {
	index    map[mnk.Key]int
	entries  []entry
	openings []int
}

// NewStore visits every reachable position and fills a matchbox with the given amount of beads for each legal
// move. Positions where the game is over get an empty matchbox.
func NewStore(beads int) *Store {
	s := &Store{
		index:   make(map[mnk.Key]int),
		entries: make([]entry, 0, 1024),
	}
	s.search(mnk.New(), game.Black, -1, beads)

	empty := mnk.New()
	for _, move := range empty.Moves() {
		empty.Set(move, game.Black)
		if id, _, ok := s.Lookup(empty); ok && !slices.Contains(s.openings, id) {
			s.openings = append(s.openings, id)
		}
		empty.Set(move, game.None)
	}
	return s
}

// search adds b and everything reachable from it, depth first. onTurn is the colour to move.
func (s *Store) search(b *mnk.Board, onTurn game.Colour, parent, beads int) {
	id, _, found := s.Lookup(b)
	if !found {
		terminal := b.Terminal()
		var moves []game.Single
		if !terminal {
			moves = b.Moves()
		}
		id = len(s.entries)
		s.entries = append(s.entries, entry{
			key:      b.Key(),
			box:      matchbox.New(moves, beads),
			terminal: terminal,
		})
		s.index[b.Key()] = id
	}
	if parent >= 0 && !slices.Contains(s.entries[parent].children, id) {
		s.entries[parent].children = append(s.entries[parent].children, id)
	}
	if found || s.entries[id].terminal {
		return
	}

	for _, move := range b.Moves() {
		b.Set(move, onTurn)
		s.search(b, onTurn.Swap(), id, beads)
		b.Set(move, game.None)
	}
}

// Lookup finds the stored position b is symmetric to. The returned Transform turns b into the stored board.
func (s *Store) Lookup(b *mnk.Board) (id int, t mnk.Transform, ok bool) {
	for _, t = range mnk.Transforms() {
		if id, ok = s.index[t.Apply(b).Key()]; ok {
			return id, t, true
		}
	}
	return -1, mnk.Identity, false
}

// Len is the number of stored positions.
func (s *Store) Len() int { return len(s.entries) }

// Root is the handle of the empty board.
func (s *Store) Root() int { return 0 }

// Openings returns the handles of the positions after X's first move.
func (s *Store) Openings() []int { return slices.Clone(s.openings) }

// Box returns the matchbox of a position.
func (s *Store) Box(id int) *matchbox.Matchbox { return s.entries[id].box }

// Board returns a copy of a stored position.
func (s *Store) Board(id int) *mnk.Board { return mnk.FromKey(s.entries[id].key) }

// Terminal returns true if the game is over in a stored position.
func (s *Store) Terminal(id int) bool { return s.entries[id].terminal }

// Children returns the handles of the positions one move away from a stored position.
func (s *Store) Children(id int) []int { return slices.Clone(s.entries[id].children) }
