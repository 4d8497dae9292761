package mnk

import (
	"fmt"
	"hash/fnv"

	"github.com/gorgonia/menace/game"
	"github.com/pkg/errors"
)

const (
	// M, N is the board size and K the number in a row needed to win.
	M, N, K = 3, 3, 3

	// Cells is the number of cells on a board.
	Cells = M * N
)

var (
	Cross  = game.Player(game.Black)
	Nought = game.Player(game.White)
)

var _ game.State = &Board{}

// Key is the content of a board. Two boards with the same content have the same Key, which makes it usable as a map key.
type Key [Cells]game.Colour

// lines are all the K-in-a-row lines of a 3x3 board.
var lines = [...][K]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // cols
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Board is a tic-tac-toe board.
type Board struct {
	cells Key
}

// New creates an empty board.
func New() *Board { return new(Board) }

// FromKey creates a board with the given content.
func FromKey(k Key) *Board { return &Board{cells: k} }

// FromCells creates a board from up to Cells colours, in rowmajor order. Missing cells are empty.
func FromCells(cells ...game.Colour) *Board {
	b := New()
	copy(b.cells[:], cells)
	return b
}

func (b *Board) Format(s fmt.State, c rune) {
	for i, c := range b.cells {
		if i%N == 0 {
			fmt.Fprint(s, "⎢ ")
		}
		fmt.Fprintf(s, "%s ", c)
		if (i+1)%N == 0 && i != 0 {
			fmt.Fprint(s, "⎥\n")
		}
	}
}

func (b *Board) BoardSize() (int, int) { return M, N }
func (b *Board) Board() []game.Colour  { return b.cells[:] }
func (b *Board) ActionSpace() int      { return Cells }
func (b *Board) Key() Key              { return b.cells }

func (b *Board) Hash() game.Zobrist {
	h := fnv.New32a()
	for _, v := range b.cells {
		fmt.Fprintf(h, "%v", v)
	}
	return game.Zobrist(h.Sum32())
}

// MoveNumber is the number of occupied cells.
func (b *Board) MoveNumber() int { return Cells - b.Count(game.None) }

// At returns the content of a cell.
func (b *Board) At(i game.Single) game.Colour { return b.cells[i] }

// Set writes a cell. Setting game.None undoes a move.
func (b *Board) Set(i game.Single, c game.Colour) { b.cells[i] = c }

// Count returns the number of cells holding c.
func (b *Board) Count(c game.Colour) (n int) {
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Moves returns the empty cells in ascending order.
func (b *Board) Moves() []game.Single {
	retVal := make([]game.Single, 0, Cells)
	for i, v := range b.cells {
		if v == game.None {
			retVal = append(retVal, game.Single(i))
		}
	}
	return retVal
}

// Full returns true when no cell is empty.
func (b *Board) Full() bool {
	for _, v := range b.cells {
		if v == game.None {
			return false
		}
	}
	return true
}

// Winner returns the player with K in a row, or None.
func (b *Board) Winner() game.Player {
	for _, l := range lines {
		c := b.cells[l[0]]
		if c != game.None && c == b.cells[l[1]] && c == b.cells[l[2]] {
			return game.Player(c)
		}
	}
	return game.Player(game.None)
}

// Ended checks if the game has ended. If it has, who is the winner?
func (b *Board) Ended() (ended bool, winner game.Player) {
	if winner = b.Winner(); winner != game.Player(game.None) {
		return true, winner
	}
	return b.Full(), winner
}

// Terminal is Ended without the winner.
func (b *Board) Terminal() bool {
	ended, _ := b.Ended()
	return ended
}

func (b *Board) Check(m game.PlayerMove) bool {
	if m.Single < 0 || int(m.Single) >= Cells {
		return false
	}
	if m.Player != Cross && m.Player != Nought {
		return false
	}
	return b.cells[m.Single] == game.None
}

// Apply places the move on the board.
func (b *Board) Apply(m game.PlayerMove) error {
	if !b.Check(m) {
		return errors.WithStack(game.MoveError(m))
	}
	b.cells[m.Single] = game.Colour(m.Player)
	return nil
}

// Reset empties the board.
func (b *Board) Reset() { b.cells = Key{} }

// Eq returns true if both boards have the same content.
func (b *Board) Eq(other *Board) bool { return b.cells == other.cells }

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	retVal := *b
	return &retVal
}
