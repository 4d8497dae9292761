package game

import (
	"fmt"
)

// Colour is the content of a cell. Black always opens a game.
type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Swap exchanges Black and White. None is left alone.
func (cl Colour) Swap() Colour {
	switch cl {
	case Black:
		return White
	case White:
		return Black
	}
	return cl
}

// Player represents a player. It's also a colour.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// Opponent returns the other side. It panics for None.
func Opponent(p Player) Player {
	switch p {
	case Player(Black):
		return Player(White)
	case Player(White):
		return Player(Black)
	}
	panic("Unreachable")
}

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Single
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Single == other.Single
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%d", p.Player, p.Single) }

// Single represents a cell as a single number, utilized in a rowmajor fashion.
//   - 0 represents the top left
//   - 2 represents the top right
//   - 3 represents (1, 0)
//   - -1 represents "no move"
type Single int32

// NoMove is returned alongside errors.
const NoMove Single = -1

// State is any board that is able to report back on itself
type State interface {
	BoardSize() (int, int) // returns the board size
	Board() []Colour       // returns the board state
	ActionSpace() int      // returns the number of cells
	Hash() Zobrist         // returns the hash of the board
	MoveNumber() int       // returns count of moves so far that led to this point.

	Ended() (ended bool, winner Player) // has the game ended? if yes, then who's the winner?
	Check(m PlayerMove) bool            // check if the placement is legal
}

// Zobrist is a type representing a "zobrist" hash.
// For tic-tac-toe this is a plain fnv hash of the cells.
type Zobrist uint32

// MetaState is a game as seen from outside of the board: which series it belongs to and how far along it is.
type MetaState interface {
	Name() string // name of the game
	GameNumber() int
	State() State
}
