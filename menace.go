// Package menace implements MENACE, the Machine Educable Noughts And Crosses Engine.
//
// MENACE keeps a matchbox full of beads for every tic-tac-toe position it can run into. To move, it finds the
// matchbox of the current position and draws a random bead; the colour of the bead is the cell it plays. When the
// game is over every matchbox that was used gets beads added for a win or a tie, and loses the bead that was drawn
// for a loss. Over many games the good moves end up with most of the beads.
//
// Positions that are rotations or reflections of each other share a matchbox, and all matchboxes are filled as if
// X had opened the game. A board from a game where O opened is recoloured before it is looked up.
//
// The package also provides the Arena, which plays two Players against each other, and a Random player.
// A perfect player lives in the negamax package.
package menace

import (
	"fmt"

	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/pkg/errors"
)

var (
	// ErrDied is returned by a MENACE that has run out of beads for every way a game can start.
	ErrDied = errors.New("menace died")

	// ErrUnknownState is returned when a board cannot be reached in a game of tic-tac-toe.
	ErrUnknownState = errors.New("unknown state")
)

// Player is anything that can play tic-tac-toe.
type Player interface {
	// Move returns the cell to play on b. b may be modified by the Player.
	Move(b *mnk.Board) (game.Single, error)

	// Learn is called at the end of each game with the winner. The winner is game.None for a tie.
	Learn(winner game.Player)

	Symbol() game.Player
	SetSymbol(p game.Player)
	fmt.Stringer
}
