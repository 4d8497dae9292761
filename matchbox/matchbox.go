// Package matchbox implements the bead-filled matchbox MENACE keeps for every board state.
//
// A matchbox holds a number of beads for every cell of the board. Drawing a move takes a bead at random, so a
// cell is chosen with a probability proportional to the number of beads it has. Beads are added after a game
// that went well and taken away after a game that was lost.
package matchbox

import (
	"fmt"
	"math/rand"

	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/pkg/errors"
)

// Matchbox is a weighted counter over the cells of a board. A weight is never negative.
type Matchbox struct {
	beads [mnk.Cells]int
}

// New creates a matchbox with the given amount of beads for each of the moves. All other cells get none.
func New(moves []game.Single, beads int) *Matchbox {
	if beads < 0 {
		beads = 0
	}
	m := new(Matchbox)
	for _, move := range moves {
		m.beads[move] += beads
	}
	return m
}

// Move draws a random bead. Moves with more beads are more likely to be chosen.
func (m *Matchbox) Move(r *rand.Rand) (game.Single, error) {
	total := m.Total()
	if total > 0 {
		draw := 1 + r.Intn(total)
		for i, w := range m.beads {
			if draw <= w {
				return game.Single(i), nil
			}
			draw -= w
		}
	}
	return game.NoMove, errors.Wrapf(game.ErrMoveExhausted, "matchbox %v", m)
}

// Add adds (or removes, when negative) beads for a move. The count of a move never goes below zero.
func (m *Matchbox) Add(move game.Single, beads int) {
	if m.beads[move]+beads < 0 {
		m.beads[move] = 0
		return
	}
	m.beads[move] += beads
}

// Dead returns true if there are no beads left.
func (m *Matchbox) Dead() bool {
	for _, w := range m.beads {
		if w > 0 {
			return false
		}
	}
	return true
}

// Weight returns the number of beads for a move.
func (m *Matchbox) Weight(move game.Single) int { return m.beads[move] }

// Weights returns a copy of all the bead counts.
func (m *Matchbox) Weights() [mnk.Cells]int { return m.beads }

// Total is the number of beads in the matchbox.
func (m *Matchbox) Total() (total int) {
	for _, w := range m.beads {
		total += w
	}
	return total
}

func (m *Matchbox) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v", m.beads) }
