package mnk

import (
	"fmt"

	"github.com/gorgonia/menace/game"
	"gorgonia.org/tensor"
	"gorgonia.org/tensor/native"
)

// Transform is an element of the symmetry group of the square board. Applying a Transform to a board yields a
// board that is the same game, seen from another side.
type Transform int

const (
	Identity Transform = iota
	Rotate90
	Rotate180
	Rotate270
	Mirror
	MirrorRotate90
	MirrorRotate180
	MirrorRotate270

	numTransforms
)

var transformNames = [numTransforms]string{
	"identity", "rot90", "rot180", "rot270", "mirror", "mirror+rot90", "mirror+rot180", "mirror+rot270",
}

// perms[t][i] is the cell of the original board that ends up in cell i after t is applied.
var perms [numTransforms][Cells]int

func init() {
	for t := Identity; t < numTransforms; t++ {
		backing := make([]int, Cells)
		for i := range backing {
			backing[i] = i
		}
		grid := tensor.New(tensor.WithShape(M, N), tensor.WithBacking(backing))
		it, err := native.MatrixI(grid)
		if err != nil {
			panic(err)
		}
		if t >= Mirror {
			mirror(it)
		}
		for r := 0; r < int(t)%4; r++ {
			rotate(it)
		}
		copy(perms[t][:], grid.Data().([]int))
	}
}

// Transforms returns all the elements of the group. The identity comes first.
func Transforms() []Transform {
	retVal := make([]Transform, 0, numTransforms)
	for t := Identity; t < numTransforms; t++ {
		retVal = append(retVal, t)
	}
	return retVal
}

// Apply returns a new board: b, transformed.
func (t Transform) Apply(b *Board) *Board {
	retVal := New()
	for i, src := range perms[t] {
		retVal.cells[i] = b.cells[src]
	}
	return retVal
}

// Move maps a cell of the transformed board back to the corresponding cell of the original board.
func (t Transform) Move(raw game.Single) game.Single { return game.Single(perms[t][raw]) }

func (t Transform) String() string {
	if t < 0 || t >= numTransforms {
		return fmt.Sprintf("Transform(%d)", int(t))
	}
	return transformNames[t]
}

// SwapColours returns a new board with every X replaced by an O and vice versa.
func SwapColours(b *Board) *Board {
	retVal := New()
	for i, c := range b.cells {
		retVal.cells[i] = c.Swap()
	}
	return retVal
}

// rotate rotates a square grid by a quarter turn, in place.
func rotate(it [][]int) {
	m := len(it)
	for i := 0; i < m/2; i++ {
		mi1 := m - i - 1
		for j := i; j < mi1; j++ {
			mj1 := m - j - 1
			tmp := it[i][j]
			// right to top
			it[i][j] = it[j][mi1]

			// bottom to right
			it[j][mi1] = it[mi1][mj1]

			// left to bottom
			it[mi1][mj1] = it[mj1][i]

			// tmp is left
			it[mj1][i] = tmp
		}
	}
}

// mirror flips a grid left to right, in place.
func mirror(it [][]int) {
	for _, row := range it {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}
