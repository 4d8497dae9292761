package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMoveExhausted is returned by a player that has nothing left to choose from.
var ErrMoveExhausted = errors.New("no move can be made")

// MoveError is returned when a move is not legal on a board.
type MoveError PlayerMove

func (err MoveError) Error() string {
	return fmt.Sprintf("Unable to make %v", PlayerMove(err))
}
