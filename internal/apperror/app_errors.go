package apperror

import "errors"

var (
	ErrOutOfRange       = errors.New("position is outside the board")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrIllegalMove      = errors.New("move is not legal")
	ErrNoLegalMoves     = errors.New("no legal moves left")
	ErrGameIsNotStarted = errors.New("game is not started")
)
