// Package rules decides legality and terminal states for a board. It is
// kept apart from the solver so search correctness and win detection can
// be tested independently.
package rules

import "github.com/tictacterm/tictacterm/internal/entity"

// WinLines enumerates the 8 winning lines: 3 rows, 3 columns and the two
// diagonals, in row-major order. When more than one line is complete
// (only reachable from an invalid prior state) the first one in this
// order wins the tie-break.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner returns the mark holding a completed line, or EmptyCell if
// there is none.
func Winner(board entity.Board) string {
	if line, ok := WinningLine(board); ok {
		return board[line[0]]
	}

	return entity.EmptyCell
}

// WinningLine returns the cell indices of the first completed line in
// enumeration order.
func WinningLine(board entity.Board) ([3]int, bool) {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return line, true
		}
	}

	return [3]int{}, false
}

// Outcome derives the game state from board contents alone.
func Outcome(board entity.Board) entity.Outcome {
	if winner := Winner(board); winner != entity.EmptyCell {
		return entity.WonBy(winner)
	}

	if board.IsFull() {
		return entity.Drawn()
	}

	return entity.InProgress()
}

// LegalMoves lists every playable position in row-major order.
func LegalMoves(board entity.Board) []entity.Position {
	return board.EmptyPositions()
}

func IsLegalMove(board entity.Board, pos entity.Position) bool {
	cell, err := board.CellAt(pos)

	return err == nil && cell == entity.EmptyCell
}
