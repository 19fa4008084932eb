// Package solver implements the exhaustive minimax search for the
// computer player. The 3x3 state space is at most 9! positions, so there
// is no pruning or memoization; this is deliberately not a general
// search algorithm.
package solver

import (
	"fmt"

	"github.com/tictacterm/tictacterm/internal/apperror"
	"github.com/tictacterm/tictacterm/internal/entity"
	"github.com/tictacterm/tictacterm/internal/rules"
)

// Terminal scores are scaled by the distance to the terminal state, so
// the solver prefers faster wins and drags out unavoidable losses.
const (
	winScore   = 100
	scoreFloor = -1000
	scoreCeil  = 1000
)

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

// BestMove returns the optimal move for mover under optimal play by both
// sides. Ties between equally good moves go to the first one in
// row-major order, which keeps the choice reproducible. Callers must
// check the outcome first; a full board returns ErrNoLegalMoves.
func (that *Solver) BestMove(board entity.Board, mover string) (entity.Position, error) {
	moves := rules.LegalMoves(board)
	if len(moves) == 0 {
		return entity.Position{}, fmt.Errorf("%w: board is full", apperror.ErrNoLegalMoves)
	}

	bestMove := moves[0]
	bestScore := scoreFloor

	for _, move := range moves {
		next := board // scratch copy, the caller's board stays untouched
		next[move.Index()] = mover

		if score := minimax(next, mover, false, 1); score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, nil
}

func minimax(board entity.Board, mover string, maximizing bool, depth int) int {
	if outcome := rules.Outcome(board); outcome.IsFinished() {
		switch {
		case outcome.IsDraw():
			return 0
		case outcome.Winner == mover:
			return winScore - depth
		default:
			return depth - winScore
		}
	}

	current, best := mover, scoreFloor
	if !maximizing {
		current, best = entity.OpponentMark(mover), scoreCeil
	}

	for _, move := range rules.LegalMoves(board) {
		next := board
		next[move.Index()] = current

		score := minimax(next, mover, !maximizing, depth+1)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}
