// Package session runs a single game from the first move to a win or a
// draw. It owns the only mutable board and alternates between the two
// players, pulling moves from the terminal for humans and from the
// solver for computer players.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tictacterm/tictacterm/internal/apperror"
	"github.com/tictacterm/tictacterm/internal/entity"
	"github.com/tictacterm/tictacterm/internal/rules"
)

// UserInterface is the session's window to the human players: it renders
// the board and collects moves. retryMessage is non-empty when the
// previous input was rejected.
type UserInterface interface {
	PromptMove(player *entity.Player, retryMessage string) (entity.Position, error)
	ShowBoard(board entity.Board)
	ShowResult(result Result)
}

// MoveCalculator picks a move for a computer-controlled player.
type MoveCalculator interface {
	BestMove(board entity.Board, mover string) (entity.Position, error)
}

// Result is the final state of a finished session. Winner is nil on a
// draw; Line holds the completed line's cell indices when HasLine is set.
type Result struct {
	Outcome entity.Outcome
	Winner  *entity.Player
	Line    [3]int
	HasLine bool
}

const (
	stateNotStarted   = "not_started"
	stateAwaitingMove = "awaiting_move"
	stateFinished     = "finished"
)

var ErrSessionRunning = errors.New("session is already running")

type Session struct {
	logger *slog.Logger

	id      string
	board   entity.Board
	players [2]*entity.Player
	current int
	state   string
	result  Result

	ui       UserInterface
	calc     MoveCalculator
	botDelay time.Duration
}

// New creates a session. playerX always moves first.
func New(logger *slog.Logger, ui UserInterface, calc MoveCalculator, playerX, playerO *entity.Player, botDelay time.Duration) *Session {
	return &Session{
		logger:   logger.With("component", "session"),
		id:       uuid.New().String()[:8],
		board:    entity.NewBoard(),
		players:  [2]*entity.Player{playerX, playerO},
		state:    stateNotStarted,
		ui:       ui,
		calc:     calc,
		botDelay: botDelay,
	}
}

// Run drives the turn loop until a win or a draw. It is single-shot:
// calling Run again on a finished session returns the recorded result
// without replaying anything.
func (that *Session) Run(ctx context.Context) (Result, error) {
	switch that.state {
	case stateFinished:
		return that.result, nil
	case stateAwaitingMove:
		return Result{}, ErrSessionRunning
	}

	that.state = stateAwaitingMove
	that.logger.Info("session started",
		"session", that.id,
		"player_x", that.players[0].Name,
		"player_o", that.players[1].Name,
	)

	for that.state == stateAwaitingMove {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("session aborted: %w", err)
		}

		if err := that.takeTurn(ctx); err != nil {
			return Result{}, err
		}

		that.checkIfOver()

		if that.state == stateAwaitingMove {
			that.current = 1 - that.current
		}
	}

	that.ui.ShowBoard(that.board)
	that.ui.ShowResult(that.result)

	that.logger.Info("session finished",
		"session", that.id,
		"winner", that.result.Outcome.Winner,
	)

	return that.result, nil
}

// Result returns the recorded result once the session has finished.
func (that *Session) Result() (Result, error) {
	if that.state != stateFinished {
		return Result{}, apperror.ErrGameIsNotStarted
	}

	return that.result, nil
}

func (that *Session) takeTurn(ctx context.Context) error {
	player := that.players[that.current]

	that.ui.ShowBoard(that.board)

	move, err := that.obtainMove(ctx, player)
	if err != nil {
		return err
	}

	if err = that.board.Place(move, player.Mark); err != nil {
		// Both move sources are validated, so this is an invariant violation.
		return fmt.Errorf("apply move: %w", err)
	}

	that.logger.Info("move applied",
		"session", that.id,
		"player", player.Name,
		"mark", player.Mark,
		"cell", move.CellNumber(),
	)

	return nil
}

// obtainMove asks the solver for computer players and prompts the
// terminal for humans, re-prompting until the move is legal. A rejected
// human move never advances the turn.
func (that *Session) obtainMove(ctx context.Context, player *entity.Player) (entity.Position, error) {
	if player.IsComputer() {
		if err := that.waitBotDelay(ctx); err != nil {
			return entity.Position{}, err
		}

		move, err := that.calc.BestMove(that.board, player.Mark)
		if err != nil {
			return entity.Position{}, fmt.Errorf("computer move: %w", err)
		}

		return move, nil
	}

	retryMessage := ""

	for {
		move, err := that.ui.PromptMove(player, retryMessage)
		if err != nil {
			return entity.Position{}, fmt.Errorf("prompt move: %w", err)
		}

		if err = that.validateMove(move); err == nil {
			return move, nil
		}

		that.logger.Debug("move rejected",
			"session", that.id,
			"player", player.Name,
			"cell", move.CellNumber(),
			"error", err,
		)

		retryMessage = "this cell is not empty"
	}
}

func (that *Session) validateMove(move entity.Position) error {
	if !rules.IsLegalMove(that.board, move) {
		return fmt.Errorf("%w: cell %d", apperror.ErrIllegalMove, move.CellNumber())
	}

	return nil
}

func (that *Session) checkIfOver() {
	outcome := rules.Outcome(that.board)
	if !outcome.IsFinished() {
		return
	}

	result := Result{Outcome: outcome}

	if line, ok := rules.WinningLine(that.board); ok {
		result.Line = line
		result.HasLine = true
		result.Winner = that.playerByMark(that.board[line[0]])
	}

	that.result = result
	that.state = stateFinished
}

func (that *Session) playerByMark(mark string) *entity.Player {
	for _, player := range that.players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// waitBotDelay pauses before a computer move so humans can follow the
// game; the pause is skipped entirely when the delay is zero.
func (that *Session) waitBotDelay(ctx context.Context) error {
	if that.botDelay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("session aborted: %w", ctx.Err())
	case <-time.After(that.botDelay):
		return nil
	}
}
