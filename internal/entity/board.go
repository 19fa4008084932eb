package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tictacterm/tictacterm/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 3
)

var ErrMalformedBoard = errors.New("malformed board text")

// Position addresses a single cell by row and column, both in 0..2.
type Position struct {
	Row int
	Col int
}

func NewPosition(row, col int) (Position, error) {
	pos := Position{Row: row, Col: col}
	if err := pos.validate(); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// PositionFromIndex converts a flat 0-8 index into a Position.
func PositionFromIndex(index int) (Position, error) {
	if index < 0 || index >= BoardSize*BoardSize {
		return Position{}, fmt.Errorf("%w: index %d", apperror.ErrOutOfRange, index)
	}

	return Position{Row: index / BoardSize, Col: index % BoardSize}, nil
}

func (that Position) Index() int {
	return that.Row*BoardSize + that.Col
}

// CellNumber is the 1-9 keypad encoding shown to players in the terminal.
func (that Position) CellNumber() int {
	return that.Index() + 1
}

func (that Position) validate() error {
	if that.Row < 0 || that.Row >= BoardSize || that.Col < 0 || that.Col >= BoardSize {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfRange, that.Row, that.Col)
	}

	return nil
}

// Board is the 3x3 grid in row-major order. A cell holds PlayerX,
// PlayerO or EmptyCell. Marks are never erased once placed.
type Board [BoardSize * BoardSize]string

func NewBoard() Board {
	return Board{}
}

func (that *Board) CellAt(pos Position) (string, error) {
	if err := pos.validate(); err != nil {
		return "", err
	}

	return that[pos.Index()], nil
}

// Place sets the cell at pos to mark. Only the session's turn loop may
// call it; every other component works on copies.
func (that *Board) Place(pos Position, mark string) error {
	cell, err := that.CellAt(pos)
	if err != nil {
		return err
	}

	if cell != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, pos.CellNumber())
	}

	that[pos.Index()] = mark

	return nil
}

// EmptyPositions lists all empty cells in row-major order. The result is
// recomputed on every call.
func (that *Board) EmptyPositions() []Position {
	positions := make([]Position, 0, len(that))

	for index, cell := range that {
		if cell != EmptyCell {
			continue
		}

		pos, _ := PositionFromIndex(index)
		positions = append(positions, pos)
	}

	return positions
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != EmptyCell {
			return false
		}
	}

	return true
}

// String renders the board as three lines of cells separated by "|".
// Empty cells render their 1-9 cell number, the way the terminal shows
// them. ParseBoard is the exact inverse.
func (that Board) String() string {
	var builder strings.Builder

	for row := 0; row < BoardSize; row++ {
		cells := make([]string, 0, BoardSize)

		for col := 0; col < BoardSize; col++ {
			pos := Position{Row: row, Col: col}

			cell := that[pos.Index()]
			if cell == EmptyCell {
				cell = strconv.Itoa(pos.CellNumber())
			}

			cells = append(cells, cell)
		}

		if row > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(strings.Join(cells, " | "))
	}

	return builder.String()
}

// ParseBoard reads the textual format produced by Board.String back into
// a Board.
func ParseBoard(text string) (Board, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != BoardSize {
		return Board{}, fmt.Errorf("%w: want %d rows, got %d", ErrMalformedBoard, BoardSize, len(lines))
	}

	var board Board

	for row, line := range lines {
		cells := strings.Split(line, "|")
		if len(cells) != BoardSize {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrMalformedBoard, row, len(cells))
		}

		for col, raw := range cells {
			pos := Position{Row: row, Col: col}

			switch cell := strings.TrimSpace(raw); cell {
			case PlayerX, PlayerO:
				board[pos.Index()] = cell
			case strconv.Itoa(pos.CellNumber()):
				// empty cell rendered as its own number
			default:
				return Board{}, fmt.Errorf("%w: unexpected cell %q at row %d col %d", ErrMalformedBoard, cell, row, col)
			}
		}
	}

	return board, nil
}
