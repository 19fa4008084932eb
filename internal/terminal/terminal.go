// Package terminal is the stdin/stdout collaborator: it draws the board,
// parses 1-9 keypad moves and runs the menus. It holds no game logic
// beyond input format checks.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/tictacterm/tictacterm/internal/entity"
	"github.com/tictacterm/tictacterm/internal/session"
)

type GameMode int

const (
	ModeQuit GameMode = iota
	ModePlayerVsPlayer
	ModePlayerVsCPU
	ModeCPUVsPlayer
	ModeCPUVsCPU
)

const prompt = " > "

type UI struct {
	in  *bufio.Scanner
	out io.Writer

	noColor bool

	// last board shown, redrawn with the winning line highlighted when
	// the result comes in
	board       entity.Board
	winningLine []int
}

func New(in io.Reader, out io.Writer, noColor bool) *UI {
	return &UI{
		in:      bufio.NewScanner(in),
		out:     out,
		noColor: noColor,
	}
}

// PromptMove asks the player for a cell number until the input parses as
// 1-9. Occupancy is the session's call, not ours.
func (that *UI) PromptMove(player *entity.Player, retryMessage string) (entity.Position, error) {
	name := that.markStyle(player.Mark, false).Sprint(player.Name)

	if retryMessage != "" {
		fmt.Fprintf(that.out, "%s%s, %s. Try again: ", prompt, name, retryMessage)
	} else {
		fmt.Fprintf(that.out, "%s%s, your move! Enter a number: ", prompt, name)
	}

	for {
		input, err := that.readLine()
		if err != nil {
			return entity.Position{}, err
		}

		number, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(that.out, "%sYour input must be a number between 1 and 9! Try again: ", prompt)
			continue
		}

		pos, err := entity.PositionFromIndex(number - 1)
		if err != nil {
			fmt.Fprintf(that.out, "%sYour input must be between 1 and 9! Try again: ", prompt)
			continue
		}

		return pos, nil
	}
}

func (that *UI) ShowBoard(board entity.Board) {
	that.board = board

	if board.IsEmpty() {
		// new game, forget the previous win
		that.winningLine = nil
	}

	that.drawBoard()
}

func (that *UI) ShowResult(result session.Result) {
	var message string

	switch {
	case result.Outcome.IsDraw():
		message = "It's a draw!"
	case result.Winner != nil:
		if result.HasLine {
			that.winningLine = result.Line[:]
		}

		name := that.markStyle(result.Winner.Mark, false).Add(color.Underline).Sprint(result.Winner.Name)
		message = fmt.Sprintf("%s won!", name)
	}

	that.drawBoard()
	fmt.Fprintf(that.out, "%s%s\n", prompt, message)
}

func (that *UI) ShowScores(playerX *entity.Player, scoreX int, playerO *entity.Player, scoreO int) {
	fmt.Fprintf(that.out, "%s%s %d : %d %s\n",
		prompt,
		that.markStyle(playerX.Mark, false).Sprint(playerX.Name),
		scoreX,
		scoreO,
		that.markStyle(playerO.Mark, false).Sprint(playerO.Name),
	)
}

func (that *UI) SelectMode() (GameMode, error) {
	that.clearScreen()

	fmt.Fprintln(that.out, "Select game mode!")
	that.printGameModes()
	fmt.Fprint(that.out, "Your choice: ")

	for {
		input, err := that.readLine()
		if err != nil {
			return ModeQuit, err
		}

		switch strings.ToLower(input) {
		case "1", "[1]":
			return ModePlayerVsPlayer, nil
		case "2", "[2]":
			return ModePlayerVsCPU, nil
		case "3", "[3]":
			return ModeCPUVsPlayer, nil
		case "4", "[4]":
			return ModeCPUVsCPU, nil
		case "0", "q":
			return ModeQuit, nil
		default:
			fmt.Fprintln(that.out, "Incorrect input! Here are the options again:")
			that.printGameModes()
			fmt.Fprint(that.out, "Enter a number between 1 and 4. To quit, enter 0 or q: ")
		}
	}
}

// PromptName asks for a player name; an empty answer falls back to the
// placeholder.
func (that *UI) PromptName(placeholder string) (string, error) {
	that.clearScreen()

	fmt.Fprintf(that.out, "%s, enter your name: ", placeholder)

	name, err := that.readLine()
	if err != nil {
		return "", err
	}

	if name == "" {
		name = placeholder
	}

	return name, nil
}

func (that *UI) KeepPlaying() (bool, error) {
	fmt.Fprint(that.out, "Again? y/n: ")

	for {
		input, err := that.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprint(that.out, "Incorrect input! Do you want to play again? Enter [y]es or [n]o: ")
		}
	}
}

func (that *UI) drawBoard() {
	cells := make([]string, len(that.board))
	for index := range that.board {
		cells[index] = that.styledCell(index)
	}

	that.clearScreen()

	fmt.Fprintln(that.out, "\n   +-----+-----+-----+")

	for row := 0; row < entity.BoardSize; row++ {
		fmt.Fprintln(that.out, "   |     |     |     |")
		fmt.Fprintf(that.out, "   | %s | %s | %s |\n",
			cells[row*entity.BoardSize],
			cells[row*entity.BoardSize+1],
			cells[row*entity.BoardSize+2],
		)
		fmt.Fprintln(that.out, "   |     |     |     |")
		fmt.Fprintln(that.out, "   +-----+-----+-----+")
	}

	fmt.Fprintln(that.out)
}

func (that *UI) styledCell(index int) string {
	highlight := false
	for _, winningIndex := range that.winningLine {
		if winningIndex == index {
			highlight = true
		}
	}

	cell := that.board[index]
	if cell == entity.EmptyCell {
		return that.markStyle(cell, highlight).Sprintf("[%d]", index+1)
	}

	return that.markStyle(cell, highlight).Sprintf(" %s ", cell)
}

func (that *UI) markStyle(mark string, highlight bool) *color.Color {
	var attrs []color.Attribute

	switch mark {
	case entity.PlayerX:
		attrs = []color.Attribute{color.Bold, color.FgGreen}
	case entity.PlayerO:
		attrs = []color.Attribute{color.Bold, color.FgBlue}
	default:
		attrs = []color.Attribute{color.FgHiBlack}
	}

	if highlight {
		attrs = append(attrs, color.ReverseVideo)
	}

	style := color.New(attrs...)
	if that.noColor {
		style.DisableColor()
	}

	return style
}

func (that *UI) printGameModes() {
	fmt.Fprintln(that.out, "[1] Player vs Player")
	fmt.Fprintln(that.out, "[2] Player vs CPU (Player starts)")
	fmt.Fprintln(that.out, "[3] CPU vs Player (CPU starts)")
	fmt.Fprintln(that.out, "[4] CPU vs CPU")
	fmt.Fprintln(that.out, "[0 or q] to quit!")
}

func (that *UI) clearScreen() {
	if that.noColor {
		return
	}

	fmt.Fprint(that.out, "\x1B[2J\x1B[H")
}

func (that *UI) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}

		return "", fmt.Errorf("read input: %w", io.EOF)
	}

	return strings.TrimSpace(that.in.Text()), nil
}
