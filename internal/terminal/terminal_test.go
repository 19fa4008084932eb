package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictacterm/tictacterm/internal/entity"
	"github.com/tictacterm/tictacterm/internal/session"
)

// newTestUI wires the UI to scripted input and a capture buffer, with
// colors off so assertions see plain text.
func newTestUI(input string) (*UI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, true), out
}

func TestUI_PromptMove(t *testing.T) {
	player := entity.NewHumanPlayer("Steve", entity.PlayerX)

	t.Run("Parses a cell number into a position", func(t *testing.T) {
		ui, _ := newTestUI("5\n")

		pos, err := ui.PromptMove(player, "")

		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 1, Col: 1}, pos)
	})

	t.Run("Re-prompts on junk until a valid number arrives", func(t *testing.T) {
		ui, out := newTestUI("abc\n0\n42\n7\n")

		pos, err := ui.PromptMove(player, "")

		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 2, Col: 0}, pos)
		assert.Contains(t, out.String(), "must be a number between 1 and 9")
		assert.Contains(t, out.String(), "must be between 1 and 9")
	})

	t.Run("Shows the retry message from the session", func(t *testing.T) {
		ui, out := newTestUI("3\n")

		_, err := ui.PromptMove(player, "this cell is not empty")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Steve, this cell is not empty. Try again:")
	})

	t.Run("Fails when input ends", func(t *testing.T) {
		ui, _ := newTestUI("")

		_, err := ui.PromptMove(player, "")

		require.Error(t, err)
	})
}

func TestUI_SelectMode(t *testing.T) {
	t.Run("Maps menu entries to modes", func(t *testing.T) {
		for input, want := range map[string]GameMode{
			"1\n": ModePlayerVsPlayer,
			"2\n": ModePlayerVsCPU,
			"3\n": ModeCPUVsPlayer,
			"4\n": ModeCPUVsCPU,
			"0\n": ModeQuit,
			"q\n": ModeQuit,
			"Q\n": ModeQuit,
		} {
			ui, _ := newTestUI(input)

			mode, err := ui.SelectMode()

			require.NoError(t, err)
			assert.Equal(t, want, mode, "input %q", input)
		}
	})

	t.Run("Re-prompts on unknown input", func(t *testing.T) {
		ui, out := newTestUI("x\n\n4\n")

		mode, err := ui.SelectMode()

		require.NoError(t, err)
		assert.Equal(t, ModeCPUVsCPU, mode)
		assert.Contains(t, out.String(), "Incorrect input!")
	})
}

func TestUI_PromptName(t *testing.T) {
	t.Run("Trims the entered name", func(t *testing.T) {
		ui, _ := newTestUI("  Steve  \n")

		name, err := ui.PromptName("Player1")

		require.NoError(t, err)
		assert.Equal(t, "Steve", name)
	})

	t.Run("Falls back to the placeholder on empty input", func(t *testing.T) {
		ui, _ := newTestUI("\n")

		name, err := ui.PromptName("Player2")

		require.NoError(t, err)
		assert.Equal(t, "Player2", name)
	})
}

func TestUI_KeepPlaying(t *testing.T) {
	t.Run("Accepts yes in any casing", func(t *testing.T) {
		ui, _ := newTestUI("YES\n")

		again, err := ui.KeepPlaying()

		require.NoError(t, err)
		assert.True(t, again)
	})

	t.Run("Accepts no", func(t *testing.T) {
		ui, _ := newTestUI("n\n")

		again, err := ui.KeepPlaying()

		require.NoError(t, err)
		assert.False(t, again)
	})

	t.Run("Re-prompts until the answer makes sense", func(t *testing.T) {
		ui, out := newTestUI("maybe\ny\n")

		again, err := ui.KeepPlaying()

		require.NoError(t, err)
		assert.True(t, again)
		assert.Contains(t, out.String(), "Incorrect input!")
	})
}

func TestUI_ShowBoard(t *testing.T) {
	t.Run("Draws marks and numbered empty cells", func(t *testing.T) {
		ui, out := newTestUI("")
		board := entity.Board{
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		ui.ShowBoard(board)

		assert.Contains(t, out.String(), " X ")
		assert.Contains(t, out.String(), " O ")
		assert.Contains(t, out.String(), "[2]")
		assert.Contains(t, out.String(), "[9]")
		assert.NotContains(t, out.String(), "[1]", "occupied cells lose their number")
	})
}

func TestUI_ShowResult(t *testing.T) {
	t.Run("Announces the winner by name", func(t *testing.T) {
		ui, out := newTestUI("")
		winner := entity.NewHumanPlayer("Steve", entity.PlayerX)

		ui.ShowResult(session.Result{
			Outcome: entity.WonBy(entity.PlayerX),
			Winner:  winner,
			Line:    [3]int{0, 1, 2},
			HasLine: true,
		})

		assert.Contains(t, out.String(), "Steve won!")
	})

	t.Run("Announces a draw", func(t *testing.T) {
		ui, out := newTestUI("")

		ui.ShowResult(session.Result{Outcome: entity.Drawn()})

		assert.Contains(t, out.String(), "It's a draw!")
	})
}

func TestUI_ShowScores(t *testing.T) {
	ui, out := newTestUI("")
	playerX := entity.NewHumanPlayer("Steve", entity.PlayerX)
	playerO := entity.NewComputerPlayer(entity.PlayerO)

	ui.ShowScores(playerX, 2, playerO, 1)

	assert.Contains(t, out.String(), "Steve 2 : 1 CPU")
}
