package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tictacterm/tictacterm/internal/config"
	"github.com/tictacterm/tictacterm/internal/entity"
	"github.com/tictacterm/tictacterm/internal/session"
	"github.com/tictacterm/tictacterm/internal/solver"
	"github.com/tictacterm/tictacterm/internal/terminal"
)

// RunApp - runs the application: mode menu, then game sessions with
// rematches until the player quits.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	ui := terminal.New(os.Stdin, os.Stdout, conf.Game.NoColor)
	moveCalc := solver.New()

	for {
		mode, err := ui.SelectMode()
		if err != nil {
			return fmt.Errorf("select mode: %w", err)
		}

		if mode == terminal.ModeQuit {
			log.Info("Player quit from the mode menu")
			return nil
		}

		playerX, playerO, err := createPlayers(ui, mode)
		if err != nil {
			return fmt.Errorf("create players: %w", err)
		}

		// win counters live only for this mode selection
		scores := make(map[string]int, 2)

		for {
			sess := session.New(logger, ui, moveCalc, playerX, playerO, conf.Game.BotDelay)

			result, err := sess.Run(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return fmt.Errorf("run session: %w", err)
			}

			if result.Winner != nil {
				scores[result.Winner.ID]++
			}

			ui.ShowScores(playerX, scores[playerX.ID], playerO, scores[playerO.ID])

			again, err := ui.KeepPlaying()
			if err != nil {
				return fmt.Errorf("rematch prompt: %w", err)
			}

			if !again {
				break
			}
		}
	}
}

// createPlayers builds the two players for the selected mode. The
// first-configured player always holds X and moves first.
func createPlayers(ui *terminal.UI, mode terminal.GameMode) (*entity.Player, *entity.Player, error) {
	switch mode {
	case terminal.ModePlayerVsPlayer:
		name1, err := ui.PromptName("Player1")
		if err != nil {
			return nil, nil, err
		}

		name2, err := ui.PromptName("Player2")
		if err != nil {
			return nil, nil, err
		}

		return entity.NewHumanPlayer(name1, entity.PlayerX), entity.NewHumanPlayer(name2, entity.PlayerO), nil

	case terminal.ModePlayerVsCPU:
		name, err := ui.PromptName("Player1")
		if err != nil {
			return nil, nil, err
		}

		return entity.NewHumanPlayer(name, entity.PlayerX), entity.NewComputerPlayer(entity.PlayerO), nil

	case terminal.ModeCPUVsPlayer:
		name, err := ui.PromptName("Player2")
		if err != nil {
			return nil, nil, err
		}

		return entity.NewComputerPlayer(entity.PlayerX), entity.NewHumanPlayer(name, entity.PlayerO), nil

	case terminal.ModeCPUVsCPU:
		return entity.NewComputerPlayer(entity.PlayerX), entity.NewComputerPlayer(entity.PlayerO), nil

	default:
		return nil, nil, fmt.Errorf("unsupported game mode: %d", mode)
	}
}
