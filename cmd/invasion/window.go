package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invasion/internal/platform/session"
	"github.com/vovakirdan/invasion/internal/platform/window"
	"github.com/vovakirdan/invasion/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window at the playfield's size.

The mouse pointer is hidden while a game is running and shown again on
the Play screen. Controls are the same as in the terminal.

Examples:
  invasion window
  invasion window --scale 1.5
  invasion window --difficulty hard --sound=false`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, board, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	player := profile()
	p, err := persistence(store, player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := newGame(gameCfg, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := window.Run(game, window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Session: session.Options{
			Store:  store,
			Board:  board,
			Player: player,
			Sound:  newSound(logger),
			Logger: logger,
		},
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
