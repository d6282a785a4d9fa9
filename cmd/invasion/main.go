// invasion is an Alien Invasion style arcade shooter that runs in the
// terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	invasion                 - Play in the terminal
//	invasion play            - Play in the terminal
//	invasion window          - Play in a desktop window
//	invasion serve           - Start SSH server for remote play
//	invasion scores [board]  - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.invasion/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--save-file [path]    - Save to a file instead of the database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invasion/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagSaveFile   string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - shoot down the fleet before it lands",
	Long: `Alien Invasion is an arcade shooter. A fleet of aliens sweeps across
the screen and drops closer every time it reaches an edge. Shoot them all
to reach the next, faster level. Clearing a level drops a bonus heart that
gives an extra ship when caught.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  invasion
  invasion --difficulty hard
  invasion window --scale 1.5
  invasion serve --ssh :2222
  invasion scores easy`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.StringVar(&flagDBPath, "db", "~/.invasion/scores.db", "Path to scores and saves database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagLogFile, "log", "", "Write logs to this file")
	flags.StringVar(&flagSaveFile, "save-file", "", "Save to a msgpack file instead of the database")
	flags.Lookup("save-file").NoOptDefVal = storage.DefaultSaveFile
	flags.BoolVar(&flagSound, "sound", true, "Play sound effects")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
