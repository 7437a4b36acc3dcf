// defender is a fixed-formation arcade shooter for the terminal, a desktop
// window and SSH.
//
// Usage:
//
//	defender list              - List available modes
//	defender play [mode]       - Play a mode (default: defender)
//	defender menu              - Name entry and mode picker
//	defender serve             - Start SSH server for remote play
//	defender scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible formations
//	--db <path>           - Set database path (default: ~/.defender/scores.db)
//	--store <kind>        - Score store: sqlite or file
//	--scores-file <path>  - Flat score file for --store file
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/defender/internal/games/defender"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagScoresFile string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defender",
	Short: "Defender - hold the line against a descending formation",
	Long: `Defender is a fixed-formation arcade shooter. A formation of invaders
sweeps side to side and drops a row at every edge; shoot them all before
they cross the defender line.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Name entry and mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  defender play --name Ace
  defender play defender_scatter --name Ace --difficulty hard
  defender play --gui --sound --name Ace
  defender menu
  defender serve --ssh :2222
  defender scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.defender/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeSQLite, "Score store: sqlite or file")
	rootCmd.PersistentFlags().StringVar(&flagScoresFile, "scores-file", "~/.defender/highscores.txt", "Path to flat score file (--store file)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
