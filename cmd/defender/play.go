package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/defender/internal/games/defender"
	"github.com/vovakirdan/defender/internal/platform/gui"
	"github.com/vovakirdan/defender/internal/platform/tui"
	"github.com/vovakirdan/defender/internal/registry"
)

var (
	flagName       string
	flagConfig     string
	flagDifficulty string
	flagFormation  string
	flagGUI        bool
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: defender).

Without --name the title screen waits; the menu command has a name field.

Controls:
  A/D, Left/Right  - Move
  Space/Up         - Fire
  Enter            - Start
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back (paused or after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow formation, gentle speed-up per wave
  normal - Configured speed and speed-up
  hard   - Fast formation, steep speed-up
  fixed  - No per-wave speed-up

Formation options:
  grid       - Rows and columns
  scattered  - Seeded random positions
  <path>     - YAML layout file

Examples:
  defender play --name Ace
  defender play defender_scatter --name Ace --seed 42
  defender play --name Ace --difficulty hard
  defender play --name Ace --formation ./configs/layouts/wedge.yaml
  defender play --name Ace --gui --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Pilot name (letters and digits, up to 20)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagFormation, "formation", "", "Formation: grid, scattered or a layout file")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable audio cues")
}

// applyLaunchOptions hands the shared flags to the defender modes.
func applyLaunchOptions() {
	defender.SetConfigPath(flagConfig)
	defender.SetDifficultyPreset(flagDifficulty)
	defender.SetFormation(flagFormation)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defender.ModeGrid
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'defender list' to see available modes.")
		os.Exit(1)
	}

	applyLaunchOptions()

	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSound {
		sess.enableSound()
	}

	cfg := runtimeConfig()
	cfg.PlayerName = defender.SanitizeName(flagName)

	game, err := sess.services().CreateGame(gameID)
	if err != nil {
		sess.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	var runErr error
	if flagGUI {
		g, ok := game.(*defender.Game)
		if !ok {
			sess.Close()
			fmt.Fprintf(os.Stderr, "Error: mode %q has no window frontend\n", gameID)
			os.Exit(1)
		}
		runErr = gui.Run(g, cfg, gui.Options{})
	} else {
		_, runErr = tui.Run(game, cfg)
	}

	// Close session before potential exit
	sess.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
