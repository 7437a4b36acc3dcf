package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/defender/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with name entry and a mode picker",
	Long: `Start in interactive menu mode.

Type a pilot name, pick a mode with the arrow keys and press Enter.
After a game ends, Esc returns to the menu to play again.

Controls:
  Letters/Digits  - Edit pilot name
  Up/Down         - Pick mode
  Enter           - Play
  Tab             - Scoreboard
  Esc/Ctrl+C      - Quit

Examples:
  defender menu
  defender menu --fps 30
  defender menu --store file --scores-file ./scores.txt`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagName, "name", "", "Pre-filled pilot name")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagFormation, "formation", "", "Formation: grid, scattered or a layout file")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable audio cues")
}

func runMenu(_ *cobra.Command, _ []string) {
	applyLaunchOptions()

	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()
	if flagSound {
		sess.enableSound()
	}

	services := sess.services()
	cfg := runtimeConfig()
	name := flagName

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(services, cfg, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config
		name = menuResult.Name

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(services, "", name, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		game, err := services.CreateGame(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		runCfg := cfg
		runCfg.PlayerName = name
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, runCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			return
		}
	}
}
