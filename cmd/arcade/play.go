package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/platform/tui"
	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var settings gameSettings

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (Iso Coins):
  Arrows/WASD  - Move (diagonals with two keys)
  Mouse        - Click a neighbouring tile to step onto it
  P            - Pause
  R            - Restart (after the game has ended)
  Ctrl+S       - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Controls (Color Wipe):
  Mouse        - Click a cell to wipe its color
  Arrows+Enter - Move the cursor and pick
  R            - New board

When no --map is given for Iso Coins, a map selector is shown.

Difficulty options:
  easy   - Iso Coins: quicker steps. Color Wipe: fewer colors, wider match
  normal - Configured values
  hard   - Iso Coins: slower steps. Color Wipe: bigger board, tighter match

Examples:
  arcade play isocoins
  arcade play isocoins --map maze
  arcade play isocoins --map ./my-map.txt --lenient
  arcade play colorwipe --difficulty hard
  arcade play isocoins --config ./my-isocoins.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

// addGameFlags registers the per-game flags on cmd.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&settings.configPath, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&settings.mapRef, "map", "", "Iso Coins map: built-in name, name in the maps dir, or file path")
	cmd.Flags().BoolVar(&settings.lenient, "lenient", false, "Pad or truncate malformed map rows instead of rejecting them")
	cmd.Flags().StringVar(&settings.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func init() {
	addGameFlags(playCmd)
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; failures only disable saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := settings.validate(); err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := terminalConfig()
	settings.apply(gameID, logger)

	// Iso Coins without an explicit map starts with the map selector.
	if gameID == "isocoins" && settings.mapRef == "" {
		ref, selErr := tui.RunMapSelector(cfg)
		if selErr != nil {
			return selErr
		}
		if ref == "" {
			return nil // User pressed back or quit
		}
		s := settings
		s.mapRef = ref
		s.apply(gameID, logger)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID)
	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
