package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/platform/window"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play Iso Coins in a pixel window",
	Long: `Open Iso Coins in a window with the tileset and sprite sheets from the
assets directory. Missing images are logged and not drawn.

Controls:
  Arrows  - Move (hold to keep walking)
  Mouse   - Click a neighbouring tile to step onto it
  P       - Pause
  R       - Restart (after the game has ended)
  Esc     - Quit

Examples:
  arcade window
  arcade window --map lava-field --assets ./assets
  arcade window --config ./my-isocoins.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Assets directory (default from config)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	if err := settings.validate(); err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	settings.apply("isocoins", logger)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	w := window.New(window.Options{
		AssetsDir: flagAssets,
		TickRate:  flagFPS,
		Store:     store,
		Logger:    logger,
	})
	return w.Run()
}
