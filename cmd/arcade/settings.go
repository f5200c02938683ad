package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/games/colorwipe"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins"
)

// gameSettings are the per-game flags shared by play, menu and window.
type gameSettings struct {
	configPath string
	mapRef     string
	lenient    bool
	difficulty string
}

// apply hands the settings and the logger to the game packages.
// configPath only applies to gameID; an empty gameID applies it to none.
func (s gameSettings) apply(gameID string, logger *log.Logger) {
	isocoins.SetLogger(logger)
	isocoins.SetMap(s.mapRef)
	isocoins.SetLenient(s.lenient)
	isocoins.SetDifficultyPreset(s.difficulty)
	colorwipe.SetLogger(logger)
	colorwipe.SetDifficultyPreset(s.difficulty)

	switch gameID {
	case "isocoins":
		isocoins.SetConfigPath(s.configPath)
	case "colorwipe":
		colorwipe.SetConfigPath(s.configPath)
	}
}

// validate rejects unknown difficulty presets.
func (s gameSettings) validate() error {
	_, err := config.ParseDifficulty(s.difficulty)
	return err
}
