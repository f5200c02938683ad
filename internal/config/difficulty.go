package config

import "time"

// ApplyIsoCoinsPreset adjusts the move cooldown for a difficulty preset.
// Hard makes the player slower to react, easy gives quicker steps.
func ApplyIsoCoinsPreset(cfg *IsoCoinsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.MoveCooldown = 150 * time.Millisecond
	case DifficultyHard:
		cfg.Rules.MoveCooldown = 280 * time.Millisecond
	}
}

// ApplyColorWipePreset adjusts the board for a difficulty preset.
// A tighter threshold wipes fewer cells per pick.
func ApplyColorWipePreset(cfg *ColorWipeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Grid.Threshold = 0.7
		cfg.Grid.Palette = 6
	case DifficultyHard:
		cfg.Grid.Threshold = 0.35
		cfg.Grid.Rows += 2
		cfg.Grid.Cols += 2
	}
}
