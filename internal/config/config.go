// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// IsoCoinsConfig contains all configuration for the isometric coin game.
type IsoCoinsConfig struct {
	Rules      IsoCoinsRules      `yaml:"rules"`
	Animations IsoCoinsAnimations `yaml:"animations"`
	Terminal   IsoCoinsTerminal   `yaml:"terminal"`
	Window     IsoCoinsWindow     `yaml:"window"`
	Maps       IsoCoinsMaps       `yaml:"maps"`
}

// IsoCoinsRules defines tile meanings and movement timing.
type IsoCoinsRules struct {
	HazardTile   int           `yaml:"hazard_tile"`
	WallTile     int           `yaml:"wall_tile"`
	SpawnTile    int           `yaml:"spawn_tile"`
	MoveCooldown time.Duration `yaml:"move_cooldown"`
}

// AnimationConfig describes one looping animation.
type AnimationConfig struct {
	Frames int           `yaml:"frames"`
	Sheet  string        `yaml:"sheet"`  // sprite strip, relative to the assets dir
	Glyphs string        `yaml:"glyphs"` // one rune per frame for the terminal
	Speed  time.Duration `yaml:"speed"`  // time per frame
}

// IsoCoinsAnimations holds the coin loop and the player animations.
type IsoCoinsAnimations struct {
	Coin       AnimationConfig `yaml:"coin"`
	PlayerIdle AnimationConfig `yaml:"player_idle"`
	PlayerWon  AnimationConfig `yaml:"player_won"`
	PlayerLost AnimationConfig `yaml:"player_lost"`
}

// IsoCoinsTerminal defines the tile size in character cells.
type IsoCoinsTerminal struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
}

// IsoCoinsWindow defines the pixel window layout.
type IsoCoinsWindow struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	TileWidth    int     `yaml:"tile_width"`
	TileHeight   int     `yaml:"tile_height"`
	TilesetTiles int     `yaml:"tileset_tiles"` // tiles in the tileset strip
	Darken       float64 `yaml:"darken"`        // color factor for the player's tile
	AssetsDir    string  `yaml:"assets_dir"`
}

// IsoCoinsMaps selects the map to play.
type IsoCoinsMaps struct {
	Default string `yaml:"default"` // catalog name or file path
	Dir     string `yaml:"dir"`     // extra maps, *.txt; "~" expands to the home dir
	Lenient bool   `yaml:"lenient"`
}

// Validate checks values the game cannot work with.
func (c IsoCoinsConfig) Validate() error {
	var errs []error
	if c.Rules.MoveCooldown < 0 {
		errs = append(errs, fmt.Errorf("rules.move_cooldown must not be negative, got %s", c.Rules.MoveCooldown))
	}
	if c.Terminal.TileWidth < 2 || c.Terminal.TileHeight < 1 {
		errs = append(errs, fmt.Errorf("terminal tile must be at least 2x1, got %dx%d", c.Terminal.TileWidth, c.Terminal.TileHeight))
	}
	if c.Window.TileWidth <= 0 || c.Window.TileHeight <= 0 {
		errs = append(errs, fmt.Errorf("window tile must be positive, got %dx%d", c.Window.TileWidth, c.Window.TileHeight))
	}
	if c.Window.TilesetTiles <= 0 {
		errs = append(errs, fmt.Errorf("window.tileset_tiles must be positive, got %d", c.Window.TilesetTiles))
	}
	if c.Animations.Coin.Frames <= 0 || c.Animations.PlayerIdle.Frames <= 0 {
		errs = append(errs, errors.New("coin and player_idle animations need at least one frame"))
	}
	return errors.Join(errs...)
}

// ColorWipeConfig contains all configuration for the Color Wipe puzzle.
type ColorWipeConfig struct {
	Grid    ColorWipeGrid    `yaml:"grid"`
	Scoring ColorWipeScoring `yaml:"scoring"`
}

// ColorWipeGrid defines the board.
type ColorWipeGrid struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Threshold float64 `yaml:"threshold"` // max RGB distance (0..sqrt(3)) wiped by a pick
	Palette   int     `yaml:"palette"`   // 0 = fully random colors, N = N distinct colors
}

// ColorWipeScoring defines points.
type ColorWipeScoring struct {
	StartPoints int `yaml:"start_points"`
	PerCell     int `yaml:"per_cell"`
	MissPenalty int `yaml:"miss_penalty"`
}

// Validate checks values the game cannot work with.
func (c ColorWipeConfig) Validate() error {
	var errs []error
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Rows, c.Grid.Cols))
	}
	if c.Grid.Threshold < 0 {
		errs = append(errs, fmt.Errorf("grid.threshold must not be negative, got %v", c.Grid.Threshold))
	}
	if c.Grid.Palette < 0 {
		errs = append(errs, fmt.Errorf("grid.palette must not be negative, got %d", c.Grid.Palette))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
