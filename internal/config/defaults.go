package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/isocoins.yaml
var defaultIsoCoinsYAML []byte

//go:embed defaults/colorwipe.yaml
var defaultColorWipeYAML []byte

// DefaultIsoCoinsConfig returns the default coin game configuration.
func DefaultIsoCoinsConfig() IsoCoinsConfig {
	return IsoCoinsConfig{
		Rules: IsoCoinsRules{
			HazardTile:   3,
			WallTile:     5,
			SpawnTile:    6,
			MoveCooldown: 200 * time.Millisecond,
		},
		Animations: IsoCoinsAnimations{
			Coin: AnimationConfig{
				Frames: 10,
				Sheet:  "sprites/coin.png",
				Glyphs: "$Oo0|!|0oO",
				Speed:  60 * time.Millisecond,
			},
			PlayerIdle: AnimationConfig{
				Frames: 4,
				Sheet:  "sprites/player_idle.png",
				Glyphs: "@@&@",
				Speed:  180 * time.Millisecond,
			},
			PlayerWon: AnimationConfig{
				Frames: 2,
				Sheet:  "sprites/player_won.png",
				Glyphs: "*+",
				Speed:  180 * time.Millisecond,
			},
			PlayerLost: AnimationConfig{
				Frames: 2,
				Sheet:  "sprites/player_lost.png",
				Glyphs: "xX",
				Speed:  180 * time.Millisecond,
			},
		},
		Terminal: IsoCoinsTerminal{
			TileWidth:  8,
			TileHeight: 4,
		},
		Window: IsoCoinsWindow{
			Width:        1280,
			Height:       720,
			TileWidth:    64,
			TileHeight:   32,
			TilesetTiles: 7,
			Darken:       0.5,
			AssetsDir:    "assets",
		},
		Maps: IsoCoinsMaps{
			Default: "classic",
			Dir:     "~/.arcade/maps",
			Lenient: false,
		},
	}
}

// DefaultColorWipeConfig returns the default Color Wipe configuration.
func DefaultColorWipeConfig() ColorWipeConfig {
	return ColorWipeConfig{
		Grid: ColorWipeGrid{
			Rows:      6,
			Cols:      8,
			Threshold: 0.5,
			Palette:   0,
		},
		Scoring: ColorWipeScoring{
			StartPoints: 100,
			PerCell:     5,
			MissPenalty: 10,
		},
	}
}
