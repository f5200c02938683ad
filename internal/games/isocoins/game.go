// Package isocoins implements the isometric coin game: walk a diamond-shaped
// tile map, pick up every coin and never step on lava.
package isocoins

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins/iso"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins/tilemap"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// Package-level settings applied on the next Reset (set by the CLI and menus).
var (
	configPath       string
	mapRef           string
	lenientMaps      bool
	difficultyPreset = config.DifficultyNormal
	logger           = log.Default()
)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetMap selects the map by built-in name, catalog name or file path.
// Empty means the configured default.
func SetMap(ref string) {
	mapRef = ref
}

// SelectedMap returns the map chosen with SetMap.
func SelectedMap() string {
	return mapRef
}

// SetLenient switches map parsing to lenient mode.
func SetLenient(lenient bool) {
	lenientMaps = lenient
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard").
// Unknown values keep the current preset.
func SetDifficultyPreset(preset string) {
	if p, err := config.ParseDifficulty(preset); err == nil {
		difficultyPreset = p
	}
}

// SetLogger sets the logger for status lines.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the logger used for status lines.
func Logger() *log.Logger {
	return logger
}

const hudHeight = 2

// Game adapts a Session to the arcade platform.
type Game struct {
	cfg     config.IsoCoinsConfig
	session *Session
	mapRef  string // overrides SetMap for this instance
	mapName string
	log     *log.Logger

	tick     uint64
	tickTime time.Duration
	paused   bool
	screenW  int
	screenH  int
}

// New creates a new coin game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("isocoins", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "isocoins"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Iso Coins"
}

// Reset loads the configuration and the selected map and starts a session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.log = logger
	g.tick = 0
	g.paused = false
	g.tickTime = cfg.TickDuration()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	gameCfg, err := config.LoadIsoCoins(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		gameCfg = config.DefaultIsoCoinsConfig()
	}
	config.ApplyIsoCoinsPreset(&gameCfg, difficultyPreset)
	g.cfg = gameCfg

	m, name := g.loadMap()
	g.session = NewSession(m, RulesFromConfig(g.cfg))
	g.mapName = name
	LogStart(g.log, g.mapName, g.session)
}

// UseMap selects the map for this game instance only, so concurrent
// sessions can play different maps. Empty falls back to SetMap.
func (g *Game) UseMap(ref string) {
	g.mapRef = ref
}

// selectedRef resolves the map reference for the next load.
func (g *Game) selectedRef() string {
	switch {
	case g.mapRef != "":
		return g.mapRef
	case mapRef != "":
		return mapRef
	default:
		return g.cfg.Maps.Default
	}
}

// AvailableMaps lists the built-in maps and those in the configured maps dir.
func AvailableMaps() []MapInfo {
	cfg, err := config.LoadIsoCoins(configPath)
	if err != nil {
		cfg = config.DefaultIsoCoinsConfig()
	}
	return Catalog(config.ExpandHome(cfg.Maps.Dir))
}

// loadMap loads the selected map, falling back to the built-in default.
func (g *Game) loadMap() (*tilemap.Map, string) {
	ref := g.selectedRef()
	m, name, err := LoadMap(ref, config.ExpandHome(g.cfg.Maps.Dir), g.parseOptions())
	if err == nil {
		return m, name
	}
	g.log.Warn("could not load map, using built-in", "map", ref, "error", err)
	m, name, err = LoadMap(DefaultMapName, "", tilemap.Options{Mode: tilemap.Lenient})
	if err != nil {
		// The built-in maps are part of the binary; this only fails on a broken build.
		panic(err)
	}
	return m, name
}

func (g *Game) parseOptions() tilemap.Options {
	if lenientMaps || g.cfg.Maps.Lenient {
		return tilemap.Options{Mode: tilemap.Lenient}
	}
	return tilemap.Options{Mode: tilemap.Strict}
}

// restart re-reads the map for a new session. If the map can no longer be
// read, the previous session's map is replayed instead.
func (g *Game) restart() {
	ref := g.selectedRef()
	m, name, err := LoadMap(ref, config.ExpandHome(g.cfg.Maps.Dir), g.parseOptions())
	if err != nil {
		g.log.Warn("could not reload map, replaying the previous one", "map", ref, "error", err)
		g.session.Restart()
	} else {
		g.session = NewSession(m, RulesFromConfig(g.cfg))
		g.mapName = name
	}
	LogStart(g.log, g.mapName, g.session)
}

// RulesFromConfig converts the YAML configuration to session rules.
func RulesFromConfig(cfg config.IsoCoinsConfig) Rules {
	return Rules{
		Kinds: TileKinds{
			Hazard: cfg.Rules.HazardTile,
			Wall:   cfg.Rules.WallTile,
			Spawn:  cfg.Rules.SpawnTile,
		},
		MoveCooldown: cfg.Rules.MoveCooldown,
		Coin:         animationFromConfig("coin", cfg.Animations.Coin),
		Player: AnimationSet{
			Idle: animationFromConfig("idle", cfg.Animations.PlayerIdle),
			Won:  animationFromConfig("won", cfg.Animations.PlayerWon),
			Lost: animationFromConfig("lost", cfg.Animations.PlayerLost),
		},
	}
}

func animationFromConfig(name string, a config.AnimationConfig) Animation {
	return Animation{
		Name:       name,
		FrameCount: a.Frames,
		Sheet:      a.Sheet,
		Glyphs:     a.Glyphs,
		Speed:      a.Speed,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.session.Outcome().Terminal() {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.session.Outcome().Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.session.Advance(g.tickTime)

	dRow, dCol := input.Direction()
	if dRow == 0 && dCol == 0 && input.Click != nil {
		dRow, dCol = g.clickDirection(*input.Click)
	}
	res := g.session.Move(dRow, dCol)
	LogMove(g.log, res, g.session)

	return core.StepResult{State: g.State()}
}

// clickDirection turns a click on a cell next to the player into a step.
func (g *Game) clickDirection(p core.Point) (dRow, dCol int) {
	proj := g.projector()
	i, j := proj.Cell(float64(p.X)+0.5, float64(p.Y-hudHeight)+0.5)
	pos := g.session.Player()
	dRow, dCol = i-pos.Row, j-pos.Col
	if dRow < -1 || dRow > 1 || dCol < -1 || dCol > 1 {
		return 0, 0
	}
	return dRow, dCol
}

// projector lays the grid out in the area below the HUD, shrinking the
// configured tile size when the map would not fit.
func (g *Game) projector() iso.Projector {
	grid := g.session.Grid()
	tw, th := float64(g.cfg.Terminal.TileWidth), float64(g.cfg.Terminal.TileHeight)
	viewW, viewH := float64(g.screenW), float64(g.screenH-hudHeight)
	span := float64(grid.Rows() + grid.Cols())
	for tw > 4 && (span*tw/2 > viewW || span*th/2 > viewH) {
		tw, th = tw/2, max(th/2, 2)
	}
	return iso.New(tw, th, viewW, viewH, grid.Rows(), grid.Cols())
}

// Resize adapts the projection to a new screen size.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW, g.screenH = screenW, screenH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	collected, _ := g.session.Coins()
	return core.GameState{
		Score:    collected,
		GameOver: g.session.Outcome().Terminal(),
		Paused:   g.paused,
	}
}

// RunSummary describes the finished session for run history.
func (g *Game) RunSummary() (core.RunSummary, bool) {
	if !g.session.Outcome().Terminal() {
		return core.RunSummary{}, false
	}
	collected, total := g.session.Coins()
	return core.RunSummary{
		Outcome:   g.session.Outcome().String(),
		Collected: collected,
		Total:     total,
		Elapsed:   g.session.Elapsed(),
		Variant:   g.mapName,
	}, true
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.IsoCoinsConfig {
	return g.cfg
}

// MapName returns the display name of the loaded map.
func (g *Game) MapName() string {
	return g.mapName
}
