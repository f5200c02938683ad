// Package colorwipe implements a color matching puzzle: pick a cell and
// every remaining cell of a similar color is wiped off the board.
package colorwipe

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	logger           = log.Default()
)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard").
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

// Game implements the Color Wipe puzzle.
type Game struct {
	cfg   config.ColorWipeConfig
	rng   *rand.Rand
	board *Board
	log   *log.Logger

	points    int
	attempts  int
	lastWiped int
	gameOver  bool
	cursorRow int
	cursorCol int

	tick     uint64
	tickTime time.Duration
	elapsed  time.Duration
	screenW  int
	screenH  int
}

// New creates a new Color Wipe game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("colorwipe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "colorwipe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Wipe"
}

// Reset deals a new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.log = logger

	gameCfg, err := config.LoadColorWipe(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		gameCfg = config.DefaultColorWipeConfig()
	}
	config.ApplyColorWipePreset(&gameCfg, difficultyPreset)
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickTime = cfg.TickDuration()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.deal()
}

func (g *Game) deal() {
	g.board = NewBoard(g.cfg.Grid.Rows, g.cfg.Grid.Cols, g.rng, g.cfg.Grid.Palette)
	g.points = g.cfg.Scoring.StartPoints
	g.attempts = 0
	g.lastWiped = 0
	g.gameOver = false
	g.cursorRow = g.board.Rows() / 2
	g.cursorCol = g.board.Cols() / 2
	g.tick = 0
	g.elapsed = 0
	g.log.Info("pick a cell to wipe its color, press R to restart")
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Restart works at any time.
	if input.Has(core.ActionRestart) {
		g.deal()
		return core.StepResult{State: g.State()}
	}
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.elapsed += g.tickTime

	dRow, dCol := input.Direction()
	g.cursorRow = core.Clamp(g.cursorRow+dRow, 0, g.board.Rows()-1)
	g.cursorCol = core.Clamp(g.cursorCol+dCol, 0, g.board.Cols()-1)

	switch {
	case input.Click != nil:
		row, col := g.layout().cellAt(input.Click.X, input.Click.Y)
		if g.Pick(row, col) {
			g.cursorRow, g.cursorCol = row, col
		}
	case input.Has(core.ActionConfirm):
		g.Pick(g.cursorRow, g.cursorCol)
	}

	return core.StepResult{State: g.State()}
}

// Pick selects the color of a remaining cell and wipes every similar cell.
// Picks on wiped or off-board cells, or after the game is over, are ignored.
func (g *Game) Pick(row, col int) bool {
	if g.gameOver || !g.board.InBounds(row, col) || g.board.At(row, col).Wiped {
		return false
	}
	g.WipeColor(g.board.At(row, col).Color)
	return true
}

// WipeColor wipes every remaining cell within the threshold of c and scores
// the attempt: points per wiped cell, or a penalty when nothing matched.
func (g *Game) WipeColor(c RGB) int {
	if g.gameOver {
		return 0
	}
	n := g.board.Wipe(c, g.cfg.Grid.Threshold)
	if n > 0 {
		g.points += n * g.cfg.Scoring.PerCell
	} else {
		g.points -= g.cfg.Scoring.MissPenalty
	}
	g.attempts++
	g.lastWiped = n
	g.log.Info("pick", "wiped", n, "points", g.points, "attempts", g.attempts)

	if g.board.Remaining() == 0 {
		g.gameOver = true
		g.log.Info("game over", "points", g.points, "attempts", g.attempts)
		g.log.Info("press R to restart")
	}
	return n
}

func (g *Game) layout() layout {
	return newLayout(g.screenW, g.screenH, g.board.Rows(), g.board.Cols())
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Color Wipe | Points: %d | Attempts: %d | Left: %d",
		g.points, g.attempts, g.board.Remaining())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	l := g.layout()
	for row := 0; row < g.board.Rows(); row++ {
		for col := 0; col < g.board.Cols(); col++ {
			cell := g.board.At(row, col)
			if cell.Wiped {
				continue
			}
			r := l.rect(row, col)
			glyph := '█'
			if row == g.cursorRow && col == g.cursorCol && !g.gameOver {
				glyph = '▓'
			}
			for y := r.Y; y < r.Bottom(); y++ {
				for x := r.X; x < r.Right(); x++ {
					dst.SetRGB(x, y, glyph, cell.Color.Terminal())
				}
			}
		}
	}

	// An empty cursor cell still shows where Enter would pick.
	if !g.gameOver && g.board.At(g.cursorRow, g.cursorCol).Wiped {
		r := l.rect(g.cursorRow, g.cursorCol)
		dst.SetWithColor(r.X+r.W/2, r.Y+r.H/2, '+', core.ColorGray)
	}

	if g.gameOver {
		dst.DrawOverlay("Game over!",
			fmt.Sprintf("Final score: %d, attempts: %d", g.points, g.attempts),
			"Press R to restart")
	}
}

// Resize keeps the board and moves it to fit the new screen.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW, g.screenH = screenW, screenH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.points,
		GameOver: g.gameOver,
	}
}

// RunSummary describes a cleared board for run history.
func (g *Game) RunSummary() (core.RunSummary, bool) {
	if !g.gameOver {
		return core.RunSummary{}, false
	}
	total := g.board.Rows() * g.board.Cols()
	return core.RunSummary{
		Outcome:   "won",
		Collected: total,
		Total:     total,
		Elapsed:   g.elapsed,
		Variant:   fmt.Sprintf("%dx%d", g.board.Rows(), g.board.Cols()),
	}, true
}

// Board returns the current board.
func (g *Game) Board() *Board {
	return g.board
}
