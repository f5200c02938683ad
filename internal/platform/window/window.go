// Package window runs Iso Coins in a pixel window: tiles come from a
// tileset strip and coins and the player from animated sprite sheets.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins/iso"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

// Window is an ebiten.Game driving one Iso Coins game.
type Window struct {
	game     *isocoins.Game
	cfg      config.IsoCoinsWindow
	store    *storage.Store
	log      *log.Logger
	tex      *textures
	keys     keyState
	tickRate int
	runSaved bool
	badTiles map[int]bool
}

// Options configure a Window.
type Options struct {
	// AssetsDir overrides the configured assets directory.
	AssetsDir string

	// TickRate is the number of updates per second.
	TickRate int

	// Store receives finished runs. Optional.
	Store *storage.Store

	// Logger receives status lines and asset warnings.
	Logger *log.Logger
}

// New starts a game and prepares the window around it.
// The map and config are taken from the isocoins package settings.
func New(opts Options) *Window {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	game := isocoins.New()
	game.Reset(core.RuntimeConfig{TickRate: opts.TickRate})
	cfg := game.Config().Window

	dir := opts.AssetsDir
	if dir == "" {
		dir = config.ExpandHome(cfg.AssetsDir)
	}

	return &Window{
		game:     game,
		cfg:      cfg,
		store:    opts.Store,
		log:      opts.Logger,
		tex:      newTextures(dir, opts.Logger),
		tickRate: opts.TickRate,
		badTiles: make(map[int]bool),
		keys: keyState{
			pressed:     ebiten.IsKeyPressed,
			justPressed: inpututil.IsKeyJustPressed,
		},
	}
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("Iso Coins - %s", w.game.MapName()))
	ebiten.SetTPS(w.tickRate)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update polls input and advances the game by one tick.
func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := w.keys.inputFrame()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dRow, dCol := clickStep(w.projector(), w.game.Session().Player(), float64(x), float64(y))
		setStep(&in, dRow, dCol)
	}

	state := w.game.Step(in).State
	if !state.GameOver {
		w.runSaved = false
	} else if !w.runSaved {
		w.saveRun()
		w.runSaved = true
	}
	return nil
}

func (w *Window) saveRun() {
	run, ok := w.game.RunSummary()
	if !ok || w.store == nil {
		return
	}
	if _, err := w.store.SaveRun(w.game.ID(), run); err != nil {
		w.log.Warn("could not save run", "error", err)
	}
}

// projector centers the map in the window using the configured tile size.
func (w *Window) projector() iso.Projector {
	grid := w.game.Session().Grid()
	return iso.New(float64(w.cfg.TileWidth), float64(w.cfg.TileHeight),
		float64(w.cfg.Width), float64(w.cfg.Height), grid.Rows(), grid.Cols())
}

// Draw renders tiles, coins, the player and the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	s := w.game.Session()
	grid := s.Grid()
	proj := w.projector()
	tw, th := proj.TileW, proj.TileH
	player := s.Player()

	tileset := w.tex.get(grid.Tileset(), w.cfg.TilesetTiles)
	coin := s.Rules().Coin
	coinSheet := w.tex.get(coin.Sheet, coin.FrameCount)

	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			p := proj.Project(i, j)
			tile := grid.At(i, j)

			if tileset != nil && w.tileDrawable(tile.Index) {
				var darken float32 = 1
				if i == player.Row && j == player.Col {
					darken = float32(w.cfg.Darken)
				}
				drawFrame(screen, tileset, tile.Index, tilePlacement(p, tw, th), darken)
			}
			if tile.HasCoin && coinSheet != nil {
				drawFrame(screen, coinSheet, s.CoinFrame(), coinPlacement(p, tw, th), 1)
			}
		}
	}

	anim := s.PlayerAnimation()
	if playerSheet := w.tex.get(anim.Sheet, anim.FrameCount); playerSheet != nil {
		p := proj.Project(player.Row, player.Col)
		drawFrame(screen, playerSheet, s.PlayerFrame(), playerPlacement(p, tw, th), 1)
	}

	w.drawHUD(screen, s)
}

// tileDrawable reports whether index has a band in the tileset. An index
// outside it is logged once and not drawn.
func (w *Window) tileDrawable(index int) bool {
	if tileInRange(index, w.cfg.TilesetTiles) {
		return true
	}
	if !w.badTiles[index] {
		w.badTiles[index] = true
		w.log.Warn("tile index outside the tileset, skipping", "index", index, "tiles", w.cfg.TilesetTiles)
	}
	return false
}

// drawFrame scales band i of sh into dst, multiplying its color by darken.
func drawFrame(screen *ebiten.Image, sh *sheet, i int, dst placement, darken float32) {
	src := sh.frame(i)
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.Scale(darken, darken, darken, 1)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(src, op)
}

func (w *Window) drawHUD(screen *ebiten.Image, s *isocoins.Session) {
	collected, total := s.Coins()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Map: %s  Coins: %d/%d  Time: %.1fs", w.game.MapName(), collected, total, s.Elapsed().Seconds()),
		8, 8)

	var msg string
	switch {
	case s.Outcome() == isocoins.OutcomeWon:
		msg = fmt.Sprintf("Congratulations, you won in %.1fs! Press R to restart", s.Elapsed().Seconds())
	case s.Outcome() == isocoins.OutcomeLost:
		msg = "Game over, you stepped on lava! Press R to restart"
	case w.game.State().Paused:
		msg = "Paused - press P to resume"
	}
	if msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, 8, w.cfg.Height-24)
	}
}

// Layout keeps the configured logical resolution.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}
