//go:build ebiten

// Package gui runs the game in a desktop window. World units map one to one
// onto window pixels.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yeo-develop/crappybird/internal/config"
	"github.com/yeo-develop/crappybird/internal/core"
	"github.com/yeo-develop/crappybird/internal/games/flappy"
)

// Window size in world units.
const (
	Width  = 800
	Height = 600
)

var (
	skyColor  = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor = color.RGBA{R: 83, G: 160, B: 52, A: 255}
	capColor  = color.RGBA{R: 120, G: 200, B: 80, A: 255}
	birdColor = color.RGBA{R: 245, G: 205, B: 48, A: 255}
	beakColor = color.RGBA{R: 230, G: 110, B: 40, A: 255}
	dimColor  = color.RGBA{A: 140}
)

// Game adapts flappy.Game to the ebiten.Game interface.
type Game struct {
	game  *flappy.Game
	input core.InputFrame
	tps   int
	ticks int64
	seed  int64
}

// New constructs a window game. The display mapping of cfg is replaced so
// that one cell is one pixel and the HUD is drawn over the playfield.
func New(cfg config.FlappyConfig, tps int, seed int64) *Game {
	cfg.Display = config.DisplayConfig{CellWidth: 1, CellHeight: 1, HUDRows: 0}
	if tps <= 0 {
		tps = 60
	}

	g := &Game{
		game:  flappy.New(cfg),
		input: core.NewInputFrame(),
		tps:   tps,
		seed:  seed,
	}
	g.game.Reset(core.RuntimeConfig{ScreenW: Width, ScreenH: Height, TickRate: tps, Seed: seed})
	return g
}

// now returns the frame time of the current tick. Ebiten calls Update at a
// fixed rate, so counting ticks keeps runs reproducible.
func (g *Game) now() time.Duration {
	return time.Duration(g.ticks) * time.Second / time.Duration(g.tps)
}

// Update handles per-frame input and advances the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.input.Clear()
	if tapped() {
		g.input.Set(core.ActionFlap)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.input.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.input.Set(core.ActionRestart)
	}

	g.game.Step(g.now(), g.input)
	g.ticks++
	return nil
}

// tapped reports a flap from keyboard, mouse or touch.
func tapped() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Draw renders the current run.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	snap := g.game.Snapshot()

	for _, p := range snap.Pipes {
		fillRect(screen, p.Top, pipeColor)
		fillRect(screen, p.Bottom, pipeColor)
		if !p.Top.Empty() {
			fillRect(screen, core.NewRect(p.Top.X-4, p.Top.Bottom()-20, p.Top.W+8, 20), capColor)
		}
		if !p.Bottom.Empty() {
			fillRect(screen, core.NewRect(p.Bottom.X-4, p.Bottom.Y, p.Bottom.W+8, 20), capColor)
		}
	}

	fillRect(screen, snap.Bird, birdColor)
	beak := core.NewRect(snap.Bird.Right(), snap.Bird.Y+snap.Bird.H/3, snap.Bird.W/4, snap.Bird.H/3)
	fillRect(screen, beak, beakColor)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 12, 10)

	state := g.game.State()
	switch {
	case snap.GameOver:
		g.drawBanner(screen, "GAME OVER", snap.EndReason.Message(), fmt.Sprintf("Score: %d  |  Tap to restart", snap.Score))
	case state.Paused:
		g.drawBanner(screen, "PAUSED", "Press P to resume")
	}
}

// drawBanner draws a dimmed band with the title and one row per line.
func (g *Game) drawBanner(screen *ebiten.Image, title string, lines ...string) {
	vector.DrawFilledRect(screen, 0, Height/2-40, Width, 80, dimColor, false)
	ebitenutil.DebugPrintAt(screen, title, Width/2-len(title)*3, Height/2-28)
	y := Height/2 - 4
	for _, l := range lines {
		if l == "" {
			continue
		}
		ebitenutil.DebugPrintAt(screen, l, Width/2-len(l)*3, y)
		y += 18
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Width, Height
}

// Run opens a window and blocks until it is closed.
func Run(cfg config.FlappyConfig, tps int, seed int64, scale float64) error {
	scale = core.ClampF(scale, 0.25, 4)
	g := New(cfg, tps, seed)

	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetTPS(g.tps)
	ebiten.SetWindowSize(int(Width*scale), int(Height*scale))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
