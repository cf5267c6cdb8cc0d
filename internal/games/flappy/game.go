package flappy

import (
	"fmt"
	"time"

	"github.com/yeo-develop/crappybird/internal/config"
	"github.com/yeo-develop/crappybird/internal/core"
)

// Visual characters for rendering
const (
	BirdChar    = '●'
	BirdBeak    = '▶'
	PipeChar    = '█'
	PipeCapTop  = '▀'
	PipeCapBot  = '▄'
	HUDFillChar = ' '
)

// Game owns one play session: the current run, its RNG stream, pause state
// and the mapping from world units to screen cells. Hosts call Step once per
// frame and Render whenever they draw.
type Game struct {
	params  Params
	display config.DisplayConfig
	config  core.RuntimeConfig

	state     State
	rng       *core.RNG
	paused    bool
	now       time.Duration // Frame time of the latest Step
	pausedFor time.Duration // Time spent paused in the current run
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.FlappyConfig) *Game {
	return &Game{
		params:  ParamsFromConfig(cfg),
		display: cfg.Display,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crappy Bird"
}

// Reset starts a new session with a freshly seeded RNG.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.rng = core.NewRNG(cfg.Seed)
	g.restart()
}

// Resize updates the screen dimensions without interrupting the run.
func (g *Game) Resize(screenW, screenH int) {
	g.config.ScreenW = screenW
	g.config.ScreenH = screenH
}

func (g *Game) restart() {
	g.pausedFor = 0
	g.paused = false
	g.state = NewState(g.clock())
}

// clock returns the run's frame time. Paused time is left out so the spawn
// interval only counts simulated frames.
func (g *Game) clock() time.Duration {
	return g.now - g.pausedFor
}

// Step advances the game by one frame at monotonic time now.
//
// Flap flaps while the run is live and starts a new run once it is over.
// Restart starts a new run at any time. Paused frames do not simulate and
// their time does not count toward the next spawn.
func (g *Game) Step(now time.Duration, in core.InputFrame) core.StepResult {
	elapsed := now - g.now
	g.now = now

	if in.Has(core.ActionRestart) || (g.state.GameOver && in.Has(core.ActionFlap)) {
		g.restart()
		return core.StepResult{State: g.State(), Restarted: true}
	}

	if g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pausedFor += elapsed
		return core.StepResult{State: g.State()}
	}

	g.state = g.params.Step(g.state, g.clock(), g.WorldHeight(), in.Has(core.ActionFlap), g.rng)
	return core.StepResult{State: g.State()}
}

// WorldHeight returns the playfield height in world units.
func (g *Game) WorldHeight() float64 {
	rows := core.Max(g.config.ScreenH-g.display.HUDRows, 0)
	return float64(rows) * g.display.CellHeight
}

// Params returns the simulation parameters in use.
func (g *Game) Params() Params {
	return g.params
}

// Snapshot returns drawable geometry for the current run.
func (g *Game) Snapshot() Snapshot {
	return g.params.Snapshot(g.state, g.WorldHeight())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	for _, p := range snap.Pipes {
		g.drawPipe(dst, p)
	}
	g.drawBird(dst, snap.Bird)
	g.drawHUD(dst, snap.Score)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", core.ColorCyan, "Press P to resume")
	}
	if snap.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", core.ColorBrightRed,
			snap.EndReason.Message(),
			fmt.Sprintf("Score: %d  |  Tap to restart", snap.Score))
	}
}

// cells converts a world rectangle to screen cells below the HUD.
func (g *Game) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0, x1, y1 = r.Cells(g.display.CellWidth, g.display.CellHeight)
	off := g.display.HUDRows
	return x0, y0 + off, x1, y1 + off
}

// drawPipe renders a single pipe pair with caps facing the gap.
func (g *Game) drawPipe(dst *core.Screen, p PipeSnapshot) {
	if !p.Top.Empty() {
		x0, y0, x1, y1 := g.cells(p.Top)
		dst.FillCells(x0, y0, x1, y1, PipeChar, core.ColorGreen)
		dst.FillCells(x0, y1-1, x1, y1, PipeCapTop, core.ColorBrightGreen)
	}
	if !p.Bottom.Empty() {
		x0, y0, x1, y1 := g.cells(p.Bottom)
		dst.FillCells(x0, y0, x1, y1, PipeChar, core.ColorGreen)
		dst.FillCells(x0, y0, x1, y0+1, PipeCapBot, core.ColorBrightGreen)
	}
}

// drawBird renders the bird with its beak on the top-right cell.
func (g *Game) drawBird(dst *core.Screen, bird core.Rect) {
	x0, y0, x1, y1 := g.cells(bird)
	dst.FillCells(x0, y0, x1, y1, BirdChar, core.ColorBrightYellow)
	dst.SetColored(x1-1, y0, BirdBeak, core.ColorYellow)
}

// drawHUD renders the score line above the playfield.
func (g *Game) drawHUD(dst *core.Screen, score int) {
	if g.display.HUDRows == 0 {
		return
	}
	dst.FillCells(0, 0, dst.Width(), g.display.HUDRows, HUDFillChar, core.ColorDefault)
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", score), core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen: the
// title, a blank row, then one row per non-empty line.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, titleColor core.Color, lines ...string) {
	body := make([]string, 0, len(lines))
	boxW := len([]rune(title))
	for _, l := range lines {
		if l == "" {
			continue
		}
		body = append(body, l)
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 4 + len(body)
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, titleColor)
	for i, l := range body {
		dst.DrawTextColored(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l, core.ColorGray)
	}
}
