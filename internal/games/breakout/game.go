package breakout

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	BrickChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
	LifeChar   = '♥'
)

// DefaultKeyStep is how far one Left/Right key press moves the pointer, in
// field pixels.
const DefaultKeyStep = 16.0

// Minimum terminal size the renderer can draw the field into.
const (
	minScreenW = 30
	minScreenH = 12
)

// logger receives gameplay transitions. Set via SetLogger from the CLI.
var logger = log.New(io.Discard)

// keyStep is the keyboard pointer step, set via SetKeyStep from the CLI.
var keyStep = DefaultKeyStep

// SetLogger sets the logger used by every game instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetKeyStep sets the keyboard pointer step in field pixels.
func SetKeyStep(step float64) {
	if step <= 0 {
		step = DefaultKeyStep
	}
	keyStep = step
}

// Game adapts State and Engine to the platform's registry.Game interface.
type Game struct {
	params Params
	state  *State
	engine *Engine

	runtime core.RuntimeConfig
	log     *log.Logger

	// pointerX is the last known pointer position in field pixels.
	pointerX float64
	paused   bool

	screenTooSmall bool
}

// New creates a game running the classic variant.
func New() *Game {
	return NewWithParams(Classic)
}

// NewDense creates a game running the 5x7 variant.
func NewDense() *Game {
	return NewWithParams(Dense)
}

// NewWithParams creates a game for an arbitrary variant. The game is ready
// to render on an 80x24 screen; hosts call Reset with their own config.
func NewWithParams(p Params) *Game {
	g := &Game{params: p}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.params.Name == Classic.Name {
		return "breakout"
	}
	return "breakout_" + g.params.Name
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.params.Title
}

// Reset starts a fresh game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.With("game", g.ID())

	clock := runtime.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}

	g.state = NewState(g.params)
	g.engine = NewEngine(clock)
	g.pointerX = g.state.Paddle.CenterX()
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Resize adopts a new screen size without restarting. Field coordinates
// don't depend on the screen, so only input mapping and rendering change.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// SetPointer sets the pointer directly in field pixels, for hosts whose
// input is already in play-field coordinates.
func (g *Game) SetPointer(x float64) {
	g.pointerX = x
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.log.Info("restart", "previous", g.state.Outcome.String(), "ticks", g.state.Tick)
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	livesBefore := g.state.Lives
	g.engine.Update(g.state, g.pointerX)
	g.logTransitions(livesBefore)

	return core.StepResult{State: g.State()}
}

// applyInput moves the pointer from mouse position or key nudges.
func (g *Game) applyInput(in core.InputFrame) {
	fieldW := float64(g.params.FieldW)

	if in.HasPointer && g.runtime.ScreenW > 0 {
		g.pointerX = (float64(in.PointerX) + 0.5) * fieldW / float64(g.runtime.ScreenW)
	}
	if in.Has(core.ActionLeft) {
		g.pointerX = core.ClampF(g.pointerX-keyStep, 0, fieldW)
	}
	if in.Has(core.ActionRight) {
		g.pointerX = core.ClampF(g.pointerX+keyStep, 0, fieldW)
	}
}

func (g *Game) logTransitions(livesBefore int) {
	s := g.state
	if s.Lives < livesBefore {
		g.log.Info("life lost", "lives", s.Lives, "tick", s.Tick, "bricks", s.ActiveBricks())
	}
	if !s.GameOver {
		return
	}
	switch s.Outcome {
	case OutcomeWin:
		g.log.Info("round won", "lives", s.Lives, "tick", s.Tick)
	case OutcomeLose:
		g.log.Info("round lost", "destroyed", s.BricksDestroyed(), "tick", s.Tick)
	}
}

// Session returns the live state for read-only use between ticks.
func (g *Game) Session() *State {
	return g.state
}

// State returns the platform-level summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.BricksDestroyed() * 10,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Render draws the current state into dst, scaling field pixels to cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := newViewport(g.params, dst.Width(), dst.Height())
	s := g.state

	for i, b := range s.Bricks {
		if !b.Active {
			continue
		}
		dst.FillRect(v.cells(b.Rect.Float()), BrickChar, core.RowColor(i/g.params.BrickCols))
	}

	dst.FillRect(v.cells(s.Paddle), PaddleChar, core.ColorWhite)

	ball := v.cells(s.Ball.Rect())
	dst.SetColored(ball.X, ball.Y, BallChar, core.ColorYellow)

	for i := range s.Lives {
		dst.SetColored(dst.Width()-2-2*i, 0, LifeChar, core.ColorRed)
	}

	g.renderOverlay(dst)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.state
	phase := s.Phase()
	switch {
	case phase == PhaseGameOver:
		progress := fmt.Sprintf("Bricks %d/%d  |  Press R to restart", s.BricksDestroyed(), len(s.Bricks))
		if s.Outcome == OutcomeWin {
			drawCenteredBox(dst, "YOU WIN!", progress)
		} else {
			drawCenteredBox(dst, "GAME OVER", progress)
		}
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case phase == PhaseDelaying:
		dst.DrawTextCentered(dst.Height()/2, "Get ready...")
	}
}

// drawCenteredBox draws a centered message box, shrunk to fit narrow screens.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Min(core.Max(len(title), len(subtitle))+4, dst.Width())
	boxH := core.Min(5, dst.Height())
	box := core.NewRect(
		core.Clamp((dst.Width()-boxW)/2, 0, dst.Width()-boxW),
		core.Clamp((dst.Height()-boxH)/2, 0, dst.Height()-boxH),
		boxW, boxH,
	)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+core.Max(0, (boxW-len(title))/2), box.Y+1, title)
	dst.DrawText(box.X+core.Max(0, (boxW-len(subtitle))/2), box.Y+3, subtitle)
}

// viewport maps field pixels onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(p Params, screenW, screenH int) viewport {
	return viewport{
		sx: float64(screenW) / float64(p.FieldW),
		sy: float64(screenH) / float64(p.FieldH),
	}
}

// cells converts a field rectangle to the covered cell rectangle. Anything
// visible occupies at least one cell.
func (v viewport) cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Floor(r.Right() * v.sx))
	y1 := int(math.Floor(r.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func init() {
	registry.Register(registry.GameInfo{
		ID:      "breakout",
		Title:   Classic.Title,
		Summary: "4x5 grid, three lives",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{
		ID:      "breakout_dense",
		Title:   Dense.Title,
		Summary: "5x7 grid, three lives",
	}, func() registry.Game {
		return NewDense()
	})
}
