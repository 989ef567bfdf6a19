package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/driftwork/driftfield/core/field"
	"github.com/driftwork/driftfield/core/follow"
	"github.com/driftwork/driftfield/internal/config"
	game_log "github.com/driftwork/driftfield/internal/log"
)

// resizeDelay is how long the window size must hold still before the field
// is rebuilt. Rebuilding on every intermediate tick of a drag-resize would
// churn the whole population.
const resizeDelay = 250 * time.Millisecond

const (
	indicatorRadius      = 10.0
	indicatorHoverRadius = 16.0
)

// Game drives both per-frame subsystems: the particle field and the cursor
// follower. One Update call is one animation frame.
type Game struct {
	logger    *game_log.Logger
	field     *field.Field
	follower  *follow.Follower // nil when the follower is disabled
	theme     Theme
	transport *Transport
	resize    *debouncer

	winW, winH int
	paused     bool
	frame      int64
	demoFrames int64 // when >0, Update returns Termination after this many frames
}

func New(logger *game_log.Logger, cfg config.Config, seed int64) *Game {
	f := field.New(seed)
	f.SmallCount = cfg.Field.SmallCount
	f.LargeCount = cfg.Field.LargeCount
	f.Breakpoint = cfg.Field.Breakpoint

	g := &Game{
		logger:    logger,
		field:     f,
		theme:     Theme{Dark: cfg.Theme.Dark},
		transport: NewTransport(),
		resize:    newDebouncer(resizeDelay),
	}
	if cfg.Follower.Enabled {
		// Until the pointer first moves the indicator rests at the window
		// center rather than chasing the origin.
		g.follower = follow.New(float64(cfg.Window.Width)/2, float64(cfg.Window.Height)/2)
	}
	return g
}

// SetDemoFrames makes the game quit after n frames; used by the -demo flag
// as a headless smoke run.
func (g *Game) SetDemoFrames(n int64) { g.demoFrames = n }

// Paused reports whether the simulation loop is currently stopped. Pausing
// freezes the field; the follower keeps tracking the pointer.
func (g *Game) Paused() bool { return g.paused }

func (g *Game) Update() error {
	if isKeyJustPressed(ebiten.KeyEscape) || isKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if isKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if isKeyJustPressed(ebiten.KeyD) {
		g.theme.Toggle()
	}

	pauseClick, themeClick := g.transport.Update()
	if pauseClick {
		g.paused = !g.paused
	}
	if themeClick {
		g.theme.Toggle()
	}

	g.resize.Fire()

	// Cursor coordinates outside the client rect mean the pointer has left
	// the surface; the env then carries the absent sentinel instead of a
	// stale or zero position.
	mx, my := cursorPosition()
	env := field.Env{Width: float64(g.winW), Height: float64(g.winH)}
	if mx >= 0 && my >= 0 && mx < g.winW && my < g.winH {
		env.PointerPresent = true
		env.PointerX = float64(mx)
		env.PointerY = float64(my)
	}

	if g.follower != nil {
		if env.PointerPresent {
			g.follower.SetTarget(env.PointerX, env.PointerY)
		}
		g.follower.Hover = g.transport.Hovered()
		g.follower.Step()
	}

	if !g.paused {
		g.field.Step(env)
	}

	g.frame++
	if g.demoFrames > 0 && g.frame >= g.demoFrames {
		g.logger.Infof("demo run finished after %d frames", g.frame)
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	screen.Fill(g.theme.Background())

	for _, p := range g.field.Particles() {
		drawFilledCircle(screen, p.X, p.Y, p.Radius, g.theme.ParticleColor(p.Hue))
	}

	if g.follower != nil {
		r := indicatorRadius
		if g.follower.Hover {
			r = indicatorHoverRadius
		}
		strokeCircle(screen, g.follower.X, g.follower.Y, r, 2, g.theme.IndicatorColor())
	}

	g.transport.Draw(screen, g.paused, g.theme.Dark)

	mode := "light"
	if g.theme.Dark {
		mode = "dark"
	}
	status := fmt.Sprintf("fps %.0f  particles %d  %s", ebiten.ActualFPS(), g.field.Len(), mode)
	ebitenutil.DebugPrintAt(screen, status, 10, g.winH-18)
}

// Layout tracks the window size. The first size seeds the field immediately;
// every later change re-arms the debounced rebuild so a drag-resize settles
// into exactly one reinit.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.winW || outsideHeight != g.winH {
		first := g.winW == 0 && g.winH == 0
		g.winW, g.winH = outsideWidth, outsideHeight
		if first {
			g.field.Init(float64(g.winW), float64(g.winH))
			g.logger.Infof("field initialized %dx%d with %d particles", g.winW, g.winH, g.field.Len())
		} else {
			g.resize.Schedule(g.reinit)
		}
	}
	return outsideWidth, outsideHeight
}

func (g *Game) reinit() {
	g.field.Init(float64(g.winW), float64(g.winH))
	g.logger.Debugf("field rebuilt %dx%d with %d particles", g.winW, g.winH, g.field.Len())
}
