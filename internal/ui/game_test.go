package ui

import (
	"io"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/driftwork/driftfield/internal/config"
	game_log "github.com/driftwork/driftfield/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelNone)

// testInput backs the injected input functions. Mouse and key presses are
// edge-style: tests set them before an Update and clear them after.
type testInput struct {
	x, y  int
	mouse bool
	keys  map[ebiten.Key]bool
}

func stubInput(t *testing.T) *testInput {
	t.Helper()
	in := &testInput{keys: map[ebiten.Key]bool{}}
	restore := SetInputForTest(
		func() (int, int) { return in.x, in.y },
		func(ebiten.MouseButton) bool { return in.mouse },
		func(k ebiten.Key) bool { return in.keys[k] },
	)
	t.Cleanup(restore)
	return in
}

func (in *testInput) reset() {
	in.mouse = false
	in.keys = map[ebiten.Key]bool{}
}

func newTestGame(t *testing.T) (*Game, *testInput) {
	t.Helper()
	in := stubInput(t)
	in.x, in.y = -1, -1 // pointer starts off-surface
	g := New(testLogger, config.Defaults(), 1)
	g.Layout(1024, 640)
	return g, in
}

func TestLayoutSeedsFieldImmediately(t *testing.T) {
	g, _ := newTestGame(t)
	if g.field.Len() != config.Defaults().Field.LargeCount {
		t.Fatalf("field has %d particles after first layout", g.field.Len())
	}
}

func TestResizeBurstReinitsExactlyOnce(t *testing.T) {
	advance := fakeClock(t)
	g, _ := newTestGame(t)

	for _, w := range []int{900, 700, 500} {
		g.Layout(w, 400)
		advance(100 * time.Millisecond)
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	// Still the original population: the burst never went quiet.
	if g.field.Len() != config.Defaults().Field.LargeCount {
		t.Fatalf("field rebuilt mid-burst: %d particles", g.field.Len())
	}

	advance(250 * time.Millisecond)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.field.Len() != config.Defaults().Field.SmallCount {
		t.Fatalf("field has %d particles after settling at width 500, want %d",
			g.field.Len(), config.Defaults().Field.SmallCount)
	}

	// No further reinit without another resize event.
	kept := g.field.Particles()[0]
	advance(time.Second)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.field.Particles()[0] != kept {
		t.Fatalf("field rebuilt again with no resize event")
	}
}

func TestPointerOutsideSurfaceIsAbsent(t *testing.T) {
	g, in := newTestGame(t)
	in.x, in.y = 300, 200
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.follower.TargetX != 300 || g.follower.TargetY != 200 {
		t.Fatalf("target = (%v,%v), want pointer", g.follower.TargetX, g.follower.TargetY)
	}

	// Leaving the surface must not drag the target to a stale corner.
	in.x, in.y = -4, 5000
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.follower.TargetX != 300 || g.follower.TargetY != 200 {
		t.Fatalf("absent pointer moved the target to (%v,%v)", g.follower.TargetX, g.follower.TargetY)
	}
}

func TestSpacePausesFieldButNotFollower(t *testing.T) {
	g, in := newTestGame(t)
	in.keys[ebiten.KeySpace] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	in.reset()
	if !g.Paused() {
		t.Fatalf("space did not pause")
	}

	p := g.field.Particles()[0]
	x, y, hue := p.X, p.Y, p.Hue
	in.x, in.y = 400, 300
	fx := g.follower.X
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.X != x || p.Y != y || p.Hue != hue {
		t.Fatalf("particle advanced while paused")
	}
	if g.follower.X == fx {
		t.Fatalf("follower froze while paused")
	}

	in.keys[ebiten.KeySpace] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	in.reset()
	if g.Paused() {
		t.Fatalf("second space did not resume")
	}
}

func TestTransportClicksToggleState(t *testing.T) {
	g, in := newTestGame(t)

	in.x, in.y = 12, 10 // inside the pause button
	in.mouse = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	in.reset()
	if !g.Paused() {
		t.Fatalf("pause button click ignored")
	}

	dark := g.theme.Dark
	in.x, in.y = 85, 10 // inside the theme button
	in.mouse = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	in.reset()
	if g.theme.Dark == dark {
		t.Fatalf("theme button click ignored")
	}
}

func TestHoverOverButtonsReachesFollower(t *testing.T) {
	g, in := newTestGame(t)

	in.x, in.y = 12, 10
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !g.follower.Hover {
		t.Fatalf("hover not set over a button")
	}

	in.x, in.y = 500, 400
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.follower.Hover {
		t.Fatalf("hover stuck after leaving the button")
	}
}

func TestDisabledFollowerIsNeverConstructed(t *testing.T) {
	in := stubInput(t)
	in.x, in.y = 100, 100
	cfg := config.Defaults()
	cfg.Follower.Enabled = false
	g := New(testLogger, cfg, 1)
	g.Layout(640, 480)
	if g.follower != nil {
		t.Fatalf("follower exists despite the gate")
	}
	if err := g.Update(); err != nil {
		t.Fatalf("Update without follower: %v", err)
	}
}

func TestDemoFramesTerminate(t *testing.T) {
	g, _ := newTestGame(t)
	g.SetDemoFrames(3)
	for i := 0; i < 2; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if err := g.Update(); err != ebiten.Termination {
		t.Fatalf("err = %v, want Termination on frame 3", err)
	}
}
