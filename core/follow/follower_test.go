package follow

import (
	"math"
	"testing"
)

func TestStepMatchesClosedForm(t *testing.T) {
	f := New(0, 0)
	f.SetTarget(200, -80)
	for k := 1; k <= 50; k++ {
		f.Step()
		decay := math.Pow(1-Alpha, float64(k))
		wantX := 200 - 200*decay
		wantY := -80 + 80*decay
		if math.Abs(f.X-wantX) > 1e-9 || math.Abs(f.Y-wantY) > 1e-9 {
			t.Fatalf("step %d: pos (%v,%v), want (%v,%v)", k, f.X, f.Y, wantX, wantY)
		}
	}
}

func TestStepConvergesWithoutOvershoot(t *testing.T) {
	f := New(512, 256)
	f.SetTarget(100, 700)
	prevGap := math.Hypot(f.TargetX-f.X, f.TargetY-f.Y)
	for k := 0; k < 500; k++ {
		f.Step()
		gap := math.Hypot(f.TargetX-f.X, f.TargetY-f.Y)
		if gap > prevGap {
			t.Fatalf("step %d: gap grew from %v to %v", k, prevGap, gap)
		}
		prevGap = gap
	}
	if prevGap > 1e-6 {
		t.Fatalf("gap %v after 500 steps, want < 1e-6", prevGap)
	}
}

func TestNewStartsAtTarget(t *testing.T) {
	f := New(320, 240)
	f.Step()
	if f.X != 320 || f.Y != 240 {
		t.Fatalf("follower drifted to (%v,%v) with no pointer input", f.X, f.Y)
	}
}
