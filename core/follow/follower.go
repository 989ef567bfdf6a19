// Package follow models the smoothed cursor indicator: a discrete low-pass
// filter that trails the raw pointer without ever overshooting it.
package follow

// Alpha is the smoothing coefficient. Smaller values trail further behind.
const Alpha = 0.1

// Follower holds the raw target (the pointer) and the rendered position.
type Follower struct {
	TargetX, TargetY float64
	X, Y             float64

	// Hover marks the raw pointer being over an interactive element. It is
	// a plain enter/leave toggle, not part of the smoothing.
	Hover bool
}

// New places both target and position at the given point, normally the
// surface center, so the indicator does not sweep in from the origin on the
// first pointer move.
func New(x, y float64) *Follower {
	return &Follower{TargetX: x, TargetY: y, X: x, Y: y}
}

// SetTarget records the raw pointer position. Called on every pointer move,
// no filtering here.
func (f *Follower) SetTarget(x, y float64) {
	f.TargetX = x
	f.TargetY = y
}

// Step moves the rendered position a fixed fraction of the remaining gap per
// axis: pos += (target-pos) * Alpha. The position converges exponentially and
// never crosses the target.
func (f *Follower) Step() {
	f.X += (f.TargetX - f.X) * Alpha
	f.Y += (f.TargetY - f.Y) * Alpha
}
