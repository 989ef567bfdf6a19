package field

import (
	"math"
	"math/rand"
)

// Tuning constants for the particle motion model. One Step call corresponds to
// one display tick, so all rates are per-frame.
const (
	RepelRadius = 100.0 // px within which the pointer pushes particles
	MaxForce    = 2.0   // velocity gain at zero distance
	Friction    = 0.97  // per-frame velocity decay
	MaxSpeed    = 1.5   // velocity magnitude ceiling
	HueStep     = 0.5   // per-frame hue advance, wraps at 360

	jitterThreshold = 0.05  // below this a velocity component gets nudged
	jitterAmp       = 0.025 // nudge drawn from [-jitterAmp, jitterAmp)
	bounceRetain    = 0.5   // energy kept after a wall hit

	MinRadius = 1.0
	MaxRadius = 2.5

	initSpeed = 0.1 // initial velocity components in [-initSpeed, initSpeed)
)

// Env is the per-frame world snapshot a particle reacts to. It is built by the
// caller each tick so the step rules never read ambient state.
type Env struct {
	Width, Height float64

	// Pointer position in surface coordinates. PointerPresent is false when
	// the pointer has left the surface; the zero position is then ignored
	// rather than treated as the origin.
	PointerX, PointerY float64
	PointerPresent     bool
}

// Particle is a single dot of the field. Position stays within
// [Radius, dimension-Radius] on both axes after every Step.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Hue    float64 // degrees, always in [0,360)
}

// Step advances the particle by one frame: hue cycle, pointer repulsion,
// friction, speed cap, idle jitter, integration and wall bounce, in that
// order. rng feeds the jitter only.
func (p *Particle) Step(env Env, rng *rand.Rand) {
	p.Hue += HueStep
	if p.Hue >= 360 {
		p.Hue -= 360
	}

	if env.PointerPresent {
		dx := p.X - env.PointerX
		dy := p.Y - env.PointerY
		dist := math.Hypot(dx, dy)
		if dist < RepelRadius {
			// Linear falloff: full push at contact, nothing at the rim.
			// dist == 0 gives atan2(0,0) == 0, a rightward push; harmless
			// and deterministic, so it is left as is.
			angle := math.Atan2(dy, dx)
			force := (RepelRadius - dist) / RepelRadius
			p.VX += math.Cos(angle) * force * MaxForce
			p.VY += math.Sin(angle) * force * MaxForce
		}
	}

	p.VX *= Friction
	p.VY *= Friction

	if speed := math.Hypot(p.VX, p.VY); speed > MaxSpeed {
		p.VX = p.VX / speed * MaxSpeed
		p.VY = p.VY / speed * MaxSpeed
	}

	// Keep near-resting particles drifting.
	if math.Abs(p.VX) < jitterThreshold {
		p.VX += (rng.Float64() - 0.5) * 2 * jitterAmp
	}
	if math.Abs(p.VY) < jitterThreshold {
		p.VY += (rng.Float64() - 0.5) * 2 * jitterAmp
	}

	p.X += p.VX
	p.Y += p.VY

	// Inelastic bounce: clamp to the wall and flip half the velocity.
	if p.X-p.Radius < 0 {
		p.X = p.Radius
		p.VX = -p.VX * bounceRetain
	} else if p.X+p.Radius > env.Width {
		p.X = env.Width - p.Radius
		p.VX = -p.VX * bounceRetain
	}
	if p.Y-p.Radius < 0 {
		p.Y = p.Radius
		p.VY = -p.VY * bounceRetain
	} else if p.Y+p.Radius > env.Height {
		p.Y = env.Height - p.Radius
		p.VY = -p.VY * bounceRetain
	}
}

// Speed returns the current velocity magnitude.
func (p *Particle) Speed() float64 { return math.Hypot(p.VX, p.VY) }
