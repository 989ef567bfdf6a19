package field

import "math/rand"

// Population policy: small viewports get fewer particles.
const (
	DefaultSmallCount = 40
	DefaultLargeCount = 80
	DefaultBreakpoint = 768 // px; widths below this count as small
)

// Field owns the particle collection. Init replaces the whole population, so
// a Field is cheap to rebuild on every surface resize.
type Field struct {
	SmallCount int
	LargeCount int
	Breakpoint float64

	particles []*Particle
	rng       *rand.Rand
}

// New returns an empty field with the default population policy. The seed
// fixes the jitter and initial placement so runs can be reproduced.
func New(seed int64) *Field {
	return &Field{
		SmallCount: DefaultSmallCount,
		LargeCount: DefaultLargeCount,
		Breakpoint: DefaultBreakpoint,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Init discards any existing particles and populates the field for the given
// surface size. Positions are sampled inside [r, dim-r) so the wall invariant
// holds from the first frame.
func (f *Field) Init(width, height float64) {
	n := f.LargeCount
	if width < f.Breakpoint {
		n = f.SmallCount
	}

	f.particles = make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		r := MinRadius + f.rng.Float64()*(MaxRadius-MinRadius)
		f.particles = append(f.particles, &Particle{
			X:      r + f.rng.Float64()*(width-2*r),
			Y:      r + f.rng.Float64()*(height-2*r),
			VX:     (f.rng.Float64() - 0.5) * 2 * initSpeed,
			VY:     (f.rng.Float64() - 0.5) * 2 * initSpeed,
			Radius: r,
			Hue:    f.rng.Float64() * 360,
		})
	}
}

// Step advances every particle one frame. Particles are independent, so
// collection order carries no meaning.
func (f *Field) Step(env Env) {
	for _, p := range f.particles {
		p.Step(env, f.rng)
	}
}

// Particles exposes the live collection for rendering. Callers must not
// retain the slice across an Init.
func (f *Field) Particles() []*Particle { return f.particles }

// Len returns the current population size.
func (f *Field) Len() int { return len(f.particles) }
