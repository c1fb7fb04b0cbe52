package terrain

import (
	"errors"
	"fmt"
)

// MinSamples is the smallest number of usable samples a profile needs so that
// each half of the playfield offers at least two vehicle positions.
const MinSamples = 4

var (
	// ErrInsufficientTerrain is returned when a profile cannot host two vehicles.
	ErrInsufficientTerrain = errors.New("terrain has too few usable points")
	// ErrInvalidGeometry is returned for dimensions no profile can be built from.
	ErrInvalidGeometry = errors.New("invalid terrain geometry")
)

// Source supplies random integers in [0, n). It is satisfied by *rand.Rand.
type Source interface {
	Intn(n int) int
}

// Point is a terrain vertex in screen coordinates (y grows downward).
type Point struct {
	X, Y float64
}

// Profile is a jagged ground line across the playfield, closed at the bottom
// so it can be filled as a polygon.
type Profile struct {
	Width   float64
	Height  float64
	samples []Point
}

// SampleCount returns how many samples Generate produces for the given width and spacing.
func SampleCount(width, spacing int) int {
	if width <= 0 || spacing <= 0 {
		return 0
	}
	return (width + spacing - 1) / spacing
}

// Generate samples one height per spacing step, uniformly in [border, height-border].
func Generate(rng Source, width, height, border, spacing int) (*Profile, error) {
	if width <= 0 || height <= 0 || spacing <= 0 {
		return nil, fmt.Errorf("%w: %dx%d spacing %d", ErrInvalidGeometry, width, height, spacing)
	}
	low, high := border, height-border
	if border < 0 || low > high {
		return nil, fmt.Errorf("%w: border %d for height %d", ErrInvalidGeometry, border, height)
	}

	samples := make([]Point, 0, SampleCount(width, spacing))
	for x := 0; x < width; x += spacing {
		y := low + rng.Intn(high-low+1)
		samples = append(samples, Point{X: float64(x), Y: float64(y)})
	}

	return &Profile{
		Width:   float64(width),
		Height:  float64(height),
		samples: samples,
	}, nil
}

// NewProfile builds a profile from explicit samples, mostly for tests and replays.
// Samples must be strictly increasing in x.
func NewProfile(width, height float64, samples []Point) (*Profile, error) {
	for i := 1; i < len(samples); i++ {
		if samples[i].X <= samples[i-1].X {
			return nil, fmt.Errorf("%w: sample %d not right of sample %d", ErrInvalidGeometry, i, i-1)
		}
	}
	out := make([]Point, len(samples))
	copy(out, samples)
	return &Profile{Width: width, Height: height, samples: out}, nil
}

// Samples returns the interior sample points, without the synthetic closing points.
func (p *Profile) Samples() []Point {
	out := make([]Point, len(p.samples))
	copy(out, p.samples)
	return out
}

// Polygon returns the closed outline: samples, bottom-right, bottom-left and
// the first sample again.
func (p *Profile) Polygon() []Point {
	if len(p.samples) == 0 {
		return nil
	}
	out := make([]Point, 0, len(p.samples)+3)
	out = append(out, p.samples...)
	out = append(out,
		Point{X: p.Width, Y: p.Height},
		Point{X: 0, Y: p.Height},
		p.samples[0],
	)
	return out
}

// HeightAt returns the ground y at x, linearly interpolated between the two
// bracketing samples. Past the last sample the ground slopes down to the
// bottom-right corner, as the filled polygon does. Outside the playfield it
// returns Height.
func (p *Profile) HeightAt(x float64) float64 {
	n := len(p.samples)
	if n == 0 || x < 0 || x > p.Width {
		return p.Height
	}
	if x <= p.samples[0].X {
		return p.samples[0].Y
	}
	for i := 1; i < n; i++ {
		if x <= p.samples[i].X {
			return lerp(p.samples[i-1], p.samples[i], x)
		}
	}
	last := p.samples[n-1]
	if x == last.X || p.Width == last.X {
		return last.Y
	}
	return lerp(last, Point{X: p.Width, Y: p.Height}, x)
}

func lerp(a, b Point, x float64) float64 {
	t := (x - a.X) / (b.X - a.X)
	return a.Y + (b.Y-a.Y)*t
}
