// Package noise implements the stateless noise functions used by the terrain
// synthesizer: lattice value-noise fBm, cellular (Worley) distance noise and
// a ridged simplex detail field.
//
// A Field is built once from a seed and never mutated afterwards, so every
// query is a pure function of its arguments and that seed.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Octaves is the number of value-noise layers summed by FBM.
const Octaves = 6

// Field evaluates noise for a single seed.
type Field struct {
	seed    int64
	perm    [512]uint8
	simplex opensimplex.Noise
}

// New creates a noise field with a permutation table shuffled from seed.
func New(seed int64) *Field {
	f := &Field{
		seed:    seed,
		simplex: opensimplex.NewNormalized(seed),
	}

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	// Fisher-Yates shuffle with seed-derived LCG.
	s := uint64(seed)
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s >> 33) % uint64(i+1))
		p[i], p[j] = p[j], p[i]
	}

	// Double the table so hash lookups never wrap.
	for i := range f.perm {
		f.perm[i] = p[i&255]
	}
	return f
}

// hash returns the lattice value in [0,255] at integer coordinates.
func (f *Field) hash(ix, iy int) float64 {
	return float64(f.perm[int(f.perm[iy&255])+ix&255])
}

// value samples smoothstep-interpolated lattice noise. Range [0,255].
func (f *Field) value(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	ix, iy := int(fx), int(fy)
	tx, ty := x-fx, y-fy

	s := f.hash(ix, iy)
	t := f.hash(ix+1, iy)
	u := f.hash(ix, iy+1)
	v := f.hash(ix+1, iy+1)

	low := smooth(s, t, tx)
	high := smooth(u, v, tx)
	return smooth(low, high, ty)
}

// FBM sums Octaves layers of value noise. Each layer samples at lacunarity^i
// times the base frequency with amplitude 1/gain^i; the sum is normalised by
// 256 times the total amplitude, so the result lies in [0,1).
//
// The float64() conversions stop the compiler from fusing multiply-adds; the
// output must be bit-identical on every platform.
func (f *Field) FBM(x, y, freq, lacunarity, gain float64) float64 {
	if gain <= 0 || !finite(x) || !finite(y) {
		return 0
	}

	x, y = float64(x*freq), float64(y*freq)
	ampl := 1.0
	var sum, div float64
	for i := 0; i < Octaves; i++ {
		sum += float64(ampl * math.Abs(f.value(x, y)))
		div += float64(256 * ampl)
		x, y = float64(x*lacunarity), float64(y*lacunarity)
		ampl /= gain
	}
	if div == 0 {
		return 0
	}

	v := sum / div
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	return v
}

// Ridge returns ridged simplex noise in [0,1]: 1 along ridge lines, falling
// towards 0 between them.
func (f *Field) Ridge(x, y, freq float64) float64 {
	if !finite(x) || !finite(y) {
		return 0
	}
	n := f.simplex.Eval2(x*freq, y*freq)
	r := 1 - math.Abs(2*n-1)
	return clamp01(r * r)
}

func smooth(a, b, s float64) float64 {
	return lerp(a, b, float64(s*s)*(3-2*s))
}

func lerp(a, b, t float64) float64 {
	return a + float64(t*(b-a))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
