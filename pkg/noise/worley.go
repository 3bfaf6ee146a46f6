package noise

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Worley returns the squared distance from (x, y) to the nearest feature
// point of a unit lattice, clamped to [0,1]. Each lattice cell holds one
// feature whose offset is a hash of the cell coordinates and the seed, so no
// site list is stored and the domain is unbounded.
//
// Only the 4x4 block of cells that can contain the nearest feature is
// visited: the two columns (rows) on the side of the cell the point leans
// towards, plus the cell itself and its other neighbour.
func (f *Field) Worley(x, y float64) float64 {
	if !finite(x) || !finite(y) {
		return 1
	}

	fx, fy := math.Floor(x), math.Floor(y)
	ix, iy := int(fx), int(fy)

	x0 := ix - 1
	if x-fx < 0.5 {
		x0 = ix - 2
	}
	y0 := iy - 1
	if y-fy < 0.5 {
		y0 = iy - 2
	}

	best := math.Inf(1)
	for cy := y0; cy < y0+4; cy++ {
		for cx := x0; cx < x0+4; cx++ {
			jx, jy := f.jitter(cx, cy)
			dx := float64(cx) + jx - x
			dy := float64(cy) + jy - y
			if d := float64(dx*dx) + float64(dy*dy); d < best {
				best = d
			}
		}
	}
	return clamp01(best)
}

// jitter returns the feature offset in [0,1)² for lattice cell (cx, cy).
func (f *Field) jitter(cx, cy int) (float64, float64) {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(cx))
	binary.LittleEndian.PutUint64(buf[8:], uint64(cy))
	binary.LittleEndian.PutUint64(buf[16:], uint64(f.seed))
	h := xxhash.Sum64(buf[:])

	const scale = 1.0 / (1 << 24)
	jx := float64(h>>40) * scale
	jy := float64((h>>16)&0xFFFFFF) * scale
	return jx, jy
}
