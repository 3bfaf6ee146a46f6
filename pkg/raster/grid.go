// Package raster provides the single-channel byte rasters the terrain
// pipeline paints into, along with the drawing, flood-fill, region-pruning
// and blur operations over them.
//
// Every operation mutates a caller-owned Grid in place and keeps no state of
// its own. Coordinates outside the grid are ignored, never an error.
package raster

// Grid stores a 2D grid of byte samples in row-major order.
type Grid struct {
	W, H int
	Pix  []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions.
// Non-positive dimensions are raised to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, Pix: make([]uint8, w*h)}
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the sample at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.Pix[y*g.W+x]
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, Pix: make([]uint8, len(g.Pix))}
	copy(c.Pix, g.Pix)
	return c
}

// Fill sets every sample to v.
func (g *Grid) Fill(v uint8) {
	for i := range g.Pix {
		g.Pix[i] = v
	}
}

// Count returns the number of samples equal to v.
func (g *Grid) Count(v uint8) int {
	n := 0
	for _, p := range g.Pix {
		if p == v {
			n++
		}
	}
	return n
}

// MinMax returns the smallest and largest sample.
func (g *Grid) MinMax() (lo, hi uint8) {
	lo = 255
	for _, p := range g.Pix {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return lo, hi
}
