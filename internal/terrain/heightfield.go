package terrain

import (
	"math"

	"github.com/Faultbox/terragen/pkg/raster"
)

// TextureUploader is the renderer-side consumer of a finished heightfield,
// typically a GPU texture sampled by a displacement stage.
type TextureUploader interface {
	UploadHeightmap(width, height int, pix []byte) error
}

// HeightField is the read-only elevation raster produced by Generate.
// Samples are 8-bit, row-major, 0 at sea level.
type HeightField struct {
	w, h int
	pix  []uint8
}

func newHeightField(g *raster.Grid) *HeightField {
	pix := make([]uint8, len(g.Pix))
	copy(pix, g.Pix)
	return &HeightField{w: g.W, h: g.H, pix: pix}
}

// Width returns the number of samples per row.
func (hf *HeightField) Width() int { return hf.w }

// Height returns the number of rows.
func (hf *HeightField) Height() int { return hf.h }

// At returns the sample at (x, y). Coordinates are clamped to the edges.
func (hf *HeightField) At(x, y int) uint8 {
	x = clampInt(x, 0, hf.w-1)
	y = clampInt(y, 0, hf.h-1)
	return hf.pix[y*hf.w+x]
}

// Sample returns the bilinearly interpolated elevation at normalized map
// coordinates (u, v) in [0,1]. Out-of-range coordinates are clamped.
func (hf *HeightField) Sample(u, v float64) float64 {
	fx := clampf(u, 0, 1) * float64(hf.w-1)
	fy := clampf(v, 0, 1) * float64(hf.h-1)

	x0, y0 := int(fx), int(fy)
	x1, y1 := min(x0+1, hf.w-1), min(y0+1, hf.h-1)
	tx, ty := fx-float64(x0), fy-float64(y0)

	// Top edge: lerp between NW and NE
	top := float64(hf.At(x0, y0))*(1-tx) + float64(hf.At(x1, y0))*tx
	// Bottom edge: lerp between SW and SE
	bottom := float64(hf.At(x0, y1))*(1-tx) + float64(hf.At(x1, y1))*tx
	return top*(1-ty) + bottom*ty
}

// Bytes returns a copy of the samples.
func (hf *HeightField) Bytes() []byte {
	out := make([]byte, len(hf.pix))
	copy(out, hf.pix)
	return out
}

// Grid returns a mutable copy of the samples as a raster grid.
func (hf *HeightField) Grid() *raster.Grid {
	return &raster.Grid{W: hf.w, H: hf.h, Pix: hf.Bytes()}
}

// Upload hands a copy of the samples to u.
func (hf *HeightField) Upload(u TextureUploader) error {
	return u.UploadHeightmap(hf.w, hf.h, hf.Bytes())
}

func clampf(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
