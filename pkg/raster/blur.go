package raster

import "math"

// blurPasses is the number of box passes approximating one Gaussian.
const blurPasses = 3

// Blur approximates a Gaussian blur of standard deviation sigma with three
// separable box passes over the whole grid, clamping at the edges. Box sizes
// are a pure function of sigma. A non-positive sigma is a no-op.
func (g *Grid) Blur(sigma float64) {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return
	}
	tmp := make([]uint8, len(g.Pix))
	for _, size := range BoxSizes(sigma, blurPasses) {
		r := (size - 1) / 2
		if r <= 0 {
			continue
		}
		g.boxHorizontal(tmp, r)
		g.boxVertical(tmp, r)
	}
}

// BoxSizes returns n odd box widths whose successive application
// approximates a Gaussian of standard deviation sigma.
// See http://blog.ivank.net/fastest-gaussian-blur.html
func BoxSizes(sigma float64, n int) []int {
	wIdeal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	mIdeal := (12*sigma*sigma - float64(n*wl*wl) - float64(4*n*wl) - float64(3*n)) / float64(-4*wl-4)
	m := int(math.Round(mIdeal))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// boxHorizontal runs a sliding-window mean of radius r along each row.
func (g *Grid) boxHorizontal(tmp []uint8, r int) {
	n := 2*r + 1
	for y := 0; y < g.H; y++ {
		row := g.Pix[y*g.W : (y+1)*g.W]
		out := tmp[y*g.W : (y+1)*g.W]

		sum := 0
		for k := -r; k <= r; k++ {
			sum += int(row[clampIndex(k, g.W)])
		}
		for x := 0; x < g.W; x++ {
			out[x] = uint8((sum + n/2) / n)
			sum += int(row[clampIndex(x+r+1, g.W)]) - int(row[clampIndex(x-r, g.W)])
		}
	}
	copy(g.Pix, tmp)
}

// boxVertical runs a sliding-window mean of radius r down each column.
func (g *Grid) boxVertical(tmp []uint8, r int) {
	n := 2*r + 1
	for x := 0; x < g.W; x++ {
		sum := 0
		for k := -r; k <= r; k++ {
			sum += int(g.Pix[clampIndex(k, g.H)*g.W+x])
		}
		for y := 0; y < g.H; y++ {
			tmp[y*g.W+x] = uint8((sum + n/2) / n)
			sum += int(g.Pix[clampIndex(y+r+1, g.H)*g.W+x]) - int(g.Pix[clampIndex(y-r, g.H)*g.W+x])
		}
	}
	copy(g.Pix, tmp)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
