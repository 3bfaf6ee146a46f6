package raster

import (
	"math"

	mathx "github.com/Faultbox/terragen/pkg/math"
)

// Plot writes c at (x, y). Out-of-range coordinates are a no-op.
func (g *Grid) Plot(x, y int, c uint8) {
	if x < 0 || y < 0 || x > g.W-1 || y > g.H-1 {
		return
	}
	g.Pix[y*g.W+x] = c
}

// Trace visits every pixel of the integer Bresenham line from (x0, y0) to
// (x1, y1), endpoints included, in order. It stops early when visit returns
// false.
// See http://members.chello.at/~easyfilter/bresenham.html
func Trace(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	dx, sx := abs(x1-x0), 1
	if x0 >= x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if !visit(x0, y0) {
			return
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Line draws a one pixel wide Bresenham line.
func (g *Grid) Line(x0, y0, x1, y1 int, c uint8) {
	Trace(x0, y0, x1, y1, func(x, y int) bool {
		g.Plot(x, y, c)
		return true
	})
}

// ThickLine draws a line of the given width. Each step of the midpoint walk
// extends perpendicular runs while the error term, scaled by the segment
// length, stays within half the width.
func (g *Grid) ThickLine(x0, y0, x1, y1 int, c uint8, width float64) {
	dx, sx := abs(x1-x0), 1
	if x0 >= x1 {
		sx = -1
	}
	dy, sy := abs(y1-y0), 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy
	ed := 1.0
	if dx+dy != 0 {
		ed = math.Sqrt(float64(dx*dx + dy*dy))
	}
	wd := (width + 1) / 2

	for {
		g.Plot(x0, y0, c)
		e2, x2 := err, x0

		// x step
		if 2*e2 >= -dx {
			e2 += dy
			for y2 := y0; float64(e2) < ed*wd && (y1 != y2 || dx > dy); e2 += dx {
				y2 += sy
				g.Plot(x0, y2, c)
			}
			if x0 == x1 {
				break
			}
			e2 = err
			err -= dy
			x0 += sx
		}

		// y step
		if 2*e2 <= dy {
			for e2 = dx - e2; float64(e2) < ed*wd && (x1 != x2 || dx < dy); e2 += dy {
				x2 += sx
				g.Plot(x2, y0, c)
			}
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

// Orient is the edge function of p against the directed edge a->b, computed
// on the pixels containing each point. Positive means p lies on the filled
// side for the winding FillTriangle uses.
// See http://fgiesen.wordpress.com/2013/02/08/triangle-rasterization-in-practice/
func Orient(a, b, p mathx.Vec2) int {
	ax, ay := a.Pixel()
	bx, by := b.Pixel()
	px, py := p.Pixel()
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// FillTriangle fills every pixel inside or on the edges of the triangle.
// The declared winding is positive Orient(v0, v1, v2); negatively wound
// triangles are reordered first. A zero-area triangle draws nothing.
func (g *Grid) FillTriangle(v0, v1, v2 mathx.Vec2, c uint8) {
	g.rasterize(v0, v1, v2, func(x, y int) {
		g.Pix[y*g.W+x] = c
	})
}

// ShadeTriangle fills the triangle (center, v1, v2) with an intensity that
// falls from 255 at center to 0 at radius. Existing brighter samples are
// kept, so adjacent fans of one cell blend without seams.
func (g *Grid) ShadeTriangle(center, v1, v2 mathx.Vec2, radius float64) {
	if radius <= 0 {
		return
	}
	g.rasterize(center, v1, v2, func(x, y int) {
		d := center.Distance(mathx.Vec2{X: float64(x), Y: float64(y)})
		v := 255 * (1 - d/radius)
		if v <= 0 {
			return
		}
		i := y*g.W + x
		if s := uint8(math.Min(v, 255)); s > g.Pix[i] {
			g.Pix[i] = s
		}
	})
}

// FillFan fills the polygon as a triangle fan around center. Polygons with
// fewer than three vertices draw nothing.
func (g *Grid) FillFan(center mathx.Vec2, poly []mathx.Vec2, c uint8) {
	if len(poly) < 3 {
		return
	}
	for i := range poly {
		g.FillTriangle(center, poly[i], poly[(i+1)%len(poly)], c)
	}
}

// ShadeFan is FillFan with ShadeTriangle's distance falloff.
func (g *Grid) ShadeFan(center mathx.Vec2, poly []mathx.Vec2, radius float64) {
	if len(poly) < 3 {
		return
	}
	for i := range poly {
		g.ShadeTriangle(center, poly[i], poly[(i+1)%len(poly)], radius)
	}
}

func (g *Grid) rasterize(v0, v1, v2 mathx.Vec2, plot func(x, y int)) {
	area := Orient(v0, v1, v2)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
	}

	// Compute triangle bounding box
	x0, y0 := v0.Pixel()
	x1, y1 := v1.Pixel()
	x2, y2 := v2.Pixel()
	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)

	// Clip against screen bounds
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, g.W-1)
	maxY = min(maxY, g.H-1)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			p := mathx.Vec2{X: float64(px), Y: float64(py)}
			w0 := Orient(v1, v2, p)
			w1 := Orient(v2, v0, p)
			w2 := Orient(v0, v1, p)

			// If p is on or inside all edges, render pixel.
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				plot(px, py)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
