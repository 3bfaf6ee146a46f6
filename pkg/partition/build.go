package partition

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"

	mathx "github.com/Faultbox/terragen/pkg/math"
)

// framePad is how far outside the map, in map sizes, the four frame sites
// are placed. They keep every real site off the convex hull so each real
// cell closes.
const framePad = 10

// Build triangulates the sites together with four distant frame sites and
// returns the Voronoi dual: one cell per site, made of the circumcenters of
// the triangles around it and clipped to [0,W]×[0,H]. Sites that the
// triangulation drops (exact duplicates) get a degenerate cell.
func Build(sites []mathx.Vec2, w, h int) (*Partition, error) {
	p := &Partition{
		W:     w,
		H:     h,
		Sites: make([]Site, len(sites)),
		Cells: make([]Cell, len(sites)),
	}
	for i, s := range sites {
		p.Sites[i] = Site{Pos: s, Kind: Inland, Cell: i}
	}
	if len(sites) == 0 {
		return p, nil
	}

	fw, fh := float64(w), float64(h)
	pad := framePad * math.Max(fw, fh)
	pts := make([]delaunay.Point, 0, len(sites)+4)
	for _, s := range sites {
		pts = append(pts, delaunay.Point{X: s.X, Y: s.Y})
	}
	pts = append(pts,
		delaunay.Point{X: -pad, Y: -pad},
		delaunay.Point{X: fw + pad, Y: -pad},
		delaunay.Point{X: fw + pad, Y: fh + pad},
		delaunay.Point{X: -pad, Y: fh + pad},
	)

	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("triangulate %d sites: %w", len(sites), err)
	}

	inSide := incomingSides(tri, len(pts))
	for r := range sites {
		ring := dualRing(tri, inSide[r], len(sites))
		if len(ring) < 3 {
			continue
		}
		if mathx.SignedArea(positions(ring)) < 0 {
			ring = reverseRing(ring)
		}
		ring = clipToFrame(ring, fw, fh)
		ring = dedupRing(ring)
		if len(ring) < 3 || mathx.SignedArea(positions(ring)) <= 0 {
			continue
		}

		cell := Cell{
			Vertices:  make([]mathx.Vec2, len(ring)),
			Neighbors: make([]int, len(ring)),
		}
		for i, v := range ring {
			cell.Vertices[i] = v.p
			cell.Neighbors[i] = v.n
		}
		p.Cells[r] = cell
	}
	return p, nil
}

// vertex is a cell vertex together with the neighbor across the segment
// that starts at it.
type vertex struct {
	p mathx.Vec2
	n int
}

func nextSide(s int) int {
	if s%3 == 2 {
		return s - 2
	}
	return s + 1
}

// incomingSides maps each point to one half-edge that ends at it, or -1 if
// the point is in no triangle. Hull half-edges win so open rings start at
// the boundary.
func incomingSides(tri *delaunay.Triangulation, n int) []int {
	in := make([]int, n)
	for i := range in {
		in[i] = -1
	}
	for s := range tri.Triangles {
		end := tri.Triangles[nextSide(s)]
		if in[end] == -1 || tri.Halfedges[s] == -1 {
			in[end] = s
		}
	}
	return in
}

// dualRing walks the triangles around the point that side start ends at and
// returns their centers. The neighbor of the segment leaving center i is
// the point shared by triangles i and i+1. It returns nil for an open ring.
func dualRing(tri *delaunay.Triangulation, start, real int) []vertex {
	if start < 0 {
		return nil
	}
	var ring []vertex
	incoming := start
	for range len(tri.Triangles) {
		c := triangleCenter(tri, incoming/3)
		incoming = tri.Halfedges[nextSide(incoming)]
		if incoming == -1 {
			return nil
		}
		n := tri.Triangles[incoming]
		if n >= real {
			n = NoNeighbor
		}
		ring = append(ring, vertex{p: c, n: n})
		if incoming == start {
			return ring
		}
	}
	return nil
}

// triangleCenter returns the circumcenter of triangle t, or its centroid
// when the triangle is too flat to have a stable one.
func triangleCenter(tri *delaunay.Triangulation, t int) mathx.Vec2 {
	a := toVec(tri.Points[tri.Triangles[3*t]])
	b := toVec(tri.Points[tri.Triangles[3*t+1]])
	c := toVec(tri.Points[tri.Triangles[3*t+2]])
	if cc, ok := circumcenter(a, b, c); ok {
		return cc
	}
	return mathx.Centroid([]mathx.Vec2{a, b, c})
}

func circumcenter(a, b, c mathx.Vec2) (mathx.Vec2, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	const eps = 1e-12
	if math.Abs(d) < eps {
		return mathx.Vec2{}, false
	}

	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	return mathx.Vec2{X: ux, Y: uy}, true
}

func toVec(p delaunay.Point) mathx.Vec2 {
	return mathx.Vec2{X: p.X, Y: p.Y}
}

func positions(ring []vertex) []mathx.Vec2 {
	out := make([]mathx.Vec2, len(ring))
	for i, v := range ring {
		out[i] = v.p
	}
	return out
}

// reverseRing flips the winding. Segment j of the result is segment
// n-2-j of the input, so labels shift along with the vertices.
func reverseRing(ring []vertex) []vertex {
	n := len(ring)
	out := make([]vertex, n)
	for j := range out {
		out[j] = vertex{
			p: ring[n-1-j].p,
			n: ring[((n-2-j)%n+n)%n].n,
		}
	}
	return out
}

// clipToFrame runs Sutherland-Hodgman against the four frame edges. Kept
// pieces of a segment keep its neighbor; new segments along the frame get
// NoNeighbor.
func clipToFrame(ring []vertex, w, h float64) []vertex {
	ring = clipEdge(ring,
		func(p mathx.Vec2) bool { return p.X >= 0 },
		func(a, b mathx.Vec2) mathx.Vec2 { return crossX(a, b, 0) })
	ring = clipEdge(ring,
		func(p mathx.Vec2) bool { return p.X <= w },
		func(a, b mathx.Vec2) mathx.Vec2 { return crossX(a, b, w) })
	ring = clipEdge(ring,
		func(p mathx.Vec2) bool { return p.Y >= 0 },
		func(a, b mathx.Vec2) mathx.Vec2 { return crossY(a, b, 0) })
	ring = clipEdge(ring,
		func(p mathx.Vec2) bool { return p.Y <= h },
		func(a, b mathx.Vec2) mathx.Vec2 { return crossY(a, b, h) })
	return ring
}

func clipEdge(ring []vertex, inside func(mathx.Vec2) bool, cross func(a, b mathx.Vec2) mathx.Vec2) []vertex {
	if len(ring) == 0 {
		return ring
	}
	out := make([]vertex, 0, len(ring)+2)
	for i, s := range ring {
		e := ring[(i+1)%len(ring)]
		sIn, eIn := inside(s.p), inside(e.p)
		switch {
		case sIn && eIn:
			out = append(out, s)
		case sIn:
			out = append(out, s, vertex{p: cross(s.p, e.p), n: NoNeighbor})
		case eIn:
			out = append(out, vertex{p: cross(s.p, e.p), n: s.n})
		}
	}
	return out
}

func crossX(a, b mathx.Vec2, x float64) mathx.Vec2 {
	t := (x - a.X) / (b.X - a.X)
	return mathx.Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func crossY(a, b mathx.Vec2, y float64) mathx.Vec2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return mathx.Vec2{X: a.X + t*(b.X-a.X), Y: y}
}

// dedupRing drops vertices that coincide with their successor, along with
// the zero-length segment they start.
func dedupRing(ring []vertex) []vertex {
	const eps = 1e-9
	out := ring[:0:0]
	for i, v := range ring {
		next := ring[(i+1)%len(ring)]
		if len(ring) > 1 && v.p.Distance(next.p) < eps {
			continue
		}
		out = append(out, v)
	}
	return out
}
