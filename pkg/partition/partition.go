// Package partition builds the polygonal cell decomposition the terrain
// pipeline hangs its coarse features on: sites sampled on land, their
// Voronoi cells clipped to the map frame, a coastal/inland/mountain tag per
// site, and bounded random walks over the cell-neighbor graph.
//
// Cells live in a flat slice indexed like the sites that own them; neighbor
// links are indices into that slice, never pointers.
package partition

import (
	mathx "github.com/Faultbox/terragen/pkg/math"
)

// NoNeighbor marks a boundary segment with no cell on its far side: the map
// frame, or a segment facing one of the off-map frame sites.
const NoNeighbor = -1

// Kind is the classification tag of a site.
type Kind uint8

const (
	Inland Kind = iota
	Coastal
	Mountain
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Inland:
		return "inland"
	case Coastal:
		return "coastal"
	case Mountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// Site is a sample point and its classification.
type Site struct {
	Pos  mathx.Vec2
	Kind Kind
	Cell int // index into Partition.Cells
}

// Cell is a closed polygon. Segment i runs from Vertices[i] to
// Vertices[(i+1)%n] and Neighbors[i] is the cell across it, or NoNeighbor.
// Vertices wind positively (see mathx.SignedArea).
type Cell struct {
	Vertices  []mathx.Vec2
	Neighbors []int
}

// Degenerate reports whether the cell has no usable boundary.
func (c *Cell) Degenerate() bool {
	return len(c.Vertices) < 3
}

// Area returns the polygon area in square pixels.
func (c *Cell) Area() float64 {
	if c.Degenerate() {
		return 0
	}
	return mathx.SignedArea(c.Vertices) / 2
}

// Partition is the cell decomposition of a W×H map.
type Partition struct {
	W, H  int
	Sites []Site
	Cells []Cell
}

// Neighbors returns the distinct cells adjacent to cell i in boundary order.
func (p *Partition) Neighbors(i int) []int {
	if i < 0 || i >= len(p.Cells) {
		return nil
	}
	var out []int
	for _, n := range p.Cells[i].Neighbors {
		if n == NoNeighbor || n == i || contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Indices returns the indices of all sites of the given kind.
func (p *Partition) Indices(k Kind) []int {
	var out []int
	for i := range p.Sites {
		if p.Sites[i].Kind == k {
			out = append(out, i)
		}
	}
	return out
}

// Count returns the number of sites of the given kind.
func (p *Partition) Count(k Kind) int {
	n := 0
	for i := range p.Sites {
		if p.Sites[i].Kind == k {
			n++
		}
	}
	return n
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
