package raster

// Region describes one 4-connected component of equal samples.
type Region struct {
	Value uint8
	Size  int
	X, Y  int // first pixel in row-major order
}

// Regions labels every 4-connected component of equal samples with a
// two-pass union-find scan and returns them in row-major order of their
// first pixel. It does not modify the grid.
func (g *Grid) Regions() []Region {
	labels := make([]int32, len(g.Pix))
	parent := make([]int32, 0, 64)

	find := func(a int32) int32 {
		for parent[a] != a {
			parent[a] = parent[parent[a]]
			a = parent[a]
		}
		return a
	}
	union := func(a, b int32) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if ra < rb {
			parent[rb] = ra
		} else {
			parent[ra] = rb
		}
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := y*g.W + x
			v := g.Pix[i]
			left := x > 0 && g.Pix[i-1] == v
			up := y > 0 && g.Pix[i-g.W] == v
			switch {
			case left && up:
				labels[i] = labels[i-1]
				union(labels[i-1], labels[i-g.W])
			case left:
				labels[i] = labels[i-1]
			case up:
				labels[i] = labels[i-g.W]
			default:
				labels[i] = int32(len(parent))
				parent = append(parent, int32(len(parent)))
			}
		}
	}

	index := make(map[int32]int, len(parent))
	var regions []Region
	for i, l := range labels {
		root := find(l)
		ri, ok := index[root]
		if !ok {
			ri = len(regions)
			index[root] = ri
			regions = append(regions, Region{Value: g.Pix[i], X: i % g.W, Y: i / g.W})
		}
		regions[ri].Size++
	}
	return regions
}

// SmallestRegion returns the smallest region holding value v, and false when
// no sample equals v.
func (g *Grid) SmallestRegion(v uint8) (Region, bool) {
	var best Region
	found := false
	for _, r := range g.Regions() {
		if r.Value != v {
			continue
		}
		if !found || r.Size < best.Size {
			best, found = r, true
		}
	}
	return best, found
}
