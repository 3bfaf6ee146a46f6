package raster

// PruneResult reports what a PruneRegions pass removed.
type PruneResult struct {
	Regions int // regions recolored
	Pixels  int // samples recolored
}

// PruneRegions recolors every 4-connected region of value region whose area
// is below minSize to fill.
//
// Sizes are measured on a snapshot taken before any destructive fill, so each
// decision sees the grid as it was when the pass started; only the regions
// that fail the threshold are then filled in g.
func (g *Grid) PruneRegions(region, fill uint8, minSize int) PruneResult {
	var res PruneResult
	if region == fill || minSize <= 1 {
		return res
	}

	snap := g.Clone()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if snap.Pix[y*g.W+x] != region {
				continue
			}
			size := snap.FloodFill(x, y, region, fill)
			if size < minSize {
				g.FloodFill(x, y, region, fill)
				res.Regions++
				res.Pixels += size
			}
		}
	}
	return res
}
