package partition

import (
	mathx "github.com/Faultbox/terragen/pkg/math"
	"github.com/Faultbox/terragen/pkg/raster"
)

// Classify tags every site in two ordered passes. First a site is Coastal
// when any pixel along its cell boundary is not land in the mask; that tag
// is final. Then each remaining Inland site is promoted to Mountain when
// elevation at its position exceeds threshold.
func (p *Partition) Classify(mask *raster.Grid, land uint8, elevation func(pos mathx.Vec2) float64, threshold float64) {
	for i := range p.Sites {
		p.Sites[i].Kind = Inland
		if p.touchesWater(i, mask, land) {
			p.Sites[i].Kind = Coastal
		}
	}
	if elevation == nil {
		return
	}
	for i := range p.Sites {
		s := &p.Sites[i]
		if s.Kind == Inland && elevation(s.Pos) > threshold {
			s.Kind = Mountain
		}
	}
}

// touchesWater traces each boundary segment of cell i over the mask.
// Pixels outside the mask are skipped.
func (p *Partition) touchesWater(i int, mask *raster.Grid, land uint8) bool {
	c := &p.Cells[p.Sites[i].Cell]
	if c.Degenerate() {
		x, y := p.Sites[i].Pos.Pixel()
		return mask.InBounds(x, y) && mask.At(x, y) != land
	}

	water := false
	for j, a := range c.Vertices {
		b := c.Vertices[(j+1)%len(c.Vertices)]
		ax, ay := a.Pixel()
		bx, by := b.Pixel()
		raster.Trace(ax, ay, bx, by, func(x, y int) bool {
			if mask.InBounds(x, y) && mask.At(x, y) != land {
				water = true
			}
			return !water
		})
		if water {
			return true
		}
	}
	return false
}
