package terrain

import (
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/terragen/pkg/partition"
	"github.com/Faultbox/terragen/pkg/raster"
)

// rangeFalloff is the shading radius of a range cell as a fraction of the
// map size.
const rangeFalloff = 0.15

// mountains paints the mountain influence mask, softens it and raises the
// land under it with ridged noise.
func (g *generator) mountains() {
	mask := raster.NewGrid(g.w, g.h)
	for _, s := range g.part.Sites {
		if s.Kind != partition.Mountain {
			continue
		}
		mask.FillFan(s.Pos, g.part.Cells[s.Cell].Vertices, 255)
	}
	g.ranges(mask)
	mask.Blur(g.cfg.BlurSigma)
	g.blendRidges(mask)
}

// ranges walks mountain chains from mountain sites (inland sites when there
// are none) and shades every visited cell into mask. A chain ends before
// the first coastal cell it meets.
func (g *generator) ranges(mask *raster.Grid) {
	if g.cfg.MountainRangeCount == 0 {
		return
	}
	origins := g.part.Indices(partition.Mountain)
	if len(origins) == 0 {
		origins = g.part.Indices(partition.Inland)
	}
	if len(origins) == 0 {
		g.log.Info("no inland sites, skipping mountain ranges")
		return
	}

	radius := rangeFalloff * float64(max(g.w, g.h))
	coastal := g.part.IsKind(partition.Coastal)
	for range g.cfg.MountainRangeCount {
		start := origins[g.rng.IntN(len(origins))]
		path, reached := g.part.Walk(start, g.cfg.MountainRangeHops, coastal, g.rng)
		if reached {
			path = path[:len(path)-1]
		}
		for _, c := range path {
			s := g.part.Sites[c]
			mask.ShadeFan(s.Pos, g.part.Cells[s.Cell].Vertices, radius)
		}
		g.res.Ranges = append(g.res.Ranges, path)
		g.stats.RangesDrawn++
	}
	g.log.Debug("mountain ranges drawn", zap.Int("ranges", g.stats.RangesDrawn))
}

// blendRidges adds mountain relief where the mask is set. The contribution
// scales with the mask and with the base elevation, so it fades towards the
// coast and is zero over water.
func (g *generator) blendRidges(mask *raster.Grid) {
	fw, fh := float64(g.w), float64(g.h)
	freq := g.cfg.RidgeFrequency
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			m, base := mask.Pix[i], g.elev.Pix[i]
			if m == 0 || base == 0 {
				continue
			}

			u, v := float64(x)/fw, float64(y)/fh
			peaks := 1 - math.Sqrt(g.field.Worley(u*freq, v*freq))
			ridge := 0.5*peaks + 0.5*g.field.Ridge(u, v, freq)

			add := float64(m) / 255 * ridge * g.cfg.MountainHeight * float64(base) / 255
			g.elev.Pix[i] = uint8(math.Min(255, float64(base)+add+0.5))
		}
	}
}
