package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"
	"go.uber.org/zap"

	mathx "github.com/Faultbox/terragen/pkg/math"
	"github.com/Faultbox/terragen/pkg/partition"
	"github.com/Faultbox/terragen/pkg/raster"
)

const (
	// meanderSteps is the number of pieces each river segment is split into.
	meanderSteps = 4
	// meanderFreq is the perlin frequency across the map.
	meanderFreq = 6.3
)

// rivers walks river candidates from mountain sites to the coast, draws
// them into an erosion mask and multiplies the mask into the elevation.
func (g *generator) rivers() {
	if g.cfg.RiverCount == 0 {
		return
	}
	sources := g.part.Indices(partition.Mountain)
	if len(sources) == 0 {
		g.log.Info("no mountain sites, skipping rivers")
		return
	}

	mask := raster.NewGrid(g.w, g.h)
	mask.Fill(255)

	channel := uint8(math.Round(255 * (1 - g.cfg.RiverDepth)))
	width := g.cfg.RiverStroke()
	wander := perlin.NewPerlin(2, 2, 3, g.cfg.Seed)
	coastal := g.part.IsKind(partition.Coastal)

	for i := range g.cfg.RiverCount {
		start := sources[g.rng.IntN(len(sources))]
		path, ok := g.part.Walk(start, g.cfg.RiverHops, coastal, g.rng)
		if !ok {
			g.stats.RiversDropped++
			g.log.Info("river dropped, hop budget exhausted",
				zap.Int("river", i),
				zap.Int("source", start),
				zap.Int("hops", g.cfg.RiverHops))
			continue
		}

		line := g.meander(wander, g.part.Centers(path))
		if mouth := g.findMouth(line[len(line)-1]); mouth != nil {
			line = append(line, mouth...)
			g.stats.MouthsFound++
		}
		for j := 1; j < len(line); j++ {
			ax, ay := line[j-1].Pixel()
			bx, by := line[j].Pixel()
			mask.ThickLine(ax, ay, bx, by, channel, width)
		}
		g.res.Rivers = append(g.res.Rivers, line)
		g.stats.RiversDrawn++
	}

	if g.stats.RiversDrawn == 0 {
		return
	}
	mask.Blur(g.cfg.BlurSigma)
	g.erode(mask)
}

// meander splits every segment and pushes the inner points sideways by
// perlin noise scaled to the segment length. Endpoints stay on the site
// centers.
func (g *generator) meander(p *perlin.Perlin, pts []mathx.Vec2) []mathx.Vec2 {
	if g.cfg.RiverMeander == 0 || len(pts) < 2 {
		return pts
	}
	fw, fh := float64(g.w), float64(g.h)

	out := make([]mathx.Vec2, 0, (len(pts)-1)*meanderSteps+1)
	out = append(out, pts[0])
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		side := d.Perp().Normalize()
		for k := 1; k < meanderSteps; k++ {
			q := a.Lerp(b, float64(k)/meanderSteps)
			off := p.Noise2D(q.X/fw*meanderFreq, q.Y/fh*meanderFreq) * g.cfg.RiverMeander * d.Length()
			q = q.Add(side.Scale(off))
			q.X = clampf(q.X, 0, fw-1)
			q.Y = clampf(q.Y, 0, fh-1)
			out = append(out, q)
		}
		out = append(out, b)
	}
	return out
}

// erode multiplies land elevation by the normalized river mask. Land never
// drops to sea level, so the land/water outline is unchanged.
func (g *generator) erode(mask *raster.Grid) {
	for i, e := range g.elev.Pix {
		if e == 0 {
			continue
		}
		v := (int(e)*int(mask.Pix[i]) + 127) / 255
		g.elev.Pix[i] = uint8(max(v, 1))
	}
}
