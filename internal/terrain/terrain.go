// Package terrain synthesizes a procedural heightfield: fBm continents
// pruned of tiny lakes and islands, a land-only cell partition classified
// into coastal, inland and mountain sites, ridged mountains blended over
// the mountain cells, and rivers walked from the mountains to the sea and
// carved in as an erosion multiplier.
//
// A run is single-threaded and owns every buffer it allocates. All
// randomness comes from the configured seed, so equal configs give
// byte-identical output.
package terrain

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	mathx "github.com/Faultbox/terragen/pkg/math"
	"github.com/Faultbox/terragen/pkg/noise"
	"github.com/Faultbox/terragen/pkg/partition"
	"github.com/Faultbox/terragen/pkg/raster"
	"github.com/Faultbox/terragen/pkg/rng"
)

// Mask values.
const (
	Water uint8 = 0
	Land  uint8 = 255
)

// Options carries the collaborators of a run.
type Options struct {
	Logger *zap.Logger // nil discards logs
}

// Result is everything a run produced. Height is the deliverable; the rest
// feeds exports and diagnostics.
type Result struct {
	Config    config.TerrainConfig
	Height    *HeightField
	Land      *raster.Grid // pruned land/water mask
	Partition *partition.Partition
	Rivers    [][]mathx.Vec2 // drawn river polylines, source to mouth
	Ranges    [][]int        // mountain range cell paths
	Stats     Stats
}

// generator holds the state of one run.
type generator struct {
	cfg   config.TerrainConfig
	log   *zap.Logger
	field *noise.Field
	rng   *rng.RNG

	w, h  int
	elev  *raster.Grid
	land  *raster.Grid
	part  *partition.Partition
	res   *Result
	stats *Stats
}

// Generate runs the full synthesis. An invalid config is rejected before
// any buffer is allocated.
func Generate(cfg config.TerrainConfig, opts Options) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("terrain config: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	start := time.Now()
	res := &Result{Config: cfg}
	g := &generator{
		cfg:   cfg,
		log:   log,
		field: noise.New(cfg.Seed),
		rng:   rng.New(cfg.Seed),
		w:     cfg.Resolution,
		h:     cfg.Resolution,
		res:   res,
		stats: &res.Stats,
	}

	log.Debug("generating terrain",
		zap.Int("resolution", cfg.Resolution),
		zap.Int64("seed", cfg.Seed),
		zap.Int("sites", cfg.SiteCount))

	g.stage("base elevation", g.baseElevation)
	g.stage("prune regions", g.pruneRegions)
	if err := g.buildPartition(); err != nil {
		return nil, err
	}
	g.stage("mountains", g.mountains)
	g.stage("rivers", g.rivers)

	res.Height = newHeightField(g.elev)
	res.Land = g.land
	res.Partition = g.part
	g.stats.MinHeight, g.stats.MaxHeight = g.elev.MinMax()
	g.stats.Elapsed = time.Since(start)

	log.Info("terrain generated",
		zap.Int("resolution", cfg.Resolution),
		zap.Int("sites", g.stats.SitesPlaced),
		zap.Int("mountains", g.stats.Mountain),
		zap.Int("rivers", g.stats.RiversDrawn),
		zap.Duration("elapsed", g.stats.Elapsed))
	return res, nil
}

func (g *generator) stage(name string, fn func()) {
	t := time.Now()
	fn()
	g.log.Debug("stage done", zap.String("stage", name), zap.Duration("took", time.Since(t)))
}

// fbm samples the base elevation field at pixel coordinates.
func (g *generator) fbm(x, y float64) float64 {
	return g.field.FBM(x/float64(g.w), y/float64(g.h), g.cfg.Frequency, g.cfg.Lacunarity, g.cfg.Gain)
}

// baseElevation fills elev with the fBm field and thresholds it into the
// land mask.
func (g *generator) baseElevation() {
	g.elev = raster.NewGrid(g.w, g.h)
	g.land = raster.NewGrid(g.w, g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			v := g.fbm(float64(x), float64(y))
			i := y*g.w + x
			g.elev.Pix[i] = uint8(v*255 + 0.5)
			if v > g.cfg.LandCutoff {
				g.land.Pix[i] = Land
			}
		}
	}
}

// pruneRegions removes small lakes first, then small islands, so island
// sizes are measured on the lake-filled mask. Elevation is then masked:
// water is 0 and land never drops below 1.
func (g *generator) pruneRegions() {
	lakes := g.land.PruneRegions(Water, Land, g.cfg.LakeMin())
	islands := g.land.PruneRegions(Land, Water, g.cfg.IslandMin())

	g.stats.LakesFilled, g.stats.LakePixels = lakes.Regions, lakes.Pixels
	g.stats.IslandsRemoved, g.stats.IslandPixels = islands.Regions, islands.Pixels
	g.stats.LandPixels = g.land.Count(Land)
	g.stats.WaterPixels = len(g.land.Pix) - g.stats.LandPixels

	for i, m := range g.land.Pix {
		switch {
		case m == Water:
			g.elev.Pix[i] = 0
		case g.elev.Pix[i] == 0:
			g.elev.Pix[i] = 1
		}
	}

	g.log.Debug("pruned regions",
		zap.Int("lakes", lakes.Regions),
		zap.Int("islands", islands.Regions),
		zap.Int("land", g.stats.LandPixels))
}

// buildPartition samples land sites, builds their cells and classifies them.
func (g *generator) buildPartition() error {
	t := time.Now()
	sites, attempts := partition.SampleSites(g.land, Land, g.cfg.SiteCount, g.cfg.MaxSiteAttempts, g.rng)
	g.stats.SitesRequested = g.cfg.SiteCount
	g.stats.SitesPlaced = len(sites)
	g.stats.SiteAttempts = attempts
	if len(sites) < g.cfg.SiteCount {
		g.log.Warn("site sampling capped",
			zap.Int("requested", g.cfg.SiteCount),
			zap.Int("placed", len(sites)),
			zap.Int("attempts", attempts))
	}

	part, err := partition.Build(sites, g.w, g.h)
	if err != nil {
		return fmt.Errorf("building partition: %w", err)
	}
	part.Classify(g.land, Land, func(p mathx.Vec2) float64 {
		return g.fbm(p.X, p.Y)
	}, g.cfg.MountainThreshold)
	g.part = part

	g.stats.Inland = part.Count(partition.Inland)
	g.stats.Coastal = part.Count(partition.Coastal)
	g.stats.Mountain = part.Count(partition.Mountain)

	g.log.Debug("stage done",
		zap.String("stage", "partition"),
		zap.Int("inland", g.stats.Inland),
		zap.Int("coastal", g.stats.Coastal),
		zap.Int("mountain", g.stats.Mountain),
		zap.Duration("took", time.Since(t)))
	return nil
}
