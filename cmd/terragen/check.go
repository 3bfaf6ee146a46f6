package main

import (
	"github.com/Faultbox/terragen/internal/terrain"
	"github.com/Faultbox/terragen/pkg/raster"
)

// undersized is a region smaller than its minimum.
type undersized struct {
	Kind   string
	Region raster.Region
	Limit  int
}

// regionReport summarizes the land/water regions of a heightmap.
type regionReport struct {
	Lakes, Islands int

	SmallestLake   raster.Region
	HasLake        bool
	SmallestIsland raster.Region
	HasIsland      bool

	Undersized []undersized
}

// checkRegions treats every sample above zero as land and checks each
// water region against lakeMin and each land region against islandMin.
func checkRegions(g *raster.Grid, lakeMin, islandMin int) regionReport {
	mask := g.Clone()
	for i, v := range mask.Pix {
		if v > 0 {
			mask.Pix[i] = terrain.Land
		}
	}

	var rep regionReport
	for _, r := range mask.Regions() {
		limit, kind := islandMin, "island"
		if r.Value == terrain.Water {
			limit, kind = lakeMin, "lake"
			rep.Lakes++
		} else {
			rep.Islands++
		}
		if r.Size < limit {
			rep.Undersized = append(rep.Undersized, undersized{Kind: kind, Region: r, Limit: limit})
		}
	}
	rep.SmallestLake, rep.HasLake = mask.SmallestRegion(terrain.Water)
	rep.SmallestIsland, rep.HasIsland = mask.SmallestRegion(terrain.Land)
	return rep
}
