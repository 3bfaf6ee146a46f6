package terrain

import "time"

// Stats summarizes one synthesis run. Degradations that do not fail the run
// (a capped site search, a dropped river) show up here.
type Stats struct {
	LandPixels  int `yaml:"land_pixels"`
	WaterPixels int `yaml:"water_pixels"`

	LakesFilled    int `yaml:"lakes_filled"`
	LakePixels     int `yaml:"lake_pixels"`
	IslandsRemoved int `yaml:"islands_removed"`
	IslandPixels   int `yaml:"island_pixels"`

	SitesRequested int `yaml:"sites_requested"`
	SitesPlaced    int `yaml:"sites_placed"`
	SiteAttempts   int `yaml:"site_attempts"`

	Inland   int `yaml:"inland"`
	Coastal  int `yaml:"coastal"`
	Mountain int `yaml:"mountain"`

	RangesDrawn   int `yaml:"ranges_drawn"`
	RiversDrawn   int `yaml:"rivers_drawn"`
	RiversDropped int `yaml:"rivers_dropped"`
	MouthsFound   int `yaml:"mouths_found"`

	MinHeight uint8         `yaml:"min_height"`
	MaxHeight uint8         `yaml:"max_height"`
	Elapsed   time.Duration `yaml:"elapsed"`
}
