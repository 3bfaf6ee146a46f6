// Package config handles generator configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig is the parameter set of one synthesis run. It is passed by
// value and never changed once generation starts.
type TerrainConfig struct {
	Resolution      int   `yaml:"resolution"`        // Width and height in pixels
	Seed            int64 `yaml:"seed"`              // Seeds the noise field and the RNG
	SiteCount       int   `yaml:"site_count"`        // Land sites to place
	MaxSiteAttempts int   `yaml:"max_site_attempts"` // Rejection budget (0 = 64 per site)

	// Base elevation fBm, sampled at (x/W, y/H).
	Frequency  float64 `yaml:"frequency"`  // Lattice cells across the map
	Lacunarity float64 `yaml:"lacunarity"` // Frequency multiplier per octave
	Gain       float64 `yaml:"gain"`       // Amplitude divisor per octave
	LandCutoff float64 `yaml:"land_cutoff"`

	MountainThreshold float64 `yaml:"mountain_threshold"` // fBm value promoting inland sites
	MountainHeight    float64 `yaml:"mountain_height"`    // Peak ridge contribution in elevation units
	RidgeFrequency    float64 `yaml:"ridge_frequency"`

	MinLakeSize   int `yaml:"min_lake_size"`   // 0 = 2 × resolution
	MinIslandSize int `yaml:"min_island_size"` // 0 = resolution

	RiverCount   int     `yaml:"river_count"`
	RiverHops    int     `yaml:"river_hops"`
	RiverWidth   float64 `yaml:"river_width"`   // 0 = resolution / 64, at least 2
	RiverDepth   float64 `yaml:"river_depth"`   // Fraction of elevation removed at the channel center
	RiverMeander float64 `yaml:"river_meander"` // Perpendicular displacement relative to segment length

	MountainRangeCount int `yaml:"mountain_range_count"`
	MountainRangeHops  int `yaml:"mountain_range_hops"`

	BlurSigma float64 `yaml:"blur_sigma"`
}

// OutputConfig selects what the CLI writes.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Name     string `yaml:"name"`     // File name stem
	PNG      bool   `yaml:"png"`      // Grayscale heightmap
	Raw      bool   `yaml:"raw"`      // Headerless 8-bit samples (.r8)
	Preview  bool   `yaml:"preview"`  // Colored relief
	Overlay  bool   `yaml:"overlay"`  // Cells and paths over the heightmap
	Metadata bool   `yaml:"metadata"` // Config and stats as YAML
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: DefaultTerrain(),
		Output: OutputConfig{
			Dir:      "out",
			Name:     "terrain",
			PNG:      true,
			Raw:      false,
			Preview:  true,
			Overlay:  false,
			Metadata: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultTerrain returns the default synthesis parameters.
func DefaultTerrain() TerrainConfig {
	return TerrainConfig{
		Resolution:         256,
		Seed:               42,
		SiteCount:          50,
		Frequency:          5,
		Lacunarity:         2.5,
		Gain:               2.0,
		LandCutoff:         0.55,
		MountainThreshold:  0.62,
		MountainHeight:     96,
		RidgeFrequency:     8,
		RiverCount:         10,
		RiverHops:          40,
		RiverDepth:         0.6,
		RiverMeander:       0.3,
		MountainRangeCount: 4,
		MountainRangeHops:  20,
		BlurSigma:          4,
	}
}

// LakeMin returns the smallest water region kept by pruning.
func (c TerrainConfig) LakeMin() int {
	if c.MinLakeSize > 0 {
		return c.MinLakeSize
	}
	return 2 * c.Resolution
}

// IslandMin returns the smallest land region kept by pruning.
func (c TerrainConfig) IslandMin() int {
	if c.MinIslandSize > 0 {
		return c.MinIslandSize
	}
	return c.Resolution
}

// RiverStroke returns the river line width in pixels.
func (c TerrainConfig) RiverStroke() float64 {
	if c.RiverWidth > 0 {
		return c.RiverWidth
	}
	return max(2, float64(c.Resolution)/64)
}
