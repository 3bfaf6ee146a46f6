package config

import "flag"

// Flags holds CLI overrides registered on a flag set.
type Flags struct {
	fs *flag.FlagSet

	config     *string
	debug      *bool
	resolution *int
	seed       *int64
	sites      *int
	rivers     *int
	ranges     *int
	blur       *float64
	out        *string
	name       *string
	raw        *bool
	overlay    *bool
}

// RegisterFlags binds the generator flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:         fs,
		config:     fs.String("config", "", "Path to config file"),
		debug:      fs.Bool("debug", false, "Enable debug logging"),
		resolution: fs.Int("resolution", 0, "Map width and height in pixels"),
		seed:       fs.Int64("seed", 0, "Generation seed"),
		sites:      fs.Int("sites", 0, "Number of land sites"),
		rivers:     fs.Int("rivers", 0, "Number of river candidates"),
		ranges:     fs.Int("ranges", 0, "Number of mountain ranges"),
		blur:       fs.Float64("blur", 0, "Mask blur sigma"),
		out:        fs.String("out", "", "Output directory"),
		name:       fs.String("name", "", "Output file name stem"),
		raw:        fs.Bool("raw", false, "Also write raw .r8 samples"),
		overlay:    fs.Bool("overlay", false, "Also write the debug overlay"),
	}
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply copies every flag the user actually set onto cfg. Flags left at
// their defaults do not override file values, so -seed 0 is honored.
func (f *Flags) apply(cfg *Config) {
	if f == nil || f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if *f.debug {
				cfg.Logging.Level = "debug"
			}
		case "resolution":
			cfg.Terrain.Resolution = *f.resolution
		case "seed":
			cfg.Terrain.Seed = *f.seed
		case "sites":
			cfg.Terrain.SiteCount = *f.sites
		case "rivers":
			cfg.Terrain.RiverCount = *f.rivers
		case "ranges":
			cfg.Terrain.MountainRangeCount = *f.ranges
		case "blur":
			cfg.Terrain.BlurSigma = *f.blur
		case "out":
			cfg.Output.Dir = *f.out
		case "name":
			cfg.Output.Name = *f.name
		case "raw":
			cfg.Output.Raw = *f.raw
		case "overlay":
			cfg.Output.Overlay = *f.overlay
		}
	})
}
