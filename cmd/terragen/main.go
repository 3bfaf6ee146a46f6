// terragen generates procedural terrain heightmaps.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/export"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/internal/terrain"
	"github.com/Faultbox/terragen/pkg/raster"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "check":
		cmdCheck(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terragen - procedural terrain heightmap generator

Usage:
  terragen <command> [options]

Commands:
  generate [flags]              Generate a heightmap and write it to disk
  check [flags] <file>          Verify lake and island sizes of a .png or .r8 map
  config [path]                 Write the default config file

Examples:
  terragen generate -seed 7 -resolution 512 -out maps
  terragen generate -config island.yaml -overlay
  terragen check maps/terrain.png
  terragen config ./terragen.yaml`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("config loaded",
		zap.String("path", flags.ConfigPath()),
		zap.Any("terrain", cfg.Terrain))
	logger.Sugar.Debugf("output: %+v", cfg.Output)

	res, err := terrain.Generate(cfg.Terrain, terrain.Options{Logger: logger.Log})
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	files, err := export.NewWriter(cfg.Output.Dir, cfg.Output.Name).WriteAll(res, cfg.Output)
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Warn("all outputs disabled, nothing written")
	} else {
		logger.Info("terrain written", zap.Strings("files", files))
	}

	s := res.Stats
	fmt.Printf("Resolution: %dx%d\n", res.Height.Width(), res.Height.Height())
	fmt.Printf("Seed:       %d\n", cfg.Terrain.Seed)
	fmt.Printf("Land:       %d px (%d lakes filled, %d islands removed)\n", s.LandPixels, s.LakesFilled, s.IslandsRemoved)
	fmt.Printf("Sites:      %d/%d (%d inland, %d coastal, %d mountain)\n",
		s.SitesPlaced, s.SitesRequested, s.Inland, s.Coastal, s.Mountain)
	fmt.Printf("Ranges:     %d\n", s.RangesDrawn)
	fmt.Printf("Rivers:     %d drawn, %d dropped\n", s.RiversDrawn, s.RiversDropped)
	fmt.Printf("Height:     %d..%d\n", s.MinHeight, s.MaxHeight)
	fmt.Printf("Elapsed:    %s\n", s.Elapsed)
	for _, f := range files {
		fmt.Printf("  wrote %s\n", f)
	}
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file for size thresholds")
	lakeMin := fs.Int("lake-min", 0, "Minimum water region size (default from config)")
	islandMin := fs.Int("island-min", 0, "Minimum land region size (default from config)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terragen check [flags] <file.png|file.r8>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	var (
		g   *raster.Grid
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".r8") {
		g, err = export.ReadRaw(path)
	} else {
		g, err = export.ReadHeightmap(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg.Terrain.Resolution = max(g.W, g.H)
	if *lakeMin == 0 {
		*lakeMin = cfg.Terrain.LakeMin()
	}
	if *islandMin == 0 {
		*islandMin = cfg.Terrain.IslandMin()
	}

	rep := checkRegions(g, *lakeMin, *islandMin)
	for _, u := range rep.Undersized {
		r := u.Region
		fmt.Printf("  %s at (%d,%d): %d px < %d\n", u.Kind, r.X, r.Y, r.Size, u.Limit)
	}

	lo, hi := g.MinMax()
	fmt.Printf("File:    %s\n", path)
	fmt.Printf("Size:    %dx%d\n", g.W, g.H)
	fmt.Printf("Height:  %d..%d\n", lo, hi)
	fmt.Printf("Regions: %d water, %d land\n", rep.Lakes, rep.Islands)
	if rep.HasLake {
		r := rep.SmallestLake
		fmt.Printf("Smallest lake:   %d px at (%d,%d)\n", r.Size, r.X, r.Y)
	}
	if rep.HasIsland {
		r := rep.SmallestIsland
		fmt.Printf("Smallest island: %d px at (%d,%d)\n", r.Size, r.X, r.Y)
	}
	if len(rep.Undersized) > 0 {
		fmt.Printf("FAIL: %d regions below minimum size\n", len(rep.Undersized))
		os.Exit(1)
	}
	fmt.Println("OK")
}

func cmdConfig(args []string) {
	cfg := config.Default()
	path := filepath.Join(config.ConfigDir(), config.FileName)
	save := cfg.Save
	if len(args) > 0 {
		path = args[0]
		save = func() error { return cfg.SaveTo(path) }
	}
	if err := save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
