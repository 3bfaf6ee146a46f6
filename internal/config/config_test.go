package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test terrain defaults
	if cfg.Terrain.Resolution != 256 {
		t.Errorf("expected resolution 256, got %d", cfg.Terrain.Resolution)
	}
	if cfg.Terrain.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Terrain.Seed)
	}
	if cfg.Terrain.SiteCount != 50 {
		t.Errorf("expected site count 50, got %d", cfg.Terrain.SiteCount)
	}
	if cfg.Terrain.LandCutoff != 0.55 {
		t.Errorf("expected land cutoff 0.55, got %f", cfg.Terrain.LandCutoff)
	}
	if cfg.Terrain.MountainRangeHops != 20 {
		t.Errorf("expected range hops 20, got %d", cfg.Terrain.MountainRangeHops)
	}

	// Test output defaults
	if cfg.Output.Name != "terrain" {
		t.Errorf("expected name 'terrain', got %s", cfg.Output.Name)
	}
	if !cfg.Output.PNG {
		t.Error("expected png output to be enabled by default")
	}
	if cfg.Output.Raw {
		t.Error("expected raw output to be disabled by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Terrain.Validate(); err != nil {
		t.Errorf("default terrain config is invalid: %v", err)
	}
}

func TestDerivedSizes(t *testing.T) {
	c := DefaultTerrain()
	if c.LakeMin() != 512 {
		t.Errorf("expected derived lake min 512, got %d", c.LakeMin())
	}
	if c.IslandMin() != 256 {
		t.Errorf("expected derived island min 256, got %d", c.IslandMin())
	}
	if c.RiverStroke() != 4 {
		t.Errorf("expected derived river stroke 4, got %f", c.RiverStroke())
	}

	c.MinLakeSize, c.MinIslandSize, c.RiverWidth = 10, 20, 7
	if c.LakeMin() != 10 || c.IslandMin() != 20 || c.RiverStroke() != 7 {
		t.Errorf("explicit sizes not honored: %d %d %f", c.LakeMin(), c.IslandMin(), c.RiverStroke())
	}

	c.Resolution, c.RiverWidth = 32, 0
	if c.RiverStroke() != 2 {
		t.Errorf("expected minimum river stroke 2, got %f", c.RiverStroke())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*TerrainConfig)
		want   error
	}{
		{"zero resolution", func(c *TerrainConfig) { c.Resolution = 0 }, ErrInvalidResolution},
		{"negative resolution", func(c *TerrainConfig) { c.Resolution = -4 }, ErrInvalidResolution},
		{"huge resolution", func(c *TerrainConfig) { c.Resolution = MaxResolution + 1 }, ErrInvalidResolution},
		{"no sites", func(c *TerrainConfig) { c.SiteCount = 0 }, ErrInvalidSiteCount},
		{"more sites than pixels", func(c *TerrainConfig) { c.Resolution, c.SiteCount = 4, 17 }, ErrInvalidSiteCount},
		{"negative attempts", func(c *TerrainConfig) { c.MaxSiteAttempts = -1 }, ErrInvalidSiteCount},
		{"zero gain", func(c *TerrainConfig) { c.Gain = 0 }, ErrInvalidNoise},
		{"zero frequency", func(c *TerrainConfig) { c.Frequency = 0 }, ErrInvalidNoise},
		{"cutoff above one", func(c *TerrainConfig) { c.LandCutoff = 1.5 }, ErrInvalidThreshold},
		{"negative depth", func(c *TerrainConfig) { c.RiverDepth = -0.1 }, ErrInvalidThreshold},
		{"negative lake", func(c *TerrainConfig) { c.MinLakeSize = -1 }, ErrInvalidSize},
		{"negative rivers", func(c *TerrainConfig) { c.RiverCount = -1 }, ErrInvalidSize},
		{"negative sigma", func(c *TerrainConfig) { c.BlurSigma = -2 }, ErrInvalidBlur},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultTerrain()
			tt.modify(&c)
			err := c.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	c := DefaultTerrain()
	c.Resolution = 0
	c.Gain = -1
	c.BlurSigma = -1

	err := c.Validate()
	for _, want := range []error{ErrInvalidResolution, ErrInvalidNoise, ErrInvalidBlur} {
		if !errors.Is(err, want) {
			t.Errorf("expected joined error to contain %v, got %v", want, err)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
terrain:
  resolution: 512
  seed: 7
  site_count: 120
  min_lake_size: 300
  blur_sigma: 2.5

output:
  dir: "maps"
  raw: true

logging:
  level: "debug"
  log_file: "terragen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Terrain.Resolution != 512 {
		t.Errorf("expected resolution 512, got %d", cfg.Terrain.Resolution)
	}
	if cfg.Terrain.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Terrain.Seed)
	}
	if cfg.Terrain.SiteCount != 120 {
		t.Errorf("expected site count 120, got %d", cfg.Terrain.SiteCount)
	}
	if cfg.Terrain.MinLakeSize != 300 {
		t.Errorf("expected min lake size 300, got %d", cfg.Terrain.MinLakeSize)
	}
	if cfg.Terrain.BlurSigma != 2.5 {
		t.Errorf("expected blur sigma 2.5, got %f", cfg.Terrain.BlurSigma)
	}

	// Unset keys keep their defaults
	if cfg.Terrain.Gain != 2.0 {
		t.Errorf("expected default gain 2.0, got %f", cfg.Terrain.Gain)
	}

	if cfg.Output.Dir != "maps" {
		t.Errorf("expected output dir 'maps', got %s", cfg.Output.Dir)
	}
	if !cfg.Output.Raw {
		t.Error("expected raw to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "terragen.log" {
		t.Errorf("expected log file 'terragen.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
terrain:
  resolution: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/terragen.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create terragen.yaml in current directory
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("terrain:\n  seed: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find terragen.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "zero seed is an override",
			args: []string{"-seed", "0"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Seed != 0 {
					t.Errorf("expected seed 0, got %d", cfg.Terrain.Seed)
				}
			},
		},
		{
			name: "terrain flags",
			args: []string{"-resolution", "128", "-sites", "30", "-rivers", "3", "-ranges", "1", "-blur", "1.5"},
			verify: func(t *testing.T, cfg *Config) {
				tc := cfg.Terrain
				if tc.Resolution != 128 || tc.SiteCount != 30 || tc.RiverCount != 3 ||
					tc.MountainRangeCount != 1 || tc.BlurSigma != 1.5 {
					t.Errorf("terrain flags not applied: %+v", tc)
				}
			},
		},
		{
			name: "output flags",
			args: []string{"-out", "/tmp/maps", "-name", "isle", "-raw", "-overlay"},
			verify: func(t *testing.T, cfg *Config) {
				o := cfg.Output
				if o.Dir != "/tmp/maps" || o.Name != "isle" || !o.Raw || !o.Overlay {
					t.Errorf("output flags not applied: %+v", o)
				}
			},
		},
		{
			name: "unset flags keep defaults",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Seed != 42 {
					t.Errorf("expected default seed 42, got %d", cfg.Terrain.Seed)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			flags := RegisterFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}

			// Apply flags to default config
			cfg := Default()
			flags.apply(cfg)

			// Verify
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
terrain:
  resolution: 300
  site_count: 90
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", configPath, "-resolution", "400"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	// Load config
	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Resolution should be from flag (400), not file (300)
	if cfg.Terrain.Resolution != 400 {
		t.Errorf("expected resolution 400 from flag, got %d", cfg.Terrain.Resolution)
	}

	// Site count should be from file (90) since no flag override
	if cfg.Terrain.SiteCount != 90 {
		t.Errorf("expected site count 90 from file, got %d", cfg.Terrain.SiteCount)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Terrain.Seed = 99
	cfg.Output.Name = "saved"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Terrain != cfg.Terrain {
		t.Errorf("terrain config changed across save/load:\n got %+v\nwant %+v", loaded.Terrain, cfg.Terrain)
	}
	if loaded.Output.Name != "saved" {
		t.Errorf("expected name 'saved', got %s", loaded.Output.Name)
	}
}
