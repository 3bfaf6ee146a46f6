package config

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors. Validate wraps one of these per offending field.
var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrInvalidSiteCount  = errors.New("invalid site count")
	ErrInvalidNoise      = errors.New("invalid noise parameters")
	ErrInvalidThreshold  = errors.New("invalid threshold")
	ErrInvalidSize       = errors.New("invalid size")
	ErrInvalidBlur       = errors.New("invalid blur sigma")
)

// MaxResolution bounds the map size.
const MaxResolution = 8192

// Validate reports every structurally infeasible parameter. The returned
// error joins one wrapped sentinel per problem.
func (c TerrainConfig) Validate() error {
	var errs []error
	bad := func(sentinel error, field string, v any) {
		errs = append(errs, fmt.Errorf("%w: %s = %v", sentinel, field, v))
	}

	if c.Resolution <= 0 || c.Resolution > MaxResolution {
		bad(ErrInvalidResolution, "resolution", c.Resolution)
	}
	if c.SiteCount < 1 || (c.Resolution > 0 && c.SiteCount > c.Resolution*c.Resolution) {
		bad(ErrInvalidSiteCount, "site_count", c.SiteCount)
	}
	if c.MaxSiteAttempts < 0 {
		bad(ErrInvalidSiteCount, "max_site_attempts", c.MaxSiteAttempts)
	}

	if !positive(c.Frequency) {
		bad(ErrInvalidNoise, "frequency", c.Frequency)
	}
	if !positive(c.Lacunarity) {
		bad(ErrInvalidNoise, "lacunarity", c.Lacunarity)
	}
	if !positive(c.Gain) {
		bad(ErrInvalidNoise, "gain", c.Gain)
	}
	if !positive(c.RidgeFrequency) {
		bad(ErrInvalidNoise, "ridge_frequency", c.RidgeFrequency)
	}

	if !unit(c.LandCutoff) {
		bad(ErrInvalidThreshold, "land_cutoff", c.LandCutoff)
	}
	if !unit(c.MountainThreshold) {
		bad(ErrInvalidThreshold, "mountain_threshold", c.MountainThreshold)
	}
	if c.RiverDepth < 0 || c.RiverDepth > 1 || math.IsNaN(c.RiverDepth) {
		bad(ErrInvalidThreshold, "river_depth", c.RiverDepth)
	}

	if c.MinLakeSize < 0 {
		bad(ErrInvalidSize, "min_lake_size", c.MinLakeSize)
	}
	if c.MinIslandSize < 0 {
		bad(ErrInvalidSize, "min_island_size", c.MinIslandSize)
	}
	if c.RiverCount < 0 || c.RiverHops < 0 {
		bad(ErrInvalidSize, "river_count/river_hops", fmt.Sprintf("%d/%d", c.RiverCount, c.RiverHops))
	}
	if c.MountainRangeCount < 0 || c.MountainRangeHops < 0 {
		bad(ErrInvalidSize, "mountain_range_count/mountain_range_hops",
			fmt.Sprintf("%d/%d", c.MountainRangeCount, c.MountainRangeHops))
	}
	if c.RiverWidth < 0 || math.IsNaN(c.RiverWidth) || math.IsInf(c.RiverWidth, 0) {
		bad(ErrInvalidSize, "river_width", c.RiverWidth)
	}
	if c.MountainHeight < 0 || math.IsNaN(c.MountainHeight) || math.IsInf(c.MountainHeight, 0) {
		bad(ErrInvalidSize, "mountain_height", c.MountainHeight)
	}
	if c.RiverMeander < 0 || math.IsNaN(c.RiverMeander) || math.IsInf(c.RiverMeander, 0) {
		bad(ErrInvalidSize, "river_meander", c.RiverMeander)
	}

	if c.BlurSigma < 0 || math.IsNaN(c.BlurSigma) || math.IsInf(c.BlurSigma, 0) {
		bad(ErrInvalidBlur, "blur_sigma", c.BlurSigma)
	}

	return errors.Join(errs...)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}
