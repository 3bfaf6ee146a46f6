package partition

import (
	mathx "github.com/Faultbox/terragen/pkg/math"
	"github.com/Faultbox/terragen/pkg/raster"
	"github.com/Faultbox/terragen/pkg/rng"
)

// attemptsPerSite is the rejection budget per requested site when the
// caller does not set one.
const attemptsPerSite = 64

// SampleSites draws up to n points uniformly over the mask, keeping only
// those whose pixel equals land. It gives up after maxAttempts draws
// (maxAttempts <= 0 means attemptsPerSite*n) and returns whatever it found,
// which may be fewer than n. The second result is the number of draws made.
func SampleSites(mask *raster.Grid, land uint8, n, maxAttempts int, r *rng.RNG) ([]mathx.Vec2, int) {
	if n <= 0 {
		return nil, 0
	}
	if maxAttempts <= 0 {
		maxAttempts = attemptsPerSite * n
	}

	fw, fh := float64(mask.W), float64(mask.H)
	sites := make([]mathx.Vec2, 0, n)
	attempts := 0
	for len(sites) < n && attempts < maxAttempts {
		attempts++
		p := mathx.Vec2{X: r.Range(0, fw), Y: r.Range(0, fh)}
		x, y := p.Pixel()
		if mask.At(x, y) != land {
			continue
		}
		sites = append(sites, p)
	}
	return sites, attempts
}
