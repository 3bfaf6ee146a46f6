package partition

import (
	"testing"

	"github.com/Faultbox/terragen/pkg/raster"
	"github.com/Faultbox/terragen/pkg/rng"
)

func TestSampleSitesOnLand(t *testing.T) {
	mask := raster.NewGrid(64, 64)
	for y := 0; y < 64; y++ {
		for x := 32; x < 64; x++ {
			mask.Plot(x, y, 255)
		}
	}

	sites, attempts := SampleSites(mask, 255, 30, 0, rng.New(1))
	if len(sites) != 30 {
		t.Fatalf("placed %d sites, want 30", len(sites))
	}
	if attempts < 30 {
		t.Errorf("attempts = %d, want at least 30", attempts)
	}
	for _, s := range sites {
		x, y := s.Pixel()
		if mask.At(x, y) != 255 {
			t.Errorf("site %v is not on land", s)
		}
	}
}

func TestSampleSitesCapped(t *testing.T) {
	water := raster.NewGrid(32, 32)
	sites, attempts := SampleSites(water, 255, 10, 500, rng.New(1))
	if len(sites) != 0 {
		t.Errorf("placed %d sites on an all-water mask", len(sites))
	}
	if attempts != 500 {
		t.Errorf("attempts = %d, want 500", attempts)
	}
}

func TestSampleSitesDeterministic(t *testing.T) {
	a, _ := SampleSites(landMask(50, 50), 255, 20, 0, rng.New(77))
	b, _ := SampleSites(landMask(50, 50), 255, 20, 0, rng.New(77))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("site %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSampleSitesNone(t *testing.T) {
	if sites, n := SampleSites(landMask(8, 8), 255, 0, 0, rng.New(1)); sites != nil || n != 0 {
		t.Errorf("n=0 returned %d sites after %d attempts", len(sites), n)
	}
}
