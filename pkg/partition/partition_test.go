package partition

import (
	"math"
	"testing"

	mathx "github.com/Faultbox/terragen/pkg/math"
	"github.com/Faultbox/terragen/pkg/raster"
	"github.com/Faultbox/terragen/pkg/rng"
)

func landMask(w, h int) *raster.Grid {
	g := raster.NewGrid(w, h)
	g.Fill(255)
	return g
}

func randomPartition(t *testing.T, seed int64, n, w, h int) *Partition {
	t.Helper()
	sites, _ := SampleSites(landMask(w, h), 255, n, 0, rng.New(seed))
	p, err := Build(sites, w, h)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func insideCell(c *Cell, pt mathx.Vec2) bool {
	for i, a := range c.Vertices {
		b := c.Vertices[(i+1)%len(c.Vertices)]
		if b.Sub(a).Cross(pt.Sub(a)) < -1e-9 {
			return false
		}
	}
	return true
}

func TestBuildEmpty(t *testing.T) {
	p, err := Build(nil, 64, 64)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Cells) != 0 || len(p.Sites) != 0 {
		t.Errorf("empty input produced %d cells", len(p.Cells))
	}
}

func TestBuildSingleSite(t *testing.T) {
	p, err := Build([]mathx.Vec2{{X: 20, Y: 30}}, 64, 48)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	c := &p.Cells[0]
	if c.Degenerate() {
		t.Fatal("single site cell is degenerate")
	}
	if math.Abs(c.Area()-64*48) > 1e-6 {
		t.Errorf("area = %v, want %v", c.Area(), 64*48)
	}
	for i, n := range c.Neighbors {
		if n != NoNeighbor {
			t.Errorf("segment %d neighbor = %d, want NoNeighbor", i, n)
		}
	}
}

func TestBuildTilesFrame(t *testing.T) {
	const w, h = 200, 120
	p := randomPartition(t, 3, 60, w, h)

	total := 0.0
	for i := range p.Cells {
		c := &p.Cells[i]
		if c.Degenerate() {
			t.Fatalf("cell %d is degenerate", i)
		}
		if a := c.Area(); a <= 0 {
			t.Fatalf("cell %d has area %v", i, a)
		}
		for _, v := range c.Vertices {
			if v.X < -1e-9 || v.Y < -1e-9 || v.X > w+1e-9 || v.Y > h+1e-9 {
				t.Fatalf("cell %d vertex %v outside the frame", i, v)
			}
		}
		if !insideCell(c, p.Sites[i].Pos) {
			t.Errorf("site %d at %v lies outside its own cell", i, p.Sites[i].Pos)
		}
		total += c.Area()
	}
	if math.Abs(total-w*h) > 1e-6*w*h {
		t.Errorf("cells cover %v square pixels, want %v", total, w*h)
	}
}

func TestBuildNeighborsSymmetric(t *testing.T) {
	p := randomPartition(t, 9, 40, 128, 128)
	for i := range p.Cells {
		nbrs := p.Neighbors(i)
		if len(nbrs) == 0 {
			t.Errorf("cell %d has no neighbors", i)
		}
		for _, j := range nbrs {
			if !contains(p.Neighbors(j), i) {
				t.Errorf("cell %d lists %d, but not the other way round", i, j)
			}
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{Inland, "inland"},
		{Coastal, "coastal"},
		{Mountain, "mountain"},
		{Kind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
