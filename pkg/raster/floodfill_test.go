package raster

import "testing"

// gridFromRows builds a grid from rows of '#' (255) and '.' (0).
func gridFromRows(rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.Pix[y*g.W+x] = 255
			}
		}
	}
	return g
}

func TestFloodFillSize(t *testing.T) {
	g := gridFromRows(
		"..#..",
		"..#..",
		"###..",
		".....",
	)
	if n := g.FloodFill(0, 0, 0, 7); n != 4 {
		t.Errorf("fill size = %d, want 4", n)
	}
	if g.At(1, 1) != 7 || g.At(3, 0) != 0 {
		t.Error("fill leaked across the wall")
	}
	if n := g.FloodFill(4, 3, 0, 7); n != 11 {
		t.Errorf("second fill size = %d, want 11", n)
	}
}

func TestFloodFillNoOp(t *testing.T) {
	g := gridFromRows("#.", ".#")
	if n := g.FloodFill(0, 0, 255, 255); n != 0 {
		t.Errorf("old == new returned %d", n)
	}
	if n := g.FloodFill(1, 0, 255, 1); n != 0 {
		t.Errorf("non-matching seed returned %d", n)
	}
	if n := g.FloodFill(5, 5, 0, 1); n != 0 {
		t.Errorf("out of range seed returned %d", n)
	}
	if g.Count(1) != 0 {
		t.Error("no-op fills modified the grid")
	}
}

func TestFloodFillDiagonalNotConnected(t *testing.T) {
	g := gridFromRows(
		"#.",
		".#",
	)
	if n := g.FloodFill(0, 0, 255, 1); n != 1 {
		t.Errorf("diagonal fill size = %d, want 1", n)
	}
}

func TestFloodFillSpiral(t *testing.T) {
	g := gridFromRows(
		"........",
		".######.",
		".#....#.",
		".#.##.#.",
		".#.#..#.",
		".#.####.",
		".#......",
		".#######",
	)
	want := g.Count(0)
	if n := g.FloodFill(0, 0, 0, 9); n != want {
		t.Errorf("spiral fill size = %d, want %d", n, want)
	}
}

func TestFloodFillLarge(t *testing.T) {
	g := NewGrid(512, 512)
	if n := g.FloodFill(100, 100, 0, 1); n != 512*512 {
		t.Errorf("fill size = %d, want %d", n, 512*512)
	}
}
