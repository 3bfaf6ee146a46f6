package raster

// FloodFill recolors the 4-connected region of samples equal to old that
// contains (x, y) to new and returns the number of recolored samples.
//
// The fill is iterative: each popped seed is widened to its full horizontal
// run, and at most one seed is pushed per contiguous run of old samples
// directly above and below, which keeps the stack proportional to the
// region's perimeter rather than its area.
//
// It returns 0 when old == new or (x, y) does not hold old.
func (g *Grid) FloodFill(x, y int, old, new uint8) int {
	if old == new || !g.InBounds(x, y) || g.Pix[y*g.W+x] != old {
		return 0
	}

	size := 0
	stack := make([]int, 0, 64)
	stack = push(stack, x, y)

	for len(stack) > 0 {
		stack, x, y = pop(stack)
		row := y * g.W
		if g.Pix[row+x] != old {
			continue
		}

		x1 := x
		for x1 >= 0 && g.Pix[row+x1] == old {
			x1--
		}
		x1++

		above, below := false, false
		for x1 < g.W && g.Pix[row+x1] == old {
			g.Pix[row+x1] = new
			size++

			if y > 0 {
				up := g.Pix[row-g.W+x1] == old
				if !above && up {
					stack = push(stack, x1, y-1)
					above = true
				} else if above && !up {
					above = false
				}
			}

			if y < g.H-1 {
				down := g.Pix[row+g.W+x1] == old
				if !below && down {
					stack = push(stack, x1, y+1)
					below = true
				} else if below && !down {
					below = false
				}
			}

			x1++
		}
	}

	return size
}

func push(stack []int, x, y int) []int {
	return append(stack, x, y)
}

func pop(stack []int) ([]int, int, int) {
	n := len(stack)
	return stack[:n-2], stack[n-2], stack[n-1]
}
