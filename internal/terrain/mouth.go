package terrain

import (
	"container/heap"

	"go.uber.org/zap"

	mathx "github.com/Faultbox/terragen/pkg/math"
)

const (
	// mouthBudgetDiv bounds the mouth search to W*H/mouthBudgetDiv expanded
	// pixels, but never below minMouthBudget.
	mouthBudgetDiv = 4
	minMouthBudget = 1024
	// elevationWeight makes climbing one elevation step cost 1/elevationWeight.
	elevationWeight = 32.0
)

// mouthNode represents a pixel in the mouth search.
type mouthNode struct {
	X, Y   int
	G      float64 // Cost from start
	Parent *mouthNode
	Index  int // Index in heap
}

// mouthHeap implements a priority queue ordered by cost.
type mouthHeap []*mouthNode

func (h mouthHeap) Len() int           { return len(h) }
func (h mouthHeap) Less(i, j int) bool { return h[i].G < h[j].G }
func (h mouthHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].Index = i
	h[j].Index = j
}

func (h *mouthHeap) Push(x any) {
	n := len(*h)
	node := x.(*mouthNode)
	node.Index = n
	*h = append(*h, node)
}

func (h *mouthHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*h = old[0 : n-1]
	return node
}

// Directions: 8-way movement, diagonals at odd indices.
var mouthDirections = [8][2]int{
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
}

// findMouth runs a uniform-cost search from the river's last point to the
// cheapest reachable water pixel, where entering a pixel costs more the
// higher it is. It returns the pixels after from up to and including the
// water pixel, or nil when the search budget runs out first.
func (g *generator) findMouth(from mathx.Vec2) []mathx.Vec2 {
	sx, sy := from.Pixel()
	sx, sy = clampInt(sx, 0, g.w-1), clampInt(sy, 0, g.h-1)
	if g.land.At(sx, sy) == Water {
		return nil
	}

	openSet := &mouthHeap{}
	heap.Init(openSet)
	closedSet := make(map[int]bool)
	nodeMap := make(map[int]*mouthNode)

	start := &mouthNode{X: sx, Y: sy}
	heap.Push(openSet, start)
	nodeMap[g.land.Index(sx, sy)] = start

	// Diagonal movement cost (sqrt(2) ~= 1.414)
	const diagonalCost, straightCost = 1.414, 1.0

	budget := max(minMouthBudget, g.w*g.h/mouthBudgetDiv)
	for expanded := 0; openSet.Len() > 0 && expanded < budget; expanded++ {
		current := heap.Pop(openSet).(*mouthNode)
		if g.land.At(current.X, current.Y) == Water {
			return mouthPath(current)
		}
		closedSet[g.land.Index(current.X, current.Y)] = true

		for i, dir := range mouthDirections {
			nx, ny := current.X+dir[0], current.Y+dir[1]
			if !g.land.InBounds(nx, ny) {
				continue
			}
			k := g.land.Index(nx, ny)
			if closedSet[k] {
				continue
			}

			step := straightCost
			if i%2 == 1 {
				step = diagonalCost
			}
			cost := current.G + step*(1+float64(g.elev.At(nx, ny))/elevationWeight)

			neighbor, exists := nodeMap[k]
			if !exists {
				neighbor = &mouthNode{X: nx, Y: ny, G: cost, Parent: current}
				nodeMap[k] = neighbor
				heap.Push(openSet, neighbor)
			} else if cost < neighbor.G {
				neighbor.G = cost
				neighbor.Parent = current
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	g.log.Debug("no river mouth within budget",
		zap.Int("x", sx),
		zap.Int("y", sy),
		zap.Int("budget", budget))
	return nil
}

// mouthPath walks parents back to the start, which is left out.
func mouthPath(node *mouthNode) []mathx.Vec2 {
	var path []mathx.Vec2
	for ; node.Parent != nil; node = node.Parent {
		path = append(path, mathx.Vec2{X: float64(node.X), Y: float64(node.Y)})
	}
	// Reverse path (it's built from goal to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
