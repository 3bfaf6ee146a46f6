package partition

import (
	mathx "github.com/Faultbox/terragen/pkg/math"
	"github.com/Faultbox/terragen/pkg/rng"
)

// Walk takes up to hops random steps over the neighbor graph from start,
// choosing uniformly among the real neighbors of the current cell. There is
// no visited set, so cells may repeat. The walk ends early, with the
// stopping cell appended and true returned, as soon as it steps into a cell
// for which stop reports true. It also ends at a cell with no neighbors.
func (p *Partition) Walk(start, hops int, stop func(cell int) bool, r *rng.RNG) ([]int, bool) {
	if start < 0 || start >= len(p.Cells) {
		return nil, false
	}
	path := make([]int, 1, max(hops, 0)+1)
	path[0] = start

	cur := start
	for range hops {
		nbrs := p.Neighbors(cur)
		if len(nbrs) == 0 {
			return path, false
		}
		cur = nbrs[r.IntN(len(nbrs))]
		path = append(path, cur)
		if stop != nil && stop(cur) {
			return path, true
		}
	}
	return path, false
}

// IsKind returns a stop predicate matching sites of kind k.
func (p *Partition) IsKind(k Kind) func(int) bool {
	return func(cell int) bool {
		return p.Sites[cell].Kind == k
	}
}

// Centers maps a path of cell indices to their site positions.
func (p *Partition) Centers(path []int) []mathx.Vec2 {
	out := make([]mathx.Vec2, len(path))
	for i, c := range path {
		out[i] = p.Sites[c].Pos
	}
	return out
}
