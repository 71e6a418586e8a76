package puzzle

import (
	"sync"

	"github.com/ajroetker/puzzle24/tileset"
)

const size = tileset.Size

var (
	neighborOnce  sync.Once
	neighborTable [N][]int
)

func buildNeighbors() {
	for pos := 0; pos < N; pos++ {
		r, c := pos/size, pos%size
		var adj []int
		if r > 0 {
			adj = append(adj, pos-size)
		}
		if r < size-1 {
			adj = append(adj, pos+size)
		}
		if c > 0 {
			adj = append(adj, pos-1)
		}
		if c < size-1 {
			adj = append(adj, pos+1)
		}
		neighborTable[pos] = adj
	}
}

// Neighbors returns the grid positions orthogonally adjacent to pos, in a
// fixed (up, down, left, right) order, built once lazily per REDESIGN
// FLAGS' once-initialised-cache guidance.
func Neighbors(pos int) []int {
	neighborOnce.Do(buildNeighbors)
	return neighborTable[pos]
}
