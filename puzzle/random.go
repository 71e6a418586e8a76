package puzzle

import "math/rand"

// RandomSolvable returns a puzzle reached by n random legal moves from the
// solved configuration, never immediately reversing the previous move
// (spec scenario S4's construction method, supplemented here as a
// reusable helper per SPEC_FULL section 4.10).
func RandomSolvable(n int, rng *rand.Rand) Puzzle {
	p := Solved()
	lastZero := -1
	for i := 0; i < n; i++ {
		moves := p.LegalMoves()
		candidates := moves[:0:0]
		for _, m := range moves {
			if m != lastZero {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			candidates = moves
		}
		chosen := candidates[rng.Intn(len(candidates))]
		prevZero := p.ZeroPos()
		p.Apply(chosen)
		lastZero = prevZero
	}
	return p
}
