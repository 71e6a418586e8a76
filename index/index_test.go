package index

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/puzzle24/puzzle"
	"github.com/ajroetker/puzzle24/tileset"
)

func TestComputeInvertRoundTripWithZero(t *testing.T) {
	ts := tileset.Of(0, 1, 2, 5, 6)
	aux := BuildAux(ts)

	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		p := puzzle.RandomSolvable(15, rng)
		idx := Compute(aux, &p)

		if idx.Pidx < 0 || idx.Pidx >= aux.NPerm {
			t.Fatalf("pidx %d out of [0,%d)", idx.Pidx, aux.NPerm)
		}
		if idx.Maprank < 0 || idx.Maprank >= aux.NMaprank {
			t.Fatalf("maprank %d out of [0,%d)", idx.Maprank, aux.NMaprank)
		}
		if idx.Eqidx < 0 || idx.Eqidx >= aux.NEqClass(idx.Maprank) {
			t.Fatalf("eqidx %d out of [0,%d)", idx.Eqidx, aux.NEqClass(idx.Maprank))
		}

		inverted := Invert(aux, idx)
		idx2 := Compute(aux, &inverted)
		if idx2 != idx {
			t.Fatalf("compute(invert(compute(p))) = %+v, want %+v", idx2, idx)
		}
	}
}

func TestComputeInvertRoundTripWithoutZero(t *testing.T) {
	ts := tileset.Of(1, 2, 5, 6)
	aux := BuildAux(ts)

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		p := puzzle.RandomSolvable(15, rng)
		idx := Compute(aux, &p)
		if idx.Eqidx != -1 {
			t.Fatalf("eqidx = %d, want -1 when zero not in tileset", idx.Eqidx)
		}

		inverted := Invert(aux, idx)
		idx2 := Compute(aux, &inverted)
		if idx2 != idx {
			t.Fatalf("round trip mismatch: %+v != %+v", idx2, idx)
		}
	}
}

func TestInvertPlacesZeroAtSmallestInClass(t *testing.T) {
	ts := tileset.Of(0, 1, 2)
	aux := BuildAux(ts)
	idx := Index{Maprank: 0, Pidx: 0, Eqidx: 0}
	p := Invert(aux, idx)
	zeroPos := p.ZeroPos()
	classes := aux.eqTable[0]
	for pos := 0; pos < zeroPos; pos++ {
		if int(classes.eq[pos]) == idx.Eqidx {
			t.Fatalf("position %d has the same class but is smaller than chosen zero pos %d", pos, zeroPos)
		}
	}
}

func TestSolvedConfigurationIndex(t *testing.T) {
	ts := tileset.Of(0, 1, 2, 3)
	aux := BuildAux(ts)
	p := puzzle.Solved()
	idx := Compute(aux, &p)
	back := Invert(aux, idx)
	if back.ZeroPos() != p.ZeroPos() {
		t.Fatalf("zero position mismatch after round trip: %d != %d", back.ZeroPos(), p.ZeroPos())
	}
	for _, tile := range []int{1, 2, 3} {
		if back.PosOf(tile) != p.PosOf(tile) {
			t.Fatalf("tile %d position mismatch: %d != %d", tile, back.PosOf(tile), p.PosOf(tile))
		}
	}
}
