package libmotif

import (
	"math/rand"

	"github.com/netmotifs/gomotif/gomotif"
)

// NewSeededRand returns a deterministic rand for the given seed.
func NewSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomFixedOutDegree returns a pooled random simple digraph on n vertices
// where every vertex has exactly outDeg out-edges, targets drawn uniformly.
// Self-loops and duplicate targets are redrawn; outDeg must be < n.
//
// The in-degree sequence is not fixed (it concentrates around outDeg), which
// makes these graphs useful census and significance inputs: their motif
// content is nontrivial but fully determined by the seed behind rng.
func RandomFixedOutDegree(n, outDeg int, rng *rand.Rand) (*Graph, error) {
	if n < 1 || outDeg < 0 || outDeg >= n {
		return nil, gomotif.ErrBadVtxID
	}

	X := NewGraph(nil)
	X.InitEmpty(true, n)

	taken := make([]bool, n)
	for v := 0; v < n; v++ {
		taken[v] = true // no self-loop
		for placed := 0; placed < outDeg; {
			t := rng.Intn(n)
			if taken[t] {
				continue
			}
			taken[t] = true
			X.AddEdge(gomotif.VtxID(v), gomotif.VtxID(t))
			placed++
		}
		// reset for the next source vertex
		taken[v] = false
		for _, e := range X.Edges()[X.EdgeCount()-outDeg:] {
			taken[e.B] = false
		}
	}
	return X, nil
}
