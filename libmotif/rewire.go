package libmotif

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/netmotifs/gomotif/gomotif"
)

// rewireSweeps scales the swap attempt budget: one rewire pass proposes
// rewireSweeps * |E| swaps.
const rewireSweeps = 3

// erdosRedrawCap bounds endpoint re-draws per edge under the erdos model when
// self-loops or parallel edges are excluded; an exhausted edge keeps its old
// endpoints rather than spinning.
const erdosRedrawCap = 100

// Rewire randomizes X in place under the given null model, drawing all
// randomness from rng.
//
// The configuration models preserve every vertex's degree (in and out when
// directed) via double edge swaps; the erdos model preserves only the vertex
// and edge counts.  Swap proposals that would violate the model's self-loop or
// parallel-edge admissibility are skipped, so a rigid graph degrades to a
// light shuffle instead of failing.
func Rewire(X *Graph, cfg gomotif.RewireConfig, rng *rand.Rand) error {
	if X == nil {
		return gomotif.ErrNilGraph
	}

	switch cfg.Model {
	case gomotif.RewireConstrained:
		cfg.SelfLoops = false
		cfg.ParallelEdges = false
		fallthrough
	case gomotif.RewireConfiguration:
		rewireSwaps(X, cfg, rng)
	case gomotif.RewireErdos:
		rewireErdos(X, cfg, rng)
	default:
		return errors.Wrapf(gomotif.ErrBadShuffleModel, "model %d", cfg.Model)
	}
	return nil
}

// edgeTally tracks edge multiplicities so parallel-edge admissibility is O(1).
type edgeTally map[Edge]int32

func (tally edgeTally) key(X *Graph, a, b gomotif.VtxID) Edge {
	if !X.IsDirected() && a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

func (tally edgeTally) count(X *Graph, a, b gomotif.VtxID) int32 {
	return tally[tally.key(X, a, b)]
}

func (tally edgeTally) shift(X *Graph, a, b gomotif.VtxID, delta int32) {
	k := tally.key(X, a, b)
	n := tally[k] + delta
	if n <= 0 {
		delete(tally, k)
	} else {
		tally[k] = n
	}
}

func newEdgeTally(X *Graph) edgeTally {
	tally := make(edgeTally, X.EdgeCount())
	for _, e := range X.Edges() {
		tally.shift(X, e.A, e.B, 1)
	}
	return tally
}

// admissible reports whether adding edge (a,b) honors the model flags, given
// that the edge is not yet counted in the tally.
func admissible(X *Graph, tally edgeTally, cfg gomotif.RewireConfig, a, b gomotif.VtxID) bool {
	if !cfg.SelfLoops && a == b {
		return false
	}
	if !cfg.ParallelEdges && tally.count(X, a, b) > 0 {
		return false
	}
	return true
}

// rewireSwaps runs the double-edge-swap chain: pick two edges, exchange their
// heads.  (a1,b1),(a2,b2) -> (a1,b2),(a2,b1) preserves all degrees; for
// undirected graphs a coin flip also tries the (a1,a2),(b1,b2) pairing since
// endpoints carry no orientation.
func rewireSwaps(X *Graph, cfg gomotif.RewireConfig, rng *rand.Rand) {
	Ne := X.EdgeCount()
	if Ne < 2 {
		return
	}
	tally := newEdgeTally(X)

	for attempt := 0; attempt < rewireSweeps*Ne; attempt++ {
		i := rng.Intn(Ne)
		j := rng.Intn(Ne)
		if i == j {
			continue
		}
		e1, e2 := X.Edges()[i], X.Edges()[j]

		na1, nb1 := e1.A, e2.B
		na2, nb2 := e2.A, e1.B
		if !X.IsDirected() && rng.Intn(2) == 0 {
			na1, nb1 = e1.A, e2.A
			na2, nb2 = e1.B, e2.B
		}

		// Degenerate swap: nothing changes
		if na1 == e1.A && nb1 == e1.B && na2 == e2.A && nb2 == e2.B {
			continue
		}

		tally.shift(X, e1.A, e1.B, -1)
		tally.shift(X, e2.A, e2.B, -1)
		if admissible(X, tally, cfg, na1, nb1) {
			tally.shift(X, na1, nb1, 1)
			if admissible(X, tally, cfg, na2, nb2) {
				tally.shift(X, na2, nb2, 1)
				X.setEdge(i, na1, nb1)
				X.setEdge(j, na2, nb2)
				continue
			}
			tally.shift(X, na1, nb1, -1)
		}
		// Rejected: restore the tally, keep the edges
		tally.shift(X, e1.A, e1.B, 1)
		tally.shift(X, e2.A, e2.B, 1)
	}
}

// rewireErdos re-picks both endpoints of every edge uniformly at random.
func rewireErdos(X *Graph, cfg gomotif.RewireConfig, rng *rand.Rand) {
	Nv := X.VertexCount()
	if Nv == 0 {
		return
	}
	tally := newEdgeTally(X)

	for i, e := range X.Edges() {
		tally.shift(X, e.A, e.B, -1)

		placed := false
		for draw := 0; draw < erdosRedrawCap; draw++ {
			a := gomotif.VtxID(rng.Intn(Nv))
			b := gomotif.VtxID(rng.Intn(Nv))
			if !admissible(X, tally, cfg, a, b) {
				continue
			}
			tally.shift(X, a, b, 1)
			X.setEdge(i, a, b)
			placed = true
			break
		}
		if !placed {
			tally.shift(X, e.A, e.B, 1) // keep the old edge
		}
	}
}
