package motifpb

import (
	"sort"
)

// Clear resets def to an empty GraphDef, retaining allocations.
func (def *GraphDef) Clear() {
	def.AssignFrom(nil)
}

// Adds the given graph expr string to .GraphExprs[] if it is not already present.
// Returns true if the string was added.
// Pre + Post: GraphExprs[] is sorted.
func (def *GraphDef) TryAddGraphExpr(graphExprStr string) bool {

	// If duplicate, no-op and return false
	idx := sort.SearchStrings(def.GraphExprs, graphExprStr)
	if idx < len(def.GraphExprs) && def.GraphExprs[idx] == graphExprStr {
		return false
	}

	N := len(def.GraphExprs)
	if cap(def.GraphExprs) == N {
		capSz := 2 * N
		if capSz < 8 {
			capSz = 8
		}
		newBuf := make([]string, N, capSz)
		copy(newBuf, def.GraphExprs)
		def.GraphExprs = newBuf
	}

	def.GraphExprs = def.GraphExprs[:N+1]
	if idx < N {
		copy(def.GraphExprs[idx+1:], def.GraphExprs[idx:])
	}
	def.GraphExprs[idx] = graphExprStr
	return true
}

func (def *GraphDef) AssignFrom(src *GraphDef) {
	edges := def.Edges[:0]
	exprs := def.GraphExprs[:0]

	// Reuse allocs
	if src == nil {
		*def = GraphDef{}
		def.Edges = edges
		def.GraphExprs = exprs
	} else {
		*def = *src
		def.Edges = append(edges, src.Edges...)
		def.GraphExprs = append(exprs, src.GraphExprs...)
	}
}

// NumMotifsForOrder returns state.NumMotifs[order-1], tolerating short slices.
func (state *CatalogState) NumMotifsForOrder(order int32) int64 {
	if order < 1 || int(order) > len(state.NumMotifs) {
		return 0
	}
	return state.NumMotifs[order-1]
}

// BumpMotifCount grows NumMotifs as needed and increments the count for order.
func (state *CatalogState) BumpMotifCount(order int32) {
	for int(order) > len(state.NumMotifs) {
		state.NumMotifs = append(state.NumMotifs, 0)
	}
	state.NumMotifs[order-1]++
}
