package libmotif

import (
	"bytes"

	"github.com/netmotifs/gomotif/gomotif"
)

// Isomorphic reports whether A and B are isomorphic as multigraphs: some vertex
// bijection carries every edge of A (with multiplicity, loops included) onto B.
//
// Only motif-order graphs (<= MaxMotifVtx vertices) are accepted.  Order, size,
// directedness and signature prefilters reject most non-isomorphic pairs before
// the permutation search runs.
func Isomorphic(A, B *Graph) (bool, error) {
	if A == nil || B == nil {
		return false, gomotif.ErrNilGraph
	}
	if A.VertexCount() > gomotif.MaxMotifVtx || B.VertexCount() > gomotif.MaxMotifVtx {
		return false, gomotif.ErrMotifTooLarge
	}

	if A.IsDirected() != B.IsDirected() ||
		A.VertexCount() != B.VertexCount() ||
		A.EdgeCount() != B.EdgeCount() {
		return false, nil
	}

	var bufA, bufB [SignatureBufSz]byte
	sigA := A.AppendSignatureTo(bufA[:0])
	sigB := B.AppendSignatureTo(bufB[:0])
	if !bytes.Equal(sigA, sigB) {
		return false, nil
	}

	return isoSearch(A, B) != nil, nil
}

// isoSearch runs degree-pruned backtracking, mapping A's vertices onto B's one
// at a time and checking adjacency multiplicities against already-mapped vertices.
// On success the A -> B vertex bijection is returned; nil means no isomorphism.
func isoSearch(A, B *Graph) []int8 {
	Nv := A.VertexCount()
	mapAB := make([]int8, Nv) // A vtx -> B vtx
	if Nv == 0 {
		return mapAB
	}

	adjA, _ := A.denseAdj()
	adjB, _ := B.denseAdj()

	type degKey struct{ out, in int32 }
	keyOf := func(X *Graph, v gomotif.VtxID) degKey {
		return degKey{
			out: X.Degree(v, gomotif.DegreeOut),
			in:  X.Degree(v, gomotif.DegreeIn),
		}
	}
	keysA := make([]degKey, Nv)
	keysB := make([]degKey, Nv)
	for v := 0; v < Nv; v++ {
		keysA[v] = keyOf(A, gomotif.VtxID(v))
		keysB[v] = keyOf(B, gomotif.VtxID(v))
	}

	used := make([]bool, Nv)

	var tryMap func(av int) bool
	tryMap = func(av int) bool {
		if av == Nv {
			return true
		}
		for bv := 0; bv < Nv; bv++ {
			if used[bv] || keysA[av] != keysB[bv] {
				continue
			}
			if adjA[av*Nv+av] != adjB[bv*Nv+bv] {
				continue
			}
			ok := true
			for pv := 0; pv < av; pv++ {
				pb := int(mapAB[pv])
				if adjA[av*Nv+pv] != adjB[bv*Nv+pb] || adjA[pv*Nv+av] != adjB[pb*Nv+bv] {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			mapAB[av] = int8(bv)
			used[bv] = true
			if tryMap(av + 1) {
				return true
			}
			used[bv] = false
		}
		return false
	}

	if tryMap(0) {
		return mapAB
	}
	return nil
}
