package libmotif

import (
	"encoding/binary"
	"sort"

	"github.com/netmotifs/gomotif/gomotif"
)

// SignatureBufSz is the size to pre-allocate for a signature scratch buffer.
const SignatureBufSz = 64

// appendSignatureTo appends the degree signature of X to the given buffer.
//
// The signature is the sparse in-degree histogram followed by the sparse
// out-degree histogram, each a varint (degree, count) pair sequence in
// ascending degree order.  An undirected graph has no in side, so it emits
// the single pair (0, V), keeping signatures directedness-aware.
//
// Isomorphic graphs always produce identical signatures, so a signature
// mismatch proves non-isomorphism.  The converse requires an exact test.
func appendSignatureTo(X *Graph, in []byte) gomotif.Signature {
	var buf [gomotif.MaxMotifVtx]int32
	degs := buf[:0]

	degs = X.DegreeSequence(gomotif.DegreeIn, degs)
	in = appendDegreeHisto(in, degs)

	degs = X.DegreeSequence(gomotif.DegreeOut, degs[:0])
	in = appendDegreeHisto(in, degs)

	return in
}

func appendDegreeHisto(in []byte, degs []int32) []byte {
	sort.Slice(degs, func(i, j int) bool { return degs[i] < degs[j] })

	N := len(degs)
	for i := 0; i < N; {
		j := i + 1
		for j < N && degs[j] == degs[i] {
			j++
		}
		in = binary.AppendUvarint(in, uint64(degs[i]))
		in = binary.AppendUvarint(in, uint64(j-i))
		i = j
	}
	return in
}
