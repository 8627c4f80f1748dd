package libmotif_test

import (
	"bytes"
	"testing"

	"github.com/netmotifs/gomotif/gomotif"
)

func sigOf(t *testing.T, expr string) gomotif.Signature {
	t.Helper()
	X := mustGraph(t, expr)
	defer X.Reclaim()
	return X.AppendSignatureTo(nil)
}

func TestSignatures(t *testing.T) {

	// Isomorphic graphs always agree
	if !bytes.Equal(sigOf(t, "1-2-3,3-1"), sigOf(t, "2-3-1,1-2")) {
		t.Fatal("relabeled triangles should share a signature")
	}
	if !bytes.Equal(sigOf(t, "1>2>3>1"), sigOf(t, "3>1>2>3")) {
		t.Fatal("relabeled directed triangles should share a signature")
	}

	// Degree-distinguishable classes never do
	if bytes.Equal(sigOf(t, "1-2-3-4,4-1"), sigOf(t, "1-2-3-4")) {
		t.Fatal("cycle vs path degrees differ")
	}
	if bytes.Equal(sigOf(t, "1>2,1>3"), sigOf(t, "1>2>3")) {
		t.Fatal("out-star vs directed path")
	}

	// Directedness is part of the signature
	if bytes.Equal(sigOf(t, "1-2"), sigOf(t, "1>2")) {
		t.Fatal("an undirected edge is not a directed edge")
	}

	// A signature match does not prove isomorphism: C6 vs two triangles are
	// both 2-regular on 6 vertices.
	if !bytes.Equal(sigOf(t, "1-2-3-4-5-6,6-1"), sigOf(t, "1-2-3,3-1;1-2-3,3-1")) {
		t.Fatal("2-regular graphs on 6 vertices share a signature")
	}
}
