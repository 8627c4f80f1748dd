package libmotif_test

import (
	"testing"

	"github.com/netmotifs/gomotif/gomotif"
	"github.com/netmotifs/gomotif/libmotif"
)

func TestEnumMotifClasses(t *testing.T) {
	cases := []struct {
		k        int
		directed bool
		classes  int
	}{
		{1, false, 1},
		{2, false, 2},  // no edge, one edge
		{3, false, 4},  // empty, one edge, path, triangle
		{4, false, 11}, // the 11 simple graphs on 4 unlabeled vertices
		{2, true, 3},   // empty, single arc, reciprocal pair
		{3, true, 16},  // the 16 simple digraphs on 3 unlabeled vertices
	}

	for _, tc := range cases {
		stream, err := libmotif.EnumMotifClasses(tc.k, tc.directed)
		if err != nil {
			t.Fatal(err)
		}
		got := stream.PullAll()
		if got != tc.classes {
			t.Fatalf("k=%d directed=%v: got %d classes, want %d", tc.k, tc.directed, got, tc.classes)
		}
	}
}

func TestEnumMotifClassesDistinct(t *testing.T) {
	stream, err := libmotif.EnumMotifClasses(4, false)
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	for X := range stream.Outlet {
		if X.VertexCount() != 4 || X.IsDirected() {
			t.Fatal("wrong graph shape")
		}
		enc, err := X.AppendCanonicalTo(nil)
		if err != nil {
			t.Fatal(err)
		}
		if seen[string(enc)] {
			t.Fatal("class emitted twice")
		}
		seen[string(enc)] = true
		X.Reclaim()
	}
	if len(seen) != 11 {
		t.Fatalf("got %d distinct classes", len(seen))
	}
}

func TestEnumMotifClassesBounds(t *testing.T) {
	if _, err := libmotif.EnumMotifClasses(0, false); err != gomotif.ErrMotifTooLarge {
		t.Fatalf("got %v", err)
	}
	if _, err := libmotif.EnumMotifClasses(gomotif.MaxMotifVtx+1, false); err != gomotif.ErrMotifTooLarge {
		t.Fatalf("got %v", err)
	}
	// Directed k=6 needs 30 edge slots: over the walkable cap
	if _, err := libmotif.EnumMotifClasses(6, true); err != gomotif.ErrMotifTooLarge {
		t.Fatalf("got %v", err)
	}
}
