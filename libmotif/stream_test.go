package libmotif_test

import (
	"strings"
	"testing"

	"github.com/netmotifs/gomotif/gomotif"
	"github.com/netmotifs/gomotif/libmotif"
)

func TestStreamDropDupes(t *testing.T) {
	stream := libmotif.NewMotifStream()

	go func() {
		for _, expr := range []string{
			"1-2-3,3-1",
			"2-3-1,1-2", // relabeled triangle
			"1-2-3",
			"3-2-1", // relabeled path
			"1-2-3,3-1",
		} {
			X := mustGraph(t, expr)
			stream.Outlet <- X
		}
		stream.Close()
	}()

	if got := stream.DropDupes().PullAll(); got != 2 {
		t.Fatalf("got %d distinct classes", got)
	}
}

func TestStreamSelect(t *testing.T) {
	stream := libmotif.NewMotifStream()
	go func() {
		for _, expr := range []string{"1-2", "1-2-3", "1-2-3-4", "1-2;1-2"} {
			stream.Outlet <- mustGraph(t, expr)
		}
		stream.Close()
	}()

	sel := gomotif.DefaultMotifSelector
	sel.Min.NumVerts = 3
	sel.Max.NumVerts = 4
	sel.Max.NumParts = 1

	// "1-2" is under order, the two-part graph is over the parts cap
	if got := stream.SelectFromStream(sel).PullAll(); got != 2 {
		t.Fatalf("got %d selected", got)
	}
}

func TestStreamCensusClasses(t *testing.T) {
	X := mustGraph(t, "1-2-3,3-1,3-4")
	defer X.Reclaim()

	cr, err := libmotif.Census(X, 3, nil, gomotif.CensusOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if got := libmotif.StreamCensusClasses(cr).PullAll(); got != 2 {
		t.Fatalf("got %d classes", got)
	}
	if cr.Classes != nil {
		t.Fatal("stream should take ownership of the classes")
	}
}

type closableBuf struct {
	strings.Builder
}

func (b *closableBuf) Close() error { return nil }

func TestStreamPrint(t *testing.T) {
	out := &closableBuf{}

	X := mustGraph(t, "1>2>3>1")
	defer X.Reclaim()

	count := libmotif.StreamGraph(X).Print(out, gomotif.PrintOpts{
		Label: "T3",
		Graph: true,
	}).PullAll()

	if count != 1 {
		t.Fatalf("got %d", count)
	}
	str := out.String()
	if !strings.Contains(str, "T3") || !strings.Contains(str, "v=3") || !strings.Contains(str, ">") {
		t.Fatalf("got %q", str)
	}
}
