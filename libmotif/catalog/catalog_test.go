package catalog_test

import (
	"os"
	"path"
	"testing"

	"github.com/netmotifs/gomotif/gomotif"
	"github.com/netmotifs/gomotif/libmotif"
	"github.com/netmotifs/gomotif/libmotif/catalog"
)

func TestInMemoryCatalog(t *testing.T) {
	ctx := gomotif.NewCatalogContext()

	cat, err := catalog.OpenCatalog(ctx, gomotif.CatalogOpts{})
	if err != nil {
		t.Fatal(err)
	}

	add := func(expr string, wantAdded bool) {
		X, err := libmotif.NewGraphFromExpr(expr)
		if err != nil {
			t.Fatal(err)
		}
		defer X.Reclaim()
		if added := cat.TryAddMotif(X); added != wantAdded {
			t.Fatalf("TryAddMotif(%q): got %v", expr, added)
		}
	}

	add("1-2-3,3-1", true)
	add("2-3-1,1-2", false) // relabeled triangle
	add("1-2-3", true)
	add("1-2-3-4,4-1", true)
	add("1>2>3>1", true) // directedness separates classes
	add("1>2>3>1", false)

	if n := cat.NumMotifs(3); n != 3 {
		t.Fatalf("NumMotifs(3): got %d", n)
	}
	if n := cat.NumMotifs(4); n != 1 {
		t.Fatalf("NumMotifs(4): got %d", n)
	}
	if n := cat.NumMotifs(99); n != 0 {
		t.Fatal("out of bounds order should count 0")
	}

	// Select everything back out
	total := 0
	onHit := make(chan gomotif.State)
	go func() {
		cat.Select(gomotif.DefaultMotifSelector, onHit)
		close(onHit)
	}()
	for X := range onHit {
		total++
		X.Reclaim()
	}
	if total != 4 {
		t.Fatalf("Select: got %d motifs", total)
	}

	// Selector bounds apply
	sel := gomotif.DefaultMotifSelector
	sel.Min.NumVerts = 4
	if got := libmotif.SelectFromCatalog(cat, sel).PullAll(); got != 1 {
		t.Fatalf("bounded Select: got %d", got)
	}

	ctx.Close()
	<-ctx.Done()
}

func TestCatalogPersistence(t *testing.T) {
	dir, err := os.MkdirTemp("", "motifs*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	dbPath := path.Join(dir, "TestPersistence")
	ctx := gomotif.NewCatalogContext()

	{
		cat, err := catalog.OpenCatalog(ctx, gomotif.CatalogOpts{DbPathName: dbPath})
		if err != nil {
			t.Fatal(err)
		}

		X, err := libmotif.NewGraphFromExpr("1-2-3,3-1")
		if err != nil {
			t.Fatal(err)
		}
		if !cat.TryAddMotif(X) {
			t.Fatal("add failed")
		}
		X.Reclaim()
		cat.Close()
	}

	{
		cat, err := catalog.OpenCatalog(ctx, gomotif.CatalogOpts{
			DbPathName: dbPath,
			ReadOnly:   true,
		})
		if err != nil {
			t.Fatal(err)
		}
		if !cat.IsReadOnly() {
			t.Fatal("should be read-only")
		}
		if n := cat.NumMotifs(3); n != 1 {
			t.Fatalf("NumMotifs after reopen: got %d", n)
		}

		// Read-only catalogs never add
		X, err := libmotif.NewGraphFromExpr("1-2")
		if err != nil {
			t.Fatal(err)
		}
		if cat.TryAddMotif(X) {
			t.Fatal("read-only add should refuse")
		}
		X.Reclaim()

		// The stored motif comes back isomorphic to what went in
		stream := libmotif.SelectFromCatalog(cat, gomotif.DefaultMotifSelector)
		Y := stream.PullGraph()
		if Y == nil {
			t.Fatal("no motif returned")
		}
		T3, _ := libmotif.NewGraphFromExpr("1-2-3,3-1")
		hit, err := libmotif.Isomorphic(Y, T3)
		if err != nil || !hit {
			t.Fatalf("hit=%v err=%v", hit, err)
		}
		T3.Reclaim()
		Y.Reclaim()
		stream.PullAll()

		cat.Close()
	}

	ctx.Close()
	<-ctx.Done()
}

func TestCatalogParams(t *testing.T) {
	ctx := gomotif.NewCatalogContext()
	defer func() {
		ctx.Close()
		<-ctx.Done()
	}()

	// Read-only without a path makes no sense
	_, err := catalog.OpenCatalog(ctx, gomotif.CatalogOpts{ReadOnly: true})
	if err == nil {
		t.Fatal("expected error")
	}

	// Motifs over the order cap are refused, not errored
	cat, err := catalog.OpenCatalog(ctx, gomotif.CatalogOpts{MotifOrderCap: 3})
	if err != nil {
		t.Fatal(err)
	}
	X, err := libmotif.NewGraphFromExpr("1-2-3-4,4-1")
	if err != nil {
		t.Fatal(err)
	}
	if cat.TryAddMotif(X) {
		t.Fatal("over-cap motif should refuse")
	}
	X.Reclaim()
	cat.Close()
}
