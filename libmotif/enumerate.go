package libmotif

import (
	"github.com/arcspace/go-arc-sdk/stdlib/symbol"
	"github.com/arcspace/go-arc-sdk/stdlib/symbol/memory_table"

	"github.com/netmotifs/gomotif/gomotif"
)

// enumPairCap bounds the edge-slot count of a class enumeration: 2^pairs
// candidate graphs are walked, so pairs stays below 28.
const enumPairCap = 27

// EnumMotifClasses streams one representative per isomorphism class of simple
// order-k graphs (no loops, no parallel edges), disconnected classes included.
//
// Candidates are walked by edge subset and deduped through a symbol table of
// canonical encodings, so each class is emitted exactly once, in subset order.
// Undirected k=3 yields 4 classes, k=4 the familiar 11.
func EnumMotifClasses(k int, directed bool) (*MotifStream, error) {
	if k < 1 || k > gomotif.MaxMotifVtx {
		return nil, gomotif.ErrMotifTooLarge
	}

	// Edge slots: unordered pairs, or both orientations when directed
	type pair struct{ a, b gomotif.VtxID }
	var pairs []pair
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			pairs = append(pairs, pair{gomotif.VtxID(i), gomotif.VtxID(j)})
			if directed {
				pairs = append(pairs, pair{gomotif.VtxID(j), gomotif.VtxID(i)})
			}
		}
	}
	if len(pairs) > enumPairCap {
		return nil, gomotif.ErrMotifTooLarge
	}

	tableOpts := memory_table.DefaultOpts()
	emitted, err := tableOpts.CreateTable()
	if err != nil {
		return nil, err
	}

	ce := &classEnum{
		EnumStream: NewMotifStream(),
		emitted:    emitted,
	}

	go func() {
		X := NewGraph(nil)
		var scrap [192]byte

		numMasks := uint32(1) << uint(len(pairs))
		for mask := uint32(0); mask < numMasks; mask++ {
			X.InitEmpty(directed, k)
			for pi, p := range pairs {
				if mask&(1<<uint(pi)) != 0 {
					X.AddEdge(p.a, p.b)
				}
			}

			sym, err := X.AppendCanonicalTo(scrap[:0])
			if err != nil {
				panic(err)
			}
			if ce.markEmitted(sym) {
				ce.EnumStream.Outlet <- NewGraph(X)
			}
		}

		X.Reclaim()
		ce.EnumStream.Close()
	}()

	return ce.EnumStream, nil
}

type classEnum struct {
	EnumStream *MotifStream
	emitted    symbol.Table
}

// markEmitted returns true exactly once per canonical encoding.
func (ce *classEnum) markEmitted(sym []byte) bool {
	if ce.emitted.GetSymbolID(sym, false) != 0 {
		return false
	}
	ce.emitted.GetSymbolID(sym, true)
	return true
}
