package libmotif

import (
	"bytes"
	"math/rand"
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/netmotifs/gomotif/gomotif"
)

// MotifClass is one isomorphism class observed by a census: a representative
// graph plus its occurrence count and (optionally) where each occurrence lies.
type MotifClass struct {
	Representative *Graph
	Count          int64

	// Embeddings[i][r] is the host vertex that Representative vertex r lands
	// on in the i'th occurrence.
	Embeddings []gomotif.VertexMap

	sig    gomotif.Signature
	outSeq []int32 // ascending sorted out-degree sequence, cached for ordering
	inSeq  []int32 // ascending sorted in-degree sequence
}

// Signature returns the class's cached degree signature.
func (mc *MotifClass) Signature() gomotif.Signature {
	return mc.sig
}

// less is the canonical class order: ascending edge count, then sorted
// out-degree sequence, then sorted in-degree sequence (lexicographic).
func (mc *MotifClass) less(other *MotifClass) bool {
	ea, eb := mc.Representative.EdgeCount(), other.Representative.EdgeCount()
	if ea != eb {
		return ea < eb
	}
	if c := compareSeq(mc.outSeq, other.outSeq); c != 0 {
		return c < 0
	}
	return compareSeq(mc.inSeq, other.inSeq) < 0
}

func compareSeq(a, b []int32) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// CensusResult is the outcome of one motif census, in canonical class order.
type CensusResult struct {
	MotifOrder int
	Classes    []*MotifClass
}

// Reclaim recycles all class representatives.  Caller asserts no references persist.
func (cr *CensusResult) Reclaim() {
	for _, mc := range cr.Classes {
		mc.Representative.Reclaim()
	}
	cr.Classes = nil
}

// classSet buckets motif classes by signature: an arena of classes plus a
// redblacktree multimap from signature bytes to arena indices.  Only classes
// inside one signature bucket ever reach the exact isomorphism test.
type classSet struct {
	arena []*MotifClass
	bySig *redblacktree.Tree // Signature -> []int32 arena indices
}

func newClassSet() *classSet {
	return &classSet{
		bySig: redblacktree.NewWith(func(a, b interface{}) int {
			return bytes.Compare(a.(gomotif.Signature), b.(gomotif.Signature))
		}),
	}
}

// match returns the arena index of the class isomorphic to X, or -1.
// Classes in the arena are mutually non-isomorphic, so the first match is the
// only possible match and the scan stops there.
func (cs *classSet) match(X *Graph, sig gomotif.Signature) (int, error) {
	node, found := cs.bySig.Get(sig)
	if !found {
		return -1, nil
	}
	for _, ci := range node.([]int32) {
		hit, err := Isomorphic(X, cs.arena[ci].Representative)
		if err != nil {
			return -1, err
		}
		if hit {
			return int(ci), nil
		}
	}
	return -1, nil
}

// add appends X as a new class; X's ownership transfers to the set.
func (cs *classSet) add(X *Graph, sig gomotif.Signature) int {
	mc := &MotifClass{
		Representative: X,
		sig:            append(gomotif.Signature{}, sig...),
	}
	mc.outSeq = X.SortedDegrees(gomotif.DegreeOut, nil)
	mc.inSeq = X.SortedDegrees(gomotif.DegreeIn, nil)

	ci := int32(len(cs.arena))
	cs.arena = append(cs.arena, mc)

	var indices []int32
	if node, found := cs.bySig.Get(mc.sig); found {
		indices = node.([]int32)
	}
	cs.bySig.Put(mc.sig, append(indices, ci))
	return int(ci)
}

// sortedResult moves the arena into a CensusResult in canonical class order.
func (cs *classSet) sortedResult(motifOrder int) *CensusResult {
	sort.SliceStable(cs.arena, func(i, j int) bool {
		return cs.arena[i].less(cs.arena[j])
	})
	return &CensusResult{
		MotifOrder: motifOrder,
		Classes:    cs.arena,
	}
}

// normalizeSampleProb expands opts.SampleProb for a census of order k.
//
// nil / empty means exact enumeration.  A single prob p expands to [1,...,1,p]:
// only the deepest extension is sampled.  A length-k vector passes through.
func normalizeSampleProb(k int, probs []float64) ([]float64, error) {
	for _, p := range probs {
		if p < 0 || p > 1 {
			return nil, gomotif.ErrBadSampleProb
		}
	}
	switch len(probs) {
	case 0:
		return nil, nil
	case 1:
		pd := make([]float64, k)
		for i := range pd {
			pd[i] = 1
		}
		pd[k-1] = probs[0]
		return pd, nil
	case k:
		return probs, nil
	}
	return nil, gomotif.ErrBadSampleProb
}

// validateAllowed checks a motif restriction list against the census params.
func validateAllowed(X *Graph, k int, allowed []*Graph) error {
	for _, motif := range allowed {
		if motif == nil {
			return gomotif.ErrNilGraph
		}
		if motif.VertexCount() != k {
			return gomotif.ErrBadMotifOrder
		}
		if motif.IsDirected() != allowed[0].IsDirected() {
			return gomotif.ErrMixedDirectedness
		}
	}
	if len(allowed) > 0 && allowed[0].IsDirected() != X.IsDirected() {
		return gomotif.ErrDirectednessMismatch
	}
	return nil
}

// Census counts the connected k-vertex node-induced subgraphs of X, bucketed
// into isomorphism classes.
//
// Enumeration follows ESU: each connected induced subgraph is visited exactly
// once by growing from its minimum vertex through exclusive neighborhoods.
// When opts.SampleProb is set the walk becomes RAND-ESU, gating each depth's
// extensions on its probability; counts then estimate rather than enumerate.
//
// A non-empty allowed list restricts the census to isomorphs of the given
// representatives; every representative appears in the result even at count
// zero.  The result is in canonical class order and its randomness (if any)
// is fully determined by opts.RandomSeed.
func Census(X *Graph, k int, allowed []*Graph, opts gomotif.CensusOpts) (*CensusResult, error) {
	if X == nil {
		return nil, gomotif.ErrNilGraph
	}
	if k < 1 || k > gomotif.MaxMotifVtx {
		return nil, gomotif.ErrMotifTooLarge
	}
	if err := validateAllowed(X, k, allowed); err != nil {
		return nil, err
	}
	pd, err := normalizeSampleProb(k, opts.SampleProb)
	if err != nil {
		return nil, err
	}

	cs := newClassSet()
	restricted := len(allowed) > 0
	for _, motif := range allowed {
		var sigBuf [SignatureBufSz]byte
		sig := motif.AppendSignatureTo(sigBuf[:0])
		ci, err := cs.match(motif, sig)
		if err != nil {
			return nil, err
		}
		if ci < 0 {
			cs.add(NewGraph(motif), sig)
		}
	}

	rng := NewSeededRand(opts.RandomSeed)
	walk := esuWalk{
		host:       X,
		rng:        rng,
		pd:         pd,
		classes:    cs,
		restricted: restricted,
		embeddings: opts.CollectEmbeddings,
		inReach:    make([]bool, X.VertexCount()),
		sub:        make([]gomotif.VtxID, 0, k),
	}
	walk.motifOrder = k

	if err := walk.run(); err != nil {
		return nil, err
	}

	return cs.sortedResult(k), nil
}

// esuWalk carries the state of one ESU enumeration over a host graph.
type esuWalk struct {
	host       *Graph
	rng        *rand.Rand
	pd         []float64 // nil for exact enumeration
	classes    *classSet
	restricted bool
	embeddings bool
	motifOrder int

	sub     []gomotif.VtxID
	inReach []bool // vertex is in sub or was ever offered as an extension of it
	scratch *Graph
}

func (w *esuWalk) keep(depth int) bool {
	if w.pd == nil {
		return true
	}
	p := w.pd[depth]
	if p >= 1 {
		return true
	}
	return w.rng.Float64() < p
}

func (w *esuWalk) run() error {
	w.scratch = NewGraph(nil)
	defer func() {
		w.scratch.Reclaim()
		w.scratch = nil
	}()

	Nv := gomotif.VtxID(w.host.VertexCount())
	for v := gomotif.VtxID(0); v < Nv; v++ {
		if w.motifOrder == 1 {
			if w.keep(0) {
				if err := w.tally([]gomotif.VtxID{v}); err != nil {
					return err
				}
			}
			continue
		}
		if !w.keep(0) {
			continue
		}

		// Root extension set: neighbors of v above v
		var ext []gomotif.VtxID
		w.inReach[v] = true
		w.host.VisitNeighbors(v, func(nbr gomotif.VtxID) {
			if nbr > v && !w.inReach[nbr] {
				w.inReach[nbr] = true
				ext = append(ext, nbr)
			}
		})

		w.sub = append(w.sub[:0], v)
		if err := w.extend(v, ext); err != nil {
			return err
		}

		w.inReach[v] = false
		for _, u := range ext {
			w.inReach[u] = false
		}
	}
	return nil
}

// extend grows the current subgraph by each candidate in ext, enumerating each
// connected induced subgraph exactly once (exclusive-neighborhood rule).
func (w *esuWalk) extend(root gomotif.VtxID, ext []gomotif.VtxID) error {
	depth := len(w.sub)

	for i, u := range ext {
		if !w.keep(depth) {
			continue
		}

		w.sub = append(w.sub, u)

		if len(w.sub) == w.motifOrder {
			if err := w.tally(w.sub); err != nil {
				return err
			}
		} else {
			// Next candidates: the untried remainder of ext, plus u's exclusive
			// neighbors (above root, never reachable from the earlier sub).
			next := append([]gomotif.VtxID{}, ext[i+1:]...)
			var added []gomotif.VtxID
			w.host.VisitNeighbors(u, func(nbr gomotif.VtxID) {
				if nbr > root && !w.inReach[nbr] {
					w.inReach[nbr] = true
					added = append(added, nbr)
					next = append(next, nbr)
				}
			})

			if err := w.extend(root, next); err != nil {
				return err
			}

			for _, a := range added {
				w.inReach[a] = false
			}
		}

		w.sub = w.sub[:len(w.sub)-1]
	}
	return nil
}

// tally buckets one found subgraph into its isomorphism class.
func (w *esuWalk) tally(verts []gomotif.VtxID) error {
	w.host.InducedSubgraph(verts, w.scratch)

	var sigBuf [SignatureBufSz]byte
	sig := w.scratch.AppendSignatureTo(sigBuf[:0])

	ci, err := w.classes.match(w.scratch, sig)
	if err != nil {
		return err
	}
	if ci < 0 {
		if w.restricted {
			return nil // not an allowed motif
		}
		ci = w.classes.add(NewGraph(w.scratch), sig)
	}

	mc := w.classes.arena[ci]
	mc.Count++
	if w.embeddings {
		// verts is in ESU discovery order; re-express the occurrence in the
		// representative's labeling so its edges map onto host edges.
		vm := make(gomotif.VertexMap, len(verts))
		for r, s := range isoSearch(mc.Representative, w.scratch) {
			vm[r] = verts[s]
		}
		mc.Embeddings = append(mc.Embeddings, vm)
	}
	return nil
}
