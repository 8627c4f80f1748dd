package libmotif

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/netmotifs/gomotif/gomotif"
	"github.com/netmotifs/gomotif/libmotif/motifpb"
)

// NewGraph returns a pooled Graph initialized as a copy of Xsrc (nil for an empty graph).
func NewGraph(Xsrc *Graph) *Graph {
	X := graphPool.Get().(*Graph)
	X.Init(Xsrc)
	return X
}

// NewGraphFromExpr returns a pooled Graph built from the given graph expr -- see InitFromString.
func NewGraphFromExpr(graphExpr string) (*Graph, error) {
	X := graphPool.Get().(*Graph)
	err := X.InitFromString(graphExpr)
	if err != nil {
		X.Reclaim()
		return nil, err
	}
	return X, nil
}

// NewGraphFromDef returns a pooled Graph unmarshalled from a motifpb.GraphDef buffer.
func NewGraphFromDef(graphDef []byte) (*Graph, error) {
	X := graphPool.Get().(*Graph)
	err := X.InitFromDef(graphDef)
	if err != nil {
		X.Reclaim()
		return nil, err
	}
	return X, nil
}

// Edge is a single edge from A to B.
//
// In an undirected graph, A <= B always holds and the edge has no orientation.
// Repeated (A,B) entries are parallel edges; A == B is a self-loop.
type Edge struct {
	A, B gomotif.VtxID
}

// Graph is a mutable directed or undirected multigraph over dense 0-based vertex IDs.
//
// A Graph supports self-loops and parallel edges since degree-preserving rewiring
// can produce both.  Adjacency tables are rebuilt lazily after mutation.
type Graph struct {
	directed  bool
	vtxCount  int32
	partCount int32 // number of connected components; zero if not yet calculated
	edges     []Edge

	adjDirty bool
	adjOut   [][]gomotif.VtxID // out-neighbors (all neighbors when undirected)
	adjIn    [][]gomotif.VtxID // in-neighbors (empty when undirected)

	Def motifpb.GraphDef
}

func (X *Graph) Init(Xsrc *Graph) {
	if X == Xsrc {
		return
	}

	X.onGraphChanged()

	if Xsrc == nil {
		X.directed = false
		X.vtxCount = 0
		X.edges = X.edges[:0]
		return
	}
	X.directed = Xsrc.directed
	X.vtxCount = Xsrc.vtxCount
	X.partCount = Xsrc.partCount
	X.edges = append(X.edges[:0], Xsrc.edges...)
}

// InitEmpty resets X to an edgeless graph with the given directedness and order.
func (X *Graph) InitEmpty(directed bool, numVerts int) {
	X.onGraphChanged()
	X.directed = directed
	X.vtxCount = int32(numVerts)
	X.edges = X.edges[:0]
}

func (X *Graph) InitFromDef(graphDef []byte) error {
	X.Def.Clear()
	err := X.Def.Unmarshal(graphDef)
	if err != nil {
		return gomotif.ErrUnmarshal
	}
	X.InitEmpty(X.Def.Directed, int(X.Def.VtxCount))
	if len(X.Def.Edges)&1 != 0 {
		return gomotif.ErrBadEncoding
	}
	for i := 0; i < len(X.Def.Edges); i += 2 {
		a := gomotif.VtxID(X.Def.Edges[i])
		b := gomotif.VtxID(X.Def.Edges[i+1])
		if err := X.AddEdge(a, b); err != nil {
			return err
		}
	}
	return nil
}

func (X *Graph) onGraphChanged() {
	X.partCount = 0
	X.adjDirty = true
}

func (X *Graph) IsDirected() bool {
	return X.directed
}

func (X *Graph) VertexCount() int {
	return int(X.vtxCount)
}

func (X *Graph) EdgeCount() int {
	return len(X.edges)
}

// Edges exposes the live edge list.  Treat as read-only.
func (X *Graph) Edges() []Edge {
	return X.edges
}

// AddVertex appends count new isolated vertices and returns the first new VtxID.
func (X *Graph) AddVertex(count int) gomotif.VtxID {
	v0 := gomotif.VtxID(X.vtxCount)
	X.vtxCount += int32(count)
	X.onGraphChanged()
	return v0
}

// AddEdge appends the edge (a,b), normalizing endpoint order when undirected.
func (X *Graph) AddEdge(a, b gomotif.VtxID) error {
	if a < 0 || b < 0 || int32(a) >= X.vtxCount || int32(b) >= X.vtxCount {
		return gomotif.ErrBadVtxID
	}
	if !X.directed && a > b {
		a, b = b, a
	}
	X.edges = append(X.edges, Edge{a, b})
	X.onGraphChanged()
	return nil
}

// setEdge replaces edge i in place (rewiring fast path).
func (X *Graph) setEdge(i int, a, b gomotif.VtxID) {
	if !X.directed && a > b {
		a, b = b, a
	}
	X.edges[i] = Edge{a, b}
	X.onGraphChanged()
}

func (X *Graph) refreshAdj() {
	if !X.adjDirty {
		return
	}

	Nv := int(X.vtxCount)
	if cap(X.adjOut) < Nv {
		X.adjOut = make([][]gomotif.VtxID, Nv)
		X.adjIn = make([][]gomotif.VtxID, Nv)
	}
	X.adjOut = X.adjOut[:Nv]
	X.adjIn = X.adjIn[:Nv]
	for i := 0; i < Nv; i++ {
		X.adjOut[i] = X.adjOut[i][:0]
		X.adjIn[i] = X.adjIn[i][:0]
	}

	for _, e := range X.edges {
		X.adjOut[e.A] = append(X.adjOut[e.A], e.B)
		if X.directed {
			X.adjIn[e.B] = append(X.adjIn[e.B], e.A)
		} else if e.A != e.B {
			X.adjOut[e.B] = append(X.adjOut[e.B], e.A)
		}
	}
	X.adjDirty = false
}

// OutNeighbors returns v's out-neighbor list (all neighbors when undirected).
// Parallel edges repeat; a self-loop appears once.  Treat as read-only.
func (X *Graph) OutNeighbors(v gomotif.VtxID) []gomotif.VtxID {
	X.refreshAdj()
	return X.adjOut[v]
}

// InNeighbors returns v's in-neighbor list (empty when undirected).
func (X *Graph) InNeighbors(v gomotif.VtxID) []gomotif.VtxID {
	X.refreshAdj()
	return X.adjIn[v]
}

// VisitNeighbors fires onNbr for every vertex adjacent to v in either direction.
// Duplicates arise from parallel edges and reciprocal edge pairs; callers dedupe.
func (X *Graph) VisitNeighbors(v gomotif.VtxID, onNbr func(nbr gomotif.VtxID)) {
	X.refreshAdj()
	for _, nbr := range X.adjOut[v] {
		onNbr(nbr)
	}
	for _, nbr := range X.adjIn[v] {
		onNbr(nbr)
	}
}

// Degree returns the given degree of vertex v.  A self-loop contributes 2 to the
// undirected (total) degree and 1 to each of in and out when directed.
func (X *Graph) Degree(v gomotif.VtxID, dir gomotif.DegreeDir) int32 {
	X.refreshAdj()
	out := int32(len(X.adjOut[v]))
	in := int32(len(X.adjIn[v]))
	if !X.directed {
		// adjOut holds a loop once; undirected degree counts it twice
		for _, nbr := range X.adjOut[v] {
			if nbr == v {
				out++
			}
		}
		in = 0
	}
	switch dir {
	case gomotif.DegreeOut:
		return out
	case gomotif.DegreeIn:
		return in
	}
	return out + in
}

// DegreeSequence appends the per-vertex degrees (vertex order) to the given buffer.
func (X *Graph) DegreeSequence(dir gomotif.DegreeDir, in []int32) []int32 {
	for v := gomotif.VtxID(0); int32(v) < X.vtxCount; v++ {
		in = append(in, X.Degree(v, dir))
	}
	return in
}

// SortedDegrees appends the ascending-sorted degree sequence to the given buffer.
func (X *Graph) SortedDegrees(dir gomotif.DegreeDir, in []int32) []int32 {
	i0 := len(in)
	in = X.DegreeSequence(dir, in)
	seq := in[i0:]
	sort.Slice(seq, func(i, j int) bool { return seq[i] < seq[j] })
	return in
}

// NumParts returns the number of connected components, treating edges as undirected.
func (X *Graph) NumParts() int32 {
	if X.partCount > 0 {
		return X.partCount
	}

	Nv := int(X.vtxCount)
	if Nv == 0 {
		return 0
	}

	// Union-find with path halving
	parent := make([]int32, Nv)
	for i := range parent {
		parent[i] = int32(i)
	}
	find := func(i int32) int32 {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	for _, e := range X.edges {
		ra, rb := find(int32(e.A)), find(int32(e.B))
		if ra != rb {
			parent[rb] = ra
		}
	}

	pcount := int32(0)
	for i := range parent {
		if find(int32(i)) == int32(i) {
			pcount++
		}
	}
	X.partCount = pcount
	return pcount
}

func (X *Graph) GetInfo() gomotif.GraphInfo {
	return gomotif.GraphInfo{
		NumVerts: X.vtxCount,
		NumEdges: int32(len(X.edges)),
		NumParts: X.NumParts(),
		Directed: X.directed,
	}
}

// InducedSubgraph initializes dst as the node-induced subgraph of X on the given
// host vertices.  dst vertex i corresponds to verts[i], so verts doubles as the
// vertex map of the embedding.  Parallel edges and loops carry over.
func (X *Graph) InducedSubgraph(verts []gomotif.VtxID, dst *Graph) {
	dst.InitEmpty(X.directed, len(verts))

	local := func(hv gomotif.VtxID) (gomotif.VtxID, bool) {
		for i, v := range verts {
			if v == hv {
				return gomotif.VtxID(i), true
			}
		}
		return 0, false
	}

	for _, hv := range verts {
		a, _ := local(hv)
		for _, nbr := range X.OutNeighbors(hv) {
			if !X.directed && nbr < hv {
				continue // each undirected edge visited from its low endpoint only
			}
			if b, ok := local(nbr); ok {
				dst.edges = append(dst.edges, Edge{a, b})
				if !dst.directed && a > b {
					dst.edges[len(dst.edges)-1] = Edge{b, a}
				}
			}
		}
	}
}

// UndirectedView initializes dst as the undirected multigraph underlying X.
// A reciprocal directed pair becomes two parallel undirected edges.
func (X *Graph) UndirectedView(dst *Graph) {
	dst.InitEmpty(false, int(X.vtxCount))
	for _, e := range X.edges {
		a, b := e.A, e.B
		if a > b {
			a, b = b, a
		}
		dst.edges = append(dst.edges, Edge{a, b})
	}
}

// AppendSignatureTo appends X's degree signature to the given buffer.
func (X *Graph) AppendSignatureTo(in []byte) gomotif.Signature {
	return appendSignatureTo(X, in)
}

// denseAdj returns the adjacency multiplicity matrix of X, row-major.
// Only valid for motif-order graphs; undirected entries are symmetric.
func (X *Graph) denseAdj() ([]byte, error) {
	Nv := int(X.vtxCount)
	if Nv > gomotif.MaxMotifVtx {
		return nil, gomotif.ErrMotifTooLarge
	}
	m := make([]byte, Nv*Nv)
	for _, e := range X.edges {
		m[int(e.A)*Nv+int(e.B)]++
		if !X.directed && e.A != e.B {
			m[int(e.B)*Nv+int(e.A)]++
		}
	}
	return m, nil
}

// AppendCanonicalTo appends X's canonical encoding to the given buffer.
//
// The encoding starts with a header that LSM-orders motifs by directedness, then
// order, then size; the body is the lexicographically minimal adjacency matrix
// over all vertex relabelings.  Isomorphic graphs share one encoding.
func (X *Graph) AppendCanonicalTo(in []byte) ([]byte, error) {
	adj, err := X.denseAdj()
	if err != nil {
		return nil, err
	}
	Nv := int(X.vtxCount)

	kind := byte('u')
	if X.directed {
		kind = 'd'
	}
	in = append(in, kind, byte(Nv), byte(len(X.edges)))

	if Nv == 0 {
		return in, nil
	}

	// Vertices are only interchangeable within equal (out,in) degree classes,
	// so the permutation search runs per class rather than over all Nv!.
	type vtxKey struct {
		out, in int32
		id      gomotif.VtxID
	}
	keys := make([]vtxKey, Nv)
	for v := 0; v < Nv; v++ {
		keys[v] = vtxKey{
			out: X.Degree(gomotif.VtxID(v), gomotif.DegreeOut),
			in:  X.Degree(gomotif.VtxID(v), gomotif.DegreeIn),
			id:  gomotif.VtxID(v),
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].out != keys[j].out {
			return keys[i].out < keys[j].out
		}
		if keys[i].in != keys[j].in {
			return keys[i].in < keys[j].in
		}
		return keys[i].id < keys[j].id
	})

	perm := make([]gomotif.VtxID, Nv)   // canonical slot -> original vtx
	used := make([]bool, Nv)
	enc := make([]byte, Nv*Nv)
	best := make([]byte, Nv*Nv)
	haveBest := false

	encodeAt := func() []byte {
		for i := 0; i < Nv; i++ {
			pi := int(perm[i])
			for j := 0; j < Nv; j++ {
				enc[i*Nv+j] = adj[pi*Nv+int(perm[j])]
			}
		}
		return enc
	}

	var fillSlot func(slot int)
	fillSlot = func(slot int) {
		if slot == Nv {
			e := encodeAt()
			if !haveBest || string(e) < string(best) {
				copy(best, e)
				haveBest = true
			}
			return
		}
		for ki, key := range keys {
			if used[ki] {
				continue
			}
			// Candidates for this slot share the slot's degree class
			if key.out != keys[slot].out || key.in != keys[slot].in {
				continue
			}
			used[ki] = true
			perm[slot] = key.id
			fillSlot(slot + 1)
			used[ki] = false
		}
	}
	fillSlot(0)

	return append(in, best...), nil
}

// ExportGraphDef marshals X into a wire-ready GraphDef buffer.
func (X *Graph) ExportGraphDef() []byte {
	X.Def.Directed = X.directed
	X.Def.VtxCount = X.vtxCount
	X.Def.Edges = X.Def.Edges[:0]
	for _, e := range X.edges {
		X.Def.Edges = append(X.Def.Edges, uint32(e.A), uint32(e.B))
	}
	buf, err := X.Def.Marshal()
	if err != nil {
		panic(err)
	}
	return buf
}

func (X *Graph) Println(prefix string) {
	b := strings.Builder{}
	b.Grow(192)
	b.WriteString(prefix)
	X.WriteAsString(&b, gomotif.PrintOpts{Graph: true})
	fmt.Println(b.String())
}

var (
	quote   = []byte("\"")
	comma   = []byte(",")
	newline = []byte("\n")
)

func (X *Graph) WriteAsString(out io.Writer, opts gomotif.PrintOpts) {
	if opts.Label != "" {
		fmt.Fprintf(out, "%s,", opts.Label)
	}
	fmt.Fprintf(out, "p=%d,v=%d,e=%d,", X.NumParts(), X.vtxCount, len(X.edges))

	if opts.Graph {
		X.WriteAsGraphExprStr(out)
	}
	if opts.Signature {
		var buf [64]byte
		sig := X.AppendSignatureTo(buf[:0])
		fmt.Fprintf(out, "\"%X\",", sig)
	}
	out.Write(newline)
}

// WriteAsGraphExprStr writes a graph expr that InitFromString would accept,
// chaining edges into runs where endpoints meet.
func (X *Graph) WriteAsGraphExprStr(out io.Writer) {
	edgeStr := "-"
	if X.directed {
		edgeStr = ">"
	}

	printVtx := func(vi gomotif.VtxID) {
		var buf [8]byte
		out.Write(printInt(buf[:], int64(vi+1)))
	}

	out.Write(quote)

	// Isolated vertices first, each its own run
	needsBreak := false
	X.refreshAdj()
	for v := gomotif.VtxID(0); int32(v) < X.vtxCount; v++ {
		if len(X.adjOut[v]) == 0 && len(X.adjIn[v]) == 0 {
			if needsBreak {
				out.Write(comma)
			}
			printVtx(v)
			needsBreak = true
		}
	}

	// Chain edges into runs where possible
	{
		e := append([]Edge{}, X.edges...)
		Ne := len(e)

		var bPrev gomotif.VtxID = -1
		for i := 0; i < Ne; i++ {

			// Look for an edge that continues the current run
			edge := e[i]
			if bPrev >= 0 {
				for j := i; j < Ne; j++ {
					if e[j].A == bPrev || (!X.directed && e[j].B == bPrev) {
						edge = e[j]
						e[j] = e[i]
						break
					}
				}
			}

			a, b := edge.A, edge.B
			if !X.directed && b == bPrev {
				a, b = b, a
			}

			if a != bPrev {
				if needsBreak {
					out.Write(comma)
				}
				printVtx(a)
			}
			io.WriteString(out, edgeStr)
			printVtx(b)
			bPrev = b
			needsBreak = true
		}
	}
	out.Write(quote)
	out.Write(comma)
}

// printInt prints the given integer in base 10, right justified in the buffer.
// Returns the tight-fitting slice of the output digits (a slice of []dst)
func printInt(dst []byte, val int64) []byte {
	sign := int(1)
	if val < 0 {
		sign = -1
		val = -val
	}
	L := len(dst)
	i := L
	for {
		next := val / 10
		digit := val - 10*next
		val = next
		i--
		dst[i] = '0' + byte(digit)
		if val == 0 {
			break
		}
	}
	if sign < 0 {
		i--
		dst[i] = '-'
	}
	return dst[i:]
}

func (X *Graph) Reclaim() {
	if X != nil {
		graphPool.Put(X)
	}
}

var graphPool = sync.Pool{
	New: func() interface{} {
		return new(Graph)
	},
}
