package gomotif

import (
	"io"
)

const (
	// MaxMotifVtx is the max motif order this engine will canonize or test for isomorphism.
	// Host graphs are not bounded; only motif representatives are.
	MaxMotifVtx = 12
)

// VtxID is a zero-based vertex index within a Graph.
type VtxID int32

// DegreeDir selects which degree a query refers to.
// For an undirected graph, DegreeOut carries the total degree and DegreeIn is always zero,
// matching the convention that undirected degree lives entirely on the out side.
type DegreeDir int32

const (
	DegreeOut DegreeDir = iota
	DegreeIn
	DegreeTotal
)

// Signature is a cheap necessary-condition fingerprint of a graph: a varint encoding of its
// in-degree and out-degree histograms.  Two isomorphic graphs always have equal Signatures;
// the converse does not hold, so a Signature match must be confirmed by an isomorphism test.
//
// Signatures are ordered by bytes.Compare, giving buckets a stable iteration order.
type Signature []byte

// VertexMap relays where a motif was found: VertexMap[i] is the host-graph vertex
// that motif vertex i landed on.
type VertexMap []VtxID

// RewireModel selects the null model used to randomize a graph between census rounds.
type RewireModel int32

const (
	// RewireConfiguration preserves each vertex's degree (in and out) via double edge swaps.
	// Self-loop and parallel-edge admissibility follow RewireConfig flags.
	RewireConfiguration RewireModel = iota

	// RewireConstrained is RewireConfiguration with swaps additionally rejected whenever
	// they would introduce a self-loop or parallel edge, regardless of the flags.
	RewireConstrained

	// RewireErdos preserves only the vertex and edge counts, re-picking both endpoints
	// of every edge uniformly.
	RewireErdos
)

// ParseRewireModel maps the wire/Python names of the shuffle models onto RewireModel.
func ParseRewireModel(name string) (RewireModel, error) {
	switch name {
	case "", "configuration":
		return RewireConfiguration, nil
	case "constrained-configuration":
		return RewireConstrained, nil
	case "erdos":
		return RewireErdos, nil
	}
	return 0, ErrBadShuffleModel
}

func (model RewireModel) String() string {
	switch model {
	case RewireConfiguration:
		return "configuration"
	case RewireConstrained:
		return "constrained-configuration"
	case RewireErdos:
		return "erdos"
	}
	return "unknown"
}

// RewireConfig is passed verbatim to the rewiring collaborator.
type RewireConfig struct {
	Model         RewireModel
	SelfLoops     bool // permit self-loops in the rewired graph
	ParallelEdges bool // permit parallel edges in the rewired graph
}

// CensusOpts selects how a single motif census is run.
type CensusOpts struct {

	// SampleProb gates subgraph search extension per depth 1..k (RAND-ESU).
	// nil or empty means exact enumeration.  A single element p expands to
	// [1, 1, ..., p]: only the deepest extension is sampled.  A length-k
	// vector is used verbatim.  Anything else is ErrBadSampleProb.
	SampleProb []float64

	// CollectEmbeddings also returns, per motif class, the vertex maps locating
	// each occurrence in the host graph.
	CollectEmbeddings bool

	// RandomSeed seeds all sampling decisions.  Fixed seed, fixed output.
	RandomSeed int64
}

// SignificanceOpts selects how a motif significance profile is estimated.
type SignificanceOpts struct {
	NumShuffles    int     // number of independent null samples (default 100)
	SampleProb     []float64
	CountThreshold int64   // drop classes whose real (or sampled) count is <= this
	Rewire         RewireConfig
	FullOutput     bool    // also report real counts, null means and null deviations
	RandomSeed     int64
}

// DefaultSignificanceOpts mirror the defaults of the exposed Python surface.
var DefaultSignificanceOpts = SignificanceOpts{
	NumShuffles: 100,
}

// GraphInfo summarizes a graph for selection and printing.
type GraphInfo struct {
	NumVerts int32
	NumEdges int32
	NumParts int32 // number of connected components
	Directed bool
}

// PrintOpts specifies what is printed when printing a motif graph.
type PrintOpts struct {
	Label     string // prefix label
	Graph     bool   // if set, prints the graph construction expr
	Signature bool   // if set, prints the degree signature
}

// DefaultPrintOpts{}
var DefaultPrintOpts = PrintOpts{
	Graph: true,
}

// State is the engine-agnostic view of a motif graph, as stored and recalled by a Catalog.
type State interface {

	// VertexCount returns the graph order.
	VertexCount() int

	// EdgeCount returns the number of edges, parallel edges counted individually.
	EdgeCount() int

	// IsDirected reports edge directedness.  All graphs in one catalog entry set agree.
	IsDirected() bool

	// AppendSignatureTo appends this graph's degree signature to the given buffer.
	AppendSignatureTo(in []byte) Signature

	// AppendCanonicalTo appends the canonical (isomorphism-invariant) encoding of this
	// graph to the given buffer.  Only valid for graphs of order <= MaxMotifVtx.
	AppendCanonicalTo(in []byte) ([]byte, error)

	// ExportGraphDef marshals this graph into a wire-ready GraphDef.
	ExportGraphDef() []byte

	// WriteAsString writes a human readable form of this graph.
	WriteAsString(out io.Writer, opts PrintOpts)

	// Reclaim recycles this instance into a pool for reuse.
	// Caller asserts that no more references to this instance will persist.
	Reclaim()
}

// OnMotifHit is a callback channel used to return motif graphs meeting a set of
// selection criteria.  Ownership of a State also travels through the channel.
type OnMotifHit chan<- State

// MotifSelector is an operator that either selects a given motif graph or not.
type MotifSelector struct {
	Min GraphInfo // lower select bounds
	Max GraphInfo // upper select bounds
}

// DefaultMotifSelector selects every motif a catalog can hold.
var DefaultMotifSelector = MotifSelector{
	Min: GraphInfo{
		NumVerts: 1,
		NumParts: 1,
	},
	Max: GraphInfo{
		NumVerts: MaxMotifVtx,
		NumEdges: MaxMotifVtx * MaxMotifVtx,
		NumParts: MaxMotifVtx,
	},
}

// Allow is a convenience function used to see if a motif is selected according to a MotifSelector.
func (sel *MotifSelector) Allow(info GraphInfo) bool {
	if info.NumVerts < sel.Min.NumVerts || info.NumEdges < sel.Min.NumEdges || info.NumParts < sel.Min.NumParts {
		return false
	}
	if info.NumVerts > sel.Max.NumVerts || info.NumEdges > sel.Max.NumEdges || info.NumParts > sel.Max.NumParts {
		return false
	}
	return true
}

// CatalogOpts specifies params for opening a motif Catalog.
type CatalogOpts struct {
	DbPathName    string // omit for an in-memory db
	ReadOnly      bool   // open in read-only mode
	MotifOrderCap int32  // largest motif order this catalog will accept
}

// Catalog wraps a database of motif class encodings.
type Catalog interface {

	// TryAddMotif adds the given motif graph if its isomorphism class isn't already present.
	// If true is returned, X's class did not exist and was added.
	TryAddMotif(X State) bool

	// IsReadOnly returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// NumMotifs returns the number of motif classes in this catalog for a given order.
	// An out of bounds order returns 0.
	NumMotifs(order int32) int64

	// Select fires the given callback with each stored motif that meets the selection criteria.
	Select(sel MotifSelector, onHit OnMotifHit)

	Close() error
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// AttachCatalog attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// DetachCatalog detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Close signals all open catalogs to be closed then closes.
	Close()

	// Closing signals when Close() has been called.
	Closing() <-chan struct{}

	// Done signals when Close() completed and all open Catalogs have been closed.
	Done() <-chan struct{}
}
