package gomotif

import "errors"

// Errors
var (
	ErrUnmarshal            = errors.New("unmarshal failed")
	ErrBadCatalogParam      = errors.New("bad catalog param")
	ErrBadEncoding          = errors.New("bad graph encoding")
	ErrBadVtxID             = errors.New("bad graph vertex ID")
	ErrMissingVtxID         = errors.New("missing vertex ID")
	ErrBadEdge              = errors.New("bad graph edge")
	ErrMixedEdgeKinds       = errors.New("graph expr mixes directed and undirected edges")
	ErrNilGraph             = errors.New("nil graph")
	ErrMotifTooLarge        = errors.New("motif order exceeds MaxMotifVtx")
	ErrBadMotifOrder        = errors.New("motif order does not match census order")
	ErrMixedDirectedness    = errors.New("allowed motifs mix directed and undirected graphs")
	ErrDirectednessMismatch = errors.New("allowed motif directedness does not match host graph")
	ErrBadSampleProb        = errors.New("sample prob must be scalar or one prob per depth, each in [0,1]")
	ErrBadShuffleModel      = errors.New("unrecognized shuffle model")
	ErrBadShuffleCount      = errors.New("shuffle count must be positive")
)
