package libmotif

import (
	"github.com/alecthomas/participle/v2"

	"github.com/netmotifs/gomotif/gomotif"
)

type GraphExpr struct {
	Parts []*Part `parser:"(@@ (';' @@)*)?"`
}

type Part struct {
	EdgeRuns []*EdgeRun `parser:"(@@ (',' @@)*)?"`
}

type EdgeRun struct {
	StartVtx *Vtx       `parser:"@@"`
	Edges    []*EdgeDst `parser:"@@*"`
}

type EdgeDst struct {
	Kind   string `parser:"@( '-' | '>' )"`
	EndVtx *Vtx   `parser:"@@"`
}

type Vtx struct {
	ID int64 `parser:"@Int"`
}

type graphBuilder struct {
	vtx0     gomotif.VtxID // base VtxID of the current Part
	maxVtxID gomotif.VtxID
	directed bool
	sawEdge  bool
	edges    []Edge
}

func (Xb *graphBuilder) applyPart(part *Part) error {
	Xb.vtx0 = Xb.maxVtxID

	for _, run := range part.EdgeRuns {
		err := Xb.applyRun(run)
		if err != nil {
			return err
		}
	}

	return nil
}

func (Xb *graphBuilder) tallyVtx(vtx *Vtx) (gomotif.VtxID, error) {
	if vtx.ID < 1 {
		return 0, gomotif.ErrBadVtxID
	}
	vtxID := Xb.vtx0 + gomotif.VtxID(vtx.ID)
	if Xb.maxVtxID < vtxID {
		Xb.maxVtxID = vtxID
	}
	return vtxID, nil
}

func (Xb *graphBuilder) applyRun(run *EdgeRun) error {
	curID, err := Xb.tallyVtx(run.StartVtx)
	if err != nil {
		return err
	}

	for _, edge := range run.Edges {
		directed := edge.Kind == ">"
		if !Xb.sawEdge {
			Xb.sawEdge = true
			Xb.directed = directed
		} else if Xb.directed != directed {
			return gomotif.ErrMixedEdgeKinds
		}

		nxtID, err := Xb.tallyVtx(edge.EndVtx)
		if err != nil {
			return err
		}

		Xb.edges = append(Xb.edges, Edge{curID - 1, nxtID - 1})
		curID = nxtID
	}

	return nil
}

var parseGraphExpr = participle.MustBuild[GraphExpr]()

// InitFromString builds X from a graph expr.
//
// Vertices are 1-based integers; "-" joins them with undirected edges and ">"
// with directed edges ("1-2-3,3-1" is a triangle; "1>2>3>1" a directed cycle).
// Comma separates edge runs, ";" separates parts (vertex IDs restart), and a
// lone integer names an isolated vertex.  One expr uses one edge kind only.
func (X *Graph) InitFromString(graphExpr string) error {
	X.Init(nil)

	Xexpr, err := parseGraphExpr.ParseString("", graphExpr)
	if err != nil {
		return err
	}

	var Xb graphBuilder
	Xb.edges = X.edges[:0]

	for _, part := range Xexpr.Parts {
		err = Xb.applyPart(part)
		if err != nil {
			return err
		}
	}

	X.directed = Xb.directed
	X.vtxCount = int32(Xb.maxVtxID)
	X.edges = Xb.edges
	if !X.directed {
		for i, e := range X.edges {
			if e.A > e.B {
				X.edges[i] = Edge{e.B, e.A}
			}
		}
	}
	X.onGraphChanged()
	X.Def.TryAddGraphExpr(graphExpr)
	return nil
}
