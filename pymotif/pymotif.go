package pymotif

// Copyright 2018 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/go-python/gpython/py"

	"github.com/netmotifs/gomotif/gomotif"
	"github.com/netmotifs/gomotif/libmotif"
	"github.com/netmotifs/gomotif/libmotif/catalog"
)

var (
	LIB_VERSION = "v1.2024.1"
)

var (
	pyGraphType       = py.NewType("Graph", "a directed or undirected multigraph")
	pyMotifStreamType = py.NewType("MotifStream", "libmotif.MotifStream")
	pyCatalogType     = py.NewType("Catalog", "gomotif.Catalog")
	pyWorkspaceType   = py.NewType("Workspace", "collects active session resources and catalogs")
)

func getGraphFromGraphObj(obj py.Object) (X pyGraph, err error) {
	if g, isGraph := obj.(pyGraph); isGraph {
		return g, nil
	}
	if obj.Type().Name != "Graph" {
		err = py.ExceptionNewf(py.TypeError, "expected Graph object (got %v)", obj.Type().Name)
		return
	}
	var attr py.Object
	attr, err = py.GetAttrString(obj, "_graph")
	if err != nil {
		return
	}
	X = attr.(pyGraph)
	return
}

type pyGraph struct {
	*libmotif.Graph
}

func (X pyGraph) Type() *py.Type {
	return pyGraphType
}

func (X pyGraph) M__str__() (py.Object, error) {
	writer := strings.Builder{}
	X.WriteAsString(&writer, gomotif.DefaultPrintOpts)
	return py.String(writer.String()), nil
}

func (X pyGraph) M__repr__() (py.Object, error) {
	return X.M__str__()
}

// Arg 1 (str, optional): graph expr, e.g. "1-2-3,3-1" or "1>2>3>1"
func py_NewGraph(module py.Object, args py.Tuple) (py.Object, error) {
	X := libmotif.NewGraph(nil)
	if len(args) > 0 {
		if expr, isStr := args[0].(py.String); isStr {
			if err := X.InitFromString(string(expr)); err != nil {
				X.Reclaim()
				return nil, py.ExceptionNewf(py.ValueError, "bad graph expr: %v", err)
			}
		}
	}
	return py.Object(pyGraph{X}), nil
}

// Arg 1 (int): vertex count
// Arg 2 (int): out degree
// Arg 3 (int): random seed
func py_RandomGraph(module py.Object, args py.Tuple) (py.Object, error) {
	var n, outDeg, seed py.Object
	err := py.ParseTuple(args, "iii", &n, &outDeg, &seed)
	if err != nil {
		return nil, err
	}

	X, err := libmotif.RandomFixedOutDegree(
		int(n.(py.Int)), int(outDeg.(py.Int)),
		libmotif.NewSeededRand(int64(seed.(py.Int))))
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(pyGraph{X}), nil
}

// Arg 1 (int): motif order k
// Arg 2 (bool): directed
func py_EnumMotifs(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) < 1 {
		return nil, py.ExceptionNewf(py.TypeError, "EnumMotifs(k) requires a motif order")
	}
	k, err := py.GetInt(args[0])
	if err != nil {
		return nil, err
	}
	directed := len(args) > 1 && args[1] == py.True

	stream, err := libmotif.EnumMotifClasses(int(k), directed)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return wrapMotifStream(stream), nil
}

func py_Graph_NumVerts(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return py.Object(py.Int(X.VertexCount())), nil
}

func py_Graph_NumEdges(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return py.Object(py.Int(X.EdgeCount())), nil
}

func py_Graph_NumParts(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return py.Object(py.Int(X.NumParts())), nil
}

func py_Graph_IsDirected(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	if X.IsDirected() {
		return py.True, nil
	}
	return py.False, nil
}

func py_Graph_Signature(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	sig := X.AppendSignatureTo(nil)
	return py.Object(py.Bytes(sig)), nil
}

func py_Graph_UndirectedView(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	U := libmotif.NewGraph(nil)
	X.UndirectedView(U)
	return py.Object(pyGraph{U}), nil
}

func py_Graph_Stream(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	next := libmotif.StreamGraph(X.Graph)
	return wrapMotifStream(next), nil
}

func getFloat(obj py.Object) (float64, error) {
	switch v := obj.(type) {
	case py.Float:
		return float64(v), nil
	case py.Int:
		return float64(v), nil
	}
	return 0, py.ExceptionNewf(py.TypeError, "a number is required (got %v)", obj.Type().Name)
}

// loadSampleProb reads a "p" kwarg: scalar prob or one prob per depth.
func loadSampleProb(kwargs py.StringDict) ([]float64, error) {
	pObj, ok := kwargs["p"]
	if !ok {
		return nil, nil
	}
	switch v := pObj.(type) {
	case py.Float:
		return []float64{float64(v)}, nil
	case py.Int:
		return []float64{float64(v)}, nil
	case py.Tuple:
		probs := make([]float64, len(v))
		for i, item := range v {
			f, err := getFloat(item)
			if err != nil {
				return nil, err
			}
			probs[i] = f
		}
		return probs, nil
	case *py.List:
		probs := make([]float64, len(v.Items))
		for i, item := range v.Items {
			f, err := getFloat(item)
			if err != nil {
				return nil, err
			}
			probs[i] = f
		}
		return probs, nil
	}
	return nil, py.ExceptionNewf(py.TypeError, "p must be a number or a list of numbers")
}

// loadMotifList reads a "motif_list" kwarg: a list/tuple of Graph objects.
func loadMotifList(kwargs py.StringDict) ([]*libmotif.Graph, error) {
	listObj, ok := kwargs["motif_list"]
	if !ok {
		return nil, nil
	}

	var items []py.Object
	switch v := listObj.(type) {
	case py.NoneType:
		return nil, nil
	case py.Tuple:
		items = v
	case *py.List:
		items = v.Items
	default:
		return nil, py.ExceptionNewf(py.TypeError, "motif_list must be a list of Graph objects")
	}

	motifs := make([]*libmotif.Graph, len(items))
	for i, item := range items {
		X, err := getGraphFromGraphObj(item)
		if err != nil {
			return nil, err
		}
		motifs[i] = X.Graph
	}
	return motifs, nil
}

// Arg 1 (Graph): host graph
// Arg 2 (int):   motif order k
// kwargs: p, motif_list, return_maps, seed
//
// Returns (motifs, counts) or (motifs, counts, vertex_maps).
func py_Motifs(module py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	if len(args) < 2 {
		return nil, py.ExceptionNewf(py.TypeError, "Motifs(g, k) requires a Graph and a motif order")
	}
	X, err := getGraphFromGraphObj(args[0])
	if err != nil {
		return nil, err
	}
	k, err := py.GetInt(args[1])
	if err != nil {
		return nil, err
	}

	opts := gomotif.CensusOpts{}
	if opts.SampleProb, err = loadSampleProb(kwargs); err != nil {
		return nil, err
	}
	allowed, err := loadMotifList(kwargs)
	if err != nil {
		return nil, err
	}
	var seed int
	py.LoadAttr(kwargs, "seed", &seed)
	opts.RandomSeed = int64(seed)
	py.LoadAttr(kwargs, "return_maps", &opts.CollectEmbeddings)

	result, err := libmotif.Census(X.Graph, int(k), allowed, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}

	N := len(result.Classes)
	motifs := make(py.Tuple, N)
	counts := make(py.Tuple, N)
	maps := make(py.Tuple, N)
	for i, mc := range result.Classes {
		motifs[i] = py.Object(pyGraph{mc.Representative})
		counts[i] = py.Int(mc.Count)
		if opts.CollectEmbeddings {
			perClass := make(py.Tuple, len(mc.Embeddings))
			for mi, vm := range mc.Embeddings {
				verts := make(py.Tuple, len(vm))
				for vi, v := range vm {
					verts[vi] = py.Int(v)
				}
				perClass[mi] = verts
			}
			maps[i] = perClass
		}
	}
	result.Classes = nil

	if opts.CollectEmbeddings {
		return py.Tuple{motifs, counts, maps}, nil
	}
	return py.Tuple{motifs, counts}, nil
}

// Arg 1 (Graph): host graph
// Arg 2 (int):   motif order k
// kwargs: n_shuffles, p, motif_list, threshold, self_loops, parallel_edges,
//         shuffle_model, full_output, seed
//
// Returns (motifs, zscores), plus (counts, means, devs) when full_output.
func py_MotifSignificance(module py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	if len(args) < 2 {
		return nil, py.ExceptionNewf(py.TypeError, "MotifSignificance(g, k) requires a Graph and a motif order")
	}
	X, err := getGraphFromGraphObj(args[0])
	if err != nil {
		return nil, err
	}
	k, err := py.GetInt(args[1])
	if err != nil {
		return nil, err
	}

	opts := gomotif.DefaultSignificanceOpts
	if opts.SampleProb, err = loadSampleProb(kwargs); err != nil {
		return nil, err
	}
	allowed, err := loadMotifList(kwargs)
	if err != nil {
		return nil, err
	}

	var threshold, seed int
	var shuffleModel string
	py.LoadAttr(kwargs, "n_shuffles", &opts.NumShuffles)
	py.LoadAttr(kwargs, "threshold", &threshold)
	py.LoadAttr(kwargs, "self_loops", &opts.Rewire.SelfLoops)
	py.LoadAttr(kwargs, "parallel_edges", &opts.Rewire.ParallelEdges)
	py.LoadAttr(kwargs, "shuffle_model", &shuffleModel)
	py.LoadAttr(kwargs, "full_output", &opts.FullOutput)
	py.LoadAttr(kwargs, "seed", &seed)
	opts.CountThreshold = int64(threshold)
	opts.RandomSeed = int64(seed)

	if opts.Rewire.Model, err = gomotif.ParseRewireModel(shuffleModel); err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v: %q", err, shuffleModel)
	}

	result, err := libmotif.MotifSignificance(X.Graph, int(k), allowed, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}

	N := len(result.Classes)
	motifs := make(py.Tuple, N)
	zscores := make(py.Tuple, N)
	counts := make(py.Tuple, N)
	means := make(py.Tuple, N)
	devs := make(py.Tuple, N)
	for i, mc := range result.Classes {
		motifs[i] = py.Object(pyGraph{mc.Representative})
		zscores[i] = py.Float(result.ZScores[i])
		counts[i] = py.Int(mc.Count)
		means[i] = py.Float(result.NullMeans[i])
		devs[i] = py.Float(result.NullDevs[i])
	}
	result.Classes = nil

	if opts.FullOutput {
		return py.Tuple{motifs, zscores, counts, means, devs}, nil
	}
	return py.Tuple{motifs, zscores}, nil
}

// Arg 1 (list): z-scores
//
// Returns the normalized significance profile (z / ||z||2).
func py_Profile(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) < 1 {
		return nil, py.ExceptionNewf(py.TypeError, "Profile(zscores) requires a list of numbers")
	}

	var items []py.Object
	switch v := args[0].(type) {
	case py.Tuple:
		items = v
	case *py.List:
		items = v.Items
	default:
		return nil, py.ExceptionNewf(py.TypeError, "Profile(zscores) requires a list of numbers")
	}

	zscores := make([]float64, len(items))
	for i, item := range items {
		f, err := getFloat(item)
		if err != nil {
			return nil, err
		}
		zscores[i] = f
	}

	sp := libmotif.Profile(zscores)
	out := make(py.Tuple, len(sp))
	for i, f := range sp {
		out[i] = py.Float(f)
	}
	return out, nil
}

const (
	READ_ONLY = 0x01

	kWorkspaceAttr = "_Workspace"
)

type Workspace struct {
	CatalogCtx gomotif.CatalogContext
}

func (ws *Workspace) Close() {
	ws.CatalogCtx.Close()
	<-ws.CatalogCtx.Done()
}

func (ws *Workspace) Type() *py.Type {
	return pyWorkspaceType
}

func py_GetWorkspace(module py.Object, args py.Tuple) (py.Object, error) {
	wsObj, _ := py.GetAttrString(module, kWorkspaceAttr)
	if wsObj == nil {
		ws := &Workspace{
			CatalogCtx: gomotif.NewCatalogContext(),
		}
		wsObj = ws
		py.SetAttrString(module, kWorkspaceAttr, wsObj)
	}
	return wsObj, nil
}

func py_Workspace_CatalogExists(self py.Object, args py.Tuple) (py.Object, error) {
	_ = self.(*Workspace)

	var pathname string
	err := py.LoadTuple(args, []interface{}{&pathname})
	if err != nil {
		return nil, err
	}
	_, err = os.Stat(pathname)
	if os.IsNotExist(err) {
		return py.False, nil
	}
	return py.True, nil
}

func py_Workspace_OpenCatalog(self py.Object, args py.Tuple) (py.Object, error) {
	ws := self.(*Workspace)

	var pathname string
	var flags, motifOrderCap int32
	err := py.LoadTuple(args, []interface{}{&pathname, &flags, &motifOrderCap})
	if err != nil {
		return nil, err
	}

	opts := gomotif.CatalogOpts{
		ReadOnly:      (flags & READ_ONLY) != 0,
		DbPathName:    pathname,
		MotifOrderCap: motifOrderCap,
	}

	cat, err := catalog.OpenCatalog(ws.CatalogCtx, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}

	pyCat := pyCatalog{cat}
	return py.Object(pyCat), nil
}

type pyCatalog struct {
	gomotif.Catalog
}

func (cat pyCatalog) Type() *py.Type {
	return pyCatalogType
}

func py_Catalog_Close(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	if cat.Catalog != nil {
		cat.Close()
	}
	return py.None, nil
}

func py_Catalog_Select(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	sel := gomotif.DefaultMotifSelector
	if len(args) > 0 {
		err := getMotifSelector(args[0], &sel)
		if err != nil {
			return nil, err
		}
	}

	next := libmotif.SelectFromCatalog(cat, sel)
	return wrapMotifStream(next), nil
}

func py_Catalog_NumMotifs(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)

	order, err := py.GetInt(args[0])
	if err != nil {
		return nil, err
	}

	numMotifs := cat.NumMotifs(int32(order))
	return py.Int(numMotifs), nil
}

type motifStream struct {
	*libmotif.MotifStream
}

func (stream motifStream) Type() *py.Type {
	return pyMotifStreamType
}

func wrapMotifStream(stream *libmotif.MotifStream) py.Object {
	return py.Object(motifStream{stream})
}

func py_MotifStream_Go(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(motifStream)
	count := stream.PullAll()
	return py.Int(count), nil
}

type echoToWriter struct {
	stdout *os.File
	to     io.WriteCloser
}

func (echo *echoToWriter) Write(buf []byte) (int, error) {
	var (
		n   int
		err error
	)
	if echo.to == nil {
		n, err = echo.stdout.Write(buf)
	} else {
		n, err = echo.to.Write(buf)
	}
	return n, err
}

func (echo *echoToWriter) Close() error {
	if echo.to != nil {
		return echo.to.Close()
	}
	return nil
}

var gOutCount = int32(0)

// See lib/pymotif.py Print() docs
func py_MotifStream_Print(self py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	stream := self.(motifStream)
	var pathname string

	opts := gomotif.DefaultPrintOpts

	py.LoadTuple(args, []interface{}{&opts.Label})
	if opts.Label == "" {
		py.LoadAttr(kwargs, "label", &opts.Label)
	}

	// TODO: move this to the Workspace obj so output counter is within the workspace (vs global)
	atomic.AddInt32(&gOutCount, 1)
	if opts.Label == "" {
		opts.Label = fmt.Sprintf("out[%d]", gOutCount)
	}

	py.LoadAttr(kwargs, "graph", &opts.Graph)
	py.LoadAttr(kwargs, "signature", &opts.Signature)
	py.LoadAttr(kwargs, "file", &pathname)

	// See TODO on also allowing output object instead of filename
	writer := &echoToWriter{
		stdout: os.Stdout,
	}
	if len(pathname) > 0 {
		os.MkdirAll(filepath.Dir(pathname), 0700)

		file, err := os.OpenFile(string(pathname), os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
		}
		writer.to = file
	}

	next := stream.Print(writer, opts)
	return wrapMotifStream(next), nil
}

func py_MotifStream_AddTo(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(motifStream)
	attr, err := py.GetAttrString(args[0], "_cat")
	if err != nil {
		return nil, err
	}
	cat := attr.(pyCatalog)
	if cat.IsReadOnly() {
		return nil, py.ExceptionNewf(py.PermissionError, "%v", errors.New("catalog is in read-only mode"))
	}

	next := stream.AddTo(cat, libmotif.AddMotifOpts{})
	return wrapMotifStream(next), nil
}

func py_MotifStream_DropDupes(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(motifStream)
	next := stream.DropDupes()
	return wrapMotifStream(next), nil
}

func py_MotifStream_Select(self py.Object, args py.Tuple) (py.Object, error) {
	sel := gomotif.DefaultMotifSelector
	err := getMotifSelector(args[0], &sel)
	if err != nil {
		return nil, err
	}
	stream := self.(motifStream)
	next := stream.SelectFromStream(sel)
	return wrapMotifStream(next), nil
}

func init() {

	/////////////////////////////////
	// Graph
	{
		pyGraphType.Dict["NumVerts"] = py.MustNewMethod("NumVerts", py_Graph_NumVerts, 0, "")
		pyGraphType.Dict["NumEdges"] = py.MustNewMethod("NumEdges", py_Graph_NumEdges, 0, "")
		pyGraphType.Dict["NumParts"] = py.MustNewMethod("NumParts", py_Graph_NumParts, 0, "")
		pyGraphType.Dict["IsDirected"] = py.MustNewMethod("IsDirected", py_Graph_IsDirected, 0, "")
		pyGraphType.Dict["Signature"] = py.MustNewMethod("Signature", py_Graph_Signature, 0, "exports this Graph's degree signature as a bytes object")
		pyGraphType.Dict["UndirectedView"] = py.MustNewMethod("UndirectedView", py_Graph_UndirectedView, 0, "")
		pyGraphType.Dict["Stream"] = py.MustNewMethod("Stream", py_Graph_Stream, 0, "")
	}

	/////////////////////////////////
	// Catalog
	{
		pyCatalogType.Dict["Select"] = py.MustNewMethod("Select", py_Catalog_Select, 0, "")
		pyCatalogType.Dict["NumMotifs"] = py.MustNewMethod("NumMotifs", py_Catalog_NumMotifs, 0, "")
		pyCatalogType.Dict["Close"] = py.MustNewMethod("Close", py_Catalog_Close, 0, "")
	}

	/////////////////////////////////
	// Workspace
	{
		pyWorkspaceType.Dict["OpenCatalog"] = py.MustNewMethod("OpenCatalog", py_Workspace_OpenCatalog, 0, "")
		pyWorkspaceType.Dict["CatalogExists"] = py.MustNewMethod("CatalogExists", py_Workspace_CatalogExists, 0, "")
	}

	/////////////////////////////////
	// MotifStream
	{
		pyMotifStreamType.Dict["Go"] = py.MustNewMethod("Go", py_MotifStream_Go, 0, "counts the number of graphs output from the MotifStream")
		pyMotifStreamType.Dict["Print"] = py.MustNewMethod("Print", py_MotifStream_Print, 0, "prints each graph from the MotifStream")
		pyMotifStreamType.Dict["AddTo"] = py.MustNewMethod("AddTo", py_MotifStream_AddTo, 0, "")
		pyMotifStreamType.Dict["DropDupes"] = py.MustNewMethod("DropDupes", py_MotifStream_DropDupes, 0, "")
		pyMotifStreamType.Dict["Select"] = py.MustNewMethod("Select", py_MotifStream_Select, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("NewGraph", py_NewGraph, 0, ""),
			py.MustNewMethod("RandomGraph", py_RandomGraph, 0, ""),
			py.MustNewMethod("EnumMotifs", py_EnumMotifs, 0, ""),
			py.MustNewMethod("Motifs", py_Motifs, 0, ""),
			py.MustNewMethod("MotifSignificance", py_MotifSignificance, 0, ""),
			py.MustNewMethod("Profile", py_Profile, 0, ""),
			py.MustNewMethod("GetWorkspace", py_GetWorkspace, 0, ""),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"PY_VERSION":  py.String("v3.4.0"),
			"MAX_VTX":     py.Int(gomotif.MaxMotifVtx),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pymotif",
				Doc:  "network motif census and significance gpython module",
			},
			Methods: methods,
			Globals: globals,
			OnContextClosed: func(m *py.Module) {
				wsObj, _ := py.GetAttrString(m, kWorkspaceAttr)
				if wsObj != nil {
					wsObj.(*Workspace).Close()
				}
			},
		})

	}
}

func intAttr(obj py.Object, key string, min, max int64) int64 {
	attr, err := py.GetAttrString(obj, key)
	if err != nil {
		panic(err)
	}
	val, _ := py.GetInt(attr)
	intVal := int64(val)
	if intVal < min {
		intVal = min
	}
	if intVal > max {
		intVal = max
	}
	return intVal
}

func exportGraphInfo(graphInfo py.Object) gomotif.GraphInfo {
	info := gomotif.GraphInfo{
		NumVerts: int32(intAttr(graphInfo, "verts", 0, gomotif.MaxMotifVtx)),
		NumEdges: int32(intAttr(graphInfo, "edges", 0, gomotif.MaxMotifVtx*gomotif.MaxMotifVtx)),
		NumParts: int32(intAttr(graphInfo, "parts", 0, gomotif.MaxMotifVtx)),
	}
	return info
}

func getMotifSelector(motif_selector py.Object, sel *gomotif.MotifSelector) error {

	info, err := py.GetAttrString(motif_selector, "min")
	if err != nil {
		return err
	}
	sel.Min = exportGraphInfo(info)

	info, err = py.GetAttrString(motif_selector, "max")
	if err != nil {
		return err
	}
	sel.Max = exportGraphInfo(info)

	return nil
}
