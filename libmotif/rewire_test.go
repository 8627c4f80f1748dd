package libmotif_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netmotifs/gomotif/gomotif"
	"github.com/netmotifs/gomotif/libmotif"
)

func TestRewireConfigurationPreservesDegrees(t *testing.T) {
	X, err := libmotif.RandomFixedOutDegree(40, 3, libmotif.NewSeededRand(11))
	require.NoError(t, err)
	defer X.Reclaim()

	outBefore := X.DegreeSequence(gomotif.DegreeOut, nil)
	inBefore := X.DegreeSequence(gomotif.DegreeIn, nil)
	edgesBefore := X.EdgeCount()

	err = libmotif.Rewire(X, gomotif.RewireConfig{Model: gomotif.RewireConfiguration}, libmotif.NewSeededRand(12))
	require.NoError(t, err)

	// Per-vertex degrees survive, not just the sorted sequence
	require.Equal(t, outBefore, X.DegreeSequence(gomotif.DegreeOut, nil))
	require.Equal(t, inBefore, X.DegreeSequence(gomotif.DegreeIn, nil))
	require.Equal(t, edgesBefore, X.EdgeCount())
}

func TestRewireUndirectedPreservesDegrees(t *testing.T) {
	X := mustGraph(t, "1-2-3-4-5-6,6-1,1-4,2-5")
	defer X.Reclaim()

	before := X.DegreeSequence(gomotif.DegreeTotal, nil)
	err := libmotif.Rewire(X, gomotif.RewireConfig{Model: gomotif.RewireConfiguration}, libmotif.NewSeededRand(21))
	require.NoError(t, err)
	require.Equal(t, before, X.DegreeSequence(gomotif.DegreeTotal, nil))
}

func TestRewireFlagsHonored(t *testing.T) {
	hasLoopOrParallel := func(X *libmotif.Graph) (loops, parallels bool) {
		seen := map[libmotif.Edge]bool{}
		for _, e := range X.Edges() {
			if e.A == e.B {
				loops = true
			}
			if seen[e] {
				parallels = true
			}
			seen[e] = true
		}
		return
	}

	for _, model := range []gomotif.RewireModel{
		gomotif.RewireConfiguration,
		gomotif.RewireConstrained,
		gomotif.RewireErdos,
	} {
		X, err := libmotif.RandomFixedOutDegree(25, 3, libmotif.NewSeededRand(31))
		require.NoError(t, err)

		err = libmotif.Rewire(X, gomotif.RewireConfig{Model: model}, libmotif.NewSeededRand(32))
		require.NoError(t, err)

		loops, parallels := hasLoopOrParallel(X)
		require.False(t, loops, "model %v made a self-loop", model)
		require.False(t, parallels, "model %v made a parallel edge", model)
		X.Reclaim()
	}

	// RewireConstrained forces the flags off even when set
	X, err := libmotif.RandomFixedOutDegree(25, 3, libmotif.NewSeededRand(33))
	require.NoError(t, err)
	defer X.Reclaim()
	err = libmotif.Rewire(X, gomotif.RewireConfig{
		Model:         gomotif.RewireConstrained,
		SelfLoops:     true,
		ParallelEdges: true,
	}, libmotif.NewSeededRand(34))
	require.NoError(t, err)
	loops, parallels := hasLoopOrParallel(X)
	require.False(t, loops)
	require.False(t, parallels)
}

func TestRewireErdosPreservesCounts(t *testing.T) {
	X, err := libmotif.RandomFixedOutDegree(20, 2, libmotif.NewSeededRand(41))
	require.NoError(t, err)
	defer X.Reclaim()

	nv, ne := X.VertexCount(), X.EdgeCount()
	err = libmotif.Rewire(X, gomotif.RewireConfig{Model: gomotif.RewireErdos}, libmotif.NewSeededRand(42))
	require.NoError(t, err)
	require.Equal(t, nv, X.VertexCount())
	require.Equal(t, ne, X.EdgeCount())
}

func TestRewireDeterminism(t *testing.T) {
	run := func() []libmotif.Edge {
		X, err := libmotif.RandomFixedOutDegree(30, 2, libmotif.NewSeededRand(51))
		require.NoError(t, err)
		defer X.Reclaim()
		err = libmotif.Rewire(X, gomotif.RewireConfig{Model: gomotif.RewireConfiguration}, libmotif.NewSeededRand(52))
		require.NoError(t, err)
		return append([]libmotif.Edge{}, X.Edges()...)
	}
	require.Equal(t, run(), run())
}

func TestRewireErrors(t *testing.T) {
	err := libmotif.Rewire(nil, gomotif.RewireConfig{}, libmotif.NewSeededRand(0))
	require.ErrorIs(t, err, gomotif.ErrNilGraph)

	X := mustGraph(t, "1-2")
	defer X.Reclaim()
	err = libmotif.Rewire(X, gomotif.RewireConfig{Model: gomotif.RewireModel(99)}, libmotif.NewSeededRand(0))
	require.ErrorIs(t, err, gomotif.ErrBadShuffleModel)
}

func TestParseRewireModel(t *testing.T) {
	for name, want := range map[string]gomotif.RewireModel{
		"":                          gomotif.RewireConfiguration,
		"configuration":             gomotif.RewireConfiguration,
		"constrained-configuration": gomotif.RewireConstrained,
		"erdos":                     gomotif.RewireErdos,
	} {
		model, err := gomotif.ParseRewireModel(name)
		require.NoError(t, err)
		require.Equal(t, want, model)
		if name != "" {
			require.Equal(t, name, model.String())
		}
	}

	_, err := gomotif.ParseRewireModel("bogus")
	require.ErrorIs(t, err, gomotif.ErrBadShuffleModel)
}

func TestRandomFixedOutDegree(t *testing.T) {
	X, err := libmotif.RandomFixedOutDegree(12, 3, libmotif.NewSeededRand(61))
	require.NoError(t, err)
	defer X.Reclaim()

	require.True(t, X.IsDirected())
	require.Equal(t, 12*3, X.EdgeCount())
	for v := gomotif.VtxID(0); v < 12; v++ {
		require.EqualValues(t, 3, X.Degree(v, gomotif.DegreeOut))
	}
	for _, e := range X.Edges() {
		require.NotEqual(t, e.A, e.B)
	}

	_, err = libmotif.RandomFixedOutDegree(3, 3, libmotif.NewSeededRand(0))
	require.ErrorIs(t, err, gomotif.ErrBadVtxID)
}
