package libmotif

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/netmotifs/gomotif/gomotif"
)

func TestSignificanceRigidTriangle(t *testing.T) {
	// Every double edge swap on a directed triangle would create a self-loop,
	// so under the default flags each null sample is the triangle itself and
	// every z-score is exactly zero.
	T3, err := NewGraphFromExpr("1>2>3>1")
	require.NoError(t, err)
	defer T3.Reclaim()

	sr, err := MotifSignificance(T3, 3, nil, gomotif.SignificanceOpts{
		NumShuffles: 25,
		RandomSeed:  1,
	})
	require.NoError(t, err)
	defer sr.Reclaim()

	require.Len(t, sr.Classes, 1)
	require.EqualValues(t, 1, sr.Classes[0].Count)
	require.EqualValues(t, 1, sr.NullMeans[0])
	require.EqualValues(t, 1, sr.NullDevs[0]) // floored
	require.EqualValues(t, 0, sr.ZScores[0])
}

func TestSignificanceDeterminism(t *testing.T) {
	X, err := RandomFixedOutDegree(20, 2, NewSeededRand(3))
	require.NoError(t, err)
	defer X.Reclaim()

	run := func() *SignificanceResult {
		sr, err := MotifSignificance(X, 3, nil, gomotif.SignificanceOpts{
			NumShuffles: 10,
			RandomSeed:  42,
		})
		require.NoError(t, err)
		return sr
	}

	a := run()
	defer a.Reclaim()
	b := run()
	defer b.Reclaim()

	require.Equal(t, a.ZScores, b.ZScores)
	require.Equal(t, a.NullMeans, b.NullMeans)
	require.Equal(t, a.NullDevs, b.NullDevs)
	require.Equal(t, len(a.Classes), len(b.Classes))
	for i := range a.Classes {
		require.Equal(t, a.Classes[i].Count, b.Classes[i].Count)
	}
}

func TestSignificanceAlignment(t *testing.T) {
	X, err := RandomFixedOutDegree(20, 2, NewSeededRand(5))
	require.NoError(t, err)
	defer X.Reclaim()

	sr, err := MotifSignificance(X, 3, nil, gomotif.SignificanceOpts{
		NumShuffles: 15,
		RandomSeed:  5,
	})
	require.NoError(t, err)
	defer sr.Reclaim()

	N := len(sr.Classes)
	require.NotZero(t, N)
	require.Len(t, sr.ZScores, N)
	require.Len(t, sr.NullMeans, N)
	require.Len(t, sr.NullDevs, N)

	for i := 0; i < N; i++ {
		require.GreaterOrEqual(t, sr.NullDevs[i], 1.0)
		z := (float64(sr.Classes[i].Count) - sr.NullMeans[i]) / sr.NullDevs[i]
		require.InDelta(t, z, sr.ZScores[i], 1e-12)
		if i > 0 {
			require.LessOrEqual(t,
				sr.Classes[i-1].Representative.EdgeCount(),
				sr.Classes[i].Representative.EdgeCount())
		}
	}
}

func TestSignificanceThreshold(t *testing.T) {
	C4, err := NewGraphFromExpr("1-2-3-4,4-1")
	require.NoError(t, err)
	defer C4.Reclaim()

	// The lone order-3 class counts 4; a threshold of 4 drops it everywhere
	sr, err := MotifSignificance(C4, 3, nil, gomotif.SignificanceOpts{
		NumShuffles:    5,
		CountThreshold: 4,
		RandomSeed:     9,
	})
	require.NoError(t, err)
	defer sr.Reclaim()
	require.Empty(t, sr.Classes)

	sr2, err := MotifSignificance(C4, 3, nil, gomotif.SignificanceOpts{
		NumShuffles:    5,
		CountThreshold: 3,
		RandomSeed:     9,
	})
	require.NoError(t, err)
	defer sr2.Reclaim()
	require.Len(t, sr2.Classes, 1)
	require.EqualValues(t, 4, sr2.Classes[0].Count)
}

func TestSignificanceZeroCountAllowedMotif(t *testing.T) {
	// With no threshold set, an allowed motif the host lacks stays in the
	// output at real count zero instead of vanishing.
	C4, err := NewGraphFromExpr("1-2-3-4,4-1")
	require.NoError(t, err)
	defer C4.Reclaim()

	path, err := NewGraphFromExpr("1-2-3")
	require.NoError(t, err)
	defer path.Reclaim()
	triangle, err := NewGraphFromExpr("1-2-3,3-1")
	require.NoError(t, err)
	defer triangle.Reclaim()

	sr, err := MotifSignificance(C4, 3, []*Graph{path, triangle}, gomotif.SignificanceOpts{
		NumShuffles: 10,
		RandomSeed:  4,
	})
	require.NoError(t, err)
	defer sr.Reclaim()

	require.Len(t, sr.Classes, 2)

	// C4 is the only simple 2-regular graph on 4 vertices, so every null
	// sample is again triangle-free: the triangle class scores exactly zero.
	require.EqualValues(t, 4, sr.Classes[0].Count) // path
	require.EqualValues(t, 0, sr.Classes[1].Count) // triangle
	require.EqualValues(t, 0, sr.NullMeans[1])
	require.EqualValues(t, 1, sr.NullDevs[1])
	require.EqualValues(t, 0, sr.ZScores[1])
}

func TestSignificanceBadShuffleCount(t *testing.T) {
	X, err := NewGraphFromExpr("1-2-3")
	require.NoError(t, err)
	defer X.Reclaim()

	_, err = MotifSignificance(X, 3, nil, gomotif.SignificanceOpts{NumShuffles: -1})
	require.ErrorIs(t, err, gomotif.ErrBadShuffleCount)
}

// TestEnsembleNullOnlyClass drives the accumulator directly: a class seen only
// in null samples joins at real count zero and scores negative.
func TestEnsembleNullOnlyClass(t *testing.T) {
	path, err := NewGraphFromExpr("1-2-3")
	require.NoError(t, err)
	defer path.Reclaim()
	triangle, err := NewGraphFromExpr("1-2-3,3-1")
	require.NoError(t, err)
	defer triangle.Reclaim()

	realCensus, err := Census(path, 3, nil, gomotif.CensusOpts{})
	require.NoError(t, err)

	var ens ensemble
	ens.seedFromCensus(realCensus, 0)
	require.Len(t, ens.classes.arena, 1)

	// Two null rounds that each contain 3 triangles and no paths
	for round := 0; round < 2; round++ {
		nullCensus, err := Census(triangle, 3, nil, gomotif.CensusOpts{})
		require.NoError(t, err)
		nullCensus.Classes[0].Count = 3
		require.NoError(t, ens.mergeSample(nullCensus, 0))
	}

	sr := ens.finalize(3, 2)
	defer sr.Reclaim()
	require.Len(t, sr.Classes, 2)

	for i, mc := range sr.Classes {
		if mc.Representative.EdgeCount() == 2 {
			// The real path class: never seen in null rounds
			require.EqualValues(t, 1, mc.Count)
			require.EqualValues(t, 0, sr.NullMeans[i])
			require.EqualValues(t, 1, sr.ZScores[i])
		} else {
			// The null-only triangle class
			require.EqualValues(t, 0, mc.Count)
			require.EqualValues(t, 3, sr.NullMeans[i])
			require.EqualValues(t, 1, sr.NullDevs[i])
			require.EqualValues(t, -3, sr.ZScores[i])
		}
	}
}

// TestEnsembleMoments cross-checks the running-sum accumulators against gonum's
// population moments.
func TestEnsembleMoments(t *testing.T) {
	path, err := NewGraphFromExpr("1-2-3")
	require.NoError(t, err)
	defer path.Reclaim()

	realCensus, err := Census(path, 3, nil, gomotif.CensusOpts{})
	require.NoError(t, err)

	var ens ensemble
	ens.seedFromCensus(realCensus, 0)

	nullCounts := []float64{1, 5, 3, 7, 2}
	for _, n := range nullCounts {
		sample, err := Census(path, 3, nil, gomotif.CensusOpts{})
		require.NoError(t, err)
		sample.Classes[0].Count = int64(n)
		require.NoError(t, ens.mergeSample(sample, 0))
	}

	sr := ens.finalize(3, len(nullCounts))
	defer sr.Reclaim()
	require.Len(t, sr.Classes, 1)

	wantMean := stat.Mean(nullCounts, nil)
	wantDev := stat.PopStdDev(nullCounts, nil)
	require.InDelta(t, wantMean, sr.NullMeans[0], 1e-9)
	require.InDelta(t, wantDev, sr.NullDevs[0], 1e-9)
	require.InDelta(t, (1-wantMean)/wantDev, sr.ZScores[0], 1e-9)
}

// TestEnsembleAllFiltered: a sample whose classes all fall under the threshold
// contributes zero across the board.
func TestEnsembleAllFiltered(t *testing.T) {
	path, err := NewGraphFromExpr("1-2-3")
	require.NoError(t, err)
	defer path.Reclaim()

	realCensus, err := Census(path, 3, nil, gomotif.CensusOpts{})
	require.NoError(t, err)
	realCensus.Classes[0].Count = 5

	var ens ensemble
	ens.seedFromCensus(realCensus, 0)

	sample, err := Census(path, 3, nil, gomotif.CensusOpts{})
	require.NoError(t, err)
	require.NoError(t, ens.mergeSample(sample, 2)) // count 1 <= 2: filtered

	sr := ens.finalize(3, 1)
	defer sr.Reclaim()
	require.Len(t, sr.Classes, 1)
	require.EqualValues(t, 0, sr.NullMeans[0])
	require.EqualValues(t, 1, sr.NullDevs[0])
	require.EqualValues(t, 5, sr.ZScores[0])
}
