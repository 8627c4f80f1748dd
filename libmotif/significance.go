package libmotif

import (
	"math"
	"sort"

	"github.com/plan-systems/klog"

	"github.com/netmotifs/gomotif/gomotif"
)

// SignificanceResult pairs each motif class with its z-score against the null
// ensemble.  Entries are in canonical class order and index-aligned across all
// slices; Classes[i].Count holds the real census count (zero for classes seen
// only in null samples).
//
// Z-scores use the raw null deviation floored at 1 and are not normalized
// further; see Profile for the normalized significance profile.
type SignificanceResult struct {
	MotifOrder int
	Classes    []*MotifClass
	ZScores    []float64
	NullMeans  []float64
	NullDevs   []float64
}

// Reclaim recycles all class representatives.  Caller asserts no references persist.
func (sr *SignificanceResult) Reclaim() {
	for _, mc := range sr.Classes {
		mc.Representative.Reclaim()
	}
	sr.Classes = nil
}

// ensemble accumulates null-sample counts per motif class, index-aligned with
// its class set's arena.
type ensemble struct {
	classes *classSet
	real    []int64
	sum     []float64
	sqSum   []float64
}

// seedFromCensus installs the real census, dropping classes at or under a
// positive count threshold (class and count leave together).  A threshold of
// zero keeps everything, zero-count allowed motifs included.  Ownership of
// kept representatives transfers to the ensemble.
func (ens *ensemble) seedFromCensus(cr *CensusResult, threshold int64) {
	ens.classes = newClassSet()
	for _, mc := range cr.Classes {
		if threshold > 0 && mc.Count <= threshold {
			mc.Representative.Reclaim()
			continue
		}
		ci := ens.classes.add(mc.Representative, mc.sig)
		ens.classes.arena[ci].Count = mc.Count
		ens.real = append(ens.real, mc.Count)
		ens.sum = append(ens.sum, 0)
		ens.sqSum = append(ens.sqSum, 0)
	}
	cr.Classes = nil
}

// mergeSample folds one null census into the accumulators.  The same threshold
// filter applies to the sample; classes the ensemble has never seen enter with
// a real count of zero.  Classes absent from this sample implicitly contribute
// zero, including the all-filtered case.
func (ens *ensemble) mergeSample(cr *CensusResult, threshold int64) error {
	for _, mc := range cr.Classes {
		if threshold > 0 && mc.Count <= threshold {
			mc.Representative.Reclaim()
			continue
		}
		ci, err := ens.classes.match(mc.Representative, mc.sig)
		if err != nil {
			return err
		}
		if ci < 0 {
			ci = ens.classes.add(mc.Representative, mc.sig)
			ens.real = append(ens.real, 0)
			ens.sum = append(ens.sum, 0)
			ens.sqSum = append(ens.sqSum, 0)
		} else {
			mc.Representative.Reclaim()
		}
		n := float64(mc.Count)
		ens.sum[ci] += n
		ens.sqSum[ci] += n * n
	}
	cr.Classes = nil
	return nil
}

// finalize closes the ensemble over numSamples null rounds: null moments per
// class, deviation floored at 1, one re-sort into canonical class order that
// carries representative, real count and null stats together, then z-scores.
func (ens *ensemble) finalize(motifOrder, numSamples int) *SignificanceResult {
	N := len(ens.classes.arena)
	sr := &SignificanceResult{
		MotifOrder: motifOrder,
		Classes:    make([]*MotifClass, N),
		ZScores:    make([]float64, N),
		NullMeans:  make([]float64, N),
		NullDevs:   make([]float64, N),
	}

	order := make([]int, N)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return ens.classes.arena[order[i]].less(ens.classes.arena[order[j]])
	})

	n := float64(numSamples)
	for dst, src := range order {
		mc := ens.classes.arena[src]
		mc.Count = ens.real[src]

		mean := ens.sum[src] / n
		dev := math.Sqrt(math.Max(ens.sqSum[src]/n-mean*mean, 0))
		if dev < 1 {
			dev = 1
		}

		sr.Classes[dst] = mc
		sr.NullMeans[dst] = mean
		sr.NullDevs[dst] = dev
		sr.ZScores[dst] = (float64(ens.real[src]) - mean) / dev
	}
	return sr
}

// MotifSignificance estimates how over- or under-represented each order-k motif
// of X is against a degree-preserving (or chosen) null model.
//
// The real census runs first; a positive opts.CountThreshold drops classes at
// or under it.  Then opts.NumShuffles rounds run strictly sequentially on a single
// mutable copy of X: rewire, census, merge.  Classes discovered only in null
// samples join with a real count of zero.  Finally z[i] = (real[i] - mean[i])
// / max(dev[i], 1), index-aligned with the canonically re-sorted class list.
//
// A non-empty allowed list restricts both the real and every null census.  All
// randomness derives from opts.RandomSeed; any census or rewire error aborts
// the whole call with no partial result.
func MotifSignificance(X *Graph, k int, allowed []*Graph, opts gomotif.SignificanceOpts) (*SignificanceResult, error) {
	if X == nil {
		return nil, gomotif.ErrNilGraph
	}
	numShuffles := opts.NumShuffles
	if numShuffles == 0 {
		numShuffles = gomotif.DefaultSignificanceOpts.NumShuffles
	}
	if numShuffles < 0 {
		return nil, gomotif.ErrBadShuffleCount
	}

	rng := NewSeededRand(opts.RandomSeed)

	censusOpts := gomotif.CensusOpts{
		SampleProb: opts.SampleProb,
		RandomSeed: rng.Int63(),
	}
	realCensus, err := Census(X, k, allowed, censusOpts)
	if err != nil {
		return nil, err
	}

	var ens ensemble
	ens.seedFromCensus(realCensus, opts.CountThreshold)

	Y := NewGraph(X)
	defer Y.Reclaim()

	for si := 0; si < numShuffles; si++ {
		if err := Rewire(Y, opts.Rewire, rng); err != nil {
			return nil, err
		}
		censusOpts.RandomSeed = rng.Int63()
		sample, err := Census(Y, k, allowed, censusOpts)
		if err != nil {
			return nil, err
		}
		if err := ens.mergeSample(sample, opts.CountThreshold); err != nil {
			return nil, err
		}
		klog.V(2).Infof("motif shuffle %d/%d: %d classes accumulated", si+1, numShuffles, len(ens.classes.arena))
	}

	return ens.finalize(k, numShuffles), nil
}
