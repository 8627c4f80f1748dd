package libmotif

import (
	"gonum.org/v1/gonum/floats"
)

// Profile returns the normalized significance profile of a z-score vector:
// SP[i] = z[i] / ||z||2, the standard form for comparing motif significance
// across networks of different size.  A zero vector profiles to zeros.
func Profile(zscores []float64) []float64 {
	sp := make([]float64, len(zscores))
	norm := floats.Norm(zscores, 2)
	if norm == 0 {
		return sp
	}
	copy(sp, zscores)
	floats.Scale(1/norm, sp)
	return sp
}
