package libmotif_test

import (
	"math"
	"testing"

	"github.com/netmotifs/gomotif/libmotif"
)

func TestProfile(t *testing.T) {
	sp := libmotif.Profile([]float64{3, 4})
	if math.Abs(sp[0]-0.6) > 1e-12 || math.Abs(sp[1]-0.8) > 1e-12 {
		t.Fatalf("got %v", sp)
	}

	norm := 0.0
	for _, f := range libmotif.Profile([]float64{-2, 1, 5, -0.5}) {
		norm += f * f
	}
	if math.Abs(norm-1) > 1e-12 {
		t.Fatalf("profile norm: got %v", math.Sqrt(norm))
	}

	for _, f := range libmotif.Profile([]float64{0, 0, 0}) {
		if f != 0 {
			t.Fatal("zero vector should profile to zeros")
		}
	}

	if len(libmotif.Profile(nil)) != 0 {
		t.Fatal("empty input")
	}
}
