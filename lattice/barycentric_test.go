package lattice

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMicrotetInverses(t *testing.T) {
	// the six precomputed inverses must reproduce the simplex corners for
	// every half-axis and orientation; two differently-split cubes cover all
	// six table entries
	lat := NewLattice(3, 1., Vec3{})
	for _, corner := range []GridLocus{{2, 2, 2}, {3, 2, 2}} {
		for _, tc := range UnitCubeCentroids(corner) {
			loci := tc.NodeLoci()
			for j := 0; j < 4; j++ {
				w := lat.GridLocusToWeight(loci[j].Vec3(), tc)
				var want [3]float64
				if j > 0 {
					want[j-1] = 1.
				}
				for i := 0; i < 3; i++ {
					assert.True(t, near(w[i], want[i], 1.e-12))
				}
			}
		}
	}
}

func TestWeightRoundTrip(t *testing.T) {
	var (
		lat = NewLattice(3, 1., Vec3{})
		b   = NewBuilder(lat)
		rnd = rand.New(rand.NewSource(42))
	)
	b.FillCubes(GridLocus{1, 1, 1}, GridLocus{4, 4, 4})
	for i := 0; i < 200; i++ {
		p := Vec3{
			1. + 3.*rnd.Float64(),
			1. + 3.*rnd.Float64(),
			1. + 3.*rnd.Float64(),
		}
		tc := LowestTetCentroid(p)
		assert.True(t, InsideTet(tc, p))
		assert.Equal(t, 1, len(lat.TetsAt(tc)))
		w := lat.GridLocusToWeight(p, tc)
		// weights of a contained point form a convex combination
		sum := w[0] + w[1] + w[2]
		assert.True(t, sum < 1.+1.e-9)
		for i := 0; i < 3; i++ {
			assert.True(t, w[i] > -1.e-9)
		}
		q := CentroidWeightToGridLocus(tc, w)
		for i := 0; i < 3; i++ {
			assert.True(t, near(q[i], p[i], 1.e-9))
		}
	}
}

func TestMacrotetWeight(t *testing.T) {
	// above unit resolution the weight comes from the robust linear solve on
	// the stored node positions
	var (
		lat    = NewLattice(3, 1., Vec3{})
		b      = NewBuilder(lat)
		parent = UnitCubeCentroids(GridLocus{4, 4, 4})[0].UpOneLevel()
	)
	tet := b.AddTetAt(parent)
	loci := parent.NodeLoci()
	for j := 0; j < 4; j++ {
		w := lat.GridLocusToWeight(loci[j].Vec3(), parent)
		var want [3]float64
		if j > 0 {
			want[j-1] = 1.
		}
		for i := 0; i < 3; i++ {
			assert.True(t, near(w[i], want[i], 1.e-9))
		}
	}
	// barycenter round trips through the stored tetrahedron as well
	w := [3]float64{0.25, 0.25, 0.25}
	q := lat.WeightToGridLocus(tet, w)
	r := CentroidWeightToGridLocus(parent, w)
	for i := 0; i < 3; i++ {
		assert.True(t, near(q[i], r[i], 1.e-12))
	}
}

func TestLowestTetCentroidParities(t *testing.T) {
	// the classifier must agree with the cube enumeration for every corner
	// parity pattern
	corners := []GridLocus{
		{2, 2, 2}, {3, 2, 2}, {2, 3, 2}, {2, 2, 3},
		{3, 3, 2}, {3, 2, 3}, {2, 3, 3}, {3, 3, 3},
	}
	// a generic interior weight keeps the probe point off cube faces, where
	// tie-breaking would make the expected answer ambiguous
	w := [3]float64{0.26, 0.31, 0.22}
	for _, corner := range corners {
		for _, tc := range UnitCubeCentroids(corner) {
			p := CentroidWeightToGridLocus(tc, w)
			assert.Equal(t, tc, LowestTetCentroid(p))
		}
	}
}

func near(a, b float64, tolI ...float64) (l bool) {
	var tol float64
	if len(tolI) == 0 {
		tol = 1.e-08 * math.Max(math.Abs(a), 1.)
	} else {
		tol = tolI[0]
	}
	if math.Abs(a-b) < tol {
		l = true
	}
	return
}
