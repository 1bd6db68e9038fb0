package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/meshcut/vntet/utils"
)

/*
barycentricInverses holds the 6 precomputed inverse edge matrices for unit
resolution tetrahedra, one per half-axis x up/down orientation: indices 0-2
are the up orientations for half-axis x,y,z and 3-5 the down orientations.
Applying the matrix to the grid offset from node 0 yields the barycentric
weight directly, skipping the linear solve on the hottest path. All microtets
are congruent, so six matrices cover every cell
*/
var barycentricInverses = [6][3][3]float64{
	{{-0.5, 0.5, 0.0}, {0.5, 0.0, 0.5}, {0.5, 0.0, -0.5}},
	{{0.0, -0.5, 0.5}, {0.5, 0.5, 0.0}, {-0.5, 0.5, 0.0}},
	{{0.5, 0.0, -0.5}, {0.0, 0.5, 0.5}, {0.0, -0.5, 0.5}},
	{{0.5, 0.5, 0.0}, {-0.5, 0.0, -0.5}, {-0.5, 0.0, 0.5}},
	{{0.0, 0.5, 0.5}, {-0.5, -0.5, 0.0}, {0.5, -0.5, 0.0}},
	{{0.5, 0.0, 0.5}, {0.0, -0.5, -0.5}, {0.0, 0.5, -0.5}},
}

// WeightToGridLocus is the affine combination of a tetrahedron's 4 node loci
// with coefficients (1-sum(w), w0, w1, w2).
func (lat *Lattice) WeightToGridLocus(tet int, weight [3]float64) (gridLocus Vec3) {
	tn := lat.TetNodes[tet]
	gridLocus = lat.NodeGridLoci[tn[0]].Vec3().Scale(1. - weight[0] - weight[1] - weight[2])
	for i := 1; i < 4; i++ {
		gridLocus = gridLocus.Add(lat.NodeGridLoci[tn[i]].Vec3().Scale(weight[i-1]))
	}
	return
}

// CentroidWeightToGridLocus is WeightToGridLocus against the centroid's
// derived node loci, for tetrahedra not yet in the tables.
func CentroidWeightToGridLocus(tc TetCentroid, weight [3]float64) (gridLocus Vec3) {
	loci := tc.NodeLoci()
	gridLocus = loci[0].Vec3().Scale(1. - weight[0] - weight[1] - weight[2])
	for i := 1; i < 4; i++ {
		gridLocus = gridLocus.Add(loci[i].Vec3().Scale(weight[i-1]))
	}
	return
}

/*
GridLocusToWeight converts an absolute grid position into the barycentric
weight of the tetrahedron at tc. Above unit resolution the centroid is unique
in the index and the 3x3 node-difference system is solved robustly; at unit
resolution one of the 6 precomputed inverses applies directly
*/
func (lat *Lattice) GridLocusToWeight(gridLocus Vec3, tc TetCentroid) (weight [3]float64) {
	hc, size := tc.HalfAxisSize()
	if size > 1 {
		tets := lat.TetsAt(tc)
		if len(tets) != 1 {
			panic(fmt.Errorf("macrotet centroid %v indexes %d tetrahedra, want exactly 1", tc, len(tets)))
		}
		tn := lat.TetNodes[tets[0]]
		var tV [4]Vec3
		for i := 0; i < 4; i++ {
			tV[i] = lat.NodeGridLoci[tn[i]].Vec3()
		}
		M := utils.NewMat3Cols(tV[1].Sub(tV[0]), tV[2].Sub(tV[0]), tV[3].Sub(tV[0]))
		rhs := gridLocus.Sub(tV[0])
		x := utils.RobustSolve3(M, mat.NewVecDense(3, rhs[:]))
		weight = [3]float64{x.AtVec(0), x.AtVec(1), x.AtVec(2)}
		return
	}
	return microtetWeight(gridLocus, tc, hc)
}

// microtetWeight applies the precomputed inverse for a unit tetrahedron.
func microtetWeight(gridLocus Vec3, tc TetCentroid, hc int) (weight [3]float64) {
	var (
		c1  = (hc + 1) % 3
		xyz [3]float64
		B   Vec3
	)
	for i := 0; i < 3; i++ {
		xyz[i] = float64(tc[i] >> 1)
	}
	B = gridLocus.Sub(Vec3(xyz))
	var baryInv int
	if (int(tc[hc]>>1)+int(tc[c1]>>1))&1 != 0 {
		// up orientation: node 0 sits one step back on the c1 axis
		baryInv = hc
		B[c1] += 1.0
	} else {
		baryInv = hc + 3
		B[hc] -= 1.0
		B[c1] += 1.0
	}
	M := &barycentricInverses[baryInv]
	for i := 0; i < 3; i++ {
		weight[i] = M[i][0]*B[0] + M[i][1]*B[1] + M[i][2]*B[2]
	}
	return
}

/*
LowestTetCentroid classifies an arbitrary grid position into the unit
tetrahedron containing it, closed form: the parity of the containing cube's
minimum corner picks one of 4 diagonal-splitting patterns, then pairwise
comparison of the fractional offsets picks the tetrahedron. No search
*/
func LowestTetCentroid(gridLocus Vec3) (tc TetCentroid) {
	var (
		corner [3]int
		d      [3]float64
	)
	for i := 0; i < 3; i++ {
		corner[i] = int(math.Floor(gridLocus[i]))
		d[i] = gridLocus[i] - float64(corner[i])
	}
	newC := Vec3{
		float64(corner[0]) + 0.5,
		float64(corner[1]) + 0.5,
		float64(corner[2]) + 0.5,
	}
	split := [3]bool{corner[0]&1 != 0, corner[1]&1 != 0, corner[2]&1 != 0}
	switch {
	case split[0] == split[1] && split[0] == split[2]:
		if d[0] > d[1] && d[0] > d[2] {
			newC[0] += 0.5
			if d[1] > d[2] {
				newC[2] -= 0.5
			} else {
				newC[1] -= 0.5
			}
		} else if d[1] > d[0] && d[1] > d[2] {
			newC[1] += 0.5
			if d[0] > d[2] {
				newC[2] -= 0.5
			} else {
				newC[0] -= 0.5
			}
		} else {
			newC[2] += 0.5
			if d[0] > d[1] {
				newC[1] -= 0.5
			} else {
				newC[0] -= 0.5
			}
		}
	case split[0] == split[1]:
		d[2] = 1.0 - d[2]
		if d[0] > d[1] && d[0] > d[2] {
			newC[0] += 0.5
			if d[1] > d[2] {
				newC[2] += 0.5
			} else {
				newC[1] -= 0.5
			}
		} else if d[1] > d[0] && d[1] > d[2] {
			newC[1] += 0.5
			if d[0] > d[2] {
				newC[2] += 0.5
			} else {
				newC[0] -= 0.5
			}
		} else {
			newC[2] -= 0.5
			if d[0] > d[1] {
				newC[1] -= 0.5
			} else {
				newC[0] -= 0.5
			}
		}
	case split[0] == split[2]:
		d[1] = 1.0 - d[1]
		if d[0] > d[1] && d[0] > d[2] {
			newC[0] += 0.5
			if d[1] > d[2] {
				newC[2] -= 0.5
			} else {
				newC[1] += 0.5
			}
		} else if d[1] > d[0] && d[1] > d[2] {
			newC[1] -= 0.5
			if d[0] > d[2] {
				newC[2] -= 0.5
			} else {
				newC[0] -= 0.5
			}
		} else {
			newC[2] += 0.5
			if d[0] > d[1] {
				newC[1] += 0.5
			} else {
				newC[0] -= 0.5
			}
		}
	default: // split[1] == split[2]
		d[0] = 1.0 - d[0]
		if d[0] > d[1] && d[0] > d[2] {
			newC[0] -= 0.5
			if d[1] > d[2] {
				newC[2] -= 0.5
			} else {
				newC[1] -= 0.5
			}
		} else if d[1] > d[0] && d[1] > d[2] {
			newC[1] += 0.5
			if d[0] > d[2] {
				newC[2] -= 0.5
			} else {
				newC[0] += 0.5
			}
		} else {
			newC[2] += 0.5
			if d[0] > d[1] {
				newC[1] -= 0.5
			} else {
				newC[0] += 0.5
			}
		}
	}
	return centroidFromLocus(newC)
}
