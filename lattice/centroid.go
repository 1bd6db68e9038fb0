package lattice

import (
	"fmt"
	"math"

	"github.com/meshcut/vntet/types"
)

/*
TetCentroid encodes a tetrahedron's identity: its three coordinates are the
tetrahedron centroid in doubled grid units, and the lowest set bit among the
three coordinates carries the resolution level. Exactly one coordinate owns
that bit; its axis is the tetrahedron's half-axis and the bit's magnitude is
the half-edge size (a power of two). HalfAxisSize is the only decode of this
encoding - every other operation goes through it.
*/
type TetCentroid [3]uint16

// InvalidCentroid marks children of Subtets that would fall outside the
// non-negative coordinate domain.
var InvalidCentroid = TetCentroid{math.MaxUint16, math.MaxUint16, math.MaxUint16}

func (tc TetCentroid) IsValid() bool {
	return tc != InvalidCentroid
}

func (tc TetCentroid) Key() types.CentroidKey {
	return types.NewCentroidKey(tc)
}

func CentroidFromKey(key types.CentroidKey) TetCentroid {
	return TetCentroid(key.GetCoords())
}

/*
HalfAxisSize decodes the half-axis and half-edge size from the lowest set bit
among the three coordinates. An all-zero centroid has no such bit and is
ill-formed, which is a logic error upstream, not a query condition
*/
func (tc TetCentroid) HalfAxisSize() (hc, size int) {
	if tc[0] == 0 && tc[1] == 0 && tc[2] == 0 {
		panic("ill-formed centroid: no level bit present")
	}
	for dd := 1; dd <= math.MaxUint16; dd <<= 1 {
		for i := 0; i < 3; i++ {
			if int(tc[i])&dd != 0 {
				return i, dd
			}
		}
	}
	panic(fmt.Errorf("ill-formed centroid %v", tc))
}

// Level is the subdivision level, 1 for unit resolution microtets.
func (tc TetCentroid) Level() (level int) {
	_, size := tc.HalfAxisSize()
	level = 1
	for size > 1 {
		size >>= 1
		level++
	}
	return
}

func (tc TetCentroid) IsMicrotet() bool {
	return (tc[0]|tc[1]|tc[2])&1 != 0
}

// isUp reports the tetrahedron's orientation: whether the half-axis and the
// secondary axis coordinates agree at the next level's bit.
func (tc TetCentroid) isUp(hc, size int) bool {
	c2 := (hc + 2) % 3
	lub := size << 1
	return int(tc[hc])&lub == int(tc[c2])&lub
}

/*
NodeLoci derives the tetrahedron's 4 node positions in grid units from the
centroid. Nodes 0,1 span the long edge on the c1 axis; nodes 2,3 span the
opposite long edge on the c2 axis, mirrored by the up/down orientation
*/
func (tc TetCentroid) NodeLoci() (loci [4]GridLocus) {
	var (
		hc, size = tc.HalfAxisSize()
		up       = tc.isUp(hc, size)
		c1, c2   = (hc + 1) % 3, (hc + 2) % 3
		s        = int32(size)
		lub      = int32(size) << 1
		d        [4][3]int32
	)
	for j := 0; j < 4; j++ {
		d[j] = [3]int32{int32(tc[0]), int32(tc[1]), int32(tc[2])}
	}
	if up {
		d[0][hc] -= s
		d[1][hc] -= s
		d[2][hc] += s
		d[3][hc] += s
		d[2][c2] += lub
		d[3][c2] -= lub
	} else {
		d[0][hc] += s
		d[1][hc] += s
		d[2][hc] -= s
		d[3][hc] -= s
		d[2][c2] -= lub
		d[3][c2] += lub
	}
	d[0][c1] -= lub
	d[1][c1] += lub
	for j := 0; j < 4; j++ {
		loci[j] = GridLocus{d[j][0] / 2, d[j][1] / 2, d[j][2] / 2}
	}
	return
}

/*
UpOneLevel returns the unique parent centroid at the next coarser level. The
4 core children rotate the half-axis by one axis; the 4 corner children keep
the parent's half-axis
*/
func (tc TetCentroid) UpOneLevel() (up TetCentroid) {
	var (
		hc, size = tc.HalfAxisSize()
		lvl      = size
		lvlX2    = size << 1
		lvlX4    = size << 2
		c1, c2   = (hc + 1) % 3, (hc + 2) % 3
		t        = [3]int{int(tc[0]), int(tc[1]), int(tc[2])}
	)
	if t[c1]&lvlX2 == t[c2]&lvlX2 {
		panic(fmt.Errorf("ill-formed centroid %v: secondary axes agree at the level-up bit", tc))
	}
	// core children: moving tc[hc] to a multiple of the next level bit must
	// still leave a valid parent encoding
	if t[hc]&lvlX2 != 0 {
		t[hc] += lvl
	} else {
		t[hc] -= lvl
	}
	if t[c1]&lvlX2 != 0 && t[hc]&lvlX4 != t[c2]&lvlX4 {
		return TetCentroid{uint16(t[0]), uint16(t[1]), uint16(t[2])}
	}
	if t[c2]&lvlX2 != 0 && t[hc]&lvlX4 != t[c1]&lvlX4 {
		return TetCentroid{uint16(t[0]), uint16(t[1]), uint16(t[2])}
	}
	// corner child: the parent keeps the same half-axis
	t[hc] = int(tc[hc])
	if t[hc]&lvlX2 != 0 {
		t[hc] -= lvl
	} else {
		t[hc] += lvl
	}
	if t[c1]&lvlX2 != 0 {
		if t[c2]&lvlX4 != 0 {
			if t[c1]&lvlX4 != 0 {
				t[c1] += lvlX2
			} else {
				t[c1] -= lvlX2
			}
		} else {
			if t[c1]&lvlX4 != 0 {
				t[c1] -= lvlX2
			} else {
				t[c1] += lvlX2
			}
		}
	} else {
		if t[c1]&lvlX4 != 0 {
			if t[c2]&lvlX4 != 0 {
				t[c2] += lvlX2
			} else {
				t[c2] -= lvlX2
			}
		} else {
			if t[c2]&lvlX4 != 0 {
				t[c2] -= lvlX2
			} else {
				t[c2] += lvlX2
			}
		}
	}
	return TetCentroid{uint16(t[0]), uint16(t[1]), uint16(t[2])}
}

/*
Subtets lists the 8 children of a macrotet centroid: 4 corner children in the
same order as the parent's nodes, then the 4 core children ringing the
half-axis. Children whose coordinates would leave the non-negative domain are
marked InvalidCentroid
*/
func (tc TetCentroid) Subtets() (sub [8]TetCentroid) {
	var (
		hc, size = tc.HalfAxisSize()
	)
	if size < 2 {
		panic("trying to get subtets of a unit level centroid")
	}
	var (
		up       = tc.isUp(hc, size)
		c1, c2   = (hc + 1) % 3, (hc + 2) % 3
		lvlDown  = size >> 1
		t        [8][3]int
	)
	for i := 0; i < 8; i++ {
		t[i] = [3]int{int(tc[0]), int(tc[1]), int(tc[2])}
	}
	if up {
		t[0][hc] -= lvlDown
		t[1][hc] -= lvlDown
		t[2][hc] += lvlDown
		t[3][hc] += lvlDown
	} else {
		t[0][hc] += lvlDown
		t[1][hc] += lvlDown
		t[2][hc] -= lvlDown
		t[3][hc] -= lvlDown
	}
	t[0][c1] -= size
	t[1][c1] += size
	lo2, hi2 := 3, 2
	if up {
		lo2, hi2 = 2, 3
	}
	t[hi2][c2] -= size
	t[lo2][c2] += size
	t[4][c1] -= lvlDown
	t[5][c1] += lvlDown
	t[6][c2] -= lvlDown
	t[7][c2] += lvlDown
	for i := 0; i < 8; i++ {
		if t[i][0] < 0 || t[i][1] < 0 || t[i][2] < 0 {
			sub[i] = InvalidCentroid
			continue
		}
		sub[i] = TetCentroid{uint16(t[i][0]), uint16(t[i][1]), uint16(t[i][2])}
	}
	return
}

/*
FaceAdjacent computes the centroid of the tetrahedron sharing the given face
at the same resolution level, and the neighbor's index for the shared face.
Faces are numbered 0-3 cyclic from the 4 nodes: face f holds nodes f, f+1,
f+2 mod 4, with faces 0,2 traversed clockwise and 1,3 counterclockwise.
adjFace is -1 when the neighbor would fall outside the non-negative domain
*/
func (tc TetCentroid) FaceAdjacent(face int) (adj TetCentroid, adjFace int) {
	var (
		hc, size = tc.HalfAxisSize()
		up       = tc.isUp(hc, size)
		c1, c2   = (hc + 1) % 3, (hc + 2) % 3
		t        = [3]int{int(tc[0]), int(tc[1]), int(tc[2])}
		s2       = size << 1
	)
	switch face {
	case 0, 3:
		t[hc] -= size
		t[c2] += size
		if up {
			adjFace = 1
			if face == 3 {
				if t[c2] < s2 {
					return tc, -1
				}
				t[c2] -= s2
			}
		} else {
			t[hc] += s2
			adjFace = 2
			if face == 0 {
				if t[c2] < s2 {
					return tc, -1
				}
				t[c2] -= s2
			}
		}
	case 1, 2:
		t[hc] -= size
		t[c1] += size
		if face == 2 {
			if t[c1] < s2 {
				return tc, -1
			}
			t[c1] -= s2
		}
		if up {
			t[hc] += s2
			if face == 2 {
				adjFace = 0
			} else {
				adjFace = 3
			}
		} else {
			if face == 2 {
				adjFace = 3
			} else {
				adjFace = 0
			}
		}
	default:
		panic(fmt.Errorf("face %d out of range", face))
	}
	adj = TetCentroid{uint16(t[0]), uint16(t[1]), uint16(t[2])}
	return
}

/*
UnitCubeCentroidLoci places the centroids of the 6 unit tetrahedra overlapping
the grid-unit cube at minimumCorner, in grid units. The cube's corner parity
selects one of 4 diagonal-splitting patterns
*/
func UnitCubeCentroidLoci(minimumCorner GridLocus) (loci [6]Vec3) {
	split := [3]bool{minimumCorner[0]&1 != 0, minimumCorner[1]&1 != 0, minimumCorner[2]&1 != 0}
	switch {
	case split[0] == split[1] && split[0] == split[2]:
		split = [3]bool{true, true, true}
	case split[0] == split[1]:
		split = [3]bool{false, false, true}
	case split[0] == split[2]:
		split = [3]bool{false, true, false}
	default:
		split = [3]bool{true, false, false}
	}
	center := Vec3{
		float64(minimumCorner[0]) + 0.5,
		float64(minimumCorner[1]) + 0.5,
		float64(minimumCorner[2]) + 0.5,
	}
	for i := 0; i < 3; i++ {
		c1 := (i + 1) % 3
		c2 := (c1 + 1) % 3
		for j := 0; j < 2; j++ {
			c := center
			if j == 1 {
				c[c1] -= 0.5
				if split[i] {
					c[c2] += 0.5
				} else {
					c[c2] -= 0.5
				}
			} else {
				c[c1] += 0.5
				if split[i] {
					c[c2] -= 0.5
				} else {
					c[c2] += 0.5
				}
			}
			loci[i*2+j] = c
		}
	}
	return
}

// UnitCubeCentroids is UnitCubeCentroidLoci in centroid encoding.
func UnitCubeCentroids(minimumCorner GridLocus) (cntrd [6]TetCentroid) {
	loci := UnitCubeCentroidLoci(minimumCorner)
	for i := 0; i < 6; i++ {
		cntrd[i] = centroidFromLocus(loci[i])
	}
	return
}

// centroidFromLocus doubles an exact half-integer centroid locus into the
// integer centroid encoding.
func centroidFromLocus(c Vec3) TetCentroid {
	return TetCentroid{
		uint16(math.Round(2 * c[0])),
		uint16(math.Round(2 * c[1])),
		uint16(math.Round(2 * c[2])),
	}
}

/*
NodeMicroCentroids enumerates the 24 unit tetrahedra incident on a lattice
node: 4 per each of the 6 cube-face directions around the node
*/
func NodeMicroCentroids(node GridLocus) (cntrd [24]TetCentroid) {
	count := 0
	for dim := 0; dim < 3; dim++ {
		for pos := -1; pos < 2; pos += 2 {
			t := [3]int{int(node[0]), int(node[1]), int(node[2])}
			t[dim] += pos
			for i := 0; i < 3; i++ {
				t[i] <<= 1
			}
			for i := 0; i < 4; i++ {
				t2 := t
				hc := ((i >> 1) + 1 + dim) % 3
				if i&1 != 0 {
					t2[hc]++
				} else {
					t2[hc]--
				}
				if t2[0] < 0 || t2[1] < 0 || t2[2] < 0 {
					cntrd[count] = InvalidCentroid
				} else {
					cntrd[count] = TetCentroid{uint16(t2[0]), uint16(t2[1]), uint16(t2[2])}
				}
				count++
			}
		}
	}
	return
}
