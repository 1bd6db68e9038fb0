package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeNodesPermutation(t *testing.T) {
	var (
		lat = NewLattice(3, 1., Vec3{})
		b   = NewBuilder(lat)
		tet = b.AddTetAt(UnitCubeCentroids(GridLocus{2, 2, 2})[0])
		tn  = lat.TetNodes[tet]
	)
	want := [6][2]int{
		{tn[0], tn[1]}, {tn[0], tn[2]}, {tn[0], tn[3]},
		{tn[1], tn[2]}, {tn[1], tn[3]}, {tn[2], tn[3]},
	}
	for edge := 0; edge < 6; edge++ {
		n0, n1 := lat.EdgeNodes(tet, edge)
		assert.Equal(t, want[edge], [2]int{n0, n1})
	}
}

func TestEdgeAdjacentRing(t *testing.T) {
	var (
		lat = NewLattice(4, 1., Vec3{})
		b   = NewBuilder(lat)
	)
	// 5x5x5 cubes so the center tetrahedron's edges are all fully interior
	b.FillCubes(GridLocus{1, 1, 1}, GridLocus{6, 6, 6})
	var (
		tc  = UnitCubeCentroids(GridLocus{3, 3, 3})[0]
		tet = lat.TetsAt(tc)[0]
	)
	for edge := 0; edge < 6; edge++ {
		var (
			n0, n1 = lat.EdgeNodes(tet, edge)
			ring   = lat.EdgeAdjacentTets(tet, edge)
			seen   = map[int]bool{tet: true}
		)
		// the long edges 0 and 5 ring 4 tetrahedra, the diagonals ring 6
		if edge == 0 || edge == 5 {
			assert.Equal(t, 3, len(ring))
		} else {
			assert.Equal(t, 5, len(ring))
		}
		for _, adj := range ring {
			assert.False(t, seen[adj])
			seen[adj] = true
			tn := lat.TetNodes[adj]
			assert.True(t, containsNode(tn, n0))
			assert.True(t, containsNode(tn, n1))
		}
	}
}

func TestEdgeRingIgnoresVirtualDuplicates(t *testing.T) {
	// a virtual-node duplicate in a ring member's cell holds neither edge
	// node, so the walk keeps threading through the originals
	var (
		lat = NewLattice(4, 1., Vec3{})
		b   = NewBuilder(lat)
	)
	b.FillCubes(GridLocus{1, 1, 1}, GridLocus{6, 6, 6})
	var (
		tc   = UnitCubeCentroids(GridLocus{3, 3, 3})[0]
		tet  = lat.TetsAt(tc)[0]
		full = lat.EdgeAdjacentTets(tet, 1)
	)
	b.DuplicateMicrotet(full[len(full)-1])
	after := lat.EdgeAdjacentTets(tet, 1)
	n0, n1 := lat.EdgeNodes(tet, 1)
	for _, adj := range after {
		tn := lat.TetNodes[adj]
		assert.True(t, containsNode(tn, n0))
		assert.True(t, containsNode(tn, n1))
	}
	assert.Equal(t, len(full), len(after))
}

func TestFaceAdjacentTetsReciprocal(t *testing.T) {
	var (
		lat = NewLattice(3, 1., Vec3{})
		b   = NewBuilder(lat)
	)
	b.FillCubes(GridLocus{1, 1, 1}, GridLocus{4, 4, 4})
	var (
		tc  = UnitCubeCentroids(GridLocus{2, 2, 2})[0]
		tet = lat.TetsAt(tc)[0]
	)
	for face := 0; face < 4; face++ {
		adjTets, adjFace := lat.FaceAdjacentTets(tet, face)
		assert.True(t, adjFace >= 0)
		assert.Equal(t, 1, len(adjTets))
		back, backFace := lat.FaceAdjacentTets(adjTets[0], adjFace)
		assert.Equal(t, face, backFace)
		assert.Equal(t, 1, len(back))
		assert.Equal(t, tet, back[0])
	}
}

func TestFaceAdjacentTetsFiltersDuplicates(t *testing.T) {
	// a virtual-node duplicate in the neighboring cell shares no nodes and
	// must not appear as a face neighbor
	var (
		lat = NewLattice(3, 1., Vec3{})
		b   = NewBuilder(lat)
	)
	b.FillCubes(GridLocus{1, 1, 1}, GridLocus{4, 4, 4})
	var (
		tc  = UnitCubeCentroids(GridLocus{2, 2, 2})[0]
		tet = lat.TetsAt(tc)[0]
	)
	adjTets, _ := lat.FaceAdjacentTets(tet, 0)
	assert.Equal(t, 1, len(adjTets))
	b.DuplicateMicrotet(adjTets[0])
	filtered, adjFace := lat.FaceAdjacentTets(tet, 0)
	assert.True(t, adjFace >= 0)
	assert.Equal(t, 1, len(filtered))
	assert.Equal(t, adjTets[0], filtered[0])
}
