package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroidEncoding(t *testing.T) {
	{ // unit level: lowest set bit is 1, owned by exactly one coordinate
		tc := TetCentroid{5, 4, 2}
		hc, size := tc.HalfAxisSize()
		assert.Equal(t, 0, hc)
		assert.Equal(t, 1, size)
		assert.Equal(t, 1, tc.Level())
		assert.True(t, tc.IsMicrotet())
	}
	{ // level 2: lowest set bit is 2
		tc := TetCentroid{4, 2, 8}
		hc, size := tc.HalfAxisSize()
		assert.Equal(t, 1, hc)
		assert.Equal(t, 2, size)
		assert.Equal(t, 2, tc.Level())
		assert.False(t, tc.IsMicrotet())
	}
	{ // key packing round trips
		tc := TetCentroid{5, 4, 2}
		assert.Equal(t, tc, CentroidFromKey(tc.Key()))
	}
	{ // the all-zero centroid carries no level bit
		assert.Panics(t, func() { TetCentroid{0, 0, 0}.HalfAxisSize() })
	}
}

func TestUnitCubeCentroids(t *testing.T) {
	corners := []GridLocus{{2, 2, 2}, {3, 2, 2}, {2, 3, 2}, {2, 2, 3}, {3, 3, 3}}
	for _, corner := range corners {
		var (
			cntrd = UnitCubeCentroids(corner)
			seen  = make(map[TetCentroid]bool)
		)
		for _, tc := range cntrd {
			assert.True(t, tc.IsMicrotet())
			assert.False(t, seen[tc])
			seen[tc] = true
			// every derived node contains itself and the node loci are exact
			for _, locus := range tc.NodeLoci() {
				assert.True(t, InsideTetNode(tc, locus))
			}
		}
	}
}

func TestSubtetsUpOneLevel(t *testing.T) {
	// every valid child's parent is the centroid it was subdivided from
	for _, unit := range UnitCubeCentroids(GridLocus{4, 4, 4}) {
		parent := unit.UpOneLevel()
		assert.Equal(t, 2, parent.Level())
		found := false
		for _, child := range parent.Subtets() {
			if !child.IsValid() {
				continue
			}
			assert.Equal(t, parent, child.UpOneLevel())
			if child == unit {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestSubtetsLevel3(t *testing.T) {
	parent := UnitCubeCentroids(GridLocus{8, 8, 8})[0].UpOneLevel().UpOneLevel()
	assert.Equal(t, 3, parent.Level())
	for _, child := range parent.Subtets() {
		if !child.IsValid() {
			continue
		}
		assert.Equal(t, 2, child.Level())
		assert.Equal(t, parent, child.UpOneLevel())
	}
	assert.Panics(t, func() { UnitCubeCentroids(GridLocus{2, 2, 2})[0].Subtets() })
}

func TestFaceAdjacentInvolution(t *testing.T) {
	for _, tc := range UnitCubeCentroids(GridLocus{3, 3, 3}) {
		var (
			loci = tc.NodeLoci()
		)
		for face := 0; face < 4; face++ {
			adj, adjFace := tc.FaceAdjacent(face)
			if adjFace < 0 {
				continue
			}
			// hopping back through the neighbor's shared face returns here
			back, backFace := adj.FaceAdjacent(adjFace)
			assert.Equal(t, tc, back)
			assert.Equal(t, face, backFace)
			// the shared face holds the same three nodes on both sides
			var (
				adjLoci = adj.NodeLoci()
				mine    = make(map[GridLocus]bool)
				shared  = 0
			)
			for i := 0; i < 3; i++ {
				mine[loci[(face+i)&3]] = true
			}
			for i := 0; i < 3; i++ {
				if mine[adjLoci[(adjFace+i)&3]] {
					shared++
				}
			}
			assert.Equal(t, 3, shared)
		}
	}
}

func TestFaceAdjacentBoundary(t *testing.T) {
	// a centroid hugging the coordinate origin has neighbors that would need
	// negative coordinates
	boundaryHits := 0
	for _, tc := range UnitCubeCentroids(GridLocus{0, 0, 0}) {
		for face := 0; face < 4; face++ {
			if _, adjFace := tc.FaceAdjacent(face); adjFace < 0 {
				boundaryHits++
			}
		}
	}
	assert.True(t, boundaryHits > 0)
}

func TestNodeMicroCentroids(t *testing.T) {
	var (
		node  = GridLocus{3, 3, 3}
		cntrd = NodeMicroCentroids(node)
		seen  = make(map[TetCentroid]bool)
	)
	for _, tc := range cntrd {
		assert.True(t, tc.IsValid())
		assert.False(t, seen[tc])
		seen[tc] = true
		assert.True(t, tc.IsMicrotet())
		// the node is one of the tetrahedron's four corners
		found := false
		for _, locus := range tc.NodeLoci() {
			if locus == node {
				found = true
			}
		}
		assert.True(t, found)
	}
	assert.Equal(t, 24, len(seen))
}
