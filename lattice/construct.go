package lattice

import (
	"fmt"

	"github.com/meshcut/vntet/types"
)

/*
Builder populates lattice tables for demos and tests. Subdivision policy -
which cells exist at which resolution around a real surface - belongs to the
external constructor; the builder only knows how to lay down cells that
honor the table invariants: shared nodes deduplicated by grid locus, node
order matching the centroid's derived loci, one hash entry per added cell
*/
type Builder struct {
	lat       *Lattice
	nodeIndex map[GridLocus]int
}

func NewBuilder(lat *Lattice) (b *Builder) {
	b = &Builder{
		lat:       lat,
		nodeIndex: make(map[GridLocus]int),
	}
	for i, locus := range lat.NodeGridLoci {
		b.nodeIndex[locus] = i
	}
	return
}

func (b *Builder) Lattice() *Lattice { return b.lat }

// NodeAt returns the node at a grid locus, creating it on first use.
func (b *Builder) NodeAt(locus GridLocus) (node int) {
	if n, ok := b.nodeIndex[locus]; ok {
		return n
	}
	node = b.lat.AddNode(locus)
	b.nodeIndex[locus] = node
	return
}

// AddTetAt materializes the tetrahedron at a centroid, nodes in the
// centroid's derived order.
func (b *Builder) AddTetAt(tc TetCentroid) (tet int) {
	var (
		loci  = tc.NodeLoci()
		nodes [4]int
	)
	for i := 0; i < 4; i++ {
		nodes[i] = b.NodeAt(loci[i])
	}
	return b.lat.AddTet(nodes, tc)
}

/*
FillCubes lays down the unit tetrahedra of every grid cube with minimum
corner in [min, max), skipping centroids already present (adjacent cubes
share tetrahedra). Corners must be at least 1 so no centroid coordinate
leaves the non-negative domain
*/
func (b *Builder) FillCubes(min, max GridLocus) {
	if min[0] < 1 || min[1] < 1 || min[2] < 1 {
		panic(fmt.Errorf("cube fill must start at corner >= (1,1,1), got %v", min))
	}
	for x := min[0]; x < max[0]; x++ {
		for y := min[1]; y < max[1]; y++ {
			for z := min[2]; z < max[2]; z++ {
				for _, tc := range UnitCubeCentroids(GridLocus{x, y, z}) {
					if len(b.lat.TetsAt(tc)) > 0 {
						continue
					}
					b.AddTetAt(tc)
				}
			}
		}
	}
}

/*
DuplicateMicrotet adds a virtual-node duplicate of an existing unit
tetrahedron: four fresh nodes at the same grid loci, a second tetrahedron
under the same centroid key. This is what the cutting collaborator does when
a cut leaves two disconnected material pieces in one cell
*/
func (b *Builder) DuplicateMicrotet(tet int) (dup int) {
	tc := b.lat.TetCentroids[tet]
	if !tc.IsMicrotet() {
		panic("only unit resolution tetrahedra may virtual node")
	}
	var nodes [4]int
	for i, n := range b.lat.TetNodes[tet] {
		// deliberately bypasses the dedup index: virtual nodes are distinct
		// lattice nodes at identical material positions
		nodes[i] = b.lat.AddNode(b.lat.NodeGridLoci[n])
	}
	return b.lat.AddTet(nodes, tc)
}

/*
Coarsen replaces the 8 children of a macro centroid with the single parent
tetrahedron, producing a mixed-resolution lattice. The tables are append
only, so the lattice is rebuilt without the children; embeddings and
virtual-node duplicates would not survive reindexing and must not exist yet
*/
func (b *Builder) Coarsen(parent TetCentroid) {
	if parent.IsMicrotet() {
		panic("cannot coarsen to a unit level centroid")
	}
	if len(b.lat.VertexTets) > 0 {
		panic("coarsen must precede vertex embedding")
	}
	drop := make(map[types.CentroidKey]bool)
	for _, child := range parent.Subtets() {
		if child.IsValid() {
			drop[child.Key()] = true
		}
	}
	keep := make([]TetCentroid, 0, len(b.lat.TetCentroids))
	for _, tc := range b.lat.TetCentroids {
		if len(b.lat.TetsAt(tc)) > 1 {
			panic("cannot coarsen a lattice holding virtual node duplicates")
		}
		if !drop[tc.Key()] {
			keep = append(keep, tc)
		}
	}
	b.lat.Clear()
	b.nodeIndex = make(map[GridLocus]int)
	for _, tc := range keep {
		b.AddTetAt(tc)
	}
	b.AddTetAt(parent)
}

/*
EmbedVertexAt embeds a surface vertex at an arbitrary grid position,
resolving its containing tetrahedron directly by centroid classification.
Used when first attaching a surface to the lattice; later maintenance goes
through ReembedVertex
*/
func (b *Builder) EmbedVertexAt(vertex int, gridLocus Vec3) (tet int) {
	var (
		tc    = LowestTetCentroid(gridLocus)
		level = 1
	)
	tets := b.lat.TetsAt(tc)
	for len(tets) == 0 {
		tc = tc.UpOneLevel()
		level++
		if level > b.lat.SubdivisionLevels {
			panic(fmt.Errorf("vertex position %v outside the lattice", gridLocus))
		}
		tets = b.lat.TetsAt(tc)
	}
	tet = tets[0]
	weight := b.lat.GridLocusToWeight(gridLocus, tc)
	b.lat.SetVertexEmbedding(vertex, tet, weight)
	return
}

/*
TriangleSoup is a minimal surface-mesh collaborator: triangle vertex triples
plus a dead set standing in for cut-away triangles
*/
type TriangleSoup struct {
	Tris     [][3]int
	Dead     map[int]bool
	NumVerts int
}

func (s *TriangleSoup) TriangleVertices(triangle int) [3]int { return s.Tris[triangle] }
func (s *TriangleSoup) TriangleLive(triangle int) bool {
	return triangle >= 0 && triangle < len(s.Tris) && !s.Dead[triangle]
}
func (s *TriangleSoup) VertexCount() int { return s.NumVerts }
