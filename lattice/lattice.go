package lattice

import (
	"github.com/meshcut/vntet/types"
	"github.com/meshcut/vntet/utils"
)

// TetNotFound is the sentinel for point-location queries that cannot resolve
// an enclosing tetrahedron. It is a legitimate outcome after a cut, not an
// error: the queried point is not connected to solid material from the
// given side.
const TetNotFound = -1

// GridLocus is an exact lattice node position in grid units.
type GridLocus [3]int32

func (g GridLocus) Vec3() Vec3 {
	return Vec3{float64(g[0]), float64(g[1]), float64(g[2])}
}

// Vec3 is a continuous position, in grid units or world units by context.
type Vec3 [3]float64

func (v Vec3) Add(w Vec3) Vec3      { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }
func (v Vec3) Sub(w Vec3) Vec3      { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }
func (v Vec3) Dot(w Vec3) float64   { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }
func (v Vec3) Length2() float64     { return v.Dot(v) }

/*
Lattice holds the virtual noded BCC tetrahedron tables: the node set, the
tetrahedron set and the multi-valued centroid index. Cells at unit resolution
may be duplicated so that materially disconnected pieces occupying the same
cell get distinct tetrahedra; the centroid index therefore maps one key to
many tetrahedra at unit level, and to exactly one above it.

All queries are pure reads. Structural mutation (Clear and repopulate,
re-embedding after a cut) must be serialized against queries by the caller;
the lattice holds no lock.
*/
type Lattice struct {
	NodeGridLoci []GridLocus
	TetNodes     [][4]int
	TetCentroids []TetCentroid
	tetHash      map[types.CentroidKey][]int

	// per surface vertex embeddings; positions are always reconstructed from
	// these, never cached as absolute coordinates
	VertexTets  []int
	BaryWeights [][3]float64

	// rest pose transform from grid units to world space
	UnitSpacing float64
	MinCorner   Vec3

	// nil until AllocateSpatialCoords; filled by the rest transform, then
	// deformed by the physics collaborator
	NodeSpatialCoords []Vec3

	// promotion bound for all level-walking loops
	SubdivisionLevels int

	// boundary of the surface/interior ordering the external constructor
	// writes the tetrahedron table in; -1 until a constructor sets it
	FirstInteriorTet int

	Surface SurfaceMesh
}

// SurfaceMesh is the surface collaborator: triangle/vertex incidence and a
// liveness query used to prune embeddings of cut-away triangles.
type SurfaceMesh interface {
	TriangleVertices(triangle int) [3]int
	TriangleLive(triangle int) bool
	VertexCount() int
}

func NewLattice(subdivisionLevels int, unitSpacing float64, minCorner Vec3) (lat *Lattice) {
	lat = &Lattice{
		tetHash:           make(map[types.CentroidKey][]int),
		UnitSpacing:       unitSpacing,
		MinCorner:         minCorner,
		SubdivisionLevels: subdivisionLevels,
		FirstInteriorTet:  -1,
	}
	return
}

// Clear wipes all tables for a lattice rebuild.
func (lat *Lattice) Clear() {
	lat.NodeGridLoci = lat.NodeGridLoci[:0]
	lat.TetNodes = lat.TetNodes[:0]
	lat.TetCentroids = lat.TetCentroids[:0]
	lat.tetHash = make(map[types.CentroidKey][]int)
	lat.VertexTets = lat.VertexTets[:0]
	lat.BaryWeights = lat.BaryWeights[:0]
	lat.NodeSpatialCoords = nil
	lat.FirstInteriorTet = -1
}

func (lat *Lattice) NodeCount() int { return len(lat.NodeGridLoci) }
func (lat *Lattice) TetCount() int  { return len(lat.TetNodes) }

func (lat *Lattice) AddNode(locus GridLocus) (node int) {
	node = len(lat.NodeGridLoci)
	lat.NodeGridLoci = append(lat.NodeGridLoci, locus)
	return
}

// AddTet appends a tetrahedron and indexes it under its centroid. Duplicate
// keys are only legal at unit resolution; coarser duplicates corrupt the
// level-dependent uniqueness invariant.
func (lat *Lattice) AddTet(nodes [4]int, tc TetCentroid) (tet int) {
	key := tc.Key()
	if !tc.IsMicrotet() && len(lat.tetHash[key]) > 0 {
		panic("duplicate macrotet centroid: uniqueness above unit level violated")
	}
	tet = len(lat.TetNodes)
	lat.TetNodes = append(lat.TetNodes, nodes)
	lat.TetCentroids = append(lat.TetCentroids, tc)
	lat.tetHash[key] = append(lat.tetHash[key], tet)
	return
}

// TetsAt returns the tetrahedra indexed at a centroid, in insertion order.
// Empty means the centroid is not present at that level.
func (lat *Lattice) TetsAt(tc TetCentroid) []int {
	return lat.tetHash[tc.Key()]
}

func (lat *Lattice) VertexTetrahedron(vertex int) int {
	return lat.VertexTets[vertex]
}

// SetVertexEmbedding records a vertex's (tetrahedron, weight) pair, growing
// the embedding tables as needed.
func (lat *Lattice) SetVertexEmbedding(vertex, tet int, weight [3]float64) {
	for len(lat.VertexTets) <= vertex {
		lat.VertexTets = append(lat.VertexTets, TetNotFound)
		lat.BaryWeights = append(lat.BaryWeights, [3]float64{})
	}
	lat.VertexTets[vertex] = tet
	lat.BaryWeights[vertex] = weight
}

/*
IncidenceMatrix assembles the node x tetrahedron incidence as a sparse DOK
matrix, the connectivity handed to the constraint solver to anchor
deformation constraints
*/
func (lat *Lattice) IncidenceMatrix() (R utils.DOK) {
	R = utils.NewDOK(lat.NodeCount(), lat.TetCount())
	R.SetName("node-tet incidence")
	for tet, tn := range lat.TetNodes {
		for _, n := range tn {
			R.Set(n, tet, 1)
		}
	}
	return
}
