package lattice

/*
A vertex's material position is never stored: it is always reconstructed from
the vertex's (tetrahedron, weight) embedding. The lattice can then deform
through its node spatial coordinates while every embedded vertex position
stays consistent automatically
*/

// VertexGridLocus reconstructs a surface vertex's material position in grid
// units from its embedding.
func (lat *Lattice) VertexGridLocus(vertex int) (gridLocus Vec3) {
	return lat.WeightToGridLocus(lat.VertexTets[vertex], lat.BaryWeights[vertex])
}

// GridToWorld maps grid units to world space through the rest-pose spacing
// and minimum-corner transform.
func (lat *Lattice) GridToWorld(gridLocus Vec3) (world Vec3) {
	return gridLocus.Scale(lat.UnitSpacing).Add(lat.MinCorner)
}

// VertexMaterialCoordinate is the vertex's rest-pose world position.
func (lat *Lattice) VertexMaterialCoordinate(vertex int) (world Vec3) {
	return lat.GridToWorld(lat.VertexGridLocus(vertex))
}

// AllocateSpatialCoords creates the deformable node coordinate buffer shared
// with the physics collaborator.
func (lat *Lattice) AllocateSpatialCoords() {
	lat.NodeSpatialCoords = make([]Vec3, len(lat.NodeGridLoci))
}

/*
MaterialCoordsToNodeSpatialVector fills the spatial coordinate buffer with
the rest-pose transform of every node grid locus. Calling it before the
buffer is allocated is a fatal precondition violation, caught before any
partial work occurs
*/
func (lat *Lattice) MaterialCoordsToNodeSpatialVector() {
	if lat.NodeSpatialCoords == nil {
		panic("trying to fill the spatial coordinate vector before it has been allocated")
	}
	for i, np := range lat.NodeGridLoci {
		lat.NodeSpatialCoords[i] = lat.GridToWorld(np.Vec3())
	}
}

// VertexSpatialPosition reconstructs the vertex's current deformed world
// position through the node spatial coordinates. Read-only; this is the
// position surface rendering consumes.
func (lat *Lattice) VertexSpatialPosition(vertex int) (world Vec3) {
	if lat.NodeSpatialCoords == nil {
		panic("spatial coordinates not allocated")
	}
	var (
		tn = lat.TetNodes[lat.VertexTets[vertex]]
		w  = lat.BaryWeights[vertex]
	)
	world = lat.NodeSpatialCoords[tn[0]].Scale(1. - w[0] - w[1] - w[2])
	for i := 1; i < 4; i++ {
		world = world.Add(lat.NodeSpatialCoords[tn[i]].Scale(w[i-1]))
	}
	return
}

/*
EmbeddingAnchor exposes everything the constraint solver needs to anchor a
deformation constraint at an embedded vertex: the tetrahedron, its 4 node
indices, the barycentric weight relative to them, and the rest-pose world
position
*/
func (lat *Lattice) EmbeddingAnchor(vertex int) (tet int, nodes [4]int, weight [3]float64, world Vec3) {
	tet = lat.VertexTets[vertex]
	nodes = lat.TetNodes[tet]
	weight = lat.BaryWeights[vertex]
	world = lat.VertexMaterialCoordinate(vertex)
	return
}

/*
ReembedVertex recomputes a vertex's embedding at its current material
position, the maintenance operation run after a surface cut duplicates cells
or a vertex crosses a tetrahedron boundary. Returns false when the position
no longer resolves to solid material connected to the vertex's previous
embedding; the caller skips that vertex rather than treating it as an error
*/
func (lat *Lattice) ReembedVertex(vertex int) bool {
	gridLocus := lat.VertexGridLocus(vertex)
	tet := lat.locateBlend([]int{vertex}, gridLocus)
	if tet == TetNotFound {
		return false
	}
	weight := lat.GridLocusToWeight(gridLocus, lat.TetCentroids[tet])
	lat.VertexTets[vertex] = tet
	lat.BaryWeights[vertex] = weight
	return true
}
