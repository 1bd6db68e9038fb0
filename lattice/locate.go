package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/meshcut/vntet/utils"
)

/*
Point location resolves a parametric blend of embedded vertices to its
enclosing tetrahedron. The blended grid locus is classified into its unit
centroid; absent centroids promote one level at a time until present (bounded
by the configured subdivision depth - running past it means the lattice and
surface have diverged, which is fatal). Above unit resolution presence is
unique. At unit resolution, virtual-node duplicates are disambiguated in
order: a duplicate equal to an input vertex's own embedding tetrahedron, a
duplicate sharing a node with an input vertex's embedding tetrahedron, then a
solid line walk from each input vertex. A point that survives all three
unresolved is genuinely unreachable from the given vertices (a cut can do
this) and reports TetNotFound
*/

// ParametricEdgeTet locates the tetrahedron enclosing the point at param
// along the edge between two embedded vertices. Also returns the blended
// grid locus so the caller can derive the barycentric weight.
func (lat *Lattice) ParametricEdgeTet(vertex0, vertex1 int, param float64) (tet int, gridLocus Vec3) {
	var (
		t0 = lat.VertexGridLocus(vertex0)
		t1 = lat.VertexGridLocus(vertex1)
	)
	gridLocus = t0.Scale(1. - param).Add(t1.Scale(param))
	tet = lat.locateBlend([]int{vertex0, vertex1}, gridLocus)
	return
}

// ParametricTriangleTet locates the tetrahedron enclosing the point at
// barycentric uv on a surface triangle.
func (lat *Lattice) ParametricTriangleTet(triangle int, uv [2]float64) (tet int, gridLocus Vec3) {
	var (
		tr = lat.Surface.TriangleVertices(triangle)
		tV [3]Vec3
	)
	for i := 0; i < 3; i++ {
		tV[i] = lat.VertexGridLocus(tr[i])
	}
	gridLocus = tV[0].Scale(1. - uv[0] - uv[1]).Add(tV[1].Scale(uv[0])).Add(tV[2].Scale(uv[1]))
	tet = lat.locateBlend(tr[:], gridLocus)
	return
}

/*
RegisterTrianglePoint resolves a (triangle, uv) surface point to its
embedding pair. ok is false when no enclosing tetrahedron can be resolved,
which signals an inconsistency the caller's cutting logic must not have
produced, or a genuinely disconnected point
*/
func (lat *Lattice) RegisterTrianglePoint(triangle int, uv [2]float64) (tet int, weight [3]float64, ok bool) {
	tet, gridLocus := lat.ParametricTriangleTet(triangle, uv)
	if tet == TetNotFound {
		return TetNotFound, weight, false
	}
	weight = lat.GridLocusToWeight(gridLocus, lat.TetCentroids[tet])
	return tet, weight, true
}

func (lat *Lattice) locateBlend(verts []int, gridLocus Vec3) (tet int) {
	if len(lat.tetHash) == 0 {
		panic("point location on an empty lattice")
	}
	var (
		tc    = LowestTetCentroid(gridLocus)
		level = 1
		tets  = lat.TetsAt(tc)
	)
	for len(tets) == 0 {
		tc = tc.UpOneLevel()
		level++
		if level > lat.SubdivisionLevels {
			panic(fmt.Errorf("blended point %v not embedded in any existing tetrahedron within %d levels",
				gridLocus, lat.SubdivisionLevels))
		}
		tets = lat.TetsAt(tc)
	}
	if level > 1 {
		// coarser tetrahedra never virtual node, so presence is uniqueness
		if len(tets) != 1 {
			panic(fmt.Errorf("macrotet centroid %v indexes %d tetrahedra", tc, len(tets)))
		}
		return tets[0]
	}
	// prefer an input vertex's own embedding tetrahedron
	for _, v := range verts {
		vt := lat.VertexTets[v]
		if vt != TetNotFound && lat.TetCentroids[vt] == tc {
			return vt
		}
	}
	if len(tets) == 1 {
		return tets[0]
	}
	// virtual-node duplicates: prefer one topologically connected to an input
	// vertex through a shared node
	for _, cand := range tets {
		if lat.tetSharesNodeWithVertexTets(cand, verts) {
			return cand
		}
	}
	// last resort: walk a solid ray from each input vertex to the target
	for _, v := range verts {
		if t := lat.VertexSolidLinePath(v, gridLocus); t != TetNotFound {
			return t
		}
	}
	return TetNotFound
}

func (lat *Lattice) tetSharesNodeWithVertexTets(tet int, verts []int) bool {
	var nodes [4]int = lat.TetNodes[tet]
	for _, v := range verts {
		vt := lat.VertexTets[v]
		if vt == TetNotFound {
			continue
		}
		for _, vn := range lat.TetNodes[vt] {
			for _, n := range nodes {
				if n == vn {
					return true
				}
			}
		}
	}
	return false
}

/*
VertexSolidLinePath walks a straight ray in grid space from a vertex's
embedded position to materialTarget, face-hopping between adjacent
tetrahedra. The ray parameter increases monotonically, so the walk never
revisits territory behind it; combined with the bounded step count this
prevents oscillation at virtual-node junctions. Returns the tetrahedron
containing the target, or TetNotFound when no solid straight-line path
exists - which is the correct answer when a cut has severed the path
*/
func (lat *Lattice) VertexSolidLinePath(vertex int, materialTarget Vec3) (tet int) {
	var (
		tc    = LowestTetCentroid(materialTarget)
		level = 1
	)
	targetTets := lat.TetsAt(tc)
	for len(targetTets) == 0 {
		tc = tc.UpOneLevel()
		level++
		if level > lat.SubdivisionLevels {
			panic(fmt.Errorf("line path target %v not embedded in any existing tetrahedron", materialTarget))
		}
		targetTets = lat.TetsAt(tc)
	}
	if len(targetTets) == 1 {
		return targetTets[0]
	}
	if level > 1 {
		panic(fmt.Errorf("macrotet centroid %v indexes %d tetrahedra", tc, len(targetTets)))
	}
	// several virtual-noded duplicates occupy the target cell; only the walk
	// can tell which one the vertex is solid-connected to
	var (
		vLoc     = lat.VertexGridLocus(vertex)
		N        = materialTarget.Sub(vLoc)
		tetNow   = lat.VertexTets[vertex]
		p        = 0.0
		maxSteps = len(lat.TetCentroids) + 4
	)
	face, p, ok := lat.tetRayExit(tetNow, vLoc, N, p)
	if !ok {
		// the start embedding does not contain its own ray origin: upstream
		// inconsistency, not resolvable here
		return TetNotFound
	}
	for steps := 0; p < 1.0; steps++ {
		if steps > maxSteps {
			panic("solid line path exceeded its step bound: lattice adjacency is corrupt")
		}
		tcAdj, adjFace := lat.TetCentroids[tetNow].FaceAdjacent(face)
		if adjFace < 0 {
			return TetNotFound // ray left the lattice domain
		}
		cand := lat.TetsAt(tcAdj)
		if len(cand) == 0 {
			// the finest level was coarsened away here; promote to the
			// coarser neighbor
			var (
				tcUp = tcAdj
				lvl  = tcUp.Level()
			)
			for len(cand) != 1 {
				if lvl >= lat.SubdivisionLevels {
					return TetNotFound
				}
				tcUp = tcUp.UpOneLevel()
				lvl++
				cand = lat.TetsAt(tcUp)
			}
		}
		next := TetNotFound
		if len(cand) == 1 {
			next = cand[0]
		} else {
			// virtual-node junction: line-of-sight continuity requires the
			// duplicate sharing a node with the tetrahedron we are leaving
			for _, c := range cand {
				if sharesNode(lat.TetNodes[c], lat.TetNodes[tetNow]) {
					next = c
					break
				}
			}
		}
		if next == TetNotFound {
			return TetNotFound // junction not crossable: not solid-connected
		}
		tetNow = next
		if face, p, ok = lat.tetRayExit(tetNow, vLoc, N, p); !ok {
			return TetNotFound
		}
	}
	return tetNow
}

func sharesNode(a, b [4]int) bool {
	for _, n := range a {
		for _, m := range b {
			if n == m {
				return true
			}
		}
	}
	return false
}

/*
tetRayExit finds the face through which the ray origin+t*dir leaves the
tetrahedron, requiring forward progress beyond the incoming parameter. Each
face is tested by solving the 3x3 system expressing the ray against two face
edge vectors; the exit face is the one whose face coordinates land in the
unit triangle with t beyond pPrev
*/
func (lat *Lattice) tetRayExit(tet int, origin, dir Vec3, pPrev float64) (face int, p float64, ok bool) {
	var (
		tn = lat.TetNodes[tet]
		gl [4]Vec3
	)
	for i := 0; i < 4; i++ {
		gl[i] = lat.NodeGridLoci[tn[i]].Vec3()
	}
	for face = 0; face < 4; face++ {
		var (
			V0 = gl[face]
			e1 = gl[(face+1)&3].Sub(V0)
			e2 = gl[(face+2)&3].Sub(V0)
		)
		M := utils.NewMat3Cols(dir, e1, e2)
		rhs := V0.Sub(origin)
		x := utils.RobustSolve3(M, mat.NewVecDense(3, rhs[:]))
		var (
			t = x.AtVec(0)
			a = -x.AtVec(1)
			b = -x.AtVec(2)
		)
		if t > pPrev && a >= 0.0 && a <= 1.0 && b >= 0.0 && b <= 1.0 && a+b <= 1.0 {
			return face, t, true
		}
	}
	return -1, pPrev, false
}
