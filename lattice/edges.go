package lattice

/*
Edge adjacency is derived from the face algebra rather than its own centroid
arithmetic: the tetrahedra around an edge form a ring, and composing face
adjacency hops that keep both edge nodes walks that ring. Cartesian edges
ring 4 tetrahedra, diagonal edges 6; a virtual-node junction or the lattice
boundary terminates the walk early on that side
*/

// EdgeNodes returns the two node indices of one of a tetrahedron's six
// edges, in permutation order 0-1,0-2,0-3, 1-2,1-3, 2-3.
func (lat *Lattice) EdgeNodes(tet, edge int) (n0, n1 int) {
	tn := lat.TetNodes[tet]
	switch {
	case edge < 3:
		n0, n1 = tn[0], tn[edge+1]
	case edge < 5:
		n0, n1 = tn[1], tn[edge-1]
	default:
		n0, n1 = tn[2], tn[3]
	}
	return
}

// facesWithNodes lists the faces of a tetrahedron containing both nodes.
// Face f holds nodes f, f+1, f+2 mod 4, so every node pair lies on exactly
// two faces.
func facesWithNodes(tn [4]int, n0, n1 int) (faces [2]int, count int) {
	for f := 0; f < 4; f++ {
		have := 0
		for i := 0; i < 3; i++ {
			n := tn[(f+i)&3]
			if n == n0 || n == n1 {
				have++
			}
		}
		if have == 2 {
			faces[count] = f
			count++
		}
	}
	return
}

/*
EdgeAdjacentTets collects the tetrahedra sharing both nodes of the given
edge, excluding tet itself. The ring is walked in both directions so a
boundary or severed junction on one side still yields the reachable tets on
the other
*/
func (lat *Lattice) EdgeAdjacentTets(tet, edge int) (adjTets []int) {
	var (
		n0, n1 = lat.EdgeNodes(tet, edge)
		seen   = map[int]bool{tet: true}
	)
	faces, count := facesWithNodes(lat.TetNodes[tet], n0, n1)
	if count != 2 {
		panic("tetrahedron edge not on exactly two faces")
	}
	for dir := 0; dir < 2; dir++ {
		cur, curFace := tet, faces[dir]
		// at most 6 tets ring an edge; 8 bounds the walk safely
		for step := 0; step < 8; step++ {
			tcAdj, adjFace := lat.TetCentroids[cur].FaceAdjacent(curFace)
			if adjFace < 0 {
				break // lattice boundary
			}
			next := TetNotFound
			for _, c := range lat.TetsAt(tcAdj) {
				tn := lat.TetNodes[c]
				if containsNode(tn, n0) && containsNode(tn, n1) {
					next = c
					break
				}
			}
			if next == TetNotFound || seen[next] {
				break // junction severed by a cut, or ring closed
			}
			seen[next] = true
			adjTets = append(adjTets, next)
			// leave through the other face of next that still holds the edge
			nf, nc := facesWithNodes(lat.TetNodes[next], n0, n1)
			if nc != 2 {
				break
			}
			curFace = nf[0]
			if curFace == adjFace {
				curFace = nf[1]
			}
			cur = next
		}
	}
	return
}

func containsNode(tn [4]int, n int) bool {
	return tn[0] == n || tn[1] == n || tn[2] == n || tn[3] == n
}

/*
FaceAdjacentTets resolves the same-level neighbors across a face of an
existing tetrahedron, filtering virtual-node duplicates down to those that
actually share the face's three nodes. adjFace is the neighbor's index for
the shared face, -1 at the lattice boundary
*/
func (lat *Lattice) FaceAdjacentTets(tet, face int) (adjTets []int, adjFace int) {
	var tcAdj TetCentroid
	tcAdj, adjFace = lat.TetCentroids[tet].FaceAdjacent(face)
	if adjFace < 0 {
		return nil, adjFace
	}
	var (
		tn        = lat.TetNodes[tet]
		faceNodes [3]int
	)
	for i := 0; i < 3; i++ {
		faceNodes[i] = tn[(face+i)&3]
	}
	for _, c := range lat.TetsAt(tcAdj) {
		ctn := lat.TetNodes[c]
		shared := 0
		for i := 0; i < 3; i++ {
			if containsNode(ctn, faceNodes[i]) {
				shared++
			}
		}
		if shared == 3 {
			adjTets = append(adjTets, c)
		}
	}
	return
}
