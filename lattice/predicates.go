package lattice

/*
Containment tests work directly in the centroid's decoded half-axis and
orientation space as linear inequalities on the point coordinates, without
materializing the 4 node positions. Comparisons run in doubled units so the
exact node form needs no floating point at all. Faces are inclusive: a point
exactly on a shared face is inside both neighbors, so no point between two
tetrahedra falls in neither
*/

// InsideTet reports whether a continuous grid position lies in the
// tetrahedron encoded by tc.
func InsideTet(tc TetCentroid, gridLocus Vec3) bool {
	var (
		hc, size = tc.HalfAxisSize()
		up       = tc.isUp(hc, size)
		c1, c2   = (hc + 1) % 3, (hc + 2) % 3
		// doubled-unit positions of the secondary axes and the low/high
		// half-axis edges
		C1 = float64(tc[c1])
		C2 = float64(tc[c2])
		B  = float64(int(tc[hc]) - size)
		T  = float64(int(tc[hc]) + size)
		ph = 2 * gridLocus[hc]
		p1 = 2 * gridLocus[c1]
		p2 = 2 * gridLocus[c2]
	)
	if up {
		if p2-ph > C2-B || -p2-ph > -C2-B {
			return false
		}
		if p1+ph > C1+T || -p1+ph > -C1+T {
			return false
		}
	} else {
		if p2+ph > C2+T || -p2+ph > -C2+T {
			return false
		}
		if p1-ph > C1-B || -p1-ph > -C1-B {
			return false
		}
	}
	return true
}

// InsideTetNode is InsideTet for an exact lattice node position, in pure
// integer arithmetic so adjacency and embedding results can be validated
// without tolerance concerns.
func InsideTetNode(tc TetCentroid, nodeLocus GridLocus) bool {
	var (
		hc, size = tc.HalfAxisSize()
		up       = tc.isUp(hc, size)
		c1, c2   = (hc + 1) % 3, (hc + 2) % 3
		C1       = int(tc[c1])
		C2       = int(tc[c2])
		B        = int(tc[hc]) - size
		T        = int(tc[hc]) + size
		ph       = 2 * int(nodeLocus[hc])
		p1       = 2 * int(nodeLocus[c1])
		p2       = 2 * int(nodeLocus[c2])
	)
	if up {
		if p2-ph > C2-B || -p2-ph > -C2-B {
			return false
		}
		if p1+ph > C1+T || -p1+ph > -C1+T {
			return false
		}
	} else {
		if p2+ph > C2+T || -p2+ph > -C2+T {
			return false
		}
		if p1-ph > C1-B || -p1-ph > -C1-B {
			return false
		}
	}
	return true
}
