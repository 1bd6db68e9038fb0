package types

import (
	"fmt"
)

/*
CentroidKey packs the three 16-bit coordinates of a tetrahedron centroid into
one comparable integer so it can act as a hash key and allow ordered iteration
over the duplicate tetrahedra sharing a centroid
*/
type CentroidKey uint64

func NewCentroidKey(coords [3]uint16) (packed CentroidKey) {
	// This packs three coordinates into the low 48 bits of a uint64 to act as
	// a hash and an indirect access method
	packed = CentroidKey(coords[0]) + CentroidKey(coords[1])<<16 + CentroidKey(coords[2])<<32
	return
}

func (ck CentroidKey) GetCoords() (coords [3]uint16) {
	coords[0] = uint16(ck & 0xFFFF)
	coords[1] = uint16((ck >> 16) & 0xFFFF)
	coords[2] = uint16((ck >> 32) & 0xFFFF)
	return
}

/*
TetFaceKey identifies one face of one tetrahedron, packing the tetrahedron
index with the face number 0-3. Tetrahedron indices are limited to 62 bits,
which is far beyond any realizable lattice
*/
type TetFaceKey uint64

func NewTetFaceKey(tet int, face int) (packed TetFaceKey) {
	if tet < 0 || face < 0 || face > 3 {
		panic(fmt.Errorf("unable to pack tet %d face %d into a TetFaceKey", tet, face))
	}
	packed = TetFaceKey(tet)<<2 + TetFaceKey(face)
	return
}

func (tf TetFaceKey) GetTetFace() (tet, face int) {
	tet = int(tf >> 2)
	face = int(tf & 3)
	return
}
