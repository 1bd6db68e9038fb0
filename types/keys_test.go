package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroidKey(t *testing.T) {
	cases := [][3]uint16{
		{0, 0, 1},
		{5, 4, 2},
		{65535, 0, 65535},
		{1000, 2000, 3000},
	}
	for _, coords := range cases {
		assert.Equal(t, coords, NewCentroidKey(coords).GetCoords())
	}
	// distinct coordinates pack to distinct keys
	assert.NotEqual(t, NewCentroidKey([3]uint16{1, 0, 0}), NewCentroidKey([3]uint16{0, 1, 0}))
	assert.NotEqual(t, NewCentroidKey([3]uint16{1, 0, 0}), NewCentroidKey([3]uint16{0, 0, 1}))
}

func TestTetFaceKey(t *testing.T) {
	for _, tet := range []int{0, 7, 123456} {
		for face := 0; face < 4; face++ {
			gotTet, gotFace := NewTetFaceKey(tet, face).GetTetFace()
			assert.Equal(t, tet, gotTet)
			assert.Equal(t, face, gotFace)
		}
	}
	assert.Panics(t, func() { NewTetFaceKey(-1, 0) })
	assert.Panics(t, func() { NewTetFaceKey(0, 4) })
}
