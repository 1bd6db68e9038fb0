package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	data := []byte(`
Title: "Test Lattice"
GridDimensions: [4, 4, 4]
SubdivisionLevels: 3
UnitSpacing: 0.5
MinCorner: [-1., 0., 2.]
`)
	lp := &LatticeParameters{}
	assert.NoError(t, lp.Parse(data))
	assert.Equal(t, "Test Lattice", lp.Title)
	assert.Equal(t, [3]int{4, 4, 4}, lp.GridDimensions)
	assert.Equal(t, 3, lp.SubdivisionLevels)
	assert.Equal(t, 0.5, lp.UnitSpacing)
	assert.Equal(t, [3]float64{-1, 0, 2}, lp.MinCorner)
}

func TestValidate(t *testing.T) {
	lp := &LatticeParameters{
		GridDimensions:    [3]int{4, 0, 4},
		SubdivisionLevels: 3,
		UnitSpacing:       1.,
	}
	assert.Error(t, lp.Validate())
	lp.GridDimensions[1] = 4
	assert.NoError(t, lp.Validate())
	lp.SubdivisionLevels = 0
	assert.Error(t, lp.Validate())
	lp.SubdivisionLevels = 2
	lp.UnitSpacing = 0
	assert.Error(t, lp.Validate())
}
