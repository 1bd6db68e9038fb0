package utils

import (
	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

/*
DOK is a thin wrapper over a dictionary-of-keys sparse matrix, used to
assemble the node <-> tetrahedron incidence matrix handed to the constraint
solver. Assembly happens once per lattice rebuild; consumers convert to CSR
for row-ordered traversal
*/
type DOK struct {
	M    *sparse.DOK
	name string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		"unnamed - hint: pass a variable name to SetName()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)              { return m.M.Dims() }
func (m DOK) At(i, j int) float64           { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix                 { return m.M.T() }
func (m DOK) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }

func (m DOK) Set(i, j int, v float64) { m.M.Set(i, j, v) }

func (m DOK) NNZ() int { return m.M.NNZ() }

func (m DOK) ToCSR() *sparse.CSR { return m.M.ToCSR() }

func (m *DOK) SetName(name string) { m.name = name }

func (m DOK) Name() string { return m.name }
