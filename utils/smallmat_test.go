package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"gonum.org/v1/gonum/mat"
)

func TestRobustSolve3(t *testing.T) {
	{ // well conditioned system solves exactly
		A := NewMat3Cols(
			[3]float64{2, 0, 0},
			[3]float64{0, 3, 0},
			[3]float64{1, 1, 1},
		)
		b := mat.NewVecDense(3, []float64{4, 7, 2})
		x := RobustSolve3(A, b)
		assert.True(t, nearEqual(x.AtVec(0), 1, 1.e-12))
		assert.True(t, nearEqual(x.AtVec(1), 5./3., 1.e-12))
		assert.True(t, nearEqual(x.AtVec(2), 2, 1.e-12))
	}
	{ // rank deficient but consistent: the pseudo-inverse path still
		// satisfies the system
		A := NewMat3Cols(
			[3]float64{1, 0, 0},
			[3]float64{0, 1, 0},
			[3]float64{1, 1, 0},
		)
		b := mat.NewVecDense(3, []float64{1, 1, 0})
		x := RobustSolve3(A, b)
		var r mat.VecDense
		r.MulVec(A, x)
		for i := 0; i < 3; i++ {
			assert.True(t, nearEqual(r.AtVec(i), b.AtVec(i), 1.e-9))
		}
	}
	{ // fully degenerate system yields the zero vector, not NaN
		A := mat.NewDense(3, 3, make([]float64, 9))
		b := mat.NewVecDense(3, []float64{1, 2, 3})
		x := RobustSolve3(A, b)
		for i := 0; i < 3; i++ {
			assert.False(t, math.IsNaN(x.AtVec(i)))
			assert.True(t, nearEqual(x.AtVec(i), 0, 1.e-12))
		}
	}
	{ // dimension mismatch is a programming error
		assert.Panics(t, func() {
			RobustSolve3(mat.NewDense(2, 2, nil), mat.NewVecDense(2, nil))
		})
	}
}

func TestNewMat3Cols(t *testing.T) {
	M := NewMat3Cols(
		[3]float64{1, 2, 3},
		[3]float64{4, 5, 6},
		[3]float64{7, 8, 9},
	)
	for j, col := range [][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}} {
		for i := 0; i < 3; i++ {
			assert.Equal(t, col[i], M.At(i, j))
		}
	}
}

func nearEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}
