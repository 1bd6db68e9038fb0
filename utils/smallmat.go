package utils

import (
	"gonum.org/v1/gonum/mat"
)

/*
RobustSolve3 solves the 3x3 system A*x = b, tolerating near-singular
conditioning: the LU path is tried first and, when gonum reports the system as
singular or badly conditioned, the solution is recomputed through an SVD
pseudo-inverse instead of dividing by a near-zero pivot
*/
func RobustSolve3(A *mat.Dense, b *mat.VecDense) (x *mat.VecDense) {
	var (
		r, c = A.Dims()
	)
	if r != 3 || c != 3 || b.Len() != 3 {
		panic("RobustSolve3 requires a 3x3 system")
	}
	x = mat.NewVecDense(3, nil)
	if err := x.SolveVec(A, b); err == nil {
		return
	}
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		panic("SVD factorization failed on a 3x3 system")
	}
	rank := svd.Rank(1.e-12)
	if rank == 0 {
		// degenerate system, zero solution is as good as any
		return mat.NewVecDense(3, nil)
	}
	var (
		X mat.Dense
		B = mat.NewDense(3, 1, []float64{b.AtVec(0), b.AtVec(1), b.AtVec(2)})
	)
	svd.SolveTo(&X, B, rank)
	x = mat.NewVecDense(3, []float64{X.At(0, 0), X.At(1, 0), X.At(2, 0)})
	return
}

// NewMat3 builds a 3x3 dense matrix from three column vectors
func NewMat3Cols(c0, c1, c2 [3]float64) (M *mat.Dense) {
	M = mat.NewDense(3, 3, []float64{
		c0[0], c1[0], c2[0],
		c0[1], c1[1], c2[1],
		c0[2], c1[2], c2[2],
	})
	return
}
