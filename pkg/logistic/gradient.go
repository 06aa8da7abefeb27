package logistic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func Gradient(X mat.Matrix, y, w []float64, b float64) (djDb float64, djDw []float64) {
	var m, n = X.Dims()
	var residual = probabilities(X, w, b)
	floats.Sub(residual, y)

	var grad = mat.NewVecDense(n, nil)
	grad.MulVec(X.T(), mat.NewVecDense(m, residual))
	djDw = grad.RawVector().Data
	floats.Scale(1/float64(m), djDw)
	djDb = floats.Sum(residual) / float64(m)
	return djDb, djDw
}

// GradientReg adds lambda/m*w to the weight gradient. The bias gradient is unchanged.
func GradientReg(X mat.Matrix, y, w []float64, b float64, lambda float64) (djDb float64, djDw []float64) {
	var m, _ = X.Dims()
	djDb, djDw = Gradient(X, y, w, b)
	floats.AddScaled(djDw, lambda/float64(m), w)
	return djDb, djDw
}
