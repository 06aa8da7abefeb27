package logistic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func Logit(p float64) float64 {
	return -math.Log(1/p - 1)
}

// probabilities returns sigmoid(X*w+b) for each row of X.
func probabilities(X mat.Matrix, w []float64, b float64) []float64 {
	var m, _ = X.Dims()
	var z = mat.NewVecDense(m, nil)
	z.MulVec(X, mat.NewVecDense(len(w), w))
	var h = z.RawVector().Data
	for i := range h {
		h[i] = Sigmoid(h[i] + b)
	}
	return h
}
