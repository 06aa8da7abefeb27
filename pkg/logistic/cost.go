package logistic

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type ModelCost interface {
	Cost(X mat.Matrix, y, w []float64, b float64) float64
	Gradient(X mat.Matrix, y, w []float64, b float64) (float64, []float64)
}

type CrossEntropyCost struct{}

func (*CrossEntropyCost) Cost(X mat.Matrix, y, w []float64, b float64) float64 {
	return Cost(X, y, w, b)
}

func (*CrossEntropyCost) Gradient(X mat.Matrix, y, w []float64, b float64) (float64, []float64) {
	return Gradient(X, y, w, b)
}

type L2CrossEntropyCost struct {
	Lambda float64
}

func (c *L2CrossEntropyCost) Cost(X mat.Matrix, y, w []float64, b float64) float64 {
	return CostReg(X, y, w, b, c.Lambda)
}

func (c *L2CrossEntropyCost) Gradient(X mat.Matrix, y, w []float64, b float64) (float64, []float64) {
	return GradientReg(X, y, w, b, c.Lambda)
}

func Cost(X mat.Matrix, y, w []float64, b float64) float64 {
	var h = probabilities(X, w, b)
	var sum float64
	for i := range h {
		sum += y[i]*math.Log(h[i]) + (1-y[i])*math.Log(1-h[i])
	}
	return -sum / float64(len(h))
}

// CostReg adds the L2 penalty to Cost. The bias is not regularized.
func CostReg(X mat.Matrix, y, w []float64, b float64, lambda float64) float64 {
	var m, _ = X.Dims()
	return Cost(X, y, w, b) + lambda*floats.Dot(w, w)/(2*float64(m))
}
