package logistic

import (
	"math"
	"math/rand"
)

func RandomWeights(rnd *rand.Rand, n int, variance float64) []float64 {
	var uniformVariance = 1.0 / 12
	var scale = math.Sqrt(variance / uniformVariance)
	var w = make([]float64, n)
	for i := range w {
		w[i] = (rnd.Float64() - 0.5) * scale
	}
	return w
}
