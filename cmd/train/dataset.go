package main

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// makeDataset samples two gaussian clusters labeled 0 and 1.
func makeDataset(rnd *rand.Rand, m int) (*mat.Dense, []float64) {
	const features = 2
	var X = mat.NewDense(m, features, nil)
	var y = make([]float64, m)
	for i := 0; i < m; i++ {
		var label = float64(i % 2)
		var center = 3*label - 1.5
		for j := 0; j < features; j++ {
			X.Set(i, j, center+rnd.NormFloat64())
		}
		y[i] = label
	}
	return X, y
}
