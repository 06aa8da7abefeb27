package logistic

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// GradientDescent runs numIters fixed-step updates starting from wIn, bIn.
// The cost of the updated parameters is recorded once per iteration.
// wIn is copied and never written.
func GradientDescent(X mat.Matrix, y, wIn []float64, bIn float64, model ModelCost,
	alpha float64, numIters int) (w []float64, b float64, history []float64, err error) {

	if model == nil {
		return nil, 0, nil, errors.New("logistic: nil model cost")
	}
	if alpha <= 0 {
		return nil, 0, nil, errors.Errorf("logistic: learning rate must be positive, got %v", alpha)
	}
	if numIters < 0 {
		return nil, 0, nil, errors.Errorf("logistic: iteration count must be non-negative, got %v", numIters)
	}

	w = make([]float64, len(wIn))
	copy(w, wIn)
	b = bIn
	history = make([]float64, numIters)

	for iter := 0; iter < numIters; iter++ {
		var djDb, djDw = model.Gradient(X, y, w, b)
		floats.AddScaled(w, -alpha, djDw)
		b -= alpha * djDb
		history[iter] = model.Cost(X, y, w, b)
	}

	return w, b, history, nil
}
