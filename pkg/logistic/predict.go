package logistic

import "gonum.org/v1/gonum/mat"

func PredictProba(X mat.Matrix, w []float64, b float64) *mat.VecDense {
	var h = probabilities(X, w, b)
	return mat.NewVecDense(len(h), h)
}

func Predict(X mat.Matrix, w []float64, b float64) *mat.VecDense {
	var h = PredictProba(X, w, b)
	for i := 0; i < h.Len(); i++ {
		if h.AtVec(i) >= 0.5 {
			h.SetVec(i, 1)
		} else {
			h.SetVec(i, 0)
		}
	}
	return h
}

func Accuracy(pred mat.Vector, y []float64) float64 {
	var correct int
	for i := 0; i < pred.Len(); i++ {
		if pred.AtVec(i) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(pred.Len())
}
