package gradcheck

import (
	"math"
	"testing"
)

func TestGradientQuadratic(t *testing.T) {
	// Central differences are exact for quadratics up to rounding.
	var c = []float64{1, -2, 0.5, 3}
	var f = func(x []float64) float64 {
		var sum float64
		for i := range x {
			sum += c[i] * x[i] * x[i]
		}
		return sum
	}
	var x = []float64{0.3, -1.2, 2, 0}
	var got, err = Gradient(f, x, 1e-5)
	if err != nil {
		t.Fatal(err)
	}
	for i := range x {
		var want = 2 * c[i] * x[i]
		if math.Abs(got[i]-want) > 1e-9 {
			t.Errorf("grad[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestGradientParallel(t *testing.T) {
	// More coordinates than workers, so every worker drains several indices.
	var n = 64
	var f = func(x []float64) float64 {
		var sum float64
		for i := range x {
			sum += float64(i) * x[i]
		}
		return sum
	}
	var x = make([]float64, n)
	for i := range x {
		x[i] = 1 - float64(i)/float64(n)
	}
	var got, err = Gradient(f, x, 1e-4)
	if err != nil {
		t.Fatal(err)
	}
	var want = make([]float64, n)
	for i := range want {
		want[i] = float64(i)
	}
	worst, err := MaxRelativeError(want, got)
	if err != nil {
		t.Fatal(err)
	}
	if worst > 1e-6 {
		t.Errorf("gradient error %v", worst)
	}
}

func TestGradientErrors(t *testing.T) {
	var f = func(x []float64) float64 { return x[0] }
	if _, err := Gradient(nil, []float64{1}, 1e-5); err == nil {
		t.Error("nil function: want error")
	}
	if _, err := Gradient(f, []float64{1}, 0); err == nil {
		t.Error("zero step: want error")
	}
	if _, err := Gradient(f, []float64{1}, -1e-5); err == nil {
		t.Error("negative step: want error")
	}
	var bad = func(x []float64) float64 { return math.Log(-x[0]) }
	if _, err := Gradient(bad, []float64{1}, 1e-5); err == nil {
		t.Error("non-finite value: want error")
	}
}

func TestMaxRelativeError(t *testing.T) {
	if _, err := MaxRelativeError([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("length mismatch: want error")
	}
	var got, err = MaxRelativeError([]float64{1, -2}, []float64{1, -2.5})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.2 {
		t.Errorf("MaxRelativeError = %v, want 0.2", got)
	}
}
