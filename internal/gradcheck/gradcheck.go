package gradcheck

import (
	"math"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Gradient estimates the gradient of f at x by central differences.
// f must be safe for concurrent calls; each worker probes its own copy of x.
func Gradient(f func([]float64) float64, x []float64, eps float64) ([]float64, error) {
	if f == nil {
		return nil, errors.New("gradcheck: nil function")
	}
	if eps <= 0 {
		return nil, errors.Errorf("gradcheck: step must be positive, got %v", eps)
	}

	var grad = make([]float64, len(x))
	var index int32 = -1
	var g errgroup.Group
	var workers = min(runtime.NumCPU(), len(x))
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var probe = make([]float64, len(x))
			copy(probe, x)
			for {
				var i = int(atomic.AddInt32(&index, 1))
				if i >= len(x) {
					return nil
				}
				var x0 = probe[i]
				probe[i] = x0 + eps
				var fPlus = f(probe)
				probe[i] = x0 - eps
				var fMinus = f(probe)
				probe[i] = x0
				if math.IsNaN(fPlus) || math.IsInf(fPlus, 0) ||
					math.IsNaN(fMinus) || math.IsInf(fMinus, 0) {
					return errors.Errorf("gradcheck: non-finite value near index %d", i)
				}
				grad[i] = (fPlus - fMinus) / (2 * eps)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grad, nil
}

func MaxRelativeError(analytic, numeric []float64) (float64, error) {
	if len(analytic) != len(numeric) {
		return 0, errors.Errorf("gradcheck: length mismatch, %d vs %d", len(analytic), len(numeric))
	}
	var worst float64
	for i := range analytic {
		var diff = math.Abs(analytic[i] - numeric[i])
		var scale = max(1, math.Abs(analytic[i]), math.Abs(numeric[i]))
		if diff/scale > worst {
			worst = diff / scale
		}
	}
	return worst, nil
}
