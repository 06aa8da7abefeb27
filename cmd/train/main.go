package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/Amphxros/Aprendizaje-Automatico/internal/gradcheck"
	"github.com/Amphxros/Aprendizaje-Automatico/pkg/logistic"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type Config struct {
	alpha     float64
	iters     int
	lambda    float64
	examples  int
	seed      int64
	gradCheck bool
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	flag.Float64Var(&config.alpha, "alpha", 0.1, "Learning rate")
	flag.IntVar(&config.iters, "iters", 1000, "Number of iterations")
	flag.Float64Var(&config.lambda, "lambda", 0, "L2 regularization strength")
	flag.IntVar(&config.examples, "m", 200, "Number of training examples")
	flag.Int64Var(&config.seed, "seed", 0, "Random seed")
	flag.BoolVar(&config.gradCheck, "gradcheck", false, "Check gradients by finite differences")
	flag.Parse()

	log.Printf("%+v", config)

	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	if config.examples < 1 {
		return errors.Errorf("m must be positive, got %d", config.examples)
	}

	var rnd = rand.New(rand.NewSource(config.seed))
	var X, y = makeDataset(rnd, config.examples)
	var _, n = X.Dims()

	var model logistic.ModelCost
	if config.lambda > 0 {
		model = &logistic.L2CrossEntropyCost{Lambda: config.lambda}
	} else {
		model = &logistic.CrossEntropyCost{}
	}

	var wIn = logistic.RandomWeights(rnd, n, 0.01)

	if config.gradCheck {
		var err = checkGradients(X, y, wIn, model)
		if err != nil {
			return err
		}
	}

	log.Println("Train started")
	var w, b, history, err = logistic.GradientDescent(X, y, wIn, 0, model, config.alpha, config.iters)
	if err != nil {
		return err
	}
	log.Println("Train finished")

	if len(history) != 0 {
		log.Printf("Cost: %f -> %f", history[0], history[len(history)-1])
	}
	var pred = logistic.Predict(X, w, b)
	log.Printf("Train accuracy: %f", logistic.Accuracy(pred, y))

	fmt.Printf("var w = %#v\n", w)
	fmt.Printf("var b = %v\n", b)

	return nil
}

func checkGradients(X mat.Matrix, y, w []float64, model logistic.ModelCost) error {
	var djDb, djDw = model.Gradient(X, y, w, 0)
	var analytic = append([]float64{djDb}, djDw...)

	var numeric, err = gradcheck.Gradient(func(p []float64) float64 {
		return model.Cost(X, y, p[1:], p[0])
	}, append([]float64{0}, w...), 1e-5)
	if err != nil {
		return err
	}
	worst, err := gradcheck.MaxRelativeError(analytic, numeric)
	if err != nil {
		return err
	}
	log.Printf("Gradient check error: %g", worst)
	if worst > 1e-6 {
		return errors.Errorf("gradient check failed: %g", worst)
	}
	return nil
}
