package pdm

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ErrOptimizerDivergence is returned when a minimizer fails to converge or
// produces a non-physical fit.
var ErrOptimizerDivergence = errors.New("pdm: optimizer failed to converge")

// Objective is a scalar function of a parameter vector.
type Objective func(params []float64) float64

// Minimizer finds a local minimum of an objective starting from an initial
// guess. Implementations keep any iterative state local to the call.
type Minimizer interface {
	Minimize(obj Objective, initial []float64) ([]float64, error)
}

// NelderMead minimizes with gonum's derivative-free Nelder-Mead simplex.
// The zero value uses a 200 major-iteration cap.
type NelderMead struct {
	MaxIter int
}

// Minimize runs the simplex search from the initial guess.
func (nm *NelderMead) Minimize(obj Objective, initial []float64) ([]float64, error) {
	if len(initial) == 0 {
		return nil, ErrOptimizerDivergence
	}
	maxIter := nm.MaxIter
	if maxIter <= 0 {
		maxIter = 200
	}

	problem := optimize.Problem{Func: obj}
	settings := &optimize.Settings{MajorIterations: maxIter}

	result, err := optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	if err != nil {
		// An iteration-limit stop still carries the best point found.
		if result == nil || len(result.X) == 0 {
			return nil, ErrOptimizerDivergence
		}
	}
	for _, v := range result.X {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrOptimizerDivergence
		}
	}
	return result.X, nil
}

// GradientDescent minimizes with bounded central-difference gradient descent.
// Each pass shrinks the step when the objective fails to improve; the search
// stops at MaxIter passes or when the improvement falls below Tolerance.
// Zero-valued fields receive defaults: MaxIter=500, LearningRate=0.01,
// Tolerance=1e-9.
type GradientDescent struct {
	MaxIter      int
	LearningRate float64
	Tolerance    float64
}

// Minimize runs the descent from the initial guess.
func (gd *GradientDescent) Minimize(obj Objective, initial []float64) ([]float64, error) {
	if len(initial) == 0 {
		return nil, ErrOptimizerDivergence
	}
	maxIter := gd.MaxIter
	if maxIter <= 0 {
		maxIter = 500
	}
	lr := gd.LearningRate
	if lr <= 0 {
		lr = 0.01
	}
	tol := gd.Tolerance
	if tol <= 0 {
		tol = 1e-9
	}

	const eps = 1e-6
	x := append([]float64(nil), initial...)
	fx := obj(x)
	if math.IsNaN(fx) || math.IsInf(fx, 0) {
		return nil, ErrOptimizerDivergence
	}

	grad := make([]float64, len(x))
	trial := make([]float64, len(x))

	for iter := 0; iter < maxIter; iter++ {
		for i := range x {
			orig := x[i]
			x[i] = orig + eps
			fPlus := obj(x)
			x[i] = orig - eps
			fMinus := obj(x)
			x[i] = orig
			grad[i] = (fPlus - fMinus) / (2 * eps)
		}

		// Backtrack the step until the objective improves.
		step := lr
		improved := false
		for k := 0; k < 20; k++ {
			for i := range x {
				trial[i] = x[i] - step*grad[i]
			}
			ft := obj(trial)
			if !math.IsNaN(ft) && ft < fx {
				if fx-ft < tol {
					copy(x, trial)
					return x, nil
				}
				copy(x, trial)
				fx = ft
				improved = true
				break
			}
			step /= 2
		}
		if !improved {
			// No descent direction at any step size: local minimum.
			return x, nil
		}
	}
	return x, nil
}
