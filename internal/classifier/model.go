package classifier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// LinearModel is a fitted multinomial logistic regression: one weight row
// and one intercept per class over the vectorizer's feature space. Fields
// are exported for gob encoding.
type LinearModel struct {
	Classes    []string
	Weights    [][]float64
	Intercepts []float64
}

// fitOptions bound the optimizer run.
type fitOptions struct {
	C       float64
	MaxIter int
}

// scores computes one raw decision value per class.
func (m *LinearModel) scores(fv featureVector) []float64 {
	out := make([]float64, len(m.Classes))
	for k := range m.Classes {
		s := m.Intercepts[k]
		row := m.Weights[k]
		for i, idx := range fv.Indices {
			s += row[idx] * fv.Values[i]
		}
		out[k] = s
	}
	return out
}

// Probabilities returns the softmax distribution over classes, in the order
// of Classes.
func (m *LinearModel) Probabilities(fv featureVector) []float64 {
	s := m.scores(fv)
	softmax(s)
	return s
}

// softmax exponentiates in place, subtracting the max for stability.
func softmax(s []float64) {
	max := floats.Max(s)
	var sum float64
	for i, v := range s {
		e := math.Exp(v - max)
		s[i] = e
		sum += e
	}
	floats.Scale(1/sum, s)
}

// fitLogistic fits a multinomial logistic regression with L-BFGS, minimizing
// the summed cross-entropy plus an L2 penalty of 1/(2C) on the weights.
// Intercepts are not penalized. Hitting the iteration cap is accepted as a
// usable fit; other optimizer failures are returned.
func fitLogistic(features []featureVector, target []int, classes []string, dim int, opts fitOptions) (*LinearModel, error) {
	k := len(classes)
	stride := dim + 1 // per-class weights followed by the intercept
	lambda := 1 / opts.C

	logProbs := func(x []float64, fv featureVector, scores []float64) {
		for c := 0; c < k; c++ {
			base := c * stride
			s := x[base+dim]
			for j, idx := range fv.Indices {
				s += x[base+idx] * fv.Values[j]
			}
			scores[c] = s
		}
		max := floats.Max(scores)
		var sum float64
		for c := 0; c < k; c++ {
			sum += math.Exp(scores[c] - max)
		}
		logSum := max + math.Log(sum)
		for c := 0; c < k; c++ {
			scores[c] -= logSum
		}
	}

	objective := func(x []float64) float64 {
		scores := make([]float64, k)
		var loss float64
		for i, fv := range features {
			logProbs(x, fv, scores)
			loss -= scores[target[i]]
		}
		var reg float64
		for c := 0; c < k; c++ {
			base := c * stride
			for j := 0; j < dim; j++ {
				reg += x[base+j] * x[base+j]
			}
		}
		return loss + 0.5*lambda*reg
	}

	gradient := func(grad, x []float64) {
		for i := range grad {
			grad[i] = 0
		}
		scores := make([]float64, k)
		for i, fv := range features {
			logProbs(x, fv, scores)
			for c := 0; c < k; c++ {
				diff := math.Exp(scores[c])
				if c == target[i] {
					diff--
				}
				base := c * stride
				for j, idx := range fv.Indices {
					grad[base+idx] += diff * fv.Values[j]
				}
				grad[base+dim] += diff
			}
		}
		for c := 0; c < k; c++ {
			base := c * stride
			for j := 0; j < dim; j++ {
				grad[base+j] += lambda * x[base+j]
			}
		}
	}

	problem := optimize.Problem{Func: objective, Grad: gradient}
	settings := &optimize.Settings{
		MajorIterations:   opts.MaxIter,
		GradientThreshold: 1e-5,
	}
	x0 := make([]float64, k*stride)

	result, err := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if err != nil {
		return nil, fmt.Errorf("minimize: %w", err)
	}
	if serr := result.Status.Err(); serr != nil && result.Status != optimize.IterationLimit {
		return nil, fmt.Errorf("optimizer stopped: %w", serr)
	}

	model := &LinearModel{
		Classes:    append([]string(nil), classes...),
		Weights:    make([][]float64, k),
		Intercepts: make([]float64, k),
	}
	for c := 0; c < k; c++ {
		base := c * stride
		model.Weights[c] = append([]float64(nil), result.X[base:base+dim]...)
		model.Intercepts[c] = result.X[base+dim]
	}
	return model, nil
}
