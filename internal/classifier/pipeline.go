// Package classifier trains and serves the expense category model, a TF-IDF
// representation over word n-grams feeding a multinomial logistic
// regression. A fitted pipeline is immutable; retraining builds a new one
// and swaps it in through the Manager.
package classifier

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ngramMin = 1
	ngramMax = 3

	defaultTestFraction = 0.15
	defaultSeed         = 42
	defaultC            = 5.0
	defaultMaxIter      = 1000
)

var ErrEmptyText = errors.New("text cannot be empty")

// Prediction is the classifier's answer for one description.
type Prediction struct {
	Category      string
	Confidence    map[string]float64
	TopConfidence float64
}

// Pipeline bundles a fitted vectorizer and model with training metadata.
// The two are fitted together and persist as a single artifact.
type Pipeline struct {
	ID         string
	TrainedAt  time.Time
	Accuracy   float64
	Vectorizer *Vectorizer
	Model      *LinearModel
}

// TrainOptions tune a training run. Zero values select the defaults.
type TrainOptions struct {
	TestFraction float64
	Seed         int64
	C            float64
	MaxIter      int
}

func (o TrainOptions) withDefaults() TrainOptions {
	if o.TestFraction <= 0 {
		o.TestFraction = defaultTestFraction
	}
	if o.Seed == 0 {
		o.Seed = defaultSeed
	}
	if o.C <= 0 {
		o.C = defaultC
	}
	if o.MaxIter <= 0 {
		o.MaxIter = defaultMaxIter
	}
	return o
}

// Train fits a pipeline on the embedded corpus: stratified train/test split,
// vectorizer fitted on the training partition only, logistic fit, then a
// held-out accuracy estimate on the test partition.
func Train(opts TrainOptions) (*Pipeline, error) {
	opts = opts.withDefaults()
	texts, labels := TrainingCorpus()
	trainIdx, testIdx := stratifiedSplit(labels, opts.TestFraction, opts.Seed)

	classes := distinctSorted(labels)
	classIdx := make(map[string]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}

	vec := newVectorizer(ngramMin, ngramMax)
	trainDocs := make([]string, len(trainIdx))
	for i, idx := range trainIdx {
		trainDocs[i] = texts[idx]
	}
	vec.Fit(trainDocs)

	features := make([]featureVector, len(trainIdx))
	target := make([]int, len(trainIdx))
	for i, idx := range trainIdx {
		features[i] = vec.Transform(texts[idx])
		target[i] = classIdx[labels[idx]]
	}

	model, err := fitLogistic(features, target, classes, vec.Dim(), fitOptions{C: opts.C, MaxIter: opts.MaxIter})
	if err != nil {
		return nil, fmt.Errorf("fit model: %w", err)
	}

	p := &Pipeline{
		ID:         uuid.NewString(),
		TrainedAt:  time.Now().UTC(),
		Vectorizer: vec,
		Model:      model,
	}

	correct := 0
	for _, idx := range testIdx {
		pred, err := p.Predict(texts[idx])
		if err != nil {
			return nil, fmt.Errorf("evaluate %q: %w", texts[idx], err)
		}
		if pred.Category == labels[idx] {
			correct++
		}
	}
	if len(testIdx) > 0 {
		p.Accuracy = float64(correct) / float64(len(testIdx))
	}
	return p, nil
}

// Predict classifies one description. A fitted pipeline is read-only, so
// Predict is safe for concurrent use. Descriptions with no known terms
// still get a valid distribution, driven by the intercepts alone.
func (p *Pipeline) Predict(description string) (Prediction, error) {
	if strings.TrimSpace(description) == "" {
		return Prediction{}, ErrEmptyText
	}

	fv := p.Vectorizer.Transform(description)
	probs := p.Model.Probabilities(fv)

	pred := Prediction{Confidence: make(map[string]float64, len(probs))}
	for i, class := range p.Model.Classes {
		pred.Confidence[class] = probs[i]
		if probs[i] > pred.TopConfidence {
			pred.TopConfidence = probs[i]
			pred.Category = class
		}
	}
	return pred, nil
}

// Classes returns a copy of the label set.
func (p *Pipeline) Classes() []string {
	return append([]string(nil), p.Model.Classes...)
}

func distinctSorted(labels []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, label := range labels {
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}
