package classifier

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// featureVector is one sparse document row: term indices in ascending order
// with their matching tf-idf weights, L2-normalized.
type featureVector struct {
	Indices []int
	Values  []float64
}

// Vectorizer maps text onto weighted word n-gram features. Term frequency
// is sublinear (1 + ln tf) and inverse document frequency is smoothed,
// ln((1+n)/(1+df)) + 1. Fields are exported for gob encoding.
type Vectorizer struct {
	NgramMin   int
	NgramMax   int
	Vocabulary map[string]int
	IDF        []float64
}

func newVectorizer(ngramMin, ngramMax int) *Vectorizer {
	return &Vectorizer{NgramMin: ngramMin, NgramMax: ngramMax}
}

// Fit builds the vocabulary and IDF weights from the given documents. Terms
// are indexed in lexicographic order so fitting is deterministic.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range ngrams(tokenize(doc), v.NgramMin, v.NgramMax) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Transform projects one document onto the fitted vocabulary. Terms outside
// the vocabulary are ignored; an all-unknown document yields an empty row.
func (v *Vectorizer) Transform(doc string) featureVector {
	counts := make(map[int]float64)
	for _, term := range ngrams(tokenize(doc), v.NgramMin, v.NgramMax) {
		if idx, ok := v.Vocabulary[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return featureVector{}
	}

	fv := featureVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		fv.Indices = append(fv.Indices, idx)
	}
	sort.Ints(fv.Indices)
	for _, idx := range fv.Indices {
		tf := 1 + math.Log(counts[idx])
		fv.Values = append(fv.Values, tf*v.IDF[idx])
	}

	if norm := floats.Norm(fv.Values, 2); norm > 0 {
		floats.Scale(1/norm, fv.Values)
	}
	return fv
}

// Dim returns the fitted vocabulary size.
func (v *Vectorizer) Dim() int { return len(v.Vocabulary) }
