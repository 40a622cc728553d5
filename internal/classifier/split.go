package classifier

import (
	"math"
	"math/rand"
)

// stratifiedSplit partitions sample indices into train and test sets,
// holding out testFraction of each label's samples. The shuffle is seeded
// so the same corpus and seed always produce the same split.
func stratifiedSplit(labels []string, testFraction float64, seed int64) (trainIdx, testIdx []int) {
	byLabel := make(map[string][]int)
	var order []string
	for i, label := range labels {
		if _, ok := byLabel[label]; !ok {
			order = append(order, label)
		}
		byLabel[label] = append(byLabel[label], i)
	}

	rng := rand.New(rand.NewSource(seed))
	for _, label := range order {
		idx := byLabel[label]
		rng.Shuffle(len(idx), func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })

		nTest := int(math.Round(float64(len(idx)) * testFraction))
		if nTest < 1 {
			nTest = 1
		}
		if nTest >= len(idx) {
			nTest = len(idx) - 1
		}
		testIdx = append(testIdx, idx[:nTest]...)
		trainIdx = append(trainIdx, idx[nTest:]...)
	}
	return trainIdx, testIdx
}
