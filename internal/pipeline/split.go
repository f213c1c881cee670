package pipeline

import (
	"math/rand"

	"github.com/baramlab/aqlens/internal/contracts"
)

// DefaultTrainRatio is the train portion of the split.
const DefaultTrainRatio = 0.8

// TrainTestSplit shuffles the rows and partitions them at floor(n·ratio):
// train ∪ test = input with no overlap. The shuffle is deliberately unseeded,
// so repeated splits of the same data differ run-to-run.
func TrainTestSplit(rows []contracts.EngineeredRecord, ratio float64) contracts.SplitResult {
	if ratio <= 0 || ratio >= 1 {
		ratio = DefaultTrainRatio
	}

	shuffled := append([]contracts.EngineeredRecord{}, rows...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := int(float64(len(shuffled)) * ratio)
	return contracts.SplitResult{
		Train: shuffled[:cut],
		Test:  shuffled[cut:],
	}
}
