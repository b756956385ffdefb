package trainer

import "math"

import "github.com/tsumegolab/puzzlenet/net/convnet"
import "github.com/tsumegolab/puzzlenet/parallel"
import "github.com/tsumegolab/puzzlenet/tensor"

// sampleSize calculates the statistically sufficient sample size
// for a given dataset size N and significance level (0–100).
func sampleSize(N int, significance byte) int {

	// Convert significance level to Z-score
	z := zScoreFromAlpha(100 - significance)

	// Assume worst-case proportion p = 0.5 for max variability
	p := 0.5
	e := float64(100-significance) * 0.01 // Margin of error

	numerator := math.Pow(z, 2) * p * (1 - p)
	denominator := math.Pow(e, 2)

	// Initial sample size without population correction
	ss := numerator / denominator

	// Apply finite population correction
	correctedSS := ss * float64(N) / (float64(N) - 1 + ss)

	if int(correctedSS) > N {
		return N
	}

	return int(correctedSS)
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576 // 99% confidence
	case alpha <= 5:
		return 1.96 // 95% confidence
	case alpha <= 10:
		return 1.645 // 90% confidence
	default:
		return 1.96 // default fallback
	}
}

// NewEvaluateFunc builds the per-epoch evaluation closure. It classifies a
// statistically sufficient sample of the holdout set, fingerprints the
// prediction vector so the caller can detect plateaus, and checkpoints the
// model to dstmodel whenever the accuracy percentage in succ improves.
func NewEvaluateFunc(net *convnet.Network, images, labels *tensor.Tensor, significance byte, succ *int, dstmodel *string) func() (int, [32]byte) {

	return func() (int, [32]byte) {
		var length = images.Dim(0)
		if length == 0 {
			return 0, [32]byte{}
		}
		var l = length
		if (succ != nil && *succ < 99 && *succ > 0) || succ == nil {
			l = sampleSize(length, significance)
		}
		var hsh = parallel.NewPredictionHasher(l)
		var classes = net.Classify(images.Slice(0, l))
		var correct = 0
		for i, predicted := range classes {
			hsh.MustPutUint16(i, uint16(predicted))
			if predicted == convnet.Argmax(labels.Record(i)) {
				correct++
			}
		}
		var success = correct * 100 / l

		if dstmodel != nil && len(*dstmodel) > 0 && ((succ != nil && (*succ < success || success >= 99)) || succ == nil) {
			err := net.WriteCompressedWeightsToFile(*dstmodel)
			if err != nil {
				println(err.Error())
			}
		}
		if succ != nil {
			*succ = success
		}

		return success, hsh.Sum()
	}
}
