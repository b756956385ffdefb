package trainer

import "fmt"
import "math/rand"

import "github.com/tsumegolab/puzzlenet/datasets"
import "github.com/tsumegolab/puzzlenet/net/convnet"
import "github.com/tsumegolab/puzzlenet/tensor"

// Stats reports what a training run did.
type Stats struct {
	Epochs    int     // epochs actually run
	Loss      float32 // final epoch mean loss
	Accuracy  int     // best holdout accuracy percent
	Plateaued bool    // stopped because the evaluation state repeated
}

// Train runs the epoch loop on a decoded dataset with one-hot labels.
// A trailing holdout fraction is evaluated after every epoch; the best model
// so far is checkpointed to dstmodel when it is non-empty. Training stops on
// the epoch budget, on reaching the target accuracy, or when the holdout
// prediction fingerprint repeats an already-seen state (a plateau).
func Train(net *convnet.Network, images, labels *tensor.Tensor, cfg Config, dstmodel string) (Stats, error) {
	if images.Dim(0) != labels.Dim(0) {
		return Stats{}, fmt.Errorf("training on %d images but %d labels", images.Dim(0), labels.Dim(0))
	}
	opt, err := NewOptimizer(cfg)
	if err != nil {
		return Stats{}, err
	}
	if cfg.BatchSize <= 0 || cfg.Epochs <= 0 {
		return Stats{}, fmt.Errorf("batch size %d and epochs %d must be positive", cfg.BatchSize, cfg.Epochs)
	}

	var r = rand.New(rand.NewSource(cfg.Seed))
	datasets.Shuffle(r, images, labels)
	trainImages, trainLabels, holdImages, holdLabels := datasets.Split(images, labels, cfg.ValidationSplit)
	if trainImages.Dim(0) == 0 {
		return Stats{}, fmt.Errorf("no training records after holdout split")
	}

	var success = 0
	var evaluate = NewEvaluateFunc(net, holdImages, holdLabels, cfg.Significance, &success, &dstmodel)
	var head convnet.SoftmaxCrossEntropy
	var seen = make(map[[32]byte]struct{})
	var stats Stats

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		datasets.Shuffle(r, trainImages, trainLabels)
		var epochLoss float32
		var batches = 0
		for at := 0; at < trainImages.Dim(0); at += cfg.BatchSize {
			var end = at + cfg.BatchSize
			if end > trainImages.Dim(0) {
				end = trainImages.Dim(0)
			}
			net.ZeroGrad()
			logits := net.Forward(trainImages.Slice(at, end))
			loss, grad := head.Loss(logits, trainLabels.Slice(at, end))
			net.Backward(grad)
			opt.Step(net.Params(), cfg.LearningRate)
			epochLoss += loss
			batches++
		}
		stats.Epochs = epoch + 1
		stats.Loss = epochLoss / float32(batches)

		accuracy, state := evaluate()
		if accuracy > stats.Accuracy {
			stats.Accuracy = accuracy
		}
		if holdImages.Dim(0) > 0 {
			if accuracy >= cfg.TargetAccuracy {
				return stats, nil
			}
			if _, stuck := seen[state]; stuck {
				stats.Plateaued = true
				return stats, nil
			}
			seen[state] = struct{}{}
		}
	}
	return stats, nil
}
