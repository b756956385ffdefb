// Package inference implements the inference stage of the puzzlenet classifier
package inference

import "github.com/tsumegolab/puzzlenet/net/convnet"
import "github.com/tsumegolab/puzzlenet/tensor"

// Model is anything that maps an image batch to per-record logits.
type Model interface {
	Forward(in *tensor.Tensor) *tensor.Tensor
}

// Classify returns the argmax class per record.
func Classify(m Model, images *tensor.Tensor) (classes []int) {
	var out = m.Forward(images)
	classes = make([]int, out.Dim(0))
	for i := range classes {
		classes[i] = convnet.Argmax(out.Record(i))
	}
	return
}

// Probabilities softmaxes the logits of every record in place of returning
// raw scores.
func Probabilities(m Model, images *tensor.Tensor) *tensor.Tensor {
	var out = m.Forward(images)
	var probs = tensor.New(out.Shape()...)
	for i := 0; i < out.Dim(0); i++ {
		convnet.Softmax(probs.Record(i), out.Record(i))
	}
	return probs
}
