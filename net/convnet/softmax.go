package convnet

import "fmt"
import "math"

import "github.com/tsumegolab/puzzlenet/tensor"

// SoftmaxCrossEntropy is the categorical cross-entropy loss over softmaxed
// logits. It is the training head, not a network layer: the gradient it
// returns feeds Network.Backward directly.
type SoftmaxCrossEntropy struct{}

// Loss computes the mean cross-entropy between the one-hot target and the
// softmax of the logits, along with the logits gradient softmax(x)-target
// scaled by 1/N.
func (SoftmaxCrossEntropy) Loss(logits, target *tensor.Tensor) (loss float32, grad *tensor.Tensor) {
	if logits.Len() != target.Len() || logits.Dim(0) != target.Dim(0) {
		panic(fmt.Sprintf("cross entropy: logits %v vs target %v", logits.Shape(), target.Shape()))
	}
	var batch = logits.Dim(0)
	grad = tensor.New(logits.Shape()...)
	var probs = make([]float32, logits.RecordSize())
	for i := 0; i < batch; i++ {
		Softmax(probs, logits.Record(i))
		var t = target.Record(i)
		var g = grad.Record(i)
		for j := range probs {
			if t[j] != 0 {
				loss += -t[j] * float32(math.Log(float64(max32(probs[j], 1e-12))))
			}
			g[j] = (probs[j] - t[j]) / float32(batch)
		}
	}
	return loss / float32(batch), grad
}

// Softmax writes the softmax of logits into dst. The maximum logit is
// subtracted first so large logits cannot overflow.
func Softmax(dst, logits []float32) {
	var maxv = logits[0]
	for _, v := range logits {
		if v > maxv {
			maxv = v
		}
	}
	var sum float32
	for i, v := range logits {
		dst[i] = float32(math.Exp(float64(v - maxv)))
		sum += dst[i]
	}
	for i := range dst {
		dst[i] /= sum
	}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
