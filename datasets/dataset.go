// Package datasets implements record shuffling, splitting and tallying shared by the dataset packages
package datasets

import "fmt"
import "math/rand"

import "github.com/tsumegolab/puzzlenet/tensor"

// Shuffle permutes the records of images and labels with the same
// permutation, so pairs stay aligned.
func Shuffle(r *rand.Rand, images, labels *tensor.Tensor) {
	if images.Dim(0) != labels.Dim(0) {
		panic(fmt.Sprintf("datasets: %d images but %d labels", images.Dim(0), labels.Dim(0)))
	}
	var imgTmp = make([]float32, images.RecordSize())
	var lblTmp = make([]float32, labels.RecordSize())
	r.Shuffle(images.Dim(0), func(i, j int) {
		copy(imgTmp, images.Record(i))
		copy(images.Record(i), images.Record(j))
		copy(images.Record(j), imgTmp)
		copy(lblTmp, labels.Record(i))
		copy(labels.Record(i), labels.Record(j))
		copy(labels.Record(j), lblTmp)
	})
}

// Split cuts a trailing holdout fraction off for validation. The leading
// (1-holdout) of records become the training set. Records are not copied;
// the returned tensors alias the inputs.
func Split(images, labels *tensor.Tensor, holdout float64) (trainImages, trainLabels, holdImages, holdLabels *tensor.Tensor) {
	if holdout < 0 || holdout >= 1 {
		panic(fmt.Sprintf("datasets: holdout fraction %v out of range", holdout))
	}
	var n = images.Dim(0)
	var cut = n - int(float64(n)*holdout)
	trainImages = images.Slice(0, cut)
	trainLabels = labels.Slice(0, cut)
	holdImages = images.Slice(cut, n)
	holdLabels = labels.Slice(cut, n)
	return
}
