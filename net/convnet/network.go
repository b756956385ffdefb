// Package convnet implements the small channel-last convolutional network type
package convnet

import "github.com/tsumegolab/puzzlenet/tensor"

// Layer is one stage of the network. Forward caches whatever Backward needs,
// so a layer instance must not be shared between networks.
type Layer interface {

	// Forward maps a (N,...) batch to the layer output
	Forward(in *tensor.Tensor) *tensor.Tensor

	// Backward maps the output gradient to the input gradient,
	// accumulating parameter gradients along the way
	Backward(grad *tensor.Tensor) *tensor.Tensor
}

// Param is one learnable parameter slice paired with its accumulated gradient.
type Param struct {
	Value []float32
	Grad  []float32
}

// ParamLayer is a layer with learnable parameters.
type ParamLayer interface {
	Layer
	Params() []Param
}

// Network is an ordered stack of layers.
type Network struct {
	layers []Layer
}

// Add appends a layer to the end of the network.
func (n *Network) Add(l Layer) {
	n.layers = append(n.layers, l)
}

// LenLayers returns the number of layers.
func (n *Network) LenLayers() int {
	return len(n.layers)
}

// Forward runs the batch through every layer.
func (n *Network) Forward(in *tensor.Tensor) *tensor.Tensor {
	for _, l := range n.layers {
		in = l.Forward(in)
	}
	return in
}

// Backward propagates the output gradient back through every layer.
func (n *Network) Backward(grad *tensor.Tensor) {
	for i := len(n.layers) - 1; i >= 0; i-- {
		grad = n.layers[i].Backward(grad)
	}
}

// Params collects the parameters of all learnable layers in order.
func (n *Network) Params() (o []Param) {
	for _, l := range n.layers {
		if pl, ok := l.(ParamLayer); ok {
			o = append(o, pl.Params()...)
		}
	}
	return
}

// ZeroGrad clears all accumulated parameter gradients.
func (n *Network) ZeroGrad() {
	for _, p := range n.Params() {
		for i := range p.Grad {
			p.Grad[i] = 0
		}
	}
}

// Classify forwards the batch and takes the argmax over each record's
// trailing axis, collapsing the (N,1,1,classes) logits to class indices.
func (n *Network) Classify(images *tensor.Tensor) (classes []int) {
	var out = n.Forward(images)
	classes = make([]int, out.Dim(0))
	for i := range classes {
		classes[i] = Argmax(out.Record(i))
	}
	return
}

// Argmax returns the index of the largest value. Ties go to the lowest index.
func Argmax(values []float32) (best int) {
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return
}
