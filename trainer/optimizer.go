package trainer

import "fmt"
import "math"

import "github.com/tsumegolab/puzzlenet/net/convnet"

// Optimizer applies accumulated gradients to network parameters.
type Optimizer interface {

	// Step updates every parameter from its gradient
	Step(params []convnet.Param, learningRate float32)

	// Reset clears optimizer state (momentum, moments)
	Reset()

	// Name returns the optimizer name
	Name() string
}

// NewOptimizer makes an optimizer from its config name.
func NewOptimizer(cfg Config) (Optimizer, error) {
	switch cfg.Optimizer {
	case "sgd":
		return NewSGD(cfg.Momentum), nil
	case "adam":
		return NewAdam(), nil
	}
	return nil, fmt.Errorf("unknown optimizer %q", cfg.Optimizer)
}

// SGD is stochastic gradient descent with optional momentum.
type SGD struct {
	momentum   float32
	velocities [][]float32
}

func NewSGD(momentum float32) *SGD {
	return &SGD{momentum: momentum}
}

func (o *SGD) Name() string {
	return "sgd"
}

func (o *SGD) Reset() {
	o.velocities = nil
}

func (o *SGD) Step(params []convnet.Param, learningRate float32) {
	if o.velocities == nil {
		o.velocities = make([][]float32, len(params))
		for i, p := range params {
			o.velocities[i] = make([]float32, len(p.Value))
		}
	}
	for i, p := range params {
		var v = o.velocities[i]
		for j := range p.Value {
			v[j] = o.momentum*v[j] + p.Grad[j]
			p.Value[j] -= learningRate * v[j]
		}
	}
}

// Adam is the Adam optimizer with bias-corrected moment estimates.
type Adam struct {
	beta1, beta2, eps float32
	m, v              [][]float32
	t                 int
}

func NewAdam() *Adam {
	return &Adam{beta1: 0.9, beta2: 0.999, eps: 1e-8}
}

func (o *Adam) Name() string {
	return "adam"
}

func (o *Adam) Reset() {
	o.m = nil
	o.v = nil
	o.t = 0
}

func (o *Adam) Step(params []convnet.Param, learningRate float32) {
	if o.m == nil {
		o.m = make([][]float32, len(params))
		o.v = make([][]float32, len(params))
		for i, p := range params {
			o.m[i] = make([]float32, len(p.Value))
			o.v[i] = make([]float32, len(p.Value))
		}
	}
	o.t++
	var c1 = 1 - float32(math.Pow(float64(o.beta1), float64(o.t)))
	var c2 = 1 - float32(math.Pow(float64(o.beta2), float64(o.t)))
	for i, p := range params {
		var m, v = o.m[i], o.v[i]
		for j := range p.Value {
			var g = p.Grad[j]
			m[j] = o.beta1*m[j] + (1-o.beta1)*g
			v[j] = o.beta2*v[j] + (1-o.beta2)*g*g
			var mHat = m[j] / c1
			var vHat = v[j] / c2
			p.Value[j] -= learningRate * mHat / (float32(math.Sqrt(float64(vHat))) + o.eps)
		}
	}
}
