package convnet

import "fmt"
import "math"
import "math/rand"

import "github.com/tsumegolab/puzzlenet/tensor"

// Conv2D is a stride-1 2D convolution over channel-last input, with an
// optional fused ReLU. Kernel layout is (kh, kw, inChannels, filters).
type Conv2D struct {
	InHeight, InWidth, InChannels int
	KernelSize                    int
	Filters                       int
	Padding                       int // 0 is valid, (KernelSize-1)/2 is same
	ReLU                          bool

	Kernel []float32
	Bias   []float32

	kernelGrad []float32
	biasGrad   []float32

	input *tensor.Tensor
	pre   []float32
}

// MustNewConv2D creates a same-padded Conv2D layer with He-initialized weights
func MustNewConv2D(inHeight, inWidth, inChannels, kernelSize, filters int, relu bool) *Conv2D {
	o, err := NewConv2D(inHeight, inWidth, inChannels, kernelSize, filters, (kernelSize-1)/2, relu)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// NewConv2D creates a Conv2D layer with He-initialized weights
func NewConv2D(inHeight, inWidth, inChannels, kernelSize, filters, padding int, relu bool) (*Conv2D, error) {
	if kernelSize > inHeight+2*padding || kernelSize > inWidth+2*padding {
		return nil, fmt.Errorf("new Conv2D: kernel %d exceeds padded input %dx%d", kernelSize, inHeight+2*padding, inWidth+2*padding)
	}
	var o = &Conv2D{
		InHeight:   inHeight,
		InWidth:    inWidth,
		InChannels: inChannels,
		KernelSize: kernelSize,
		Filters:    filters,
		Padding:    padding,
		ReLU:       relu,
		Kernel:     make([]float32, kernelSize*kernelSize*inChannels*filters),
		Bias:       make([]float32, filters),
	}
	o.kernelGrad = make([]float32, len(o.Kernel))
	o.biasGrad = make([]float32, len(o.Bias))
	var stddev = float32(math.Sqrt(2.0 / float64(inChannels*kernelSize*kernelSize)))
	for i := range o.Kernel {
		o.Kernel[i] = float32(rand.NormFloat64()) * stddev
	}
	return o, nil
}

// OutHeight returns the output height.
func (c *Conv2D) OutHeight() int {
	return c.InHeight + 2*c.Padding - c.KernelSize + 1
}

// OutWidth returns the output width.
func (c *Conv2D) OutWidth() int {
	return c.InWidth + 2*c.Padding - c.KernelSize + 1
}

func (c *Conv2D) Params() []Param {
	return []Param{
		{Value: c.Kernel, Grad: c.kernelGrad},
		{Value: c.Bias, Grad: c.biasGrad},
	}
}

func (c *Conv2D) Forward(in *tensor.Tensor) *tensor.Tensor {
	var batch = in.Dim(0)
	var outH, outW = c.OutHeight(), c.OutWidth()
	var out = tensor.New(batch, outH, outW, c.Filters)
	c.input = in
	c.pre = make([]float32, out.Len())

	var inData = in.Data()
	var outData = out.Data()
	for b := 0; b < batch; b++ {
		var inBase = b * c.InHeight * c.InWidth * c.InChannels
		var outBase = b * outH * outW * c.Filters
		for oh := 0; oh < outH; oh++ {
			for ow := 0; ow < outW; ow++ {
				for f := 0; f < c.Filters; f++ {
					var sum = c.Bias[f]
					for kh := 0; kh < c.KernelSize; kh++ {
						var ih = oh + kh - c.Padding
						if ih < 0 || ih >= c.InHeight {
							continue
						}
						for kw := 0; kw < c.KernelSize; kw++ {
							var iw = ow + kw - c.Padding
							if iw < 0 || iw >= c.InWidth {
								continue
							}
							var inIdx = inBase + (ih*c.InWidth+iw)*c.InChannels
							var kIdx = ((kh*c.KernelSize+kw)*c.InChannels)*c.Filters + f
							for ic := 0; ic < c.InChannels; ic++ {
								sum += inData[inIdx+ic] * c.Kernel[kIdx+ic*c.Filters]
							}
						}
					}
					var outIdx = outBase + (oh*outW+ow)*c.Filters + f
					c.pre[outIdx] = sum
					if c.ReLU && sum < 0 {
						sum = 0
					}
					outData[outIdx] = sum
				}
			}
		}
	}
	return out
}

func (c *Conv2D) Backward(grad *tensor.Tensor) *tensor.Tensor {
	var batch = grad.Dim(0)
	var outH, outW = c.OutHeight(), c.OutWidth()
	var gradIn = tensor.New(batch, c.InHeight, c.InWidth, c.InChannels)

	var inData = c.input.Data()
	var gradInData = gradIn.Data()
	var gradData = grad.Data()
	for b := 0; b < batch; b++ {
		var inBase = b * c.InHeight * c.InWidth * c.InChannels
		var outBase = b * outH * outW * c.Filters
		for oh := 0; oh < outH; oh++ {
			for ow := 0; ow < outW; ow++ {
				for f := 0; f < c.Filters; f++ {
					var outIdx = outBase + (oh*outW+ow)*c.Filters + f
					var g = gradData[outIdx]
					if c.ReLU && c.pre[outIdx] <= 0 {
						continue
					}
					if g == 0 {
						continue
					}
					c.biasGrad[f] += g
					for kh := 0; kh < c.KernelSize; kh++ {
						var ih = oh + kh - c.Padding
						if ih < 0 || ih >= c.InHeight {
							continue
						}
						for kw := 0; kw < c.KernelSize; kw++ {
							var iw = ow + kw - c.Padding
							if iw < 0 || iw >= c.InWidth {
								continue
							}
							var inIdx = inBase + (ih*c.InWidth+iw)*c.InChannels
							var kIdx = ((kh*c.KernelSize+kw)*c.InChannels)*c.Filters + f
							for ic := 0; ic < c.InChannels; ic++ {
								c.kernelGrad[kIdx+ic*c.Filters] += g * inData[inIdx+ic]
								gradInData[inIdx+ic] += g * c.Kernel[kIdx+ic*c.Filters]
							}
						}
					}
				}
			}
		}
	}
	return gradIn
}
