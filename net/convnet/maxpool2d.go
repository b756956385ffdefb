package convnet

import "fmt"

import "github.com/tsumegolab/puzzlenet/tensor"

// MaxPool2D downsamples channel-last input by taking the maximum over
// non-overlapping PoolH x PoolW windows. The pool must divide the input.
type MaxPool2D struct {
	InHeight, InWidth, Channels int
	PoolH, PoolW                int

	argmax []int
}

// MustNewMaxPool2D creates a MaxPool2D layer
func MustNewMaxPool2D(inHeight, inWidth, channels, poolH, poolW int) *MaxPool2D {
	o, err := NewMaxPool2D(inHeight, inWidth, channels, poolH, poolW)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// NewMaxPool2D creates a MaxPool2D layer
func NewMaxPool2D(inHeight, inWidth, channels, poolH, poolW int) (*MaxPool2D, error) {
	if poolH <= 0 || poolW <= 0 || inHeight%poolH != 0 || inWidth%poolW != 0 {
		return nil, fmt.Errorf("new MaxPool2D: pool %dx%d does not divide input %dx%d", poolH, poolW, inHeight, inWidth)
	}
	return &MaxPool2D{
		InHeight: inHeight,
		InWidth:  inWidth,
		Channels: channels,
		PoolH:    poolH,
		PoolW:    poolW,
	}, nil
}

// OutHeight returns the output height.
func (m *MaxPool2D) OutHeight() int {
	return m.InHeight / m.PoolH
}

// OutWidth returns the output width.
func (m *MaxPool2D) OutWidth() int {
	return m.InWidth / m.PoolW
}

func (m *MaxPool2D) Forward(in *tensor.Tensor) *tensor.Tensor {
	var batch = in.Dim(0)
	var outH, outW = m.OutHeight(), m.OutWidth()
	var out = tensor.New(batch, outH, outW, m.Channels)
	m.argmax = make([]int, out.Len())

	var inData = in.Data()
	var outData = out.Data()
	for b := 0; b < batch; b++ {
		var inBase = b * m.InHeight * m.InWidth * m.Channels
		var outBase = b * outH * outW * m.Channels
		for oh := 0; oh < outH; oh++ {
			for ow := 0; ow < outW; ow++ {
				for c := 0; c < m.Channels; c++ {
					var bestIdx = inBase + (oh*m.PoolH*m.InWidth+ow*m.PoolW)*m.Channels + c
					var best = inData[bestIdx]
					for ph := 0; ph < m.PoolH; ph++ {
						for pw := 0; pw < m.PoolW; pw++ {
							var idx = inBase + ((oh*m.PoolH+ph)*m.InWidth+(ow*m.PoolW+pw))*m.Channels + c
							if inData[idx] > best {
								best = inData[idx]
								bestIdx = idx
							}
						}
					}
					var outIdx = outBase + (oh*outW+ow)*m.Channels + c
					outData[outIdx] = best
					m.argmax[outIdx] = bestIdx
				}
			}
		}
	}
	return out
}

func (m *MaxPool2D) Backward(grad *tensor.Tensor) *tensor.Tensor {
	var gradIn = tensor.New(grad.Dim(0), m.InHeight, m.InWidth, m.Channels)
	var gradInData = gradIn.Data()
	for outIdx, inIdx := range m.argmax {
		gradInData[inIdx] += grad.Data()[outIdx]
	}
	return gradIn
}
