// Package tensor implements the dense float32 tensor consumed by the decoder and the network
package tensor

import "fmt"

// Tensor is a dense row-major float32 array with a fixed shape.
// The layout is channel-last: the final axis varies fastest.
type Tensor struct {
	shape []int
	data  []float32
}

// New allocates a zeroed tensor of the given shape.
func New(shape ...int) *Tensor {
	var n = 1
	for _, d := range shape {
		if d < 0 {
			panic(fmt.Sprintf("tensor: negative dimension %d", d))
		}
		n *= d
	}
	return &Tensor{
		shape: append([]int{}, shape...),
		data:  make([]float32, n),
	}
}

// Wrap makes a tensor over an existing backing slice. The slice length must
// match the shape exactly.
func Wrap(data []float32, shape ...int) *Tensor {
	var n = 1
	for _, d := range shape {
		n *= d
	}
	if n != len(data) {
		panic(fmt.Sprintf("tensor: shape %v needs %d values, have %d", shape, n, len(data)))
	}
	return &Tensor{
		shape: append([]int{}, shape...),
		data:  data,
	}
}

// Shape returns the tensor shape. The caller must not modify it.
func (t *Tensor) Shape() []int {
	return t.shape
}

// Dim returns the size of axis n.
func (t *Tensor) Dim(n int) int {
	return t.shape[n]
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return len(t.data)
}

// Data returns the backing slice in row-major order.
func (t *Tensor) Data() []float32 {
	return t.data
}

func (t *Tensor) index(indices ...int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: %d indices into rank-%d tensor", len(indices), len(t.shape)))
	}
	var flat = 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for axis %d of size %d", idx, i, t.shape[i]))
		}
		flat = flat*t.shape[i] + idx
	}
	return flat
}

// At reads the element at the given indices.
func (t *Tensor) At(indices ...int) float32 {
	return t.data[t.index(indices...)]
}

// Set writes the element at the given indices.
func (t *Tensor) Set(value float32, indices ...int) {
	t.data[t.index(indices...)] = value
}

// RecordSize returns the number of elements per leading-axis record.
func (t *Tensor) RecordSize() int {
	if len(t.shape) == 0 || t.shape[0] == 0 {
		return 0
	}
	return len(t.data) / t.shape[0]
}

// Record returns the backing slice of record i of the leading axis.
// The returned slice aliases the tensor.
func (t *Tensor) Record(i int) []float32 {
	var size = t.RecordSize()
	return t.data[i*size : (i+1)*size]
}

// Slice returns a view of records [from, to) of the leading axis.
// The view aliases the tensor's backing slice.
func (t *Tensor) Slice(from, to int) *Tensor {
	if from < 0 || to < from || to > t.shape[0] {
		panic(fmt.Sprintf("tensor: slice [%d:%d) of leading axis %d", from, to, t.shape[0]))
	}
	var shape = append([]int{to - from}, t.shape[1:]...)
	var size = t.RecordSize()
	return Wrap(t.data[from*size:to*size], shape...)
}

// Equal reports whether both tensors have identical shape and values.
func (t *Tensor) Equal(o *Tensor) bool {
	if len(t.shape) != len(o.shape) {
		return false
	}
	for i := range t.shape {
		if t.shape[i] != o.shape[i] {
			return false
		}
	}
	for i := range t.data {
		if t.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	var o = New(t.shape...)
	copy(o.data, t.data)
	return o
}
