package parallel

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// PredictionHasher fingerprints a vector of class predictions filled in from
// concurrent goroutines. Each slot is written exactly once; Sum folds the
// whole vector into a single digest so two evaluation passes that predict the
// same classes produce the same state.
type PredictionHasher struct {
	data []uint16
	mark []bool
}

// NewPredictionHasher makes a hasher for n prediction slots.
func NewPredictionHasher(n int) *PredictionHasher {
	return &PredictionHasher{
		data: make([]uint16, n),
		mark: make([]bool, n),
	}
}

// MustPutUint16 stores the class predicted for sample n. Writing a slot
// twice is a bug in the caller and panics.
func (h *PredictionHasher) MustPutUint16(n int, value uint16) {
	if h.mark[n] {
		panic(fmt.Sprintf("duplicate prediction write at slot %d", n))
	}
	h.mark[n] = true
	h.data[n] = value
}

// Sum digests the prediction vector. All slots must have been written.
func (h *PredictionHasher) Sum() [32]byte {
	sha := sha256.New()
	var buf [2]byte
	for n, v := range h.data {
		if !h.mark[n] {
			panic(fmt.Sprintf("prediction slot %d never written", n))
		}
		binary.LittleEndian.PutUint16(buf[:], v)
		sha.Write(buf[:])
	}
	var out [32]byte
	copy(out[:], sha.Sum(nil))
	return out
}
