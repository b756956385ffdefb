package datasets

import "sync"

// Tally counts label occurrences per class. It is safe for concurrent Add.
type Tally struct {
	counts []uint64
	total  uint64

	mut sync.Mutex
}

// Init initializes the tally for the given number of classes
func (t *Tally) Init(classes int) {
	t.counts = make([]uint64, classes)
	t.total = 0
}

// Free frees the memory occupied by the tally
func (t *Tally) Free() {
	t.counts = nil
	t.total = 0
}

// Add votes one occurrence of class
func (t *Tally) Add(class int) {
	t.mut.Lock()
	t.counts[class]++
	t.total++
	t.mut.Unlock()
}

// Count returns the number of occurrences of class
func (t *Tally) Count(class int) uint64 {
	t.mut.Lock()
	defer t.mut.Unlock()
	return t.counts[class]
}

// Total returns the number of tallied labels
func (t *Tally) Total() uint64 {
	t.mut.Lock()
	defer t.mut.Unlock()
	return t.total
}

// Len returns the number of classes
func (t *Tally) Len() int {
	return len(t.counts)
}

// Majority returns the class with the highest count
func (t *Tally) Majority() (class int) {
	t.mut.Lock()
	defer t.mut.Unlock()
	for i, n := range t.counts {
		if n > t.counts[class] {
			class = i
		}
	}
	return
}

// Weights returns inverse-frequency class weights. Classes never seen get
// weight 0. Useful to report imbalance of the win/loss labels.
func (t *Tally) Weights() (o []float32) {
	t.mut.Lock()
	defer t.mut.Unlock()
	o = make([]float32, len(t.counts))
	if t.total == 0 {
		return
	}
	for i, n := range t.counts {
		if n != 0 {
			o[i] = float32(t.total) / float32(uint64(len(t.counts))*n)
		}
	}
	return
}
