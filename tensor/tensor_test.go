package tensor

import "testing"

func TestIndexing(t *testing.T) {
	a := New(2, 3, 4)
	if a.Len() != 24 {
		t.Fatalf("len %d, want 24", a.Len())
	}
	a.Set(7, 1, 2, 3)
	if a.At(1, 2, 3) != 7 {
		t.Errorf("round trip lost the value")
	}
	// channel-last layout: the last axis varies fastest
	if a.Data()[1*12+2*4+3] != 7 {
		t.Errorf("value not at the row-major offset")
	}
}

func TestRecord(t *testing.T) {
	a := New(3, 2, 2)
	if a.RecordSize() != 4 {
		t.Fatalf("record size %d, want 4", a.RecordSize())
	}
	a.Record(1)[0] = 5
	if a.At(1, 0, 0) != 5 {
		t.Errorf("record view does not alias the tensor")
	}
}

func TestSlice(t *testing.T) {
	a := New(4, 2)
	for i := range a.Data() {
		a.Data()[i] = float32(i)
	}
	s := a.Slice(1, 3)
	if s.Dim(0) != 2 || s.At(0, 0) != 2 {
		t.Errorf("slice shape %v first %v", s.Shape(), s.At(0, 0))
	}
	s.Set(-1, 0, 0)
	if a.At(1, 0) != -1 {
		t.Errorf("slice does not alias parent")
	}
}

func TestWrapLengthCheck(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("wrap with wrong length did not panic")
		}
	}()
	Wrap(make([]float32, 5), 2, 3)
}

func TestEqualAndClone(t *testing.T) {
	a := New(2, 2)
	a.Set(3, 0, 1)
	b := a.Clone()
	if !a.Equal(b) {
		t.Errorf("clone differs from source")
	}
	b.Set(4, 0, 1)
	if a.Equal(b) {
		t.Errorf("modified clone still equal")
	}
	if a.Equal(New(4)) {
		t.Errorf("different shapes reported equal")
	}
}
