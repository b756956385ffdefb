package tsumego

import (
	"bytes"
	"errors"
	"testing"
)

func record(fill byte, label byte) []byte {
	var r = bytes.Repeat([]byte{fill}, BytesPerRecord-1)
	return append(r, label)
}

func TestDecodeRejectsBadLength(t *testing.T) {
	for _, n := range []int{1, 48, 50, 97, 2*BytesPerRecord - 1, 2*BytesPerRecord + 1} {
		images, labels, err := Decode(make([]byte, n))
		if !errors.Is(err, ErrRecordSize) {
			t.Errorf("length %d: got err %v, want ErrRecordSize", n, err)
		}
		if images != nil || labels != nil {
			t.Errorf("length %d: partial output produced", n)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	images, labels, err := Decode(nil)
	if err != nil {
		t.Fatalf("empty buffer: %v", err)
	}
	if images.Dim(0) != 0 || labels.Dim(0) != 0 {
		t.Errorf("empty buffer decoded to %d/%d records", images.Dim(0), labels.Dim(0))
	}
}

func TestDecodeShapes(t *testing.T) {
	var buf []byte
	for i := 0; i < 5; i++ {
		buf = append(buf, record(byte(i), byte(i))...)
	}
	images, labels, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	wantImg := []int{5, BoardHeight, BoardWidth, Channels}
	for i, d := range images.Shape() {
		if d != wantImg[i] {
			t.Errorf("images shape %v, want %v", images.Shape(), wantImg)
			break
		}
	}
	wantLbl := []int{5, 1, 1, NumClasses}
	for i, d := range labels.Shape() {
		if d != wantLbl[i] {
			t.Errorf("labels shape %v, want %v", labels.Shape(), wantLbl)
			break
		}
	}
}

// round-trip scenario: all pixel bits set, label 5
func TestDecodeAllOnes(t *testing.T) {
	images, labels, err := Decode(record(0xFF, 5))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range images.Data() {
		if v != 1.0 {
			t.Fatalf("pixel %d is %v, want 1.0", i, v)
		}
	}
	for i, v := range labels.Data() {
		if i == 5 && v != 1.0 {
			t.Errorf("label slot 5 is %v, want 1.0", v)
		}
		if i != 5 && v != 0.0 {
			t.Errorf("label slot %d is %v, want 0.0", i, v)
		}
	}
}

// bit-order scenario: only the most significant bit of byte 0 is set,
// so exactly pixel (y=0, x=0, channel=0) must light up
func TestDecodeBitOrder(t *testing.T) {
	var buf = make([]byte, BytesPerRecord)
	buf[0] = 0x80
	images, _, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			for c := 0; c < Channels; c++ {
				var want = float32(0.0)
				if y == 0 && x == 0 && c == 0 {
					want = 1.0
				}
				if got := images.At(0, y, x, c); got != want {
					t.Errorf("pixel (%d,%d,%d) = %v, want %v", y, x, c, got, want)
				}
			}
		}
	}
}

// the right byte of a row pair covers columns 8..15
func TestDecodeRightByte(t *testing.T) {
	var buf = make([]byte, BytesPerRecord)
	buf[1] = 0x01 // least significant bit of the right byte of row 0, channel 0
	images, _, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := images.At(0, 0, BoardWidth-1, 0); got != 1.0 {
		t.Errorf("pixel (0,15,0) = %v, want 1.0", got)
	}
	var sum float32
	for _, v := range images.Data() {
		sum += v
	}
	if sum != 1.0 {
		t.Errorf("expected exactly one set pixel, sum = %v", sum)
	}
}

// channel planes are 16 bytes apart
func TestDecodeChannelOffsets(t *testing.T) {
	for channel := 0; channel < Channels; channel++ {
		var buf = make([]byte, BytesPerRecord)
		buf[channel*16] = 0x80
		images, _, err := Decode(buf)
		if err != nil {
			t.Fatal(err)
		}
		if got := images.At(0, 0, 0, channel); got != 1.0 {
			t.Errorf("channel %d: pixel (0,0,%d) = %v, want 1.0", channel, channel, got)
		}
	}
}

func TestDecodeValueDomain(t *testing.T) {
	var buf []byte
	for i := 0; i < 8; i++ {
		buf = append(buf, record(byte(0x5A+i), byte(i))...)
	}
	images, labels, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range images.Data() {
		if v != 0.0 && v != 1.0 {
			t.Fatalf("image value %d is %v, want binary", i, v)
		}
	}
	for i := 0; i < labels.Dim(0); i++ {
		var sum float32
		for _, v := range labels.Record(i) {
			sum += v
		}
		if sum != 1.0 {
			t.Errorf("record %d one-hot sums to %v", i, sum)
		}
	}
}

// multi-record scenario: records decode independently
func TestDecodeRecordIndependence(t *testing.T) {
	a := append(record(0x00, 1), record(0xAB, 2)...)
	b := append(record(0xFF, 3), record(0xAB, 2)...)
	imgA, lblA, err := Decode(a)
	if err != nil {
		t.Fatal(err)
	}
	imgB, lblB, err := Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if imgA.Dim(0) != 2 || imgB.Dim(0) != 2 {
		t.Fatalf("leading dimension %d/%d, want 2", imgA.Dim(0), imgB.Dim(0))
	}
	for i := range imgA.Record(1) {
		if imgA.Record(1)[i] != imgB.Record(1)[i] {
			t.Fatalf("record 1 image changed with record 0 bytes at %d", i)
		}
	}
	for i := range lblA.Record(1) {
		if lblA.Record(1)[i] != lblB.Record(1)[i] {
			t.Fatalf("record 1 label changed with record 0 bytes at %d", i)
		}
	}
}

func TestDecodeLabelRange(t *testing.T) {
	for _, label := range []byte{129, 200, 255} {
		_, _, err := Decode(record(0, label))
		if !errors.Is(err, ErrLabelRange) {
			t.Errorf("label %d: got err %v, want ErrLabelRange", label, err)
		}
	}
	if _, _, err := Decode(record(0, 128)); err != nil {
		t.Errorf("label 128 must be valid: %v", err)
	}
	// a bad label anywhere fails the whole buffer before decoding
	buf := append(record(0, 1), record(0, 129)...)
	if _, _, err := Decode(buf); !errors.Is(err, ErrLabelRange) {
		t.Errorf("bad trailing label: got err %v, want ErrLabelRange", err)
	}
}

func TestDecodeScalar(t *testing.T) {
	buf := append(record(0xFF, 0), record(0x00, 128)...)
	images, labels, err := DecodeScalar(buf)
	if err != nil {
		t.Fatal(err)
	}
	if labels.Dim(0) != 2 || labels.Dim(1) != 1 {
		t.Fatalf("scalar labels shape %v, want [2 1]", labels.Shape())
	}
	if labels.At(0, 0) != 0.0 || labels.At(1, 0) != 128.0 {
		t.Errorf("scalar labels %v, want [0 128]", labels.Data())
	}
	if images.At(0, 0, 0, 0) != 1.0 || images.At(1, 0, 0, 0) != 0.0 {
		t.Errorf("scalar mode images differ from canonical mode")
	}
}

// sanity check fuzz
func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add(record(0xFF, 5))
	f.Add(append(record(0x80, 0), record(0x01, 128)...))
	f.Fuzz(func(t *testing.T, buf []byte) {
		images, labels, err := Decode(buf)
		if len(buf)%BytesPerRecord != 0 {
			if !errors.Is(err, ErrRecordSize) {
				t.Errorf("len %d: want ErrRecordSize, got %v", len(buf), err)
			}
			return
		}
		if err != nil {
			if !errors.Is(err, ErrLabelRange) {
				t.Errorf("aligned buffer failed with unexpected error: %v", err)
			}
			return
		}
		if images.Dim(0) != len(buf)/BytesPerRecord {
			t.Errorf("decoded %d records from %d bytes", images.Dim(0), len(buf))
		}
		for _, v := range images.Data() {
			if v != 0.0 && v != 1.0 {
				t.Fatalf("non-binary image value %v", v)
			}
		}
		for i := 0; i < labels.Dim(0); i++ {
			var sum float32
			for _, v := range labels.Record(i) {
				sum += v
			}
			if sum != 1.0 {
				t.Fatalf("record %d one-hot sums to %v", i, sum)
			}
		}
	})
}

// performance benchmark
func BenchmarkDecode(b *testing.B) {
	var buf = bytes.Repeat(record(0xA5, 7), 1024)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Decode(buf); err != nil {
			b.Fatal(err)
		}
	}
}
