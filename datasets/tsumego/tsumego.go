package tsumego

import "errors"
import "fmt"

import "github.com/tsumegolab/puzzlenet/parallel"
import "github.com/tsumegolab/puzzlenet/tensor"

// BytesPerRecord is the fixed size of one serialized puzzle example.
const BytesPerRecord = 49

// Board geometry of one example.
const (
	BoardHeight = 8
	BoardWidth  = 16
	Channels    = 3
)

// Bitplane channel order within a record.
const (
	ChannelBlack    = 0
	ChannelWhite    = 1
	ChannelInBounds = 2
)

// NumClasses is the width of the one-hot label space.
const NumClasses = 129

var ErrRecordSize = errors.New("buffer length is not a multiple of the fixed record size")
var ErrLabelRange = errors.New("label byte out of range")

// Decode parses a raw buffer of back-to-back records into an image tensor of
// shape (N,8,16,3) holding 0.0/1.0 floats and a one-hot label tensor of shape
// (N,1,1,129). This is the canonical decode mode.
func Decode(buf []byte) (images, labels *tensor.Tensor, err error) {
	n, err := validate(buf)
	if err != nil {
		return nil, nil, err
	}
	images = tensor.New(n, BoardHeight, BoardWidth, Channels)
	labels = tensor.New(n, 1, 1, NumClasses)
	parallel.ForEach(n, parallel.Workers(), func(i int) {
		record := buf[i*BytesPerRecord : (i+1)*BytesPerRecord]
		unpackPlanes(images.Record(i), record)
		labels.Record(i)[record[BytesPerRecord-1]] = 1.0
	})
	return images, labels, nil
}

// DecodeScalar parses like Decode but skips the one-hot scatter: the label
// tensor has shape (N,1) and holds each record's raw label byte as a float.
func DecodeScalar(buf []byte) (images, labels *tensor.Tensor, err error) {
	n, err := validate(buf)
	if err != nil {
		return nil, nil, err
	}
	images = tensor.New(n, BoardHeight, BoardWidth, Channels)
	labels = tensor.New(n, 1)
	parallel.ForEach(n, parallel.Workers(), func(i int) {
		record := buf[i*BytesPerRecord : (i+1)*BytesPerRecord]
		unpackPlanes(images.Record(i), record)
		labels.Record(i)[0] = float32(record[BytesPerRecord-1])
	})
	return images, labels, nil
}

// validate checks the two defined preconditions up front, so the unpacking
// pass cannot fail and may run in parallel across records.
func validate(buf []byte) (records int, err error) {
	if len(buf)%BytesPerRecord != 0 {
		return 0, fmt.Errorf("decoding %d bytes: %w (%d)", len(buf), ErrRecordSize, BytesPerRecord)
	}
	records = len(buf) / BytesPerRecord
	for i := 0; i < records; i++ {
		if label := buf[i*BytesPerRecord+BytesPerRecord-1]; int(label) >= NumClasses {
			return 0, fmt.Errorf("record %d: %w: %d (max %d)", i, ErrLabelRange, label, NumClasses-1)
		}
	}
	return records, nil
}

// unpackPlanes expands the 48 bitplane bytes of one record into the record's
// (8,16,3) float slot. Each row of a channel is two bytes, unpacked most
// significant bit first: bit 0x80 of the left byte is column 0, bit 0x01 of
// the right byte is column 15.
func unpackPlanes(dst []float32, record []byte) {
	var cursor = 0
	for channel := 0; channel < Channels; channel++ {
		for y := 0; y < BoardHeight; y++ {
			var current = record[cursor]
			var mask = byte(0x80)
			for x := 0; x < BoardWidth; x++ {
				if x == BoardWidth/2 {
					cursor++
					current = record[cursor]
					mask = 0x80
				}
				if current&mask != 0 {
					dst[(y*BoardWidth+x)*Channels+channel] = 1.0
				} else {
					dst[(y*BoardWidth+x)*Channels+channel] = 0.0
				}
				mask >>= 1
			}
			cursor++
		}
	}
}
