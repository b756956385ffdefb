package tsumego

import "fmt"
import "os"

import "github.com/edsrzf/mmap-go"
import "github.com/tsumegolab/puzzlenet/tensor"

// Load memory-maps the example file at path and decodes it. With scalar set
// the labels come back in the raw scalar form, otherwise one-hot. The caller
// picks the path; this package never guesses file locations.
func Load(path string, scalar bool) (images, labels *tensor.Tensor, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if info.Size() == 0 {
		// mmap refuses empty files; an empty file is zero records
		return decode(nil, scalar)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	defer m.Unmap()
	return decode(m, scalar)
}

func decode(buf []byte, scalar bool) (*tensor.Tensor, *tensor.Tensor, error) {
	if scalar {
		return DecodeScalar(buf)
	}
	return Decode(buf)
}
