package convnet

import "compress/lzw"
import "encoding/json"
import "fmt"
import "io"
import "os"

type layerWeights struct {
	Kernel []float32 `json:"kernel"`
	Bias   []float32 `json:"bias"`
}

// WriteCompressedWeightsToFile writes model weights to a lzw file
func (n *Network) WriteCompressedWeightsToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = n.WriteCompressedWeights(file)
	file.Close()
	return err
}

// WriteCompressedWeights writes model weights to a writer
func (n *Network) WriteCompressedWeights(w io.Writer) error {
	lw := lzw.NewWriter(w, lzw.LSB, 8)
	var all []layerWeights
	for _, l := range n.layers {
		c, ok := l.(*Conv2D)
		if !ok {
			continue
		}
		all = append(all, layerWeights{Kernel: c.Kernel, Bias: c.Bias})
	}
	if err := json.NewEncoder(lw).Encode(all); err != nil {
		return err
	}
	return lw.Close()
}

// ReadCompressedWeightsFromFile reads model weights from a lzw file
func (n *Network) ReadCompressedWeightsFromFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	err = n.ReadCompressedWeights(file)
	file.Close()
	return err
}

// ReadCompressedWeights reads model weights from a reader. The network must
// already be built with the same architecture the weights were saved from.
func (n *Network) ReadCompressedWeights(r io.Reader) error {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()
	var all []layerWeights
	if err := json.NewDecoder(lr).Decode(&all); err != nil {
		return err
	}
	var at = 0
	for _, l := range n.layers {
		c, ok := l.(*Conv2D)
		if !ok {
			continue
		}
		if at >= len(all) {
			return fmt.Errorf("weights file has %d conv layers, network has more", len(all))
		}
		if len(all[at].Kernel) != len(c.Kernel) || len(all[at].Bias) != len(c.Bias) {
			return fmt.Errorf("conv layer %d: weights %d/%d do not fit network %d/%d",
				at, len(all[at].Kernel), len(all[at].Bias), len(c.Kernel), len(c.Bias))
		}
		copy(c.Kernel, all[at].Kernel)
		copy(c.Bias, all[at].Bias)
		at++
	}
	if at != len(all) {
		return fmt.Errorf("weights file has %d conv layers, network has %d", len(all), at)
	}
	return nil
}
