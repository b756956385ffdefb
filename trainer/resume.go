package trainer

import "github.com/tsumegolab/puzzlenet/net/convnet"

// Resume preloads checkpointed weights into the network before training.
func Resume(net *convnet.Network, resume *bool, dstmodel *string) {
	if resume != nil && *resume && dstmodel != nil && *dstmodel != "" {
		err := net.ReadCompressedWeightsFromFile(*dstmodel)
		if err != nil {
			println(err.Error())
		}
	}
}
