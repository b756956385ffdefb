package main

import "github.com/tsumegolab/puzzlenet/datasets/tsumego"
import "github.com/tsumegolab/puzzlenet/net/convnet"

// buildNetwork assembles the reference architecture: five same-padded 3x3
// convolutions interleaved with max pooling, collapsing the 8x16x3 board to
// a single 129-way logit vector per record.
func buildNetwork() *convnet.Network {
	var net convnet.Network
	net.Add(convnet.MustNewConv2D(8, 16, tsumego.Channels, 3, 8, true))
	net.Add(convnet.MustNewMaxPool2D(8, 16, 8, 1, 2))
	net.Add(convnet.MustNewConv2D(8, 8, 8, 3, 16, true))
	net.Add(convnet.MustNewMaxPool2D(8, 8, 16, 2, 2))
	net.Add(convnet.MustNewConv2D(4, 4, 16, 3, 32, true))
	net.Add(convnet.MustNewMaxPool2D(4, 4, 32, 2, 2))
	net.Add(convnet.MustNewConv2D(2, 2, 32, 3, 64, true))
	net.Add(convnet.MustNewMaxPool2D(2, 2, 64, 2, 2))
	net.Add(convnet.MustNewConv2D(1, 1, 64, 3, tsumego.NumClasses, false))
	return &net
}
