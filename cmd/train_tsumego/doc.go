// Package main provides the program for training the puzzle outcome
// classifier on a file of generated puzzle examples. It decodes the binary
// records, builds the reference convolutional network and runs the gradient
// training loop, checkpointing the best model seen on the holdout records.
package main
