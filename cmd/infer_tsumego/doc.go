// Package main provides the program for running a trained puzzle outcome
// classifier over a file of puzzle examples, reporting overall and per-class
// accuracy against the labels stored in the records.
package main
