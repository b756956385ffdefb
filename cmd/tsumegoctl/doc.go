// Package main provides tsumegoctl, a control CLI for inspecting puzzle
// example files: record counts, label histograms and ASCII board dumps.
package main
