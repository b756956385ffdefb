// Package tsumego decodes the binary puzzle example format produced by the
// puzzle generator.
//
// The format has no header, footer or versioning: a file is a back-to-back
// sequence of fixed 49-byte records. Each record packs an 8x16 board as three
// 1-bit-per-pixel planes of 16 bytes each (black stones, white stones,
// in-bounds mask), two bytes per row, most significant bit first, followed by
// a single label byte in the range 0 to 128.
package tsumego
