// Package heightcodec implements the per-element encodings used by heightfield
// sources: the 24-bit packed RGB height encoding and plain 8/16-bit raw
// elevation samples.
//
// All functions are pure and stateless; they map raw bytes to normalized
// heights in [0, 1] (or back). Rescaling into an application height range is a
// separate, final step.
package heightcodec

import "math"

const (
	// packedRedWeight is the positional weight of the red channel in the
	// 24-bit packed encoding (base-256 digit at position 1 of 256^1).
	packedRedWeight = 256.0

	// packedBlueWeight is the positional weight of the blue channel
	// (base-256 digit at position -1, i.e. 1/256).
	packedBlueWeight = 1.0 / 256.0

	// packedScale normalizes the packed sum into [0, 1).
	packedScale = 65536.0

	// max16 is the largest 16-bit raw sample value.
	max16 = 65535.0

	// max8 is the largest 8-bit raw sample value.
	max8 = 255.0
)

// NormalizedPacked decodes the 24-bit packed height encoding from the three
// color channels of a pixel and returns a normalized height in [0, 1).
//
// The formula is exact for images produced by the companion packing tool
// (cmd/hfield-pack). It is also compatible with plain grayscale images: with
// r=g=b=x the packed expression agrees with the grayscale value x/255 to
// within 0.4% relative error.
func NormalizedPacked(r, g, b uint8) float64 {
	return (packedRedWeight*float64(r) + float64(g) + packedBlueWeight*float64(b)) / packedScale
}

// Normalized16 decodes one little-endian 16-bit raw elevation sample and
// returns a normalized height in [0, 1].
func Normalized16(lo, hi byte) float64 {
	return float64(uint16(lo)|uint16(hi)<<8) / max16
}

// Normalized8 decodes one 8-bit raw elevation sample and returns a normalized
// height in [0, 1].
func Normalized8(b byte) float64 {
	return float64(b) / max8
}

// Rescale maps a normalized height in [0, 1] linearly into
// [minHeight, maxHeight].
func Rescale(normalized, minHeight, maxHeight float64) float64 {
	return minHeight + normalized*(maxHeight-minHeight)
}

// Normalize maps an absolute height in [minHeight, maxHeight] back to a
// normalized value in [0, 1]. A degenerate range (maxHeight == minHeight)
// maps everything to 0.
func Normalize(height, minHeight, maxHeight float64) float64 {
	scale := maxHeight - minHeight
	if scale == 0 {
		return 0
	}
	return (height - minHeight) / scale
}

// Pack encodes a normalized height in [0, 1] into the three color channels of
// the 24-bit packed encoding. It is the inverse of NormalizedPacked on the
// 24-bit lattice: NormalizedPacked(Pack(n)) reproduces n up to one part in
// 2^24. Inputs outside [0, 1] are clamped.
func Pack(normalized float64) (r, g, b uint8) {
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}

	// Quantize to the 24-bit lattice, then peel off base-256 digits.
	x := uint32(math.Round(normalized * packedScale * 256))
	if x > 0xFFFFFF {
		x = 0xFFFFFF
	}

	b = uint8(x & 0xFF)
	g = uint8((x >> 8) & 0xFF)
	r = uint8((x >> 16) & 0xFF)
	return r, g, b
}
