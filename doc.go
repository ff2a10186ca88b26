// Package heightfield loads heightmap images and raw binary elevation files
// into dense, row-major grids of floating-point elevations, and provides
// continuous-coordinate bilinear sampling over them.
//
// It is aimed at terrain rendering and collision/physics systems that need
// both bulk elevation data and smooth height queries at arbitrary
// (non-integer) grid positions.
//
// # Features
//
//   - PNG heightmaps using the 24-bit packed height encoding (256*R + G +
//     B/256, 24 bits of precision), compatible with plain grayscale images
//     within ~0.4%
//   - Headerless RAW files with 8- or 16-bit little-endian samples, bit depth
//     inferred from the file size
//   - Bilinear height queries with boundary clamping, exact at integer grid
//     coordinates
//   - float64 (Field) and float32-native (Field32) variants
//   - Concurrent whole-field resampling to a new resolution
//   - Packed and grayscale image export for round-tripping and previews
//   - Pluggable image decoding, file reading and logging for testing
//
// # Quick Start
//
// Load a packed-height PNG and query it:
//
//	hf, err := heightfield.LoadImage("terrain.png", 0, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := hf.Height(12.5, 73.25)
//
// Load a headerless 16-bit RAW file with known dimensions:
//
//	hf, err := heightfield.LoadRaw("terrain.raw", 513, 513, -20, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate conventions
//
// Grids are row-major with a top-left origin: element (x, y) lives at index
// x + y*ColumnCount(). Source files use the usual heightmap convention of a
// bottom-left origin, so rows are flipped vertically while loading.
//
// # Concurrency
//
// Loading is synchronous and single-threaded. A fully constructed field is
// never mutated by Height, so concurrent read-only sampling from multiple
// goroutines is safe. Rescale mutates the buffer and must not race with
// readers.
package heightfield
