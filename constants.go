package heightfield

// Path and extension constants
const (
	// extensionLength is the fixed length of a recognized source extension,
	// including the dot (".png", ".raw").
	extensionLength = 4

	pngExtension = ".png"
	rawExtension = ".raw"
)

// Pixel layout constants
const (
	rgbChannels  = 3
	rgbaChannels = 4
)

// RAW format constants
const (
	// minRawDimension is the smallest usable RAW grid edge. Anything below
	// leaves no cell to interpolate over.
	minRawDimension = 2

	rawBits8  = 8  // 8-bit samples, one byte per element
	rawBits16 = 16 // 16-bit samples, two bytes per element little-endian

	bytesPerSample16 = 2
	bitsPerByte      = 8
)

// Grayscale export constants
const (
	maxGray = 255
)
