package heightfield

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tphakala/go-heightfield/internal/grid"
	"github.com/tphakala/go-heightfield/internal/gridops"
	"github.com/tphakala/go-heightfield/internal/heightcodec"
)

// Common errors returned by the loader.
var (
	// ErrInvalidPath indicates the path is too short to carry a recognized
	// 4-character source extension.
	ErrInvalidPath = errors.New("path too short for a heightfield extension")

	// ErrUnsupportedFormat indicates an extension other than .png or .raw.
	ErrUnsupportedFormat = errors.New("unsupported heightfield image format")

	// ErrUnsupportedPixelLayout indicates a decoded image whose channel count
	// is neither 3 (RGB) nor 4 (RGBA).
	ErrUnsupportedPixelLayout = errors.New("unsupported pixel layout for heightfield image")

	// ErrInvalidRawParameters indicates width/height below 2 or a negative
	// maxHeight for a RAW source.
	ErrInvalidRawParameters = errors.New("invalid width, height or maxHeight for RAW heightfield")

	// ErrReadFailure indicates the underlying RAW file could not be read.
	ErrReadFailure = errors.New("failed to read RAW heightfield")

	// ErrAmbiguousBitDepth indicates a RAW file whose inferred bit depth is
	// neither 8 nor 16.
	ErrAmbiguousBitDepth = errors.New("ambiguous bit depth: RAW heightfield must be 8-bit or 16-bit")

	// ErrInvalidHeightRange indicates maxHeight below minHeight.
	ErrInvalidHeightRange = errors.New("maxHeight must not be less than minHeight")
)

// sourceFormat identifies a recognized heightfield source, decided once while
// parsing the path and then switched exhaustively.
type sourceFormat int

const (
	formatUnknown sourceFormat = iota
	formatPNG                  // packed-height or grayscale image
	formatRaw                  // headerless 8/16-bit binary
)

// detectFormat inspects the last extensionLength characters of path,
// case-insensitively. The caller guarantees len(path) > extensionLength.
func detectFormat(path string) sourceFormat {
	ext := path[len(path)-extensionLength:]
	switch {
	case strings.EqualFold(ext, pngExtension):
		return formatPNG
	case strings.EqualFold(ext, rawExtension):
		return formatRaw
	default:
		return formatUnknown
	}
}

// Loader converts heightmap sources into fields. The zero value is usable:
// nil collaborators fall back to a PNG decoder backed by image/png, plain
// file reads and slog.Default().
//
// Loading is synchronous and single-threaded; file reads and image decoding
// block the calling goroutine.
type Loader struct {
	// Decoder decodes image sources. Nil means the built-in PNG decoder.
	Decoder ImageDecoder

	// Reader reads RAW sources. Nil means os.ReadFile.
	Reader FileReader

	// Logger receives a human-readable diagnostic on every failure path.
	// Nil means slog.Default().
	Logger *slog.Logger
}

func (l *Loader) decoder() ImageDecoder {
	if l.Decoder != nil {
		return l.Decoder
	}
	return pngDecoder{}
}

func (l *Loader) reader() FileReader {
	if l.Reader != nil {
		return l.Reader
	}
	return osFileReader{}
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// Load reads the heightfield at path into a float64-backed Field.
//
// The source format is chosen by the path's 4-character extension,
// case-insensitively: .png selects the image path (width and height are
// ignored; dimensions come from the decoded image and heights from the 24-bit
// packed encoding), .raw selects the headerless binary path (width and height
// describe the file's element grid and must be at least 2, and maxHeight must
// not be negative).
//
// Decoded heights are scaled linearly into [minHeight, maxHeight];
// maxHeight must not be less than minHeight. On failure Load logs a
// diagnostic and returns a nil Field with a sentinel-wrapped error.
func (l *Loader) Load(path string, width, height int, minHeight, maxHeight float64) (*Field, error) {
	g, err := loadGrid[float64](l, path, width, height, minHeight, maxHeight)
	if err != nil {
		return nil, err
	}
	return &Field{field[float64]{g}}, nil
}

// Load32 is like Load but produces a float32-backed Field32. Use it when the
// elevations feed GPU vertex buffers or when memory bandwidth matters more
// than float64 precision.
func (l *Loader) Load32(path string, width, height int, minHeight, maxHeight float64) (*Field32, error) {
	g, err := loadGrid[float32](l, path, width, height, minHeight, maxHeight)
	if err != nil {
		return nil, err
	}
	return &Field32{field[float32]{g}}, nil
}

// loadGrid validates the request, dispatches on the detected source format
// and returns a fully populated grid.
func loadGrid[F gridops.Float](l *Loader, path string, width, height int, minHeight, maxHeight float64) (*grid.Grid[F], error) {
	log := l.logger()

	if maxHeight < minHeight {
		log.Warn("invalid height range for heightfield", "path", path,
			"minHeight", minHeight, "maxHeight", maxHeight)
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidHeightRange, minHeight, maxHeight)
	}

	if len(path) <= extensionLength {
		log.Warn("unrecognized file extension for heightfield image", "path", path)
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	switch detectFormat(path) {
	case formatPNG:
		return loadImageGrid[F](l, path, minHeight, maxHeight)
	case formatRaw:
		return loadRawGrid[F](l, path, width, height, minHeight, maxHeight)
	case formatUnknown:
		fallthrough
	default:
		log.Warn("unsupported heightfield image format", "path", path)
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// loadImageGrid builds a grid from a decoded packed-height image. The decoded
// pixel rows have a bottom-left origin in heightfield convention, so rows are
// written out in reverse to give the grid its top-left origin.
func loadImageGrid[F gridops.Float](l *Loader, path string, minHeight, maxHeight float64) (*grid.Grid[F], error) {
	log := l.logger()

	img, err := l.decoder().DecodeFile(path)
	if err != nil {
		log.Warn("failed to decode heightfield image", "path", path, "error", err)
		return nil, err
	}

	if img.Channels != rgbChannels && img.Channels != rgbaChannels {
		log.Warn("unsupported pixel format for heightfield image",
			"path", path, "channels", img.Channels)
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedPixelLayout, img.Channels)
	}

	g, err := grid.New[F](img.Width, img.Height)
	if err != nil {
		return nil, err
	}

	heights := g.Data()
	i := 0
	for y := img.Height - 1; y >= 0; y-- {
		for x := range img.Width {
			idx := (y*img.Width + x) * img.Channels
			n := heightcodec.NormalizedPacked(img.Pix[idx], img.Pix[idx+1], img.Pix[idx+2])
			heights[i] = F(heightcodec.Rescale(n, minHeight, maxHeight))
			i++
		}
	}

	return g, nil
}

// loadRawGrid builds a grid from a headerless 8- or 16-bit binary file. The
// bit depth is inferred from the file size: bits = fileSize/(width*height)*8
// with truncating integer division. The truncation is a documented contract
// of the RAW loader; a file whose size is not an exact multiple of the
// element count is accepted whenever the quotient still lands on 8 or 16.
func loadRawGrid[F gridops.Float](l *Loader, path string, width, height int, minHeight, maxHeight float64) (*grid.Grid[F], error) {
	log := l.logger()

	if width < minRawDimension || height < minRawDimension || maxHeight < 0 {
		log.Warn("invalid width, height or maxHeight for RAW heightfield image",
			"path", path, "width", width, "height", height, "maxHeight", maxHeight)
		return nil, fmt.Errorf("%w: width=%d height=%d maxHeight=%v",
			ErrInvalidRawParameters, width, height, maxHeight)
	}

	bytes, err := l.reader().ReadFile(path)
	if err != nil {
		log.Warn("failed to read bytes from RAW heightfield image", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrReadFailure, err)
	}

	bits := len(bytes) / (width * height) * bitsPerByte
	if bits != rawBits8 && bits != rawBits16 {
		log.Warn("invalid RAW heightfield image: must be 8-bit or 16-bit",
			"path", path, "size", len(bytes), "inferredBits", bits)
		return nil, fmt.Errorf("%w: %d bytes for %dx%d elements",
			ErrAmbiguousBitDepth, len(bytes), width, height)
	}

	g, err := grid.New[F](width, height)
	if err != nil {
		return nil, err
	}

	// RAW files have a bottom-left origin, the grid a top-left one, so the Y
	// axis flips as heights are written out.
	heights := g.Data()
	i := 0
	if bits == rawBits16 {
		for y := height - 1; y >= 0; y-- {
			for x := range width {
				idx := (y*width + x) * bytesPerSample16
				n := heightcodec.Normalized16(bytes[idx], bytes[idx+1])
				heights[i] = F(heightcodec.Rescale(n, minHeight, maxHeight))
				i++
			}
		}
	} else {
		for y := height - 1; y >= 0; y-- {
			for x := range width {
				n := heightcodec.Normalized8(bytes[y*width+x])
				heights[i] = F(heightcodec.Rescale(n, minHeight, maxHeight))
				i++
			}
		}
	}

	return g, nil
}

// defaultLoader backs the package-level convenience functions.
var defaultLoader Loader

// Load reads the heightfield at path using the default collaborators.
// See Loader.Load for the parameter contract.
func Load(path string, width, height int, minHeight, maxHeight float64) (*Field, error) {
	return defaultLoader.Load(path, width, height, minHeight, maxHeight)
}

// Load32 reads the heightfield at path into a float32-backed Field32 using
// the default collaborators.
func Load32(path string, width, height int, minHeight, maxHeight float64) (*Field32, error) {
	return defaultLoader.Load32(path, width, height, minHeight, maxHeight)
}
