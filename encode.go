package heightfield

import (
	"image"
	"math"

	"github.com/tphakala/go-heightfield/internal/heightcodec"
)

// PackedImage renders the field into the 24-bit packed height encoding, the
// format the image loader consumes. Elevations are normalized against
// [minHeight, maxHeight] (values outside are clamped) and written with the
// loader's vertical convention, so grid row 0 becomes the bottom pixel row.
// A file written from this image loads back into an equal field, up to the
// 24-bit quantization of the encoding.
func (f *field[F]) PackedImage(minHeight, maxHeight float64) *image.NRGBA {
	cols, rows := f.g.Cols(), f.g.Rows()
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))

	for y := range rows {
		flipped := rows - 1 - y
		for x := range cols {
			n := heightcodec.Normalize(float64(f.g.At(x, y)), minHeight, maxHeight)
			r, g, b := heightcodec.Pack(n)

			idx := img.PixOffset(x, flipped)
			img.Pix[idx+0] = r
			img.Pix[idx+1] = g
			img.Pix[idx+2] = b
			img.Pix[idx+3] = 0xFF
		}
	}

	return img
}

// GrayImage renders the field as an 8-bit grayscale preview, normalized
// against [minHeight, maxHeight] with the same vertical convention as
// PackedImage. Grayscale throws away all but 8 bits of height precision;
// use PackedImage for lossless round-trips.
func (f *field[F]) GrayImage(minHeight, maxHeight float64) *image.Gray {
	cols, rows := f.g.Cols(), f.g.Rows()
	img := image.NewGray(image.Rect(0, 0, cols, rows))

	for y := range rows {
		flipped := rows - 1 - y
		for x := range cols {
			n := heightcodec.Normalize(float64(f.g.At(x, y)), minHeight, maxHeight)
			n = math.Min(math.Max(n, 0), 1)
			img.Pix[img.PixOffset(x, flipped)] = uint8(math.Round(n * maxGray))
		}
	}

	return img
}
