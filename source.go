package heightfield

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// DecodedImage is the raw pixel output of an ImageDecoder: tightly packed
// 8-bit channels, row-major with a top-left origin, Channels bytes per pixel.
type DecodedImage struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// ImageDecoder decodes an image file into its dimensions, channel count and
// raw pixel bytes. Implementations report the source pixel layout through
// DecodedImage.Channels; the loader decides whether that layout is usable.
type ImageDecoder interface {
	DecodeFile(path string) (*DecodedImage, error)
}

// FileReader reads a file fully into a byte buffer.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// pngDecoder is the default ImageDecoder, backed by image/png.
type pngDecoder struct{}

func (pngDecoder) DecodeFile(path string) (*DecodedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open heightfield image: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode heightfield image: %w", err)
	}

	switch im := img.(type) {
	case *image.NRGBA:
		return packPix(im.Pix, im.Stride, im.Bounds(), rgbaChannels), nil
	case *image.RGBA:
		return packPix(im.Pix, im.Stride, im.Bounds(), rgbaChannels), nil
	case *image.Gray:
		// Reported as a single channel; the loader rejects it.
		return packPix(im.Pix, im.Stride, im.Bounds(), 1), nil
	default:
		// Paletted, 16-bit and other layouts are flattened to 8-bit RGBA.
		b := img.Bounds()
		flat := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(flat, flat.Bounds(), img, b.Min, draw.Src)
		return packPix(flat.Pix, flat.Stride, flat.Bounds(), rgbaChannels), nil
	}
}

// packPix copies the pixel rows of an image buffer into a tightly packed
// DecodedImage, dropping any per-row stride padding.
func packPix(pix []byte, stride int, bounds image.Rectangle, channels int) *DecodedImage {
	w, h := bounds.Dx(), bounds.Dy()
	rowBytes := w * channels

	out := make([]byte, rowBytes*h)
	for y := range h {
		src := y * stride
		copy(out[y*rowBytes:(y+1)*rowBytes], pix[src:src+rowBytes])
	}

	return &DecodedImage{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pix:      out,
	}
}

// osFileReader is the default FileReader, backed by os.ReadFile.
type osFileReader struct{}

func (osFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
