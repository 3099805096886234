package alphablend

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/alphablend/internal/blit"
)

// Buffer contract errors. They are returned, possibly wrapped, before any
// pixel is read or written.
var (
	// ErrInvalidDimensions is returned when width or height is negative, or
	// when width*height*4 does not fit in an int.
	ErrInvalidDimensions = errors.New("alphablend: invalid dimensions")

	// ErrDataTooSmall is returned when Pix is shorter than width*height*4.
	ErrDataTooSmall = errors.New("alphablend: data buffer too small")

	// ErrSizeMismatch is returned when two buffers that must match do not.
	ErrSizeMismatch = errors.New("alphablend: buffer size mismatch")

	// ErrStride is returned when an image's rows are not packed at width*4.
	ErrStride = errors.New("alphablend: stride is not width*4")
)

// BytesPerPixel is the size of one RGBA32 pixel.
const BytesPerPixel = 4

// Buffer is a borrowed view of a caller-owned RGBA32 pixel buffer.
//
// Pixels are straight alpha, row-major, 4 bytes each, with rows packed at
// Width*4 bytes. Pix may be longer than Width*Height*4; the tail is never
// touched. Buffer never copies or retains Pix beyond a single call.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewBuffer allocates a transparent width x height buffer.
// Negative dimensions are treated as zero.
func NewBuffer(width, height int) Buffer {
	width, height = max(width, 0), max(height, 0)
	return Buffer{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// FromRaw wraps existing pixel data without copying.
// It returns an error if pix cannot hold width x height pixels.
func FromRaw(pix []byte, width, height int) (Buffer, error) {
	b := Buffer{Pix: pix, Width: width, Height: height}
	if err := b.Validate(); err != nil {
		return Buffer{}, err
	}
	return b, nil
}

// BufferFromNRGBA wraps the pixels of img without copying.
// img must have its rows packed (Stride == 4*Dx), which holds for images
// created with image.NewNRGBA but not for most sub-images; use Over to
// composite those.
func BufferFromNRGBA(img *image.NRGBA) (Buffer, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if h > 1 && img.Stride != w*BytesPerPixel {
		return Buffer{}, fmt.Errorf("%w: stride %d for width %d", ErrStride, img.Stride, w)
	}
	return FromRaw(img.Pix, w, h)
}

// Validate checks that Pix covers Width*Height*4 bytes.
func (b Buffer) Validate() error {
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Width, b.Height)
	}
	n, ok := byteLen(b.Width, b.Height)
	if !ok {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, b.Width, b.Height)
	}
	if len(b.Pix) < n {
		return fmt.Errorf("%w: %dx%d needs %d bytes, have %d", ErrDataTooSmall, b.Width, b.Height, n, len(b.Pix))
	}
	return nil
}

// Len returns the number of bytes covered by the buffer's pixels.
// It is only meaningful for a valid buffer.
func (b Buffer) Len() int {
	return b.Width * b.Height * BytesPerPixel
}

// At returns the pixel at (x, y), or Transparent if the point is outside
// the buffer.
func (b Buffer) At(x, y int) Pixel {
	i, ok := b.offset(x, y)
	if !ok {
		return Transparent
	}
	return Pixel{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Set stores p at (x, y). Points outside the buffer are ignored.
func (b Buffer) Set(x, y int, p Pixel) {
	i, ok := b.offset(x, y)
	if !ok {
		return
	}
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = p.R, p.G, p.B, p.A
}

// Fill sets every pixel of the buffer to p.
func (b Buffer) Fill(p Pixel) {
	pix := b.Pix[:min(len(b.Pix), b.Len())]
	for i := 0; i+BytesPerPixel <= len(pix); i += BytesPerPixel {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = p.R, p.G, p.B, p.A
	}
}

// NRGBA returns an *image.NRGBA that shares the buffer's pixels.
func (b Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix[:b.Len()],
		Stride: b.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

func (b Buffer) offset(x, y int) (int, bool) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0, false
	}
	i := (y*b.Width + x) * BytesPerPixel
	if i+BytesPerPixel > len(b.Pix) {
		return 0, false
	}
	return i, true
}

func (b Buffer) surface() blit.Surface {
	return blit.Surface{Pix: b.Pix, Stride: b.Width * BytesPerPixel, Width: b.Width, Height: b.Height}
}

// byteLen returns width*height*4, or false if it overflows an int.
func byteLen(width, height int) (int, bool) {
	if width == 0 || height == 0 {
		return 0, true
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return 0, false
	}
	return width * height * BytesPerPixel, true
}
