package alphablend

import (
	"image/color"

	"github.com/gogpu/alphablend/internal/blend"
)

// Pixel is one straight (non-premultiplied) alpha RGBA value.
//
// Pixel implements color.Color, so it can be passed anywhere the standard
// image packages expect a color.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent is the fully transparent pixel (0, 0, 0, 0).
var Transparent = Pixel{}

// RGBA8 creates a Pixel from its four channels.
func RGBA8(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// PixelFromColor converts any color.Color to a straight-alpha Pixel.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// NRGBA returns p as a color.NRGBA, which has the same layout.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// RGBA implements the color.Color interface.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA().RGBA()
}

// Premultiplied returns p with its color channels scaled by alpha, as a
// color.RGBA.
func (p Pixel) Premultiplied() color.RGBA {
	return color.RGBA{
		R: blend.Premultiply(p.R, p.A),
		G: blend.Premultiply(p.G, p.A),
		B: blend.Premultiply(p.B, p.A),
		A: p.A,
	}
}

// PixelFromPremultiplied converts a premultiplied color.RGBA back to straight
// alpha, rounding to nearest. Channels above alpha are clamped to 255.
func PixelFromPremultiplied(c color.RGBA) Pixel {
	return Pixel{
		R: blend.Unpremultiply(c.R, c.A),
		G: blend.Unpremultiply(c.G, c.A),
		B: blend.Unpremultiply(c.B, c.A),
		A: c.A,
	}
}

// BlendPixel composites fg over bg with the Porter-Duff "over" operator.
//
// Both inputs and the result are straight alpha. Internally the colors are
// premultiplied, blended and un-premultiplied with a single rounding step.
// An opaque fg returns fg exactly; a transparent fg returns bg exactly,
// except that transparent over transparent is always Transparent.
func BlendPixel(fg, bg Pixel) Pixel {
	r, g, b, a := blend.Over(fg.R, fg.G, fg.B, fg.A, bg.R, bg.G, bg.B, bg.A)
	return Pixel{R: r, G: g, B: b, A: a}
}
