package main

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/alphablend"
)

const (
	gap      = 8
	labelH   = 20
	fontSize = 12
	checker  = 8
)

// compose lays the two canvases out side by side over a checkerboard and
// labels them.
func compose(naive, correct alphablend.Buffer) (*image.NRGBA, error) {
	w, h := naive.Width, naive.Height
	out := alphablend.NewBuffer(2*w+3*gap, h+labelH+2*gap)
	out.Fill(alphablend.RGBA8(255, 255, 255, 255))
	img := out.NRGBA()

	face, err := labelFace()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()

	for i, p := range []struct {
		name string
		buf  alphablend.Buffer
	}{
		{"lerp", naive},
		{"over", correct},
	} {
		x := gap + i*(w+gap)
		panel := image.Rect(x, gap, x+w, gap+h)

		drawChecker(img, panel)
		alphablend.Over.Draw(img, panel, p.buf.NRGBA(), image.Point{})

		label := renderLabel(face, p.name, alphablend.RGBA8(0, 0, 0, 200))
		at := image.Pt(x+(w-label.Width)/2, gap+h+(labelH-label.Height)/2)
		if err := alphablend.BlendRectInPlace(label, alphablend.Rect{Width: label.Width, Height: label.Height}, out, at); err != nil {
			return nil, fmt.Errorf("label %q: %w", p.name, err)
		}
	}
	return img, nil
}

func drawChecker(img *image.NRGBA, r image.Rectangle) {
	dark := image.NewUniform(color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	for y := r.Min.Y; y < r.Max.Y; y += checker {
		for x := r.Min.X; x < r.Max.X; x += checker {
			if ((x-r.Min.X)/checker+(y-r.Min.Y)/checker)%2 == 0 {
				continue
			}
			cell := image.Rect(x, y, x+checker, y+checker).Intersect(r)
			draw.Draw(img, cell, dark, image.Point{}, draw.Src)
		}
	}
}

func labelFace() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// renderLabel rasterizes s into a tight straight-alpha sprite of color c.
func renderLabel(face font.Face, s string, c alphablend.Pixel) alphablend.Buffer {
	bounds, _ := font.BoundString(face, s)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()

	mask := image.NewAlpha(image.Rect(0, 0, maxX-minX, maxY-minY))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(-minX, -minY),
	}
	d.DrawString(s)

	b := alphablend.NewBuffer(mask.Rect.Dx(), mask.Rect.Dy())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			cov := uint32(mask.AlphaAt(x, y).A)
			b.Set(x, y, alphablend.RGBA8(c.R, c.G, c.B, uint8((cov*uint32(c.A)+127)/255)))
		}
	}
	return b
}
