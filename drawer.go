package alphablend

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/alphablend/internal/blend"
	"github.com/gogpu/alphablend/internal/blit"
	"github.com/gogpu/alphablend/internal/clip"
)

// Over is a draw.Drawer that composites with BlendPixel instead of the
// premultiplied draw.Over of the standard library.
//
// It follows the draw.Drawer contract: r is in dst's coordinate space and sp
// is the point of src aligned with r.Min. When both images are *image.NRGBA
// (including sub-images) the pixels are blitted in place without allocating;
// any other combination goes through color.Color one pixel at a time.
//
// As with BlendRectInPlace, src and dst must not overlap in memory.
var Over draw.Drawer = overDrawer{}

type overDrawer struct{}

// Draw implements draw.Drawer.
func (overDrawer) Draw(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point) {
	db, sb := dst.Bounds(), src.Bounds()
	sr := clip.Rect{X: sp.X - sb.Min.X, Y: sp.Y - sb.Min.Y, Width: r.Dx(), Height: r.Dy()}
	reg, ok := clip.Resolve(sr, sb.Dx(), sb.Dy(), r.Min.X-db.Min.X, r.Min.Y-db.Min.Y, db.Dx(), db.Dy())
	if !ok {
		return
	}

	if d, ok := dst.(*image.NRGBA); ok {
		if s, ok := src.(*image.NRGBA); ok {
			blit.Blit(nrgbaSurface(d), nrgbaSurface(s), reg)
			return
		}
	}
	drawSlow(dst, db.Min, src, sb.Min, reg)
}

// nrgbaSurface views img with (0, 0) at img.Rect.Min; Pix[0] is always the
// pixel at Rect.Min, sub-images included.
func nrgbaSurface(img *image.NRGBA) blit.Surface {
	return blit.Surface{Pix: img.Pix, Stride: img.Stride, Width: img.Rect.Dx(), Height: img.Rect.Dy()}
}

func drawSlow(dst draw.Image, dmin image.Point, src image.Image, smin image.Point, reg clip.Region) {
	for y := 0; y < reg.Dst.Height; y++ {
		for x := 0; x < reg.Dst.Width; x++ {
			sx, sy := smin.X+reg.Src.X+x, smin.Y+reg.Src.Y+y
			dx, dy := dmin.X+reg.Dst.X+x, dmin.Y+reg.Dst.Y+y
			s := color.NRGBAModel.Convert(src.At(sx, sy)).(color.NRGBA)
			d := color.NRGBAModel.Convert(dst.At(dx, dy)).(color.NRGBA)
			r, g, b, a := blend.Over(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
			dst.Set(dx, dy, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
}
