package alphablend

import (
	"image"

	"github.com/gogpu/alphablend/internal/clip"
)

// Rect is a rectangle in pixel coordinates of a Buffer.
//
// The origin may be negative or past the buffer; a Width or Height of zero
// or less makes the rectangle empty. Neither case is an error: blits clip
// whatever part is not visible.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Region is the resolved part of a blit: Src is read from the source buffer
// and Dst is written in the destination buffer. Both have the same size and
// lie fully inside their buffers.
type Region struct {
	Src Rect
	Dst Rect
}

// ResolveClip computes the part of r (in a srcW x srcH source) that lands
// inside a dstW x dstH destination when r's top-left corner is placed at at.
//
// ok is false when nothing is visible.
func ResolveClip(r Rect, srcW, srcH int, at image.Point, dstW, dstH int) (reg Region, ok bool) {
	cr, ok := clip.Resolve(r.clip(), srcW, srcH, at.X, at.Y, dstW, dstH)
	if !ok {
		return Region{}, false
	}
	return Region{Src: fromClip(cr.Src), Dst: fromClip(cr.Dst)}, true
}

func (r Rect) clip() clip.Rect {
	return clip.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func fromClip(r clip.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
