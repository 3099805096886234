// Package blit composites a rectangle of one RGBA surface over another, in
// place, one row at a time.
//
// Nothing here validates geometry: callers pass a clip.Region that
// clip.Resolve produced for the same two surfaces.
package blit

import (
	"github.com/gogpu/alphablend/internal/blend"
	"github.com/gogpu/alphablend/internal/clip"
)

// Surface is a borrowed view of straight-alpha RGBA pixels.
// Pixel (x, y) starts at Pix[y*Stride+x*4].
type Surface struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
}

// Blit blends the Src rectangle of src over the Dst rectangle of dst,
// row-major from the top, writing into dst.Pix.
//
// src and dst must not share overlapping memory.
func Blit(dst, src Surface, reg clip.Region) {
	n := reg.Dst.Width * 4
	for y := 0; y < reg.Dst.Height; y++ {
		so := (reg.Src.Y+y)*src.Stride + reg.Src.X*4
		do := (reg.Dst.Y+y)*dst.Stride + reg.Dst.X*4
		Row(dst.Pix[do:do+n:do+n], src.Pix[so:so+n:so+n])
	}
}

// Row blends len(dst)/4 pixels of src over dst.
func Row(dst, src []byte) {
	src = src[:len(dst)]
	for i := 0; i+4 <= len(dst); i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		switch sa := s[3]; {
		case sa == 255:
			d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 255
		case sa == 0 && d[3] != 0:
			// destination unchanged
		default:
			d[0], d[1], d[2], d[3] = blend.Over(s[0], s[1], s[2], sa, d[0], d[1], d[2], d[3])
		}
	}
}

// BlitFunc is Blit with a caller-supplied per-pixel function and no fast
// paths.
func BlitFunc(dst, src Surface, reg clip.Region, fn blend.Func) {
	n := reg.Dst.Width * 4
	for y := 0; y < reg.Dst.Height; y++ {
		so := (reg.Src.Y+y)*src.Stride + reg.Src.X*4
		do := (reg.Dst.Y+y)*dst.Stride + reg.Dst.X*4
		d := dst.Pix[do : do+n : do+n]
		s := src.Pix[so : so+n : so+n]
		for i := 0; i+4 <= n; i += 4 {
			d[i], d[i+1], d[i+2], d[i+3] = fn(s[i], s[i+1], s[i+2], s[i+3], d[i], d[i+1], d[i+2], d[i+3])
		}
	}
}
