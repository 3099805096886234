package alphablend

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gogpu/alphablend/internal/blit"
	"github.com/gogpu/alphablend/internal/clip"
)

// BlendSurface composites every pixel of src over the matching pixel of dst
// and returns the result as a new slice. Neither input is modified.
//
// src and dst must have the same dimensions. A 0x0 surface yields an empty,
// non-nil slice.
func BlendSurface(src, dst Buffer) ([]byte, error) {
	if err := validatePair(src, dst); err != nil {
		return nil, err
	}
	if src.Width != dst.Width || src.Height != dst.Height {
		err := fmt.Errorf("%w: src %dx%d, dst %dx%d", ErrSizeMismatch, src.Width, src.Height, dst.Width, dst.Height)
		Logger().Warn("alphablend: surface blend rejected", "err", err)
		return nil, err
	}

	n := dst.Len()
	out := make([]byte, n)
	copy(out, dst.Pix[:n])
	// Rows are packed, so the whole surface is one long row.
	blit.Row(out, src.Pix[:n])

	Logger().Debug("alphablend: surface blended", "width", dst.Width, "height", dst.Height)
	return out, nil
}

// BlendRect composites the r part of src over a copy of dst, with r's
// top-left corner placed at at, and returns the copy. dst is not modified.
//
// Clipping works exactly as in BlendRectInPlace; a fully clipped blit
// returns an unchanged copy.
func BlendRect(src Buffer, r Rect, dst Buffer, at image.Point) ([]byte, error) {
	if err := validatePair(src, dst); err != nil {
		return nil, err
	}

	out := bytes.Clone(dst.Pix[:dst.Len()])
	if out == nil {
		out = []byte{}
	}
	reg, ok := blendRect(src, r, Buffer{Pix: out, Width: dst.Width, Height: dst.Height}, at)

	Logger().Debug("alphablend: rect blended", "visible", ok, "src", reg.Src, "dst", reg.Dst)
	return out, nil
}

// BlendRectInPlace composites the r part of src over dst, with r's top-left
// corner placed at at, writing the result straight into dst.Pix.
//
// Both buffers are validated before any pixel is touched; on error dst is
// unchanged. The rectangle is clipped against the source buffer and then,
// once placed, against the destination buffer, trimming both sides equally.
// Negative origins and oversized rectangles are fine. If nothing is visible
// the call does nothing and returns nil.
//
// The call allocates nothing and reads src only. The caller must ensure no
// one else writes dst for the duration of the call and that src and dst do
// not overlap in memory.
func BlendRectInPlace(src Buffer, r Rect, dst Buffer, at image.Point) error {
	if err := validatePair(src, dst); err != nil {
		return err
	}
	blendRect(src, r, dst, at)
	return nil
}

// blendRect resolves the clip and blits. Both buffers must be valid.
func blendRect(src Buffer, r Rect, dst Buffer, at image.Point) (clip.Region, bool) {
	reg, ok := clip.Resolve(r.clip(), src.Width, src.Height, at.X, at.Y, dst.Width, dst.Height)
	if !ok {
		return clip.Region{}, false
	}
	blit.Blit(dst.surface(), src.surface(), reg)
	return reg, true
}

func validatePair(src, dst Buffer) error {
	if err := src.Validate(); err != nil {
		Logger().Warn("alphablend: source buffer rejected", "err", err)
		return fmt.Errorf("source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		Logger().Warn("alphablend: destination buffer rejected", "err", err)
		return fmt.Errorf("destination: %w", err)
	}
	return nil
}
