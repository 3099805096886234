package clip

// Region is a resolved blit: Src is read from the source buffer and Dst is
// written in the destination buffer. Both have the same size.
type Region struct {
	Src Rect
	Dst Rect
}

// Resolve clips the source rectangle src against a srcW x srcH source buffer,
// places it at (dx, dy) in a dstW x dstH destination buffer and clips it
// again there. Whatever is trimmed from one side is trimmed from the other,
// so the two rectangles of the returned Region stay pixel-aligned.
//
// ok is false when nothing is visible. That is a normal outcome, not an
// error. Any combination of negative, huge, or degenerate inputs is accepted;
// a Region returned with ok set is always inside both buffers.
func Resolve(src Rect, srcW, srcH, dx, dy, dstW, dstH int) (reg Region, ok bool) {
	sx, tx, w, okX := clipAxis(src.X, src.Width, srcW, dx, dstW)
	if !okX {
		return Region{}, false
	}
	sy, ty, h, okY := clipAxis(src.Y, src.Height, srcH, dy, dstH)
	if !okY {
		return Region{}, false
	}
	return Region{
		Src: Rect{X: sx, Y: sy, Width: w, Height: h},
		Dst: Rect{X: tx, Y: ty, Width: w, Height: h},
	}, true
}

// clipAxis clips one dimension of a blit. s and n are the requested source
// start and length, d is where s lands in the destination. It returns the
// clipped source start, destination start and length.
//
// Additions only ever combine operands of opposite sign, except when moving
// d, which saturates; a saturated d is past any destination and is rejected.
func clipAxis(s, n, srcLen, d, dstLen int) (int, int, int, bool) {
	if n <= 0 || srcLen <= 0 || dstLen <= 0 {
		return 0, 0, 0, false
	}

	// Source left edge.
	if s < 0 {
		end := s + n
		if end <= 0 {
			return 0, 0, 0, false
		}
		d = satAdd(d, -s)
		n = end
		s = 0
	}
	// Source right edge.
	if s >= srcLen {
		return 0, 0, 0, false
	}
	n = min(n, srcLen-s)

	// Destination left edge.
	if d < 0 {
		end := d + n
		if end <= 0 {
			return 0, 0, 0, false
		}
		s -= d
		n = end
		d = 0
	}
	// Destination right edge.
	if d >= dstLen {
		return 0, 0, 0, false
	}
	n = min(n, dstLen-d)

	return s, d, n, true
}
