package blend

// Func is the signature shared by the per-pixel compositing functions.
// All values are straight alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source (foreground) color
//   - dr, dg, db, da: destination (background) color
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Over composites a straight-alpha source over a straight-alpha destination.
//
// Both colors are premultiplied on entry into 32-bit intermediates, blended
// with the Porter-Duff formulas
//
//	a_out = a_s + a_d*(1-a_s)
//	c_out = c_s*a_s + c_d*a_d*(1-a_s)
//
// and un-premultiplied on exit. Intermediates are kept in units of 1/65025,
// so rounding happens exactly once per output channel.
//
// An opaque source returns the source unchanged. A transparent source returns
// the destination unchanged, except that transparent over transparent is
// always (0, 0, 0, 0).
func Over(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	switch sa {
	case 255:
		return sr, sg, sb, 255
	case 0:
		if da == 0 {
			return 0, 0, 0, 0
		}
		return dr, dg, db, da
	}

	fw := uint32(sa) * 255
	bw := uint32(da) * (255 - uint32(sa))
	outA := fw + bw // > 0 because sa > 0

	r = divRound(uint32(sr)*fw+uint32(dr)*bw, outA)
	g = divRound(uint32(sg)*fw+uint32(dg)*bw, outA)
	b = divRound(uint32(sb)*fw+uint32(db)*bw, outA)
	return r, g, b, byte(div255(outA))
}

// NaiveOver is the straight-alpha lerp many blitters use:
//
//	c_out = c_s*a_s + c_d*(1-a_s)
//	a_out = a_s + a_d*(1-a_s)
//
// It ignores the destination alpha when weighting destination color, so
// repeated blits onto a translucent target drag colors toward whatever sits
// in the transparent pixels (usually black). Kept for comparison only.
func NaiveOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	inv := 255 - uint32(sa)
	r = byte(div255(uint32(sr)*uint32(sa) + uint32(dr)*inv))
	g = byte(div255(uint32(sg)*uint32(sa) + uint32(dg)*inv))
	b = byte(div255(uint32(sb)*uint32(sa) + uint32(db)*inv))
	a = sa + byte(div255(uint32(da)*inv))
	return r, g, b, a
}
