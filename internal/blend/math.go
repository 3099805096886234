// Package blend implements the Porter-Duff "over" operator on 8-bit
// straight-alpha RGBA pixels.
//
// The div255 helpers avoid integer division by using bit shifts and
// addition. They are called for every channel of every premultiply and
// unpremultiply step.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Jim Blinn, "Three Wrongs Make a Right", IEEE CG&A 1995
package blend

// div255 returns x/255 rounded to the nearest integer.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// Exact for every x in [0, 65025] (= 255*255), which covers any product
// of two channel values.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// divRound returns n/d rounded to the nearest integer, clamped to 255.
// d must be non-zero.
func divRound(n, d uint32) byte {
	v := (2*n + d) / (2 * d)
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Premultiply scales a straight color channel by alpha.
func Premultiply(c, a byte) byte {
	return mulDiv255(c, a)
}

// Unpremultiply recovers a straight color channel from a premultiplied one.
// A zero alpha yields zero.
func Unpremultiply(c, a byte) byte {
	if a == 0 {
		return 0
	}
	return divRound(uint32(c)*255, uint32(a))
}
