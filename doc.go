// Package alphablend composites raw RGBA32 pixel buffers with a correct
// Porter-Duff "over" operator.
//
// # Overview
//
// Many blitters blend straight-alpha pixels with a plain lerp that ignores
// the destination alpha. Drawing translucent sprites onto a translucent
// target with such a blitter drags colors toward whatever the transparent
// pixels hold, and repeated blits build up a dark haze. alphablend
// premultiplies both pixels, applies "over", and un-premultiplies the
// result, rounding once per channel.
//
// # Quick Start
//
//	src, _ := alphablend.FromRaw(spritePix, 32, 32)
//	dst, _ := alphablend.FromRaw(screenPix, 640, 480)
//
//	// Draw the whole sprite with its top-left corner at (100, 50).
//	err := alphablend.BlendRectInPlace(src, alphablend.Rect{Width: 32, Height: 32}, dst, image.Pt(100, 50))
//
// # Buffer Format
//
// Every buffer is RGBA, 4 bytes per pixel, row-major, rows packed at
// width*4 bytes, straight (non-premultiplied) alpha. Callers own the memory
// and handle any format conversion or surface locking around the call.
//
// # Entry Points
//
//   - [BlendPixel]: one pixel over another.
//   - [BlendSurface]: two equally sized buffers, result in a new slice.
//   - [BlendRect]: a clipped rectangle, result in a copy of the destination.
//   - [BlendRectInPlace]: a clipped rectangle written straight into the
//     destination; no allocation.
//   - [Over]: a draw.Drawer for code built on image/draw or
//     golang.org/x/image/draw.
//
// # Clipping
//
// Source rectangles and placements may be negative, oversized, or entirely
// off-screen. The visible part is computed by [ResolveClip]; an empty result
// is a silent no-op, never an error. Only a buffer whose slice is too short
// for its declared dimensions is rejected, before any pixel is read.
//
// # Concurrency
//
// Every call is synchronous and keeps no state. Many goroutines may read the
// same source buffer at once. Writers to one destination buffer must be
// serialized by the caller.
package alphablend
