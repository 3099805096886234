package alphablend

import (
	"bytes"
	"errors"
	"image"
	"math/rand/v2"
	"sync"
	"testing"
)

func solidBuffer(w, h int, p Pixel) Buffer {
	b := NewBuffer(w, h)
	b.Fill(p)
	return b
}

func checkerBuffer(w, h int) Buffer {
	b := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				b.Set(x, y, RGBA8(255, 255, 255, 255))
			} else {
				b.Set(x, y, RGBA8(0, 0, 0, 255))
			}
		}
	}
	return b
}

func randomBuffer(rng *rand.Rand, w, h int) Buffer {
	b := NewBuffer(w, h)
	for i := range b.Pix {
		b.Pix[i] = byte(rng.IntN(256))
	}
	for i := 3; i < len(b.Pix); i += 4 {
		switch rng.IntN(4) {
		case 0:
			b.Pix[i] = 0
		case 1:
			b.Pix[i] = 255
		}
	}
	return b
}

func TestBlendSurface(t *testing.T) {
	red := solidBuffer(4, 4, RGBA8(255, 0, 0, 128))
	blue := solidBuffer(4, 4, RGBA8(0, 0, 255, 255))
	redOrig, blueOrig := bytes.Clone(red.Pix), bytes.Clone(blue.Pix)

	out, err := BlendSurface(red, blue)
	if err != nil {
		t.Fatalf("BlendSurface() = %v", err)
	}
	if len(out) != 4*4*4 {
		t.Fatalf("len(out) = %d, want 64", len(out))
	}

	res := Buffer{Pix: out, Width: 4, Height: 4}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := res.At(x, y); got != RGBA8(128, 0, 127, 255) {
				t.Fatalf("At(%d, %d) = %v, want {128 0 127 255}", x, y, got)
			}
		}
	}

	if !bytes.Equal(red.Pix, redOrig) || !bytes.Equal(blue.Pix, blueOrig) {
		t.Error("BlendSurface() modified its inputs")
	}
}

func TestBlendSurfaceErrors(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Buffer
		wantErr  error
	}{
		{"short buffers", Buffer{Pix: []byte("short"), Width: 100, Height: 100}, Buffer{Pix: []byte("also_short"), Width: 100, Height: 100}, ErrDataTooSmall},
		{"short destination", NewBuffer(2, 2), Buffer{Pix: make([]byte, 15), Width: 2, Height: 2}, ErrDataTooSmall},
		{"size mismatch", NewBuffer(2, 2), NewBuffer(2, 3), ErrSizeMismatch},
		{"negative size", Buffer{Width: -1, Height: 1}, NewBuffer(1, 1), ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := BlendSurface(tt.src, tt.dst)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BlendSurface() error = %v, wantErr %v", err, tt.wantErr)
			}
			if out != nil {
				t.Errorf("BlendSurface() returned %d bytes alongside an error", len(out))
			}
		})
	}
}

func TestBlendSurfaceEmpty(t *testing.T) {
	out, err := BlendSurface(Buffer{}, Buffer{})
	if err != nil {
		t.Fatalf("BlendSurface() = %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("BlendSurface() = %v, want empty non-nil slice", out)
	}
}

func TestBlendRectPartial(t *testing.T) {
	red := solidBuffer(8, 8, RGBA8(255, 0, 0, 128))
	blue := solidBuffer(8, 8, RGBA8(0, 0, 255, 255))
	blueOrig := bytes.Clone(blue.Pix)

	out, err := BlendRect(red, Rect{X: 2, Y: 2, Width: 4, Height: 4}, blue, image.Pt(2, 2))
	if err != nil {
		t.Fatalf("BlendRect() = %v", err)
	}
	if !bytes.Equal(blue.Pix, blueOrig) {
		t.Error("BlendRect() modified the destination")
	}

	res := Buffer{Pix: out, Width: 8, Height: 8}
	if got := res.At(0, 0); got != RGBA8(0, 0, 255, 255) {
		t.Errorf("corner = %v, want unchanged blue", got)
	}
	if got := res.At(4, 4); got.R <= 100 || got.B <= 100 {
		t.Errorf("center = %v, want red and blue", got)
	}
	if got := res.At(6, 6); got != RGBA8(0, 0, 255, 255) {
		t.Errorf("(6,6) = %v, want unchanged blue", got)
	}
}

func TestBlendRectClipsOversizedSource(t *testing.T) {
	src := checkerBuffer(4, 4)
	dst := solidBuffer(4, 4, RGBA8(9, 9, 9, 255))

	// The requested rect runs past the source; only its 2x2 visible part is drawn.
	out, err := BlendRect(src, Rect{X: 2, Y: 2, Width: 4, Height: 4}, dst, image.Pt(0, 0))
	if err != nil {
		t.Fatalf("BlendRect() = %v", err)
	}

	res := Buffer{Pix: out, Width: 4, Height: 4}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := RGBA8(9, 9, 9, 255)
			if x < 2 && y < 2 {
				want = src.At(x+2, y+2)
			}
			if got := res.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestBlendRectInPlaceOffscreen covers a placement whose source rect ends
// exactly at the destination's origin: nothing is visible.
func TestBlendRectInPlaceOffscreen(t *testing.T) {
	src := solidBuffer(50, 50, RGBA8(255, 0, 0, 200))
	dst := checkerBuffer(10, 10)
	orig := bytes.Clone(dst.Pix)

	if _, ok := ResolveClip(Rect{Width: 10, Height: 10}, 50, 50, image.Pt(-10, -10), 10, 10); ok {
		t.Fatal("ResolveClip() found a visible region")
	}
	if err := BlendRectInPlace(src, Rect{Width: 10, Height: 10}, dst, image.Pt(-10, -10)); err != nil {
		t.Fatalf("BlendRectInPlace() = %v", err)
	}
	if !bytes.Equal(dst.Pix, orig) {
		t.Error("destination changed")
	}
}

func TestBlendRectInPlaceNegativePlacement(t *testing.T) {
	src := NewBuffer(50, 50)
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			src.Set(x, y, RGBA8(byte(x), byte(y), 0, 255))
		}
	}
	dst := NewBuffer(10, 10)

	if err := BlendRectInPlace(src, Rect{Width: 50, Height: 50}, dst, image.Pt(-10, -10)); err != nil {
		t.Fatalf("BlendRectInPlace() = %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got, want := dst.At(x, y), RGBA8(byte(x+10), byte(y+10), 0, 255); got != want {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlendRectInPlaceNoOps(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		at   image.Point
	}{
		{"right of destination", Rect{Width: 4, Height: 4}, image.Pt(8, 0)},
		{"below destination", Rect{Width: 4, Height: 4}, image.Pt(0, 8)},
		{"far negative", Rect{Width: 4, Height: 4}, image.Pt(-1_000_000, -1_000_000)},
		{"source rect outside source", Rect{X: 100, Y: 100, Width: 4, Height: 4}, image.Pt(0, 0)},
		{"source rect left of source", Rect{X: -10, Y: 0, Width: 10, Height: 4}, image.Pt(0, 0)},
		{"zero size", Rect{Width: 0, Height: 4}, image.Pt(0, 0)},
		{"negative size", Rect{Width: -4, Height: -4}, image.Pt(0, 0)},
	}

	src := solidBuffer(8, 8, RGBA8(200, 10, 10, 180))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := checkerBuffer(8, 8)
			orig := bytes.Clone(dst.Pix)
			if err := BlendRectInPlace(src, tt.r, dst, tt.at); err != nil {
				t.Fatalf("BlendRectInPlace() = %v", err)
			}
			if !bytes.Equal(dst.Pix, orig) {
				t.Error("destination changed")
			}
		})
	}
}

func TestBlendRectInPlaceInvalidBuffers(t *testing.T) {
	good := solidBuffer(4, 4, RGBA8(255, 0, 0, 128))
	tests := []struct {
		name     string
		src, dst Buffer
		wantErr  error
	}{
		{"short source", Buffer{Pix: good.Pix[:15], Width: 4, Height: 4}, checkerBuffer(4, 4), ErrDataTooSmall},
		{"short destination", good, Buffer{Pix: make([]byte, 63), Width: 4, Height: 4}, ErrDataTooSmall},
		{"negative destination", good, Buffer{Pix: make([]byte, 64), Width: 4, Height: -4}, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := bytes.Clone(tt.dst.Pix)
			err := BlendRectInPlace(tt.src, Rect{Width: 4, Height: 4}, tt.dst, image.Pt(0, 0))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BlendRectInPlace() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !bytes.Equal(tt.dst.Pix, orig) {
				t.Error("destination written despite the error")
			}
		})
	}
}

func TestBlendRectInPlaceTransparentSource(t *testing.T) {
	src := NewBuffer(6, 6)
	dst := solidBuffer(6, 6, RGBA8(12, 34, 56, 78))
	orig := bytes.Clone(dst.Pix)

	if err := BlendRectInPlace(src, Rect{Width: 6, Height: 6}, dst, image.Pt(0, 0)); err != nil {
		t.Fatalf("BlendRectInPlace() = %v", err)
	}
	if !bytes.Equal(dst.Pix, orig) {
		t.Error("a fully transparent source changed the destination")
	}
}

// TestBlendRectInPlaceMatchesBlendPixel compares randomized blits against a
// per-pixel reference built from ResolveClip and BlendPixel.
func TestBlendRectInPlaceMatchesBlendPixel(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 43))
	for i := range 300 {
		sw, sh := rng.IntN(20), rng.IntN(20)
		dw, dh := rng.IntN(20), rng.IntN(20)
		src := randomBuffer(rng, sw, sh)
		dst := randomBuffer(rng, dw, dh)
		r := Rect{X: rng.IntN(40) - 20, Y: rng.IntN(40) - 20, Width: rng.IntN(30) - 5, Height: rng.IntN(30) - 5}
		at := image.Pt(rng.IntN(40)-20, rng.IntN(40)-20)

		want := Buffer{Pix: bytes.Clone(dst.Pix), Width: dw, Height: dh}
		if reg, ok := ResolveClip(r, sw, sh, at, dw, dh); ok {
			for y := 0; y < reg.Dst.Height; y++ {
				for x := 0; x < reg.Dst.Width; x++ {
					s := src.At(reg.Src.X+x, reg.Src.Y+y)
					d := want.At(reg.Dst.X+x, reg.Dst.Y+y)
					want.Set(reg.Dst.X+x, reg.Dst.Y+y, BlendPixel(s, d))
				}
			}
		}

		if err := BlendRectInPlace(src, r, dst, at); err != nil {
			t.Fatalf("case %d: BlendRectInPlace() = %v", i, err)
		}
		if !bytes.Equal(dst.Pix, want.Pix) {
			t.Fatalf("case %d: rect %+v at %v: result differs from per-pixel reference", i, r, at)
		}
	}
}

// TestRepeatedBlitNoHaze stamps the same translucent sprite onto a
// transparent target many times. The color must stay put while alpha
// climbs toward opaque.
func TestRepeatedBlitNoHaze(t *testing.T) {
	sprite := solidBuffer(4, 4, RGBA8(255, 64, 32, 100))
	canvas := NewBuffer(4, 4)

	prevAlpha := uint8(0)
	for i := range 40 {
		if err := BlendRectInPlace(sprite, Rect{Width: 4, Height: 4}, canvas, image.Pt(0, 0)); err != nil {
			t.Fatalf("blit %d: %v", i, err)
		}
		got := canvas.At(1, 2)
		if got.R != 255 || got.G != 64 || got.B != 32 {
			t.Fatalf("blit %d: color drifted to %v", i, got)
		}
		if got.A < prevAlpha {
			t.Fatalf("blit %d: alpha dropped %d -> %d", i, prevAlpha, got.A)
		}
		prevAlpha = got.A
	}
	if prevAlpha < 250 {
		t.Errorf("alpha after 40 blits = %d, want nearly opaque", prevAlpha)
	}
}

func TestBlendRectInPlaceZeroAllocs(t *testing.T) {
	src := solidBuffer(64, 64, RGBA8(255, 0, 0, 128))
	dst := solidBuffer(64, 64, RGBA8(0, 0, 255, 255))
	r := Rect{X: -8, Y: 4, Width: 80, Height: 50}
	at := image.Pt(3, -2)

	allocs := testing.AllocsPerRun(100, func() {
		_ = BlendRectInPlace(src, r, dst, at)
	})
	if allocs != 0 {
		t.Errorf("BlendRectInPlace() allocated %.1f times per call, want 0", allocs)
	}
}

func TestBlendRectInPlaceSharedSource(t *testing.T) {
	src := solidBuffer(16, 16, RGBA8(10, 200, 30, 90))
	srcOrig := bytes.Clone(src.Pix)

	const workers = 8
	dsts := make([]Buffer, workers)
	for i := range dsts {
		dsts[i] = solidBuffer(16, 16, RGBA8(0, 0, 0, 255))
	}

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_ = BlendRectInPlace(src, Rect{Width: 16, Height: 16}, dsts[i], image.Pt(0, 0))
			}
		}()
	}
	wg.Wait()

	if !bytes.Equal(src.Pix, srcOrig) {
		t.Error("source buffer was modified")
	}
	for i := 1; i < workers; i++ {
		if !bytes.Equal(dsts[i].Pix, dsts[0].Pix) {
			t.Errorf("destination %d differs from destination 0", i)
		}
	}
}
