// Command blenddemo shows the haze a lerp-based blitter leaves on a
// transparent canvas and the same scene composited with alphablend.
//
// A soft translucent disc is blitted onto two transparent canvases many
// times, once with a naive lerp and once with BlendRectInPlace. Both
// canvases are then drawn over a checkerboard, labeled and saved side by
// side as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/alphablend"
	"github.com/gogpu/alphablend/internal/blend"
	"github.com/gogpu/alphablend/internal/blit"
	"github.com/gogpu/alphablend/internal/clip"
)

func main() {
	var (
		size    = flag.Int("size", 128, "canvas size in pixels")
		blits   = flag.Int("blits", 40, "number of times the sprite is blitted")
		scale   = flag.Int("scale", 3, "output upscale factor")
		output  = flag.String("output", "blend.png", "output file")
		verbose = flag.Bool("v", false, "log every blend call")
	)
	flag.Parse()

	if *verbose {
		alphablend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *size < 8 || *blits < 1 || *scale < 1 {
		log.Fatal("size must be at least 8, blits and scale at least 1")
	}

	sprite := softDisc(*size*3/4, alphablend.RGBA8(255, 64, 32, 255))
	r := alphablend.Rect{Width: sprite.Width, Height: sprite.Height}
	at := image.Pt((*size-sprite.Width)/2, (*size-sprite.Height)/2)

	naive := alphablend.NewBuffer(*size, *size)
	correct := alphablend.NewBuffer(*size, *size)

	for range *blits {
		naiveBlit(sprite, naive, at)
	}

	start := time.Now()
	for range *blits {
		if err := alphablend.BlendRectInPlace(sprite, r, correct, at); err != nil {
			log.Fatalf("Failed to blend: %v", err)
		}
	}
	elapsed := time.Since(start)

	out, err := compose(naive, correct)
	if err != nil {
		log.Fatalf("Failed to compose: %v", err)
	}

	big := image.NewNRGBA(image.Rect(0, 0, out.Bounds().Dx()*(*scale), out.Bounds().Dy()*(*scale)))
	draw.NearestNeighbor.Scale(big, big.Bounds(), out, out.Bounds(), draw.Src, nil)

	if err := savePNG(*output, big); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.English)
	pixels := float64(sprite.Width * sprite.Height * *blits)
	log.Print(p.Sprintf("Blended %d pixels in %v (%.0f pixels/s)", int(pixels), elapsed, pixels/max(elapsed.Seconds(), 1e-9)))
	log.Printf("Demo saved to %s (%dx%d)\n", *output, big.Bounds().Dx(), big.Bounds().Dy())
}

// softDisc renders a disc of color c whose alpha falls off toward the edge.
func softDisc(d int, c alphablend.Pixel) alphablend.Buffer {
	b := alphablend.NewBuffer(d, d)
	rad := float64(d) / 2
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dist := math.Hypot(float64(x)+0.5-rad, float64(y)+0.5-rad) / rad
			if dist >= 1 {
				continue
			}
			a := 0.4 * (1 - dist*dist)
			b.Set(x, y, alphablend.RGBA8(c.R, c.G, c.B, uint8(a*float64(c.A)+0.5)))
		}
	}
	return b
}

// naiveBlit blits the whole sprite with a plain lerp that ignores the
// destination alpha.
func naiveBlit(src, dst alphablend.Buffer, at image.Point) {
	reg, ok := clip.Resolve(clip.Rect{Width: src.Width, Height: src.Height},
		src.Width, src.Height, at.X, at.Y, dst.Width, dst.Height)
	if !ok {
		return
	}
	blit.BlitFunc(surface(dst), surface(src), reg, blend.NaiveOver)
}

func surface(b alphablend.Buffer) blit.Surface {
	return blit.Surface{Pix: b.Pix, Stride: b.Width * alphablend.BytesPerPixel, Width: b.Width, Height: b.Height}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
