package ink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
)

// Ink and background colors for the exported raster. The background is
// opaque white; the recognizer performs poorly on transparency.
var (
	inkColor = color.RGBA{R: 0x1E, G: 0x1B, B: 0x4B, A: 0xFF}
	bgColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// strokeRadius is the half-width of a rendered stroke in pixels.
const strokeRadius = 3

// Render rasterizes strokes onto an opaque white canvas of the given
// size. Points are taken in pad coordinates; callers scale beforehand
// if the pad and canvas differ.
func Render(strokes []Stroke, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, bgColor)
		}
	}

	for _, s := range strokes {
		if len(s) == 1 {
			drawDot(img, s[0].X, s[0].Y)
			continue
		}
		for i := 1; i < len(s); i++ {
			drawSegment(img, s[i-1], s[i])
		}
	}
	return img
}

// EncodePNG renders strokes and encodes the result for transmission
// to the recognizer.
func EncodePNG(strokes []Stroke, width, height int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(strokes, width, height)); err != nil {
		return nil, fmt.Errorf("encode ink image: %w", err)
	}
	return buf.Bytes(), nil
}

// drawSegment draws a thick line by stamping dots along the segment at
// sub-pixel steps.
func drawSegment(img *image.RGBA, a, b Point) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	steps := int(length) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		drawDot(img, a.X+dx*t, a.Y+dy*t)
	}
}

func drawDot(img *image.RGBA, cx, cy float64) {
	x0, y0 := int(math.Round(cx)), int(math.Round(cy))
	bounds := img.Bounds()
	for y := y0 - strokeRadius; y <= y0+strokeRadius; y++ {
		for x := x0 - strokeRadius; x <= x0+strokeRadius; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			ddx, ddy := float64(x-x0), float64(y-y0)
			if ddx*ddx+ddy*ddy <= strokeRadius*strokeRadius {
				img.SetRGBA(x, y, inkColor)
			}
		}
	}
}
