package ink

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRender_OpaqueWhiteBackground(t *testing.T) {
	img := Render(nil, 40, 40)

	for _, at := range [][2]int{{0, 0}, {39, 39}, {20, 5}} {
		r, g, b, a := img.At(at[0], at[1]).RGBA()
		if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
			t.Fatalf("background at %v = (%d,%d,%d,%d), want opaque white", at, r, g, b, a)
		}
	}
}

func TestRender_StrokeLeavesInk(t *testing.T) {
	strokes := []Stroke{lineStroke(10, 5, 20, 35, 20)}
	img := Render(strokes, 40, 40)

	r, g, b, _ := img.At(20, 20).RGBA()
	if r == 0xFFFF && g == 0xFFFF && b == 0xFFFF {
		t.Error("pixel on the stroke path is still white")
	}
}

func TestRender_ClipsOutOfBounds(t *testing.T) {
	strokes := []Stroke{lineStroke(10, -50, -50, 100, 100)}
	// Must not panic on points outside the canvas.
	Render(strokes, 40, 40)
}

func TestEncodePNG_Decodable(t *testing.T) {
	strokes := []Stroke{lineStroke(10, 5, 5, 30, 30)}

	data, err := EncodePNG(strokes, 64, 64)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("decoded size = %v, want 64x64", img.Bounds())
	}
}
