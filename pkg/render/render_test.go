package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/petrolog/wellsketch/pkg/layout"
	"github.com/petrolog/wellsketch/pkg/trajectory"
	"github.com/petrolog/wellsketch/pkg/well"
)

func testLayout(t *testing.T) *layout.Layout {
	t.Helper()
	w := &well.Well{
		Name:       "W-101",
		Type:       well.TypeStraight,
		TotalDepth: 1200,
		Stratigraphy: []well.StratigraphyLayer{
			{Name: "Quaternary", Top: 0, Bottom: 45},
			{Name: "Guantao", Top: 45, Bottom: 1200},
		},
		Pressure: []well.PressureSegment{
			{Top: 0, Bottom: 1200, PorePressure: 1.02, WindowMin: 1.05, WindowMax: 1.25},
		},
		Holes: []well.HoleSection{
			{Top: 0, Bottom: 1200, Diameter: 311},
		},
		Casings: []well.CasingSection{
			{Top: 0, Bottom: 1100, OuterDiameter: 245},
		},
		Legend: well.DefaultLegend(),
	}
	path, err := trajectory.ComputeCenterline(w)
	if err != nil {
		t.Fatalf("ComputeCenterline: %v", err)
	}
	l, err := layout.Build(w, path, layout.DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return l
}

func TestPNGProducesDecodableImage(t *testing.T) {
	data, err := PNG(testLayout(t))
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != defaultWidth || b.Dy() != defaultHeight {
		t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), defaultWidth, defaultHeight)
	}

	// The page must actually contain drawn content, not just the white fill.
	var colored int
	for y := b.Min.Y; y < b.Max.Y; y += 10 {
		for x := b.Min.X; x < b.Max.X; x += 10 {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				colored++
			}
		}
	}
	if colored == 0 {
		t.Error("rendered image is entirely white")
	}
}

func TestPNGWithSize(t *testing.T) {
	data, err := PNG(testLayout(t), WithSize(700, 500))
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 700 || b.Dy() != 500 {
		t.Errorf("image size = %dx%d, want 700x500", b.Dx(), b.Dy())
	}
}

func TestPNGIsDeterministic(t *testing.T) {
	l := testLayout(t)
	a, err := PNG(l)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	b, err := PNG(l)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical layout must encode to identical bytes")
	}
}
