package main

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

func TestComputeGeometry128(t *testing.T) {
	g, err := ComputeGeometry(128)
	if err != nil {
		t.Fatal(err)
	}
	want := Geometry{
		Center:    image.Pt(64, 64),
		Radius:    44,
		LineWidth: 8,
		ShortHand: image.Pt(56, 50),
		LongHand:  image.Pt(64, 38),
		DotRadius: 4,
	}
	if g != want {
		t.Errorf("got %+v, want %+v", g, want)
	}
}

func TestComputeGeometryClampsAtSmallestSize(t *testing.T) {
	g, err := ComputeGeometry(16)
	if err != nil {
		t.Fatal(err)
	}
	if g.LineWidth != 1 {
		t.Errorf("LineWidth = %d, want 1", g.LineWidth)
	}
	if g.DotRadius != 1 {
		t.Errorf("DotRadius = %d, want 1", g.DotRadius)
	}
	if g.Center != image.Pt(8, 8) || g.Radius != 5 {
		t.Errorf("center %v radius %d, want (8,8) 5", g.Center, g.Radius)
	}
}

func TestComputeGeometryMonotonic(t *testing.T) {
	var prev Geometry
	for i, size := range iconSizes {
		g, err := ComputeGeometry(size)
		if err != nil {
			t.Fatal(err)
		}
		if i > 0 {
			if g.Radius < prev.Radius || g.LineWidth < prev.LineWidth || g.DotRadius < prev.DotRadius {
				t.Errorf("size %d: %+v shrinks relative to %+v", size, g, prev)
			}
		}
		prev = g
	}
}

func TestComputeGeometryInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -128} {
		if _, err := ComputeGeometry(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: err = %v, want ErrInvalidSize", size, err)
		}
		if img, err := RenderIcon(size); !errors.Is(err, ErrInvalidSize) || img != nil {
			t.Errorf("RenderIcon(%d) = %v, %v", size, img, err)
		}
	}
}

func TestRenderIcon(t *testing.T) {
	for _, size := range iconSizes {
		img, err := RenderIcon(size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("size %d: bounds %v", size, b)
		}
		if !img.Opaque() {
			t.Errorf("size %d: image has transparent pixels", size)
		}

		g, _ := ComputeGeometry(size)
		cx, cy, r := g.Center.X, g.Center.Y, g.Radius

		outside := []image.Point{
			{0, 0},
			{cx + r + 1, cy},
			{cx - r - 1, cy},
			{cx, cy + r + 1},
			{cx, cy - r - 1},
		}
		for _, p := range outside {
			if got := img.RGBAAt(p.X, p.Y); got != background {
				t.Errorf("size %d: pixel %v = %v, want background", size, p, got)
			}
		}

		white := []image.Point{
			g.Center,
			g.ShortHand,
			g.LongHand,
			{cx + r, cy},
			{cx - r, cy},
			{cx, cy + r},
			{cx, cy - r},
		}
		for _, p := range white {
			if got := img.RGBAAt(p.X, p.Y); got != whiteRGBA {
				t.Errorf("size %d: pixel %v = %v, want white", size, p, got)
			}
		}
	}
}

func TestRenderIconDeterministic(t *testing.T) {
	for _, size := range iconSizes {
		a, err := RenderIcon(size)
		if err != nil {
			t.Fatal(err)
		}
		b, err := RenderIcon(size)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("size %d: two renders differ", size)
		}
	}
}
