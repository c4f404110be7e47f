package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	background = color.RGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF} // #D32F2F
	foreground = color.White
)

var ErrInvalidSize = errors.New("icon size must be positive")

// Geometry holds the pixel measurements of the clock face for one icon size.
// Every value is truncated, never rounded.
type Geometry struct {
	Center    image.Point
	Radius    int
	LineWidth int
	ShortHand image.Point // tip of the hour hand, pointing at 10 o'clock
	LongHand  image.Point // tip of the minute hand, pointing at 12 o'clock
	DotRadius int
}

func ComputeGeometry(size int) (Geometry, error) {
	if size <= 0 {
		return Geometry{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	center := image.Pt(size/2, size/2)
	radius := int(float64(size) * 0.35)

	short := int(float64(radius) * 0.4)
	// 0.866 ~ sin(60°): the hour hand sits 60° left of vertical
	shortTip := image.Pt(
		center.X-int(float64(short)*0.5),
		center.Y-int(float64(short)*0.866),
	)

	long := int(float64(radius) * 0.6)

	return Geometry{
		Center:    center,
		Radius:    radius,
		LineWidth: max(1, size/16),
		ShortHand: shortTip,
		LongHand:  image.Pt(center.X, center.Y-long),
		DotRadius: max(1, size/32),
	}, nil
}

// RenderIcon draws the clock icon at size x size pixels. The result is opaque.
func RenderIcon(size int) (*image.RGBA, error) {
	g, err := ComputeGeometry(size)
	if err != nil {
		return nil, err
	}
	c := NewCanvas(size, background)
	for _, part := range clockFace(g) {
		c.DrawDrawable(part)
	}
	return c.Framebuffer, nil
}
