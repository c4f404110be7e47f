package main

import (
	"image"
	"image/color"
)

type Drawable interface {
	Draw(c *Canvas)
}

// Dial is the outline of the clock face.
type Dial struct {
	Center        image.Point
	Radius, Width int
	Color         color.Color
}

// Hand is a straight stroke from the centre of the face to Tip.
type Hand struct {
	Center, Tip image.Point
	Width       int
	Color       color.Color
}

// Dot is the filled hub the hands turn on.
type Dot struct {
	Center image.Point
	Radius int
	Color  color.Color
}

func (d *Dial) Draw(c *Canvas) {
	c.StrokeCircle(d.Center, d.Radius, d.Width, d.Color)
}

func (h *Hand) Draw(c *Canvas) {
	c.StrokeLine(h.Center, h.Tip, h.Width, h.Color)
}

func (d *Dot) Draw(c *Canvas) {
	c.FillCircle(d.Center, d.Radius, d.Color)
}

// clockFace returns the parts of the icon in paint order.
func clockFace(g Geometry) []Drawable {
	return []Drawable{
		&Dial{Center: g.Center, Radius: g.Radius, Width: g.LineWidth, Color: foreground},
		&Hand{Center: g.Center, Tip: g.ShortHand, Width: g.LineWidth, Color: foreground},
		&Hand{Center: g.Center, Tip: g.LongHand, Width: g.LineWidth, Color: foreground},
		&Dot{Center: g.Center, Radius: g.DotRadius, Color: foreground},
	}
}
