package main

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Canvas is a square, fully opaque raster the clock parts are painted onto.
type Canvas struct {
	Size        int
	Framebuffer *image.RGBA
}

func NewCanvas(size int, bg color.Color) *Canvas {
	fb := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(fb, fb.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{
		Size:        size,
		Framebuffer: fb,
	}
}

func (c *Canvas) DrawDrawable(d Drawable) {
	d.Draw(c)
}

// StrokeCircle paints an unfilled ring inside the box [cx-r, cy-r, cx+r, cy+r].
// The stroke grows inward from the box edge.
func (c *Canvas) StrokeCircle(center image.Point, r, width int, col color.Color) {
	outer := float64(r) + 0.5
	c.paint(&ringMask{
		center: center,
		outer:  outer,
		inner:  outer - float64(width),
	}, col)
}

// StrokeLine paints every pixel whose centre lies within width/2 of the
// segment from..to.
func (c *Canvas) StrokeLine(from, to image.Point, width int, col color.Color) {
	c.paint(&segmentMask{
		from:  from,
		to:    to,
		halfW: float64(width) / 2,
	}, col)
}

func (c *Canvas) FillCircle(center image.Point, r int, col color.Color) {
	c.paint(&diskMask{
		center: center,
		r:      float64(r) + 0.5,
	}, col)
}

func (c *Canvas) paint(mask image.Image, col color.Color) {
	r := mask.Bounds().Intersect(c.Framebuffer.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(c.Framebuffer, r, image.NewUniform(col), image.Point{}, mask, r.Min, draw.Over)
}

// The masks below are hard-edged: every pixel is either fully in or fully out.

func inside(in bool) color.Color {
	if in {
		return color.Alpha{255}
	}
	return color.Alpha{0}
}

func dist(x, y int, p image.Point) float64 {
	return math.Hypot(float64(x-p.X), float64(y-p.Y))
}

type ringMask struct {
	center       image.Point
	outer, inner float64
}

func (m *ringMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *ringMask) Bounds() image.Rectangle {
	e := int(math.Ceil(m.outer))
	return image.Rect(m.center.X-e, m.center.Y-e, m.center.X+e+1, m.center.Y+e+1)
}

func (m *ringMask) At(x, y int) color.Color {
	d := dist(x, y, m.center)
	return inside(d >= m.inner && d < m.outer)
}

type diskMask struct {
	center image.Point
	r      float64
}

func (m *diskMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *diskMask) Bounds() image.Rectangle {
	e := int(math.Ceil(m.r))
	return image.Rect(m.center.X-e, m.center.Y-e, m.center.X+e+1, m.center.Y+e+1)
}

func (m *diskMask) At(x, y int) color.Color {
	return inside(dist(x, y, m.center) <= m.r)
}

type segmentMask struct {
	from, to image.Point
	halfW    float64
}

func (m *segmentMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *segmentMask) Bounds() image.Rectangle {
	e := int(math.Ceil(m.halfW))
	r := image.Rectangle{Min: m.from, Max: m.to}.Canon()
	return image.Rect(r.Min.X-e, r.Min.Y-e, r.Max.X+e+1, r.Max.Y+e+1)
}

func (m *segmentMask) At(x, y int) color.Color {
	dx := float64(m.to.X - m.from.X)
	dy := float64(m.to.Y - m.from.Y)
	px := float64(x - m.from.X)
	py := float64(y - m.from.Y)
	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = math.Max(0, math.Min(1, (px*dx+py*dy)/l2))
	}
	return inside(math.Hypot(px-t*dx, py-t*dy) <= m.halfW)
}
