package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"toon-face/internal/domain/entity"
	"toon-face/internal/domain/port"
)

// Canvas холст на базе gg. Рисует поверх копии исходного изображения.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas создаёт холст с копией img.
func NewCanvas(img image.Image) *Canvas {
	return &Canvas{dc: gg.NewContextForImage(img)}
}

// Circle рисует окружность или круг
func (c *Canvas) Circle(center entity.Point, radius int, col color.Color, thickness int) {
	if radius <= 0 {
		return
	}
	c.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	c.finish(col, thickness)
}

// Ellipse рисует эллипс, вписанный в повёрнутый прямоугольник
func (c *Canvas) Ellipse(box entity.RotatedBox, col color.Color, thickness int) {
	if box.Width <= 0 || box.Height <= 0 {
		return
	}
	x, y := float64(box.Center.X), float64(box.Center.Y)

	c.dc.Push()
	c.dc.RotateAbout(gg.Radians(box.Angle), x, y)
	c.dc.DrawEllipse(x, y, float64(box.Width)/2, float64(box.Height)/2)
	c.finish(col, thickness)
	c.dc.Pop()
}

// Rectangle рисует прямоугольник
func (c *Canvas) Rectangle(r entity.Rect, col color.Color, thickness int) {
	c.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	c.finish(col, thickness)
}

// Line рисует отрезок. Толщина меньше единицы рисуется в один пиксель.
func (c *Canvas) Line(from, to entity.Point, col color.Color, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	c.dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	c.finish(col, thickness)
}

func (c *Canvas) finish(col color.Color, thickness int) {
	c.dc.SetColor(col)
	if thickness == port.Filled {
		c.dc.Fill()
		return
	}
	c.dc.SetLineWidth(float64(thickness))
	c.dc.Stroke()
}

// Image возвращает текущее содержимое холста.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

var _ port.Canvas = (*Canvas)(nil)
