package toon

import (
	"image/color"

	"toon-face/internal/domain/entity"
)

type drawCall struct {
	kind      ShapeKind
	center    entity.Point
	radius    int
	box       entity.RotatedBox
	color     color.Color
	thickness int
}

// recordingCanvas запоминает вызовы рисования
type recordingCanvas struct {
	calls []drawCall
	rects []entity.Rect
	lines [][2]entity.Point
}

func (c *recordingCanvas) Circle(center entity.Point, radius int, col color.Color, thickness int) {
	c.calls = append(c.calls, drawCall{kind: ShapeCircle, center: center, radius: radius, color: col, thickness: thickness})
}

func (c *recordingCanvas) Ellipse(box entity.RotatedBox, col color.Color, thickness int) {
	c.calls = append(c.calls, drawCall{kind: ShapeEllipse, box: box, color: col, thickness: thickness})
}

func (c *recordingCanvas) Rectangle(r entity.Rect, col color.Color, thickness int) {
	c.rects = append(c.rects, r)
}

func (c *recordingCanvas) Line(from, to entity.Point, col color.Color, thickness int) {
	c.lines = append(c.lines, [2]entity.Point{from, to})
}

// zeroRand всегда возвращает 0 и считает вызовы
type zeroRand struct {
	calls int
}

func (r *zeroRand) IntN(n int) int {
	r.calls++
	return 0
}
