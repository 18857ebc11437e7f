package entity

import "fmt"

// Point точка в пиксельных координатах изображения
type Point struct {
	X int
	Y int
}

// Add возвращает сумму двух точек
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect прямоугольник-кандидат, найденный детектором
type Rect struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина в пикселях
	Height int // высота в пикселях
}

// Area возвращает площадь прямоугольника
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Center возвращает координаты центра прямоугольника
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ContainsCenterOf проверяет, что центр other лежит внутри r, включая границы.
// Вырожденный прямоугольник не содержит ничего.
func (r Rect) ContainsCenterOf(other Rect) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	c := other.Center()
	return c.X >= r.X && c.X <= r.X+r.Width &&
		c.Y >= r.Y && c.Y <= r.Y+r.Height
}

// String возвращает прямоугольник в виде строки для логов
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// RotatedBox эллипс, вписанный в повёрнутый прямоугольник
type RotatedBox struct {
	Center Point
	Width  int
	Height int
	Angle  float64 // градусы, по часовой стрелке в координатах изображения
}
