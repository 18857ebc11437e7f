package port

import (
	"image/color"

	"toon-face/internal/domain/entity"
)

// Filled толщина линии, означающая заливку фигуры
const Filled = -1

// Canvas поверхность, на которой рисуется оверлей.
// Толщина Filled заливает фигуру, положительная толщина рисует контур.
type Canvas interface {
	Circle(center entity.Point, radius int, c color.Color, thickness int)
	Ellipse(box entity.RotatedBox, c color.Color, thickness int)
	Rectangle(r entity.Rect, c color.Color, thickness int)
	Line(from, to entity.Point, c color.Color, thickness int)
}

// RandomSource источник случайных чисел для смещения зрачков.
// *rand.Rand из math/rand/v2 реализует этот интерфейс.
type RandomSource interface {
	// IntN возвращает число из [0, n), n > 0
	IntN(n int) int
}
