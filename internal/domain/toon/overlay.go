package toon

import (
	"image/color"

	"toon-face/internal/domain/entity"
	"toon-face/internal/domain/port"
)

const (
	eyeScale      = 1.5 // увеличение глаза относительно найденного
	pupilDilation = 3.5 // радиус зрачка = радиус глаза / pupilDilation
	maxOffsetX    = 3.0 // смещение зрачка по X не больше радиуса / maxOffsetX
	maxOffsetY    = 4.0 // смещение зрачка по Y не больше радиуса / maxOffsetY

	teethOffsetX = -0.11
	teethOffsetY = 0.13
	teethWidth   = 0.6
	teethHeight  = 0.9

	outlineThickness = 1
)

var (
	EyeWhiteColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	EyeOutlineColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	PupilColor      = color.RGBA{A: 255}
	MouthColor      = color.RGBA{A: 255}
	TeethColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ShapeKind вид фигуры оверлея
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeEllipse
)

// Shape одна фигура оверлея
type Shape struct {
	Name      string
	Kind      ShapeKind
	Center    entity.Point      // для окружности
	Radius    int               // для окружности
	Box       entity.RotatedBox // для эллипса
	Color     color.Color
	Thickness int
}

// Overlay фигуры в порядке рисования. Поздние перекрывают ранние.
type Overlay struct {
	Shapes []Shape
}

// Layout вычисляет фигуры оверлея для выбранной пары глаз.
// Из rng читаются четыре смещения зрачков: левый X, левый Y, правый X, правый Y.
func Layout(frame entity.Frame, sel entity.Selection, rng port.RandomSource) Overlay {
	leftR, rightR := sel.EyeRadii()
	leftC, rightC := sel.LeftEye.Center(), sel.RightEye.Center()

	leftJitter := entity.Point{
		X: -boundedJitter(rng, leftR, maxOffsetX),
		Y: symmetricJitter(rng, leftR, maxOffsetY),
	}
	rightJitter := entity.Point{
		X: boundedJitter(rng, rightR, maxOffsetX),
		Y: symmetricJitter(rng, rightR, maxOffsetY),
	}

	width := int(float64(frame.EyeDistance) + eyeScale*float64(leftR+rightR))
	height := width / 3
	d := float64(frame.EyeDistance)

	teeth := entity.RotatedBox{
		Center: entity.Point{
			X: int(float64(frame.LengthAxis.X) + teethOffsetX*d),
			Y: int(float64(frame.LengthAxis.Y) + teethOffsetY*d),
		},
		Width:  int(float64(width) * teethWidth),
		Height: int(float64(height) * teethHeight),
		Angle:  frame.RollAngle,
	}
	mouth := entity.RotatedBox{
		Center: frame.LengthAxis,
		Width:  width,
		Height: height,
		Angle:  frame.RollAngle,
	}

	return Overlay{Shapes: []Shape{
		{Name: "teeth", Kind: ShapeEllipse, Box: teeth, Color: TeethColor, Thickness: port.Filled},
		{Name: "teeth_outline", Kind: ShapeEllipse, Box: teeth, Color: EyeOutlineColor, Thickness: outlineThickness},
		{Name: "mouth", Kind: ShapeEllipse, Box: mouth, Color: MouthColor, Thickness: port.Filled},
		eyeWhite("left_eye", leftC, leftR, port.Filled),
		eyeWhite("left_eye_outline", leftC, leftR, outlineThickness),
		eyeWhite("right_eye", rightC, rightR, port.Filled),
		eyeWhite("right_eye_outline", rightC, rightR, outlineThickness),
		pupil("left_pupil", leftC.Add(leftJitter), leftR),
		pupil("right_pupil", rightC.Add(rightJitter), rightR),
	}}
}

// Paint рисует фигуры оверлея на холсте по порядку.
func Paint(canvas port.Canvas, overlay Overlay) {
	for _, s := range overlay.Shapes {
		switch s.Kind {
		case ShapeCircle:
			canvas.Circle(s.Center, s.Radius, s.Color, s.Thickness)
		case ShapeEllipse:
			canvas.Ellipse(s.Box, s.Color, s.Thickness)
		}
	}
}

// Compose рисует мультяшные глаза, зрачки, рот и зубы по системе координат.
func Compose(canvas port.Canvas, frame entity.Frame, sel entity.Selection, rng port.RandomSource) {
	Paint(canvas, Layout(frame, sel, rng))
}

func eyeWhite(name string, center entity.Point, radius, thickness int) Shape {
	c := color.Color(EyeWhiteColor)
	if thickness != port.Filled {
		c = EyeOutlineColor
	}
	return Shape{
		Name:      name,
		Kind:      ShapeCircle,
		Center:    center,
		Radius:    int(float64(radius) * eyeScale),
		Color:     c,
		Thickness: thickness,
	}
}

func pupil(name string, center entity.Point, radius int) Shape {
	return Shape{
		Name:      name,
		Kind:      ShapeCircle,
		Center:    center,
		Radius:    int(float64(radius) / pupilDilation * eyeScale),
		Color:     PupilColor,
		Thickness: port.Filled,
	}
}

// boundedJitter возвращает число из [0, radius/divisor).
// Если граница схлопывается, смещения нет.
func boundedJitter(rng port.RandomSource, radius int, divisor float64) int {
	bound := int(float64(radius) / divisor)
	if bound <= 0 {
		return 0
	}
	return rng.IntN(bound)
}

// symmetricJitter возвращает число из [-radius/divisor, radius/divisor].
func symmetricJitter(rng port.RandomSource, radius int, divisor float64) int {
	bound := int(float64(radius) / divisor)
	if bound <= 0 {
		return 0
	}
	return rng.IntN(2*bound+1) - bound
}
