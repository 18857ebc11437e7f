package render

import (
	"image/color"

	"toon-face/internal/domain/entity"
	"toon-face/internal/domain/port"
)

// CandidateColors цвета рамок кандидатов на отладочной картинке
var CandidateColors = map[entity.FeatureClass]color.RGBA{
	entity.FeatureFace:    {B: 255, A: 255},
	entity.FeatureEye:     {R: 255, B: 255, A: 255},
	entity.FeatureAltFace: {G: 255, A: 255},
	entity.FeatureAltEye:  {R: 255, A: 255},
}

// DrawCandidates обводит рамками кандидатов всех классов.
func DrawCandidates(canvas port.Canvas, c *entity.Candidates) {
	for _, class := range entity.FeatureClasses {
		col := CandidateColors[class]
		for _, r := range c.Set(class) {
			canvas.Rectangle(entity.Rect{X: r.X, Y: r.Y, Width: r.Width - 1, Height: r.Height - 1}, col, 1)
		}
	}
}

var (
	EyeLineColor       = color.RGBA{B: 255, A: 255}
	EyeCenterColor     = color.RGBA{A: 255}
	PerpendicularColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// eyeCenterRadius радиус точки в середине линии глаз
const eyeCenterRadius = 3

// DrawFrames рисует систему координат каждого нарисованного канала:
// линию глаз, их середину и перпендикуляр длиной в расстояние между глазами.
func DrawFrames(canvas port.Canvas, report entity.Report) {
	for _, ch := range report.Channels {
		if !ch.Drawn {
			continue
		}
		f := ch.Frame
		canvas.Line(f.RightEyeCenter, f.LeftEyeCenter, EyeLineColor, 1)
		canvas.Circle(f.EyeCenter, eyeCenterRadius, EyeCenterColor, port.Filled)
		end := f.EyeCenter.Add(entity.Point{X: f.EyeVerticalDelta, Y: f.EyeDistance})
		canvas.Line(f.EyeCenter, end, PerpendicularColor, 1)
	}
}
