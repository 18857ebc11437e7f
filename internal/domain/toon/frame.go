package toon

import (
	"math"

	"toon-face/internal/domain/entity"
)

// lengthScale длина оси лица относительно расстояния между глазами
const lengthScale = 0.8

// Derive строит систему координат по выбранной паре глаз.
// Центр правого глаза должен лежать правее центра левого.
func Derive(sel entity.Selection) (entity.Frame, error) {
	l := sel.LeftEye.Center()
	r := sel.RightEye.Center()

	dy := l.Y - r.Y
	dx := r.X - l.X
	if dx <= 0 {
		return entity.Frame{}, ErrDegenerateEyePair
	}

	center := entity.Point{X: (l.X + r.X) / 2, Y: (l.Y + r.Y) / 2}
	angle := -math.Atan2(float64(dy), float64(dx)) * 180 / math.Pi

	return entity.Frame{
		LeftEyeCenter:  l,
		RightEyeCenter: r,
		EyeCenter:      center,
		RollAngle:      angle,
		LengthAxis: entity.Point{
			X: int(float64(center.X) + lengthScale*float64(dy)),
			Y: int(float64(center.Y) + lengthScale*float64(dx)),
		},
		EyeDistance:      dx,
		EyeVerticalDelta: dy,
	}, nil
}
