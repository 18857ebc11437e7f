package toon

import (
	"testing"

	"github.com/stretchr/testify/require"

	"toon-face/internal/domain/entity"
)

func TestDerive_LevelEyes(t *testing.T) {
	sel := entity.Selection{
		LeftEye:  entity.Rect{X: 20, Y: 20, Width: 10, Height: 10},
		RightEye: entity.Rect{X: 60, Y: 20, Width: 10, Height: 10},
	}

	frame, err := Derive(sel)
	require.NoError(t, err)
	require.Equal(t, entity.Point{X: 25, Y: 25}, frame.LeftEyeCenter)
	require.Equal(t, entity.Point{X: 65, Y: 25}, frame.RightEyeCenter)
	require.Equal(t, entity.Point{X: 45, Y: 25}, frame.EyeCenter)
	require.Equal(t, 0.0, frame.RollAngle)
	require.Equal(t, 40, frame.EyeDistance)
	require.Equal(t, 0, frame.EyeVerticalDelta)
	require.Equal(t, entity.Point{X: 45, Y: 57}, frame.LengthAxis)
}

func TestDerive_RightEyeHigher(t *testing.T) {
	sel := entity.Selection{
		LeftEye:  entity.Rect{X: 20, Y: 20, Width: 10, Height: 10},
		RightEye: entity.Rect{X: 60, Y: 10, Width: 10, Height: 10},
	}

	frame, err := Derive(sel)
	require.NoError(t, err)
	require.Equal(t, 10, frame.EyeVerticalDelta)
	require.InDelta(t, -14.036, frame.RollAngle, 0.001)
	require.Equal(t, entity.Point{X: 45, Y: 20}, frame.EyeCenter)
	require.Equal(t, entity.Point{X: 53, Y: 52}, frame.LengthAxis)
}

func TestDerive_RightEyeLower(t *testing.T) {
	sel := entity.Selection{
		LeftEye:  entity.Rect{X: 20, Y: 10, Width: 10, Height: 10},
		RightEye: entity.Rect{X: 60, Y: 20, Width: 10, Height: 10},
	}

	frame, err := Derive(sel)
	require.NoError(t, err)
	require.Equal(t, -10, frame.EyeVerticalDelta)
	require.InDelta(t, 14.036, frame.RollAngle, 0.001)
	require.Equal(t, entity.Point{X: 37, Y: 52}, frame.LengthAxis)
}

func TestDerive_LengthAxisIsPerpendicular(t *testing.T) {
	sel := entity.Selection{
		LeftEye:  entity.Rect{X: 100, Y: 140, Width: 30, Height: 30},
		RightEye: entity.Rect{X: 200, Y: 100, Width: 30, Height: 30},
	}

	frame, err := Derive(sel)
	require.NoError(t, err)

	l, r := sel.LeftEye.Center(), sel.RightEye.Center()
	eyeX, eyeY := r.X-l.X, r.Y-l.Y
	axisX, axisY := frame.LengthAxis.X-frame.EyeCenter.X, frame.LengthAxis.Y-frame.EyeCenter.Y
	require.Equal(t, 0, eyeX*axisX+eyeY*axisY)
}

func TestDerive_DegenerateEyePair(t *testing.T) {
	sel := entity.Selection{
		LeftEye:  entity.Rect{X: 20, Y: 20, Width: 10, Height: 10},
		RightEye: entity.Rect{X: 20, Y: 50, Width: 10, Height: 10},
	}

	_, err := Derive(sel)
	require.ErrorIs(t, err, ErrDegenerateEyePair)
}

func TestDerive_IndependentOfCandidateOrder(t *testing.T) {
	faces := entity.CandidateSet{{X: 0, Y: 0, Width: 200, Height: 200}}
	a := entity.Rect{X: 30, Y: 60, Width: 24, Height: 24}
	b := entity.Rect{X: 120, Y: 48, Width: 30, Height: 30}

	sel1, _, ok := Select(faces, entity.CandidateSet{a, b})
	require.True(t, ok)
	sel2, _, ok := Select(faces, entity.CandidateSet{b, a})
	require.True(t, ok)

	f1, err := Derive(sel1)
	require.NoError(t, err)
	f2, err := Derive(sel2)
	require.NoError(t, err)
	require.Equal(t, f1, f2)

	again, err := Derive(sel1)
	require.NoError(t, err)
	require.Equal(t, f1, again)
}

func TestDerive_InvertedCentersRejected(t *testing.T) {
	// левый прямоугольник левее, но из-за ширины его центр правее
	sel := entity.Selection{
		LeftEye:  entity.Rect{X: 50, Y: 40, Width: 40, Height: 40},
		RightEye: entity.Rect{X: 51, Y: 100, Width: 10, Height: 10},
	}

	_, err := Derive(sel)
	require.ErrorIs(t, err, ErrDegenerateEyePair)
}
