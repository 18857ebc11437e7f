package vision

import (
	"errors"
	"image"

	"toon-face/internal/domain/entity"
)

// ErrGoCVDisabled возвращается сборкой без тега gocv.
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// CascadeSettings параметры detectMultiScale для одного каскада
type CascadeSettings struct {
	ScaleFactor  float64
	MinNeighbors int
	MinSize      image.Point
}

// DefaultSettings чувствительность каскадов по классам.
var DefaultSettings = map[entity.FeatureClass]CascadeSettings{
	entity.FeatureFace:    {ScaleFactor: 1.05, MinNeighbors: 5, MinSize: image.Pt(40, 40)},
	entity.FeatureEye:     {ScaleFactor: 1.1, MinNeighbors: 6, MinSize: image.Pt(25, 25)},
	entity.FeatureAltFace: {ScaleFactor: 1.05, MinNeighbors: 5, MinSize: image.Pt(40, 40)},
	entity.FeatureAltEye:  {ScaleFactor: 1.1, MinNeighbors: 3, MinSize: image.Pt(25, 25)},
}

// CascadeFiles пути к XML-файлам каскадов по классам
type CascadeFiles map[entity.FeatureClass]string

// NewCascadeFiles собирает пути в порядке face, eye, alt face, alt eye.
func NewCascadeFiles(paths [4]string) CascadeFiles {
	return CascadeFiles{
		entity.FeatureFace:    paths[0],
		entity.FeatureEye:     paths[1],
		entity.FeatureAltFace: paths[2],
		entity.FeatureAltEye:  paths[3],
	}
}

func toRects(rects []image.Rectangle) entity.CandidateSet {
	out := make(entity.CandidateSet, 0, len(rects))
	for _, r := range rects {
		out = append(out, entity.Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()})
	}
	return out
}
