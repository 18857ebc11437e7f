package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"toon-face/internal/domain/entity"
)

func TestNewCascadeFiles(t *testing.T) {
	files := NewCascadeFiles([4]string{"f.xml", "e.xml", "af.xml", "ae.xml"})
	require.Equal(t, "f.xml", files[entity.FeatureFace])
	require.Equal(t, "e.xml", files[entity.FeatureEye])
	require.Equal(t, "af.xml", files[entity.FeatureAltFace])
	require.Equal(t, "ae.xml", files[entity.FeatureAltEye])
}

func TestDefaultSettingsCoverAllClasses(t *testing.T) {
	for _, class := range entity.FeatureClasses {
		s, ok := DefaultSettings[class]
		require.True(t, ok, class)
		require.Greater(t, s.ScaleFactor, 1.0)
	}
	require.Equal(t, 3, DefaultSettings[entity.FeatureAltEye].MinNeighbors)
}

func TestToRects(t *testing.T) {
	rects := toRects([]image.Rectangle{image.Rect(10, 20, 40, 60)})
	require.Equal(t, entity.CandidateSet{{X: 10, Y: 20, Width: 30, Height: 40}}, rects)
}
