//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"

	"toon-face/internal/domain/entity"
)

// CascadeDetector заглушка для сборки без OpenCV.
type CascadeDetector struct {
	files CascadeFiles
}

// NewCascadeDetector возвращает заглушку, которая отвечает ошибкой на Detect.
func NewCascadeDetector(files CascadeFiles) (*CascadeDetector, error) {
	return &CascadeDetector{files: files}, nil
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *CascadeDetector) Detect(ctx context.Context, img image.Image) (*entity.Candidates, error) {
	_ = ctx
	_ = img
	return nil, ErrGoCVDisabled
}

// Close ничего не делает
func (d *CascadeDetector) Close() error {
	return nil
}
