//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"toon-face/internal/domain/entity"
)

type cascade struct {
	classifier gocv.CascadeClassifier
	settings   CascadeSettings
}

// CascadeDetector ищет лица и глаза четырьмя каскадами Хаара.
type CascadeDetector struct {
	cascades map[entity.FeatureClass]*cascade
	mu       sync.Mutex // CascadeClassifier не потокобезопасен
}

// NewCascadeDetector загружает каскады из файлов.
func NewCascadeDetector(files CascadeFiles) (*CascadeDetector, error) {
	d := &CascadeDetector{cascades: make(map[entity.FeatureClass]*cascade, len(files))}
	for _, class := range entity.FeatureClasses {
		path, ok := files[class]
		if !ok {
			d.Close()
			return nil, fmt.Errorf("cascade for %s is not configured", class)
		}

		classifier := gocv.NewCascadeClassifier()
		if !classifier.Load(path) {
			classifier.Close()
			d.Close()
			return nil, fmt.Errorf("load cascade %s: %s", class, path)
		}
		d.cascades[class] = &cascade{classifier: classifier, settings: DefaultSettings[class]}
	}
	return d, nil
}

// Detect запускает все каскады на серой копии изображения.
func (d *CascadeDetector) Detect(ctx context.Context, img image.Image) (*entity.Candidates, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("image to mat: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	d.mu.Lock()
	defer d.mu.Unlock()

	candidates := &entity.Candidates{}
	for _, class := range entity.FeatureClasses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := d.cascades[class]
		rects := c.classifier.DetectMultiScaleWithParams(
			gray,
			c.settings.ScaleFactor,
			c.settings.MinNeighbors,
			0,
			c.settings.MinSize,
			image.Point{},
		)
		candidates.Put(class, toRects(rects))
	}

	return candidates, nil
}

// Close освобождает каскады
func (d *CascadeDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.cascades {
		c.classifier.Close()
	}
	d.cascades = nil
	return nil
}
