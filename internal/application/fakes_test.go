package app

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"toon-face/internal/domain/entity"
)

// fakeDetector возвращает заранее заданных кандидатов
type fakeDetector struct {
	mu     sync.Mutex
	detect func(img image.Image) (*entity.Candidates, error)
	sizes  []image.Point
}

func (d *fakeDetector) Detect(ctx context.Context, img image.Image) (*entity.Candidates, error) {
	d.mu.Lock()
	d.sizes = append(d.sizes, img.Bounds().Size())
	d.mu.Unlock()
	return d.detect(img)
}

func (d *fakeDetector) Close() error {
	return nil
}

func faceCandidates() *entity.Candidates {
	return &entity.Candidates{
		Face: entity.CandidateSet{{X: 100, Y: 100, Width: 300, Height: 300}},
		Eye:  entity.CandidateSet{{X: 160, Y: 180, Width: 40, Height: 40}, {X: 290, Y: 170, Width: 40, Height: 40}},
	}
}

func foundFace(image.Image) (*entity.Candidates, error) {
	return faceCandidates(), nil
}

func noFace(image.Image) (*entity.Candidates, error) {
	return &entity.Candidates{}, nil
}

func grayImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, grayImage(w, h)))
	return buf.Bytes()
}

func writePNG(t *testing.T, name string, w, h int) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, pngBytes(t, w, h), 0o644))
}
