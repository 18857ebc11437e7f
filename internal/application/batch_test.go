package app

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"toon-face/internal/domain/entity"
)

func TestBatchService_Run(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(in, "alpha.png"), 720, 720)
	writePNG(t, filepath.Join(in, "beta.png"), 720, 720)

	svc := NewBatchService(NewToonService(&fakeDetector{detect: foundFace}, ToonOptions{ProfileSize: 720}))

	summary, err := svc.Run(context.Background(), BatchOptions{Input: in, Output: out, Workers: 2, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Total)
	require.Equal(t, 2, summary.Success)
	require.Equal(t, 0, summary.Failed)
	require.NotEmpty(t, summary.RunID)
	require.Equal(t, []string{
		filepath.Join(out, "alpha_toon.jpg"),
		filepath.Join(out, "beta_toon.jpg"),
	}, summary.Written)
	for _, f := range summary.Written {
		require.FileExists(t, f)
	}
}

func TestBatchService_DebugWithoutFace(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(in, "empty.png"), 100, 80)

	svc := NewBatchService(NewToonService(&fakeDetector{detect: noFace}, ToonOptions{ProfileSize: 720}))

	summary, err := svc.Run(context.Background(), BatchOptions{Input: in, Output: out, Debug: true})
	require.NoError(t, err)
	require.Equal(t, 0, summary.Success)
	require.Equal(t, []string{filepath.Join(out, "empty_debug.jpg")}, summary.Written)
	require.FileExists(t, summary.Written[0])
}

func TestBatchService_DetectorFailure(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(in, "one.png"), 64, 64)

	svc := NewBatchService(NewToonService(&fakeDetector{detect: func(image.Image) (*entity.Candidates, error) {
		return nil, errors.New("cascade failed")
	}}, ToonOptions{ProfileSize: 720}))

	summary, err := svc.Run(context.Background(), BatchOptions{Input: in, Output: out})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Failed)
	require.Empty(t, summary.Written)
}

func TestBatchService_MissingInput(t *testing.T) {
	svc := NewBatchService(NewToonService(&fakeDetector{detect: noFace}, ToonOptions{ProfileSize: 720}))

	_, err := svc.Run(context.Background(), BatchOptions{Input: filepath.Join(t.TempDir(), "nope"), Output: t.TempDir()})
	require.Error(t, err)
}
