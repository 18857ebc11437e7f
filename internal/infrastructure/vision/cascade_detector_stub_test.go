//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStubDetector(t *testing.T) {
	d, err := NewCascadeDetector(NewCascadeFiles([4]string{}))
	require.NoError(t, err)

	_, err = d.Detect(context.Background(), image.NewGray(image.Rect(0, 0, 4, 4)))
	require.ErrorIs(t, err, ErrGoCVDisabled)
	require.NoError(t, d.Close())
}
