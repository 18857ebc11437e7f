package log

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Options{Level: "warn"}, &buf)
	require.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.WithFields(Fields{"channel": "primary"}).Info("hidden")
	require.Empty(t, buf.String())

	l.WithFields(Fields{"channel": "primary"}).Warn("shown")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "primary")
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Options{Level: "loud"}, &buf)
	require.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNewLogger_File(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "toon.log")
	l := newLogger(Options{Level: "info", File: file}, &buf)

	l.Info("written")
	require.FileExists(t, file)
}
