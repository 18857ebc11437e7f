package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportSuccess(t *testing.T) {
	require.False(t, Report{}.Success())

	r := Report{Channels: []ChannelOutcome{
		{Name: "primary", Reason: ReasonEyeCount},
		{Name: "alternate", Drawn: true},
	}}
	require.True(t, r.Success())

	res := &ToonResult{Report: Report{Channels: []ChannelOutcome{{Name: "primary", Reason: ReasonNoFace}}}}
	require.False(t, res.HasFace())
}

func TestSelectionEyeRadii(t *testing.T) {
	s := Selection{LeftEye: Rect{Width: 21}, RightEye: Rect{Width: 30}}
	l, r := s.EyeRadii()
	require.Equal(t, 10, l)
	require.Equal(t, 15, r)
}
