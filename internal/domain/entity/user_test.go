package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultState(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, int64(10), u.ChatID)
	require.False(t, u.Debug)
}

func TestUser_ToggleDebug(t *testing.T) {
	u := NewUser(1, 10)
	require.True(t, u.ToggleDebug())
	require.False(t, u.ToggleDebug())
}

func TestUser_CountRender(t *testing.T) {
	u := NewUser(1, 10)
	u.CountRender()
	u.CountRender()
	require.Equal(t, 2, u.Renders)
}
