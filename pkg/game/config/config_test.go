package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OverlaysDefaults(t *testing.T) {
	tun, err := Parse([]byte(`
enemy:
  detect_radius: 3
  run_speed: 7
room:
  width: 100
`))
	require.NoError(t, err)
	assert.Equal(t, 3.0, tun.Enemy.DetectRadius)
	assert.Equal(t, 7.0, tun.Enemy.RunSpeed)
	assert.Equal(t, 100.0, tun.Room.Width)
	assert.Equal(t, Default().Room.Height, tun.Room.Height)
	assert.Equal(t, Default().Enemy.RealizeTime, tun.Enemy.RealizeTime)
}

func TestParse_RejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("physics:\n  scale: 0\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("enemy: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	tun, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), tun)
}

func TestRoomWorldSize(t *testing.T) {
	tun := Default()
	w, h := tun.RoomWorldSize()
	assert.InDelta(t, 10.0, w, 1e-9)
	assert.InDelta(t, 7.0, h, 1e-9)
}

func TestParse_Bindings(t *testing.T) {
	tun, err := Parse([]byte("bindings:\n  j: Jump\n  c: Dash\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"j": "Jump", "c": "Dash"}, tun.Bindings)
	assert.Nil(t, Default().Bindings)
}
