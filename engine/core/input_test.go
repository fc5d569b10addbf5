package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputTracksKeyState(t *testing.T) {
	in := NewInput()
	assert.False(t, in.IsKeyDown(KeyW))

	in.Handle(EventKey{Key: KeyW, Down: true})
	assert.True(t, in.IsKeyDown(KeyW))

	in.Handle(EventKey{Key: KeyW, Down: false})
	assert.False(t, in.IsKeyDown(KeyW))
}

func TestInputAxis(t *testing.T) {
	in := NewInput()
	assert.Zero(t, in.Axis(KeyS, KeyW))

	in.Handle(EventKey{Key: KeyW, Down: true})
	assert.Equal(t, 1.0, in.Axis(KeyS, KeyW))

	in.Handle(EventKey{Key: KeyS, Down: true})
	assert.Zero(t, in.Axis(KeyS, KeyW), "opposing keys cancel")

	in.Handle(EventKey{Key: KeyW, Down: false})
	assert.Equal(t, -1.0, in.Axis(KeyS, KeyW))
}

func TestInputMouse(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseMove{X: 12, Y: 34})
	x, y := in.Mouse()
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 34.0, y)
}
