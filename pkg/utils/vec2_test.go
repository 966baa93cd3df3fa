package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(3.0, 4.0)
	assert.Equal(t, V2(4.0, 6.0), a.Add(V2(1.0, 2.0)))
	assert.Equal(t, V2(2.0, 2.0), a.Sub(V2(1.0, 2.0)))
	assert.Equal(t, V2(6.0, 8.0), a.Scale(2))
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, 11.0, a.Dot(V2(1.0, 2.0)))
	assert.Equal(t, 5.0, V2(0.0, 0.0).DistanceTo(a))
}

func TestVec2Normalize(t *testing.T) {
	n := V2(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.True(t, V2(0.0, 0.0).Normalize().IsZero())
}

func TestVec2Rotate(t *testing.T) {
	r := V2(1.0, 0.0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, r.X, 1e-9)
	assert.InDelta(t, 1.0, r.Y, 1e-9)
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	camera := V2(100.0, 50.0)
	view := V2(320.0, 180.0)
	screen := V2(1280.0, 720.0)

	p := V2(120.0, 60.0)
	s := WorldToScreen(p, camera, view, screen)
	assert.Equal(t, V2(720.0, 320.0), s)
	assert.Equal(t, p, ScreenToWorld(s, camera, view, screen))
}
