package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// screenAngle is the angle of d in [0, 2pi), growing clockwise on screen.
func screenAngle(d ScreenCoord) float64 {
	a := math.Atan2(d.Y, d.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func TestScreenCoordFromHex(t *testing.T) {
	s := ScreenCoordFromHex(NewHexCoord(0, 0, 7))
	assert.InDelta(t, 1.0, s.X, 1e-9)
	assert.InDelta(t, 2.0, s.Y, 1e-9)

	s = ScreenCoordFromHex(NewHexCoord(2, 1, 7))
	assert.InDelta(t, 6.3, s.X, 1e-9)
	assert.InDelta(t, 3.85, s.Y, 1e-9)
}

func TestScreenCoordLerp(t *testing.T) {
	a := ScreenCoord{X: 1, Y: 1}
	b := ScreenCoord{X: 3, Y: 5}
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, ScreenCoord{X: 2, Y: 3}, a.Lerp(b, 0.5))
	assert.InDelta(t, math.Hypot(2, 4), a.DistFrom(b), 1e-9)
}
