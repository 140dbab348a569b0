package model

import "math"

// ScreenCoord is a position in board space at unit tile size. Renderers
// scale and translate it to pixels.
type ScreenCoord struct {
	X, Y float64
}

func ScreenCoordFromHex(c HexCoord) ScreenCoord {
	return ScreenCoord{
		X: float64(1+c.Y) + 2.15*float64(c.X),
		Y: 2.0 + 1.85*float64(c.Y),
	}
}

func (s ScreenCoord) Add(o ScreenCoord) ScreenCoord {
	return ScreenCoord{X: s.X + o.X, Y: s.Y + o.Y}
}

func (s ScreenCoord) Sub(o ScreenCoord) ScreenCoord {
	return ScreenCoord{X: s.X - o.X, Y: s.Y - o.Y}
}

func (s ScreenCoord) Scale(f float64) ScreenCoord {
	return ScreenCoord{X: s.X * f, Y: s.Y * f}
}

func (s ScreenCoord) Lerp(to ScreenCoord, t float64) ScreenCoord {
	return s.Add(to.Sub(s).Scale(t))
}

func (s ScreenCoord) DistFrom(o ScreenCoord) float64 {
	return math.Hypot(s.X-o.X, s.Y-o.Y)
}
