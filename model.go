package main

import (
	"image/color"
	"math"

	"github.com/zucenko/hexaroni/model"
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

func (c GameColor) RGBA(alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(c.r * alpha * 255),
		G: uint8(c.g * alpha * 255),
		B: uint8(c.b * alpha * 255),
		A: uint8(alpha * 255),
	}
}

var COLOR_BG = HexToF32(0x464646)
var COLOR_TILE = HexToF32(0x8a8f98)
var COLOR_TILE_TARGET = HexToF32(0xedbc1e)
var COLOR_WALL = HexToF32(0x2a2a2a)
var COLOR_TEXT = HexToF32(0xffffff)

var PLAYER_COLORS = map[model.Player]GameColor{
	model.PlayerA: HexToF32(0xfa3636),
	model.PlayerB: HexToF32(0x34a0fb),
	model.God:     HexToF32(0x444444),
}

// BoardView maps board space (model.ScreenCoord) to window pixels.
type BoardView struct {
	Scale            float64
	OffsetX, OffsetY float64
}

// NewBoardView fits a board of size tiles into width x height pixels,
// leaving top pixels free for the HUD.
func NewBoardView(size, width, height, top int) BoardView {
	const margin = 1.2
	first := model.ScreenCoordFromHex(model.NewHexCoord(0, 0, size))
	last := model.ScreenCoordFromHex(model.NewHexCoord(size-1, size-1, size))
	boardW := last.X - first.X + 2*margin
	boardH := last.Y - first.Y + 2*margin
	scale := math.Min(float64(width)/boardW, float64(height-top)/boardH)
	return BoardView{
		Scale:   scale,
		OffsetX: (float64(width)-boardW*scale)/2 + (margin-first.X)*scale,
		OffsetY: float64(top) + (float64(height-top)-boardH*scale)/2 + (margin-first.Y)*scale,
	}
}

func (v BoardView) ToScreen(s model.ScreenCoord) (float64, float64) {
	return s.X*v.Scale + v.OffsetX, s.Y*v.Scale + v.OffsetY
}

func (v BoardView) ToBoard(x, y int) model.ScreenCoord {
	return model.ScreenCoord{
		X: (float64(x) - v.OffsetX) / v.Scale,
		Y: (float64(y) - v.OffsetY) / v.Scale,
	}
}
