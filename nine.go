package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-slice panel: corners keep their size, edges stretch
// along one axis and the centre along both.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4]int
	x, y, width, height int
	targetPositions     [4][2]float64
	scaleCenterWidth    float64
	scaleCenterHeight   float64
}

// NewNine builds a panel with corners of the given radius. The source is a
// disc: its quarters are the corners, its middle row and column the edges.
func NewNine(radius int, c GameColor, alpha float64) (*Nine, error) {
	img, err := ebiten.NewImageFromImage(disc(radius), ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	return &Nine{
		images:    img,
		alpha:     alpha,
		R:         c.r, G: c.g, B: c.b, Scale: 1,
		positions: [4]int{0, radius, radius + 1, 2*radius + 1},
	}, nil
}

func disc(radius int) image.Image {
	side := 2*radius + 1
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	r2 := radius * radius
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx, dy := x-radius, y-radius
			if dx*dx+dy*dy <= r2 {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	p := n.positions
	n.targetPositions[0] = [2]float64{float64(n.x), float64(n.y)}
	n.targetPositions[1] = [2]float64{float64(n.x) + n.Scale*float64(p[1]), float64(n.y) + n.Scale*float64(p[1])}
	n.targetPositions[2] = [2]float64{
		float64(n.x+n.width) - n.Scale*float64(p[3]-p[2]),
		float64(n.y+n.height) - n.Scale*float64(p[3]-p[2]),
	}
	n.targetPositions[3] = [2]float64{float64(n.x + n.width), float64(n.y + n.height)}

	n.scaleCenterWidth = (n.targetPositions[2][0] - n.targetPositions[1][0]) / float64(p[2]-p[1])
	n.scaleCenterHeight = (n.targetPositions[2][1] - n.targetPositions[1][1]) / float64(p[2]-p[1])
}

func (n *Nine) Draw(screen *ebiten.Image) {
	scales := [3]float64{n.Scale, 0, n.Scale}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sx, sy := scales[col], scales[row]
			if col == 1 {
				sx = n.scaleCenterWidth
			}
			if row == 1 {
				sy = n.scaleCenterHeight
			}
			src := image.Rect(n.positions[col], n.positions[row], n.positions[col+1], n.positions[row+1])
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
