package model

import "fmt"

// Directions are numbered clockwise (screen y grows downwards), so
// (dir+1)%6 is the clockwise neighbour direction of dir.
var directions = [6][2]int{
	{1, 0},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{0, -1},
	{1, -1},
}

// HexCoord is an axial coordinate on a rhombic board of BoardSize x BoardSize tiles.
// BoardSize is context, not identity: compare coordinates with Equal.
type HexCoord struct {
	X, Y      int
	BoardSize int
}

func NewHexCoord(x, y, boardSize int) HexCoord {
	return HexCoord{X: x, Y: y, BoardSize: boardSize}
}

func (c HexCoord) Equal(o HexCoord) bool {
	return c.X == o.X && c.Y == o.Y
}

func (c HexCoord) InBounds() bool {
	return c.X >= 0 && c.Y >= 0 && c.X < c.BoardSize && c.Y < c.BoardSize
}

// Neighbor walks distance steps in dir. It returns false as soon as a step
// leaves the board; the board edge never wraps.
func (c HexCoord) Neighbor(dir, distance int) (HexCoord, bool) {
	if dir < 0 || dir >= len(directions) || distance < 0 {
		return HexCoord{}, false
	}
	d := directions[dir]
	curr := c
	for i := 0; i < distance; i++ {
		curr = HexCoord{X: curr.X + d[0], Y: curr.Y + d[1], BoardSize: c.BoardSize}
		if !curr.InBounds() {
			return HexCoord{}, false
		}
	}
	return curr, true
}

// Directions returns the six direction ids.
func (c HexCoord) Directions() [6]int {
	return [6]int{0, 1, 2, 3, 4, 5}
}

// Distance is the number of single steps between a and b.
func Distance(a, b HexCoord) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return (abs(dx) + abs(dy) + abs(dx+dy)) / 2
}

func (c HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
