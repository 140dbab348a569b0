package model

import "fmt"

// Move displaces Object along Path, from Path[0] to the last element, and
// carries the effects of doing so.
type Move struct {
	// Object is a snapshot of the moving piece taken when the move was generated.
	Object  Object
	Path    []HexCoord
	Effects []Effect
}

// NewMove panics when path does not displace the piece by at least one tile.
func NewMove(object Object, path []HexCoord, effects []Effect) Move {
	if len(path) < 2 {
		panic("path must have at least two coordinates")
	}
	return Move{Object: object, Path: path, Effects: effects}
}

func (m Move) Target() HexCoord {
	return m.Path[len(m.Path)-1]
}

func (m Move) String() string {
	return fmt.Sprintf("Move{%s %v->%v effects=%d}", m.Object.Type, m.Path[0], m.Target(), len(m.Effects))
}
