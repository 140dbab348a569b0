package model

import "fmt"

// Add appends a copy of o. The oid must be new to the board.
func (b *Board) Add(o Object) {
	if _, ok := b.index[o.Props.OID]; ok {
		panic(fmt.Sprintf("oid %d already on board", o.Props.OID))
	}
	c := o.Clone()
	b.index[c.Props.OID] = len(b.objects)
	b.objects = append(b.objects, &c)
}

// Remove drops the object with oid for good. Unknown oids are ignored.
func (b *Board) Remove(oid int) {
	i, ok := b.index[oid]
	if !ok {
		return
	}
	b.objects = append(b.objects[:i], b.objects[i+1:]...)
	delete(b.index, oid)
	for j := i; j < len(b.objects); j++ {
		b.index[b.objects[j].Props.OID] = j
	}
}

// KillAllAt marks every object on c dead, tile included, attaching s to each.
func (b *Board) KillAllAt(c HexCoord, s *Status) {
	for _, o := range b.objects {
		if o.Coord.Equal(c) {
			o.SetKilled(s)
		}
	}
}

// KillPieceAt marks the pieces on c dead, leaving the tile alone.
func (b *Board) KillPieceAt(c HexCoord, s *Status) {
	for _, o := range b.objects {
		if !o.IsTile() && o.Coord.Equal(c) {
			o.SetKilled(s)
		}
	}
}

// MoveTo relocates the object with oid to c, attaching a Move status that
// runs from the old to the new position.
func (b *Board) MoveTo(oid int, c HexCoord, start, duration, height float64) bool {
	o := b.Get(oid)
	if o == nil {
		return false
	}
	o.SetStatus(NewMoveStatus(ScreenCoordFromHex(o.Coord), ScreenCoordFromHex(c), start, duration, height))
	o.SetCoord(c)
	return true
}
