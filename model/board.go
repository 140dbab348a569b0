package model

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrDuplicateTileCoord  = errors.New("duplicate tile coord")
	ErrDuplicatePieceCoord = errors.New("duplicate piece coord")
	ErrDuplicateOID        = errors.New("duplicate oid")
	ErrOffTile             = errors.New("object placed on non-tile")
	ErrNoPieces            = errors.New("no pieces for player")
)

// Board owns every tile and piece. Objects are kept in insertion order and
// indexed by oid; all in-place mutation goes through Get.
type Board struct {
	Size    int
	objects []*Object
	index   map[int]int
}

type cell struct {
	x, y int
}

func cellOf(c HexCoord) cell {
	return cell{c.X, c.Y}
}

// NewBoard verifies objects and builds a board from copies of them.
func NewBoard(size int, objects []Object) (*Board, error) {
	if err := Verify(objects); err != nil {
		return nil, err
	}
	b := &Board{
		Size:    size,
		objects: make([]*Object, 0, len(objects)),
		index:   make(map[int]int, len(objects)),
	}
	for i := range objects {
		o := objects[i].Clone()
		b.index[o.Props.OID] = len(b.objects)
		b.objects = append(b.objects, &o)
	}
	return b, nil
}

// MustNewBoard is NewBoard for boards that are known to be well formed. A
// malformed board is a setup bug and panics.
func MustNewBoard(size int, objects []Object) *Board {
	b, err := NewBoard(size, objects)
	if err != nil {
		panic(err)
	}
	return b
}

// Verify reports every placement invariant violated by objects.
func Verify(objects []Object) error {
	var result *multierror.Error
	tileCoords := make(map[cell]bool)
	pieceCoords := make(map[cell]bool)
	oids := make(map[int]bool)

	for i := range objects {
		o := &objects[i]
		if !o.IsTile() {
			continue
		}
		if tileCoords[cellOf(o.Coord)] {
			result = multierror.Append(result, fmt.Errorf("%w: %v", ErrDuplicateTileCoord, o.Coord))
		}
		tileCoords[cellOf(o.Coord)] = true
	}
	for i := range objects {
		o := &objects[i]
		if o.IsTile() {
			continue
		}
		if pieceCoords[cellOf(o.Coord)] {
			result = multierror.Append(result, fmt.Errorf("%w: %v", ErrDuplicatePieceCoord, o.Coord))
		}
		pieceCoords[cellOf(o.Coord)] = true
	}
	for i := range objects {
		o := &objects[i]
		if oids[o.Props.OID] {
			result = multierror.Append(result, fmt.Errorf("%w: oid=%d", ErrDuplicateOID, o.Props.OID))
		}
		oids[o.Props.OID] = true
		if !tileCoords[cellOf(o.Coord)] {
			result = multierror.Append(result, fmt.Errorf("%w: oid=%d at %v", ErrOffTile, o.Props.OID, o.Coord))
		}
	}
	for _, p := range []Player{PlayerA, PlayerB} {
		found := false
		for i := range objects {
			if objects[i].OwnedBy(p) && !objects[i].Props.Dead {
				found = true
				break
			}
		}
		if !found {
			result = multierror.Append(result, fmt.Errorf("%w: %v", ErrNoPieces, p))
		}
	}
	return result.ErrorOrNil()
}

// Objects, Tiles and Pieces return filtered views in insertion order. Only
// the game controller mutates through them.
func (b *Board) Objects() []*Object {
	out := make([]*Object, len(b.objects))
	copy(out, b.objects)
	return out
}

func (b *Board) Tiles() []*Object {
	var out []*Object
	for _, o := range b.objects {
		if o.IsTile() {
			out = append(out, o)
		}
	}
	return out
}

func (b *Board) Pieces() []*Object {
	var out []*Object
	for _, o := range b.objects {
		if !o.IsTile() {
			out = append(out, o)
		}
	}
	return out
}

func (b *Board) Len() int {
	return len(b.objects)
}

// Get returns the object with oid, or nil.
func (b *Board) Get(oid int) *Object {
	i, ok := b.index[oid]
	if !ok {
		return nil
	}
	return b.objects[i]
}

func (b *Board) TileAt(c HexCoord) *Object {
	for _, o := range b.objects {
		if o.IsTile() && o.Coord.Equal(c) {
			return o
		}
	}
	return nil
}

// PieceAt returns the first piece on c, dead or alive.
func (b *Board) PieceAt(c HexCoord) *Object {
	for _, o := range b.objects {
		if !o.IsTile() && o.Coord.Equal(c) {
			return o
		}
	}
	return nil
}

// Contents returns the living piece occupying c, or nil.
func (b *Board) Contents(c HexCoord) *Object {
	for _, o := range b.objects {
		if !o.IsTile() && !o.Props.Dead && o.Coord.Equal(c) {
			return o
		}
	}
	return nil
}

func (b *Board) IsEmpty(c HexCoord) bool {
	return b.Contents(c) == nil
}

// Owner returns the player owning the living occupant of c.
func (b *Board) Owner(c HexCoord) (Player, bool) {
	o := b.Contents(c)
	if o == nil {
		return God, false
	}
	return o.Player, true
}

// LivingPieces returns the pieces of p that are not dead.
func (b *Board) LivingPieces(p Player) []*Object {
	var out []*Object
	for _, o := range b.objects {
		if !o.IsTile() && !o.Props.Dead && o.OwnedBy(p) {
			out = append(out, o)
		}
	}
	return out
}

func (b *Board) Alive(p Player) bool {
	for _, o := range b.objects {
		if !o.IsTile() && !o.Props.Dead && o.OwnedBy(p) {
			return true
		}
	}
	return false
}

func (b *Board) String() string {
	return fmt.Sprintf("Board(size=%d, objects=%d)", b.Size, len(b.objects))
}
