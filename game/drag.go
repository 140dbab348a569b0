package game

import "github.com/zucenko/hexaroni/model"

// Drag is an ongoing drag of a piece together with its legal targets.
type Drag struct {
	Object  model.Object
	Targets []model.HexCoord
	moves   []model.Move
}

// NewDrag marks obj as dragged and collects its legal moves.
func NewDrag(obj model.Object, c *GameController) *Drag {
	if o := c.board.Get(obj.Props.OID); o != nil {
		o.SetStatus(model.NewStatus(model.StatusDragged))
	}
	moves := c.LegalMoves(obj)
	targets := make([]model.HexCoord, 0, len(moves))
	for _, m := range moves {
		targets = append(targets, m.Target())
	}
	return &Drag{Object: obj, Targets: targets, moves: moves}
}

func (d *Drag) GetMoveTo(target model.HexCoord) (model.Move, bool) {
	for _, m := range d.moves {
		if m.Target().Equal(target) {
			return m, true
		}
	}
	return model.Move{}, false
}

func (d *Drag) HasMoveTo(target model.HexCoord) bool {
	for _, t := range d.Targets {
		if t.Equal(target) {
			return true
		}
	}
	return false
}

func (d *Drag) Moves() []model.Move {
	return d.moves
}

// Release removes the Dragged status from the piece, if it is still around.
func (d *Drag) Release(c *GameController) {
	if o := c.board.Get(d.Object.Props.OID); o != nil {
		o.RemoveStatus(model.StatusDragged)
	}
}
