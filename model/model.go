package model

import "fmt"

type ObjectType int

const (
	Tile ObjectType = iota
	Wall
	Dasher
	Jumper
)

func (t ObjectType) Name() string {
	switch t {
	case Tile:
		return "Tile"
	case Wall:
		return "Wall"
	case Dasher:
		return "Dasher"
	case Jumper:
		return "Jumper"
	default:
		return fmt.Sprintf("N/A(%d)", int(t))
	}
}

func (t ObjectType) String() string {
	return t.Name()
}

type ObjectProps struct {
	OID        int
	Selectable bool
	Draggable  bool
	Dead       bool
	// Size is the hit radius in board space.
	Size float64
}

func DefaultProps(oid int) ObjectProps {
	return ObjectProps{OID: oid, Selectable: true, Draggable: true, Size: 1.0}
}

// Object is a tile or a piece. Identity is Props.OID.
type Object struct {
	Type     ObjectType
	Coord    HexCoord
	Player   Player
	Props    ObjectProps
	Statuses Statuses
}

// Tile decay defaults.
const (
	DefaultIndicatorLead   = 2
	DefaultFallDuration    = 2.0
	DefaultWobbleAmplitude = 0.2
	DefaultWobbleSpeed     = 37.1
)

// Decay describes when a tile collapses. A non-positive Lifespan makes the
// tile permanent.
type Decay struct {
	Lifespan        int
	IndicatorLead   int
	FallDuration    float64
	WobbleAmplitude float64
	WobbleSpeed     float64
}

func DefaultDecay(lifespan int) Decay {
	return Decay{
		Lifespan:        lifespan,
		IndicatorLead:   DefaultIndicatorLead,
		FallDuration:    DefaultFallDuration,
		WobbleAmplitude: DefaultWobbleAmplitude,
		WobbleSpeed:     DefaultWobbleSpeed,
	}
}

func NewPiece(oid int, otype ObjectType, coord HexCoord, player Player) Object {
	return Object{
		Type:     otype,
		Coord:    coord,
		Player:   player,
		Props:    DefaultProps(oid),
		Statuses: Statuses{},
	}
}

func NewWall(oid int, coord HexCoord) Object {
	w := NewPiece(oid, Wall, coord, God)
	w.Props.Size = 1.1
	w.Props.Selectable = false
	w.Props.Draggable = false
	return w
}

// NewTile creates a tile that kills everything on it, itself included, when
// the move counter reaches decay.Lifespan, after a wobble warning
// decay.IndicatorLead moves earlier.
func NewTile(oid int, coord HexCoord, decay Decay) Object {
	t := NewPiece(oid, Tile, coord, God)
	t.Props.Size = 1.1
	t.Props.Selectable = false
	t.Props.Draggable = false
	if decay.Lifespan <= 0 {
		return t
	}
	falling := NewStatus(StatusFalling).WithTimes(0, decay.FallDuration)
	effect := KillAllOnEffect{Coord: coord, Apply: &falling}
	indicatorAt := decay.Lifespan - decay.IndicatorLead
	if decay.IndicatorLead > 0 && indicatorAt > 0 {
		indicator := SetStatusEffect{OID: oid, Status: NewWobbleStatus(decay.WobbleAmplitude, decay.WobbleSpeed)}
		t.AddStatus(NewDelayedEffectWithIndicator(decay.Lifespan, effect, indicatorAt, indicator))
	} else {
		t.AddStatus(NewDelayedEffectStatus(decay.Lifespan, effect))
	}
	return t
}

func (o *Object) IsTile() bool {
	return o.Type == Tile
}

func (o *Object) IsPiece() bool {
	return o.Type != Tile
}

func (o *Object) OwnedBy(p Player) bool {
	return o.Player == p
}

func (o *Object) Equal(other *Object) bool {
	return other != nil && o.Props.OID == other.Props.OID
}

// Clone returns a value snapshot that shares nothing mutable with o.
func (o *Object) Clone() Object {
	c := *o
	c.Statuses = o.Statuses.Clone()
	return c
}

func (o *Object) ScreenCoord() ScreenCoord {
	return ScreenCoordFromHex(o.Coord)
}

func (o *Object) SetCoord(c HexCoord) {
	o.Coord = c
}

// AddStatus attaches s. Attaching a second status of the same kind is a
// programming error and panics.
func (o *Object) AddStatus(s Status) {
	if o.Statuses == nil {
		o.Statuses = Statuses{}
	}
	if existing, ok := o.Statuses[s.Kind]; ok {
		panic(fmt.Sprintf("same status added twice to oid=%d (existing=%v new=%v)", o.Props.OID, existing, s))
	}
	o.Statuses[s.Kind] = s
}

// SetStatus attaches s, replacing any status of the same kind.
func (o *Object) SetStatus(s Status) {
	if o.Statuses == nil {
		o.Statuses = Statuses{}
	}
	o.Statuses[s.Kind] = s
}

func (o *Object) RemoveStatus(kind StatusKind) {
	delete(o.Statuses, kind)
}

func (o *Object) Status(kind StatusKind) (Status, bool) {
	s, ok := o.Statuses[kind]
	return s, ok
}

func (o *Object) HasStatus(kind StatusKind) bool {
	_, ok := o.Statuses[kind]
	return ok
}

// SetKilled marks the object dead. Statuses that never expire are dropped so
// the corpse can be collected once its timed statuses run out.
func (o *Object) SetKilled(s *Status) {
	o.Props.Dead = true
	for kind, st := range o.Statuses {
		if !st.Expiring() {
			delete(o.Statuses, kind)
		}
	}
	if s != nil {
		o.SetStatus(*s)
	}
}

func (o *Object) PruneExpired(now float64) {
	for kind, s := range o.Statuses {
		if s.IsExpired(now) {
			delete(o.Statuses, kind)
		}
	}
}

// Settled reports whether every status has expired at now.
func (o *Object) Settled(now float64) bool {
	for _, s := range o.Statuses {
		if !s.IsExpired(now) {
			return false
		}
	}
	return true
}

// Tick runs the per-move updates for move number moveNr and returns the
// effects they produce: the indicator of a delayed effect when its move is
// reached, then the delayed effect itself, which is removed once fired.
func (o *Object) Tick(moveNr int) []Effect {
	s, ok := o.Statuses[StatusDelayedEffect]
	if !ok || s.Delayed == nil {
		return nil
	}
	d := s.Delayed
	var effects []Effect
	if d.Indicator != nil && d.IndicatorMoveNr == moveNr {
		effects = append(effects, d.Indicator)
	}
	if d.MoveNr == moveNr {
		o.RemoveStatus(StatusDelayedEffect)
		effects = append(effects, d.Effect)
	}
	return effects
}

func (o *Object) String() string {
	return fmt.Sprintf("%s#%d[%s]%v", o.Type, o.Props.OID, o.Player, o.Coord)
}
