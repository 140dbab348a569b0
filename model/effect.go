package model

import "fmt"

// Effect is a mutation request produced by move resolution or by an
// object's per-move tick, applied by the game controller.
type Effect interface {
	// ApplyingStatus returns the status to attach to whatever the effect
	// applies to, if any.
	ApplyingStatus(now, killDuration float64) (Status, bool)
}

// KillEffect marks Victim dead. Killer is nil for kills without a culprit.
type KillEffect struct {
	Victim Object
	Killer *Object
	// AnimationDelayFrac is the stage of the move animation at which the kill lands.
	AnimationDelayFrac float64
}

func (e KillEffect) ApplyingStatus(now, killDuration float64) (Status, bool) {
	var knockback ScreenCoord
	if e.Killer != nil {
		knockback = ScreenCoordFromHex(e.Victim.Coord).Sub(ScreenCoordFromHex(e.Killer.Coord))
	}
	start := now + killDuration*e.AnimationDelayFrac
	return NewKilledStatus(knockback, start, killDuration), true
}

func (e KillEffect) String() string {
	return fmt.Sprintf("Kill{victim=%d at %v frac=%.2f}", e.Victim.Props.OID, e.Victim.Coord, e.AnimationDelayFrac)
}

// KillAllOnEffect kills every object on Coord, tile included, attaching
// Apply (restarted at the application time) if set.
type KillAllOnEffect struct {
	Coord HexCoord
	Apply *Status
}

func (e KillAllOnEffect) ApplyingStatus(now, _ float64) (Status, bool) {
	if e.Apply == nil {
		return Status{}, false
	}
	s := *e.Apply
	s.Start = now
	return s, true
}

func (e KillAllOnEffect) String() string {
	return fmt.Sprintf("KillAllOn{%v}", e.Coord)
}

// SetStatusEffect attaches Status to the object with OID.
type SetStatusEffect struct {
	OID    int
	Status Status
}

func (e SetStatusEffect) ApplyingStatus(now, _ float64) (Status, bool) {
	s := e.Status
	s.Start = now
	return s, true
}

func (e SetStatusEffect) String() string {
	return fmt.Sprintf("SetStatus{oid=%d %s}", e.OID, e.Status.Kind)
}

type NoOpEffect struct{}

func (NoOpEffect) ApplyingStatus(float64, float64) (Status, bool) {
	return Status{}, false
}

func (NoOpEffect) String() string {
	return "NoOp"
}
