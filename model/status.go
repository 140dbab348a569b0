package model

import (
	"fmt"
	"sort"
)

type StatusKind int

const (
	StatusSelected StatusKind = iota
	StatusDragged
	StatusHovered
	StatusTargeted
	StatusKilled
	StatusMove
	StatusWobble
	StatusFalling
	StatusDelayedEffect
)

func (k StatusKind) Name() string {
	switch k {
	case StatusSelected:
		return "Selected"
	case StatusDragged:
		return "Dragged"
	case StatusHovered:
		return "Hovered"
	case StatusTargeted:
		return "Targeted"
	case StatusKilled:
		return "Killed"
	case StatusMove:
		return "Move"
	case StatusWobble:
		return "Wobble"
	case StatusFalling:
		return "Falling"
	case StatusDelayedEffect:
		return "DelayedEffect"
	default:
		return fmt.Sprintf("N/A(%d)", int(k))
	}
}

func (k StatusKind) String() string {
	return k.Name()
}

// Status is a marker attached to an Object. Only the fields belonging to
// Kind are meaningful. A status with a positive Duration expires at
// Start+Duration; a zero Duration never expires by time and has to be
// removed explicitly.
type Status struct {
	Kind StatusKind

	// Killed
	Knockback ScreenCoord
	// Move
	From, To ScreenCoord
	Height   float64
	// Wobble
	Amplitude, Speed float64
	// DelayedEffect
	Delayed *DelayedEffect

	Start    float64
	Duration float64
}

// DelayedEffect fires Effect when the move counter reaches MoveNr. If
// Indicator is set it is fired first, at IndicatorMoveNr.
type DelayedEffect struct {
	MoveNr          int
	Effect          Effect
	IndicatorMoveNr int
	Indicator       Effect
}

func NewStatus(kind StatusKind) Status {
	return Status{Kind: kind}
}

func NewMoveStatus(from, to ScreenCoord, start, duration, height float64) Status {
	return Status{Kind: StatusMove, From: from, To: to, Height: height, Start: start, Duration: duration}
}

func NewKilledStatus(knockback ScreenCoord, start, duration float64) Status {
	return Status{Kind: StatusKilled, Knockback: knockback, Start: start, Duration: duration}
}

func NewWobbleStatus(amplitude, speed float64) Status {
	return Status{Kind: StatusWobble, Amplitude: amplitude, Speed: speed}
}

func NewDelayedEffectStatus(moveNr int, effect Effect) Status {
	return Status{Kind: StatusDelayedEffect, Delayed: &DelayedEffect{MoveNr: moveNr, Effect: effect}}
}

func NewDelayedEffectWithIndicator(moveNr int, effect Effect, indicatorMoveNr int, indicator Effect) Status {
	return Status{Kind: StatusDelayedEffect, Delayed: &DelayedEffect{
		MoveNr:          moveNr,
		Effect:          effect,
		IndicatorMoveNr: indicatorMoveNr,
		Indicator:       indicator,
	}}
}

func (s Status) WithTimes(start, duration float64) Status {
	s.Start = start
	s.Duration = duration
	return s
}

func (s Status) RestartedAt(start float64) Status {
	if !s.Expiring() {
		panic(fmt.Sprintf("restarted %v which has no duration", s.Kind))
	}
	s.Start = start
	return s
}

func (s Status) Expiring() bool {
	return s.Duration > 0
}

func (s Status) IsExpired(now float64) bool {
	return s.Expiring() && now > s.Start+s.Duration
}

// Progress is the fraction of the status lifetime elapsed at now, clamped to
// [0,1]. Statuses that never expire report 0.
func (s Status) Progress(now float64) float64 {
	if !s.Expiring() {
		return 0
	}
	p := (now - s.Start) / s.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (s Status) String() string {
	if s.Expiring() {
		return fmt.Sprintf("%s[%.2f+%.2f]", s.Kind, s.Start, s.Duration)
	}
	return s.Kind.Name()
}

// Statuses holds at most one status per kind.
type Statuses map[StatusKind]Status

func (ss Statuses) Clone() Statuses {
	out := make(Statuses, len(ss))
	for k, s := range ss {
		out[k] = s
	}
	return out
}

// Sorted returns the statuses in kind order.
func (ss Statuses) Sorted() []Status {
	out := make([]Status, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
