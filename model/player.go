package model

import "fmt"

type Player int

const (
	PlayerA Player = iota
	PlayerB
	// God owns tiles and neutral walls. It never moves and is never opposed.
	God
)

func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		panic("no one opposes god")
	}
}

// Competing reports whether p is one of the two sides.
func (p Player) Competing() bool {
	return p == PlayerA || p == PlayerB
}

func (p Player) Name() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	case God:
		return "God"
	default:
		return fmt.Sprintf("N/A(%d)", int(p))
	}
}

func (p Player) String() string {
	return p.Name()
}

func ParsePlayer(s string) (Player, error) {
	switch s {
	case "A", "a":
		return PlayerA, nil
	case "B", "b":
		return PlayerB, nil
	case "God", "god":
		return God, nil
	}
	return God, fmt.Errorf("unknown player %q", s)
}
