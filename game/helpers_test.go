package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zucenko/hexaroni/model"
)

func mustLayout(t *testing.T, layout string) *model.Board {
	t.Helper()
	b, err := ReadLayout(strings.NewReader(layout), DefaultSettings())
	require.NoError(t, err)
	return b
}

func pieceAt(t *testing.T, b *model.Board, x, y int) model.Object {
	t.Helper()
	o := b.Contents(model.NewHexCoord(x, y, b.Size))
	require.NotNil(t, o, "no piece at (%d,%d)", x, y)
	return o.Clone()
}

func moveTo(t *testing.T, moves []model.Move, x, y int) model.Move {
	t.Helper()
	for _, m := range moves {
		if m.Target().X == x && m.Target().Y == y {
			return m
		}
	}
	require.FailNow(t, "no move", "no move to (%d,%d) among %v", x, y, moves)
	return model.Move{}
}

func targets(moves []model.Move) []model.HexCoord {
	var out []model.HexCoord
	for _, m := range moves {
		out = append(out, m.Target())
	}
	return out
}

// playing returns a controller on layout that entered Playing at t=3.
func playing(t *testing.T, layout string) *GameController {
	t.Helper()
	c := NewGameController(DefaultSettings(), mustLayout(t, layout))
	c.StartGame(0)
	c.Tick(3)
	require.Equal(t, Playing, c.State().Phase)
	return c
}
