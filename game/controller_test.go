package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/hexaroni/model"
)

const openBoard = `
size 7
. . . . . j .
 . D . . . . .
  . . . . . . .
   . . . . . . .
    . . . . . . .
     . . . . . . .
      . . . . . . .
`

const duel = `
size 7
. . . . . . .
 . . . . . . .
  . . . . . . .
   . D . d . . .
    . . . . . . .
     . . . . . . .
      . . . . . . .
`

func TestNewControllerWaits(t *testing.T) {
	c := New()
	require.NotNil(t, c.Board())
	assert.Equal(t, Waiting, c.State().Phase)
	assert.Equal(t, model.God, c.CurrentPlayer())
	assert.False(t, c.State().AllowsMoves())
	assert.Equal(t, 71, c.Board().Len())
}

func TestStartGameOnlyFromWaiting(t *testing.T) {
	c := New()
	c.StartGame(1)
	assert.Equal(t, Countdown, c.State().Phase)
	assert.Panics(t, func() { c.StartGame(2) })
}

func TestCountdownThenPlaying(t *testing.T) {
	c := New()
	c.StartGame(1)
	c.Tick(3.5)
	assert.Equal(t, Countdown, c.State().Phase)
	assert.InDelta(t, 0, c.CountdownLeft(3.5), 1e-9)

	c.Tick(3.6)
	state := c.State()
	assert.Equal(t, Playing, state.Phase)
	assert.Equal(t, model.PlayerA, state.CurrentPlayer)
	assert.Equal(t, 0, state.MoveNr)
	assert.Equal(t, 3.6, state.MoveStart)
	assert.InDelta(t, 4.0, c.MoveTimeLeft(4.6), 1e-9)
}

func TestMovesRejectedBeforePlay(t *testing.T) {
	c := NewGameController(DefaultSettings(), mustLayout(t, openBoard))
	dasher := pieceAt(t, c.Board(), 1, 1)
	m := moveTo(t, c.LegalMoves(dasher), 1, 6)

	c.ApplyMove(m, 0.5, 0.25)
	c.StartGame(1)
	c.ApplyMove(m, 1.5, 0.25)

	assert.True(t, c.Board().Get(dasher.Props.OID).Coord.Equal(dasher.Coord))
	assert.Equal(t, Countdown, c.State().Phase)
}

func TestDasherSlideEndToEnd(t *testing.T) {
	c := playing(t, openBoard)
	dasher := pieceAt(t, c.Board(), 1, 1)
	m := moveTo(t, c.LegalMoves(dasher), 1, 6)
	assert.Len(t, m.Path, 6)

	c.ApplyMove(m, 4, c.Settings().MoveDuration)

	moved := c.Board().Get(dasher.Props.OID)
	assert.True(t, moved.Coord.Equal(model.NewHexCoord(1, 6, 7)))
	s, ok := moved.Status(model.StatusMove)
	require.True(t, ok)
	assert.Equal(t, model.ScreenCoordFromHex(model.NewHexCoord(1, 1, 7)), s.From)
	assert.Equal(t, model.ScreenCoordFromHex(model.NewHexCoord(1, 6, 7)), s.To)
	assert.Equal(t, 0.25, s.Duration)

	assert.Equal(t, model.PlayerB, c.CurrentPlayer())
	assert.Equal(t, 1, c.State().MoveNr)
	assert.Equal(t, 4.0, c.State().MoveStart)
}

func TestOutOfTurnMoveIgnored(t *testing.T) {
	c := playing(t, openBoard)
	jumper := pieceAt(t, c.Board(), 5, 0)
	moves := c.LegalMoves(jumper)
	require.NotEmpty(t, moves)

	c.ApplyMove(moves[0], 4, 0.25)
	assert.True(t, c.Board().Get(jumper.Props.OID).Coord.Equal(jumper.Coord))
	assert.Equal(t, model.PlayerA, c.CurrentPlayer())
	assert.Equal(t, 0, c.State().MoveNr)
}

func TestApplyMoveIsDeterministic(t *testing.T) {
	const layout = `
size 7
. . . . . . j
 . . . . . . .
  . . . . . . .
   . D . d . . .
    . . . . . . .
     . . . . . . .
      . . . . . . .
`
	early := playing(t, layout)
	late := NewGameController(DefaultSettings(), mustLayout(t, layout))
	late.StartGame(30)
	late.Tick(33)

	m := moveTo(t, early.LegalMoves(pieceAt(t, early.Board(), 1, 3)), 3, 3)
	early.ApplyMove(m, 4, 0.25)
	late.ApplyMove(m, 34, 1.5)

	type placement struct {
		coord model.HexCoord
		dead  bool
	}
	snapshot := func(c *GameController) map[int]placement {
		out := map[int]placement{}
		for _, o := range c.Board().Objects() {
			out[o.Props.OID] = placement{o.Coord, o.Props.Dead}
		}
		return out
	}
	assert.Equal(t, snapshot(early), snapshot(late))
	assert.Equal(t, model.Dasher, late.Board().Contents(model.NewHexCoord(3, 3, 7)).Type)
}

func TestCaptureWinsGame(t *testing.T) {
	c := playing(t, duel)
	victim := pieceAt(t, c.Board(), 3, 3)
	m := moveTo(t, c.LegalMoves(pieceAt(t, c.Board(), 1, 3)), 3, 3)

	c.ApplyMove(m, 4, 0.25)

	corpse := c.Board().Get(victim.Props.OID)
	require.NotNil(t, corpse)
	assert.True(t, corpse.Props.Dead)
	killed, ok := corpse.Status(model.StatusKilled)
	require.True(t, ok)
	assert.InDelta(t, 4+0.4*DasherKillFrac, killed.Start, 1e-9)
	assert.Greater(t, killed.Knockback.X, 0.0)

	assert.Equal(t, GameOver, c.State().Phase)
	winner, ok := c.State().WinnerOf()
	assert.True(t, ok)
	assert.Equal(t, model.PlayerA, winner)
	assert.Equal(t, model.PlayerA, c.CurrentPlayer())
	assert.False(t, c.State().AllowsMoves())

	// game over is terminal
	dasher := pieceAt(t, c.Board(), 3, 3)
	c.ApplyMove(moveTo(t, c.LegalMoves(dasher), 0, 3), 5, 0.25)
	assert.True(t, c.Board().Get(dasher.Props.OID).Coord.Equal(model.NewHexCoord(3, 3, 7)))
	c.Tick(100)
	assert.Equal(t, GameOver, c.State().Phase)
}

func TestCapturedPieceCollected(t *testing.T) {
	c := playing(t, duel)
	victim := pieceAt(t, c.Board(), 3, 3)
	c.ApplyMove(moveTo(t, c.LegalMoves(pieceAt(t, c.Board(), 1, 3)), 3, 3), 4, 0.25)

	// killed status runs from 4.26 to 4.66
	c.Tick(4.5)
	assert.NotNil(t, c.Board().Get(victim.Props.OID))
	c.Tick(4.7)
	assert.Nil(t, c.Board().Get(victim.Props.OID))
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		kill   []model.Player
		winner model.Player
		ok     bool
	}{
		{"both alive", nil, model.God, false},
		{"B wiped out", []model.Player{model.PlayerB}, model.PlayerA, true},
		{"A wiped out", []model.Player{model.PlayerA}, model.PlayerB, true},
		{"both wiped out", []model.Player{model.PlayerA, model.PlayerB}, model.God, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, p := range tt.kill {
				for _, o := range c.Board().LivingPieces(p) {
					o.SetKilled(nil)
				}
			}
			winner, ok := c.Winner()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.winner, winner)
		})
	}
}

func TestTimeoutForfeitsMove(t *testing.T) {
	c := playing(t, openBoard)
	c.Tick(8)
	assert.Equal(t, model.PlayerA, c.CurrentPlayer())

	c.Tick(8.5)
	assert.Equal(t, model.PlayerB, c.CurrentPlayer())
	assert.Equal(t, 1, c.State().MoveNr)
	assert.Equal(t, 8.5, c.State().MoveStart)
	assert.Equal(t, Playing, c.State().Phase)
}

func TestTileDecayWobblesThenKills(t *testing.T) {
	c := playing(t, `
size 3
d . .
 . D .
  . . .
`)
	corner := model.NewHexCoord(2, 2, 3)
	edge := model.NewHexCoord(1, 0, 3)
	victim := pieceAt(t, c.Board(), 0, 0)
	require.Equal(t, 26, Lifespan(corner, c.Settings().IndicatorLead))

	now := 3.0
	timeout := func() {
		now += 6
		c.Tick(now)
	}
	for nr := 1; nr < 24; nr++ {
		timeout()
	}
	assert.Equal(t, 23, c.State().MoveNr)
	assert.False(t, c.Board().TileAt(corner).HasStatus(model.StatusWobble))

	timeout()
	assert.True(t, c.Board().TileAt(corner).HasStatus(model.StatusWobble))
	assert.False(t, c.Board().TileAt(edge).HasStatus(model.StatusWobble))

	timeout()
	timeout()
	tile := c.Board().TileAt(corner)
	assert.True(t, tile.Props.Dead)
	assert.True(t, tile.HasStatus(model.StatusFalling))
	assert.False(t, tile.HasStatus(model.StatusWobble))
	assert.True(t, c.Board().Get(victim.Props.OID).Props.Dead)
	assert.False(t, c.Board().TileAt(edge).Props.Dead)

	assert.Equal(t, GameOver, c.State().Phase)
	winner, _ := c.State().WinnerOf()
	assert.Equal(t, model.PlayerA, winner)

	c.Tick(now + c.Settings().FallDuration + 0.1)
	assert.Nil(t, c.Board().TileAt(corner))
	assert.Nil(t, c.Board().Get(victim.Props.OID))
	assert.NotNil(t, c.Board().TileAt(edge))
}

func TestPickingByPosition(t *testing.T) {
	c := playing(t, openBoard)
	at := model.ScreenCoordFromHex(model.NewHexCoord(1, 1, 7))

	piece, ok := c.PieceAtPos(at.Add(model.ScreenCoord{X: 0.4}))
	require.True(t, ok)
	assert.Equal(t, model.Dasher, piece.Type)

	tile, ok := c.TileAtPos(at)
	require.True(t, ok)
	assert.Equal(t, 8, tile.Props.OID)

	_, ok = c.PieceAtPos(model.ScreenCoordFromHex(model.NewHexCoord(4, 4, 7)))
	assert.False(t, ok)
	_, ok = c.TileAtPos(model.ScreenCoord{X: -50, Y: -50})
	assert.False(t, ok)

	c.Board().Get(piece.Props.OID).SetKilled(nil)
	_, ok = c.PieceAtPos(at)
	assert.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	c := playing(t, openBoard)
	s := c.Snapshot(3.5)
	assert.Equal(t, c.ID.String(), s.MatchID)
	assert.Equal(t, "PLAYING", s.Phase)
	assert.Equal(t, "A", s.CurrentPlayer)
	assert.Empty(t, s.Winner)
	assert.Equal(t, 7, s.Size)
	assert.Len(t, s.Objects, c.Board().Len())
}
