package game

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/hexaroni/model"
)

// GameController owns the board and the turn state. It is driven by a single
// frame loop: the caller supplies the time (seconds since start) to every
// call and submits moves through ApplyMove only.
type GameController struct {
	ID       uuid.UUID
	board    *model.Board
	state    GameState
	settings Settings
	log      *log.Entry
}

func NewGameController(settings Settings, board *model.Board) *GameController {
	id := uuid.New()
	return &GameController{
		ID:       id,
		board:    board,
		state:    WaitingState(),
		settings: settings,
		log:      log.WithField("match", id.String()),
	}
}

// New creates a controller on the default board with default settings.
func New() *GameController {
	settings := DefaultSettings()
	return NewGameController(settings, TestSquare(settings))
}

func (c *GameController) Board() *model.Board {
	return c.board
}

func (c *GameController) State() GameState {
	return c.state
}

func (c *GameController) Settings() Settings {
	return c.settings
}

// StartGame begins the pre-game countdown. Calling it outside Waiting is a
// caller bug and panics.
func (c *GameController) StartGame(now float64) {
	if c.state.Phase != Waiting {
		panic(fmt.Sprintf("attempted to start game from state: %v", c.state))
	}
	c.state = CountdownState(now)
	c.log.WithField("countdown", c.settings.GameStartCountdown).Info("GameController.StartGame countdown started")
}

// CurrentPlayer is the player to move, the winner once the game is over and
// God before play begins.
func (c *GameController) CurrentPlayer() model.Player {
	switch c.state.Phase {
	case Playing:
		return c.state.CurrentPlayer
	case GameOver:
		return c.state.Winner
	default:
		return model.God
	}
}

// Winner reports the side left standing: A when B has no living pieces, B
// when A has none and God when both are wiped out.
func (c *GameController) Winner() (model.Player, bool) {
	aAlive := c.board.Alive(model.PlayerA)
	bAlive := c.board.Alive(model.PlayerB)
	switch {
	case !aAlive && !bAlive:
		return model.God, true
	case !bAlive:
		return model.PlayerA, true
	case !aAlive:
		return model.PlayerB, true
	}
	return model.God, false
}

func (c *GameController) LegalMoves(obj model.Object) []model.Move {
	return LegalMoves(obj, c.board, c.settings.Rules)
}

// ApplyMove applies m if moves are allowed and the moving piece belongs to
// the current player; anything else is silently dropped. Reachability is
// not re-validated: m is expected to come from LegalMoves on this board.
func (c *GameController) ApplyMove(m model.Move, now, moveDuration float64) {
	entry := c.log.WithField("move", m.String())
	if !c.state.AllowsMoves() || !m.Object.OwnedBy(c.CurrentPlayer()) {
		entry.WithField("state", c.state.String()).Debug("GameController.ApplyMove rejected")
		return
	}
	obj := c.board.Get(m.Object.Props.OID)
	if obj == nil || obj.Props.Dead {
		entry.Debug("GameController.ApplyMove piece gone")
		return
	}
	c.board.MoveTo(obj.Props.OID, m.Target(), now, moveDuration, MoveHeight(obj.Type))

	next := c.state.OnApplyMove(now)
	effects := make([]model.Effect, 0, len(m.Effects))
	effects = append(effects, m.Effects...)
	effects = append(effects, c.tickObjects(next.MoveNr)...)
	c.applyEffects(effects, now)
	entry.WithField("effects", len(effects)).Debug("GameController.ApplyMove applied")
	c.advance(next)
}

// Tick runs every frame: it collects dead objects whose statuses have run
// out, prunes expired statuses, ends the countdown when due and forfeits the
// current player's move once the move timeout has elapsed.
func (c *GameController) Tick(now float64) {
	var settled []int
	for _, o := range c.board.Objects() {
		if o.Props.Dead && o.Settled(now) {
			settled = append(settled, o.Props.OID)
			continue
		}
		o.PruneExpired(now)
	}
	for _, oid := range settled {
		c.board.Remove(oid)
	}

	switch c.state.Phase {
	case Countdown:
		if now-c.state.StartedAt > c.settings.GameStartCountdown {
			c.state = PlayingState(c.settings.StartingPlayer, now, 0)
			c.log.WithField("player", c.state.CurrentPlayer).Info("GameController.Tick countdown over, playing")
		}
	case Playing:
		if now-c.state.MoveStart > c.settings.PlayMoveTimeout {
			c.log.WithFields(log.Fields{
				"player":  c.state.CurrentPlayer,
				"move_nr": c.state.MoveNr,
			}).Info("GameController.Tick move timed out")
			next := c.state.OnApplyMove(now)
			c.applyEffects(c.tickObjects(next.MoveNr), now)
			c.advance(next)
		}
	}
}

func (c *GameController) advance(next GameState) {
	if winner, ok := c.Winner(); ok {
		c.state = GameOverState(winner)
		c.log.WithField("winner", winner).Info("GameController game over")
		return
	}
	c.state = next
}

func (c *GameController) tickObjects(moveNr int) []model.Effect {
	var effects []model.Effect
	for _, o := range c.board.Objects() {
		if o.Props.Dead {
			continue
		}
		effects = append(effects, o.Tick(moveNr)...)
	}
	return effects
}

// applyEffects applies effects once each, in order.
func (c *GameController) applyEffects(effects []model.Effect, now float64) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case model.KillEffect:
			victim := c.board.Get(e.Victim.Props.OID)
			if victim == nil || victim.Props.Dead {
				continue
			}
			status, _ := e.ApplyingStatus(now, c.settings.KillDuration)
			victim.SetKilled(&status)
		case model.KillAllOnEffect:
			var status *model.Status
			if s, ok := e.ApplyingStatus(now, c.settings.KillDuration); ok {
				status = &s
			}
			c.board.KillAllAt(e.Coord, status)
		case model.SetStatusEffect:
			obj := c.board.Get(e.OID)
			if obj == nil {
				continue
			}
			status, _ := e.ApplyingStatus(now, c.settings.KillDuration)
			obj.AddStatus(status)
		case model.NoOpEffect:
			continue
		default:
			c.log.Warnf("GameController.applyEffects unknown effect %T", effect)
			continue
		}
		c.log.WithField("effect", effect).Debug("GameController.applyEffects applied")
	}
}

// MoveTimeLeft is the time the current player has left, zero outside Playing.
func (c *GameController) MoveTimeLeft(now float64) float64 {
	if c.state.Phase != Playing {
		return 0
	}
	left := c.settings.PlayMoveTimeout - (now - c.state.MoveStart)
	if left < 0 {
		return 0
	}
	return left
}

// CountdownLeft is the time until play begins, zero outside Countdown.
func (c *GameController) CountdownLeft(now float64) float64 {
	if c.state.Phase != Countdown {
		return 0
	}
	left := c.settings.GameStartCountdown - (now - c.state.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// PieceAtPos returns a snapshot of the living piece nearest to pos among
// those whose hit radius contains it.
func (c *GameController) PieceAtPos(pos model.ScreenCoord) (model.Object, bool) {
	return closest(pos, c.board.Pieces())
}

// TileAtPos is PieceAtPos for tiles.
func (c *GameController) TileAtPos(pos model.ScreenCoord) (model.Object, bool) {
	return closest(pos, c.board.Tiles())
}

func closest(pos model.ScreenCoord, objects []*model.Object) (model.Object, bool) {
	type hit struct {
		obj  *model.Object
		dist float64
	}
	var hits []hit
	for _, o := range objects {
		if o.Props.Dead {
			continue
		}
		d := pos.DistFrom(o.ScreenCoord())
		if d < o.Props.Size {
			hits = append(hits, hit{o, d})
		}
	}
	if len(hits) == 0 {
		return model.Object{}, false
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	return hits[0].obj.Clone(), true
}

// Snapshot is the read-only view of the match handed to spectators.
func (c *GameController) Snapshot(now float64) model.BoardSnapshot {
	s := model.BoardSnapshot{
		MatchID:       c.ID.String(),
		Phase:         c.state.Phase.Name(),
		CurrentPlayer: c.CurrentPlayer().Name(),
		MoveNr:        c.state.MoveNr,
		Size:          c.board.Size,
		Time:          now,
		Objects:       model.ObjectViews(c.board),
	}
	if w, ok := c.state.WinnerOf(); ok {
		s.Winner = w.Name()
	}
	return s
}
