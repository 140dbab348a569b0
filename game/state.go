package game

import (
	"fmt"

	"github.com/zucenko/hexaroni/model"
)

type Phase int

const (
	Waiting Phase = iota
	Countdown
	Playing
	GameOver
)

func (p Phase) Name() string {
	switch p {
	case Waiting:
		return "WAITING"
	case Countdown:
		return "COUNTDOWN"
	case Playing:
		return "PLAYING"
	case GameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", int(p))
	}
}

// GameState is the turn/timer state. Only the fields of the current Phase
// are meaningful: StartedAt for Countdown, CurrentPlayer/MoveStart/MoveNr
// for Playing and Winner for GameOver.
type GameState struct {
	Phase         Phase
	StartedAt     float64
	CurrentPlayer model.Player
	MoveStart     float64
	MoveNr        int
	Winner        model.Player
}

func WaitingState() GameState {
	return GameState{Phase: Waiting}
}

func CountdownState(startedAt float64) GameState {
	return GameState{Phase: Countdown, StartedAt: startedAt}
}

func PlayingState(current model.Player, moveStart float64, moveNr int) GameState {
	return GameState{Phase: Playing, CurrentPlayer: current, MoveStart: moveStart, MoveNr: moveNr}
}

func GameOverState(winner model.Player) GameState {
	return GameState{Phase: GameOver, Winner: winner}
}

func (s GameState) AllowsMoves() bool {
	return s.Phase == Playing
}

// OnApplyMove hands the turn to the opponent and restarts the move timer.
// States other than Playing are returned unchanged.
func (s GameState) OnApplyMove(now float64) GameState {
	if s.Phase != Playing {
		return s
	}
	return PlayingState(s.CurrentPlayer.Opponent(), now, s.MoveNr+1)
}

func (s GameState) WinnerOf() (model.Player, bool) {
	if s.Phase == GameOver {
		return s.Winner, true
	}
	return model.God, false
}

func (s GameState) String() string {
	switch s.Phase {
	case Countdown:
		return fmt.Sprintf("%s(started=%.2f)", s.Phase.Name(), s.StartedAt)
	case Playing:
		return fmt.Sprintf("%s(player=%s move=%d)", s.Phase.Name(), s.CurrentPlayer, s.MoveNr)
	case GameOver:
		return fmt.Sprintf("%s(winner=%s)", s.Phase.Name(), s.Winner)
	default:
		return s.Phase.Name()
	}
}
