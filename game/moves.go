package game

import (
	"fmt"

	"github.com/zucenko/hexaroni/model"
)

// Stage of the move animation at which a capture lands.
const (
	DasherKillFrac = 0.65
	JumperKillFrac = 0.45
	WallKillFrac   = 0.5
)

// MoveHeight is the arc height of a piece's move animation.
func MoveHeight(t model.ObjectType) float64 {
	if t == model.Jumper {
		return 0.6
	}
	return 0
}

// LegalMoves returns every legal move of obj on board, at most one per
// distinct path. Tiles, God-owned pieces and (unless rules.WallsMove) walls
// have none.
func LegalMoves(obj model.Object, board *model.Board, rules Rules) []model.Move {
	if !obj.Player.Competing() || obj.Props.Dead {
		return nil
	}
	var moves []model.Move
	switch obj.Type {
	case model.Dasher:
		moves = dasherMoves(obj, board, rules)
	case model.Jumper:
		moves = jumperMoves(obj, board)
	case model.Wall:
		if rules.WallsMove {
			moves = wallMoves(obj, board)
		}
	}
	return dedupe(moves)
}

// tileAvailableForStep tells if the tile on c exists, is not dead and holds
// no living piece other than one owned by tolerated.
func tileAvailableForStep(c model.HexCoord, board *model.Board, tolerated model.Player) bool {
	tile := board.TileAt(c)
	if tile == nil || tile.Props.Dead {
		return false
	}
	occupant := board.Contents(c)
	return occupant == nil || occupant.OwnedBy(tolerated)
}

func dasherMoves(obj model.Object, board *model.Board, rules Rules) []model.Move {
	opponent := obj.Player.Opponent()
	killer := obj.Clone()
	var moves []model.Move
	for _, dir := range obj.Coord.Directions() {
		path := []model.HexCoord{obj.Coord}
		landable := 1
		var victim *model.Object
		curr := obj.Coord
		for {
			next, ok := curr.Neighbor(dir, 1)
			if !ok {
				break
			}
			if tileAvailableForStep(next, board, opponent) {
				path = append(path, next)
				landable = len(path)
				if occupant := board.Contents(next); occupant != nil {
					victim = occupant
					break
				}
			} else if rules.DasherCanFly && board.TileAt(next) == nil {
				path = append(path, next)
			} else {
				break
			}
			curr = next
		}
		// missing tiles can be flown over but not landed on; dead ones block
		path = path[:landable]
		if len(path) < 2 {
			continue
		}
		var effects []model.Effect
		if victim != nil {
			effects = append(effects, model.KillEffect{
				Victim:             victim.Clone(),
				Killer:             &killer,
				AnimationDelayFrac: dasherDelayFrac(obj.Coord, path[len(path)-1], victim.Coord),
			})
		}
		moves = append(moves, model.NewMove(obj.Clone(), path, effects))
	}
	return moves
}

// dasherDelayFrac places a victim's death in the move animation by how far
// along the slide it stands.
func dasherDelayFrac(start, end, victim model.HexCoord) float64 {
	a := model.ScreenCoordFromHex(start)
	full := a.DistFrom(model.ScreenCoordFromHex(end))
	if full == 0 {
		return 0
	}
	return DasherKillFrac * a.DistFrom(model.ScreenCoordFromHex(victim)) / full
}

func jumperMoves(obj model.Object, board *model.Board) []model.Move {
	opponent := obj.Player.Opponent()
	killer := obj.Clone()
	var moves []model.Move
	for _, dir := range obj.Coord.Directions() {
		inter, ok := obj.Coord.Neighbor(dir, 2)
		if !ok {
			continue
		}
		for _, hook := range []int{(dir + 5) % 6, (dir + 1) % 6} {
			target, ok := inter.Neighbor(hook, 1)
			if !ok || !tileAvailableForStep(target, board, opponent) {
				continue
			}
			var effects []model.Effect
			if occupant := board.Contents(target); occupant != nil {
				effects = append(effects, model.KillEffect{
					Victim:             occupant.Clone(),
					Killer:             &killer,
					AnimationDelayFrac: JumperKillFrac,
				})
			}
			moves = append(moves, model.NewMove(obj.Clone(), []model.HexCoord{obj.Coord, inter, target}, effects))
		}
	}
	return moves
}

func wallMoves(obj model.Object, board *model.Board) []model.Move {
	opponent := obj.Player.Opponent()
	killer := obj.Clone()
	var moves []model.Move
	for _, dir := range obj.Coord.Directions() {
		target, ok := obj.Coord.Neighbor(dir, 1)
		if !ok || !tileAvailableForStep(target, board, opponent) {
			continue
		}
		var effects []model.Effect
		if occupant := board.Contents(target); occupant != nil {
			effects = append(effects, model.KillEffect{
				Victim:             occupant.Clone(),
				Killer:             &killer,
				AnimationDelayFrac: WallKillFrac,
			})
		}
		moves = append(moves, model.NewMove(obj.Clone(), []model.HexCoord{obj.Coord, target}, effects))
	}
	return moves
}

func dedupe(moves []model.Move) []model.Move {
	seen := make(map[string]bool, len(moves))
	out := moves[:0]
	for _, m := range moves {
		key := fmt.Sprint(m.Path)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}
