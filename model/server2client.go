package model

// BoardSnapshot is the read-only view of a match sent to spectators.
type BoardSnapshot struct {
	MatchID       string       `json:"match_id"`
	Phase         string       `json:"phase"`
	CurrentPlayer string       `json:"current_player"`
	MoveNr        int          `json:"move_nr"`
	Winner        string       `json:"winner,omitempty"`
	Size          int          `json:"size"`
	Time          float64      `json:"time"`
	Objects       []ObjectView `json:"objects"`
}

type ObjectView struct {
	OID      int      `json:"oid"`
	Type     string   `json:"type"`
	Player   string   `json:"player"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Dead     bool     `json:"dead"`
	Statuses []string `json:"statuses,omitempty"`
}

func NewObjectView(o *Object) ObjectView {
	v := ObjectView{
		OID:    o.Props.OID,
		Type:   o.Type.Name(),
		Player: o.Player.Name(),
		X:      o.Coord.X,
		Y:      o.Coord.Y,
		Dead:   o.Props.Dead,
	}
	for _, s := range o.Statuses.Sorted() {
		v.Statuses = append(v.Statuses, s.Kind.Name())
	}
	return v
}

func ObjectViews(b *Board) []ObjectView {
	views := make([]ObjectView, 0, b.Len())
	for _, o := range b.Objects() {
		views = append(views, NewObjectView(o))
	}
	return views
}
