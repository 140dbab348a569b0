package spectate

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/zucenko/hexaroni/model"
)

type ResponseCode int

const (
	SNAPSHOT_READY ResponseCode = iota
	SNAPSHOT_NONE
	SNAPSHOT_OTHER_MATCH
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case SNAPSHOT_READY:
		return http.StatusOK
	case SNAPSHOT_NONE:
		return http.StatusNotFound
	case SNAPSHOT_OTHER_MATCH:
		return http.StatusNotFound
	default:
		panic(h)
	}
}

// SnapshotRequest asks the hub for its latest snapshot, optionally only if
// it belongs to MatchID.
type SnapshotRequest struct {
	MatchID string
	Reply   chan SnapshotResponse
}

type SnapshotResponse struct {
	ResponseCode ResponseCode
	Snapshot     model.BoardSnapshot
}

// WatcherJoin registers an upgraded connection with the hub. Done is closed
// when the hub drops the watcher.
type WatcherJoin struct {
	Conn *websocket.Conn
	Done chan struct{}
}
