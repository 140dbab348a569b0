package spectate

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
)

const timeout = 200 * time.Millisecond

// HandleBoard answers with the latest snapshot as JSON. With a :match
// route parameter it answers only for that match.
func (h *Hub) HandleBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := SnapshotRequest{
			MatchID: way.Param(r.Context(), "match"),
			Reply:   make(chan SnapshotResponse, 1),
		}
		select {
		case h.Requests <- req:
		case <-time.After(timeout):
			log.Warn("HandleBoard hub TIMEOUTED")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var resp SnapshotResponse
		select {
		case resp = <-req.Reply:
		case <-time.After(timeout):
			log.Warn("HandleBoard reply TIMEOUTED")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if resp.ResponseCode != SNAPSHOT_READY {
			w.WriteHeader(resp.ResponseCode.ToHttp())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp.Snapshot); err != nil {
			log.WithError(err).Warn("HandleBoard cant encode")
		}
	}
}

// HandleWatch upgrades to a websocket and streams snapshots until either
// side goes away.
func (h *Hub) HandleWatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		con, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client
			log.WithError(err).Warn("HandleWatch websocket upgrade failed")
			return
		}
		defer con.Close()

		done := make(chan struct{})
		select {
		case h.Joins <- WatcherJoin{Conn: con, Done: done}:
		case <-time.After(timeout):
			log.Warn("HandleWatch join TIMEOUTED")
			return
		}
		<-done
	}
}
