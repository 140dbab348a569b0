package spectate

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/hexaroni/model"
)

// Hub fans board snapshots of a running match out to spectators. All of its
// state is owned by Loop; everything else talks to it through channels.
type Hub struct {
	Snapshots chan model.BoardSnapshot
	Requests  chan SnapshotRequest
	Joins     chan WatcherJoin
	Errors    chan uuid.UUID
	Upgrader  *websocket.Upgrader

	quit      chan struct{}
	closeOnce sync.Once
	latest    *model.BoardSnapshot
	watchers  map[uuid.UUID]*Watcher
}

func NewHub() *Hub {
	return &Hub{
		Snapshots: make(chan model.BoardSnapshot, 16),
		Requests:  make(chan SnapshotRequest),
		Joins:     make(chan WatcherJoin),
		Errors:    make(chan uuid.UUID),
		Upgrader:  &websocket.Upgrader{},
		quit:      make(chan struct{}),
		watchers:  make(map[uuid.UUID]*Watcher),
	}
}

// Publish hands s to the hub without blocking the caller. It reports false
// when the hub is behind and s was dropped.
func (h *Hub) Publish(s model.BoardSnapshot) bool {
	select {
	case h.Snapshots <- s:
		return true
	default:
		log.WithField("match", s.MatchID).Debug("Hub.Publish snapshot dropped")
		return false
	}
}

// Close stops Loop and disconnects every watcher.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.quit) })
}

func (h *Hub) Loop() {
	log.Info("Hub.Loop starting")
	for {
		select {
		case s := <-h.Snapshots:
			snapshot := s
			h.latest = &snapshot
			for _, w := range h.watchers {
				w.offer(snapshot)
			}
		case req := <-h.Requests:
			h.answer(req)
		case join := <-h.Joins:
			w := newWatcher(h, join.Conn, join.Done)
			h.watchers[w.ID] = w
			log.WithField("watcher", w.ID.String()).Info("Hub.Loop watcher joined")
			go w.LoopChannelRead()
			go w.LoopChannelWrite()
			if h.latest != nil {
				w.offer(*h.latest)
			}
		case id := <-h.Errors:
			w, ok := h.watchers[id]
			if !ok {
				continue
			}
			log.WithField("watcher", id.String()).Info("Hub.Loop watcher left")
			w.State = W_CLOSED
			delete(h.watchers, id)
			w.stop()
		case <-h.quit:
			log.WithField("watchers", len(h.watchers)).Info("Hub.Loop stopping")
			for id, w := range h.watchers {
				delete(h.watchers, id)
				w.stop()
			}
			return
		}
	}
}

func (h *Hub) answer(req SnapshotRequest) {
	resp := SnapshotResponse{ResponseCode: SNAPSHOT_NONE}
	switch {
	case h.latest == nil:
	case req.MatchID != "" && req.MatchID != h.latest.MatchID:
		resp.ResponseCode = SNAPSHOT_OTHER_MATCH
	default:
		resp.ResponseCode = SNAPSHOT_READY
		resp.Snapshot = *h.latest
	}
	req.Reply <- resp
}

// report tells the hub that watcher id is gone. It gives up once the hub
// has stopped.
func (h *Hub) report(id uuid.UUID) {
	select {
	case h.Errors <- id:
	case <-h.quit:
	}
}
