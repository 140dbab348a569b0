package spectate

import (
	"encoding/gob"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/hexaroni/model"
)

type WatcherState int

const (
	W_WATCH WatcherState = iota + 1
	W_CLOSED
)

func (ws WatcherState) Name() string {
	switch ws {
	case W_WATCH:
		return "WATCH"
	case W_CLOSED:
		return "CLOSED"
	default:
		return "N/A"
	}
}

// Watcher is one spectator connection. Snapshots are written as gob
// encoded binary messages; anything the spectator sends is discarded.
type Watcher struct {
	State WatcherState
	ID    uuid.UUID
	Conn  *websocket.Conn
	// Done is closed once the hub has let go of the watcher.
	Done chan struct{}

	MessagesToSend chan model.BoardSnapshot

	hub *Hub
	log *log.Entry

	DebugInMessages  int
	DebugOutMessages int
	DebugDropped     int
}

func newWatcher(hub *Hub, conn *websocket.Conn, done chan struct{}) *Watcher {
	id := uuid.New()
	w := &Watcher{
		State:          W_WATCH,
		ID:             id,
		Conn:           conn,
		Done:           done,
		MessagesToSend: make(chan model.BoardSnapshot, 10),
		hub:            hub,
		log:            log.WithField("watcher", id.String()),
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	return w
}

// offer queues s unless the watcher is too slow to keep up.
func (w *Watcher) offer(s model.BoardSnapshot) {
	select {
	case w.MessagesToSend <- s:
	default:
		w.DebugDropped++
		w.log.WithField("move_nr", s.MoveNr).Debug("Watcher.offer queue full, dropping")
	}
}

// stop ends the write loop and releases the connection handler. Called by
// the hub only, once per watcher.
func (w *Watcher) stop() {
	close(w.MessagesToSend)
	close(w.Done)
}

func (w *Watcher) LoopChannelRead() {
	w.log.Debug("Watcher.LoopChannelRead STARTED")
	for {
		if _, _, err := w.Conn.NextReader(); err != nil {
			w.log.WithError(err).Debug("Watcher.LoopChannelRead connection gone")
			break
		}
		w.DebugInMessages++
	}
	w.hub.report(w.ID)
	w.log.Debug("Watcher.LoopChannelRead ENDED")
}

// LoopChannelWrite only consumes, so a full queue never blocks the hub.
func (w *Watcher) LoopChannelWrite() {
	w.log.Debug("Watcher.LoopChannelWrite STARTED")
	for s := range w.MessagesToSend {
		if err := w.write(s); err != nil {
			w.log.WithError(err).Warn("Watcher.LoopChannelWrite cant write")
			w.hub.report(w.ID)
			// drain until the hub closes the queue
			for range w.MessagesToSend {
			}
			break
		}
		w.DebugOutMessages++
	}
	w.log.Debug("Watcher.LoopChannelWrite ENDED")
}

func (w *Watcher) write(s model.BoardSnapshot) error {
	wr, err := w.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(wr).Encode(s); err != nil {
		return err
	}
	return wr.Close()
}
