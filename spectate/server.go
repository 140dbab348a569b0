package spectate

import (
	"context"
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
)

const (
	URI_BOARD       = "/board"
	URI_MATCH_BOARD = "/board/:match"
	URI_WATCH       = "/watch"
)

// Server exposes a Hub over HTTP.
type Server struct {
	Hub    *Hub
	router *way.Router
	http   *http.Server
}

func NewServer(addr string, hub *Hub) *Server {
	s := &Server{Hub: hub}
	s.routes()
	s.http = &http.Server{Addr: addr, Handler: s.router}
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_BOARD, s.Hub.HandleBoard())
	s.router.HandleFunc("GET", URI_MATCH_BOARD, s.Hub.HandleBoard())
	s.router.HandleFunc("GET", URI_WATCH, s.Hub.HandleWatch())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until Shutdown.
func (s *Server) ListenAndServe() error {
	log.WithField("addr", s.http.Addr).Info("spectate server listening")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
