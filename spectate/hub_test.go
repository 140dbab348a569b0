package spectate

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/hexaroni/game"
	"github.com/zucenko/hexaroni/model"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub()
	go hub.Loop()
	srv := httptest.NewServer(NewServer("", hub))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func snapshot(moveNr int) model.BoardSnapshot {
	c := game.New()
	c.StartGame(0)
	c.Tick(3)
	s := c.Snapshot(3.5)
	s.MatchID = "match-1"
	s.MoveNr = moveNr
	return s
}

func getBoard(t *testing.T, url string) (int, model.BoardSnapshot) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var s model.BoardSnapshot
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	}
	return resp.StatusCode, s
}

func TestBoardNotFoundBeforeFirstSnapshot(t *testing.T) {
	_, srv := startHub(t)
	status, _ := getBoard(t, srv.URL+URI_BOARD)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBoardServesLatestSnapshot(t *testing.T) {
	hub, srv := startHub(t)
	require.True(t, hub.Publish(snapshot(1)))
	require.True(t, hub.Publish(snapshot(2)))

	require.Eventually(t, func() bool {
		status, s := getBoard(t, srv.URL+URI_BOARD)
		return status == http.StatusOK && s.MoveNr == 2
	}, time.Second, 10*time.Millisecond)

	status, s := getBoard(t, srv.URL+"/board/match-1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "match-1", s.MatchID)
	assert.Equal(t, 7, s.Size)
	assert.NotEmpty(t, s.Objects)

	status, _ = getBoard(t, srv.URL+"/board/other")
	assert.Equal(t, http.StatusNotFound, status)
}

func readSnapshot(t *testing.T, conn *websocket.Conn) model.BoardSnapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	kind, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, kind)
	var s model.BoardSnapshot
	require.NoError(t, gob.NewDecoder(bytes.NewReader(data)).Decode(&s))
	return s
}

func TestWatchStreamsSnapshots(t *testing.T) {
	hub, srv := startHub(t)
	require.True(t, hub.Publish(snapshot(3)))
	require.Eventually(t, func() bool {
		status, _ := getBoard(t, srv.URL+URI_BOARD)
		return status == http.StatusOK
	}, time.Second, 10*time.Millisecond)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + URI_WATCH
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// late joiners get the latest snapshot right away
	assert.Equal(t, 3, readSnapshot(t, conn).MoveNr)

	require.True(t, hub.Publish(snapshot(4)))
	s := readSnapshot(t, conn)
	assert.Equal(t, 4, s.MoveNr)
	assert.Equal(t, "match-1", s.MatchID)
	assert.Equal(t, "PLAYING", s.Phase)
}

func TestHubCloseDisconnectsWatchers(t *testing.T) {
	hub, srv := startHub(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + URI_WATCH
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	hub.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub()
	published := 0
	for i := 0; i < cap(hub.Snapshots)+5; i++ {
		if hub.Publish(snapshot(i)) {
			published++
		}
	}
	assert.Equal(t, cap(hub.Snapshots), published)
}
