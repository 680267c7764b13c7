package runapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/mazepilot/maze"
	"github.com/beka-birhanu/mazepilot/service/i"
)

type staticRun struct {
	snap i.RunSnapshot
}

func (s staticRun) Snapshot() i.RunSnapshot { return s.snap }

func setup(t *testing.T) (*gin.Engine, i.RunSnapshot) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, err := maze.Parse([]string{
		"S..",
		"##.",
		"..E",
	})
	require.NoError(t, err)

	snap := i.RunSnapshot{
		ID:           uuid.New(),
		Solver:       "bfs",
		Ticks:        2,
		Position:     maze.Position{X: 2, Y: 0},
		VisitedCount: 3,
		LastMessage:  "move right 1 -> (2,0)",
	}

	router := gin.New()
	group := router.Group("/v1")
	New(Config{Maze: m, Run: staticRun{snap: snap}}).Register(group)
	return router, snap
}

func TestGetRun(t *testing.T) {
	router, snap := setup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/run", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, "bfs", got.Solver)
	assert.Equal(t, 2, got.Ticks)
	assert.Equal(t, maze.Position{X: 2, Y: 0}, got.Position)
	assert.Equal(t, 3, got.VisitedCount)
	assert.False(t, got.Done)
}

func TestGetMaze(t *testing.T) {
	router, _ := setup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/maze", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 3, got.Width)
	assert.Equal(t, 3, got.Height)
	assert.Equal(t, []string{"S..", "##.", "..E"}, got.Rows)
	assert.Equal(t, maze.Position{X: 0, Y: 0}, got.Start)
	assert.Equal(t, maze.Position{X: 2, Y: 2}, got.End)
}

func TestGetMazePNG(t *testing.T) {
	router, _ := setup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/maze.png", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	// PNG magic bytes.
	require.GreaterOrEqual(t, w.Body.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes()[:4])
}
