package runapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beka-birhanu/mazepilot/maze"
	"github.com/beka-birhanu/mazepilot/service/i"
)

// Controller serves read-only views of one maze and one run. It never
// mutates core state.
type Controller struct {
	maze *maze.Maze
	run  i.RunReader
}

// Config holds dependencies for creating a new run Controller.
type Config struct {
	Maze *maze.Maze
	Run  i.RunReader
}

// New creates a run Controller.
func New(c Config) *Controller {
	return &Controller{maze: c.Maze, run: c.Run}
}

// Register implements i.Controller.
func (c *Controller) Register(route *gin.RouterGroup) {
	route.GET("/run", c.getRun)
	route.GET("/maze", c.getMaze)
	route.GET("/maze.png", c.getMazePNG)
}

func (c *Controller) getRun(ctx *gin.Context) {
	snap := c.run.Snapshot()
	ctx.JSON(http.StatusOK, RunResponse{
		ID:           snap.ID,
		Solver:       snap.Solver,
		Ticks:        snap.Ticks,
		Position:     snap.Position,
		VisitedCount: snap.VisitedCount,
		Done:         snap.Done,
		LastMessage:  snap.LastMessage,
	})
}

func (c *Controller) getMaze(ctx *gin.Context) {
	board := strings.Split(strings.TrimRight(c.maze.String(), "\n"), "\n")
	ctx.JSON(http.StatusOK, MazeResponse{
		Width:  c.maze.Width(),
		Height: c.maze.Height(),
		Start:  c.maze.Start(),
		End:    c.maze.End(),
		Rows:   board,
	})
}

func (c *Controller) getMazePNG(ctx *gin.Context) {
	img, err := boardImage(c.maze, c.run.Snapshot().Position)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "image/png", img)
}
