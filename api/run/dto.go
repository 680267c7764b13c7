// Package runapi serves run progress and board views to observers.
package runapi

import (
	"github.com/google/uuid"

	"github.com/beka-birhanu/mazepilot/maze"
)

// RunResponse describes the progress of the observed run.
type RunResponse struct {
	ID           uuid.UUID     `json:"id"`
	Solver       string        `json:"solver"`
	Ticks        int           `json:"ticks"`
	Position     maze.Position `json:"position"`
	VisitedCount int           `json:"visited_count"`
	Done         bool          `json:"done"`
	LastMessage  string        `json:"last_message"`
}

// MazeResponse carries the board in row-per-string notation plus its
// fixed endpoints.
type MazeResponse struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Start  maze.Position `json:"start"`
	End    maze.Position `json:"end"`
	Rows   []string      `json:"rows"`
}
