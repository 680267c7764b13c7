package i

import (
	"github.com/google/uuid"

	"github.com/beka-birhanu/mazepilot/maze"
)

// RunSnapshot is a read-only view of a run's progress.
type RunSnapshot struct {
	ID           uuid.UUID     `json:"id"`
	Solver       string        `json:"solver"`
	Ticks        int           `json:"ticks"`
	Position     maze.Position `json:"position"`
	VisitedCount int           `json:"visited_count"`
	Done         bool          `json:"done"`
	LastMessage  string        `json:"last_message"`
}

// RunReader exposes run progress to observers such as the HTTP viewer.
type RunReader interface {
	Snapshot() RunSnapshot
}
