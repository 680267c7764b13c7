/*
Package solver advances a robot through a maze one validated move per tick.

Every solver implements the same contract: Next runs exactly one tick and
reports what happened in a StepResult. The three deterministic variants
(bfs, dfs, astar) share the Replay implementation, which computes a full
plan once and then commits one edge of it per tick. The interactive
variant instead asks an external reasoner what to do each tick, inside a
bounded request/response budget, and re-validates every proposal locally.

Only a planning failure is fatal to a solver instance. Every other
condition (blocked move, drift off the plan, reasoner timeout) degrades
to a tick that made no progress, leaving recovery to later ticks.
*/
package solver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/beka-birhanu/mazepilot/maze"
	"github.com/beka-birhanu/mazepilot/planner"
	"github.com/beka-birhanu/mazepilot/robot"
)

// Solver variant names accepted by New.
const (
	VariantBFS         = "bfs"
	VariantDFS         = "dfs"
	VariantAStar       = "astar"
	VariantInteractive = "interactive"
)

var (
	ErrUnknownSolver   = errors.New("unknown solver variant")
	ErrMissingMaze     = errors.New("maze is required")
	ErrMissingRobot    = errors.New("robot is required")
	ErrMissingReasoner = errors.New("reasoner is required for the interactive solver")
)

// StepResult is the outcome of one tick. A fresh value is produced per
// tick; the solver keeps no reference to it afterwards.
type StepResult struct {
	DidMove      bool            // a move was committed this tick
	Done         bool            // the robot now stands on the end cell
	Message      string          // human-readable tick summary
	VisitedAdded []maze.Position // cells newly entered by this tick's move
	NewPosition  maze.Position   // robot position after the tick
}

// Solver advances the robot by at most one committed move per call.
// Callers must serialize calls to Next; one tick is ever in flight.
type Solver interface {
	// Next runs one tick. A non-nil error is fatal to the instance and is
	// only returned for planning failures; all other conditions surface
	// through the StepResult.
	Next(ctx context.Context) (StepResult, error)

	// Name returns the variant name the solver was built from.
	Name() string
}

// Config carries the dependencies a solver variant may need.
type Config struct {
	Maze  *maze.Maze
	Robot *robot.Robot

	// Interactive variant only.
	Reasoner    Reasoner
	RoundBudget int           // reasoner rounds per tick; default 12
	Timeout     time.Duration // per reasoner call; default 30s

	Logger *log.Logger
}

// New builds a solver by variant name. The variant set matches the CLI
// selector: bfs, dfs, astar and interactive.
func New(variant string, c *Config) (Solver, error) {
	if c == nil || c.Maze == nil {
		return nil, ErrMissingMaze
	}
	if c.Robot == nil {
		return nil, ErrMissingRobot
	}

	switch variant {
	case VariantBFS:
		return newReplay(variant, c, planner.BFS{}), nil
	case VariantDFS:
		return newReplay(variant, c, planner.DFS{}), nil
	case VariantAStar:
		return newReplay(variant, c, planner.AStar{}), nil
	case VariantInteractive:
		return newInteractive(c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, variant)
	}
}
