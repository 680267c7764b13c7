package solver

import (
	"context"
	"fmt"
	"log"

	"github.com/beka-birhanu/mazepilot/maze"
	"github.com/beka-birhanu/mazepilot/planner"
	"github.com/beka-birhanu/mazepilot/robot"
)

// Replay commits one edge of a precomputed plan per tick. The plan is
// computed on the first tick and never recomputed: if the robot drifts
// off it, Replay tries to resynchronize the cursor, and when the live
// position is not on the plan at all the tick reports "stuck" and waits
// for a later tick to find the robot back on course.
type Replay struct {
	name    string
	maze    *maze.Maze
	robot   *robot.Robot
	planner planner.Planner
	logger  *log.Logger

	path    []maze.Position
	cursor  int
	visited map[maze.Position]struct{}
}

func newReplay(name string, c *Config, p planner.Planner) *Replay {
	return &Replay{
		name:    name,
		maze:    c.Maze,
		robot:   c.Robot,
		planner: p,
		logger:  c.Logger,
		visited: make(map[maze.Position]struct{}),
	}
}

// Name implements Solver.
func (s *Replay) Name() string { return s.name }

// Next implements Solver. It returns a non-nil error only when the
// planner reports the goal unreachable, which is fatal to this instance.
func (s *Replay) Next(_ context.Context) (StepResult, error) {
	pos := s.robot.Position()

	if s.robot.AtGoal() {
		return StepResult{
			Done:         true,
			Message:      "already at goal",
			VisitedAdded: s.markVisited(pos),
			NewPosition:  pos,
		}, nil
	}

	if s.path == nil {
		path, err := s.planner.Solve(s.maze, s.maze.Start(), s.maze.End())
		if err != nil {
			return StepResult{
				Message:     fmt.Sprintf("planning failed: %v", err),
				NewPosition: pos,
			}, fmt.Errorf("%s planning: %w", s.name, err)
		}
		s.path = path
		s.cursor = 0
		s.logf("planned %d cells with %s", len(path), s.planner.Name())
	}

	// Drift check: the live position must match the plan at the cursor.
	if s.path[s.cursor] != pos {
		idx := s.indexOf(pos)
		if idx < 0 {
			return StepResult{
				Message:     fmt.Sprintf("robot at (%d,%d) is off the plan; holding position", pos.X, pos.Y),
				NewPosition: pos,
			}, nil
		}
		s.logf("resynchronized cursor %d -> %d", s.cursor, idx)
		s.cursor = idx
	}

	if s.cursor >= len(s.path)-1 {
		return StepResult{
			Done:         true,
			Message:      "reached end of plan",
			VisitedAdded: s.markVisited(pos),
			NewPosition:  pos,
		}, nil
	}

	cmd, err := stepCommand(s.path[s.cursor], s.path[s.cursor+1])
	if err != nil {
		// A non-adjacent plan entry means the plan itself is corrupt.
		return StepResult{
			Message:     fmt.Sprintf("invalid plan step: %v", err),
			NewPosition: pos,
		}, nil
	}

	traversed := s.robot.Path(cmd)
	newPos, err := s.robot.Move(cmd)
	if err != nil {
		return StepResult{
			Message:     fmt.Sprintf("move %s failed: %v", cmd, err),
			NewPosition: newPos,
		}, nil
	}

	s.cursor++
	added := s.markVisited(traversed...)

	return StepResult{
		DidMove:      true,
		Done:         s.robot.AtGoal(),
		Message:      fmt.Sprintf("move %s -> (%d,%d)", cmd, newPos.X, newPos.Y),
		VisitedAdded: added,
		NewPosition:  newPos,
	}, nil
}

// indexOf searches the plan for a position, preferring the earliest match.
func (s *Replay) indexOf(pos maze.Position) int {
	for i, p := range s.path {
		if p == pos {
			return i
		}
	}
	return -1
}

// markVisited records cells into the visited set and returns the ones not
// seen before, in traversal order.
func (s *Replay) markVisited(cells ...maze.Position) []maze.Position {
	var added []maze.Position
	for _, c := range cells {
		if _, seen := s.visited[c]; seen {
			continue
		}
		s.visited[c] = struct{}{}
		added = append(added, c)
	}
	return added
}

func (s *Replay) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// stepCommand derives the single move connecting two adjacent plan cells.
func stepCommand(from, to maze.Position) (robot.MoveCommand, error) {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 1 && dy == 0:
		return robot.MoveCommand{Direction: robot.Right, Steps: 1}, nil
	case dx == -1 && dy == 0:
		return robot.MoveCommand{Direction: robot.Left, Steps: 1}, nil
	case dx == 0 && dy == 1:
		return robot.MoveCommand{Direction: robot.Down, Steps: 1}, nil
	case dx == 0 && dy == -1:
		return robot.MoveCommand{Direction: robot.Up, Steps: 1}, nil
	default:
		return robot.MoveCommand{}, fmt.Errorf("non-adjacent cells (%d,%d) -> (%d,%d)", from.X, from.Y, to.X, to.Y)
	}
}
