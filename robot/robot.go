/*
Package robot models a single agent bound to a maze.

The robot owns a mutable position and exposes two operations: Sensor, a
ray cast that reports how far the agent could travel in each cardinal
direction, and Move, an all-or-nothing walk of N cells in one direction.
A move that would cross a wall or the board edge at any point fails and
leaves the position untouched.
*/
package robot

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/mazepilot/maze"
)

var (
	ErrUnknownDirection = errors.New("unknown direction")
	ErrNegativeSteps    = errors.New("step count must not be negative")
	ErrBlockedPath      = errors.New("path is blocked")
)

// Direction is one of the four cardinal movement directions.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every valid direction in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the per-step column and row offsets of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection validates a direction name.
func ParseDirection(name string) (Direction, error) {
	switch d := Direction(name); d {
	case Up, Down, Left, Right:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
}

// MoveCommand asks for a walk of Steps cells in one direction.
type MoveCommand struct {
	Direction Direction `json:"direction"`
	Steps     int       `json:"steps"`
}

func (c MoveCommand) String() string {
	return fmt.Sprintf("%s %d", c.Direction, c.Steps)
}

// Reading holds the sensor distances per direction: the number of
// contiguous walkable cells before a wall or the board edge.
type Reading struct {
	Up    int `json:"up"`
	Down  int `json:"down"`
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Distance returns the sensed distance for d.
func (r Reading) Distance(d Direction) int {
	switch d {
	case Up:
		return r.Up
	case Down:
		return r.Down
	case Left:
		return r.Left
	case Right:
		return r.Right
	}
	return 0
}

// Robot is an agent with a mutable position on one maze. It is owned by
// whatever drives its ticks; calls must be serialized by the owner.
type Robot struct {
	maze *maze.Maze
	pos  maze.Position
}

// New places a robot on m at the maze start cell.
func New(m *maze.Maze) *Robot {
	return &Robot{maze: m, pos: m.Start()}
}

// NewAt places a robot on m at a caller-chosen position.
func NewAt(m *maze.Maze, pos maze.Position) *Robot {
	return &Robot{maze: m, pos: pos}
}

// Position returns the robot's current position.
func (r *Robot) Position() maze.Position { return r.pos }

// AtGoal reports whether the robot stands on the end cell.
func (r *Robot) AtGoal() bool { return r.pos == r.maze.End() }

// Sensor ray casts in all four directions from the current position.
// A zero reading means the adjacent cell in that direction is blocked.
func (r *Robot) Sensor() Reading {
	return Reading{
		Up:    r.ray(Up),
		Down:  r.ray(Down),
		Left:  r.ray(Left),
		Right: r.ray(Right),
	}
}

func (r *Robot) ray(d Direction) int {
	dx, dy := d.Delta()
	steps := 0
	for cur := r.pos.Add(dx, dy); r.maze.IsWalkable(cur.X, cur.Y); cur = cur.Add(dx, dy) {
		steps++
	}
	return steps
}

// Path returns the cells cmd would traverse from the current position,
// endpoint included, without validating or moving anything.
func (r *Robot) Path(cmd MoveCommand) []maze.Position {
	dx, dy := cmd.Direction.Delta()
	cells := make([]maze.Position, 0, cmd.Steps)
	cur := r.pos
	for i := 0; i < cmd.Steps; i++ {
		cur = cur.Add(dx, dy)
		cells = append(cells, cur)
	}
	return cells
}

// Move walks the robot cmd.Steps cells in cmd.Direction. Every traversed
// cell is checked; if any is blocked the robot does not move at all and
// the error says where it stopped. A zero-step move succeeds as a no-op.
// The returned position is current either way.
func (r *Robot) Move(cmd MoveCommand) (maze.Position, error) {
	if _, err := ParseDirection(string(cmd.Direction)); err != nil {
		return r.pos, err
	}
	if cmd.Steps < 0 {
		return r.pos, fmt.Errorf("%w: got %d", ErrNegativeSteps, cmd.Steps)
	}
	if cmd.Steps == 0 {
		return r.pos, nil
	}

	dx, dy := cmd.Direction.Delta()
	cur := r.pos
	for i := 0; i < cmd.Steps; i++ {
		cur = cur.Add(dx, dy)
		if !r.maze.IsWalkable(cur.X, cur.Y) {
			return r.pos, fmt.Errorf("%w: %s blocked at (%d,%d)", ErrBlockedPath, cmd, cur.X, cur.Y)
		}
	}

	r.pos = cur
	return r.pos, nil
}
