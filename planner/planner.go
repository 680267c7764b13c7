/*
Package planner computes full start-to-end paths over a maze.

Three interchangeable planners are provided: BFS (shortest by hop count),
DFS (any valid path) and AStar (shortest, Manhattan-guided). All operate
over 4-connected walkable neighbors in the fixed expansion order right,
left, down, up, and report ErrNoPath when the goal is unreachable.
*/
package planner

import (
	"errors"

	"github.com/beka-birhanu/mazepilot/maze"
)

// ErrNoPath means no sequence of 4-connected walkable cells links start to end.
var ErrNoPath = errors.New("no path found from start to end")

// Planner computes an ordered path from start to end, both inclusive.
// The maze is only read, so one maze may back many planner calls.
type Planner interface {
	Solve(m *maze.Maze, start, end maze.Position) ([]maze.Position, error)
	Name() string
}

// Fixed expansion order shared by all planners: right, left, down, up.
var neighborDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// rebuild walks the parent links from end back to start.
func rebuild(parent map[maze.Position]maze.Position, start, end maze.Position) []maze.Position {
	var path []maze.Position
	for cur := end; ; cur = parent[cur] {
		path = append(path, cur)
		if cur == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
