package planner

import "github.com/beka-birhanu/mazepilot/maze"

// DFS is a depth-first planner. It returns some valid path, not
// necessarily the shortest one, and backtracks out of dead ends. The same
// fixed expansion order as BFS keeps results reproducible.
type DFS struct{}

// Name implements Planner.
func (DFS) Name() string { return "dfs" }

// Solve implements Planner.
func (DFS) Solve(m *maze.Maze, start, end maze.Position) ([]maze.Position, error) {
	stack := []maze.Position{start}
	parent := map[maze.Position]maze.Position{start: start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == end {
			return rebuild(parent, start, end), nil
		}

		for _, d := range neighborDeltas {
			next := cur.Add(d[0], d[1])
			if m.IsBarrier(next.X, next.Y) {
				continue
			}
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			stack = append(stack, next)
		}
	}

	return nil, ErrNoPath
}
