package planner

import "github.com/beka-birhanu/mazepilot/maze"

// BFS is a breadth-first planner. The returned path has the minimum hop
// count; among equally short paths the one discovered first under the
// fixed expansion order wins, so results are reproducible.
type BFS struct{}

// Name implements Planner.
func (BFS) Name() string { return "bfs" }

// Solve implements Planner.
func (BFS) Solve(m *maze.Maze, start, end maze.Position) ([]maze.Position, error) {
	queue := []maze.Position{start}
	parent := map[maze.Position]maze.Position{start: start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
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
			queue = append(queue, next)
		}
	}

	return nil, ErrNoPath
}
