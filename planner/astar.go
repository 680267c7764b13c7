package planner

import (
	"container/heap"

	"github.com/beka-birhanu/mazepilot/maze"
)

// AStar is a best-first planner guided by Manhattan distance. The
// heuristic is admissible on a 4-connected grid, so returned paths have
// minimum hop count. Equal priorities fall back to insertion order, which
// keeps runs reproducible without promising a particular cell sequence.
type AStar struct{}

// Name implements Planner.
func (AStar) Name() string { return "astar" }

// Solve implements Planner.
func (AStar) Solve(m *maze.Maze, start, end maze.Position) ([]maze.Position, error) {
	parent := map[maze.Position]maze.Position{start: start}
	gScore := map[maze.Position]int{start: 0}

	open := &frontier{}
	heap.Init(open)
	open.push(start, manhattan(start, end))

	for open.Len() > 0 {
		cur := open.pop()
		if cur == end {
			return rebuild(parent, start, end), nil
		}

		for _, d := range neighborDeltas {
			next := cur.Add(d[0], d[1])
			if m.IsBarrier(next.X, next.Y) {
				continue
			}

			tentative := gScore[cur] + 1
			if g, seen := gScore[next]; seen && tentative >= g {
				continue
			}
			gScore[next] = tentative
			parent[next] = cur
			open.push(next, tentative+manhattan(next, end))
		}
	}

	return nil, ErrNoPath
}

func manhattan(a, b maze.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type frontierItem struct {
	pos      maze.Position
	priority int
	seq      int
}

// frontier is a min-heap on (priority, insertion sequence).
type frontier struct {
	items []frontierItem
	seq   int
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	if f.items[i].priority != f.items[j].priority {
		return f.items[i].priority < f.items[j].priority
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) { f.items = append(f.items, x.(frontierItem)) }

func (f *frontier) Pop() any {
	last := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return last
}

func (f *frontier) push(pos maze.Position, priority int) {
	f.seq++
	heap.Push(f, frontierItem{pos: pos, priority: priority, seq: f.seq})
}

func (f *frontier) pop() maze.Position {
	return heap.Pop(f).(frontierItem).pos
}
