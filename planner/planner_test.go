package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/mazepilot/maze"
)

func allPlanners() []Planner {
	return []Planner{BFS{}, DFS{}, AStar{}}
}

// assertValidPath checks the structural contract every planner shares.
func assertValidPath(t *testing.T, m *maze.Maze, path []maze.Position) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, m.Start(), path[0])
	assert.Equal(t, m.End(), path[len(path)-1])
	for i, p := range path {
		assert.True(t, m.IsWalkable(p.X, p.Y), "cell %v must be walkable", p)
		if i > 0 {
			prev := path[i-1]
			dist := abs(p.X-prev.X) + abs(p.Y-prev.Y)
			assert.Equal(t, 1, dist, "steps must be 4-connected: %v -> %v", prev, p)
		}
	}
}

func TestSolveSmallBoard(t *testing.T) {
	// Only one route exists: along the top edge and down the right side.
	m, err := maze.Parse([]string{
		"S..",
		"##.",
		"..E",
	})
	require.NoError(t, err)

	for _, p := range allPlanners() {
		t.Run(p.Name(), func(t *testing.T) {
			path, err := p.Solve(m, m.Start(), m.End())
			require.NoError(t, err)
			assertValidPath(t, m, path)
			assert.Len(t, path, 5)
			assert.Equal(t, maze.Position{X: 2, Y: 2}, path[len(path)-1])
		})
	}
}

func TestSolveUnreachableGoal(t *testing.T) {
	m, err := maze.Parse([]string{
		"S#",
		"#E",
	})
	require.NoError(t, err)

	for _, p := range allPlanners() {
		t.Run(p.Name(), func(t *testing.T) {
			path, err := p.Solve(m, m.Start(), m.End())
			assert.ErrorIs(t, err, ErrNoPath)
			assert.Nil(t, path)
		})
	}
}

func TestSolveStartEqualsEnd(t *testing.T) {
	m, err := maze.Parse([]string{"SE"})
	require.NoError(t, err)

	for _, p := range allPlanners() {
		t.Run(p.Name(), func(t *testing.T) {
			path, err := p.Solve(m, m.Start(), m.Start())
			require.NoError(t, err)
			assert.Equal(t, []maze.Position{m.Start()}, path)
		})
	}
}

func TestBFSDeterministicTieBreak(t *testing.T) {
	// Open 3x3 board: two shortest routes exist; the fixed expansion order
	// (right first) must pick the one through (1,0) and (2,0) every time.
	m, err := maze.Parse([]string{
		"S..",
		"...",
		"..E",
	})
	require.NoError(t, err)

	want, err := BFS{}.Solve(m, m.Start(), m.End())
	require.NoError(t, err)
	require.Len(t, want, 5)

	for i := 0; i < 5; i++ {
		got, err := BFS{}.Solve(m, m.Start(), m.End())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestOptimalityOnGeneratedMazes(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			m, err := maze.Generate(13, 11, seed)
			require.NoError(t, err)

			bfsPath, err := BFS{}.Solve(m, m.Start(), m.End())
			require.NoError(t, err)
			assertValidPath(t, m, bfsPath)

			astarPath, err := AStar{}.Solve(m, m.Start(), m.End())
			require.NoError(t, err)
			assertValidPath(t, m, astarPath)

			dfsPath, err := DFS{}.Solve(m, m.Start(), m.End())
			require.NoError(t, err)
			assertValidPath(t, m, dfsPath)

			// Both optimal planners agree on length; DFS may only be longer.
			assert.Equal(t, len(bfsPath), len(astarPath))
			assert.GreaterOrEqual(t, len(dfsPath), len(bfsPath))
		})
	}
}
