package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := Generate(0, 5, 1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = Generate(5, -1, 1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("rejects boards too small to hold a distinct end", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 1}, {2, 2}, {1, 2}, {2, 1}} {
			_, err := Generate(dims[0], dims[1], 1)
			assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		}
	})

	t.Run("smallest carveable boards keep start and end distinct", func(t *testing.T) {
		for _, dims := range [][2]int{{3, 1}, {1, 3}, {3, 3}} {
			m, err := Generate(dims[0], dims[1], 1)
			require.NoError(t, err, "dims %v", dims)

			assert.NotEqual(t, m.Start(), m.End(), "dims %v", dims)
			assert.Equal(t, Start, m.CellAt(0, 0), "dims %v", dims)
			assert.Equal(t, End, m.CellAt(m.End().X, m.End().Y), "dims %v", dims)
		}
	})

	t.Run("same seed reproduces the board", func(t *testing.T) {
		a, err := Generate(15, 11, 42)
		require.NoError(t, err)
		b, err := Generate(15, 11, 42)
		require.NoError(t, err)

		assert.Equal(t, a.String(), b.String())
		assert.Equal(t, a.End(), b.End())
	})

	t.Run("different seeds produce different boards", func(t *testing.T) {
		a, err := Generate(15, 15, 1)
		require.NoError(t, err)
		b, err := Generate(15, 15, 2)
		require.NoError(t, err)

		assert.NotEqual(t, a.String(), b.String())
	})

	t.Run("start fixed at origin with exactly one start and end", func(t *testing.T) {
		m, err := Generate(9, 7, 3)
		require.NoError(t, err)

		assert.Equal(t, Position{X: 0, Y: 0}, m.Start())
		assert.Equal(t, Start, m.CellAt(0, 0))

		starts, ends := 0, 0
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				switch m.CellAt(x, y) {
				case Start:
					starts++
				case End:
					ends++
				}
			}
		}
		assert.Equal(t, 1, starts)
		assert.Equal(t, 1, ends)
	})

	t.Run("end reachable from start for many seeds", func(t *testing.T) {
		for seed := int64(0); seed < 25; seed++ {
			t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
				m, err := Generate(13, 9, seed)
				require.NoError(t, err)
				assert.True(t, reachable(m, m.Start(), m.End()), "end must be reachable\n%s", m)
			})
		}
	})
}

// reachable is a plain flood fill, independent of the planners under test.
func reachable(m *Maze, from, to Position) bool {
	seen := map[Position]bool{from: true}
	queue := []Position{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return true
		}
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := cur.Add(d[0], d[1])
			if m.IsBarrier(next.X, next.Y) || seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

func TestParse(t *testing.T) {
	t.Run("round trips board notation", func(t *testing.T) {
		rows := []string{
			"S#...",
			".#.#.",
			".#.#.",
			".#.#.",
			"...#E",
		}
		m, err := Parse(rows)
		require.NoError(t, err)

		assert.Equal(t, 5, m.Width())
		assert.Equal(t, 5, m.Height())
		assert.Equal(t, Position{X: 0, Y: 0}, m.Start())
		assert.Equal(t, Position{X: 4, Y: 4}, m.End())
		assert.True(t, m.IsBarrier(1, 0))
		assert.False(t, m.IsBarrier(2, 0))
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := Parse([]string{"S#", "..E", ".."})
		assert.ErrorIs(t, err, ErrBadBoard)
	})

	t.Run("rejects missing start or end", func(t *testing.T) {
		_, err := Parse([]string{"..", ".E"})
		assert.ErrorIs(t, err, ErrBadBoard)

		_, err = Parse([]string{"S.", ".."})
		assert.ErrorIs(t, err, ErrBadBoard)
	})
}

func TestQueries(t *testing.T) {
	m, err := Parse([]string{
		"S#.",
		".#.",
		"..E",
	})
	require.NoError(t, err)

	t.Run("out of bounds reads as wall", func(t *testing.T) {
		assert.Equal(t, Wall, m.CellAt(-1, 0))
		assert.Equal(t, Wall, m.CellAt(0, 3))
		assert.True(t, m.IsBarrier(3, 3))
	})

	t.Run("start and end are walkable", func(t *testing.T) {
		assert.True(t, m.IsWalkable(m.Start().X, m.Start().Y))
		assert.True(t, m.IsWalkable(m.End().X, m.End().Y))
	})

	t.Run("window pads the outside with walls", func(t *testing.T) {
		view := m.Window(Position{X: 0, Y: 0}, 1)
		require.Len(t, view, 3)

		// Whole first row and column are outside the board.
		assert.Equal(t, []CellType{Wall, Wall, Wall}, view[0])
		assert.Equal(t, Wall, view[1][0])
		assert.Equal(t, Start, view[1][1])
		assert.Equal(t, Wall, view[1][2])
		assert.Equal(t, Free, view[2][1])
	})
}
