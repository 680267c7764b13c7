/*
Package maze provides tools for creating and querying rectangular mazes.

A maze is a rectangular board of cells, each one of Wall, Free, Start or
End. Boards are carved with randomized recursive backtracking driven by a
caller-supplied seed, so the same dimensions and seed always reproduce the
same board. After carving, the end cell is placed on the walkable cell
farthest from the start, which guarantees it is reachable.

Mazes are immutable after generation and safe for concurrent reads.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("maze dimensions too small to carve")
	ErrBadBoard          = errors.New("invalid board layout")
)

// Maze is a rectangular board of cells. The zero value is not usable;
// construct one with Generate or Parse.
type Maze struct {
	width  int
	height int
	board  [][]CellType
	start  Position
	end    Position
}

// expansion order shared with the planners: right, left, down, up.
var neighborDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Generate carves a new maze of the given dimensions. Cells two apart form
// the carve lattice and the odd cells between them act as removable walls,
// so the result is a perfect maze. The carve order is fully determined by
// seed; the global rand source is never touched.
//
// At least one dimension must be 3 or more: the lattice needs a second
// cell, or the board collapses to a single cell and the end would land
// on the start.
func Generate(width, height int, seed int64) (*Maze, error) {
	if width <= 0 || height <= 0 || (width < 3 && height < 3) {
		return nil, ErrInvalidDimensions
	}

	board := make([][]CellType, height)
	for y := range board {
		board[y] = make([]CellType, width)
	}

	m := &Maze{width: width, height: height, board: board}
	m.carve(rand.New(rand.NewSource(seed)))

	m.start = Position{X: 0, Y: 0}
	m.board[0][0] = Start

	m.end = m.farthestFrom(m.start)
	m.board[m.end.Y][m.end.X] = End

	return m, nil
}

// carve runs recursive backtracking with an explicit stack so board size
// never translates into call depth.
func (m *Maze) carve(rng *rand.Rand) {
	origin := Position{X: 0, Y: 0}
	m.board[origin.Y][origin.X] = Free

	lattice := [4][2]int{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}
	stack := []Position{origin}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		dirs := lattice
		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		carved := false
		for _, d := range dirs {
			next := cur.Add(d[0], d[1])
			if !m.inBounds(next.X, next.Y) || m.board[next.Y][next.X] != Wall {
				continue
			}
			// Knock out the wall cell between cur and next.
			between := cur.Add(d[0]/2, d[1]/2)
			m.board[between.Y][between.X] = Free
			m.board[next.Y][next.X] = Free
			stack = append(stack, next)
			carved = true
			break
		}

		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// farthestFrom runs a full breadth-first scan over walkable cells and
// returns the first cell found at the maximum hop distance. Expansion
// follows neighborDeltas, so the choice is deterministic.
func (m *Maze) farthestFrom(from Position) Position {
	dist := map[Position]int{from: 0}
	queue := []Position{from}
	farthest := from

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range neighborDeltas {
			next := cur.Add(d[0], d[1])
			if m.IsBarrier(next.X, next.Y) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			if dist[next] > dist[farthest] {
				farthest = next
			}
			queue = append(queue, next)
		}
	}

	return farthest
}

// Parse builds a maze from board notation, one string per row: '#' or '1'
// for walls, 'S' for start, 'E' for end, anything else free. Intended for
// fixtures and tests. The board must contain exactly one S and one E.
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	m := &Maze{width: len(rows[0]), height: len(rows)}
	m.board = make([][]CellType, m.height)

	starts, ends := 0, 0
	for y, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadBoard, y, len(row), m.width)
		}
		m.board[y] = make([]CellType, m.width)
		for x, r := range row {
			switch r {
			case '#', '1':
				m.board[y][x] = Wall
			case 'S':
				m.board[y][x] = Start
				m.start = Position{X: x, Y: y}
				starts++
			case 'E':
				m.board[y][x] = End
				m.end = Position{X: x, Y: y}
				ends++
			default:
				m.board[y][x] = Free
			}
		}
	}

	if starts != 1 || ends != 1 {
		return nil, fmt.Errorf("%w: board needs exactly one S and one E, got %d and %d", ErrBadBoard, starts, ends)
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the start cell position.
func (m *Maze) Start() Position { return m.start }

// End returns the goal cell position.
func (m *Maze) End() Position { return m.end }

// CellAt returns the cell type at (x, y). Out-of-bounds reads return Wall.
func (m *Maze) CellAt(x, y int) CellType {
	if !m.inBounds(x, y) {
		return Wall
	}
	return m.board[y][x]
}

// IsBarrier reports whether (x, y) blocks movement. Any coordinate outside
// the board counts as a barrier.
func (m *Maze) IsBarrier(x, y int) bool {
	return !m.CellAt(x, y).Walkable()
}

// IsWalkable reports whether an agent may occupy (x, y).
func (m *Maze) IsWalkable(x, y int) bool {
	return !m.IsBarrier(x, y)
}

func (m *Maze) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Window returns a square view of side 2*radius+1 centered on center.
// Cells outside the board read as Wall, matching IsBarrier.
func (m *Maze) Window(center Position, radius int) [][]CellType {
	side := 2*radius + 1
	view := make([][]CellType, side)
	for dy := 0; dy < side; dy++ {
		view[dy] = make([]CellType, side)
		for dx := 0; dx < side; dx++ {
			view[dy][dx] = m.CellAt(center.X+dx-radius, center.Y+dy-radius)
		}
	}
	return view
}

// String provides a textual representation of the board.
func (m *Maze) String() string {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			b.WriteRune(m.board[y][x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
