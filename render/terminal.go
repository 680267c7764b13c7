/*
Package render draws run progress to a terminal.

The renderer consumes StepResults only; it never reaches into solver or
robot state. It keeps its own copy of the visited set, fed by the
VisitedAdded deltas each frame carries.
*/
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/beka-birhanu/mazepilot/maze"
	"github.com/beka-birhanu/mazepilot/solver"
)

var (
	wallStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	startStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	endStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	visitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	robotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	freeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	msgStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// Terminal renders the whole board after every tick, with the robot,
// visited trail and the tick message underneath.
type Terminal struct {
	out     io.Writer
	maze    *maze.Maze
	robot   maze.Position
	visited map[maze.Position]struct{}
	color   bool
}

// NewTerminal creates a renderer for m writing to out. With color off the
// board is drawn in plain board notation, which also keeps test output
// stable.
func NewTerminal(out io.Writer, m *maze.Maze, color bool) *Terminal {
	return &Terminal{
		out:   out,
		maze:  m,
		robot: m.Start(),
		visited: map[maze.Position]struct{}{
			m.Start(): {},
		},
		color: color,
	}
}

// Frame implements i.Renderer.
func (t *Terminal) Frame(res solver.StepResult) {
	for _, p := range res.VisitedAdded {
		t.visited[p] = struct{}{}
	}
	t.robot = res.NewPosition

	fmt.Fprintln(t.out, t.board())
	if res.Message != "" {
		fmt.Fprintln(t.out, t.styled(msgStyle, res.Message))
	}
	fmt.Fprintln(t.out)
}

func (t *Terminal) board() string {
	var b strings.Builder
	for y := 0; y < t.maze.Height(); y++ {
		for x := 0; x < t.maze.Width(); x++ {
			b.WriteString(t.cell(maze.Position{X: x, Y: y}))
		}
		if y < t.maze.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (t *Terminal) cell(p maze.Position) string {
	if p == t.robot {
		return t.styled(robotStyle, "@")
	}
	switch t.maze.CellAt(p.X, p.Y) {
	case maze.Wall:
		return t.styled(wallStyle, "#")
	case maze.Start:
		return t.styled(startStyle, "S")
	case maze.End:
		return t.styled(endStyle, "E")
	default:
		if _, seen := t.visited[p]; seen {
			return t.styled(visitedStyle, "*")
		}
		return t.styled(freeStyle, ".")
	}
}

func (t *Terminal) styled(style lipgloss.Style, s string) string {
	if !t.color {
		return s
	}
	return style.Render(s)
}
