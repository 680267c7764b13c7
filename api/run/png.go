package runapi

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/beka-birhanu/mazepilot/maze"
)

const cellPixels = 16

var (
	wallColor  = color.RGBA{40, 40, 40, 255}
	freeColor  = color.RGBA{235, 235, 235, 255}
	startColor = color.RGBA{60, 180, 75, 255}
	endColor   = color.RGBA{255, 205, 0, 255}
	robotColor = color.RGBA{220, 50, 50, 255}
)

// boardImage rasterizes the board with the robot drawn on top.
func boardImage(m *maze.Maze, robot maze.Position) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, m.Width()*cellPixels, m.Height()*cellPixels))

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			fillCell(img, x, y, cellColor(m, maze.Position{X: x, Y: y}, robot))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellColor(m *maze.Maze, p, robot maze.Position) color.RGBA {
	if p == robot {
		return robotColor
	}
	switch m.CellAt(p.X, p.Y) {
	case maze.Wall:
		return wallColor
	case maze.Start:
		return startColor
	case maze.End:
		return endColor
	default:
		return freeColor
	}
}

func fillCell(img *image.RGBA, x, y int, c color.RGBA) {
	for py := y * cellPixels; py < (y+1)*cellPixels; py++ {
		for px := x * cellPixels; px < (x+1)*cellPixels; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}
