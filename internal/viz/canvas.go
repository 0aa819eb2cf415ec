package viz

import (
	"math"
	"strings"

	"github.com/san-kum/orbitals/internal/cloud"
)

// Braille patterns pack 2x4 dots per character cell, unicode offset 0x2800.
var brailleBits = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot-matrix terminal canvas. Sub-pixel resolution is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Reset()
	return c
}

// Reset clears every cell back to the empty braille character.
func (c *Canvas) Reset() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// Set turns on the dot at sub-pixel coordinates (x, y). Out-of-range
// coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(brailleBits[y%4][x%2])
}

// String renders the canvas as Height newline-separated rows.
func (c *Canvas) String() string {
	var sb strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// ProjectCloud draws the point cloud with an orthographic projection rotated
// by yaw around the vertical axis. radius sets the world-space half-extent
// mapped to the canvas; points with weight below minWeight are skipped.
func ProjectCloud(c *Canvas, samples []cloud.CloudSample, radius float32, yaw float64, minWeight float32) {
	if radius <= 0 {
		return
	}
	sinYaw, cosYaw := math.Sin(yaw), math.Cos(yaw)
	subW, subH := float64(c.Width*2), float64(c.Height*4)

	for _, s := range samples {
		if s.Weight < minWeight {
			continue
		}
		// Rotate around Y, then drop the depth axis.
		px := float64(s.Position.X)*cosYaw + float64(s.Position.Z)*sinYaw
		py := float64(s.Position.Y)

		nx := (px/float64(radius) + 1.0) / 2.0
		ny := (1.0 - py/float64(radius)) / 2.0
		c.Set(int(nx*subW), int(ny*subH))
	}
}
