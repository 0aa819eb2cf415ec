package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitals/internal/cloud"
)

// CloudToSVG renders an orthographic XY projection of the cloud as an SVG
// scatter plot. Dot opacity follows the sample weight; zero-weight filler
// points are skipped.
func CloudToSVG(samples []cloud.CloudSample, width, height int) string {
	if len(samples) == 0 {
		return ""
	}

	// Bounds of the projection, padded 10%.
	minX, maxX := float64(samples[0].Position.X), float64(samples[0].Position.X)
	minY, maxY := float64(samples[0].Position.Y), float64(samples[0].Position.Y)
	for _, s := range samples {
		x, y := float64(s.Position.X), float64(s.Position.Y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ccff">
`, width, height, width, height))

	for _, s := range samples {
		if s.Weight <= 0 {
			continue
		}
		cx := (float64(s.Position.X) - minX) / rangeX * float64(width)
		cy := float64(height) - (float64(s.Position.Y)-minY)/rangeY*float64(height)
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"1\" fill-opacity=\"%.2f\"/>\n", cx, cy, s.Weight))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
