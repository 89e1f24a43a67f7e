package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/trajsim/internal/trajectory"
)

// TrajectorySVG draws the x-y path of s as a single stroked polyline scaled to
// width x height with 10% padding.
func TrajectorySVG(s *trajectory.Series, width, height int, strokeColor string) string {
	if s.Len() < 2 {
		return ""
	}

	minX, maxX := s.X[0], s.X[0]
	minY, maxY := s.Y[0], s.Y[0]
	for i := range s.X {
		minX, maxX = min(minX, s.X[i]), max(maxX, s.X[i])
		minY, maxY = min(minY, s.Y[i]), max(maxY, s.Y[i])
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
`, width, height, width, height))

	if minY < 0 && maxY > 0 {
		gy := float64(height) - (0-minY)/rangeY*float64(height)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
`, gy, width, gy))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, html.EscapeString(strokeColor)))
	for i := range s.X {
		x := (s.X[i] - minX) / rangeX * float64(width)
		y := float64(height) - (s.Y[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
