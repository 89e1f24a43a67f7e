package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

var palette = []asciigraph.AnsiColor{
	asciigraph.DodgerBlue,
	asciigraph.Orange,
	asciigraph.LimeGreen,
}

// RenderPanel draws p in roughly width x height character cells.
func RenderPanel(p Panel, width, height int) string {
	if !p.Plottable() {
		return Warning.Render(p.Title + ": non-finite samples (integration unstable)")
	}
	if p.Parametric {
		return renderPath(p, width, height)
	}

	data := make([][]float64, 0, len(p.Curves))
	names := make([]string, 0, len(p.Curves))
	for _, c := range p.Curves {
		if len(c.Y) == 0 {
			continue
		}
		data = append(data, c.Y)
		names = append(names, c.Name)
	}
	if len(data) == 0 {
		return Subtle.Render(p.Title + ": no data")
	}

	colors := make([]asciigraph.AnsiColor, len(data))
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("%s: %s vs %s", p.Title, p.YLabel, p.XLabel)),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(names...),
	)
}

func renderPath(p Panel, width, height int) string {
	minX, maxX, minY, maxY, ok := p.Bounds()
	if !ok {
		return Subtle.Render(p.Title + ": no data")
	}

	c := NewCanvas(width, height)
	for _, curve := range p.Curves {
		c.Polyline(curve.X, curve.Y, minX, maxX, minY, maxY)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%8.2f ┤\n", maxY))
	for _, line := range strings.Split(strings.TrimRight(c.String(), "\n"), "\n") {
		b.WriteString("         │" + line + "\n")
	}
	b.WriteString(fmt.Sprintf("%8.2f ┼%s\n", minY, strings.Repeat("─", width)))
	b.WriteString(fmt.Sprintf("         %-8.2f%*s\n", minX, width-6, fmt.Sprintf("%.2f", maxX)))
	b.WriteString(Subtle.Render(fmt.Sprintf("          %s: %s vs %s", p.Title, p.YLabel, p.XLabel)))
	return b.String()
}

// RenderAll stacks every panel, separated by a blank line.
func RenderAll(panels []Panel, width, height int) string {
	parts := make([]string, len(panels))
	for i, p := range panels {
		parts[i] = RenderPanel(p, width, height)
	}
	return strings.Join(parts, "\n\n")
}
