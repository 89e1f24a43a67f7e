package export

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/trajsim/internal/viz"
)

const DefaultDPI = 96

// WritePNG stacks the panels vertically on one widthIn x heightIn inch image.
func WritePNG(w io.Writer, panels []viz.Panel, widthIn, heightIn float64, dpi int) error {
	if len(panels) == 0 {
		return fmt.Errorf("export: no panels to plot")
	}

	plots := make([][]*plot.Plot, len(panels))
	for i, panel := range panels {
		p, err := panelPlot(panel)
		if err != nil {
			return fmt.Errorf("export: panel %s: %w", panel.Title, err)
		}
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("export: write png: %w", err)
	}
	return nil
}

func panelPlot(panel viz.Panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, c := range panel.Curves {
		if len(c.X) == 0 {
			continue
		}
		pts := make(plotter.XYs, min(len(c.X), len(c.Y)))
		for j := range pts {
			pts[j].X = c.X[j]
			pts[j].Y = c.Y[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(c.Name, line)
	}
	return p, nil
}
