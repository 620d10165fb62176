package render

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var panelColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 214, G: 39, B: 40, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
}

// PNG draws one plot per panel, stacked vertically with a shared time axis,
// and writes the image to w.
func PNG(w io.Writer, t []float64, panels []Panel, opts ...Option) error {
	if err := validate(t, panels); err != nil {
		return err
	}
	cfg := applyOptions(opts)

	plots := make([][]*plot.Plot, len(panels))
	for i, panel := range panels {
		p, err := linePlot(t, panel, panelColors[i%len(panelColors)], cfg.maxPoints)
		if err != nil {
			return err
		}
		if i == len(panels)-1 {
			p.X.Label.Text = "Time (s)"
		}
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.New(vg.Length(cfg.width), vg.Length(cfg.height))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}
	return nil
}

// SavePNG is PNG into a file.
func SavePNG(path string, t []float64, panels []Panel, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	return PNG(f, t, panels, opts...)
}

func linePlot(t []float64, panel Panel, c color.Color, maxPoints int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())

	dt, dy := Decimate(t, panel.Y, maxPoints)
	pts := make(plotter.XYs, len(dt))
	for i := range dt {
		pts[i] = plotter.XY{X: dt[i], Y: dy[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("render: %q: %w", panel.Title, err)
	}
	line.Color = c
	line.Width = vg.Points(1)
	p.Add(line)
	return p, nil
}
