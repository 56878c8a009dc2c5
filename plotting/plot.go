package plotting

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// panel is one heat map with its own color scale.
type panel struct {
	title string
	grid  *Grid
}

// PlotSolutions renders exact, numerical, and pointwise difference fields
// side by side on a refined tensor grid and writes the figure to path as a
// PNG. The sampling grid is each break sequence refined with n interior
// points per cell.
func PlotSolutions(path string, xbreaks, ybreaks []float64, exact, numerical func(x, y float64) float64, n int) error {
	xs, err := RefineBreaks(xbreaks, n)
	if err != nil {
		return err
	}
	ys, err := RefineBreaks(ybreaks, n)
	if err != nil {
		return err
	}

	exactGrid := SampleGrid(xs, ys, exact)
	numGrid := SampleGrid(xs, ys, numerical)
	panels := []panel{
		{title: "exact solution", grid: exactGrid},
		{title: "numerical solution", grid: numGrid},
		{title: "difference", grid: exactGrid.Sub(numGrid)},
	}
	return renderPanels(path, panels)
}

func renderPanels(path string, panels []panel) error {
	plots := make([][]*plot.Plot, 2)
	plots[0] = make([]*plot.Plot, len(panels))
	plots[1] = make([]*plot.Plot, len(panels))

	for i, pn := range panels {
		min, max := pn.grid.Range()
		if max-min < 1e-15 {
			// Flat fields (e.g. a zero difference) need a nonempty range
			// for the color map.
			max = min + 1e-15
		}
		cm := moreland.SmoothBlueRed()
		cm.SetMin(min)
		cm.SetMax(max)

		p := plot.New()
		p.Title.Text = pn.title
		p.X.Label.Text = "x"
		p.Y.Label.Text = "y"
		p.Add(plotter.NewHeatMap(pn.grid, cm.Palette(255)))
		plots[0][i] = p

		bar := plot.New()
		bar.Add(&plotter.ColorBar{ColorMap: cm})
		bar.HideY()
		bar.X.Padding = 0
		plots[1][i] = bar
	}

	img := vgimg.New(vg.Points(1200), vg.Points(480))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: len(panels),
		PadX: vg.Millimeter * 3, PadY: vg.Millimeter * 3,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plotting: create %s: %w", path, err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("plotting: write %s: %w", path, err)
	}
	return nil
}
