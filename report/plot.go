package report

import (
	"fmt"
	"image/color"

	"github.com/robjustinwagner/dectree"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

/*
PruningPlot takes a pruning report and returns a plot of the tuning accuracy
of the tree after every pruning round, round 0 being the unpruned tree.
*/
func PruningPlot(r *dectree.PruningReport) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Reduced-error pruning"
	p.X.Label.Text = "Round"
	p.Y.Label.Text = "Tuning accuracy"
	p.Y.Min = 0
	p.Y.Max = 1

	pts := make(plotter.XYs, 0, len(r.Rounds)+1)
	pts = append(pts, plotter.XY{X: 0, Y: r.Initial.Accuracy()})
	for _, pr := range r.Rounds {
		pts = append(pts, plotter.XY{X: float64(pr.Round), Y: pr.Score.Accuracy()})
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plotting pruning rounds: %v", err)
	}
	l.Color = color.RGBA{R: 255, A: 255}
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("plotting pruning rounds: %v", err)
	}
	s.Color = color.RGBA{B: 255, A: 255, R: 50, G: 50}
	p.Add(s)
	return p, nil
}

/*
SavePruningPlot takes a pruning report and a file path and saves the plot
of the report onto the file, in the format given by its extension
(e.g. .png or .svg).
*/
func SavePruningPlot(r *dectree.PruningReport, path string) error {
	p, err := PruningPlot(r)
	if err != nil {
		return err
	}
	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving pruning plot to %s: %v", path, err)
	}
	return nil
}
