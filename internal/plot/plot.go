package plot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"qlab/internal/ml/dataset"
)

// Histogram writes a histogram of values to path.
func Histogram(values []float64, bins int, title, path string) error {
	if len(values) == 0 {
		return fmt.Errorf("plot: no values to plot")
	}
	if bins < 1 {
		bins = 20
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "value"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 100, G: 140, B: 220, A: 255}
	p.Add(h)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// decisionGrid evaluates a decision function over a regular grid; it
// implements plotter.GridXYZ for the heat map.
type decisionGrid struct {
	xs, ys []float64
	z      []float64 // len(xs)*len(ys), column-major in (c, r)
}

func (g *decisionGrid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g *decisionGrid) X(c int) float64    { return g.xs[c] }
func (g *decisionGrid) Y(r int) float64    { return g.ys[r] }
func (g *decisionGrid) Z(c, r int) float64 { return g.z[c*len(g.ys)+r] }

// DecisionBoundary writes a heat map of the decision function over the
// bounding box of d, with the samples scattered on top, to path. gridN is
// the resolution per axis (default 80).
func DecisionBoundary(d dataset.Dataset, decision func([]float64) float64, gridN int, title, path string) error {
	if d.Len() == 0 || d.Features() != 2 {
		return fmt.Errorf("plot: decision boundary needs a non-empty 2-D dataset")
	}
	if gridN < 2 {
		gridN = 80
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, x := range d.X {
		minX, maxX = math.Min(minX, x[0]), math.Max(maxX, x[0])
		minY, maxY = math.Min(minY, x[1]), math.Max(maxY, x[1])
	}
	marginX := 0.1*(maxX-minX) + 1e-9
	marginY := 0.1*(maxY-minY) + 1e-9
	minX, maxX = minX-marginX, maxX+marginX
	minY, maxY = minY-marginY, maxY+marginY

	g := &decisionGrid{
		xs: linspace(minX, maxX, gridN),
		ys: linspace(minY, maxY, gridN),
	}
	g.z = make([]float64, gridN*gridN)
	for c, x := range g.xs {
		for r, y := range g.ys {
			// clamp to the sign region so one huge margin does not wash
			// out the colour scale
			v := decision([]float64{x, y})
			g.z[c*gridN+r] = math.Tanh(v)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x1"
	p.Y.Label.Text = "x2"
	p.Add(plotter.NewHeatMap(g, palette.Heat(64, 0.6)))

	pos, neg := classXYs(d)
	sp, err := plotter.NewScatter(pos)
	if err != nil {
		return err
	}
	sp.GlyphStyle.Shape = draw.CircleGlyph{}
	sp.GlyphStyle.Color = color.RGBA{R: 10, G: 10, B: 120, A: 255}
	sn, err := plotter.NewScatter(neg)
	if err != nil {
		return err
	}
	sn.GlyphStyle.Shape = draw.PyramidGlyph{}
	sn.GlyphStyle.Color = color.RGBA{R: 10, G: 120, B: 10, A: 255}
	p.Add(sp, sn)
	p.Legend.Add("class +1", sp)
	p.Legend.Add("class -1", sn)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func classXYs(d dataset.Dataset) (pos, neg plotter.XYs) {
	for i, x := range d.X {
		xy := plotter.XY{X: x[0], Y: x[1]}
		if d.Y[i] == 1 {
			pos = append(pos, xy)
		} else {
			neg = append(neg, xy)
		}
	}
	return pos, neg
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
