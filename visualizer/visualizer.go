// SPDX-License-Identifier: MIT

package visualizer

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	fg "github.com/katalvlaran/graphslam/factorgraph"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("visualizer: graph is nil")

	// ErrFormat indicates an unsupported output format.
	ErrFormat = errors.New("visualizer: unsupported format")
)

// Formats lists the accepted output formats.
var Formats = []string{"png", "svg", "pdf", "eps", "jpg", "tif"}

var (
	colorPose     = color.RGBA{R: 200, A: 255}
	colorLandmark = color.RGBA{G: 160, A: 255}
	colorOdometry = color.RGBA{R: 90, G: 90, B: 220, A: 255}
	colorObserve  = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	colorPrior    = color.RGBA{R: 240, G: 120, B: 120, A: 255}
)

// Plot builds the plot of g without writing it.
func Plot(g *fg.Graph, opts ...Option) (*plot.Plot, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	var poses, landmarks plotter.XYs
	for _, v := range g.Variables() {
		e := v.Estimate()
		pt := plotter.XY{X: e[0], Y: e[1]}
		switch v.Kind() {
		case fg.Pose2D, fg.Pose3D:
			poses = append(poses, pt)
		default:
			landmarks = append(landmarks, pt)
		}
	}

	if o.Factors {
		if err := addFactors(p, g); err != nil {
			return nil, err
		}
	}
	if err := addScatter(p, "poses", poses, colorPose, draw.CircleGlyph{}); err != nil {
		return nil, err
	}
	if err := addScatter(p, "landmarks", landmarks, colorLandmark, draw.SquareGlyph{}); err != nil {
		return nil, err
	}

	return p, nil
}

// Render writes g to w in the given format ("png", "svg", ...).
func Render(g *fg.Graph, w io.Writer, format string, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p, err := Plot(g, opts...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.Width, o.Height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("%q: %w: %w", format, ErrFormat, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("visualizer: write: %w", err)
	}

	return nil
}

// Save renders g to path; the format follows the file extension.
func Save(g *fg.Graph, path string, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !supported(ext) {
		return fmt.Errorf("%q: %w", path, ErrFormat)
	}
	p, err := Plot(g, opts...)
	if err != nil {
		return err
	}

	return p.Save(o.Width, o.Height, path)
}

func supported(ext string) bool {
	for _, f := range Formats {
		if f == ext {
			return true
		}
	}

	return false
}

// addFactors draws one segment per binary factor and a cross at the
// measured position of every unary factor.
func addFactors(p *plot.Plot, g *fg.Graph) error {
	var priors plotter.XYs
	legend := map[fg.FactorKind]bool{}
	for _, f := range g.Factors() {
		conn := g.Connected(f)
		if f.Kind() == fg.UnaryPosition {
			m := f.Measurement()
			priors = append(priors, plotter.XY{X: m[0], Y: m[1]})
			continue
		}
		a, b := conn[0].Estimate(), conn[1].Estimate()
		line, err := plotter.NewLine(plotter.XYs{{X: a[0], Y: a[1]}, {X: b[0], Y: b[1]}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(0.75)
		switch f.Kind() {
		case fg.Odometry2D, fg.Odometry3D:
			line.LineStyle.Color = colorOdometry
		default:
			line.LineStyle.Color = colorObserve
			line.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		}
		p.Add(line)
		if !legend[f.Kind()] {
			legend[f.Kind()] = true
			p.Legend.Add(f.Kind().String(), line)
		}
	}

	return addScatter(p, "priors", priors, colorPrior, draw.CrossGlyph{})
}

func addScatter(p *plot.Plot, name string, pts plotter.XYs, c color.Color, shape draw.GlyphDrawer) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Radius = vg.Points(3)
	p.Add(s)
	p.Legend.Add(name, s)

	return nil
}
