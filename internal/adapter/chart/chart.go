// Package chart draws the analytics charts as PNG images with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/couchcryptid/ocean-defender/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when the table has no rows to plot.
var ErrNoData = errors.New("no rows to plot")

const (
	defaultWidth  = 8 * vg.Inch
	defaultHeight = 4 * vg.Inch
	barWidth      = vg.Length(24)
)

var (
	barColor     = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	diseaseColor = color.RGBA{R: 205, G: 92, B: 92, A: 255}
)

// Renderer draws charts at a fixed size.
type Renderer struct {
	width  vg.Length
	height vg.Length
}

// NewRenderer creates a renderer producing 8x4 inch images.
func NewRenderer() *Renderer {
	return &Renderer{width: defaultWidth, height: defaultHeight}
}

// Render draws the chart described by info for one region's rows and writes it as PNG.
func (r *Renderer) Render(w io.Writer, info domain.ChartInfo, t domain.Table) error {
	if len(t) == 0 {
		return ErrNoData
	}
	p, err := Build(info, t)
	if err != nil {
		return err
	}
	return r.writePNG(w, p)
}

// Build assembles the plot for a chart without encoding it.
func Build(info domain.ChartInfo, t domain.Table) (*plot.Plot, error) {
	switch info.ID {
	case domain.ChartContaminant:
		return yearBars(info.Title, info.Metrics[0], t)
	case domain.ChartDisease:
		return diseaseBars(t)
	case domain.ChartPH, domain.ChartTurbidity, domain.ChartOxygen, domain.ChartNitrate, domain.ChartSanitation:
		return yearLines(info.Title, info.Metrics, t)
	default:
		return nil, fmt.Errorf("unknown chart %q", info.ID)
	}
}

func (r *Renderer) writePNG(w io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(r.width, r.height, "png")
	if err != nil {
		return fmt.Errorf("create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// yearBars plots one metric as a bar per year.
func yearBars(title string, m domain.Metric, t domain.Table) (*plot.Plot, error) {
	series := domain.Series(t, m)

	values := make(plotter.Values, len(series))
	labels := make([]string, len(series))
	for i, yv := range series {
		values[i] = yv.Value
		labels[i] = strconv.Itoa(yv.Year)
	}

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Tahun"
	p.Y.Label.Text = m.Column()
	p.Add(plotter.NewGrid(), bars)
	p.NominalX(labels...)
	return p, nil
}

// yearLines plots each metric as a line with point markers against the year.
func yearLines(title string, metrics []domain.Metric, t domain.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Tahun"
	p.Add(plotter.NewGrid())

	var years []int
	for i, m := range metrics {
		series := domain.Series(t, m)
		pts := make(plotter.XYs, len(series))
		for j, yv := range series {
			pts[j].X = float64(yv.Year)
			pts[j].Y = yv.Value
		}
		if i == 0 {
			years = make([]int, len(series))
			for j, yv := range series {
				years[j] = yv.Year
			}
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", m.Column(), err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		points.Shape = plotutil.Shape(i)
		points.Color = plotutil.Color(i)

		p.Add(line, points)
		if len(metrics) > 1 {
			p.Legend.Add(m.Column(), line, points)
		}
	}

	if len(metrics) == 1 {
		p.Y.Label.Text = metrics[0].Column()
	}
	p.Legend.Top = true
	p.X.Tick.Marker = yearTicker(years)
	return p, nil
}

// diseaseBars plots the latest-year disease counters as horizontal bars,
// smallest at the bottom so the top disease reads first.
func diseaseBars(t domain.Table) (*plot.Plot, error) {
	year, ranking, ok := domain.DiseaseRanking(t)
	if !ok {
		return nil, ErrNoData
	}

	n := len(ranking)
	values := make(plotter.Values, n)
	labels := make([]string, n)
	for i, d := range ranking {
		// Ascending order on the Y axis.
		values[n-1-i] = d.Cases
		labels[n-1-i] = DiseaseLabel(d.Disease)
	}

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("disease chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = diseaseColor
	bars.LineStyle.Width = vg.Length(0)

	p := plot.New()
	p.Title.Text = domain.DiseaseChartTitle(year)
	p.X.Label.Text = "Kasus per 100.000 penduduk"
	p.Add(plotter.NewGrid(), bars)
	p.NominalY(labels...)
	return p, nil
}

// DiseaseLabel shortens a disease column header to the disease name.
func DiseaseLabel(column string) string {
	name, _, _ := strings.Cut(column, " Cases")
	return name
}

// yearTicker places one labelled tick on each year that has data.
func yearTicker(years []int) plot.Ticker {
	return plot.TickerFunc(func(lo, hi float64) []plot.Tick {
		ticks := make([]plot.Tick, 0, len(years))
		for _, y := range years {
			v := float64(y)
			if v < lo || v > hi {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(y)})
		}
		return ticks
	})
}
