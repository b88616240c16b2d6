// Package plot renders bandit learning curves as interactive line charts.
//
// Charts are written as a single self-contained HTML page using go-echarts.
package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-bandit"
)

// Chart is a set of curves drawn over one shared x axis.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Curves []bandit.Curve
}

// Render writes all charts to w as one HTML page.
func Render(w io.Writer, charts ...Chart) error {
	if len(charts) == 0 {
		return errors.New("no charts to render")
	}

	page := components.NewPage()
	for _, c := range charts {
		line, err := c.line()
		if err != nil {
			return errors.Wrapf(err, "chart %q", c.Title)
		}

		page.AddCharts(line)
	}

	return page.Render(w)
}

// RenderFile writes all charts to the HTML file at path, creating
// parent directories as needed.
func RenderFile(path string, charts ...Chart) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Render(f, charts...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (c Chart) line() (*charts.Line, error) {
	if len(c.Curves) == 0 {
		return nil, errors.New("chart has no curves")
	}

	n := 0
	for _, curve := range c.Curves {
		if len(curve.Values) > n {
			n = len(curve.Values)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: c.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.YLabel}),
	)

	xs := make([]string, n)
	for i := range xs {
		xs[i] = fmt.Sprintf("%d", i)
	}

	line.SetXAxis(xs)
	for _, curve := range c.Curves {
		items := make([]opts.LineData, len(curve.Values))
		for i, v := range curve.Values {
			items[i] = opts.LineData{Value: v}
		}

		line.AddSeries(curve.Label, items)
	}

	return line, nil
}
