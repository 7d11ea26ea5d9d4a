// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package backtest

import (
	"fmt"
	"strings"
	"time"

	"github.com/penny-vault/pv-charts/dataframe"
	"github.com/penny-vault/pv-charts/plot"
	"github.com/rs/zerolog/log"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidthInches  = 16.0
	chartHeightInches = 10.0
	dateLayout        = "2006-01"
	labelRotation     = 45.0
	maxDateTicks      = 12
	datePadding       = 15 * 24 * time.Hour
	drawdownAlpha     = 0.3
)

// Columns names the metrics plotted in each panel of the performance chart
type Columns struct {
	Price       string
	Performance string
	Volatility  string
	Drawdown    string
}

// DefaultColumns are the metric names written by the backtester
var DefaultColumns = Columns{
	Price:       "price",
	Performance: "performance",
	Volatility:  "volatility",
	Drawdown:    "drawdown",
}

// Names returns the column names in panel order
func (cols Columns) Names() []string {
	return []string{cols.Price, cols.Performance, cols.Volatility, cols.Drawdown}
}

type panel struct {
	title  string
	ylabel string
	color  drawing.Color
	fill   bool
}

var panels = []panel{
	{title: "Monthly Prices", ylabel: "Price", color: plot.Blue},
	{title: "1Y Rolling Performance (Monthly)", ylabel: "Performance", color: plot.Green},
	{title: "1Y Rolling Volatility (Monthly)", ylabel: "Volatility", color: plot.Orange},
	{title: "Drawdown (Monthly)", ylabel: "Drawdown", color: plot.Red, fill: true},
}

// PlotPerformance resamples the price, performance, volatility and drawdown metrics of df to
// month end and writes them as a 2x2 grid of line charts to the PNG fn. A metric without any
// value is drawn as an empty panel
func PlotPerformance(fn string, df *dataframe.DataFrame, cols Columns) error {
	if err := df.Validate(); err != nil {
		return err
	}

	names := cols.Names()
	if missing := df.Missing(names...); len(missing) != 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	selected, err := df.Select(names...)
	if err != nil {
		return err
	}

	monthly := selected.Resample(dataframe.MonthEnd)
	if monthly.Len() == 0 {
		return ErrNoData
	}

	log.Debug().Time("Start", monthly.Start()).Time("End", monthly.End()).Int("NumMonths", monthly.Len()).Msg("resampled backtest metrics to month end")

	ticks := plot.TimeTicks(monthly.Start(), monthly.End(), maxDateTicks, dateLayout)
	grid := plot.Grid{
		Rows:   2,
		Cols:   2,
		Width:  plot.Pixels(chartWidthInches),
		Height: plot.Pixels(chartHeightInches),
	}

	charts := make([]*chart.Chart, 0, len(panels))
	for idx, p := range panels {
		vals, err := monthly.Column(names[idx])
		if err != nil {
			return err
		}

		// only the bottom row carries date labels, the axis is shared
		panelTicks := ticks
		if idx < grid.Cols*(grid.Rows-1) {
			panelTicks = blankLabels(ticks)
		}

		charts = append(charts, p.chart(names[idx], monthly.Dates, vals, panelTicks))
	}

	img, err := grid.Render(charts)
	if err != nil {
		return err
	}

	if err := plot.WritePNG(fn, img); err != nil {
		return err
	}

	log.Info().Str("FileName", fn).Msg("saved backtest performance chart")
	return nil
}

// chart builds a single panel; every panel gets its own range objects as go-chart
// mutates them while rendering
func (p panel) chart(name string, dates []time.Time, vals []float64, ticks []chart.Tick) *chart.Chart {
	xr := plot.TimeRange(dates[0], dates[len(dates)-1], datePadding)
	yr := plot.ValueRange(vals...)
	if p.fill {
		yr = plot.ValueRange(append(dataframe.NonNaN(vals), 0)...)
	}

	ch := &chart.Chart{
		Title:      p.title,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 10},
		},
		XAxis: plot.TimeAxis("", xr, ticks, labelRotation),
		YAxis: plot.ValueAxis(p.ylabel, yr),
	}

	series := plot.TimeSeries(name, dates, vals, p.color)
	if err := plot.Plottable(series); err != nil {
		log.Warn().Err(err).Str("Metric", name).Msg("metric has no values; drawing an empty panel")
		ch.Series = []chart.Series{plot.Placeholder(name, xr, yr)}
		return ch
	}

	ch.Series = []chart.Series{series}
	if p.fill {
		ch.Elements = []chart.Renderable{
			plot.FillToZero(series, xr, yr, plot.WithAlpha(p.color, drawdownAlpha)),
		}
	}

	return ch
}

func blankLabels(ticks []chart.Tick) []chart.Tick {
	res := make([]chart.Tick, len(ticks))
	for idx, tick := range ticks {
		res[idx] = chart.Tick{Value: tick.Value}
	}
	return res
}
