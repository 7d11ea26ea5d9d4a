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

package termstructure

import (
	"fmt"
	"time"

	"github.com/penny-vault/pv-charts/dataframe"
	"github.com/penny-vault/pv-charts/plot"
	"github.com/rs/zerolog/log"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidthInches  = 9.0
	chartHeightInches = 4.5
	titleFontSize     = 15.0
	labelRotation     = 30.0
	maxDateTicks      = 8
	datePadding       = 24 * time.Hour
	xAxisName         = "Date"
	yAxisName         = "Credit spread"
)

// Plot draws one line per tenor of df against its dates and saves the chart as the PNG fn
func Plot(fn, title string, df *dataframe.DataFrame) error {
	if df.Len() == 0 {
		return fmt.Errorf("%w: %s", ErrNoData, title)
	}

	begin, end := dateBounds(df.Dates)
	xr := &chart.ContinuousRange{
		Min: chart.TimeToFloat64(begin.Add(-datePadding)),
		Max: chart.TimeToFloat64(end.Add(datePadding)),
	}

	series := make([]chart.Series, 0, df.ColCount())
	plotted := make([]float64, 0, df.Len()*df.ColCount())
	for colIdx, name := range df.ColNames {
		line := plot.TimeSeries(name, df.Dates, df.Vals[colIdx], plot.PaletteColor(len(series)))
		if err := plot.Plottable(line); err != nil {
			log.Warn().Str("Curve", title).Str("Tenor", name).Msg("tenor has no values; skipping")
			continue
		}
		series = append(series, line)
		plotted = append(plotted, line.YValues...)
	}

	if len(series) == 0 {
		return fmt.Errorf("%w: %s", ErrNoData, title)
	}

	ch := &chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: titleFontSize},
		Width:      plot.Pixels(chartWidthInches),
		Height:     plot.Pixels(chartHeightInches),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 10},
		},
		XAxis:  plot.TimeAxis(xAxisName, xr, plot.TimeTicks(begin, end, maxDateTicks, dateLayout(begin, end)), labelRotation),
		YAxis:  plot.ValueAxis(yAxisName, plot.ValueRange(plotted...)),
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}

	if err := plot.Save(fn, ch); err != nil {
		return err
	}

	log.Info().Str("Curve", title).Str("FileName", fn).Int("NumTenors", len(series)).Msg("saved term-structure chart")
	return nil
}

// dateBounds returns the earliest and latest date; rows are not required to be sorted
func dateBounds(dates []time.Time) (begin, end time.Time) {
	begin, end = dates[0], dates[0]
	for _, dt := range dates[1:] {
		if dt.Before(begin) {
			begin = dt
		}
		if dt.After(end) {
			end = dt
		}
	}
	return
}

// dateLayout picks a tick label format that fits the span of the chart
func dateLayout(begin, end time.Time) string {
	span := end.Sub(begin)
	switch {
	case span > 5*365*24*time.Hour:
		return "2006"
	case span > 90*24*time.Hour:
		return "2006-01"
	default:
		return "2006-01-02"
	}
}
