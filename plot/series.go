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

package plot

import (
	"fmt"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// line width of every plotted series
const lineWidth = 1.5

// TimeSeries converts a date indexed column into a line series; NaN values are skipped
// and the line connects the surrounding observations
func TimeSeries(name string, dates []time.Time, vals []float64, color drawing.Color) chart.TimeSeries {
	series := chart.TimeSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: lineWidth,
		},
		XValues: make([]time.Time, 0, len(dates)),
		YValues: make([]float64, 0, len(vals)),
	}

	for idx, dt := range dates {
		if math.IsNaN(vals[idx]) {
			continue
		}
		series.XValues = append(series.XValues, dt)
		series.YValues = append(series.YValues, vals[idx])
	}

	return series
}

// Plottable reports ErrEmptySeries when every value of the series was missing
func Plottable(series chart.TimeSeries) error {
	if len(series.XValues) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptySeries, series.Name)
	}
	return nil
}

// Placeholder returns an invisible series spanning xr so that a panel without any values
// still renders its axes and title
func Placeholder(name string, xr, yr *chart.ContinuousRange) chart.TimeSeries {
	return chart.TimeSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: drawing.ColorTransparent,
			StrokeWidth: lineWidth,
		},
		XValues: []time.Time{chart.TimeFromFloat64(xr.Min), chart.TimeFromFloat64(xr.Max)},
		YValues: []float64{yr.Min, yr.Min},
	}
}
