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
	"math"
	"time"

	"github.com/penny-vault/pv-charts/dataframe"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

// margin added on each side of a value range, as a fraction of the range
const valueMargin = 0.05

// tickStep is a candidate spacing between time axis ticks
type tickStep struct {
	days   int
	months int
}

var tickSteps = []tickStep{
	{days: 1},
	{days: 2},
	{days: 7},
	{days: 14},
	{months: 1},
	{months: 2},
	{months: 3},
	{months: 6},
	{months: 12},
	{months: 24},
	{months: 60},
	{months: 120},
}

// TimeRange returns the x-axis range spanning begin through end. When both dates are equal
// the range is widened by pad on each side so that the chart has a non-zero domain
func TimeRange(begin, end time.Time, pad time.Duration) *chart.ContinuousRange {
	if !end.After(begin) {
		begin = begin.Add(-pad)
		end = end.Add(pad)
	}

	return &chart.ContinuousRange{
		Min: chart.TimeToFloat64(begin),
		Max: chart.TimeToFloat64(end),
	}
}

// ValueRange returns a y-axis range covering all finite values with a small margin on each
// side. Columns without any finite value get the range [0, 1]
func ValueRange(vals ...float64) *chart.ContinuousRange {
	finite := make([]float64, 0, len(vals))
	for _, v := range dataframe.NonNaN(vals) {
		if !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	if len(finite) == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}

	low := floats.Min(finite)
	high := floats.Max(finite)
	span := high - low
	if span == 0 {
		span = math.Abs(high)
		if span == 0 {
			span = 1
		}
	}

	return &chart.ContinuousRange{
		Min: low - span*valueMargin,
		Max: high + span*valueMargin,
	}
}

// TimeTicks picks the finest tick spacing that yields at most maxTicks ticks between begin and
// end (inclusive) and labels each tick with layout
func TimeTicks(begin, end time.Time, maxTicks int, layout string) []chart.Tick {
	if maxTicks < 1 || end.Before(begin) {
		return []chart.Tick{}
	}

	var dates []time.Time
	for _, step := range tickSteps {
		var ok bool
		if dates, ok = step.dates(begin, end, maxTicks); ok {
			break
		}
	}

	ticks := make([]chart.Tick, 0, len(dates))
	for _, dt := range dates {
		ticks = append(ticks, chart.Tick{
			Value: chart.TimeToFloat64(dt),
			Label: dt.Format(layout),
		})
	}

	return ticks
}

// dates returns the tick dates between begin and end; ok is false when more than
// maxTicks dates would be needed
func (step tickStep) dates(begin, end time.Time, maxTicks int) (dates []time.Time, ok bool) {
	year, month, day := begin.Date()
	loc := begin.Location()

	var dt time.Time
	if step.days > 0 {
		dt = time.Date(year, month, day, 0, 0, 0, 0, loc)
	} else {
		dt = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		for dt.Before(begin) || !step.aligned(dt) {
			dt = dt.AddDate(0, 1, 0)
		}
	}

	for dt.Before(begin) {
		dt = dt.AddDate(0, 0, step.days)
	}

	dates = make([]time.Time, 0, maxTicks)
	for ; !dt.After(end); dt = dt.AddDate(0, step.months, step.days) {
		if len(dates) == maxTicks {
			return nil, false
		}
		dates = append(dates, dt)
	}

	return dates, true
}

// aligned reports if a month start is on the step boundary; e.g., quarterly ticks fall on
// January, April, July and October
func (step tickStep) aligned(dt time.Time) bool {
	if step.months < 12 {
		return (int(dt.Month())-1)%step.months == 0
	}
	return dt.Month() == time.January && dt.Year()%(step.months/12) == 0
}

// TimeAxis builds an x-axis over rng with the given ticks rotated by rotation degrees.
// go-chart stretches the axis to the outermost ticks, so unlabeled ticks pin both ends
// of rng when the given ticks do not reach them
func TimeAxis(name string, rng *chart.ContinuousRange, ticks []chart.Tick, rotation float64) chart.XAxis {
	inRange := make([]chart.Tick, 0, len(ticks)+2)
	for _, tick := range ticks {
		if tick.Value >= rng.Min && tick.Value <= rng.Max {
			inRange = append(inRange, tick)
		}
	}

	if len(inRange) == 0 || inRange[0].Value > rng.Min {
		inRange = append([]chart.Tick{{Value: rng.Min}}, inRange...)
	}
	if inRange[len(inRange)-1].Value < rng.Max {
		inRange = append(inRange, chart.Tick{Value: rng.Max})
	}

	return chart.XAxis{
		Name:           name,
		Range:          rng,
		Ticks:          inRange,
		TickStyle:      chart.Style{TextRotationDegrees: rotation},
		GridMajorStyle: GridStyle(),
	}
}

// ValueAxis builds a y-axis drawn on the left hand side of the chart
func ValueAxis(name string, rng *chart.ContinuousRange) chart.YAxis {
	return chart.YAxis{
		Name:           name,
		AxisType:       chart.YAxisSecondary,
		Range:          rng,
		GridMajorStyle: GridStyle(),
	}
}
