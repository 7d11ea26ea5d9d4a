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

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// FillToZero returns a chart element that shades the area between series and the zero line.
// xr and yr must be the ranges assigned to the chart axes; the zero line is clamped to the
// canvas when zero lies outside yr
func FillToZero(series chart.TimeSeries, xr, yr *chart.ContinuousRange, color drawing.Color) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if len(series.XValues) == 0 {
			return
		}

		px := func(idx int) int {
			return canvasBox.Left + translate(chart.TimeToFloat64(series.XValues[idx]), xr, canvasBox.Width())
		}

		py := func(v float64) int {
			y := canvasBox.Bottom - translate(v, yr, canvasBox.Height())
			if y < canvasBox.Top {
				return canvasBox.Top
			}
			if y > canvasBox.Bottom {
				return canvasBox.Bottom
			}
			return y
		}

		zero := py(0)
		last := len(series.XValues) - 1

		r.SetFillColor(color)
		r.SetStrokeWidth(0)
		r.MoveTo(px(0), zero)
		for idx, v := range series.YValues {
			r.LineTo(px(idx), py(v))
		}
		r.LineTo(px(last), zero)
		r.Close()
		r.Fill()
	}
}

// translate maps value onto a pixel offset within a domain of the given size
func translate(value float64, rng *chart.ContinuousRange, domain int) int {
	delta := rng.Max - rng.Min
	if delta == 0 {
		return 0
	}
	return int(math.Ceil((value - rng.Min) / delta * float64(domain)))
}
