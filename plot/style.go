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
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DPI used for all rendered images; sizes in inches are multiplied by DPI to get pixels
const DPI = 100.0

var (
	Blue      = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	Green     = drawing.Color{R: 0, G: 128, B: 0, A: 255}
	Orange    = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	Red       = drawing.Color{R: 255, G: 0, B: 0, A: 255}
	GridColor = drawing.Color{R: 176, G: 176, B: 176, A: 255}
)

// Palette is used to color series that do not request a specific color
var Palette = []drawing.Color{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
	{R: 188, G: 189, B: 34, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
}

// Pixels converts a size in inches to pixels
func Pixels(inches float64) int {
	return int(inches * DPI)
}

// PaletteColor returns the palette color for the idx'th series
func PaletteColor(idx int) drawing.Color {
	return Palette[idx%len(Palette)]
}

// WithAlpha returns a copy of c with its alpha channel set to the fraction alpha (0-1)
func WithAlpha(c drawing.Color, alpha float64) drawing.Color {
	c.A = uint8(alpha * 255)
	return c
}

// GridStyle is the style applied to major grid lines
func GridStyle() chart.Style {
	return chart.Style{
		StrokeColor: GridColor,
		StrokeWidth: 0.5,
	}
}
