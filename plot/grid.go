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
	"image"
	"image/color"
	"image/draw"

	"github.com/wcharczuk/go-chart/v2"
)

// Grid lays out equally sized chart panels row by row into a single image
type Grid struct {
	Rows   int
	Cols   int
	Width  int
	Height int
}

// PanelSize returns the pixel dimensions of a single panel
func (g Grid) PanelSize() (width, height int) {
	return g.Width / g.Cols, g.Height / g.Rows
}

// Render draws each chart into its panel; panels[0] is top-left, panels[1] the next
// column to the right and so on
func (g Grid) Render(panels []*chart.Chart) (*image.RGBA, error) {
	if g.Rows <= 0 || g.Cols <= 0 || len(panels) != g.Rows*g.Cols {
		return nil, fmt.Errorf("%w: %d panels for %dx%d grid", ErrInvalidGrid, len(panels), g.Rows, g.Cols)
	}

	width, height := g.PanelSize()
	images := make([]image.Image, 0, len(panels))
	for idx, panel := range panels {
		panel.Width = width
		panel.Height = height
		img, err := Render(panel)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", idx, err)
		}
		images = append(images, img)
	}

	return g.Compose(images)
}

// Compose copies pre-rendered panel images into their cells on a white canvas
func (g Grid) Compose(images []image.Image) (*image.RGBA, error) {
	if g.Rows <= 0 || g.Cols <= 0 || len(images) != g.Rows*g.Cols {
		return nil, fmt.Errorf("%w: %d panels for %dx%d grid", ErrInvalidGrid, len(images), g.Rows, g.Cols)
	}

	dst := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	width, height := g.PanelSize()
	for idx, img := range images {
		row := idx / g.Cols
		col := idx % g.Cols
		cell := image.Rect(col*width, row*height, (col+1)*width, (row+1)*height)
		draw.Draw(dst, cell, img, img.Bounds().Min, draw.Over)
	}

	return dst, nil
}
