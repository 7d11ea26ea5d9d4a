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
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/wcharczuk/go-chart/v2"
)

// Render draws the chart and returns the resulting raster image
func Render(ch *chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRender, err.Error())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRender, err.Error())
	}

	return img, nil
}

// Save renders the chart as a PNG at path
func Save(path string, ch *chart.Chart) error {
	img, err := Render(ch)
	if err != nil {
		return err
	}
	return WritePNG(path, img)
}

// WritePNG encodes img as a PNG at path. Missing parent directories are created and an
// existing file is overwritten
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err.Error())
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err.Error())
	}

	if err := png.Encode(fh, img); err != nil {
		fh.Close()
		return fmt.Errorf("%w: %s", ErrWriteFailure, err.Error())
	}

	if err := fh.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err.Error())
	}

	bounds := img.Bounds()
	log.Debug().Str("Path", path).Int("Width", bounds.Dx()).Int("Height", bounds.Dy()).Msg("wrote image")
	return nil
}
