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
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Run renders a chart into plotsDir for every CSV found in inputDir and returns the paths
// written. Each chart is named after its CSV. Processing stops at the first failure or when
// ctx is cancelled
func Run(ctx context.Context, inputDir, plotsDir string) ([]string, error) {
	files, err := ScanDir(inputDir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		log.Warn().Str("InputDir", inputDir).Msg("no term-structure csv files found")
	}

	written := make([]string, 0, len(files))
	for _, fn := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		df, err := LoadCSV(ctx, fn)
		if err != nil {
			return written, err
		}

		name := CurveName(fn)
		out := filepath.Join(plotsDir, name+".png")
		if err := Plot(out, name, df); err != nil {
			return written, err
		}
		written = append(written, out)
	}

	log.Info().Str("InputDir", inputDir).Str("PlotsDir", plotsDir).Int("NumCharts", len(written)).Msg("rendered term-structure charts")
	return written, nil
}
