// Copyright 2021-2022
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

package dataframe

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary holds descriptive statistics of a single column; NaN values are ignored
type ColumnSummary struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes summary statistics for every column of the dataframe
func (df *DataFrame) Describe() []ColumnSummary {
	summaries := make([]ColumnSummary, 0, len(df.ColNames))
	for colIdx, colName := range df.ColNames {
		vals := NonNaN(df.Vals[colIdx])
		summary := ColumnSummary{
			Name:   colName,
			Count:  len(vals),
			Mean:   math.NaN(),
			StdDev: math.NaN(),
			Min:    math.NaN(),
			Max:    math.NaN(),
		}

		if len(vals) > 0 {
			summary.Min = floats.Min(vals)
			summary.Max = floats.Max(vals)
			summary.Mean = stat.Mean(vals, nil)
		}

		if len(vals) > 1 {
			summary.StdDev = stat.StdDev(vals, nil)
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// NonNaN returns a copy of vals with all NaN's removed
func NonNaN(vals []float64) []float64 {
	res := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			res = append(res, v)
		}
	}
	return res
}
