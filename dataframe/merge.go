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

package dataframe

import (
	"math"
	"sort"
	"time"
)

// Merge performs an outer join of all dataframes on their date index. The resulting
// date index is the sorted union of every input date; a column that has no value on
// a given date is filled with NaN. Columns keep the order of the input dataframes.
//
// Assumptions:
//  1. each input has a unique date index
//  2. Vals of each input align with its Dates (see Validate)
func Merge(dfs ...*DataFrame) *DataFrame {
	merged := &DataFrame{
		Dates:    []time.Time{},
		ColNames: []string{},
		Vals:     [][]float64{},
	}

	// build the union of all dates
	seen := make(map[int64]bool)
	for _, df := range dfs {
		for _, dt := range df.Dates {
			key := dt.UnixNano()
			if !seen[key] {
				seen[key] = true
				merged.Dates = append(merged.Dates, dt)
			}
		}
	}

	sort.Slice(merged.Dates, func(i, j int) bool {
		return merged.Dates[i].Before(merged.Dates[j])
	})

	rowMap := make(map[int64]int, len(merged.Dates))
	for rowIdx, dt := range merged.Dates {
		rowMap[dt.UnixNano()] = rowIdx
	}

	// copy each column into its position on the merged index
	for _, df := range dfs {
		for colIdx, colName := range df.ColNames {
			col := make([]float64, len(merged.Dates))
			for rowIdx := range col {
				col[rowIdx] = math.NaN()
			}

			for rowIdx, dt := range df.Dates {
				col[rowMap[dt.UnixNano()]] = df.Vals[colIdx][rowIdx]
			}

			merged.Insert(colName, col)
		}
	}

	return merged
}
