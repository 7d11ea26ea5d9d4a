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
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Get index of specified column; returns -1 if column doesn't exist
func (df *DataFrame) ColIndex(colName string) int {
	for idx, val := range df.ColNames {
		if colName == val {
			return idx
		}
	}

	return -1
}

// ColCount returns the number of columns in the dataframe
func (df *DataFrame) ColCount() int {
	return len(df.ColNames)
}

// Column returns the values stored in the named column
func (df *DataFrame) Column(colName string) ([]float64, error) {
	colIdx := df.ColIndex(colName)
	if colIdx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, colName)
	}
	return df.Vals[colIdx], nil
}

// End returns the last date in the DataFrame
func (df *DataFrame) End() time.Time {
	if len(df.Dates) == 0 {
		return time.Time{}
	}
	return df.Dates[len(df.Dates)-1]
}

// Insert a new column to the end of the dataframe
func (df *DataFrame) Insert(name string, col []float64) *DataFrame {
	df.ColNames = append(df.ColNames, name)
	df.Vals = append(df.Vals, col)
	return df
}

// Len returns the number of rows in the dataframe
func (df *DataFrame) Len() int {
	return len(df.Dates)
}

// Missing returns the requested column names that are not present in the dataframe,
// in the order they were requested
func (df *DataFrame) Missing(colNames ...string) []string {
	missing := make([]string, 0)
	for _, colName := range colNames {
		if df.ColIndex(colName) == -1 {
			missing = append(missing, colName)
		}
	}
	return missing
}

// Select returns a new dataframe holding only the requested columns, in the requested order.
// Column data is shared with df
func (df *DataFrame) Select(colNames ...string) (*DataFrame, error) {
	if missing := df.Missing(colNames...); len(missing) != 0 {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, strings.Join(missing, ", "))
	}

	res := &DataFrame{
		Dates:    df.Dates,
		ColNames: make([]string, 0, len(colNames)),
		Vals:     make([][]float64, 0, len(colNames)),
	}

	for _, colName := range colNames {
		res.ColNames = append(res.ColNames, colName)
		res.Vals = append(res.Vals, df.Vals[df.ColIndex(colName)])
	}

	return res, nil
}

// Start returns the first date of the dataframe
func (df *DataFrame) Start() time.Time {
	if len(df.Dates) == 0 {
		return time.Time{}
	}
	return df.Dates[0]
}

// Table prints an ASCII formatted table
func (df *DataFrame) Table() string {
	if len(df.Dates) == 0 {
		return "<NO DATA>" // nothing to do as there is no data available in the dataframe
	}

	// construct table header
	tableCols := append([]string{"Date"}, df.ColNames...)

	// initialize table
	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader(tableCols)
	if len(tableCols) > 1 {
		footer := make([]string, len(tableCols))
		footer[0] = "Num Rows"
		footer[1] = fmt.Sprintf("%d", df.Len())
		table.SetFooter(footer)
	}
	table.SetBorder(false) // Set Border to false

	for rowIdx, dt := range df.Dates {
		row := make([]string, 0, len(df.Vals)+1)
		row = append(row, dt.Format("2006-01-02"))

		for _, col := range df.Vals {
			if math.IsNaN(col[rowIdx]) {
				row = append(row, "NaN")
			} else {
				row = append(row, fmt.Sprintf("%.4f", col[rowIdx]))
			}
		}

		table.Append(row)
	}

	table.Render()
	return s.String()
}

// Validate checks that every column has a value for every date
func (df *DataFrame) Validate() error {
	if len(df.Vals) != len(df.ColNames) {
		return fmt.Errorf("%w: %d column names for %d columns", ErrDateIndexNotAlign, len(df.ColNames), len(df.Vals))
	}

	for colIdx, col := range df.Vals {
		if len(col) != len(df.Dates) {
			return fmt.Errorf("%w: column %s has %d values for %d dates", ErrDateIndexNotAlign, df.ColNames[colIdx], len(col), len(df.Dates))
		}
	}

	return nil
}
