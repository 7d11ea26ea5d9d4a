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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/penny-vault/pv-charts/dataframe"
	rdf "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/rs/zerolog/log"
)

// DateColumn is the name of the column holding the curve date
const DateColumn = "date"

var utf8BOM = []byte("\ufeff")

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// LoadCSV reads the term-structure stored in the CSV file fn
func LoadCSV(ctx context.Context, fn string) (*dataframe.DataFrame, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("could not open term-structure csv: %w", err)
	}
	defer fh.Close()

	df, err := Load(ctx, fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}

	log.Info().Str("FileName", fn).Strs("Tenors", df.ColNames).Int("NumRows", df.Len()).Msg("loaded term-structure")
	if log.Debug().Enabled() {
		log.Debug().Msg("\n" + df.Table())
	}

	return df, nil
}

// Load parses a CSV with a date column and one column per tenor. The result is indexed by
// date in file order and its columns are the tenors in header order; empty cells are NaN.
// A leading UTF-8 byte order mark is ignored
func Load(ctx context.Context, r io.Reader) (*dataframe.DataFrame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read term-structure csv: %w", err)
	}

	raw, err := loadRaw(ctx, bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		if errors.Is(err, rdf.ErrNoRows) {
			return nil, ErrEmptyFile
		}
		return nil, err
	}

	return convert(raw)
}

// loadRaw reads the CSV into string series
func loadRaw(ctx context.Context, data []byte) (raw *rdf.DataFrame, err error) {
	// dataframe-go panics when the header repeats a column name
	defer func() {
		if msg := recover(); msg != nil {
			raw = nil
			err = fmt.Errorf("%w: %v", ErrDuplicateColumn, msg)
		}
	}()

	return imports.LoadFromCSV(ctx, bytes.NewReader(data), imports.CSVLoadOptions{
		TrimLeadingSpace: true,
	})
}

// convert turns the string series loaded from the CSV into a float dataframe
func convert(raw *rdf.DataFrame) (*dataframe.DataFrame, error) {
	dateIdx, err := raw.NameToColumn(DateColumn)
	if err != nil {
		return nil, ErrMissingDateColumn
	}

	nrows := raw.NRows()
	df := &dataframe.DataFrame{
		Dates:    make([]time.Time, nrows),
		ColNames: make([]string, 0, len(raw.Series)-1),
		Vals:     make([][]float64, 0, len(raw.Series)-1),
	}

	dates := raw.Series[dateIdx]
	for row := 0; row < nrows; row++ {
		dt, err := parseDate(cellString(dates.Value(row)))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		df.Dates[row] = dt
	}

	for colIdx, series := range raw.Series {
		if colIdx == dateIdx {
			continue
		}

		name := series.Name()
		col := make([]float64, nrows)
		for row := 0; row < nrows; row++ {
			val, err := parseValue(cellString(series.Value(row)))
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", row+1, name, err)
			}
			col[row] = val
		}
		df.Insert(name, col)
	}

	if df.ColCount() == 0 {
		return nil, ErrNoTenors
	}

	if err := df.Validate(); err != nil {
		return nil, err
	}

	return df, nil
}

func cellString(val interface{}) string {
	if val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprintf("%v", val)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if dt, err := time.Parse(layout, s); err == nil {
			return dt.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func parseValue(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return val, nil
}
