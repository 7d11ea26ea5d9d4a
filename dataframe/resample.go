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
	"time"

	"github.com/rs/zerolog/log"
)

// PeriodEnd returns the date (at midnight, in the location of dt) that closes the period
// of the given frequency containing dt.
func PeriodEnd(dt time.Time, frequency Frequency) (time.Time, error) {
	year, month, _ := dt.Date()

	switch frequency {
	case MonthEnd:
		// day 0 of the next month is the last day of this month
		return time.Date(year, month+1, 0, 0, 0, 0, 0, dt.Location()), nil
	default:
		return time.Time{}, ErrUnknownFrequency
	}
}

// Resample returns a new dataframe with one row per period of the requested frequency
// spanning the first through the last date of df. Each row is labelled with the period's
// end date and holds the last non-NaN value observed in that period; periods without any
// observation are NaN. Dates in df must be sorted ascending.
//
// NOTE: unknown frequencies panic, the same as a programming error
func (df *DataFrame) Resample(frequency Frequency) *DataFrame {
	if _, err := PeriodEnd(time.Time{}, frequency); err != nil {
		log.Panic().Err(err).Str("Frequency", string(frequency)).Msg("unknown frequency provided to dataframe resample function")
	}

	res := &DataFrame{
		Dates:    []time.Time{},
		ColNames: df.ColNames,
		Vals:     make([][]float64, len(df.ColNames)),
	}

	if df.Len() == 0 {
		for colIdx := range res.Vals {
			res.Vals[colIdx] = []float64{}
		}
		return res
	}

	// build the period index
	periodMap := make(map[string]int)
	first, _ := PeriodEnd(df.Start(), frequency)
	last, _ := PeriodEnd(df.End(), frequency)
	for dt := first; !dt.After(last); {
		periodMap[dt.Format("2006-01-02")] = len(res.Dates)
		res.Dates = append(res.Dates, dt)
		dt, _ = PeriodEnd(dt.AddDate(0, 0, 1), frequency)
	}

	for colIdx := range res.Vals {
		res.Vals[colIdx] = make([]float64, len(res.Dates))
		for rowIdx := range res.Vals[colIdx] {
			res.Vals[colIdx][rowIdx] = math.NaN()
		}
	}

	for rowIdx, dt := range df.Dates {
		periodEnd, _ := PeriodEnd(dt, frequency)
		periodIdx, ok := periodMap[periodEnd.Format("2006-01-02")]
		if !ok {
			log.Warn().Time("Date", dt).Str("Frequency", string(frequency)).Msg("date falls outside of resample range; dates must be sorted")
			continue
		}

		for colIdx, col := range df.Vals {
			if !math.IsNaN(col[rowIdx]) {
				res.Vals[colIdx][periodIdx] = col[rowIdx]
			}
		}
	}

	return res
}
