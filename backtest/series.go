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

package backtest

import (
	"sort"
	"time"

	"github.com/penny-vault/pv-charts/dataframe"
	"github.com/rs/zerolog/log"
)

// MetricSeries is a single named metric of a backtest, e.g. price or drawdown
type MetricSeries struct {
	Name  string
	Dates []time.Time
	Vals  []float64
}

// Len returns the number of observations in the series
func (s *MetricSeries) Len() int {
	return len(s.Dates)
}

// Normalize sorts observations ascending by date. When the same date occurs more than
// once the last observation in input order is kept
func (s *MetricSeries) Normalize() *MetricSeries {
	order := make([]int, len(s.Dates))
	for idx := range order {
		order[idx] = idx
	}

	sort.SliceStable(order, func(i, j int) bool {
		return s.Dates[order[i]].Before(s.Dates[order[j]])
	})

	dates := make([]time.Time, 0, len(s.Dates))
	vals := make([]float64, 0, len(s.Vals))
	for _, idx := range order {
		last := len(dates) - 1
		if last >= 0 && dates[last].Equal(s.Dates[idx]) {
			log.Warn().Str("Metric", s.Name).Time("Date", s.Dates[idx]).Msg("duplicate timestamp in metric; keeping last value")
			vals[last] = s.Vals[idx]
			continue
		}
		dates = append(dates, s.Dates[idx])
		vals = append(vals, s.Vals[idx])
	}

	s.Dates = dates
	s.Vals = vals
	return s
}

// DataFrame converts the series into a single column dataframe named after the metric
func (s *MetricSeries) DataFrame() *dataframe.DataFrame {
	return &dataframe.DataFrame{
		Dates:    s.Dates,
		ColNames: []string{s.Name},
		Vals:     [][]float64{s.Vals},
	}
}
