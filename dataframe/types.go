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
	"errors"
	"time"
)

// DataFrame stores a table of values organized by date
// the vals array is column major - e.g.,
// DATE        price  drawdown
// 2021-01-29  1      -0.1
// 2021-02-26  2      -0.2
//
// Vals[0][1] = 2
// Vals[1][0] = -0.1
//
// Missing values are stored as math.NaN()
type DataFrame struct {
	Dates    []time.Time
	ColNames []string
	Vals     [][]float64
}

// Defines a time period - typically used to resample a dataframe
type Frequency string

const (
	MonthEnd Frequency = "MonthEnd"
	Monthly  Frequency = "MonthEnd"
)

var (
	ErrColumnNotFound    = errors.New("column not found")
	ErrUnknownFrequency  = errors.New("unknown frequency")
	ErrDateIndexNotAlign = errors.New("date index does not align with values")
)
