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

import "errors"

var (
	ErrMalformedJSON    = errors.New("malformed backtest output json")
	ErrMissingMetrics   = errors.New("backtest output has no metrics object")
	ErrMissingField     = errors.New("metric value is missing a required field")
	ErrInvalidTimestamp = errors.New("invalid metric timestamp")
	ErrInvalidValue     = errors.New("invalid metric value")
	ErrMissingColumns   = errors.New("metrics required for the performance chart are missing")
	ErrNoData           = errors.New("no data to plot")
)
