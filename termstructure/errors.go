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

import "errors"

var (
	ErrEmptyFile         = errors.New("csv file has no header")
	ErrDuplicateColumn   = errors.New("csv header has duplicate column names")
	ErrMissingDateColumn = errors.New("csv has no date column")
	ErrInvalidDate       = errors.New("invalid date")
	ErrNoTenors          = errors.New("csv has no tenor columns")
	ErrInvalidValue      = errors.New("invalid tenor value")
	ErrNoData            = errors.New("no data to plot")
)
