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

package dataframe_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pv-charts/dataframe"
)

var _ = Describe("When merging dataframes", func() {
	var (
		d1 time.Time
		d2 time.Time
		d3 time.Time
		a  *dataframe.DataFrame
		b  *dataframe.DataFrame
	)

	BeforeEach(func() {
		d1 = time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC)
		d2 = time.Date(2021, time.January, 5, 0, 0, 0, 0, time.UTC)
		d3 = time.Date(2021, time.January, 6, 0, 0, 0, 0, time.UTC)

		a = &dataframe.DataFrame{
			Dates:    []time.Time{d1, d2},
			ColNames: []string{"a"},
			Vals:     [][]float64{{1, 2}},
		}

		b = &dataframe.DataFrame{
			Dates:    []time.Time{d1},
			ColNames: []string{"b"},
			Vals:     [][]float64{{3}},
		}
	})

	It("outer joins on the date index", func() {
		df := dataframe.Merge(a, b)
		Expect(df.Validate()).To(Succeed())
		Expect(df.ColNames).To(Equal([]string{"a", "b"}))
		Expect(df.Dates).To(Equal([]time.Time{d1, d2}))
		Expect(df.Vals[0]).To(Equal([]float64{1, 2}))
		Expect(df.Vals[1][0]).To(BeNumerically("==", 3))
		Expect(math.IsNaN(df.Vals[1][1])).To(BeTrue())
	})

	It("keeps column order of the inputs", func() {
		df := dataframe.Merge(b, a)
		Expect(df.ColNames).To(Equal([]string{"b", "a"}))
		Expect(df.Dates).To(Equal([]time.Time{d1, d2}))
	})

	It("sorts the union of dates ascending", func() {
		c := &dataframe.DataFrame{
			Dates:    []time.Time{d3, d1},
			ColNames: []string{"c"},
			Vals:     [][]float64{{30, 10}},
		}

		df := dataframe.Merge(a, c)
		Expect(df.Dates).To(Equal([]time.Time{d1, d2, d3}))
		Expect(df.Vals[1][0]).To(BeNumerically("==", 10))
		Expect(math.IsNaN(df.Vals[1][1])).To(BeTrue())
		Expect(df.Vals[1][2]).To(BeNumerically("==", 30))
		Expect(math.IsNaN(df.Vals[0][2])).To(BeTrue())
	})

	It("yields rows for dates of disjoint series", func() {
		c := &dataframe.DataFrame{
			Dates:    []time.Time{d3},
			ColNames: []string{"c"},
			Vals:     [][]float64{{30}},
		}

		df := dataframe.Merge(b, c)
		Expect(df.Len()).To(Equal(2))
		Expect(df.ColCount()).To(Equal(2))
	})

	It("matches equal instants in different locations", func() {
		tz := time.FixedZone("UTC+2", 2*60*60)
		c := &dataframe.DataFrame{
			Dates:    []time.Time{d1.In(tz)},
			ColNames: []string{"c"},
			Vals:     [][]float64{{7}},
		}

		df := dataframe.Merge(a, c)
		Expect(df.Len()).To(Equal(2))
		Expect(df.Vals[1][0]).To(BeNumerically("==", 7))
	})

	It("produces an empty dataframe without inputs", func() {
		df := dataframe.Merge()
		Expect(df.Len()).To(Equal(0))
		Expect(df.ColCount()).To(Equal(0))
	})

	It("keeps a column with no values", func() {
		empty := &dataframe.DataFrame{
			Dates:    []time.Time{},
			ColNames: []string{"empty"},
			Vals:     [][]float64{{}},
		}

		df := dataframe.Merge(a, empty)
		Expect(df.ColNames).To(Equal([]string{"a", "empty"}))
		Expect(df.Validate()).To(Succeed())
		Expect(math.IsNaN(df.Vals[1][0])).To(BeTrue())
		Expect(math.IsNaN(df.Vals[1][1])).To(BeTrue())
	})
})
