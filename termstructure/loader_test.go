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

package termstructure_test

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pv-charts/termstructure"
)

var _ = Describe("Loader", func() {
	var (
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("indexes tenors by date in header order", func() {
		csv := "date,1Y,5Y\n2022-01-03,0.5,1.25\n2022-01-04,0.55,1.3\n"
		df, err := termstructure.Load(ctx, strings.NewReader(csv))
		Expect(err).To(BeNil())
		Expect(df.ColNames).To(Equal([]string{"1Y", "5Y"}))
		Expect(df.Dates).To(Equal([]time.Time{
			time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2022, 1, 4, 0, 0, 0, 0, time.UTC),
		}))
		Expect(df.Vals[0]).To(Equal([]float64{0.5, 0.55}))
		Expect(df.Vals[1]).To(Equal([]float64{1.25, 1.3}))
	})

	It("allows the date column anywhere in the header", func() {
		csv := "10Y,date,3Y\n2.0,2022-01-03,1.0\n"
		df, err := termstructure.Load(ctx, strings.NewReader(csv))
		Expect(err).To(BeNil())
		Expect(df.ColNames).To(Equal([]string{"10Y", "3Y"}))
		Expect(df.Vals[0]).To(Equal([]float64{2.0}))
		Expect(df.Vals[1]).To(Equal([]float64{1.0}))
	})

	It("keeps rows in file order", func() {
		csv := "date,1Y\n2022-01-05,1\n2022-01-03,2\n2022-01-04,3\n"
		df, err := termstructure.Load(ctx, strings.NewReader(csv))
		Expect(err).To(BeNil())
		Expect(df.Dates[0].Day()).To(Equal(5))
		Expect(df.Dates[1].Day()).To(Equal(3))
		Expect(df.Dates[2].Day()).To(Equal(4))
	})

	It("treats empty cells as missing", func() {
		csv := "date,1Y,5Y\n2022-01-03,,1.25\n"
		df, err := termstructure.Load(ctx, strings.NewReader(csv))
		Expect(err).To(BeNil())
		Expect(math.IsNaN(df.Vals[0][0])).To(BeTrue())
		Expect(df.Vals[1][0]).To(Equal(1.25))
	})

	It("ignores a byte order mark before the header", func() {
		df, err := termstructure.Load(ctx, strings.NewReader("\ufeffdate,1Y\n2022-01-03,0.5\n"))
		Expect(err).To(BeNil())
		Expect(df.ColNames).To(Equal([]string{"1Y"}))
		Expect(df.Dates).To(Equal([]time.Time{time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)}))
		Expect(df.Vals[0]).To(Equal([]float64{0.5}))
	})

	It("returns an empty table for a header without rows", func() {
		df, err := termstructure.Load(ctx, strings.NewReader("date,1Y\n"))
		Expect(err).To(BeNil())
		Expect(df.Len()).To(Equal(0))
		Expect(df.ColNames).To(Equal([]string{"1Y"}))
	})

	DescribeTable("parses dates",
		func(ts string, expected time.Time) {
			df, err := termstructure.Load(ctx, strings.NewReader("date,1Y\n"+ts+",1\n"))
			Expect(err).To(BeNil())
			Expect(df.Dates[0]).To(BeTemporally("==", expected))
		},
		Entry("date", "2022-01-03", time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)),
		Entry("date and time", "2022-01-03 16:00:00", time.Date(2022, 1, 3, 16, 0, 0, 0, time.UTC)),
		Entry("rfc3339", "2022-01-03T16:00:00Z", time.Date(2022, 1, 3, 16, 0, 0, 0, time.UTC)),
	)

	DescribeTable("rejects invalid files",
		func(csv string, expected error) {
			_, err := termstructure.Load(ctx, strings.NewReader(csv))
			Expect(errors.Is(err, expected)).To(BeTrue(), "got %v", err)
		},
		Entry("empty file", "", termstructure.ErrEmptyFile),
		Entry("no date column", "day,1Y\n2022-01-03,1\n", termstructure.ErrMissingDateColumn),
		Entry("no tenors", "date\n2022-01-03\n", termstructure.ErrNoTenors),
		Entry("bad date", "date,1Y\n01/03/2022,1\n", termstructure.ErrInvalidDate),
		Entry("bad value", "date,1Y\n2022-01-03,wide\n", termstructure.ErrInvalidValue),
		Entry("duplicate tenor", "date,1Y,1Y\n2022-01-03,1,2\n", termstructure.ErrDuplicateColumn),
		Entry("duplicate date column", "date,date,1Y\n2022-01-03,2022-01-03,1\n", termstructure.ErrDuplicateColumn),
		Entry("byte order mark only", "\ufeff", termstructure.ErrEmptyFile),
	)

	It("stops when the context is cancelled", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := termstructure.Load(cancelled, strings.NewReader("date,1Y\n2022-01-03,1\n"))
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	Context("reading from disk", func() {
		It("loads a csv file", func() {
			fn := filepath.Join(GinkgoT().TempDir(), "ITRAXX.csv")
			Expect(os.WriteFile(fn, []byte("date,1Y,5Y\n2022-01-03,0.5,1.25\n"), 0o644)).To(Succeed())

			df, err := termstructure.LoadCSV(ctx, fn)
			Expect(err).To(BeNil())
			Expect(df.ColNames).To(Equal([]string{"1Y", "5Y"}))
		})

		It("loads a csv file saved with a byte order mark", func() {
			fn := filepath.Join(GinkgoT().TempDir(), "CDX.csv")
			Expect(os.WriteFile(fn, []byte("\ufeffdate,3Y\n2022-01-03,0.75\n"), 0o644)).To(Succeed())

			df, err := termstructure.LoadCSV(ctx, fn)
			Expect(err).To(BeNil())
			Expect(df.ColNames).To(Equal([]string{"3Y"}))
		})

		It("fails when the file does not exist", func() {
			_, err := termstructure.LoadCSV(ctx, filepath.Join(GinkgoT().TempDir(), "missing.csv"))
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})
	})
})
