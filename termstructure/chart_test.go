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
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pv-charts/dataframe"
	"github.com/penny-vault/pv-charts/termstructure"
)

func writeFile(fn, content string) {
	Expect(os.MkdirAll(filepath.Dir(fn), 0o755)).To(Succeed())
	Expect(os.WriteFile(fn, []byte(content), 0o644)).To(Succeed())
}

func imageSize(fn string) (int, int) {
	fh, err := os.Open(fn)
	Expect(err).To(BeNil())
	defer fh.Close()

	img, err := png.Decode(fh)
	Expect(err).To(BeNil())
	return img.Bounds().Dx(), img.Bounds().Dy()
}

const curveCSV = `date,1Y,3Y,5Y,10Y
2022-01-03,0.42,0.71,1.02,1.40
2022-01-04,0.44,0.73,1.05,1.43
2022-01-05,0.43,0.72,1.04,1.41
2022-01-06,0.47,0.78,1.10,1.48
`

var _ = Describe("Term-structure charts", func() {
	var (
		dir string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Context("scanning", func() {
		It("lists only csv files in lexical order", func() {
			writeFile(filepath.Join(dir, "b.csv"), curveCSV)
			writeFile(filepath.Join(dir, "a.csv"), curveCSV)
			writeFile(filepath.Join(dir, "notes.txt"), "not a curve")
			writeFile(filepath.Join(dir, "upper.CSV"), curveCSV)
			writeFile(filepath.Join(dir, "nested.csv", "c.csv"), curveCSV)

			files, err := termstructure.ScanDir(dir)
			Expect(err).To(BeNil())
			Expect(files).To(Equal([]string{
				filepath.Join(dir, "a.csv"),
				filepath.Join(dir, "b.csv"),
			}))
		})

		It("fails for a missing directory", func() {
			_, err := termstructure.ScanDir(filepath.Join(dir, "missing"))
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})

		DescribeTable("names curves after their file",
			func(fn, expected string) {
				Expect(termstructure.CurveName(fn)).To(Equal(expected))
			},
			Entry("plain", "/data/ITRAXX.csv", "ITRAXX"),
			Entry("ends in csv letters", "/data/docs.csv", "docs"),
			Entry("dotted", "cdx.na.ig.csv", "cdx.na.ig"),
		)
	})

	Context("plotting", func() {
		It("writes a 9x4.5 inch png", func() {
			df, err := termstructure.Load(context.Background(), strings.NewReader(curveCSV))
			Expect(err).To(BeNil())

			fn := filepath.Join(dir, "plots", "ITRAXX.png")
			Expect(termstructure.Plot(fn, "ITRAXX", df)).To(Succeed())

			width, height := imageSize(fn)
			Expect(width).To(Equal(900))
			Expect(height).To(Equal(450))
		})

		It("plots a single date", func() {
			df := &dataframe.DataFrame{
				Dates:    []time.Time{time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)},
				ColNames: []string{"1Y", "5Y"},
				Vals:     [][]float64{{0.4}, {1.1}},
			}

			fn := filepath.Join(dir, "single.png")
			Expect(termstructure.Plot(fn, "single", df)).To(Succeed())
			Expect(fn).To(BeAnExistingFile())
		})

		It("skips tenors without values", func() {
			df := &dataframe.DataFrame{
				Dates: []time.Time{
					time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC),
					time.Date(2022, 1, 4, 0, 0, 0, 0, time.UTC),
				},
				ColNames: []string{"1Y", "5Y"},
				Vals:     [][]float64{{math.NaN(), math.NaN()}, {1.1, 1.2}},
			}

			fn := filepath.Join(dir, "partial.png")
			Expect(termstructure.Plot(fn, "partial", df)).To(Succeed())
			Expect(fn).To(BeAnExistingFile())
		})

		It("fails when there is nothing to plot", func() {
			df := &dataframe.DataFrame{
				Dates:    []time.Time{},
				ColNames: []string{"1Y"},
				Vals:     [][]float64{{}},
			}

			err := termstructure.Plot(filepath.Join(dir, "empty.png"), "empty", df)
			Expect(errors.Is(err, termstructure.ErrNoData)).To(BeTrue())
		})
	})

	Context("running over a directory", func() {
		var (
			inputDir string
			plotsDir string
		)

		BeforeEach(func() {
			inputDir = filepath.Join(dir, "output")
			plotsDir = filepath.Join(dir, "plots")
		})

		It("renders each csv from its own data", func() {
			writeFile(filepath.Join(inputDir, "CDX.csv"), curveCSV)
			writeFile(filepath.Join(inputDir, "ITRAXX.csv"), "date,5Y\n2021-06-01,0.9\n2021-06-02,0.95\n")
			writeFile(filepath.Join(inputDir, "README.md"), "# curves")

			written, err := termstructure.Run(context.Background(), inputDir, plotsDir)
			Expect(err).To(BeNil())
			Expect(written).To(Equal([]string{
				filepath.Join(plotsDir, "CDX.png"),
				filepath.Join(plotsDir, "ITRAXX.png"),
			}))

			for _, fn := range written {
				width, height := imageSize(fn)
				Expect(width).To(Equal(900))
				Expect(height).To(Equal(450))
			}

			// the two curves differ so their charts must too
			cdx, err := os.ReadFile(written[0])
			Expect(err).To(BeNil())
			itraxx, err := os.ReadFile(written[1])
			Expect(err).To(BeNil())
			Expect(cdx).ToNot(Equal(itraxx))
		})

		It("stops at the first invalid csv", func() {
			writeFile(filepath.Join(inputDir, "a.csv"), curveCSV)
			writeFile(filepath.Join(inputDir, "b.csv"), "day,1Y\n2022-01-03,1\n")
			writeFile(filepath.Join(inputDir, "c.csv"), curveCSV)

			written, err := termstructure.Run(context.Background(), inputDir, plotsDir)
			Expect(errors.Is(err, termstructure.ErrMissingDateColumn)).To(BeTrue())
			Expect(written).To(Equal([]string{filepath.Join(plotsDir, "a.png")}))
			Expect(filepath.Join(plotsDir, "c.png")).ToNot(BeAnExistingFile())
		})

		It("writes nothing for an empty directory", func() {
			Expect(os.MkdirAll(inputDir, 0o755)).To(Succeed())
			written, err := termstructure.Run(context.Background(), inputDir, plotsDir)
			Expect(err).To(BeNil())
			Expect(written).To(BeEmpty())
		})

		It("honors a cancelled context", func() {
			writeFile(filepath.Join(inputDir, "a.csv"), curveCSV)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := termstructure.Run(ctx, inputDir, plotsDir)
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(filepath.Join(plotsDir, "a.png")).ToNot(BeAnExistingFile())
		})
	})
})
