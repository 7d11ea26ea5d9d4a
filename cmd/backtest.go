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

package cmd

import (
	"fmt"
	"strings"

	"github.com/penny-vault/pv-charts/backtest"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var backtestTable bool

func init() {
	viper.BindEnv("backtest.input", "PVCHARTS_BACKTEST_INPUT")
	backtestCmd.Flags().String("input", "./backtestingplot/output/output.json", "Backtest output json to read")
	viper.BindPFlag("backtest.input", backtestCmd.Flags().Lookup("input"))

	viper.BindEnv("backtest.output", "PVCHARTS_BACKTEST_OUTPUT")
	backtestCmd.Flags().String("output", "./backtestingplot/output/backtesting_performance.png", "PNG file to write the performance chart to")
	viper.BindPFlag("backtest.output", backtestCmd.Flags().Lookup("output"))

	// metric names
	columnFlags := []struct {
		key   string
		flag  string
		value string
	}{
		{"backtest.columns.price", "price-column", backtest.DefaultColumns.Price},
		{"backtest.columns.performance", "performance-column", backtest.DefaultColumns.Performance},
		{"backtest.columns.volatility", "volatility-column", backtest.DefaultColumns.Volatility},
		{"backtest.columns.drawdown", "drawdown-column", backtest.DefaultColumns.Drawdown},
	}

	for _, col := range columnFlags {
		viper.BindEnv(col.key, "PVCHARTS_"+strings.ToUpper(strings.ReplaceAll(col.key, ".", "_")))
		backtestCmd.Flags().String(col.flag, col.value, fmt.Sprintf("Metric plotted in the %s panel", col.value))
		viper.BindPFlag(col.key, backtestCmd.Flags().Lookup(col.flag))
	}

	backtestCmd.Flags().BoolVar(&backtestTable, "table", false, "Print the merged metrics table")

	rootCmd.AddCommand(backtestCmd)
}

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Plot the monthly performance of a backtest",
	Long: `Read the metrics of a backtest, merge them on date and plot monthly price,
rolling performance, rolling volatility and drawdown to a single PNG.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		input := viper.GetString("backtest.input")
		output := viper.GetString("backtest.output")

		df, err := backtest.LoadOutput(input)
		if err != nil {
			log.Fatal().Err(err).Str("Input", input).Msg("could not load backtest output")
		}

		for _, summary := range df.Describe() {
			log.Info().Str("Metric", summary.Name).Int("Count", summary.Count).Float64("Mean", summary.Mean).
				Float64("StdDev", summary.StdDev).Float64("Min", summary.Min).Float64("Max", summary.Max).
				Msg("metric summary")
		}

		if backtestTable {
			fmt.Println(df.Table())
		}

		cols := backtest.Columns{
			Price:       viper.GetString("backtest.columns.price"),
			Performance: viper.GetString("backtest.columns.performance"),
			Volatility:  viper.GetString("backtest.columns.volatility"),
			Drawdown:    viper.GetString("backtest.columns.drawdown"),
		}

		if err := backtest.PlotPerformance(output, df, cols); err != nil {
			log.Fatal().Err(err).Str("Output", output).Msg("could not plot backtest performance")
		}
	},
}
