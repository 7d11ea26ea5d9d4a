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
	"github.com/penny-vault/pv-charts/termstructure"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	viper.BindEnv("curves.input_dir", "PVCHARTS_CURVES_INPUT_DIR")
	curvesCmd.Flags().String("input-dir", "./cdsanalysis/output", "Directory of term-structure csv files")
	viper.BindPFlag("curves.input_dir", curvesCmd.Flags().Lookup("input-dir"))

	viper.BindEnv("curves.plots_dir", "PVCHARTS_CURVES_PLOTS_DIR")
	curvesCmd.Flags().String("plots-dir", "./cdsanalysis/plots", "Directory to write the charts to")
	viper.BindPFlag("curves.plots_dir", curvesCmd.Flags().Lookup("plots-dir"))

	rootCmd.AddCommand(curvesCmd)
}

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Plot every term-structure csv in a directory",
	Long: `Plot one line per tenor for every csv file in the input directory. Each
chart is saved in the plots directory under the name of its csv.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		inputDir := viper.GetString("curves.input_dir")
		plotsDir := viper.GetString("curves.plots_dir")

		written, err := termstructure.Run(cmd.Context(), inputDir, plotsDir)
		if err != nil {
			log.Fatal().Err(err).Str("InputDir", inputDir).Int("NumWritten", len(written)).Msg("could not plot term-structures")
		}
	},
}
