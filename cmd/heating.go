/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gonozzle/InputParameters"
	"github.com/notargets/gonozzle/engine"
	"github.com/notargets/gonozzle/report"
	"github.com/notargets/gonozzle/types"
)

// HeatingCmd represents the heating command
var HeatingCmd = &cobra.Command{
	Use:   "heating",
	Short: "Steady state regenerative cooling analysis",
	Long: `
Marches the coolant from the nozzle exit to the injector face and solves the heat flow through the
liner at each station. The deck must describe the chamber geometry, the cooling jacket and the
exhaust transport properties. Results are written as JSON, YAML or XLSX,

gonozzle heating -I engine.yaml -o heating.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if cast.ToBool(viper.Get("profile")) {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		}
		var (
			ed   *InputParameters.EngineDeck
			e    *engine.Engine
			opts engine.HeatingOptions
			hr   *engine.HeatingResult
		)
		if ed, err = readDeck(); err != nil {
			return
		}
		ed.Print()
		if e, err = ed.NewEngine(); err != nil {
			return
		}
		if opts, err = ed.HeatingOptions(); err != nil {
			return
		}
		if N := cast.ToInt(viper.Get("points")); N != 0 {
			opts.NumberOfPoints = N
		}
		if name := cast.ToString(viper.Get("gas-model")); name != "" {
			if opts.GasSideModel, err = types.ParseGasSideModel(name); err != nil {
				return
			}
		}
		opts.ParallelDegree = cast.ToInt(viper.Get("threads"))
		start := time.Now()
		if hr, err = e.RunHeatingAnalysis(opts); err != nil {
			return
		}
		log.WithField("elapsed", time.Since(start)).Info("heating analysis complete")
		printHeatingSummary(hr)
		if output := cast.ToString(viper.Get("output")); output != "" {
			return report.Save(output, hr)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(HeatingCmd)
	HeatingCmd.Flags().StringP("output", "o", "", "file for the station results, .json, .yaml or .xlsx")
	HeatingCmd.Flags().Int("points", 0, "number of axial stations, overrides the deck")
	HeatingCmd.Flags().String("gas-model", "", "gas side correlation: rpe, bartz or bartz-sigma, overrides the deck")
	HeatingCmd.Flags().Int("threads", 0, "threads for the Mach number pass, 0 uses every CPU")
	HeatingCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
	bindFlags(HeatingCmd, "output", "points", "gas-model", "threads", "profile")
}

func printHeatingSummary(hr *engine.HeatingResult) {
	var (
		peak engine.StationResult
		last = hr.Stations[len(hr.Stations)-1]
	)
	for _, sr := range hr.Stations {
		if sr.HeatFluxPerArea > peak.HeatFluxPerArea {
			peak = sr
		}
	}
	fmt.Printf("Peak heat flux %g W/m^2 at x = %g m, gas side wall temperature %g K\n",
		peak.HeatFluxPerArea, peak.X, peak.WallTemperatureInner)
	fmt.Printf("Coolant outlet temperature %g K\n", last.CoolantTemperature)
	if hr.Boiled() {
		fmt.Printf("Coolant boils at x = %g m\n", *hr.BoilOffPosition)
	} else {
		fmt.Println("Coolant stays liquid")
	}
}
