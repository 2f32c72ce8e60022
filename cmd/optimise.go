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
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gonozzle/engine"
	"github.com/notargets/gonozzle/provider"
	"github.com/notargets/gonozzle/types"
)

// OptimiseCmd represents the optimise command
var OptimiseCmd = &cobra.Command{
	Use:   "optimise",
	Short: "Searches the nozzle exit area for the best altitude averaged Isp or apogee",
	Long: `
Holds the throat fixed and searches the exit to throat area ratio. Area ratios that separate at
sea level are excluded. The objective is either the specific impulse averaged over a list of
altitudes or the apogee of a vertical flight,

gonozzle optimise -I engine.yaml --objective isp --altitudes 0,5000,10000
gonozzle optimise -I engine.yaml --objective apogee --dry-mass 60 --propellant-mass 50 --area 0.03`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			e     *engine.Engine
			obj   engine.Objective
			best  *engine.Engine
			score float64
		)
		if e, err = buildEngine(); err != nil {
			return
		}
		if obj, err = newObjective(); err != nil {
			return
		}
		opts := engine.SweepOptions{
			MinAreaRatio:   cast.ToFloat64(viper.Get("min-ratio")),
			MaxAreaRatio:   cast.ToFloat64(viper.Get("max-ratio")),
			MaxEvaluations: cast.ToInt(viper.Get("max-evaluations")),
		}
		if best, score, err = e.OptimiseExitArea(obj, opts); err != nil {
			return
		}
		fmt.Printf("Best area ratio = %g, objective = %g\n", best.Nozzle.Ae/best.Nozzle.At, score)
		fmt.Println(best.Nozzle.String())
		return
	},
}

func init() {
	rootCmd.AddCommand(OptimiseCmd)
	OptimiseCmd.Flags().String("objective", "isp", "isp (altitude averaged) or apogee")
	OptimiseCmd.Flags().StringSlice("altitudes", []string{"0", "5000", "10000", "20000"}, "altitudes for the isp objective (m)")
	OptimiseCmd.Flags().Float64("dry-mass", 0, "vehicle dry mass for the apogee objective (kg)")
	OptimiseCmd.Flags().Float64("propellant-mass", 0, "propellant mass for the apogee objective (kg)")
	OptimiseCmd.Flags().Float64("area", 0, "vehicle cross sectional area for the apogee objective (m^2)")
	OptimiseCmd.Flags().Float64("cd", 0, "vehicle drag coefficient, 0.75 when left at zero")
	OptimiseCmd.Flags().Float64("min-ratio", 0, "smallest area ratio, 1 when left at zero")
	OptimiseCmd.Flags().Float64("max-ratio", 0, "largest area ratio, 100 when left at zero")
	OptimiseCmd.Flags().Int("max-evaluations", 0, "objective evaluations, 200 when left at zero")
	bindFlags(OptimiseCmd, "objective", "altitudes", "dry-mass", "propellant-mass", "area", "cd",
		"min-ratio", "max-ratio", "max-evaluations")
}

func newObjective() (obj engine.Objective, err error) {
	var atm = provider.NewStandardAtmosphere()
	switch name := strings.ToLower(cast.ToString(viper.Get("objective"))); name {
	case "isp":
		var altitudes []float64
		if altitudes, err = Float64s("altitudes"); err != nil {
			return
		}
		obj = engine.AltitudeAveragedIsp{Atmosphere: atm, Altitudes: altitudes}
	case "apogee":
		obj = engine.Apogee{
			Atmosphere:         atm,
			DryMass:            cast.ToFloat64(viper.Get("dry-mass")),
			PropellantMass:     cast.ToFloat64(viper.Get("propellant-mass")),
			CrossSectionalArea: cast.ToFloat64(viper.Get("area")),
			DragCoefficient:    cast.ToFloat64(viper.Get("cd")),
		}
	default:
		err = fmt.Errorf("%w: unknown objective %q, try \"isp\" or \"apogee\"", types.ErrConfiguration, name)
	}
	return
}
