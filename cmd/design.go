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

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gonozzle/InputParameters"
	"github.com/notargets/gonozzle/engine"
)

// DesignCmd represents the design command
var DesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Builds the engine from the deck and prints the wall contour",
	Long: `
Builds the engine described by the engine deck and prints its nozzle, the chamber geometry when the
deck has one, and the wall radius at evenly spaced axial stations,

gonozzle design -I engine.yaml --samples 50`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var e *engine.Engine
		if e, err = buildEngine(); err != nil {
			return
		}
		fmt.Println(e.String())
		var (
			N    = cast.ToInt(viper.Get("samples"))
			X, Y []float64
		)
		if e.Geometry != nil {
			X, Y = e.Geometry.Sample(N)
		} else {
			X, Y = e.Nozzle.Sample(N)
		}
		fmt.Printf("%12s %12s %12s\n", "x (m)", "y (m)", "A (m^2)")
		for i := range X {
			var A float64
			if A, err = e.A(X[i]); err != nil {
				return
			}
			fmt.Printf("%12.6f %12.6f %12.6e\n", X[i], Y[i], A)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(DesignCmd)
	DesignCmd.Flags().IntP("samples", "n", 20, "number of axial stations to print")
	bindFlags(DesignCmd, "samples")
}

func buildEngine() (e *engine.Engine, err error) {
	var ed *InputParameters.EngineDeck
	if ed, err = readDeck(); err != nil {
		return
	}
	ed.Print()
	return ed.NewEngine()
}
