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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/gonozzle/engine"
	"github.com/notargets/gonozzle/types"
)

// PerformanceCmd represents the performance command
var PerformanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Thrust, specific impulse and flow separation at a list of ambient pressures",
	Long: `
Evaluates thrust and specific impulse at each ambient pressure. Ambient pressures where the nozzle
flow separates are reported with the separation position instead,

gonozzle performance -I engine.yaml --pamb 101325,50000,0`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			e     *engine.Engine
			pAmbs []float64
			pSep  float64
		)
		if e, err = buildEngine(); err != nil {
			return
		}
		if pAmbs, err = Float64s("pamb"); err != nil {
			return
		}
		if pSep, err = e.SeparationPAmb(); err != nil {
			return
		}
		fmt.Printf("Flow separates at the exit above an ambient pressure of %g Pa\n", pSep)
		fmt.Printf("%14s %14s %12s\n", "pAmb (Pa)", "Thrust (N)", "Isp (s)")
		for _, pAmb := range pAmbs {
			var (
				F, isp float64
				se     *types.SeparationError
			)
			F, err = e.Thrust(pAmb)
			if errors.As(err, &se) {
				fmt.Printf("%14.2f separated at x = %g m\n", pAmb, se.Position)
				continue
			}
			if err != nil {
				return
			}
			if isp, err = e.Isp(pAmb); err != nil {
				return
			}
			fmt.Printf("%14.2f %14.2f %12.3f\n", pAmb, F, isp)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(PerformanceCmd)
	PerformanceCmd.Flags().StringSlice("pamb", []string{"101325", "0"}, "ambient pressures (Pa)")
	bindFlags(PerformanceCmd, "pamb")
}
