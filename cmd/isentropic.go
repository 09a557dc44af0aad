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
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacetoolbox/spacetoolbox/isentropic"
)

// isentropicCmd represents the isentropic command
var isentropicCmd = &cobra.Command{
	Use:   "isentropic",
	Short: "Quasi-1D isentropic flow relations",
	Long: `
Evaluates the isentropic flow relations for a calorically perfect gas from
one of: a Mach number, a pressure ratio p/pt, or an area ratio A/A*.

spacetoolbox isentropic --mach 2.0
spacetoolbox isentropic --pressureRatio 0.1278
spacetoolbox isentropic --areaRatio 4.82 --subsonic`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			mach float64
		)
		gamma, _ := cmd.Flags().GetFloat64("gamma")
		machIn, _ := cmd.Flags().GetFloat64("mach")
		prIn, _ := cmd.Flags().GetFloat64("pressureRatio")
		arIn, _ := cmd.Flags().GetFloat64("areaRatio")
		subsonic, _ := cmd.Flags().GetBool("subsonic")

		switch {
		case machIn != 0:
			mach = machIn
		case prIn != 0:
			if mach, err = isentropic.MachFromPressureRatio(prIn, gamma); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		case arIn != 0:
			branch := isentropic.Supersonic
			if subsonic {
				branch = isentropic.Subsonic
			}
			if mach, err = isentropic.MachFromAreaRatio(arIn, gamma, branch); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		default:
			fmt.Printf("error: supply one of --mach, --pressureRatio, --areaRatio\n")
			os.Exit(1)
		}
		printRelations(mach, gamma)
	},
}

func printRelations(mach, gamma float64) {
	pr, err := isentropic.PressureRatio(mach, gamma)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	tr, _ := isentropic.TemperatureRatio(mach, gamma)
	dr, _ := isentropic.DensityRatio(mach, gamma)
	ar, _ := isentropic.AreaRatio(mach, gamma)
	fmt.Printf("%12.6f\t= gamma\n", gamma)
	fmt.Printf("%12.6f\t= Mach\n", mach)
	fmt.Printf("%12.6f\t= p/pt\n", pr)
	fmt.Printf("%12.6f\t= T/Tt\n", tr)
	fmt.Printf("%12.6f\t= rho/rhot\n", dr)
	fmt.Printf("%12.6f\t= A/A*\n", ar)
	if mach >= 1 {
		nu, _ := isentropic.PrandtlMeyer(mach, gamma)
		fmt.Printf("%12.6f\t= Prandtl-Meyer angle [deg]\n", nu*180/math.Pi)
	}
}

func init() {
	rootCmd.AddCommand(isentropicCmd)
	isentropicCmd.Flags().Float64P("mach", "M", 0, "Mach number")
	isentropicCmd.Flags().Float64P("pressureRatio", "p", 0, "static to total pressure ratio p/pt")
	isentropicCmd.Flags().Float64P("areaRatio", "a", 0, "local to throat area ratio A/A*")
	isentropicCmd.Flags().Bool("subsonic", false, "take the subsonic branch of the area-Mach inversion")
	isentropicCmd.Flags().Float64P("gamma", "g", 1.4, "heat capacity ratio")
}
