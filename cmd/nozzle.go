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
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacetoolbox/spacetoolbox/nozzle"
)

// nozzleCmd represents the nozzle command
var nozzleCmd = &cobra.Command{
	Use:   "nozzle",
	Short: "Generate a conical or Rao bell nozzle wall contour",
	Long: `
Reads a YAML nozzle design parameter file, generates the wall contour and
writes it as a semicolon separated x;y CSV file with the throat center at
the origin. Supplying chamber and exit pressures also reports the ideal
thrust coefficient.

spacetoolbox nozzle -I design.yaml -t rao -o contour.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			m   = &nozzleModel{}
			err error
		)
		fmt.Println("nozzle called")
		if m.DesignFile, err = cmd.Flags().GetString("designFile"); err != nil {
			panic(err)
		}
		m.ContourType, _ = cmd.Flags().GetString("type")
		m.OutFile, _ = cmd.Flags().GetString("outFile")
		m.Gamma, _ = cmd.Flags().GetFloat64("gamma")
		m.PressureTotal, _ = cmd.Flags().GetFloat64("totalPressure")
		m.PressureExit, _ = cmd.Flags().GetFloat64("exitPressure")
		m.PressureAtmos, _ = cmd.Flags().GetFloat64("ambientPressure")
		dp := processNozzleInput(m)
		runNozzle(m, dp)
	},
}

type nozzleModel struct {
	DesignFile    string
	ContourType   string
	OutFile       string
	Gamma         float64
	PressureTotal float64
	PressureExit  float64
	PressureAtmos float64
}

func processNozzleInput(m *nozzleModel) (dp *nozzle.DesignParameters) {
	if len(m.DesignFile) == 0 {
		err := fmt.Errorf("must supply a design parameter file (-I, --designFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Demo Nozzle"
ThroatRadius: 4.3263
AreaRatio: 4.82
DivergentHalfAngle: 15
ConvergentHalfAngle: 50
ArcFactor: 1.5
ContractionRatio: 3.467166
ChamberLength: 15
ChamberTransitionRadius: 5
InflectionAngle: 30   # bell only
ExitAngle: 12         # bell only
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := ioutil.ReadFile(m.DesignFile)
	if err != nil {
		panic(err)
	}
	dp = &nozzle.DesignParameters{}
	if err = dp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func runNozzle(m *nozzleModel, dp *nozzle.DesignParameters) {
	var (
		c   nozzle.Contour
		err error
	)
	dp.Print()
	switch m.ContourType {
	case "conical":
		c, err = nozzle.Conical(*dp)
	case "rao":
		c, err = nozzle.RaoBell(*dp)
	default:
		fmt.Printf("error: unknown contour type %q, want conical or rao\n", m.ContourType)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = c.ExportCSV(m.OutFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%d contour points written to %s\n", len(c), m.OutFile)
	fmt.Printf("%12.6f\t= nozzle length\n", c.Length())
	fmt.Printf("%12.6f\t= exit radius\n", c.ExitRadius())
	if m.PressureTotal > 0 {
		cf, err := nozzle.IdealThrustCoefficient(m.Gamma, m.PressureTotal, dp.AreaRatio, m.PressureExit, m.PressureAtmos)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("%12.6f\t= ideal thrust coefficient\n", cf)
	}
}

func init() {
	rootCmd.AddCommand(nozzleCmd)
	nozzleCmd.Flags().StringP("designFile", "I", "", "YAML file with the nozzle design parameters")
	nozzleCmd.Flags().StringP("type", "t", "conical", "contour type: conical or rao")
	nozzleCmd.Flags().StringP("outFile", "o", "contour.csv", "contour CSV output file")
	nozzleCmd.Flags().Float64P("gamma", "g", 1.4, "heat capacity ratio for the thrust coefficient")
	nozzleCmd.Flags().Float64("totalPressure", 0, "chamber total pressure; enables the thrust coefficient report")
	nozzleCmd.Flags().Float64("exitPressure", 0, "nozzle exit pressure")
	nozzleCmd.Flags().Float64("ambientPressure", 0, "ambient pressure at the nozzle exit")
}
