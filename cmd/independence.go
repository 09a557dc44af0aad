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
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacetoolbox/spacetoolbox/independence"
)

// independenceCmd represents the independence command
var independenceCmd = &cobra.Command{
	Use:   "independence",
	Short: "Mesh independence metrics from cell volume data files",
	Long: `
Computes the Celik representative cell length h = [(1/N) sum(V)]^(1/3) for
each supplied cell volume data file. With three grids (fine, medium,
coarse) and a reported solution scalar per grid (--phi), the full
discretization uncertainty study is evaluated: refinement factors,
apparent order, extrapolated value and fine grid convergence index.

spacetoolbox independence -f fine.csv -m medium.csv -c coarse.csv --phi 1.01,1.03,1.09`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			m   = &independenceModel{}
			err error
		)
		fmt.Println("independence called")
		m.FineFile, _ = cmd.Flags().GetString("fine")
		m.MediumFile, _ = cmd.Flags().GetString("medium")
		m.CoarseFile, _ = cmd.Flags().GetString("coarse")
		phiTxt, _ := cmd.Flags().GetString("phi")
		if len(m.FineFile) == 0 {
			fmt.Printf("error: must supply at least a fine grid volume file (-f, --fine)\n")
			os.Exit(1)
		}
		if len(phiTxt) != 0 {
			if m.Phi, err = parsePhi(phiTxt); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			m.HavePhi = true
		}
		runIndependence(m)
	},
}

type independenceModel struct {
	FineFile, MediumFile, CoarseFile string
	Phi                              [3]float64
	HavePhi                          bool
}

func parsePhi(txt string) (phi [3]float64, err error) {
	parts := strings.Split(txt, ",")
	if len(parts) != 3 {
		return phi, fmt.Errorf("--phi wants three comma separated values (fine,medium,coarse), got %q", txt)
	}
	for i, p := range parts {
		if phi[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return phi, fmt.Errorf("malformed --phi value %q: %w", p, err)
		}
	}
	return phi, nil
}

func runIndependence(m *independenceModel) {
	var (
		h     [3]float64
		files = []string{m.FineFile, m.MediumFile, m.CoarseFile}
		names = []string{"fine", "medium", "coarse"}
		nGrid int
	)
	for i, file := range files {
		if len(file) == 0 {
			break
		}
		hi, ncells, err := independence.CellLengthFromDumpFile(file)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		h[i] = hi
		nGrid++
		fmt.Printf("%12.6g\t= h (%s, %d cells, %s)\n", hi, names[i], ncells, file)
	}
	if !m.HavePhi {
		return
	}
	if nGrid != 3 {
		fmt.Printf("error: a study needs all three grid files (-f, -m, -c), got %d\n", nGrid)
		os.Exit(1)
	}
	s, err := independence.NewStudy(
		independence.Grid{H: h[0], Phi: m.Phi[0]},
		independence.Grid{H: h[1], Phi: m.Phi[1]},
		independence.Grid{H: h[2], Phi: m.Phi[2]},
	)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	s.Print()
}

func init() {
	rootCmd.AddCommand(independenceCmd)
	independenceCmd.Flags().StringP("fine", "f", "", "fine grid volume data file")
	independenceCmd.Flags().StringP("medium", "m", "", "medium grid volume data file")
	independenceCmd.Flags().StringP("coarse", "c", "", "coarse grid volume data file")
	independenceCmd.Flags().String("phi", "", "reported solution scalar per grid: fine,medium,coarse")
}
