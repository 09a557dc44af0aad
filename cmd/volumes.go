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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spacetoolbox/spacetoolbox/cellvolume"
)

const defaultVolumeFile = "volumedata.csv"

// volumesCmd represents the volumes command
var volumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "Append every cell volume of a domain snapshot to a data file",
	Long: `
Reads a per-zone cell volume export of the active domain and appends every
cell volume to the output file, one value per line with 20 fractional
digits, in host traversal order. Repeated runs append, so a file can
collect several domains. The accumulated total volume is reported on the
console.

spacetoolbox volumes -F zones.txt -o volumedata.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			m   = &volumesModel{}
		)
		fmt.Println("volumes called")
		if m.ZoneFile, err = cmd.Flags().GetString("zoneFile"); err != nil {
			panic(err)
		}
		if m.OutFile, err = cmd.Flags().GetString("outFile"); err != nil {
			panic(err)
		}
		m.Profile, _ = cmd.Flags().GetBool("profile")
		if len(m.ZoneFile) == 0 {
			fmt.Printf("error: must supply a zone file (-F, --zoneFile) with per zone cell volumes\n")
			os.Exit(1)
		}
		if len(m.OutFile) == 0 {
			m.OutFile = viper.GetString("volumes.outFile")
		}
		if len(m.OutFile) == 0 {
			m.OutFile = defaultVolumeFile
		}
		runVolumes(m)
	},
}

type volumesModel struct {
	ZoneFile string
	OutFile  string
	Profile  bool
}

func runVolumes(m *volumesModel) {
	if m.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	d, err := cellvolume.ReadZoneFileName(m.ZoneFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	res, err := cellvolume.AppendFile(d, m.OutFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%d cells written to %s\n", res.Cells, m.OutFile)
	fmt.Printf("%.20f\t= total volume\n", res.TotalVolume)
}

func init() {
	rootCmd.AddCommand(volumesCmd)
	volumesCmd.Flags().StringP("zoneFile", "F", "", "per zone cell volume export of the active domain")
	volumesCmd.Flags().StringP("outFile", "o", "", "output data file, appended to (default from config key volumes.outFile, else "+defaultVolumeFile+")")
	volumesCmd.Flags().Bool("profile", false, "write a CPU profile of the dump pass")
}
