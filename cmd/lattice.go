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
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/meshcut/vntet/InputParameters"
	"github.com/meshcut/vntet/lattice"
)

type ModelLattice struct {
	ParamFile string
	Probes    int
	Profile   bool
}

// LatticeCmd represents the lattice command
var LatticeCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Build a BCC tetrahedral lattice, embed probe points and report the solver tables",
	Long:  `Build a BCC tetrahedral lattice, embed probe points and report the solver tables`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("lattice called")
		ml := &ModelLattice{}
		if ml.ParamFile, err = cmd.Flags().GetString("paramFile"); err != nil {
			panic(err)
		}
		ml.Probes, _ = cmd.Flags().GetInt("probes")
		ml.Profile, _ = cmd.Flags().GetBool("profile")
		lp := processLatticeInput(ml)
		RunLattice(ml, lp)
	},
}

func processLatticeInput(ml *ModelLattice) (lp *InputParameters.LatticeParameters) {
	var (
		err error
	)
	if len(ml.ParamFile) == 0 {
		err = fmt.Errorf("must supply a lattice parameters file (-I, --paramFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Lattice"
GridDimensions: [4, 4, 4]
SubdivisionLevels: 3
UnitSpacing: 1.
MinCorner: [0., 0., 0.]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(ml.ParamFile); err != nil {
		panic(err)
	}
	lp = &InputParameters.LatticeParameters{}
	if err = lp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(LatticeCmd)
	LatticeCmd.Flags().StringP("paramFile", "I", "", "YAML file for lattice parameters like:\n\t- GridDimensions\n\t- UnitSpacing")
	LatticeCmd.Flags().IntP("probes", "n", 100, "number of probe points embedded along the grid diagonal")
	LatticeCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the lattice build")
}

func RunLattice(ml *ModelLattice, lp *InputParameters.LatticeParameters) {
	if ml.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	lp.Print()
	var (
		lat = lattice.NewLattice(lp.SubdivisionLevels, lp.UnitSpacing,
			lattice.Vec3{lp.MinCorner[0], lp.MinCorner[1], lp.MinCorner[2]})
		b   = lattice.NewBuilder(lat)
		min = lattice.GridLocus{1, 1, 1}
		max = lattice.GridLocus{
			1 + int32(lp.GridDimensions[0]),
			1 + int32(lp.GridDimensions[1]),
			1 + int32(lp.GridDimensions[2]),
		}
	)
	b.FillCubes(min, max)
	fmt.Printf("nodes: %d, tets: %d\n", lat.NodeCount(), lat.TetCount())

	// probe points along the cube-fill diagonal, embedded and reconstructed
	var (
		lo   = min.Vec3().Add(lattice.Vec3{0.25, 0.25, 0.25})
		hi   = max.Vec3().Sub(lattice.Vec3{0.25, 0.25, 0.25})
		span = hi.Sub(lo)
		errM float64
	)
	for i := 0; i < ml.Probes; i++ {
		t := float64(i) / float64(ml.Probes-1)
		p := lo.Add(span.Scale(t))
		b.EmbedVertexAt(i, p)
		q := lat.VertexGridLocus(i)
		errM = math.Max(errM, q.Sub(p).Length2())
	}
	fmt.Printf("probes embedded: %d, max position error^2: %8.5e\n", ml.Probes, errM)

	R := lat.IncidenceMatrix()
	fmt.Printf("incidence matrix %q: %d nonzeros\n", R.Name(), R.NNZ())
}
