package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type LatticeParameters struct {
	Title             string     `yaml:"Title"`
	GridDimensions    [3]int     `yaml:"GridDimensions"`    // grid cubes per axis
	SubdivisionLevels int        `yaml:"SubdivisionLevels"` // promotion bound for multi-resolution queries
	UnitSpacing       float64    `yaml:"UnitSpacing"`       // world units per grid unit
	MinCorner         [3]float64 `yaml:"MinCorner"`         // world position of grid origin
}

func (lp *LatticeParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, lp); err != nil {
		return err
	}
	return lp.Validate()
}

func (lp *LatticeParameters) Validate() error {
	for i := 0; i < 3; i++ {
		if lp.GridDimensions[i] < 1 {
			return fmt.Errorf("GridDimensions must be at least 1 per axis, have %v", lp.GridDimensions)
		}
	}
	if lp.SubdivisionLevels < 1 {
		return fmt.Errorf("SubdivisionLevels must be at least 1, have %d", lp.SubdivisionLevels)
	}
	if lp.UnitSpacing <= 0 {
		return fmt.Errorf("UnitSpacing must be positive, have %g", lp.UnitSpacing)
	}
	return nil
}

func (lp *LatticeParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", lp.Title)
	fmt.Printf("%v\t\t= GridDimensions\n", lp.GridDimensions)
	fmt.Printf("[%d]\t\t\t= SubdivisionLevels\n", lp.SubdivisionLevels)
	fmt.Printf("%8.5f\t\t= UnitSpacing\n", lp.UnitSpacing)
	fmt.Printf("%v\t= MinCorner\n", lp.MinCorner)
}
