/*
Package nozzle generates axisymmetric rocket nozzle wall contours, conical
and Rao parabolic-approximation bell, following the procedures in Huzel,
Modern Engineering for Design of Liquid-Propellant Rocket Engines, Ch. 4.

The throat center is the origin of the coordinate system; x grows
downstream, y is the local wall radius.
*/
package nozzle

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// DesignParameters obtained from the YAML design file
type DesignParameters struct {
	Title                   string  `yaml:"Title"`
	ThroatRadius            float64 `yaml:"ThroatRadius"`            // R_t [mm]
	AreaRatio               float64 `yaml:"AreaRatio"`               // epsilon = Ae/At
	DivergentHalfAngle      float64 `yaml:"DivergentHalfAngle"`      // alpha [deg], conical, 12-18
	ConvergentHalfAngle     float64 `yaml:"ConvergentHalfAngle"`     // theta [deg], 20-45
	ArcFactor               float64 `yaml:"ArcFactor"`               // throat arc radius / R_t, 0.5-1.5
	ContractionRatio        float64 `yaml:"ContractionRatio"`        // beta = R_chamber/R_t
	ChamberLength           float64 `yaml:"ChamberLength"`           // [mm]
	ChamberTransitionRadius float64 `yaml:"ChamberTransitionRadius"` // R_con [mm]
	InflectionAngle         float64 `yaml:"InflectionAngle"`         // theta_n [deg], bell only
	ExitAngle               float64 `yaml:"ExitAngle"`               // theta_e [deg], bell only
}

func (dp *DesignParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, dp)
}

func (dp *DesignParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", dp.Title)
	fmt.Printf("%8.4f\t\t= Throat Radius\n", dp.ThroatRadius)
	fmt.Printf("%8.4f\t\t= Area Ratio\n", dp.AreaRatio)
	fmt.Printf("%8.4f\t\t= Divergent Half Angle [deg]\n", dp.DivergentHalfAngle)
	fmt.Printf("%8.4f\t\t= Convergent Half Angle [deg]\n", dp.ConvergentHalfAngle)
	fmt.Printf("%8.4f\t\t= Arc Factor\n", dp.ArcFactor)
	fmt.Printf("%8.4f\t\t= Contraction Ratio\n", dp.ContractionRatio)
	fmt.Printf("%8.4f\t\t= Chamber Length\n", dp.ChamberLength)
	fmt.Printf("%8.4f\t\t= Chamber Transition Radius\n", dp.ChamberTransitionRadius)
	if dp.InflectionAngle != 0 || dp.ExitAngle != 0 {
		fmt.Printf("%8.4f\t\t= Inflection Angle [deg]\n", dp.InflectionAngle)
		fmt.Printf("%8.4f\t\t= Exit Angle [deg]\n", dp.ExitAngle)
	}
}

// Validate rejects geometrically impossible parameter sets. The softer
// Huzel design ranges (e.g. alpha between 12 and 18 degrees) are the
// designer's call and only reported by Print.
func (dp *DesignParameters) Validate() error {
	if dp.ThroatRadius <= 0 {
		return fmt.Errorf("throat radius must be positive, got %g", dp.ThroatRadius)
	}
	if dp.AreaRatio <= 1 {
		return fmt.Errorf("area ratio must exceed 1, got %g", dp.AreaRatio)
	}
	if dp.ContractionRatio <= 1 {
		return fmt.Errorf("contraction ratio must exceed 1, got %g", dp.ContractionRatio)
	}
	if dp.ConvergentHalfAngle <= 0 || dp.ConvergentHalfAngle >= 90 {
		return fmt.Errorf("convergent half angle must lie in (0,90) deg, got %g", dp.ConvergentHalfAngle)
	}
	if dp.ArcFactor <= 0 {
		return fmt.Errorf("arc factor must be positive, got %g", dp.ArcFactor)
	}
	if dp.ChamberLength < 0 || dp.ChamberTransitionRadius < 0 {
		return fmt.Errorf("chamber length and transition radius must be non-negative")
	}
	return nil
}

// validateConical adds the divergent cone checks.
func (dp *DesignParameters) validateConical() error {
	if err := dp.Validate(); err != nil {
		return err
	}
	if dp.DivergentHalfAngle <= 0 || dp.DivergentHalfAngle >= 90 {
		return fmt.Errorf("divergent half angle must lie in (0,90) deg, got %g", dp.DivergentHalfAngle)
	}
	return nil
}

// validateBell adds the parabola angle checks.
func (dp *DesignParameters) validateBell() error {
	if err := dp.Validate(); err != nil {
		return err
	}
	if dp.InflectionAngle <= 0 || dp.InflectionAngle >= 90 {
		return fmt.Errorf("inflection angle must lie in (0,90) deg, got %g", dp.InflectionAngle)
	}
	if dp.ExitAngle <= 0 || dp.ExitAngle >= dp.InflectionAngle {
		return fmt.Errorf("exit angle must lie in (0, inflection angle), got %g", dp.ExitAngle)
	}
	return nil
}
