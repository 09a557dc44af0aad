/*
Package isentropic provides quasi-one-dimensional isentropic flow
relations for a calorically perfect gas.

References: Anderson, Modern Compressible Flow, Ch. 3 and Ch. 5.
*/
package isentropic

import (
	"fmt"
	"math"
)

// PressureRatio returns p/pt at the given Mach number.
func PressureRatio(mach, gamma float64) (float64, error) {
	if err := checkMach(mach); err != nil {
		return 0, err
	}
	return math.Pow(1+(gamma-1)/2*mach*mach, -gamma/(gamma-1)), nil
}

// TemperatureRatio returns T/Tt at the given Mach number.
func TemperatureRatio(mach, gamma float64) (float64, error) {
	if err := checkMach(mach); err != nil {
		return 0, err
	}
	return 1 / (1 + (gamma-1)/2*mach*mach), nil
}

// DensityRatio returns rho/rhot at the given Mach number.
func DensityRatio(mach, gamma float64) (float64, error) {
	if err := checkMach(mach); err != nil {
		return 0, err
	}
	return math.Pow(1+(gamma-1)/2*mach*mach, -1/(gamma-1)), nil
}

// TemperatureRatioFromPressureRatio returns T/Tt given p/pt.
func TemperatureRatioFromPressureRatio(pressureRatio, gamma float64) (float64, error) {
	if err := checkPressureRatio(pressureRatio); err != nil {
		return 0, err
	}
	return math.Pow(pressureRatio, (gamma-1)/gamma), nil
}

// MachFromPressureRatio inverts PressureRatio.
func MachFromPressureRatio(pressureRatio, gamma float64) (float64, error) {
	if err := checkPressureRatio(pressureRatio); err != nil {
		return 0, err
	}
	return math.Sqrt(2 / (gamma - 1) * (math.Pow(pressureRatio, -(gamma-1)/gamma) - 1)), nil
}

func checkMach(mach float64) error {
	if mach <= 0 {
		return fmt.Errorf("mach number must be positive, got %g", mach)
	}
	return nil
}

func checkPressureRatio(pressureRatio float64) error {
	if pressureRatio <= 0 || pressureRatio > 1 {
		return fmt.Errorf("pressure ratio p/pt must lie in (0,1], got %g", pressureRatio)
	}
	return nil
}
