package nozzle

import (
	"fmt"
	"math"
)

// IdealThrustCoefficient returns C_F for an ideally expanded nozzle as a
// function of the heat capacity ratio, total (chamber) pressure, exit to
// throat area ratio, nozzle exit pressure and ambient pressure. Huzel
// eq. 1-33.
func IdealThrustCoefficient(gamma, pressureTotal, areaRatio, pressureExit, pressureAtmos float64) (cf float64, err error) {
	if gamma <= 1 {
		return 0, fmt.Errorf("heat capacity ratio must exceed 1, got %g", gamma)
	}
	if pressureTotal <= 0 {
		return 0, fmt.Errorf("total pressure must be positive, got %g", pressureTotal)
	}
	if pressureExit <= 0 || pressureExit >= pressureTotal {
		return 0, fmt.Errorf("exit pressure must lie in (0, total pressure), got %g", pressureExit)
	}
	if areaRatio < 1 {
		return 0, fmt.Errorf("area ratio must be >= 1, got %g", areaRatio)
	}
	cf = math.Sqrt(2*gamma*gamma/(gamma-1)*
		math.Pow(2/(gamma+1), (gamma+1)/(gamma-1))*
		(1-math.Pow(pressureExit/pressureTotal, (gamma-1)/gamma))) +
		(pressureExit-pressureAtmos)/pressureTotal*areaRatio
	return cf, nil
}
