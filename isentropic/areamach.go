package isentropic

import (
	"fmt"
	"math"
)

// Branch selects which root of the area-Mach relation an inversion
// returns; every area ratio above 1 has one subsonic and one supersonic
// solution.
type Branch uint8

const (
	Subsonic Branch = iota
	Supersonic
)

const bisectTol = 1.e-10

// AreaRatio returns A/A* at the given Mach number (Anderson eq. 5.20).
func AreaRatio(mach, gamma float64) (float64, error) {
	if err := checkMach(mach); err != nil {
		return 0, err
	}
	ar2 := 1 / (mach * mach) *
		math.Pow(2/(gamma+1)*(1+(gamma-1)/2*mach*mach), (gamma+1)/(gamma-1))
	return math.Sqrt(ar2), nil
}

// MachFromAreaRatio inverts the area-Mach relation on the requested
// branch by bisection. An area ratio of exactly 1 returns Mach 1 on
// either branch.
func MachFromAreaRatio(areaRatio, gamma float64, branch Branch) (mach float64, err error) {
	if areaRatio < 1 {
		return 0, fmt.Errorf("area ratio A/A* must be >= 1, got %g", areaRatio)
	}
	if areaRatio == 1 {
		return 1, nil
	}
	var lo, hi float64
	switch branch {
	case Subsonic:
		lo, hi = 1.e-10, 1
	case Supersonic:
		lo, hi = 1, 2
		// Grow the upper bracket until it encloses the root
		for {
			ar, _ := AreaRatio(hi, gamma)
			if ar > areaRatio {
				break
			}
			hi *= 2
			if hi > 1.e6 {
				return 0, fmt.Errorf("area ratio %g out of invertible range", areaRatio)
			}
		}
	default:
		return 0, fmt.Errorf("unknown branch %d", branch)
	}
	// On both brackets A/A* - areaRatio changes sign exactly once
	f := func(m float64) float64 {
		ar, _ := AreaRatio(m, gamma)
		return ar - areaRatio
	}
	fLo := f(lo)
	for hi-lo > bisectTol {
		mid := 0.5 * (lo + hi)
		if fMid := f(mid); (fMid < 0) == (fLo < 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

// AreaRatioFromRadius returns A/A* for a local wall radius against the
// throat radius, the form used when verifying nozzle contours.
func AreaRatioFromRadius(radiusLocal, radiusThroat float64) (float64, error) {
	if radiusLocal <= 0 || radiusThroat <= 0 {
		return 0, fmt.Errorf("radii must be positive, got local %g throat %g", radiusLocal, radiusThroat)
	}
	return (radiusLocal * radiusLocal) / (radiusThroat * radiusThroat), nil
}
