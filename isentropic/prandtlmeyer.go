package isentropic

import (
	"fmt"
	"math"
)

// PrandtlMeyer returns the Prandtl-Meyer function nu(M) in radians for a
// supersonic Mach number (Anderson eq. 4.44).
func PrandtlMeyer(mach, gamma float64) (nu float64, err error) {
	if mach < 1 {
		return 0, fmt.Errorf("prandtl-meyer function requires mach >= 1, got %g", mach)
	}
	var (
		gp = gamma + 1
		gm = gamma - 1
		m2 = mach*mach - 1
	)
	nu = math.Sqrt(gp/gm)*math.Atan(math.Sqrt(gm/gp*m2)) - math.Atan(math.Sqrt(m2))
	return nu, nil
}

// MaxTurnAngle returns the limiting value of nu as Mach goes to infinity.
func MaxTurnAngle(gamma float64) float64 {
	return (math.Sqrt((gamma+1)/(gamma-1)) - 1) * math.Pi / 2
}

// MachFromPrandtlMeyer inverts nu(M) by bisection. nu is in radians and
// must lie in [0, MaxTurnAngle).
func MachFromPrandtlMeyer(nu, gamma float64) (mach float64, err error) {
	if nu < 0 || nu >= MaxTurnAngle(gamma) {
		return 0, fmt.Errorf("turn angle %g rad outside [0, %g)", nu, MaxTurnAngle(gamma))
	}
	if nu == 0 {
		return 1, nil
	}
	lo, hi := 1., 2.
	for {
		v, _ := PrandtlMeyer(hi, gamma)
		if v > nu {
			break
		}
		hi *= 2
	}
	// nu is monotone increasing in Mach
	for hi-lo > bisectTol {
		mid := 0.5 * (lo + hi)
		if v, _ := PrandtlMeyer(mid, gamma); v < nu {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}
