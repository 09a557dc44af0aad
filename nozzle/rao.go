package nozzle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Fixed throat arc factors of the parabolic approximation, Huzel Ch. 4:
// circular entrance of 1.5 R_t upstream of the throat, 0.382 R_t from the
// throat to the inflection point.
const (
	entrantArcFactor = 1.5
	exitantArcFactor = 0.382

	nStepsEntrantArc = 10
	nStepsExitantArc = 10
	nStepsParabola   = 50
)

// RaoBell builds the Rao thrust-optimized bell contour via the parabolic
// approximation: the conical convergent section, the two throat arcs, and
// a parabola from the inflection point to the exit, entering at the
// inflection angle theta_n and leaving at the exit angle theta_e.
func RaoBell(dp DesignParameters) (c Contour, err error) {
	if err = dp.validateBell(); err != nil {
		return nil, err
	}
	var (
		rt     = dp.ThroatRadius
		rc     = dp.ContractionRatio * rt
		re     = rt * math.Sqrt(dp.AreaRatio)
		raIn   = entrantArcFactor * rt
		raOut  = exitantArcFactor * rt
		rcon   = dp.ChamberTransitionRadius
		theta  = dp.ConvergentHalfAngle * math.Pi / 180
		thetaN = dp.InflectionAngle * math.Pi / 180
		thetaE = dp.ExitAngle * math.Pi / 180
	)
	conv, err := convergentSection(rt, rc, raIn, rcon, theta, dp.ChamberLength)
	if err != nil {
		return nil, err
	}
	c = conv

	// Entrant arc up to the throat, then the exitant arc to the
	// inflection point
	c = appendArc(c, 0, rt+raIn, raIn, math.Pi+theta, math.Pi, nStepsEntrantArc)
	c = appendArc(c, 0, rt+raOut, raOut, math.Pi, math.Pi-thetaN, nStepsExitantArc)

	// Parabola x(y) with dx/dy matching cot(theta_n) at the inflection
	// point and cot(theta_e) at the exit radius
	n := c[len(c)-1]
	if re <= n.Y {
		return nil, fmt.Errorf("exit radius %g does not clear the inflection point radius %g; increase area ratio or reduce the inflection angle", re, n.Y)
	}
	var (
		cotN = 1 / math.Tan(thetaN)
		cotE = 1 / math.Tan(thetaE)
		a    = (cotE - cotN) / (2 * (re - n.Y))
		b    = cotN - 2*a*n.Y
	)
	x := func(y float64) float64 {
		return n.X + a*(y*y-n.Y*n.Y) + b*(y-n.Y)
	}
	ys := make([]float64, nStepsParabola+1)
	floats.Span(ys, n.Y, re)
	for i, y := range ys {
		if i == 0 {
			continue
		}
		c = append(c, Point{X: x(y), Y: y})
	}
	return c, nil
}
