package nozzle

import (
	"fmt"
	"math"
)

// Step counts per contour segment.
const (
	nStepsWall       = 10
	nStepsTransition = 10
	nStepsConvergent = 20
	nStepsThroatArc  = 20
	nStepsDivergent  = 50
)

// Conical builds the standard conical nozzle contour: chamber wall,
// chamber-to-convergent transition arc, convergent diagonal, throat arc,
// divergent cone. All segments join with matching tangents.
func Conical(dp DesignParameters) (c Contour, err error) {
	if err = dp.validateConical(); err != nil {
		return nil, err
	}
	var (
		rt    = dp.ThroatRadius
		rc    = dp.ContractionRatio * rt     // chamber radius
		re    = rt * math.Sqrt(dp.AreaRatio) // exit radius
		ra    = dp.ArcFactor * rt            // throat arc radius
		rcon  = dp.ChamberTransitionRadius
		theta = dp.ConvergentHalfAngle * math.Pi / 180
		alpha = dp.DivergentHalfAngle * math.Pi / 180
	)
	conv, err := convergentSection(rt, rc, ra, rcon, theta, dp.ChamberLength)
	if err != nil {
		return nil, err
	}
	c = conv

	// Throat arc through the throat point to the cone tangency angle
	c = appendArc(c, 0, rt+ra, ra, math.Pi+theta, math.Pi-alpha, nStepsThroatArc)

	// Divergent cone from the arc tangency to the exit radius
	n := c[len(c)-1]
	if re <= n.Y {
		return nil, fmt.Errorf("exit radius %g does not clear the throat arc exit %g; increase area ratio or reduce arc factor", re, n.Y)
	}
	exit := Point{X: n.X + (re-n.Y)/math.Tan(alpha), Y: re}
	c = appendLine(c, n, exit, nStepsDivergent)
	return c, nil
}

// convergentSection builds the three segments upstream of the throat arc:
// chamber wall, transition arc of radius rcon, and the straight convergent
// diagonal at half angle theta down to the throat arc tangency.
func convergentSection(rt, rc, ra, rcon, theta, chamberLength float64) (c Contour, err error) {
	var (
		sin, cos = math.Sin(theta), math.Cos(theta)
		// Tangency point on the throat arc, convergent side
		p1 = Point{X: -ra * sin, Y: rt + ra*(1-cos)}
		// Wall radius where the transition arc hands off to the diagonal
		y2 = rc - rcon*(1-cos)
	)
	if y2 <= p1.Y {
		return nil, fmt.Errorf("transition and throat arcs overlap: contraction ratio too small for the chosen arc radii")
	}
	var (
		x2     = p1.X - (y2-p1.Y)/math.Tan(theta)
		p2     = Point{X: x2, Y: y2}
		xc     = x2 - rcon*sin // transition arc center x
		xStart = xc - chamberLength
	)
	c = appendLine(c, Point{X: xStart, Y: rc}, Point{X: xc, Y: rc}, nStepsWall)
	c = appendArc(c, xc, rc-rcon, rcon, 0, theta, nStepsTransition)
	c = appendLine(c, p2, p1, nStepsConvergent)
	return c, nil
}
