package nozzle

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Design point of the reference thrust chamber used throughout
func testParams() DesignParameters {
	return DesignParameters{
		Title:                   "Test Chamber",
		ThroatRadius:            4.3263,
		AreaRatio:               4.82,
		DivergentHalfAngle:      15,
		ConvergentHalfAngle:     50,
		ArcFactor:               1.5,
		ContractionRatio:        3.467166,
		ChamberLength:           15,
		ChamberTransitionRadius: 5,
		InflectionAngle:         30,
		ExitAngle:               12,
	}
}

func TestParseDesignParameters(t *testing.T) {
	yamlDoc := `
Title: "Demo Nozzle"
ThroatRadius: 4.3263
AreaRatio: 4.82
DivergentHalfAngle: 15
ConvergentHalfAngle: 50
ArcFactor: 1.5
ContractionRatio: 3.467166
ChamberLength: 15
ChamberTransitionRadius: 5
`
	dp := &DesignParameters{}
	err := dp.Parse([]byte(yamlDoc))
	assert.NoError(t, err)
	assert.Equal(t, "Demo Nozzle", dp.Title)
	assert.Equal(t, 4.3263, dp.ThroatRadius)
	assert.Equal(t, 4.82, dp.AreaRatio)
	assert.NoError(t, dp.validateConical())
}

func TestConical(t *testing.T) {
	dp := testParams()
	c, err := Conical(dp)
	assert.NoError(t, err)

	{ // Starts on the chamber wall, ends on the exit radius
		rc := dp.ContractionRatio * dp.ThroatRadius
		re := dp.ThroatRadius * math.Sqrt(dp.AreaRatio)
		assert.InDelta(t, rc, c[0].Y, 1.e-12)
		assert.InDelta(t, re, c.ExitRadius(), 1.e-12)
	}
	{ // x advances monotonically, no duplicate join points
		for i := 1; i < len(c); i++ {
			assert.Greater(t, c[i].X, c[i-1].X)
		}
	}
	{ // The narrowest station is the throat, near x = 0
		minY, minX := math.Inf(1), 0.
		for _, p := range c {
			if p.Y < minY {
				minY, minX = p.Y, p.X
			}
		}
		assert.GreaterOrEqual(t, minY, dp.ThroatRadius)
		assert.InDelta(t, dp.ThroatRadius, minY, 0.01*dp.ThroatRadius)
		assert.InDelta(t, 0, minX, dp.ThroatRadius)
	}
	{ // Final segment runs at the divergent half angle
		last, prev := c[len(c)-1], c[len(c)-2]
		slope := (last.Y - prev.Y) / (last.X - prev.X)
		assert.InDelta(t, math.Tan(dp.DivergentHalfAngle*math.Pi/180), slope, 1.e-9)
	}
}

func TestConicalValidation(t *testing.T) {
	{ // Area ratio at or below 1
		dp := testParams()
		dp.AreaRatio = 1
		_, err := Conical(dp)
		assert.Error(t, err)
	}
	{ // Contraction ratio too small for the arc radii
		dp := testParams()
		dp.ContractionRatio = 1.01
		_, err := Conical(dp)
		assert.Error(t, err)
	}
	{ // Zero throat radius
		dp := testParams()
		dp.ThroatRadius = 0
		_, err := Conical(dp)
		assert.Error(t, err)
	}
}

func TestRaoBell(t *testing.T) {
	dp := testParams()
	c, err := RaoBell(dp)
	assert.NoError(t, err)

	{ // Passes exactly through the throat point
		found := false
		for _, p := range c {
			if math.Abs(p.X) < 1.e-12 && math.Abs(p.Y-dp.ThroatRadius) < 1.e-12 {
				found = true
			}
		}
		assert.True(t, found)
	}
	{ // Ends on the exit radius with the exit angle
		re := dp.ThroatRadius * math.Sqrt(dp.AreaRatio)
		assert.InDelta(t, re, c.ExitRadius(), 1.e-12)
		last, prev := c[len(c)-1], c[len(c)-2]
		slope := (last.Y - prev.Y) / (last.X - prev.X)
		assert.InDelta(t, math.Tan(dp.ExitAngle*math.Pi/180), slope, 0.02)
	}
	{ // x advances monotonically
		for i := 1; i < len(c); i++ {
			assert.Greater(t, c[i].X, c[i-1].X)
		}
	}
	{ // The bell is shorter than the 15 degree cone of equal area ratio
		cone, err := Conical(dp)
		assert.NoError(t, err)
		assert.Less(t, c.Length(), cone.Length())
	}
	{ // Exit angle must stay below the inflection angle
		bad := testParams()
		bad.ExitAngle = bad.InflectionAngle
		_, err = RaoBell(bad)
		assert.Error(t, err)
	}
}

func TestContourCSV(t *testing.T) {
	c := Contour{{X: -1, Y: 2}, {X: 0, Y: 1}, {X: 3, Y: 2.5}}
	var buf bytes.Buffer
	err := c.WriteCSV(&buf)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, 2, strings.Count(lines[0], ";")+1)
	assert.Contains(t, lines[1], "0.000000000000000000e+00")
}

func TestIdealThrustCoefficient(t *testing.T) {
	{ // Perfectly expanded, gamma 1.2, pe/pc = 0.01
		cf, err := IdealThrustCoefficient(1.2, 1, 10, 0.01, 0.01)
		assert.NoError(t, err)
		assert.InDelta(t, 1.6446, cf, 5.e-4)
	}
	{ // Vacuum thrust exceeds sea level thrust
		vac, err := IdealThrustCoefficient(1.2, 100, 10, 1, 0)
		assert.NoError(t, err)
		sl, err2 := IdealThrustCoefficient(1.2, 100, 10, 1, 1)
		assert.NoError(t, err2)
		assert.Greater(t, vac, sl)
	}
	{ // Bad inputs
		_, err := IdealThrustCoefficient(1, 1, 10, 0.01, 0)
		assert.Error(t, err)
		_, err = IdealThrustCoefficient(1.2, 1, 10, 2, 0)
		assert.Error(t, err)
		_, err = IdealThrustCoefficient(1.2, 1, 0.5, 0.01, 0)
		assert.Error(t, err)
	}
}
