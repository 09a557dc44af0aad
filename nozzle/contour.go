package nozzle

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
)

// Point is one wall coordinate, x along the axis with the throat center
// at 0, y the local wall radius.
type Point struct {
	X, Y float64
}

// Contour is the ordered wall polyline from the chamber wall to the
// nozzle exit.
type Contour []Point

// ExitRadius is the wall radius of the last contour point.
func (c Contour) ExitRadius() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].Y
}

// Length is the axial extent of the contour.
func (c Contour) Length() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].X - c[0].X
}

// WriteCSV emits the contour as semicolon separated x;y rows, the format
// produced for downstream CAD/mesh import.
func (c Contour) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	for _, p := range c {
		if err := cw.Write([]string{
			fmt.Sprintf("%.18e", p.X),
			fmt.Sprintf("%.18e", p.Y),
		}); err != nil {
			return fmt.Errorf("writing contour row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the contour to the named file, replacing any previous
// contour.
func (c Contour) ExportCSV(path string) (err error) {
	var (
		fp *os.File
	)
	if fp, err = os.Create(path); err != nil {
		return fmt.Errorf("creating contour file %s: %w", path, err)
	}
	defer fp.Close()
	return c.WriteCSV(fp)
}

// appendArc appends nSteps points of a circular arc of radius r centered
// at (xc, yc), sweeping the angle t from t0 to t1 measured from the
// positive y axis toward positive x, skipping the first point when the
// contour already ends on it.
func appendArc(c Contour, xc, yc, r, t0, t1 float64, nSteps int) Contour {
	ts := make([]float64, nSteps+1)
	floats.Span(ts, t0, t1)
	for i, t := range ts {
		if i == 0 && len(c) != 0 {
			continue
		}
		c = append(c, Point{X: xc + r*math.Sin(t), Y: yc + r*math.Cos(t)})
	}
	return c
}

// appendLine appends nSteps points interpolating from p0 to p1, skipping
// p0 when the contour already ends on it.
func appendLine(c Contour, p0, p1 Point, nSteps int) Contour {
	xs := make([]float64, nSteps+1)
	ys := make([]float64, nSteps+1)
	floats.Span(xs, p0.X, p1.X)
	floats.Span(ys, p0.Y, p1.Y)
	for i := range xs {
		if i == 0 && len(c) != 0 {
			continue
		}
		c = append(c, Point{X: xs[i], Y: ys[i]})
	}
	return c
}
