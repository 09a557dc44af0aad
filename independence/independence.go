/*
Package independence implements the grid refinement study procedure of
Celik et al., "Procedure for Estimation and Reporting of Uncertainty Due to
Discretization in CFD Applications".

The per-grid input is the cell volume data file produced by the volume
dump: one volume per line, no header.
*/
package independence

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// RepresentativeCellLength returns the representative cell size
// h = [ (1/N) sum(V_i) ]^(1/3) for a 3D mesh.
func RepresentativeCellLength(volumes []float64) (h float64, err error) {
	if len(volumes) == 0 {
		return 0, fmt.Errorf("no cell volumes supplied")
	}
	h = math.Cbrt(floats.Sum(volumes) / float64(len(volumes)))
	return h, nil
}

// ReadVolumes parses a volume data file: one floating point volume per
// line, blank lines ignored.
func ReadVolumes(r io.Reader) (volumes []float64, err error) {
	var (
		scanner = bufio.NewScanner(r)
		v       float64
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if v, err = strconv.ParseFloat(line, 64); err != nil {
			return nil, fmt.Errorf("malformed volume line %q: %w", line, err)
		}
		volumes = append(volumes, v)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading volume data: %w", err)
	}
	return volumes, nil
}

// CellLengthFromDumpFile computes the representative cell length directly
// from a volume dump file on disk.
func CellLengthFromDumpFile(path string) (h float64, ncells int, err error) {
	var (
		fp      *os.File
		volumes []float64
	)
	if fp, err = os.Open(path); err != nil {
		return 0, 0, fmt.Errorf("opening volume file %s: %w", path, err)
	}
	defer fp.Close()
	if volumes, err = ReadVolumes(fp); err != nil {
		return 0, 0, err
	}
	if h, err = RepresentativeCellLength(volumes); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", path, err)
	}
	return h, len(volumes), nil
}
