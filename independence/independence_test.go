package independence

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepresentativeCellLength(t *testing.T) {
	{ // Uniform mesh of 0.2-cubes
		volumes := []float64{0.008, 0.008, 0.008, 0.008}
		h, err := RepresentativeCellLength(volumes)
		assert.NoError(t, err)
		assert.InDelta(t, 0.2, h, 1.e-14)
	}
	{ // Mixed cell sizes
		volumes := []float64{1, 8}
		h, err := RepresentativeCellLength(volumes)
		assert.NoError(t, err)
		assert.InDelta(t, math.Cbrt(4.5), h, 1.e-14)
	}
	{ // Empty input
		_, err := RepresentativeCellLength(nil)
		assert.Error(t, err)
	}
}

func TestReadVolumes(t *testing.T) {
	{ // Dump file format: one volume per line, blank lines ignored
		in := "0.00100000000000000000\n0.00200000000000000000\n\n0.00120000000000000000\n"
		volumes, err := ReadVolumes(strings.NewReader(in))
		assert.NoError(t, err)
		assert.Equal(t, []float64{0.001, 0.002, 0.0012}, volumes)
	}
	{ // Garbage line
		_, err := ReadVolumes(strings.NewReader("0.001\nnot-a-number\n"))
		assert.Error(t, err)
	}
}

func TestCellLengthFromDumpFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volumedata.csv")
	err := os.WriteFile(path, []byte("0.008\n0.008\n"), 0644)
	assert.NoError(t, err)
	h, n, err := CellLengthFromDumpFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 0.2, h, 1.e-14)

	_, _, err = CellLengthFromDumpFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestStudy(t *testing.T) {
	{ // Manufactured second order convergence: phi = 1 + 0.1*h^2
		s, err := NewStudy(
			Grid{H: 1, Phi: 1.1},
			Grid{H: 2, Phi: 1.4},
			Grid{H: 4, Phi: 2.6},
		)
		assert.NoError(t, err)
		assert.InDelta(t, 2.0, s.R21, 1.e-14)
		assert.InDelta(t, 2.0, s.ApparentOrder, 1.e-10)
		assert.InDelta(t, 1.0, s.PhiExt, 1.e-10)
		assert.InDelta(t, 0.3/1.1, s.RelativeError, 1.e-12)
		assert.InDelta(t, 1.25*(0.3/1.1)/3., s.FineGCI, 1.e-10)
	}
	{ // Non-constant refinement still converges on the exact order
		h1, h2, h3 := 1., 1.5, 2.5
		p := 2.0
		phi := func(h float64) float64 { return 1 + 0.1*math.Pow(h, p) }
		s, err := NewStudy(
			Grid{H: h1, Phi: phi(h1)},
			Grid{H: h2, Phi: phi(h2)},
			Grid{H: h3, Phi: phi(h3)},
		)
		assert.NoError(t, err)
		assert.InDelta(t, p, s.ApparentOrder, 1.e-8)
		assert.InDelta(t, 1.0, s.PhiExt, 1.e-8)
	}
	{ // Grids must be ordered fine to coarse
		_, err := NewStudy(Grid{H: 2, Phi: 1}, Grid{H: 1, Phi: 2}, Grid{H: 4, Phi: 3})
		assert.Error(t, err)
	}
	{ // Identical adjacent solutions have no apparent order
		_, err := NewStudy(Grid{H: 1, Phi: 1}, Grid{H: 2, Phi: 1}, Grid{H: 4, Phi: 2})
		assert.Error(t, err)
	}
}
