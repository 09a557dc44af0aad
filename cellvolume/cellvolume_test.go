package cellvolume

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testDomain() Domain {
	return Domain{CellZones: []Zone{
		{ZoneName: "chamber", Volumes: []float64{0.125, 0.25, 0.5}},
		{ZoneName: "nozzle", Volumes: []float64{1.0 / 3.0, 0.0625}},
	}}
}

func TestDump(t *testing.T) {
	{ // One line per cell, in zone then cell order, total is the sum
		var buf bytes.Buffer
		res, err := Dump(testDomain(), &buf)
		assert.NoError(t, err)
		assert.Equal(t, 5, res.Cells)
		assert.InDelta(t, 0.125+0.25+0.5+1.0/3.0+0.0625, res.TotalVolume, 1.e-14)
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		assert.Equal(t, 5, len(lines))
		assert.Equal(t, "0.12500000000000000000", lines[0])
	}
	{ // Each line carries exactly 20 fractional digits and parses back
		var buf bytes.Buffer
		_, err := Dump(testDomain(), &buf)
		assert.NoError(t, err)
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			frac := strings.SplitN(line, ".", 2)[1]
			assert.Equal(t, 20, len(frac))
			_, err = strconv.ParseFloat(line, 64)
			assert.NoError(t, err)
		}
	}
	{ // A domain with zero cells writes zero lines
		var buf bytes.Buffer
		res, err := Dump(Domain{CellZones: []Zone{{ZoneName: "empty"}}}, &buf)
		assert.NoError(t, err)
		assert.Equal(t, 0, res.Cells)
		assert.Equal(t, 0., res.TotalVolume)
		assert.Equal(t, 0, buf.Len())
	}
}

func TestAppendFile(t *testing.T) {
	{ // Repeated invocation appends, never truncates
		path := filepath.Join(t.TempDir(), "volumedata.csv")
		res, err := AppendFile(testDomain(), path)
		assert.NoError(t, err)
		assert.Equal(t, 5, res.Cells)
		_, err = AppendFile(testDomain(), path)
		assert.NoError(t, err)
		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Equal(t, 10, len(lines))
	}
	{ // Zero-cell domain still creates and closes the file
		path := filepath.Join(t.TempDir(), "volumedata.csv")
		res, err := AppendFile(Domain{}, path)
		assert.NoError(t, err)
		assert.Equal(t, 0, res.Cells)
		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(data))
	}
	{ // Unopenable path is a reported error, not a silent pass
		_, err := AppendFile(testDomain(), filepath.Join(t.TempDir(), "no", "such", "dir", "v.csv"))
		assert.Error(t, err)
	}
}
