/*
Package cellvolume dumps per-cell geometric volumes from a solver domain
snapshot to a plain text file, one value per line.

The traversal mirrors the solver side: a domain is a set of cell zones, a
zone is an ordered collection of cells, and the only attribute read is the
precomputed cell volume. This package never computes geometry itself.
*/
package cellvolume

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// CellZone is a read-only view of one cell grouping inside a domain,
// typically a physical region or material zone. Cell indices run from 0 to
// NumCells-1 in whatever order the host yields; the order is not stable
// across exports.
type CellZone interface {
	Name() string
	NumCells() int
	Volume(c int) float64
}

// VolumeSource is the domain-side capability the dump consumes: a finite
// set of cell zones for the active domain. Implementations own the data;
// the dump only iterates it once.
type VolumeSource interface {
	Zones() []CellZone
}

// Zone is an in-memory CellZone.
type Zone struct {
	ZoneName string
	Volumes  []float64
}

func (z Zone) Name() string         { return z.ZoneName }
func (z Zone) NumCells() int        { return len(z.Volumes) }
func (z Zone) Volume(c int) float64 { return z.Volumes[c] }

// Domain is an in-memory VolumeSource built from zones.
type Domain struct {
	CellZones []Zone
}

func (d Domain) Zones() (zones []CellZone) {
	zones = make([]CellZone, len(d.CellZones))
	for i, z := range d.CellZones {
		zones[i] = z
	}
	return
}

// DumpResult reports one completed dump pass.
type DumpResult struct {
	Cells       int
	TotalVolume float64
}

// Dump writes every cell volume in src to w, one per line with 20
// fractional digits, and accumulates the total. Zones are visited in the
// order the source yields them, cells in zone order.
func Dump(src VolumeSource, w io.Writer) (res DumpResult, err error) {
	var (
		bw     = bufio.NewWriter(w)
		total  = 0.
		volume float64
	)
	for _, t := range src.Zones() {
		for c := 0; c < t.NumCells(); c++ {
			volume = t.Volume(c)
			if _, err = fmt.Fprintf(bw, "%.20f\n", volume); err != nil {
				return res, fmt.Errorf("writing cell volume: %w", err)
			}
			total += volume
			res.Cells++
		}
	}
	if err = bw.Flush(); err != nil {
		return res, fmt.Errorf("flushing volume data: %w", err)
	}
	res.TotalVolume = total
	return res, nil
}

// AppendFile runs one dump pass against path, opening it in append mode and
// creating it if missing. Repeated calls grow the file; nothing is ever
// truncated. A failed open is returned before any write is attempted.
func AppendFile(src VolumeSource, path string) (res DumpResult, err error) {
	var (
		fp *os.File
	)
	if fp, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		return res, fmt.Errorf("opening volume file %s: %w", path, err)
	}
	fmt.Printf("File created\n")
	res, err = Dump(src, fp)
	if cerr := fp.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing volume file %s: %w", path, cerr)
	}
	if err != nil {
		return res, err
	}
	fmt.Printf("File closed\n")
	return res, nil
}
