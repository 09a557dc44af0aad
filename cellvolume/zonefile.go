package cellvolume

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

/*
Zone file format, a plain text export of per-cell volumes grouped by cell
zone:

	zones <nzones>
	zone <name> <ncells>
	<volume>
	...
	zone <name> <ncells>
	<volume>
	...

Volumes appear one per line in host traversal order.
*/

// ReadZoneFile parses a zone-file export into an in-memory Domain.
func ReadZoneFile(r io.Reader) (d Domain, err error) {
	var (
		reader = bufio.NewReader(r)
		nZones int
		line   string
	)
	if line, err = getDataLine(reader); err != nil {
		return d, fmt.Errorf("reading zone count: %w", err)
	}
	if _, err = fmt.Sscanf(line, "zones %d", &nZones); err != nil {
		return d, fmt.Errorf("malformed zone count line %q: %w", line, err)
	}
	d.CellZones = make([]Zone, nZones)
	for n := 0; n < nZones; n++ {
		var (
			name   string
			nCells int
		)
		if line, err = getDataLine(reader); err != nil {
			return d, fmt.Errorf("reading zone header %d: %w", n, err)
		}
		if _, err = fmt.Sscanf(line, "zone %s %d", &name, &nCells); err != nil {
			return d, fmt.Errorf("malformed zone header %q: %w", line, err)
		}
		z := Zone{ZoneName: name, Volumes: make([]float64, nCells)}
		for c := 0; c < nCells; c++ {
			if line, err = getDataLine(reader); err != nil {
				return d, fmt.Errorf("reading cell %d of zone %s: %w", c, name, err)
			}
			if _, err = fmt.Sscanf(line, "%f", &z.Volumes[c]); err != nil {
				return d, fmt.Errorf("malformed volume %q in zone %s: %w", line, name, err)
			}
		}
		d.CellZones[n] = z
	}
	return d, nil
}

// ReadZoneFileName opens and parses the named zone file.
func ReadZoneFileName(path string) (d Domain, err error) {
	var (
		fp *os.File
	)
	if fp, err = os.Open(path); err != nil {
		return d, fmt.Errorf("opening zone file %s: %w", path, err)
	}
	defer fp.Close()
	return ReadZoneFile(fp)
}

// getDataLine returns the next non-blank line with surrounding whitespace
// trimmed.
func getDataLine(reader *bufio.Reader) (line string, err error) {
	for {
		if line, err = reader.ReadString('\n'); err != nil && len(line) == 0 {
			return "", err
		}
		line = strings.TrimSpace(line)
		if len(line) != 0 {
			return line, nil
		}
		if err != nil {
			return "", io.EOF
		}
	}
}
