// Package snapshot reads and writes grid snapshots in the delimited text
// format: a "width,height" record followed by one "x,y,state" record per cell.
package snapshot

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrMalformed reports a snapshot that cannot be parsed.
var ErrMalformed = errors.New("malformed snapshot")

// Cell is one exported cell value.
type Cell struct {
	X, Y  int
	State uint8
}

// Snapshot is a declared grid size plus the cells recorded for it.
type Snapshot struct {
	W, H  int
	Cells []Cell
}

// Write encodes s to w.
func Write(w io.Writer, s Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{strconv.Itoa(s.W), strconv.Itoa(s.H)}); err != nil {
		return err
	}
	rec := make([]string, 3)
	for _, c := range s.Cells {
		rec[0] = strconv.Itoa(c.X)
		rec[1] = strconv.Itoa(c.Y)
		rec[2] = strconv.Itoa(int(c.State))
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read decodes a snapshot from r. Reading stops at end of input or at the first
// record with fewer than three fields.
func Read(r io.Reader) (Snapshot, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Snapshot{}, fmt.Errorf("%w: missing size record", ErrMalformed)
		}
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(header) < 2 {
		return Snapshot{}, fmt.Errorf("%w: size record has %d fields", ErrMalformed, len(header))
	}
	var s Snapshot
	if s.W, err = strconv.Atoi(header[0]); err != nil {
		return Snapshot{}, fmt.Errorf("%w: width: %v", ErrMalformed, err)
	}
	if s.H, err = strconv.Atoi(header[1]); err != nil {
		return Snapshot{}, fmt.Errorf("%w: height: %v", ErrMalformed, err)
	}
	if s.W <= 0 || s.H <= 0 {
		return Snapshot{}, fmt.Errorf("%w: size %dx%d", ErrMalformed, s.W, s.H)
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		if len(rec) < 3 {
			break
		}
		c, err := parseCell(rec)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		s.Cells = append(s.Cells, c)
	}
	return s, nil
}

func parseCell(rec []string) (Cell, error) {
	x, err := strconv.Atoi(rec[0])
	if err != nil {
		return Cell{}, err
	}
	y, err := strconv.Atoi(rec[1])
	if err != nil {
		return Cell{}, err
	}
	state, err := strconv.ParseUint(rec[2], 10, 8)
	if err != nil {
		return Cell{}, err
	}
	return Cell{X: x, Y: y, State: uint8(state)}, nil
}

// Save writes s to the file at path, replacing it.
func Save(path string, s Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Load reads the snapshot stored at path.
func Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}
