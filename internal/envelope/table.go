package envelope

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Table I/O: the persisted form of an envelope is a flat CSV with one row per
// sample index. The vertical offset is written as a leading "offset,<value>"
// record so a consumer re-synthesizing audio from the table does not have to
// re-supply it out of band; tables written without that record still load.

const offsetRecord = "offset"

// WriteTable writes the envelope as CSV to w.
func (e *Envelope) WriteTable(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{offsetRecord, formatFloat(e.offset)}); err != nil {
		return err
	}
	if err := cw.Write([]string{"index", "positive", "negative"}); err != nil {
		return err
	}
	for i := range e.pos {
		rec := []string{
			strconv.Itoa(i),
			formatFloat(e.pos[i]),
			formatFloat(e.neg[i]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveTable writes the envelope table to a file.
func (e *Envelope) SaveTable(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating envelope table: %w", err)
	}
	defer f.Close()
	if err := e.WriteTable(f); err != nil {
		return fmt.Errorf("writing envelope table: %w", err)
	}
	return nil
}

// ReadTable parses a CSV envelope table. Rows must carry ascending indices
// starting at zero; the optional offset record and the header row may each
// appear once before the data. The returned bool reports whether the table
// carried an offset record, so a stored zero is distinguishable from an
// absent one.
func ReadTable(r io.Reader) (*Envelope, bool, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	e := &Envelope{}
	hasOffset := false
	next := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("reading envelope table: %w", err)
		}
		if len(rec) == 2 && rec[0] == offsetRecord {
			off, err := strconv.ParseFloat(rec[1], 64)
			if err != nil {
				return nil, false, fmt.Errorf("bad offset record %q: %w", rec[1], err)
			}
			e.offset = off
			hasOffset = true
			continue
		}
		if len(rec) >= 3 && rec[0] == "index" {
			continue
		}
		if len(rec) < 3 {
			return nil, false, fmt.Errorf("envelope table row has %d fields, want 3", len(rec))
		}
		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, false, fmt.Errorf("bad index %q: %w", rec[0], err)
		}
		if idx != next {
			return nil, false, fmt.Errorf("envelope table index %d out of order, want %d", idx, next)
		}
		pos, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, false, fmt.Errorf("bad positive value %q: %w", rec[1], err)
		}
		neg, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, false, fmt.Errorf("bad negative value %q: %w", rec[2], err)
		}
		e.pos = append(e.pos, pos)
		e.neg = append(e.neg, neg)
		next++
	}
	return e, hasOffset, nil
}

// LoadTable reads an envelope table from a file.
func LoadTable(path string) (*Envelope, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("opening envelope table: %w", err)
	}
	defer f.Close()
	return ReadTable(f)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
