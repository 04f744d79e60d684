package synth

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WritePeakTable writes the per-extremum rescaling diagnostics as CSV.
func WritePeakTable(w io.Writer, factors []PeakFactor) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"peak_index", "original_peak", "drawn_peak", "factor"}); err != nil {
		return err
	}
	for _, f := range factors {
		rec := []string{
			strconv.Itoa(f.Index),
			strconv.FormatFloat(f.Original, 'g', -1, 64),
			strconv.FormatFloat(f.Target, 'g', -1, 64),
			strconv.FormatFloat(f.Factor, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SavePeakTable writes the peak diagnostics to a file.
func SavePeakTable(path string, factors []PeakFactor) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating peak table: %w", err)
	}
	defer f.Close()
	if err := WritePeakTable(f, factors); err != nil {
		return fmt.Errorf("writing peak table: %w", err)
	}
	return nil
}
