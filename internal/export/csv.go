// Package export writes decoded captures and scan results to interchange
// formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sraslab/tekwfm/internal/wfm"
)

// WriteCSV writes the scaled samples in long form, frame-major: one row per
// sample carrying its frame index, sample index and voltage.
func WriteCSV(w io.Writer, f *wfm.File) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Frame", "Sample", "Voltage"}); err != nil {
		return err
	}

	recordLen := f.RecordLength()
	for i, v := range f.Samples.Scaled {
		row := []string{
			strconv.Itoa(i / recordLen),
			strconv.Itoa(i % recordLen),
			strconv.FormatFloat(v, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVByFrame writes the scaled samples in wide form: one row per sample
// index with one column per frame.
func WriteCSVByFrame(w io.Writer, f *wfm.File) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, f.NumFrames()+1)
	header = append(header, "Sample")
	for i := 0; i < f.NumFrames(); i++ {
		header = append(header, fmt.Sprintf("Frame%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	recordLen := f.RecordLength()
	row := make([]string, f.NumFrames()+1)
	for sample := 0; sample < recordLen; sample++ {
		row[0] = strconv.Itoa(sample)
		for frame := 0; frame < f.NumFrames(); frame++ {
			v := f.Samples.Scaled[frame*recordLen+sample]
			row[frame+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteDCMap writes a scan's DC levels as one row per scan line, one column
// per pixel.
func WriteDCMap(w io.Writer, matrix [][]float64) error {
	cw := csv.NewWriter(w)
	for _, line := range matrix {
		row := make([]string, len(line))
		for i, v := range line {
			row[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes a capture to path, in wide form when byFrame is set.
func WriteCSVFile(path string, f *wfm.File, byFrame bool) error {
	write := WriteCSV
	if byFrame {
		write = WriteCSVByFrame
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}

	writeErr := write(out, f)
	if closeErr := out.Close(); writeErr == nil {
		writeErr = closeErr
	}
	return writeErr
}

// WriteDCMapFile writes a scan DC map to path.
func WriteDCMapFile(path string, matrix [][]float64) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}

	writeErr := WriteDCMap(out, matrix)
	if closeErr := out.Close(); writeErr == nil {
		writeErr = closeErr
	}
	return writeErr
}
