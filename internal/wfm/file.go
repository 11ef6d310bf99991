// Package wfm decodes Tektronix WFM v3 FastFrame waveform captures into
// scaled voltage samples.
//
// A file is a fixed 838-byte header, one 54-byte update record per frame
// beyond the first, then the curve data: NumFastFrames runs of
// FullRecordLength signed 8-bit samples. Decoding is all-or-nothing; a File
// is only returned once the header validated and every frame's samples were
// present.
package wfm

import (
	"fmt"
	"io"
	"os"
)

// File is a fully decoded WFM capture. It is immutable after Load returns;
// the sample layout is fixed by the header fields.
type File struct {
	Path    string
	Header  Header
	Samples SampleBuffer
}

// Load reads and decodes the WFM file at path. It returns a typed error
// (InvalidHeaderSizeError, UnsupportedVersionError, InvalidDimensionsError,
// ErrUnsupportedTimeBase, ErrNoFastFrames, ParseError) for format problems
// and a wrapped I/O error for open/read failures. No partially decoded file
// is ever returned.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WFM file: %w", err)
	}
	defer fh.Close()

	var headerBuf [HeaderSize]byte
	if _, err := io.ReadFull(fh, headerBuf[:]); err != nil {
		return nil, fmt.Errorf("failed to read WFM header: %w", err)
	}

	header, err := parseHeader(headerBuf[:])
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve data: %w", err)
	}

	samples, err := assembleCurve(header, body)
	if err != nil {
		return nil, err
	}

	return &File{Path: path, Header: header, Samples: samples}, nil
}

// NumFrames returns the number of FastFrame acquisitions in the file.
func (f *File) NumFrames() int {
	return int(f.Header.NumFastFrames)
}

// RecordLength returns the number of samples per frame.
func (f *File) RecordLength() int {
	return int(f.Header.FullRecordLength)
}

// SampleRate returns the acquisition sample rate in Hz, or 0 when the time
// scale is missing.
func (f *File) SampleRate() float64 {
	if f.Header.AcqTimeScale <= 0 {
		return 0
	}
	return 1 / f.Header.AcqTimeScale
}

// Frame returns the scaled voltage samples for one frame. The second return
// is false when index is out of range; there is no clamping or wraparound.
func (f *File) Frame(index int) ([]float64, bool) {
	if index < 0 || index >= f.NumFrames() {
		return nil, false
	}
	l := f.RecordLength()
	return f.Samples.Scaled[index*l : (index+1)*l], true
}

// RawFrame returns the unscaled samples for one frame, with the same range
// semantics as Frame.
func (f *File) RawFrame(index int) ([]int8, bool) {
	if index < 0 || index >= f.NumFrames() {
		return nil, false
	}
	l := f.RecordLength()
	return f.Samples.Raw[index*l : (index+1)*l], true
}

// TimeValues returns the shared time axis for every frame: RecordLength
// values starting at AcqTimeStart and stepping by AcqTimeScale. FastFrame
// captures share one sample clock, so a single axis covers all frames.
func (f *File) TimeValues() []float64 {
	l := f.RecordLength()
	times := make([]float64, l)
	for i := range times {
		times[i] = f.Header.AcqTimeStart + float64(i)*f.Header.AcqTimeScale
	}
	return times
}
