package wfm

import (
	"errors"
	"fmt"
)

// Sentinel errors for header fields that are validated against a single
// expected value.
var (
	// ErrUnsupportedTimeBase is returned when the time base code is not 0
	// (linear sweep). Interpolated and rolled time bases are not supported.
	ErrUnsupportedTimeBase = errors.New("unsupported time base type")

	// ErrNoFastFrames is returned for single-acquisition files. Only
	// FastFrame captures are supported.
	ErrNoFastFrames = errors.New("no FastFrames found in file")
)

// InvalidHeaderSizeError is returned when the header buffer is not exactly
// HeaderSize bytes.
type InvalidHeaderSizeError struct {
	Len int
}

func (e *InvalidHeaderSizeError) Error() string {
	return fmt.Sprintf("invalid header size: expected %d bytes, got %d", HeaderSize, e.Len)
}

// UnsupportedVersionError is returned when the version tag does not match
// the WFM v3 marker. Found holds the offending tag bytes.
type UnsupportedVersionError struct {
	Found string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported WFM version: %q", e.Found)
}

// InvalidDimensionsError is returned when the implicit or explicit dimension
// count is not 1. Only plain voltage-vs-time records are supported.
type InvalidDimensionsError struct {
	Implicit uint8
	Explicit uint8
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("invalid dimensions: implicit=%d, explicit=%d", e.Implicit, e.Explicit)
}

// ParseError reports a malformed numeric field or a curve slice that runs
// past the available data.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Msg
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}
