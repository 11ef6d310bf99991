package wfm

import (
	"encoding/binary"
	"math"
)

// Fixed geometry of a WFM v3 FastFrame file.
const (
	// HeaderSize is the size of the static file header in bytes.
	HeaderSize = 838

	// TrailerRecordSize is the size of the per-frame update record that
	// precedes the curve data. One record per frame beyond the first.
	TrailerRecordSize = 54

	// versionMarker is the 8-byte tag every supported file starts with.
	versionMarker = ":WFM#003"
)

// Absolute byte offsets of the header fields. All multi-byte values are
// little-endian.
const (
	offVersionTag     = 0x002 // 8 bytes ASCII
	offFrameCount     = 0x048 // u32, stored as frame count minus one
	offFastFrameFlag  = 0x04e // u32, 1 when FastFrame
	offImplicitDims   = 0x072 // u32
	offExplicitDims   = 0x076 // u32
	offRecordType     = 0x07a // u32
	offVoltageScale   = 0x0a8 // f64, volts per raw unit
	offVoltageOffset  = 0x0b0 // f64, volts
	offExplicitType   = 0x0f4 // u32
	offTimeScale      = 0x1e8 // f64, seconds per sample
	offTimeStart      = 0x1f0 // f64, seconds at sample 0
	offTimeBase       = 0x300 // u32, 0 for a linear sweep
	offPrecharge      = 0x336 // u32
	offPostcharge     = 0x33a // u32
	offFullRecordLen  = 0x33e // u32, samples per frame
	versionTagLen     = 8
)

// Header is the decoded WFM file header. Immutable once parsed; the curve
// layout is derived entirely from these fields.
type Header struct {
	Version         string
	NumImplicitDims uint8
	NumExplicitDims uint8
	RecordType      uint8
	ExplicitDimType uint8
	IsFastFrame     bool
	NumFastFrames   uint32

	// CurveByteOffset is where the bulk curve data starts, measured from
	// the beginning of the file: the static header plus one trailer record
	// per frame beyond the first.
	CurveByteOffset int64

	VoltageScale  float64
	VoltageOffset float64
	AcqTimeScale  float64
	AcqTimeStart  float64

	PrechargeOffset    uint16
	PostchargeOffset   uint16
	UsableRecordLength uint16
	FullRecordLength   uint16
}

func readU32(buf []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(buf) {
		return 0, parseErrorf("u32 field at offset 0x%03x is out of range", off)
	}
	return binary.LittleEndian.Uint32(buf[off : off+4]), nil
}

func readF64(buf []byte, off int) (float64, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, parseErrorf("f64 field at offset 0x%03x is out of range", off)
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[off : off+8])), nil
}

// parseHeader decodes the static header from exactly HeaderSize bytes.
// It is a pure transform: no I/O, no partial results.
func parseHeader(buf []byte) (Header, error) {
	if len(buf) != HeaderSize {
		return Header{}, &InvalidHeaderSizeError{Len: len(buf)}
	}

	version := string(buf[offVersionTag : offVersionTag+versionTagLen])
	if version != versionMarker {
		return Header{}, &UnsupportedVersionError{Found: version}
	}

	h := Header{Version: version}

	implicit, err := readU32(buf, offImplicitDims)
	if err != nil {
		return Header{}, err
	}
	explicit, err := readU32(buf, offExplicitDims)
	if err != nil {
		return Header{}, err
	}
	h.NumImplicitDims = uint8(implicit)
	h.NumExplicitDims = uint8(explicit)
	if h.NumImplicitDims != 1 || h.NumExplicitDims != 1 {
		return Header{}, &InvalidDimensionsError{Implicit: h.NumImplicitDims, Explicit: h.NumExplicitDims}
	}

	recordType, err := readU32(buf, offRecordType)
	if err != nil {
		return Header{}, err
	}
	explicitType, err := readU32(buf, offExplicitType)
	if err != nil {
		return Header{}, err
	}
	h.RecordType = uint8(recordType)
	h.ExplicitDimType = uint8(explicitType)

	timeBase, err := readU32(buf, offTimeBase)
	if err != nil {
		return Header{}, err
	}
	if timeBase != 0 {
		return Header{}, ErrUnsupportedTimeBase
	}

	fastFrame, err := readU32(buf, offFastFrameFlag)
	if err != nil {
		return Header{}, err
	}
	if fastFrame != 1 {
		return Header{}, ErrNoFastFrames
	}
	h.IsFastFrame = true

	// The format stores the frame count minus one.
	storedFrames, err := readU32(buf, offFrameCount)
	if err != nil {
		return Header{}, err
	}
	h.NumFastFrames = storedFrames + 1
	h.CurveByteOffset = HeaderSize + int64(h.NumFastFrames-1)*TrailerRecordSize

	if h.VoltageScale, err = readF64(buf, offVoltageScale); err != nil {
		return Header{}, err
	}
	if h.VoltageOffset, err = readF64(buf, offVoltageOffset); err != nil {
		return Header{}, err
	}
	if h.AcqTimeScale, err = readF64(buf, offTimeScale); err != nil {
		return Header{}, err
	}
	if h.AcqTimeStart, err = readF64(buf, offTimeStart); err != nil {
		return Header{}, err
	}

	precharge, err := readU32(buf, offPrecharge)
	if err != nil {
		return Header{}, err
	}
	postcharge, err := readU32(buf, offPostcharge)
	if err != nil {
		return Header{}, err
	}
	h.PrechargeOffset = uint16(precharge)
	h.PostchargeOffset = uint16(postcharge)
	if h.PostchargeOffset < h.PrechargeOffset {
		return Header{}, parseErrorf("postcharge offset %d precedes precharge offset %d",
			h.PostchargeOffset, h.PrechargeOffset)
	}
	h.UsableRecordLength = h.PostchargeOffset - h.PrechargeOffset

	fullRecord, err := readU32(buf, offFullRecordLen)
	if err != nil {
		return Header{}, err
	}
	h.FullRecordLength = uint16(fullRecord)

	return h, nil
}
