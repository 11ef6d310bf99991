package wfm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader(frames, recordLen int) Header {
	h := Header{
		NumFastFrames:    uint32(frames),
		FullRecordLength: uint16(recordLen),
		VoltageScale:     0.001,
		VoltageOffset:    0.0,
	}
	h.CurveByteOffset = HeaderSize + int64(frames-1)*TrailerRecordSize
	return h
}

// curveBody builds a post-header buffer: trailer records, then frame-major
// curve bytes produced by gen.
func curveBody(h Header, gen func(frame, sample int) byte) []byte {
	body := make([]byte, int(h.CurveByteOffset)-HeaderSize)
	for f := 0; f < int(h.NumFastFrames); f++ {
		for s := 0; s < int(h.FullRecordLength); s++ {
			body = append(body, gen(f, s))
		}
	}
	return body
}

func TestAssembleCurve(t *testing.T) {
	h := testHeader(3, 4)
	body := curveBody(h, func(frame, sample int) byte {
		return byte(int8(frame*10 + sample))
	})

	samples, err := assembleCurve(h, body)
	require.NoError(t, err)

	require.Len(t, samples.Raw, 12)
	require.Len(t, samples.Scaled, 12)
	assert.Equal(t, int8(0), samples.Raw[0])
	assert.Equal(t, int8(3), samples.Raw[3])
	assert.Equal(t, int8(10), samples.Raw[4]) // frame 1 starts here
	assert.Equal(t, int8(23), samples.Raw[11])

	for i, raw := range samples.Raw {
		assert.Equal(t, float64(raw)*h.VoltageScale+h.VoltageOffset, samples.Scaled[i])
	}
}

func TestAssembleCurve_SignedSamples(t *testing.T) {
	h := testHeader(1, 4)
	h.VoltageScale = 0.5
	h.VoltageOffset = 1.0
	body := []byte{0x00, 0x7f, 0x80, 0xff} // 0, 127, -128, -1

	samples, err := assembleCurve(h, body)
	require.NoError(t, err)

	assert.Equal(t, []int8{0, 127, -128, -1}, samples.Raw)
	assert.Equal(t, []float64{1.0, 64.5, -63.0, 0.5}, samples.Scaled)
}

func TestAssembleCurve_TruncatedBody(t *testing.T) {
	h := testHeader(10, 2500)
	// Header claims 10 frames of 2500 samples but the body holds barely one.
	body := make([]byte, int(h.CurveByteOffset)-HeaderSize+2500)

	_, err := assembleCurve(h, body)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
