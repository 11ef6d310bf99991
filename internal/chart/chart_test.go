package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sraslab/tekwfm/internal/sras"
	"github.com/sraslab/tekwfm/internal/wfm"
)

func testFile() *wfm.File {
	return &wfm.File{
		Path: "capture.wfm",
		Header: wfm.Header{
			NumFastFrames:    2,
			FullRecordLength: 8,
			AcqTimeScale:     1e-6,
		},
		Samples: wfm.SampleBuffer{
			Scaled: []float64{0, 1, 0, -1, 0, 1, 0, -1, 0, 2, 0, -2, 0, 2, 0, -2},
		},
	}
}

func TestRenderWaveform(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWaveform(&buf, testFile(), 0))

	html := buf.String()
	assert.True(t, strings.Contains(html, "echarts"))
	assert.True(t, strings.Contains(html, "Frame 0 of 2"))
}

func TestRenderWaveform_FrameOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	err := RenderWaveform(&buf, testFile(), 5)
	assert.Error(t, err)
}

func TestRenderSpectrum(t *testing.T) {
	line := sras.NewScanLine(testFile())
	line.ProcessPSD()

	var buf bytes.Buffer
	require.NoError(t, RenderSpectrum(&buf, line, 1))
	assert.True(t, strings.Contains(buf.String(), "echarts"))
}

func TestRenderSpectrum_Unprocessed(t *testing.T) {
	line := sras.NewScanLine(testFile())

	var buf bytes.Buffer
	assert.Error(t, RenderSpectrum(&buf, line, 0))
	assert.Error(t, RenderSpectrum(&buf, line, 9))
}
