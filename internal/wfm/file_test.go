package wfm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestFile assembles a complete synthetic capture on disk: header,
// trailer records, then frame-major curve bytes from gen. bodyFrames lets a
// test write fewer frames than the header claims.
func writeTestFile(t *testing.T, p headerParams, bodyFrames int, gen func(frame, sample int) byte) string {
	t.Helper()

	buf := buildHeader(p)
	frames := int(p.storedFrames) + 1
	buf = append(buf, make([]byte, (frames-1)*TrailerRecordSize)...)
	recordLen := int(p.fullRecordLen)
	for f := 0; f < bodyFrames; f++ {
		for s := 0; s < recordLen; s++ {
			buf = append(buf, gen(f, s))
		}
	}

	path := filepath.Join(t.TempDir(), "capture.wfm")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	p := defaultHeaderParams()
	p.storedFrames = 4 // 5 frames
	p.fullRecordLen = 500
	p.postcharge = 500
	p.voltageScale = 0.001
	p.voltageOffset = 0.0
	p.timeScale = 1e-9
	p.timeStart = -1e-5

	path := writeTestFile(t, p, 5, func(frame, sample int) byte {
		return byte(int8((sample - 250) / 5))
	})

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, f.Path)
	assert.Equal(t, 5, f.NumFrames())
	assert.Equal(t, 500, f.RecordLength())
	assert.Len(t, f.Samples.Raw, 2500)
	assert.Len(t, f.Samples.Scaled, 2500)

	// First sample of frame 0: raw value scaled by 1 mV per count.
	assert.Equal(t, float64(f.Samples.Raw[0])*0.001, f.Samples.Scaled[0])
}

func TestLoad_TruncatedFile(t *testing.T) {
	p := defaultHeaderParams()
	p.storedFrames = 9 // 10 frames claimed
	p.fullRecordLen = 2500
	p.postcharge = 2500

	// Only two frames of curve data actually present.
	path := writeTestFile(t, p, 2, func(frame, sample int) byte { return 0 })

	f, err := Load(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Nil(t, f)
}

func TestLoad_ShortHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wfm")
	require.NoError(t, os.WriteFile(path, make([]byte, 100), 0o644))

	f, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestLoad_MissingFile(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.wfm"))
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestLoad_BadVersion(t *testing.T) {
	p := defaultHeaderParams()
	p.version = "NOTAWFM!"
	path := writeTestFile(t, p, 5, func(frame, sample int) byte { return 0 })

	f, err := Load(path)
	var verErr *UnsupportedVersionError
	require.ErrorAs(t, err, &verErr)
	assert.Equal(t, "NOTAWFM!", verErr.Found)
	assert.Nil(t, f)
}

func TestFrame(t *testing.T) {
	f := &File{
		Header: Header{NumFastFrames: 2, FullRecordLength: 3},
		Samples: SampleBuffer{
			Scaled: []float64{1, 2, 3, 4, 5, 6},
			Raw:    []int8{10, 20, 30, 40, 50, 60},
		},
	}

	frame0, ok := f.Frame(0)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, frame0)

	frame1, ok := f.Frame(1)
	require.True(t, ok)
	assert.Equal(t, []float64{4, 5, 6}, frame1)

	_, ok = f.Frame(2)
	assert.False(t, ok)
	_, ok = f.Frame(-1)
	assert.False(t, ok)

	raw1, ok := f.RawFrame(1)
	require.True(t, ok)
	assert.Equal(t, []int8{40, 50, 60}, raw1)
	_, ok = f.RawFrame(2)
	assert.False(t, ok)
}

func TestTimeValues(t *testing.T) {
	f := &File{
		Header: Header{
			FullRecordLength: 5,
			AcqTimeStart:     0.0,
			AcqTimeScale:     0.1,
		},
	}

	times := f.TimeValues()
	require.Len(t, times, 5)
	assert.Equal(t, 0.0, times[0])
	for i, expected := range []float64{0.0, 0.1, 0.2, 0.3, 0.4} {
		assert.InDelta(t, expected, times[i], 1e-10)
	}
	assert.InDelta(t, f.Header.AcqTimeStart+4*f.Header.AcqTimeScale, times[4], 1e-10)
}

func TestSampleRate(t *testing.T) {
	f := &File{Header: Header{AcqTimeScale: 1e-9}}
	assert.Equal(t, 1e9, f.SampleRate())

	f = &File{}
	assert.Equal(t, 0.0, f.SampleRate())
}
