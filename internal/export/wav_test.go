package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.wav")
	require.NoError(t, WriteWAV(path, testFile(), 1))

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	dec := wav.NewDecoder(in)
	require.True(t, dec.IsValidFile())

	pcm, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 1_000_000, int(dec.SampleRate))
	assert.Equal(t, uint16(8), dec.BitDepth)
	assert.Equal(t, uint16(1), dec.NumChans)

	// Frame 1 raw samples are 2,3,4; stored biased by +128.
	require.Len(t, pcm.Data, 3)
	assert.Equal(t, []int{130, 131, 132}, pcm.Data)
}

func TestWriteWAV_FrameOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.wav")
	err := WriteWAV(path, testFile(), 2)
	assert.Error(t, err)
}

func TestWriteWAV_NoSampleRate(t *testing.T) {
	f := testFile()
	f.Header.AcqTimeScale = 0

	err := WriteWAV(filepath.Join(t.TempDir(), "frame.wav"), f, 0)
	assert.Error(t, err)
}
