package export

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/sraslab/tekwfm/internal/config"
	"github.com/sraslab/tekwfm/internal/wfm"
)

// WriteWAV exports one frame's raw samples as an 8-bit mono WAV file, with
// the sample rate taken from the acquisition clock. Useful for listening to
// acoustic captures directly.
func WriteWAV(path string, f *wfm.File, frame int) error {
	raw, ok := f.RawFrame(frame)
	if !ok {
		return fmt.Errorf("frame %d out of range (file has %d frames)", frame, f.NumFrames())
	}

	sampleRate := int(f.SampleRate())
	if sampleRate <= 0 {
		return fmt.Errorf("cannot derive sample rate from time scale %g", f.Header.AcqTimeScale)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}

	enc := wav.NewEncoder(out, sampleRate, config.WAVBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(raw)),
		SourceBitDepth: config.WAVBitDepth,
	}
	// 8-bit WAV is unsigned; shift the two's-complement samples into 0..255.
	for i, v := range raw {
		buf.Data[i] = int(v) + 128
	}

	if err := enc.Write(buf); err != nil {
		out.Close()
		return fmt.Errorf("failed to write PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		out.Close()
		return fmt.Errorf("failed to finalise WAV file: %w", err)
	}
	return out.Close()
}
