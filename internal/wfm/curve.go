package wfm

// SampleBuffer holds the assembled curve data for every frame in
// frame-major order: all of frame 0, then frame 1, and so on. Raw and
// Scaled are parallel sequences of length NumFastFrames*FullRecordLength.
type SampleBuffer struct {
	Raw    []int8
	Scaled []float64
}

// assembleCurve slices the post-header bytes into per-frame sample runs and
// applies the voltage scaling from the header. body starts immediately after
// the static header, so frame offsets are relative to CurveByteOffset minus
// HeaderSize. A frame that would run past the end of body is an error, never
// a truncated result.
func assembleCurve(h Header, body []byte) (SampleBuffer, error) {
	recordLen := int(h.FullRecordLength)
	numFrames := int(h.NumFastFrames)
	total := numFrames * recordLen

	samples := SampleBuffer{
		Raw:    make([]int8, 0, total),
		Scaled: make([]float64, 0, total),
	}

	base := int(h.CurveByteOffset) - HeaderSize
	for frame := 0; frame < numFrames; frame++ {
		start := base + frame*recordLen
		end := start + recordLen
		if end > len(body) {
			return SampleBuffer{}, parseErrorf(
				"unexpected end of file at frame %d: offset %d > buffer length %d",
				frame, end, len(body))
		}

		for _, b := range body[start:end] {
			raw := int8(b)
			samples.Raw = append(samples.Raw, raw)
			samples.Scaled = append(samples.Scaled, float64(raw)*h.VoltageScale+h.VoltageOffset)
		}
	}

	return samples, nil
}
