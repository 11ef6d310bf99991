// Package sras post-processes decoded FastFrame captures for spatially
// resolved acoustic spectroscopy scans. Each capture is one scan line; each
// frame within it is one pixel along the line.
package sras

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/sraslab/tekwfm/internal/wfm"
)

// ScanLine is one line of an SRAS scan, copied out of a decoded capture.
// It owns its sample buffer; processing never touches the source file.
type ScanLine struct {
	LineLength   int     // pixels in the line (frames in the capture)
	RecordLength int     // samples per pixel
	TimeStep     float64 // seconds per sample
	ScaledData   []float64

	// Filled by ProcessDCValues.
	PixelDCValues []float64

	// Filled by ProcessPSD. PixelPSD[p][k] is the one-sided power at
	// FreqBins[k] for pixel p.
	PixelPSD [][]float64
	FreqBins []float64
}

// NewScanLine builds a scan line from a decoded capture. The sample buffer
// is copied so the line stays valid independently of the file.
func NewScanLine(f *wfm.File) *ScanLine {
	scaled := make([]float64, len(f.Samples.Scaled))
	copy(scaled, f.Samples.Scaled)

	return &ScanLine{
		LineLength:   f.NumFrames(),
		RecordLength: f.RecordLength(),
		TimeStep:     f.Header.AcqTimeScale,
		ScaledData:   scaled,
	}
}

// pixel returns the sample run for one pixel along the line.
func (s *ScanLine) pixel(index int) []float64 {
	start := index * s.RecordLength
	return s.ScaledData[start : start+s.RecordLength]
}

// ProcessDCValues computes the mean voltage of every pixel record. The DC
// level maps surface reflectivity across the scan.
func (s *ScanLine) ProcessDCValues() {
	s.PixelDCValues = make([]float64, 0, s.LineLength)
	for p := 0; p < s.LineLength; p++ {
		var sum float64
		for _, v := range s.pixel(p) {
			sum += v
		}
		s.PixelDCValues = append(s.PixelDCValues, sum/float64(s.RecordLength))
	}
}

// ProcessPSD computes a one-sided power spectral density for every pixel:
// Hanning window, real FFT, squared magnitude. Bin centres follow the
// acquisition clock, spaced 1/(RecordLength*TimeStep) Hz apart.
func (s *ScanLine) ProcessPSD() {
	n := s.RecordLength
	fft := fourier.NewFFT(n)
	numBins := n/2 + 1

	s.FreqBins = make([]float64, numBins)
	if s.TimeStep > 0 {
		binWidth := 1 / (float64(n) * s.TimeStep)
		for k := range s.FreqBins {
			s.FreqBins[k] = float64(k) * binWidth
		}
	}

	s.PixelPSD = make([][]float64, 0, s.LineLength)
	for p := 0; p < s.LineLength; p++ {
		windowed := ApplyHanning(s.pixel(p))
		coeffs := fft.Coefficients(nil, windowed)

		psd := make([]float64, numBins)
		for k, c := range coeffs {
			psd[k] = (real(c)*real(c) + imag(c)*imag(c)) / float64(n)
		}
		s.PixelPSD = append(s.PixelPSD, psd)
	}
}

// ApplyHanning applies a Hanning window to the input data
func ApplyHanning(data []float64) []float64 {
	windowed := make([]float64, len(data))
	n := len(data)
	for i := range data {
		window := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = data[i] * window
	}
	return windowed
}

// DCMatrix collects the DC values of a set of processed lines into a
// row-per-line matrix for export.
func DCMatrix(results []ScanResult) [][]float64 {
	matrix := make([][]float64, 0, len(results))
	for _, r := range results {
		matrix = append(matrix, r.Line.PixelDCValues)
	}
	return matrix
}
