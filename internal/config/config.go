// Package config holds shared processing defaults.
package config

// Scan processing
const (
	// ScanFilePattern matches the capture files that make up a scan; one
	// file per scan line.
	ScanFilePattern = "*.wfm"
)

// Export settings
const (
	// WAVBitDepth is the bit depth of exported audio. Curve samples are
	// signed 8-bit, so nothing wider carries information.
	WAVBitDepth = 8
)

// Chart settings
const (
	// ChartMaxPoints caps plotted points per series; longer records are
	// strided down to keep the HTML payload reasonable.
	ChartMaxPoints = 4000
)
