package sras

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/sraslab/tekwfm/internal/config"
	"github.com/sraslab/tekwfm/internal/wfm"
)

// ScanResult is one processed scan line and the capture it came from.
type ScanResult struct {
	Path string
	Line *ScanLine
}

// ProgressCallback is called after each capture in a batch is processed.
type ProgressCallback func(file, totalFiles int, path string, elapsed time.Duration)

// ProcessDir decodes every .wfm capture in dir (one scan line per file, in
// lexical order) and runs DC and PSD extraction on each. The first capture
// that fails to decode aborts the batch; a scan with a corrupt line needs
// re-acquiring, not patching around.
func ProcessDir(dir string, progressCb ProgressCallback) ([]ScanResult, error) {
	matches, err := filepath.Glob(filepath.Join(dir, config.ScanFilePattern))
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no %s captures in %s", config.ScanFilePattern, dir)
	}
	sort.Strings(matches)

	startTime := time.Now()
	results := make([]ScanResult, 0, len(matches))
	for i, path := range matches {
		f, err := wfm.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		line := NewScanLine(f)
		line.ProcessDCValues()
		line.ProcessPSD()
		results = append(results, ScanResult{Path: path, Line: line})

		if progressCb != nil {
			progressCb(i+1, len(matches), path, time.Since(startTime))
		}
	}

	return results, nil
}
