// Package chart renders decoded captures as self-contained HTML charts.
package chart

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sraslab/tekwfm/internal/config"
	"github.com/sraslab/tekwfm/internal/sras"
	"github.com/sraslab/tekwfm/internal/wfm"
)

// RenderWaveform writes an HTML line chart of one frame, time against
// voltage.
func RenderWaveform(w io.Writer, f *wfm.File, frame int) error {
	samples, ok := f.Frame(frame)
	if !ok {
		return fmt.Errorf("frame %d out of range (file has %d frames)", frame, f.NumFrames())
	}
	times := f.TimeValues()

	stride := 1
	if len(samples) > config.ChartMaxPoints {
		stride = (len(samples) + config.ChartMaxPoints - 1) / config.ChartMaxPoints
	}

	xAxis := make([]string, 0, len(samples)/stride+1)
	data := make([]opts.LineData, 0, len(samples)/stride+1)
	for i := 0; i < len(samples); i += stride {
		xAxis = append(xAxis, fmt.Sprintf("%.4g", times[i]*1e6))
		data = append(data, opts.LineData{Value: samples[i]})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "WFM Waveform",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Frame %d of %d", frame, f.NumFrames()),
			Subtitle: fmt.Sprintf("%s  points=%d stride=%d", filepath.Base(f.Path), len(data), stride),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (us)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Voltage (V)"}),
	)
	line.SetXAxis(xAxis)
	line.AddSeries("voltage", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))

	return line.Render(w)
}

// RenderSpectrum writes an HTML line chart of one pixel's power spectral
// density. The scan line must have been processed with ProcessPSD first.
func RenderSpectrum(w io.Writer, line *sras.ScanLine, pixel int) error {
	if pixel < 0 || pixel >= line.LineLength {
		return fmt.Errorf("pixel %d out of range (line has %d pixels)", pixel, line.LineLength)
	}
	if line.PixelPSD == nil {
		return fmt.Errorf("scan line has no PSD data; run ProcessPSD first")
	}

	psd := line.PixelPSD[pixel]
	xAxis := make([]string, 0, len(psd))
	data := make([]opts.LineData, 0, len(psd))
	for k, p := range psd {
		xAxis = append(xAxis, fmt.Sprintf("%.4g", line.FreqBins[k]/1e3))
		data = append(data, opts.LineData{Value: p})
	}

	c := charts.NewLine()
	c.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Pixel Spectrum",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Pixel %d of %d", pixel, line.LineLength),
			Subtitle: fmt.Sprintf("record=%d samples  bins=%d", line.RecordLength, len(psd)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frequency (kHz)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Power"}),
	)
	c.SetXAxis(xAxis)
	c.AddSeries("psd", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))

	return c.Render(w)
}
