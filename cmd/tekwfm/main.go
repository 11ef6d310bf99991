package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sraslab/tekwfm/internal/chart"
	"github.com/sraslab/tekwfm/internal/cli"
	"github.com/sraslab/tekwfm/internal/export"
	"github.com/sraslab/tekwfm/internal/sras"
	"github.com/sraslab/tekwfm/internal/ui"
	"github.com/sraslab/tekwfm/internal/wfm"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Info  InfoCmd  `cmd:"" help:"Show the decoded header of a capture"`
	Csv   CSVCmd   `cmd:"" name:"csv" help:"Export a capture's voltages to CSV"`
	Wav   WAVCmd   `cmd:"" name:"wav" help:"Export one frame as an 8-bit WAV file"`
	Chart ChartCmd `cmd:"" help:"Render a frame waveform or spectrum as HTML"`
	Scan  ScanCmd  `cmd:"" help:"Process a directory of captures as an SRAS scan"`

	Version kong.VersionFlag `help:"Show version information"`
}

// InfoCmd prints the decoded header fields of one capture.
type InfoCmd struct {
	Input string `arg:"" help:"Input WFM file" type:"existingfile"`
}

func (c *InfoCmd) Run() error {
	f, err := wfm.Load(c.Input)
	if err != nil {
		return err
	}
	h := f.Header

	cli.PrintSection("Capture")
	cli.PrintInfo("File", filepath.Base(f.Path))
	cli.PrintInfo("Format", h.Version)
	cli.PrintInfo("Frames", fmt.Sprintf("%d", f.NumFrames()))
	cli.PrintInfo("Record length", fmt.Sprintf("%d samples (%d usable)",
		h.FullRecordLength, h.UsableRecordLength))

	cli.PrintSection("Scaling")
	cli.PrintInfo("Voltage scale", fmt.Sprintf("%g V/count", h.VoltageScale))
	cli.PrintInfo("Voltage offset", fmt.Sprintf("%g V", h.VoltageOffset))
	cli.PrintInfo("Sample rate", cli.FormatHz(f.SampleRate()))
	cli.PrintInfo("Trigger time", cli.FormatSeconds(h.AcqTimeStart))
	cli.PrintInfo("Frame duration", cli.FormatSeconds(float64(f.RecordLength())*h.AcqTimeScale))
	return nil
}

// CSVCmd exports the scaled samples of a capture to CSV.
type CSVCmd struct {
	Input   string `arg:"" help:"Input WFM file" type:"existingfile"`
	Output  string `arg:"" help:"Output CSV file"`
	ByFrame bool   `help:"One column per frame instead of one row per sample"`
}

func (c *CSVCmd) Run() error {
	f, err := wfm.Load(c.Input)
	if err != nil {
		return err
	}
	if err := export.WriteCSVFile(c.Output, f, c.ByFrame); err != nil {
		return err
	}
	cli.PrintSuccess(fmt.Sprintf("wrote %d frames x %d samples to %s",
		f.NumFrames(), f.RecordLength(), c.Output))
	return nil
}

// WAVCmd exports one frame's raw samples as audio.
type WAVCmd struct {
	Input  string `arg:"" help:"Input WFM file" type:"existingfile"`
	Output string `arg:"" help:"Output WAV file"`
	Frame  int    `help:"Frame index to export" default:"0"`
}

func (c *WAVCmd) Run() error {
	f, err := wfm.Load(c.Input)
	if err != nil {
		return err
	}
	if err := export.WriteWAV(c.Output, f, c.Frame); err != nil {
		return err
	}
	cli.PrintSuccess(fmt.Sprintf("wrote frame %d (%s) to %s",
		c.Frame, cli.FormatHz(f.SampleRate()), c.Output))
	return nil
}

// ChartCmd renders one frame as a standalone HTML chart.
type ChartCmd struct {
	Input    string `arg:"" help:"Input WFM file" type:"existingfile"`
	Output   string `arg:"" help:"Output HTML file"`
	Frame    int    `help:"Frame (pixel) index to plot" default:"0"`
	Spectrum bool   `help:"Plot the frame's power spectrum instead of the waveform"`
}

func (c *ChartCmd) Run() error {
	f, err := wfm.Load(c.Input)
	if err != nil {
		return err
	}

	out, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if c.Spectrum {
		line := sras.NewScanLine(f)
		line.ProcessPSD()
		err = chart.RenderSpectrum(out, line, c.Frame)
	} else {
		err = chart.RenderWaveform(out, f, c.Frame)
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	cli.PrintSuccess(fmt.Sprintf("wrote chart to %s", c.Output))
	return nil
}

// ScanCmd batch-processes a directory of captures, one scan line per file.
type ScanCmd struct {
	Dir   string `arg:"" help:"Directory of WFM captures, one per scan line" type:"existingdir"`
	Out   string `help:"DC map CSV output path" default:"scan_dc.csv"`
	NoTui bool   `help:"Plain progress output instead of the TUI"`
}

func (c *ScanCmd) Run() error {
	if c.NoTui {
		return c.runPlain()
	}

	p := tea.NewProgram(ui.NewScanModel())

	var scanErr error
	go func() {
		startTime := time.Now()
		results, err := sras.ProcessDir(c.Dir, func(file, totalFiles int, path string, elapsed time.Duration) {
			p.Send(ui.ScanProgress{File: file, TotalFiles: totalFiles, Path: path, Elapsed: elapsed})
		})
		if err == nil {
			err = export.WriteDCMapFile(c.Out, sras.DCMatrix(results))
		}

		var pixels int
		for _, r := range results {
			pixels += r.Line.LineLength
		}

		scanErr = err
		p.Send(ui.ScanComplete{
			Files:    len(results),
			Pixels:   pixels,
			Output:   c.Out,
			Duration: time.Since(startTime),
			Err:      err,
		})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run progress UI: %w", err)
	}
	return scanErr
}

func (c *ScanCmd) runPlain() error {
	startTime := time.Now()
	results, err := sras.ProcessDir(c.Dir, func(file, totalFiles int, path string, _ time.Duration) {
		fmt.Printf("  [%d/%d] %s\n", file, totalFiles, filepath.Base(path))
	})
	if err != nil {
		return err
	}
	if err := export.WriteDCMapFile(c.Out, sras.DCMatrix(results)); err != nil {
		return err
	}

	cli.PrintSuccess(fmt.Sprintf("processed %d lines in %s, DC map written to %s",
		len(results), cli.FormatDuration(time.Since(startTime)), c.Out))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tekwfm"),
		kong.Description("Decode Tektronix WFM v3 FastFrame captures for SRAS scan processing."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if err := ctx.Run(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
