package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/datatug/filestat/pkg/charts"
	"github.com/datatug/filestat/pkg/extstats"
	"github.com/datatug/filestat/pkg/fsutils"
	"github.com/datatug/filestat/pkg/inventory"
	"github.com/datatug/filestat/pkg/profiling"
	"github.com/datatug/filestat/pkg/report"
	"github.com/datatug/filestat/pkg/sizedist"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// inventoryFile is read from the working directory.
const inventoryFile = "file_info_d.csv"

var (
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
)

var osExit = os.Exit
var stdout io.Writer = os.Stdout
var showCharts = charts.ShowAll

func main() {
	if code := start(); code != 0 {
		osExit(code)
	}
}

func start() int {
	flag.Parse()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}
	if *memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(*memProfile)
		defer writeMemProfile()
	}

	if err := run(inventoryFile); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

var run = func(filePath string) error {
	records, err := inventory.Load(filePath)
	if err != nil {
		return err
	}
	log.Info().Str("file", filePath).Int("records", len(records)).Msg("inventory loaded")

	summary := extstats.Summarize(records)
	averages := summary.Averages()
	totals := summary.Totals()
	if err = report.TopByAverage(stdout, averages); err != nil {
		return err
	}
	if err = report.TopByTotal(stdout, totals); err != nil {
		return err
	}

	histogram := sizedist.Bucketize(records)
	if err = report.SizeDistribution(stdout, histogram); err != nil {
		return err
	}

	return showCharts(newCharts(averages, totals, histogram)...)
}

func newCharts(averages, totals []extstats.Entry, histogram sizedist.Histogram) []tview.Primitive {
	sizeFormatter := charts.WithValueFormatter(fsutils.GetSizeShortText)
	return []tview.Primitive{
		charts.NewBarChart("Average File Size by File Type", "File Type", "Average Size",
			extensionBars(averages), sizeFormatter),
		charts.NewBarChart("Total File Size by File Type", "File Type", "Total Size",
			extensionBars(totals), sizeFormatter),
		charts.NewBarChart("File Count by Size Ranges", "File Size Ranges", "File Count",
			rangeBars(histogram), charts.WithBarColor(tcell.ColorMediumSeaGreen)),
	}
}

func extensionBars(entries []extstats.Entry) []charts.Bar {
	bars := make([]charts.Bar, 0, len(entries))
	for _, e := range entries {
		label := e.Extension
		if label == "" {
			label = "<no extension>"
		}
		bars = append(bars, charts.Bar{Label: label, Value: e.Value})
	}
	return bars
}

func rangeBars(histogram sizedist.Histogram) []charts.Bar {
	bars := make([]charts.Bar, 0, len(histogram.Ranges))
	for _, r := range histogram.Ranges {
		bars = append(bars, charts.Bar{Label: r.Label, Value: float64(r.Count)})
	}
	return bars
}
