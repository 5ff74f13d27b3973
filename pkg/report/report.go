// Package report prints the console summaries of a file inventory.
package report

import (
	"fmt"
	"io"

	"github.com/datatug/filestat/pkg/extstats"
	"github.com/datatug/filestat/pkg/sizedist"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TopN is the number of extensions listed in each ranking.
const TopN = 10

// Bounds of the size band summarised after the histogram.
const (
	ShareFrom int64 = 100
	ShareTo   int64 = 10000
)

var printer = message.NewPrinter(language.English)

// TopByAverage prints the extensions with the largest average size.
func TopByAverage(w io.Writer, averages []extstats.Entry) error {
	out := &writer{w: w}
	out.printf("Top %d File Types by Average Size:\n", TopN)
	out.printf("Type\t\tFile Count\tAverage Size\tTotal Size\n")
	out.printf("------------------------------------------------------------\n")
	for _, e := range extstats.Top(averages, TopN) {
		out.printf("%s\t%d\t\t%.2f bytes\n", e.Extension, e.Count, e.Value)
	}
	return out.err
}

// TopByTotal prints the extensions with the largest total size.
func TopByTotal(w io.Writer, totals []extstats.Entry) error {
	out := &writer{w: w}
	out.printf("\n\n\n\nTop %d File Types by Total Size:\n", TopN)
	out.printf("Type\t\tFile Count\tTotal Size\n")
	out.printf("--------------------------------------------\n")
	for _, e := range extstats.Top(totals, TopN) {
		out.printf("%s\t%d\t\t%s bytes\n", e.Extension, e.Count, printer.Sprintf("%d", e.TotalSize))
	}
	return out.err
}

// SizeDistribution prints the histogram and the share of files in [ShareFrom; ShareTo).
// It fails with sizedist.ErrNoRecords when the histogram is empty.
func SizeDistribution(w io.Writer, h sizedist.Histogram) error {
	out := &writer{w: w}
	out.printf("\n\n\n\nFile Count by Size Ranges:\n")
	for _, r := range h.Ranges {
		out.printf("%s:\t%d files\n", r.Label, r.Count)
	}
	if out.err != nil {
		return out.err
	}
	share, err := h.ShareInRange(ShareFrom, ShareTo)
	if err != nil {
		return err
	}
	out.printf("The size of %.1f%% of the files belongs to the range [%d; %d) bytes\n", share, ShareFrom, ShareTo)
	return out.err
}

// writer keeps the first write error and skips later writes.
type writer struct {
	w   io.Writer
	err error
}

func (o *writer) printf(format string, args ...any) {
	if o.err == nil {
		_, o.err = fmt.Fprintf(o.w, format, args...)
	}
}
