package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/datatug/filestat/pkg/extstats"
	"github.com/datatug/filestat/pkg/inventory"
	"github.com/datatug/filestat/pkg/sizedist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() *extstats.Summary {
	return extstats.Summarize([]inventory.Record{
		{Length: 100, Extension: ".txt"},
		{Length: 300, Extension: ".txt"},
		{Length: 50, Extension: ".csv"},
		{Length: 1234567, Extension: ".iso"},
	})
}

func TestTopByAverage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TopByAverage(&buf, sampleSummary().Averages()))
	expected := "Top 10 File Types by Average Size:\n" +
		"Type\t\tFile Count\tAverage Size\tTotal Size\n" +
		"------------------------------------------------------------\n" +
		".iso\t1\t\t1234567.00 bytes\n" +
		".txt\t2\t\t200.00 bytes\n" +
		".csv\t1\t\t50.00 bytes\n"
	assert.Equal(t, expected, buf.String())
}

func TestTopByTotal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TopByTotal(&buf, sampleSummary().Totals()))
	expected := "\n\n\n\nTop 10 File Types by Total Size:\n" +
		"Type\t\tFile Count\tTotal Size\n" +
		"--------------------------------------------\n" +
		".iso\t1\t\t1,234,567 bytes\n" +
		".txt\t2\t\t400 bytes\n" +
		".csv\t1\t\t50 bytes\n"
	assert.Equal(t, expected, buf.String())
}

func TestTopByTotal_LimitsToTen(t *testing.T) {
	var records []inventory.Record
	for i := 0; i < 12; i++ {
		records = append(records, inventory.Record{Length: int64(i), Extension: "." + string(rune('a'+i))})
	}
	var buf bytes.Buffer
	require.NoError(t, TopByTotal(&buf, extstats.TotalSizeByExtension(records)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3+TopN)
	assert.True(t, strings.HasPrefix(lines[3], ".l\t"))
}

func TestTopByAverage_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TopByAverage(&buf, nil))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

func TestSizeDistribution(t *testing.T) {
	h := sizedist.Bucketize([]inventory.Record{{Length: 100}, {Length: 300}, {Length: 5000}})
	var buf bytes.Buffer
	require.NoError(t, SizeDistribution(&buf, h))
	expected := "\n\n\n\nFile Count by Size Ranges:\n" +
		"(0; 1e1] bytes:\t0 files\n" +
		"[1e1; 1e2) bytes:\t0 files\n" +
		"[1e2; 1e3) bytes:\t2 files\n" +
		"[1e3; 1e4) bytes:\t1 files\n" +
		"[1e4; 1e5) bytes:\t0 files\n" +
		"[1e5; 1e6) bytes:\t0 files\n" +
		"[1e6; inf) bytes:\t0 files\n" +
		"The size of 100.0% of the files belongs to the range [100; 10000) bytes\n"
	assert.Equal(t, expected, buf.String())
}

func TestSizeDistribution_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := SizeDistribution(&buf, sizedist.Bucketize(nil))
	assert.True(t, errors.Is(err, sizedist.ErrNoRecords))
	assert.Contains(t, buf.String(), "[1e6; inf) bytes:\t0 files\n")
	assert.NotContains(t, buf.String(), "The size of")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestReports_WriteError(t *testing.T) {
	assert.EqualError(t, TopByAverage(failingWriter{}, nil), "disk full")
	assert.EqualError(t, TopByTotal(failingWriter{}, nil), "disk full")
	h := sizedist.Bucketize([]inventory.Record{{Length: 1}})
	assert.EqualError(t, SizeDistribution(failingWriter{}, h), "disk full")
}
