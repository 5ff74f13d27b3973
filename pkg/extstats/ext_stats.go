// Package extstats aggregates file inventory records by extension.
//
// Groups keep the order in which their extension was first seen, so
// every view derived from a Summary is deterministic for a given input.
package extstats

import (
	"slices"

	"github.com/datatug/filestat/pkg/inventory"
)

// ExtStat accumulates the size and count of files sharing an extension.
type ExtStat struct {
	ID        string
	Count     int
	TotalSize int64
}

// AverageSize returns TotalSize / Count. A group always has at least one member.
func (s ExtStat) AverageSize() float64 {
	return float64(s.TotalSize) / float64(s.Count)
}

// Summary holds per-extension statistics in first-seen order.
type Summary struct {
	ExtStats []*ExtStat
	extByID  map[string]*ExtStat
}

// Summarize groups records by exact extension match in a single pass.
func Summarize(records []inventory.Record) *Summary {
	s := &Summary{
		ExtStats: make([]*ExtStat, 0),
		extByID:  make(map[string]*ExtStat),
	}
	for _, record := range records {
		ext, ok := s.extByID[record.Extension]
		if !ok {
			ext = &ExtStat{ID: record.Extension}
			s.extByID[record.Extension] = ext
			s.ExtStats = append(s.ExtStats, ext)
		}
		ext.Count++
		ext.TotalSize += record.Length
	}
	return s
}

// Entry is one row of an aggregate view. Value is the ranked quantity;
// Count and TotalSize are carried so reports never rescan the records.
type Entry struct {
	Extension string
	Count     int
	TotalSize int64
	Value     float64
}

// Averages returns the average size per extension.
func (s *Summary) Averages() []Entry {
	return s.entries(func(ext *ExtStat) float64 {
		return ext.AverageSize()
	})
}

// Totals returns the total size per extension.
func (s *Summary) Totals() []Entry {
	return s.entries(func(ext *ExtStat) float64 {
		return float64(ext.TotalSize)
	})
}

func (s *Summary) entries(value func(*ExtStat) float64) []Entry {
	entries := make([]Entry, 0, len(s.ExtStats))
	for _, ext := range s.ExtStats {
		entries = append(entries, Entry{
			Extension: ext.ID,
			Count:     ext.Count,
			TotalSize: ext.TotalSize,
			Value:     value(ext),
		})
	}
	return entries
}

// AverageSizeByExtension is Summarize(records).Averages().
func AverageSizeByExtension(records []inventory.Record) []Entry {
	return Summarize(records).Averages()
}

// TotalSizeByExtension is Summarize(records).Totals().
func TotalSizeByExtension(records []inventory.Record) []Entry {
	return Summarize(records).Totals()
}

// Top returns up to n entries ordered by Value descending.
// Entries with equal values keep their relative order. The input is not modified.
func Top(entries []Entry, n int) []Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
