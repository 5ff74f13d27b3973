package sizedist

import (
	"errors"
	"math"

	"github.com/datatug/filestat/pkg/inventory"
	"github.com/hyp3rd/ewrap"
)

// ErrNoRecords is returned when a share is requested from an empty histogram.
var ErrNoRecords = errors.New("no records in histogram")

// SizeRange is one histogram bucket covering sizes in [Min, Max).
// The first bucket is open-ended downwards and the last one upwards.
type SizeRange struct {
	Label string
	Min   int64
	Max   int64
	Count int
}

// Histogram counts records per size range.
// Total is the number of records visited.
type Histogram struct {
	Ranges []SizeRange
	Total  int
}

// NewRanges returns the fixed decimal size ranges with zero counts.
func NewRanges() []SizeRange {
	return []SizeRange{
		{Label: "(0; 1e1] bytes", Min: math.MinInt64, Max: 1e1},
		{Label: "[1e1; 1e2) bytes", Min: 1e1, Max: 1e2},
		{Label: "[1e2; 1e3) bytes", Min: 1e2, Max: 1e3},
		{Label: "[1e3; 1e4) bytes", Min: 1e3, Max: 1e4},
		{Label: "[1e4; 1e5) bytes", Min: 1e4, Max: 1e5},
		{Label: "[1e5; 1e6) bytes", Min: 1e5, Max: 1e6},
		{Label: "[1e6; inf) bytes", Min: 1e6, Max: math.MaxInt64},
	}
}

// Bucketize counts every record into the first range whose upper bound exceeds its length.
// A zero length falls into the first range despite its "(0" label.
func Bucketize(records []inventory.Record) Histogram {
	h := Histogram{Ranges: NewRanges()}
	last := len(h.Ranges) - 1
	for _, record := range records {
		h.Total++
		i := 0
		for i < last && record.Length >= h.Ranges[i].Max {
			i++
		}
		h.Ranges[i].Count++
	}
	return h
}

// ShareInRange returns the percentage of visited records counted in
// ranges lying entirely within [lo, hi).
func (h Histogram) ShareInRange(lo, hi int64) (float64, error) {
	if h.Total == 0 {
		return 0, ewrap.Wrapf(ErrNoRecords, "share of [%d; %d)", lo, hi)
	}
	var count int
	for _, r := range h.Ranges {
		if r.Min >= lo && r.Max <= hi {
			count += r.Count
		}
	}
	return float64(count) / float64(h.Total) * 100, nil
}
