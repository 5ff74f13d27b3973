package fsutils

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// GetSizeShortText returns a human readable size string.
// Values below 100 of a unit above bytes keep one decimal, e.g. 1.5KB.
func GetSizeShortText(size float64) string {
	const unit = 1024
	exp := 0
	for math.Abs(size) >= unit && exp < len(sizeUnits)-1 {
		size /= unit
		exp++
	}
	if exp == 0 || math.Abs(size) >= 100 {
		return strconv.FormatFloat(math.Round(size), 'f', 0, 64) + sizeUnits[exp]
	}
	return strconv.FormatFloat(size, 'f', 1, 64) + sizeUnits[exp]
}
