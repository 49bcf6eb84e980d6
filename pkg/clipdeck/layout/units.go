// Package layout describes where and how slide content is placed.
package layout

import "math"

// EMUPerInch is the number of EMUs (English Metric Units) per inch.
const EMUPerInch = 914400

// Inches converts a length in inches to EMU.
func Inches(in float64) int64 {
	return int64(math.Round(in * EMUPerInch))
}
