// Package aggregate implements the pure filtering, grouping and summarization
// rules applied to an in-memory transaction table. No I/O happens here.
package aggregate

import "math"

// CashbackRate is the fixed rate applied to absolute spend to estimate rewards.
const CashbackRate = 0.01

// Round2 rounds to two decimal places, half away from zero. Every report
// uses this helper so rounding stays consistent across outputs.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
