// Package risk computes the planned-figure previews shown beside the
// stop-loss and take-profit levels at entry time.
package risk

import (
	"fmt"
	"math"

	"github.com/rustyeddy/tradebook/market"
)

// PlannedLoss is the dollar hit if the stop is reached, always <= 0.
func PlannedLoss(in market.Instrument, slPips, lots float64) float64 {
	return -in.PnL(math.Abs(slPips), lots)
}

// PlannedProfit is the dollar gain if the target is reached.
func PlannedProfit(in market.Instrument, tpPips, lots float64) float64 {
	return in.PnL(math.Abs(tpPips), lots)
}

// PctOfBalance expresses an absolute dollar amount as a percentage of
// the account balance. Returns ok=false when the balance is zero or
// negative, in which case the display degrades to an empty string.
func PctOfBalance(amount, balance float64) (pct float64, ok bool) {
	if balance <= 0 {
		return 0, false
	}
	return math.Abs(amount) / balance * 100, true
}

// RR is the reward-to-risk multiple of a planned trade. Zero risk
// yields 0 rather than infinity.
func RR(slPips, tpPips float64) float64 {
	risk := math.Abs(slPips)
	if risk == 0 {
		return 0
	}
	return math.Abs(tpPips) / risk
}

// FormatPct renders a percent-of-balance figure the way the entry form
// shows it, empty when the balance was zero.
func FormatPct(amount, balance float64) string {
	pct, ok := PctOfBalance(amount, balance)
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%.2f%%)", pct)
}
