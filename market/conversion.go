package market

import (
	"fmt"
	"math"
)

// Direction is the side of a trade.
type Direction string

const (
	Buy  Direction = "Buy"
	Sell Direction = "Sell"
)

// ParseDirection accepts the journal's trade_type strings.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "Buy", "buy":
		return Buy, nil
	case "Sell", "sell":
		return Sell, nil
	}
	return "", fmt.Errorf("invalid direction %q (want Buy or Sell)", s)
}

// Role distinguishes which side of the entry a level sits on.
type Role int

const (
	Stop Role = iota
	Target
)

// sign returns +1 when the level lies above entry for the given
// direction/role, -1 when below. A stop for a buy sits below entry, a
// target above; both flip for a sell.
func sign(d Direction, r Role) float64 {
	above := (d == Buy) == (r == Target)
	if above {
		return 1
	}
	return -1
}

// PriceFromPips derives the level price from a pip distance. The result
// is exact; callers round with RoundPrice when storing or displaying so
// the pips->price->pips round trip stays lossless.
func (in Instrument) PriceFromPips(entry, pips float64, d Direction, r Role) float64 {
	return entry + sign(d, r)*pips*in.PipValue
}

// PipsFromPrice is the inverse of PriceFromPips, rounded to one decimal.
func (in Instrument) PipsFromPrice(entry, price float64, d Direction, r Role) float64 {
	pips := sign(d, r) * (price - entry) / in.PipValue
	return math.Round(pips*10) / 10
}

// PipsMoved is the favorable price movement from entry to close in pips:
// positive when the trade moved in the trader's direction. Unrounded so
// P&L downstream is exact.
func (in Instrument) PipsMoved(entry, close float64, d Direction) float64 {
	if d == Buy {
		return (close - entry) / in.PipValue
	}
	return (entry - close) / in.PipValue
}

// PnL converts a pip movement over a lot size to account currency. The
// caller supplies signed pips for profit/loss framing; stop-loss figures
// are conventionally passed negated for display.
func (in Instrument) PnL(pips, lots float64) float64 {
	return pips * lots * in.USDPerPipPerLot
}

// DrawdownPips is the adverse excursion from entry to worst in pips,
// clamped to non-negative. A "worst" price on the profitable side of
// entry means no drawdown.
func (in Instrument) DrawdownPips(entry, worst float64, d Direction) float64 {
	pips := -in.PipsMoved(entry, worst, d)
	if pips < 0 {
		return 0
	}
	return pips
}

// DrawdownPrice derives the price level a drawdown of pips corresponds
// to. Drawdown runs against the trade, so it reuses the stop-side sign.
func (in Instrument) DrawdownPrice(entry, pips float64, d Direction) float64 {
	return in.PriceFromPips(entry, pips, d, Stop)
}

// RoundPrice rounds to the instrument's quoted precision.
func (in Instrument) RoundPrice(p float64) float64 {
	scale := math.Pow(10, float64(in.PricePrecision))
	return math.Round(p*scale) / scale
}
