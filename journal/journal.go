// Package journal holds the trade records of a discretionary trading
// journal: entry snapshots, screenshots, partial closes, and the final
// review, persisted as a single JSON document.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradebook/market"
)

// Terminal review outcomes. An empty outcome means the trade is open.
const (
	OutcomeTakeProfit = "Take Profit Hit"
	OutcomeStopLoss   = "Stoploss Hit"
	OutcomeBreakeven  = "Breakeven"
	OutcomeOther      = "Other"
)

// TerminalOutcomes in the order the review form offers them.
var TerminalOutcomes = []string{OutcomeTakeProfit, OutcomeStopLoss, OutcomeBreakeven, OutcomeOther}

// IsTerminal reports whether outcome closes a trade.
func IsTerminal(outcome string) bool {
	for _, o := range TerminalOutcomes {
		if outcome == o {
			return true
		}
	}
	return false
}

// Timeframes with screenshot slots.
var Timeframes = []string{"D1", "H4", "H1"}

var (
	ErrAlreadyClosed  = errors.New("trade is already closed")
	ErrInvalidPartial = errors.New("partial close amount must be positive and price/pips must not both be zero")
	ErrMissingReason  = errors.New("a reason for the partial close is required")
	ErrExceedsLots    = errors.New("partial close amount exceeds remaining lot size")
	ErrNotTerminal    = errors.New("review outcome does not close the trade")
)

// Info is the entry-time snapshot. EntryPrice and LotSize are fixed at
// creation; everything mutable afterwards lives on Review, the partial
// close log, SLToBE, and the screenshot slots.
type Info struct {
	TradeType      string  `json:"trade_type"`
	TradeDate      string  `json:"trade_date"`
	TradeTime      string  `json:"trade_time"`
	Timezone       string  `json:"timezone"`
	MarketSession  string  `json:"market_session"`
	EntryPrice     float64 `json:"entry_price"`
	LotSize        float64 `json:"lot_size"`
	SLPips         float64 `json:"sl_pips"`
	SLPrice        float64 `json:"sl_price"`
	SLReason       string  `json:"sl_reason"`
	TPPips         float64 `json:"tp_pips"`
	TPPrice        float64 `json:"tp_price"`
	TPReason       string  `json:"tp_reason"`
	Setup          string  `json:"setup"`
	Entry          string  `json:"entry"`
	AccountBalance float64 `json:"account_balance"`
}

// Review is filled in when the trade is closed.
type Review struct {
	Outcome         string  `json:"outcome"`
	Price           float64 `json:"price"`
	Notes           string  `json:"notes"`
	ExitTime        string  `json:"exit_time"`
	MaxDrawdownPips float64 `json:"max_drawdown_pips"`
}

// PartialClose is one leg closed before the final outcome. The log is
// append-only; insertion order is chronological order.
type PartialClose struct {
	Timestamp string  `json:"timestamp"`
	Amount    float64 `json:"amount"`
	Price     float64 `json:"price"`
	Pips      float64 `json:"pips"`
	Reason    string  `json:"reason_for_close"`
	PnL       float64 `json:"pnl"`
}

// ScreenshotPair holds the before/after chart image paths for one
// timeframe. Paths only; the journal never copies image files.
type ScreenshotPair struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// Trade is one journal record.
type Trade struct {
	ID            string                    `json:"id,omitempty"`
	Symbol        string                    `json:"symbol"`
	Timeframe     string                    `json:"timeframe"`
	Info          Info                      `json:"info"`
	Screenshots   map[string]ScreenshotPair `json:"tf_screenshots"`
	Review        Review                    `json:"review"`
	PartialCloses []PartialClose            `json:"partial_closes"`
	SLToBE        bool                      `json:"sl_to_be"`
}

// New returns a trade with empty screenshot slots for every timeframe.
func New(id, symbol, timeframe string, info Info) *Trade {
	t := &Trade{
		ID:        id,
		Symbol:    symbol,
		Timeframe: timeframe,
		Info:      info,
	}
	t.ensureScreenshots()
	return t
}

func (t *Trade) ensureScreenshots() {
	if t.Screenshots == nil {
		t.Screenshots = make(map[string]ScreenshotPair, len(Timeframes))
	}
	for _, tf := range Timeframes {
		if _, ok := t.Screenshots[tf]; !ok {
			t.Screenshots[tf] = ScreenshotPair{}
		}
	}
}

// IsOpen reports whether the trade still awaits its final review.
func (t *Trade) IsOpen() bool {
	return t.Review.Outcome == ""
}

// Direction is the trade side; records with a missing or garbled
// trade_type are treated as buys.
func (t *Trade) Direction() market.Direction {
	d, err := market.ParseDirection(t.Info.TradeType)
	if err != nil {
		return market.Buy
	}
	return d
}

// ClosedLots is the lot size already taken off through partial closes.
func (t *Trade) ClosedLots() float64 {
	var sum float64
	for _, pc := range t.PartialCloses {
		sum += pc.Amount
	}
	return sum
}

// RemainingLots is the open remainder of the initial position.
func (t *Trade) RemainingLots() float64 {
	return t.Info.LotSize - t.ClosedLots()
}

// lotTolerance absorbs float accumulation when checking a partial close
// against the remaining lot size.
const lotTolerance = 1e-4

// AddPartialClose validates and appends one partial leg. Exactly one of
// price or pips is normally authoritative: a zero pips is derived from
// price and vice versa, using the profit-positive sign convention. The
// trade is unchanged when an error is returned.
func (t *Trade) AddPartialClose(in market.Instrument, amount, price, pips float64, reason string, now time.Time) (PartialClose, error) {
	if amount <= 0 || (price == 0 && pips == 0) {
		return PartialClose{}, ErrInvalidPartial
	}
	if strings.TrimSpace(reason) == "" {
		return PartialClose{}, ErrMissingReason
	}
	if amount > t.RemainingLots()+lotTolerance {
		return PartialClose{}, fmt.Errorf("%w: %.2f lots requested, %.2f remaining",
			ErrExceedsLots, amount, t.RemainingLots())
	}

	d := t.Direction()
	if pips == 0 {
		pips = in.PipsFromPrice(t.Info.EntryPrice, price, d, market.Target)
	} else if price == 0 {
		price = in.RoundPrice(in.PriceFromPips(t.Info.EntryPrice, pips, d, market.Target))
	}

	pc := PartialClose{
		Timestamp: now.Format("2006-01-02 15:04:05"),
		Amount:    amount,
		Price:     price,
		Pips:      pips,
		Reason:    strings.TrimSpace(reason),
		PnL:       in.PnL(pips, amount),
	}
	t.PartialCloses = append(t.PartialCloses, pc)
	return pc, nil
}

// SetScreenshot records an image path for a timeframe slot. when is
// "before" or "after".
func (t *Trade) SetScreenshot(tf, when, path string) error {
	t.ensureScreenshots()
	pair, ok := t.Screenshots[tf]
	if !ok {
		return fmt.Errorf("unknown timeframe %q (want one of %s)", tf, strings.Join(Timeframes, ", "))
	}
	switch when {
	case "before":
		pair.Before = path
	case "after":
		pair.After = path
	default:
		return fmt.Errorf("screenshot slot must be before or after, got %q", when)
	}
	t.Screenshots[tf] = pair
	return nil
}
