package journal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rustyeddy/tradebook/market"
	"github.com/rustyeddy/tradebook/risk"
)

// Result classifications. Win/Loss/Breakeven come strictly from the
// sign of total P&L; Open means no terminal outcome yet.
const (
	ResultOpen      = "Open"
	ResultWin       = "Win"
	ResultLoss      = "Loss"
	ResultBreakeven = "Breakeven"
)

// Summary carries every derived display figure for one trade. It is
// computed fresh on each use and never mutates the trade.
type Summary struct {
	RealizedPnL   float64 // partial-close legs
	FinalPnL      float64 // final leg over the remaining lots
	TotalPnL      float64
	TotalPips     float64
	RemainingLots float64
	Result        string
	GainPct       float64 // of balance at entry; valid only when HasGainPct
	HasGainPct    bool
	BalanceAfter  float64
	DrawdownPips  float64
	DrawdownUSD   float64
	RR            float64
}

// Summarize computes the review-tab figures for a trade.
func Summarize(t *Trade, in market.Instrument) Summary {
	s := Summary{
		Result:        ResultOpen,
		RemainingLots: t.RemainingLots(),
		DrawdownPips:  t.Review.MaxDrawdownPips,
		RR:            risk.RR(t.Info.SLPips, t.Info.TPPips),
	}

	for _, pc := range t.PartialCloses {
		s.RealizedPnL += pc.PnL
		s.TotalPips += pc.Pips
	}
	s.TotalPnL = s.RealizedPnL

	if IsTerminal(t.Review.Outcome) {
		if s.RemainingLots > 0 {
			moved := in.PipsMoved(t.Info.EntryPrice, t.Review.Price, t.Direction())
			s.TotalPips += moved
			s.FinalPnL = in.PnL(moved, s.RemainingLots)
			s.TotalPnL += s.FinalPnL
		}
		switch {
		case s.TotalPnL > 0:
			s.Result = ResultWin
		case s.TotalPnL < 0:
			s.Result = ResultLoss
		default:
			s.Result = ResultBreakeven
		}
	}

	if pct, ok := risk.PctOfBalance(s.TotalPnL, t.Info.AccountBalance); ok {
		// PctOfBalance takes the magnitude; gain keeps the sign.
		s.GainPct = math.Copysign(pct, s.TotalPnL)
		s.HasGainPct = true
	}
	s.BalanceAfter = t.Info.AccountBalance + s.TotalPnL
	s.DrawdownUSD = in.PnL(t.Review.MaxDrawdownPips, t.Info.LotSize)

	return s
}

// Stats aggregates across a trade list. Wins and losses follow the
// recorded outcome labels, not the P&L sign.
type Stats struct {
	Total    int
	Wins     int
	Losses   int
	WinRate  int // percent, rounded
	TotalPnL float64
	AvgRR    float64
}

// Compute tallies stats over trades.
func Compute(trades []*Trade, in market.Instrument) Stats {
	var st Stats
	var rrSum float64
	var rrCount int

	for _, t := range trades {
		st.Total++
		st.TotalPnL += Summarize(t, in).TotalPnL
		switch {
		case strings.EqualFold(t.Review.Outcome, OutcomeTakeProfit):
			st.Wins++
		case strings.EqualFold(t.Review.Outcome, OutcomeStopLoss):
			st.Losses++
		}
		if rr := risk.RR(t.Info.SLPips, t.Info.TPPips); rr > 0 {
			rrSum += rr
			rrCount++
		}
	}

	if st.Total > 0 {
		st.WinRate = int(math.Round(100 * float64(st.Wins) / float64(st.Total)))
	}
	if rrCount > 0 {
		st.AvgRR = rrSum / float64(rrCount)
	}
	return st
}

// Filter selects trades for the stats view. An empty field matches
// anything. Session matches by substring so "London" catches overlap
// labels like "London+New York".
type Filter struct {
	Symbol     string
	Setup      string
	EntryStyle string
	Session    string
	Outcome    string
	Result     string
}

// Match reports whether t passes every set criterion.
func (f Filter) Match(t *Trade, in market.Instrument) bool {
	if f.Symbol != "" && t.Symbol != f.Symbol {
		return false
	}
	if f.Setup != "" && t.Info.Setup != f.Setup {
		return false
	}
	if f.EntryStyle != "" && t.Info.Entry != f.EntryStyle {
		return false
	}
	if f.Session != "" && !strings.Contains(t.Info.MarketSession, f.Session) {
		return false
	}
	if f.Outcome != "" && !strings.EqualFold(t.Review.Outcome, f.Outcome) {
		return false
	}
	if f.Result != "" && Summarize(t, in).Result != f.Result {
		return false
	}
	return true
}

// Apply returns the trades passing the filter, in journal order.
func Apply(trades []*Trade, f Filter, in market.Instrument) []*Trade {
	var out []*Trade
	for _, t := range trades {
		if f.Match(t, in) {
			out = append(out, t)
		}
	}
	return out
}

// TimeInTrade derives the holding duration from the entry clock and the
// review's exit clock. An exit earlier on the clock than the entry is
// taken as the next day. ok is false when either clock fails to parse.
func TimeInTrade(t *Trade) (time.Duration, bool) {
	if t.Info.TradeTime == "" || t.Review.ExitTime == "" {
		return 0, false
	}
	start, err := time.Parse("15:04", t.Info.TradeTime)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse("15:04", t.Review.ExitTime)
	if err != nil {
		return 0, false
	}
	d := end.Sub(start)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d, true
}

// FormatDuration renders a holding time as "3h 25m".
func FormatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
