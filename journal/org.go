package journal

import (
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/tradebook/market"
)

// FormatTradeOrg renders a trade as an Org-mode block: structured facts
// in a PROPERTIES drawer for easy search, partial legs and screenshots
// as sub-sections, narrative notes at the end.
func FormatTradeOrg(t *Trade, in market.Instrument) string {
	s := Summarize(t, in)

	var b strings.Builder
	fmt.Fprintf(&b, "** Trade: %s %s (%s)\n", t.Symbol, t.Timeframe, shortID(t.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", t.ID)
	fmt.Fprintf(&b, ":DIRECTION: %s\n", t.Direction())
	fmt.Fprintf(&b, ":DATE: %s %s %s\n", t.Info.TradeDate, t.Info.TradeTime, t.Info.Timezone)
	fmt.Fprintf(&b, ":SESSION: %s\n", t.Info.MarketSession)
	fmt.Fprintf(&b, ":ENTRY_PRICE: %.*f\n", in.PricePrecision, t.Info.EntryPrice)
	fmt.Fprintf(&b, ":LOT_SIZE: %.2f\n", t.Info.LotSize)
	fmt.Fprintf(&b, ":SL: %.*f (%.1f pips, %s)\n", in.PricePrecision, t.Info.SLPrice, t.Info.SLPips, t.Info.SLReason)
	fmt.Fprintf(&b, ":TP: %.*f (%.1f pips, %s)\n", in.PricePrecision, t.Info.TPPrice, t.Info.TPPips, t.Info.TPReason)
	fmt.Fprintf(&b, ":SETUP: %s\n", t.Info.Setup)
	fmt.Fprintf(&b, ":ENTRY_STYLE: %s\n", t.Info.Entry)
	fmt.Fprintf(&b, ":BALANCE_AT_ENTRY: %.2f\n", t.Info.AccountBalance)
	fmt.Fprintf(&b, ":OUTCOME: %s\n", orDash(t.Review.Outcome))
	fmt.Fprintf(&b, ":RESULT: %s\n", s.Result)
	fmt.Fprintf(&b, ":TOTAL_PIPS: %.1f\n", s.TotalPips)
	fmt.Fprintf(&b, ":PNL: %.2f\n", s.TotalPnL)
	if s.HasGainPct {
		fmt.Fprintf(&b, ":GAIN_PCT: %.2f\n", s.GainPct)
	}
	fmt.Fprintf(&b, ":BALANCE_AFTER: %.2f\n", s.BalanceAfter)
	if t.Review.MaxDrawdownPips != 0 {
		fmt.Fprintf(&b, ":MAX_DD: %.1f pips (%.2f USD)\n", s.DrawdownPips, s.DrawdownUSD)
	}
	fmt.Fprintf(&b, ":SL_TO_BE: %s\n", yesNo(t.SLToBE))
	b.WriteString(":END:\n")

	if len(t.PartialCloses) > 0 {
		b.WriteString("\n*** Partial closes\n")
		for _, pc := range t.PartialCloses {
			fmt.Fprintf(&b, "- %s | %.2f lots @ %.*f | %.1f pips | %.2f USD | %s\n",
				pc.Timestamp, pc.Amount, in.PricePrecision, pc.Price, pc.Pips, pc.PnL, pc.Reason)
		}
	}

	b.WriteString("\n*** Screenshots\n")
	for _, tf := range Timeframes {
		pair := t.Screenshots[tf]
		fmt.Fprintf(&b, "- %s before: %s\n", tf, screenshotLabel(pair.Before))
		fmt.Fprintf(&b, "- %s after: %s\n", tf, screenshotLabel(pair.After))
	}

	if t.Review.Notes != "" {
		b.WriteString("\n*** Notes\n")
		fmt.Fprintf(&b, "%s\n", t.Review.Notes)
	}

	return b.String()
}

// screenshotLabel degrades a stored path whose file has gone missing to
// a placeholder instead of an error.
func screenshotLabel(path string) string {
	if path == "" {
		return "(none)"
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Sprintf("%s (missing)", path)
	}
	return path
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
