package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rustyeddy/tradebook/market"
)

var csvHeader = []string{
	"id", "symbol", "timeframe", "direction", "date", "time", "session",
	"entry_price", "lot_size", "sl_price", "tp_price", "setup", "entry_style",
	"outcome", "result", "total_pips", "pnl", "gain_pct",
	"balance_before", "balance_after", "max_dd_pips", "max_dd_usd", "sl_to_be",
}

// ExportCSV writes one summarized row per trade.
func ExportCSV(path string, trades []*Trade, in market.Instrument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range trades {
		s := Summarize(t, in)
		gain := ""
		if s.HasGainPct {
			gain = fnum(s.GainPct)
		}
		row := []string{
			t.ID,
			t.Symbol,
			t.Timeframe,
			string(t.Direction()),
			t.Info.TradeDate,
			t.Info.TradeTime,
			t.Info.MarketSession,
			fnum(t.Info.EntryPrice),
			fnum(t.Info.LotSize),
			fnum(t.Info.SLPrice),
			fnum(t.Info.TPPrice),
			t.Info.Setup,
			t.Info.Entry,
			t.Review.Outcome,
			s.Result,
			fnum(s.TotalPips),
			fnum(s.TotalPnL),
			gain,
			fnum(t.Info.AccountBalance),
			fnum(s.BalanceAfter),
			fnum(s.DrawdownPips),
			fnum(s.DrawdownUSD),
			yesNo(t.SLToBE),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func fnum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
