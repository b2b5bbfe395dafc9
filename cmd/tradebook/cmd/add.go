package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/internal/id"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/market"
	"github.com/rustyeddy/tradebook/risk"
	"github.com/rustyeddy/tradebook/session"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new trade",
	Long: `Log a new trade at its entry.

Stop loss and take profit are each given either in pips or as a price;
the other value is derived from the entry price. The market session is
classified from the trade date, time, and timezone.

Examples:
  tradebook add --direction Buy --entry-price 2300.00 --lots 1 \
      --sl-pips 50 --tp-pips 100 --setup Breakout --entry-style Market
  tradebook add --direction Sell --entry-price 2310.50 --lots 0.5 \
      --sl-price 2315.50 --tp-price 2290.50 --time 13:30 --tz US/Eastern`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var addFlags struct {
	direction  string
	date       string
	clock      string
	tz         string
	timeframe  string
	entryPrice float64
	lots       float64
	slPips     float64
	slPrice    float64
	slReason   string
	tpPips     float64
	tpPrice    float64
	tpReason   string
	setup      string
	entryStyle string
}

func init() {
	rootCmd.AddCommand(addCmd)

	f := addCmd.Flags()
	f.StringVarP(&addFlags.direction, "direction", "d", "Buy", "trade direction (Buy or Sell)")
	f.StringVar(&addFlags.date, "date", "", "trade date YYYY-MM-DD (default today)")
	f.StringVar(&addFlags.clock, "time", "", "trade time HH:MM (default now)")
	f.StringVar(&addFlags.tz, "tz", "UTC", "trade timezone, e.g. US/Eastern")
	f.StringVar(&addFlags.timeframe, "timeframe", "H1", "chart timeframe (D1, H4, H1)")
	f.Float64VarP(&addFlags.entryPrice, "entry-price", "e", 0, "entry price (required)")
	f.Float64VarP(&addFlags.lots, "lots", "l", 0, "lot size (required)")
	f.Float64Var(&addFlags.slPips, "sl-pips", 0, "stop loss distance in pips")
	f.Float64Var(&addFlags.slPrice, "sl-price", 0, "stop loss price")
	f.StringVar(&addFlags.slReason, "sl-reason", "", "stop loss placement reason")
	f.Float64Var(&addFlags.tpPips, "tp-pips", 0, "take profit distance in pips")
	f.Float64Var(&addFlags.tpPrice, "tp-price", 0, "take profit price")
	f.StringVar(&addFlags.tpReason, "tp-reason", "", "take profit placement reason")
	f.StringVar(&addFlags.setup, "setup", "", "setup label from the playbook")
	f.StringVar(&addFlags.entryStyle, "entry-style", "", "entry style label from the playbook")

	addCmd.MarkFlagRequired("entry-price")
	addCmd.MarkFlagRequired("lots")
}

// resolveLevel turns one authoritative SL or TP field into the
// pips/price pair, deriving the missing one from the entry price.
func resolveLevel(cmd *cobra.Command, in market.Instrument, name string, d market.Direction, r market.Role,
	entry, pips, price float64) (float64, float64, error) {

	havePips := cmd.Flags().Changed(name + "-pips")
	havePrice := cmd.Flags().Changed(name + "-price")
	switch {
	case havePips && havePrice:
		return 0, 0, fmt.Errorf("give either --%s-pips or --%s-price, not both", name, name)
	case havePips:
		if pips <= 0 {
			return 0, 0, fmt.Errorf("--%s-pips must be positive", name)
		}
		return pips, in.RoundPrice(in.PriceFromPips(entry, pips, d, r)), nil
	case havePrice:
		p := in.PipsFromPrice(entry, price, d, r)
		if p <= 0 {
			return 0, 0, fmt.Errorf("--%s-price %v is on the wrong side of the entry for a %s", name, price, d)
		}
		return p, price, nil
	default:
		return 0, 0, fmt.Errorf("give --%s-pips or --%s-price", name, name)
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, store, book, in, err := openJournal()
	if err != nil {
		return err
	}

	dir, err := market.ParseDirection(addFlags.direction)
	if err != nil {
		return err
	}
	if addFlags.lots <= 0 {
		return fmt.Errorf("--lots must be positive")
	}
	if addFlags.entryPrice <= 0 {
		return fmt.Errorf("--entry-price must be positive")
	}
	tf := addFlags.timeframe
	if !validTimeframe(tf) {
		return fmt.Errorf("unknown timeframe %q (want one of D1, H4, H1)", tf)
	}

	now := time.Now()
	date := addFlags.date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	clock := addFlags.clock
	if clock == "" {
		clock = now.Format("15:04")
	}

	slPips, slPrice, err := resolveLevel(cmd, in, "sl", dir, market.Stop, addFlags.entryPrice, addFlags.slPips, addFlags.slPrice)
	if err != nil {
		return err
	}
	tpPips, tpPrice, err := resolveLevel(cmd, in, "tp", dir, market.Target, addFlags.entryPrice, addFlags.tpPips, addFlags.tpPrice)
	if err != nil {
		return err
	}

	info := journal.Info{
		TradeType:      string(dir),
		TradeDate:      date,
		TradeTime:      clock,
		Timezone:       addFlags.tz,
		MarketSession:  session.Classify(date, clock, addFlags.tz),
		EntryPrice:     addFlags.entryPrice,
		LotSize:        addFlags.lots,
		SLPips:         slPips,
		SLPrice:        slPrice,
		SLReason:       addFlags.slReason,
		TPPips:         tpPips,
		TPPrice:        tpPrice,
		TPReason:       addFlags.tpReason,
		Setup:          addFlags.setup,
		Entry:          addFlags.entryStyle,
		AccountBalance: book.Balance,
	}

	t := journal.New(id.New(), cfg.Instrument.Symbol, tf, info)
	book.Add(t)

	if err := store.Save(book); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	loss := risk.PlannedLoss(in, slPips, addFlags.lots)
	profit := risk.PlannedProfit(in, tpPips, addFlags.lots)
	fmt.Printf("Logged trade %s: %s %s %.2f lots @ %v\n", t.ID, dir, t.Symbol, addFlags.lots, addFlags.entryPrice)
	fmt.Printf("  Session:  %s\n", info.MarketSession)
	fmt.Printf("  SL:       %v (%.1f pips)  risk $%.2f %s\n", slPrice, slPips, -loss, risk.FormatPct(loss, book.Balance))
	fmt.Printf("  TP:       %v (%.1f pips)  reward $%.2f %s\n", tpPrice, tpPips, profit, risk.FormatPct(profit, book.Balance))
	fmt.Printf("  RR:       %.2f\n", risk.RR(slPips, tpPips))
	return nil
}

func validTimeframe(tf string) bool {
	for _, t := range journal.Timeframes {
		if tf == t {
			return true
		}
	}
	return false
}
