package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradebook/market"
)

// SQLite is the export sink for ad-hoc SQL review of the journal. The
// JSON file stays the source of truth; the database is rebuilt on each
// export (writes are idempotent by trade ID).
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the export database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// RecordTrade upserts one trade and its partial legs.
func (j *SQLite) RecordTrade(t *Trade, in market.Instrument) error {
	s := Summarize(t, in)

	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO trades
		(trade_id, symbol, timeframe, direction, trade_date, trade_time, market_session,
		 entry_price, lot_size, sl_price, sl_pips, tp_price, tp_pips, setup, entry_style,
		 outcome, close_price, exit_time, result, total_pips, realized_pl,
		 balance_before, balance_after, max_drawdown_pips, sl_to_be)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Symbol, t.Timeframe, string(t.Direction()),
		t.Info.TradeDate, t.Info.TradeTime, t.Info.MarketSession,
		t.Info.EntryPrice, t.Info.LotSize,
		t.Info.SLPrice, t.Info.SLPips, t.Info.TPPrice, t.Info.TPPips,
		t.Info.Setup, t.Info.Entry,
		t.Review.Outcome, t.Review.Price, t.Review.ExitTime,
		s.Result, s.TotalPips, s.TotalPnL,
		t.Info.AccountBalance, s.BalanceAfter, t.Review.MaxDrawdownPips,
		boolInt(t.SLToBE),
	)
	if err != nil {
		return fmt.Errorf("insert trade %s: %w", t.ID, err)
	}

	if _, err := j.db.Exec(`DELETE FROM partial_closes WHERE trade_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clear partials for %s: %w", t.ID, err)
	}
	for i, pc := range t.PartialCloses {
		_, err := j.db.Exec(`
			INSERT INTO partial_closes (trade_id, seq, closed_at, amount, price, pips, reason, pnl)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, pc.Timestamp, pc.Amount, pc.Price, pc.Pips, pc.Reason, pc.PnL,
		)
		if err != nil {
			return fmt.Errorf("insert partial %s/%d: %w", t.ID, i, err)
		}
	}
	return nil
}

// TradeRow is the flat shape read back from the export database.
type TradeRow struct {
	TradeID    string
	Symbol     string
	Direction  string
	Outcome    string
	Result     string
	TotalPips  float64
	RealizedPL float64
}

// GetTrade reads a single exported trade back by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRow, error) {
	var r TradeRow
	row := j.db.QueryRow(`
		SELECT trade_id, symbol, direction, outcome, result, total_pips, realized_pl
		FROM trades WHERE trade_id = ?`, tradeID)
	err := row.Scan(&r.TradeID, &r.Symbol, &r.Direction, &r.Outcome, &r.Result, &r.TotalPips, &r.RealizedPL)
	if err == sql.ErrNoRows {
		return TradeRow{}, fmt.Errorf("trade %q not found", tradeID)
	}
	if err != nil {
		return TradeRow{}, err
	}
	return r, nil
}

// CountPartials returns the number of exported partial legs for a trade.
func (j *SQLite) CountPartials(tradeID string) (int, error) {
	var n int
	err := j.db.QueryRow(`SELECT COUNT(*) FROM partial_closes WHERE trade_id = ?`, tradeID).Scan(&n)
	return n, err
}

// Close releases the database handle.
func (j *SQLite) Close() error {
	return j.db.Close()
}

// ExportSQLite writes every trade in the list to a sqlite journal at path.
func ExportSQLite(path string, trades []*Trade, in market.Instrument) error {
	j, err := OpenSQLite(path)
	if err != nil {
		return err
	}
	defer j.Close()

	for _, t := range trades {
		if err := j.RecordTrade(t, in); err != nil {
			return err
		}
	}
	return nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
