package journal

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	timeframe TEXT NOT NULL,
	direction TEXT NOT NULL,
	trade_date TEXT NOT NULL,
	trade_time TEXT NOT NULL,
	market_session TEXT NOT NULL,
	entry_price REAL NOT NULL,
	lot_size REAL NOT NULL,
	sl_price REAL NOT NULL,
	sl_pips REAL NOT NULL,
	tp_price REAL NOT NULL,
	tp_pips REAL NOT NULL,
	setup TEXT NOT NULL,
	entry_style TEXT NOT NULL,
	outcome TEXT NOT NULL,
	close_price REAL NOT NULL,
	exit_time TEXT NOT NULL,
	result TEXT NOT NULL,
	total_pips REAL NOT NULL,
	realized_pl REAL NOT NULL,
	balance_before REAL NOT NULL,
	balance_after REAL NOT NULL,
	max_drawdown_pips REAL NOT NULL,
	sl_to_be INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS partial_closes (
	trade_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	closed_at TEXT NOT NULL,
	amount REAL NOT NULL,
	price REAL NOT NULL,
	pips REAL NOT NULL,
	reason TEXT NOT NULL,
	pnl REAL NOT NULL,
	PRIMARY KEY (trade_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(trade_date);
CREATE INDEX IF NOT EXISTS idx_trades_setup ON trades(setup);
`
