package journal

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rustyeddy/tradebook/internal/id"
)

// The raw types below mirror the journal file as older versions wrote
// it: numeric fields sometimes stored as strings (entry widgets saved
// their text verbatim), partial closes carrying a legacy "notes" field
// instead of "reason_for_close", records without IDs. normalizeTrade is
// the single migration step from JSON-as-read to the canonical record;
// nothing downstream ever sees the legacy shape.

// flexFloat unmarshals a JSON number, a quoted number, an empty string,
// or null. Empty and null become zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type rawBook struct {
	Trades         []rawTrade `json:"trades"`
	AccountBalance *float64   `json:"account_balance"`
}

type rawTrade struct {
	ID            string                 `json:"id"`
	Symbol        string                 `json:"symbol"`
	Timeframe     string                 `json:"timeframe"`
	Info          rawInfo                `json:"info"`
	Screenshots   map[string]rawShotPair `json:"tf_screenshots"`
	Review        rawReview              `json:"review"`
	PartialCloses []rawPartial           `json:"partial_closes"`
	SLToBE        bool                   `json:"sl_to_be"`
}

type rawInfo struct {
	TradeType      string    `json:"trade_type"`
	TradeDate      string    `json:"trade_date"`
	TradeTime      string    `json:"trade_time"`
	Timezone       string    `json:"timezone"`
	MarketSession  string    `json:"market_session"`
	EntryPrice     flexFloat `json:"entry_price"`
	LotSize        flexFloat `json:"lot_size"`
	SLPips         flexFloat `json:"sl_pips"`
	SLPrice        flexFloat `json:"sl_price"`
	SLReason       string    `json:"sl_reason"`
	TPPips         flexFloat `json:"tp_pips"`
	TPPrice        flexFloat `json:"tp_price"`
	TPReason       string    `json:"tp_reason"`
	Setup          string    `json:"setup"`
	Entry          string    `json:"entry"`
	AccountBalance flexFloat `json:"account_balance"`
}

type rawShotPair struct {
	Before *string `json:"before"`
	After  *string `json:"after"`
}

type rawReview struct {
	Outcome         string    `json:"outcome"`
	Price           flexFloat `json:"price"`
	Notes           string    `json:"notes"`
	ExitTime        string    `json:"exit_time"`
	MaxDrawdownPips flexFloat `json:"max_drawdown_pips"`
}

type rawPartial struct {
	Timestamp string     `json:"timestamp"`
	Amount    flexFloat  `json:"amount"`
	Price     flexFloat  `json:"price"`
	Pips      *flexFloat `json:"pips"`
	Reason    *string    `json:"reason_for_close"`
	Notes     *string    `json:"notes"`
	PnL       *flexFloat `json:"pnl"`
}

func normalizeTrade(r rawTrade) *Trade {
	t := &Trade{
		ID:        r.ID,
		Symbol:    r.Symbol,
		Timeframe: r.Timeframe,
		Info: Info{
			TradeType:      r.Info.TradeType,
			TradeDate:      r.Info.TradeDate,
			TradeTime:      r.Info.TradeTime,
			Timezone:       r.Info.Timezone,
			MarketSession:  r.Info.MarketSession,
			EntryPrice:     float64(r.Info.EntryPrice),
			LotSize:        float64(r.Info.LotSize),
			SLPips:         float64(r.Info.SLPips),
			SLPrice:        float64(r.Info.SLPrice),
			SLReason:       r.Info.SLReason,
			TPPips:         float64(r.Info.TPPips),
			TPPrice:        float64(r.Info.TPPrice),
			TPReason:       r.Info.TPReason,
			Setup:          r.Info.Setup,
			Entry:          r.Info.Entry,
			AccountBalance: float64(r.Info.AccountBalance),
		},
		Review: Review{
			Outcome:         r.Review.Outcome,
			Price:           float64(r.Review.Price),
			Notes:           r.Review.Notes,
			ExitTime:        r.Review.ExitTime,
			MaxDrawdownPips: float64(r.Review.MaxDrawdownPips),
		},
		SLToBE: r.SLToBE,
	}

	if t.ID == "" {
		t.ID = id.New()
	}

	t.Screenshots = make(map[string]ScreenshotPair, len(Timeframes))
	for tf, pair := range r.Screenshots {
		var p ScreenshotPair
		if pair.Before != nil {
			p.Before = *pair.Before
		}
		if pair.After != nil {
			p.After = *pair.After
		}
		t.Screenshots[tf] = p
	}
	t.ensureScreenshots()

	for _, rp := range r.PartialCloses {
		pc := PartialClose{
			Timestamp: rp.Timestamp,
			Amount:    float64(rp.Amount),
			Price:     float64(rp.Price),
		}
		if rp.Pips != nil {
			pc.Pips = float64(*rp.Pips)
		}
		if rp.PnL != nil {
			pc.PnL = float64(*rp.PnL)
		}
		switch {
		case rp.Reason != nil:
			pc.Reason = *rp.Reason
		case rp.Notes != nil:
			// Legacy files stored the reason under "notes".
			pc.Reason = *rp.Notes
		}
		t.PartialCloses = append(t.PartialCloses, pc)
	}

	return t
}
