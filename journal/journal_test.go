package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/internal/id"
	"github.com/rustyeddy/tradebook/market"
)

func testInstrument(t *testing.T) market.Instrument {
	t.Helper()
	in, err := market.Lookup("XAUUSD")
	require.NoError(t, err)
	return in
}

func buyTrade(t *testing.T) *Trade {
	t.Helper()
	return New(id.New(), "XAUUSD", "H1", Info{
		TradeType:      "Buy",
		TradeDate:      "2024-03-15",
		TradeTime:      "09:30",
		Timezone:       "UTC",
		MarketSession:  "London",
		EntryPrice:     2300.0,
		LotSize:        1.0,
		SLPips:         50,
		SLPrice:        2295.0,
		SLReason:       "Below Support",
		TPPips:         100,
		TPPrice:        2310.0,
		TPReason:       "At Resistance",
		Setup:          "Breakout",
		Entry:          "Market",
		AccountBalance: 10000.0,
	})
}

func TestNewTradeHasAllScreenshotSlots(t *testing.T) {
	t.Parallel()

	tr := buyTrade(t)
	require.Len(t, tr.Screenshots, 3)
	for _, tf := range Timeframes {
		_, ok := tr.Screenshots[tf]
		assert.True(t, ok, "missing slot for %s", tf)
	}
}

func TestIsOpen(t *testing.T) {
	t.Parallel()

	tr := buyTrade(t)
	assert.True(t, tr.IsOpen())
	tr.Review.Outcome = OutcomeTakeProfit
	assert.False(t, tr.IsOpen())
}

func TestAddPartialCloseDerivesPriceFromPips(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	tr := buyTrade(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	pc, err := tr.AddPartialClose(in, 0.5, 0, 50, "Reached Partial TP 1", now)
	require.NoError(t, err)

	assert.InDelta(t, 2305.0, pc.Price, 1e-9)
	assert.InDelta(t, 250.0, pc.PnL, 1e-9) // 50 pips * 0.5 lots * $10
	assert.Equal(t, "2024-03-15 12:00:00", pc.Timestamp)
	assert.InDelta(t, 0.5, tr.RemainingLots(), 1e-9)
}

func TestAddPartialCloseDerivesPipsFromPrice(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	tr := buyTrade(t)
	pc, err := tr.AddPartialClose(in, 0.25, 2306.0, 0, "Candle Closed Against Me", time.Now())
	require.NoError(t, err)

	assert.InDelta(t, 60.0, pc.Pips, 1e-9)
	assert.InDelta(t, 150.0, pc.PnL, 1e-9)
}

func TestAddPartialCloseSellDirection(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	tr := buyTrade(t)
	tr.Info.TradeType = "Sell"
	pc, err := tr.AddPartialClose(in, 0.5, 2295.0, 0, "Minor Support/Resistance Hit", time.Now())
	require.NoError(t, err)

	// Price dropping 50 pips is profit on a sell.
	assert.InDelta(t, 50.0, pc.Pips, 1e-9)
	assert.InDelta(t, 250.0, pc.PnL, 1e-9)
}

func TestAddPartialCloseRejectsExcessAmount(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	tr := buyTrade(t)
	_, err := tr.AddPartialClose(in, 0.7, 0, 50, "Reached Partial TP 1", time.Now())
	require.NoError(t, err)

	_, err = tr.AddPartialClose(in, 0.5, 0, 50, "Reached Partial TP 2", time.Now())
	require.ErrorIs(t, err, ErrExceedsLots)
	assert.Len(t, tr.PartialCloses, 1, "rejected insertion must leave the trade unchanged")

	// The remaining 0.3 lots can still go, tolerance absorbs float noise.
	_, err = tr.AddPartialClose(in, 0.3, 0, 50, "Reached Partial TP 2", time.Now())
	assert.NoError(t, err)
}

func TestAddPartialCloseValidation(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)
	tr := buyTrade(t)

	_, err := tr.AddPartialClose(in, 0, 2305.0, 0, "x", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPartial)

	_, err = tr.AddPartialClose(in, 0.5, 0, 0, "x", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPartial)

	_, err = tr.AddPartialClose(in, 0.5, 0, 50, "  ", time.Now())
	assert.ErrorIs(t, err, ErrMissingReason)

	assert.Empty(t, tr.PartialCloses)
}

func TestSetScreenshot(t *testing.T) {
	t.Parallel()
	tr := buyTrade(t)

	require.NoError(t, tr.SetScreenshot("H1", "before", "/tmp/h1-before.png"))
	assert.Equal(t, "/tmp/h1-before.png", tr.Screenshots["H1"].Before)

	assert.Error(t, tr.SetScreenshot("M5", "before", "x.png"))
	assert.Error(t, tr.SetScreenshot("H1", "during", "x.png"))
}

func TestBookFind(t *testing.T) {
	t.Parallel()

	a := buyTrade(t)
	b := buyTrade(t)
	book := &Book{Balance: 10000}
	book.Add(a)
	book.Add(b)

	got, err := book.Find("1")
	require.NoError(t, err)
	assert.Same(t, a, got)

	got, err = book.Find(b.ID)
	require.NoError(t, err)
	assert.Same(t, b, got)

	got, err = book.Find(a.ID[:20])
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = book.Find("99")
	assert.Error(t, err)
	_, err = book.Find("NOPE")
	assert.Error(t, err)
}

func TestBookCloseAppliesPnLOnce(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	tr := buyTrade(t)
	book := &Book{Balance: 10000}
	book.Add(tr)

	s, err := book.Close(tr, in, Review{Outcome: OutcomeTakeProfit, Price: 2310.0}, true)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, s.TotalPnL, 1e-9)
	assert.InDelta(t, 11000.0, book.Balance, 1e-9)
	assert.True(t, tr.SLToBE)
	assert.False(t, tr.IsOpen())

	_, err = book.Close(tr, in, Review{Outcome: OutcomeTakeProfit, Price: 2310.0}, true)
	require.ErrorIs(t, err, ErrAlreadyClosed)
	assert.InDelta(t, 11000.0, book.Balance, 1e-9, "balance must not move twice")
}

func TestBookCloseRejectsNonTerminalOutcome(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	tr := buyTrade(t)
	book := &Book{Balance: 10000}
	book.Add(tr)

	_, err := book.Close(tr, in, Review{Outcome: ""}, false)
	require.ErrorIs(t, err, ErrNotTerminal)
	assert.True(t, tr.IsOpen())
	assert.InDelta(t, 10000.0, book.Balance, 1e-9)
}
