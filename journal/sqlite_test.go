package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSQLiteRoundTrip(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	tr := buyTrade(t)
	_, err := tr.AddPartialClose(in, 0.5, 0, 50, "Reached Partial TP 1", time.Now())
	require.NoError(t, err)
	tr.Review = Review{Outcome: OutcomeTakeProfit, Price: 2310.0, ExitTime: "14:00"}

	path := filepath.Join(t.TempDir(), "journal.sqlite")
	require.NoError(t, ExportSQLite(path, []*Trade{tr}, in))

	j, err := OpenSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	row, err := j.GetTrade(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "XAUUSD", row.Symbol)
	assert.Equal(t, "Buy", row.Direction)
	assert.Equal(t, OutcomeTakeProfit, row.Outcome)
	assert.Equal(t, ResultWin, row.Result)
	// 50 partial pips + 100 final pips, $250 + $500 on the remaining half lot.
	assert.InDelta(t, 150.0, row.TotalPips, 1e-6)
	assert.InDelta(t, 750.0, row.RealizedPL, 1e-6)

	n, err := j.CountPartials(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestExportSQLiteIdempotent(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	tr := buyTrade(t)
	tr.Review = Review{Outcome: OutcomeStopLoss, Price: 2295.0}

	path := filepath.Join(t.TempDir(), "journal.sqlite")
	require.NoError(t, ExportSQLite(path, []*Trade{tr}, in))
	require.NoError(t, ExportSQLite(path, []*Trade{tr}, in))

	j, err := OpenSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	row, err := j.GetTrade(tr.ID)
	require.NoError(t, err)
	assert.InDelta(t, -500.0, row.RealizedPL, 1e-6)
}

func TestGetTradeNotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.sqlite")
	j, err := OpenSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	_, err = j.GetTrade("missing")
	assert.Error(t, err)
}
