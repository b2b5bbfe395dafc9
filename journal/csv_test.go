package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	win := buyTrade(t)
	win.Review = Review{Outcome: OutcomeTakeProfit, Price: 2310.0}
	open := buyTrade(t)

	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, ExportCSV(path, []*Trade{win, open}, in))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])

	byName := func(row []string, col string) string {
		for i, h := range csvHeader {
			if h == col {
				return row[i]
			}
		}
		t.Fatalf("no column %s", col)
		return ""
	}

	assert.Equal(t, win.ID, byName(rows[1], "id"))
	assert.Equal(t, "Win", byName(rows[1], "result"))
	assert.Equal(t, "1000", byName(rows[1], "pnl"))
	assert.Equal(t, "10", byName(rows[1], "gain_pct"))
	assert.Equal(t, "Open", byName(rows[2], "result"))
	assert.Equal(t, "0", byName(rows[2], "gain_pct"))
}
