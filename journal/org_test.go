package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	tr := buyTrade(t)
	_, err := tr.AddPartialClose(in, 0.5, 0, 50, "Reached Partial TP 1", time.Now())
	require.NoError(t, err)
	tr.Review = Review{Outcome: OutcomeTakeProfit, Price: 2310.0, Notes: "clean breakout"}

	out := FormatTradeOrg(tr, in)

	assert.Contains(t, out, "** Trade: XAUUSD H1 ("+tr.ID[:8]+")")
	assert.Contains(t, out, ":PROPERTIES:")
	assert.Contains(t, out, ":ID: "+tr.ID)
	assert.Contains(t, out, ":DIRECTION: Buy")
	assert.Contains(t, out, ":SESSION: London")
	assert.Contains(t, out, ":OUTCOME: Take Profit Hit")
	assert.Contains(t, out, ":RESULT: Win")
	assert.Contains(t, out, ":PNL: 750.00")
	assert.Contains(t, out, ":END:")
	assert.Contains(t, out, "*** Partial closes")
	assert.Contains(t, out, "Reached Partial TP 1")
	assert.Contains(t, out, "*** Notes")
	assert.Contains(t, out, "clean breakout")
}

func TestFormatTradeOrgOpenTrade(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	out := FormatTradeOrg(buyTrade(t), in)
	assert.Contains(t, out, ":OUTCOME: -")
	assert.Contains(t, out, ":RESULT: Open")
	assert.NotContains(t, out, "*** Partial closes")
	assert.NotContains(t, out, "*** Notes")
}

func TestFormatTradeOrgMissingScreenshot(t *testing.T) {
	t.Parallel()
	in := testInstrument(t)

	dir := t.TempDir()
	present := filepath.Join(dir, "d1.png")
	require.NoError(t, os.WriteFile(present, []byte("png"), 0644))

	tr := buyTrade(t)
	require.NoError(t, tr.SetScreenshot("D1", "before", present))
	require.NoError(t, tr.SetScreenshot("H4", "before", filepath.Join(dir, "gone.png")))

	out := FormatTradeOrg(tr, in)
	assert.Contains(t, out, "- D1 before: "+present)
	assert.Contains(t, out, "gone.png (missing)")
	assert.Contains(t, out, "- H1 before: (none)")
}
