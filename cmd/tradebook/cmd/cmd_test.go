package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/journal"
)

func TestParseOutcome(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"tp":              journal.OutcomeTakeProfit,
		"Take Profit Hit": journal.OutcomeTakeProfit,
		"SL":              journal.OutcomeStopLoss,
		"stop loss":       journal.OutcomeStopLoss,
		"be":              journal.OutcomeBreakeven,
		"other":           journal.OutcomeOther,
	}
	for in, want := range cases {
		got, err := parseOutcome(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseOutcome("moon")
	assert.Error(t, err)
}

func TestShortRef(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "01J8ZKQ2", shortRef("01J8ZKQ2V3W4X5Y6Z7A8B9C0DE"))
	assert.Equal(t, "abc", shortRef("abc"))
}

func TestValidTimeframe(t *testing.T) {
	t.Parallel()

	assert.True(t, validTimeframe("H1"))
	assert.True(t, validTimeframe("D1"))
	assert.False(t, validTimeframe("M15"))
}
