package playbook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func TestLoadOrCreateSeedsDefaults(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	items, reset, err := s.LoadOrCreate(Setups)
	require.NoError(t, err)
	assert.False(t, reset)
	assert.Contains(t, items, "Breakout")
	assert.Contains(t, items, "Other")
	assert.True(t, sort.StringsAreSorted(items))

	// Seeded file should exist and reload identically.
	again, reset, err := s.LoadOrCreate(Setups)
	require.NoError(t, err)
	assert.False(t, reset)
	assert.Equal(t, items, again)
}

func TestLoadOrCreateResetsCorruptFile(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.Dir, 0755))
	require.NoError(t, os.WriteFile(s.file(Entries), []byte("{not json"), 0644))

	items, reset, err := s.LoadOrCreate(Entries)
	require.NoError(t, err)
	assert.True(t, reset)
	assert.Contains(t, items, "Market")

	// File on disk was rewritten with valid defaults.
	data, err := os.ReadFile(s.file(Entries))
	require.NoError(t, err)
	var onDisk []string
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, items, onDisk)
}

func TestAddSortsAndPersists(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.NoError(t, s.Add(SLReasons, "Above Resistance"))

	items, _, err := s.LoadOrCreate(SLReasons)
	require.NoError(t, err)
	assert.Equal(t, "Above Resistance", items[0])
	assert.True(t, sort.StringsAreSorted(items))
}

func TestAddRejectsDuplicateAndEmpty(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	assert.ErrorIs(t, s.Add(Setups, "Breakout"), ErrDuplicate)
	assert.ErrorIs(t, s.Add(Setups, ""), ErrEmpty)
}

func TestEdit(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.NoError(t, s.Edit(TPReasons, "RR Ratio", "Fixed RR"))

	items, _, err := s.LoadOrCreate(TPReasons)
	require.NoError(t, err)
	assert.Contains(t, items, "Fixed RR")
	assert.NotContains(t, items, "RR Ratio")
	assert.True(t, sort.StringsAreSorted(items))
}

func TestEditErrors(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	assert.ErrorIs(t, s.Edit(TPReasons, "No Such", "X"), ErrNotFound)
	assert.ErrorIs(t, s.Edit(TPReasons, "RR Ratio", "Other"), ErrDuplicate)
	assert.ErrorIs(t, s.Edit(TPReasons, "RR Ratio", ""), ErrEmpty)

	// Renaming an entry to itself is allowed.
	assert.NoError(t, s.Edit(TPReasons, "RR Ratio", "RR Ratio"))
}

func TestDelete(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.NoError(t, s.Delete(CloseReasons, "Volatility Spike"))

	items, _, err := s.LoadOrCreate(CloseReasons)
	require.NoError(t, err)
	assert.NotContains(t, items, "Volatility Spike")

	assert.ErrorIs(t, s.Delete(CloseReasons, "Volatility Spike"), ErrNotFound)
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	c, err := ParseCategory("  Setups ")
	require.NoError(t, err)
	assert.Equal(t, Setups, c)

	_, err = ParseCategory("nope")
	assert.Error(t, err)
}

func TestCategoryFilenames(t *testing.T) {
	t.Parallel()
	s := NewStore("pb")

	assert.Equal(t, filepath.Join("pb", "close_reasons.json"), s.file(CloseReasons))
}
