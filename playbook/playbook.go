// Package playbook manages the user-curated label taxonomy: setups,
// entry styles, and the stop-loss/take-profit/partial-close reason
// lists. Each category persists as its own flat JSON array of strings.
package playbook

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Category names the five option lists.
type Category string

const (
	Setups       Category = "setups"
	Entries      Category = "entries"
	SLReasons    Category = "sl_reasons"
	TPReasons    Category = "tp_reasons"
	CloseReasons Category = "close_reasons"
)

// Categories in display order.
var Categories = []Category{Setups, Entries, SLReasons, TPReasons, CloseReasons}

// ParseCategory resolves a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown playbook category %q (want one of %s)", s, categoryNames())
}

func categoryNames() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Defaults seed each category's file on first use.
var Defaults = map[Category][]string{
	Setups:    {"Breakout", "Reversal", "Pullback", "Trend Continuation", "Range", "News Play", "Other"},
	Entries:   {"Market", "Limit", "Stop", "Break-Even", "Retest", "Other"},
	SLReasons: {"Below Support", "ATR Stop", "Structure", "Other"},
	TPReasons: {"At Resistance", "RR Ratio", "Previous High", "Other"},
	CloseReasons: {
		"Reached Partial TP 1",
		"Reached Partial TP 2",
		"Minor Support/Resistance Hit",
		"Candle Closed Against Me",
		"Volatility Spike",
		"News Event Approaching",
		"Time Based Exit",
		"Price Action Shift",
		"Manual Intervention",
		"Other",
	},
}

var (
	ErrDuplicate = errors.New("item already exists in this category")
	ErrNotFound  = errors.New("item not found in this category")
	ErrEmpty     = errors.New("item must not be empty")
)

func defaultList(c Category) []string {
	out := make([]string, len(Defaults[c]))
	copy(out, Defaults[c])
	sort.Strings(out)
	return out
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
