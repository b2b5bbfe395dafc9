package journal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyeddy/tradebook/market"
)

// Book is the session object owning the in-memory trade list and the
// running account balance. Commands operate on a Book and persist it
// wholesale through a Store.
type Book struct {
	Trades  []*Trade
	Balance float64
}

// Add appends a new trade.
func (b *Book) Add(t *Trade) {
	b.Trades = append(b.Trades, t)
}

// Find resolves a trade reference: a 1-based list position, a full ULID,
// or an unambiguous ID prefix.
func (b *Book) Find(ref string) (*Trade, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(b.Trades) {
			return nil, fmt.Errorf("trade %d not found (journal has %d trades)", n, len(b.Trades))
		}
		return b.Trades[n-1], nil
	}

	upper := strings.ToUpper(ref)
	var match *Trade
	for _, t := range b.Trades {
		if t.ID == upper {
			return t, nil
		}
		if strings.HasPrefix(t.ID, upper) {
			if match != nil {
				return nil, fmt.Errorf("trade reference %q is ambiguous", ref)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("trade %q not found", ref)
	}
	return match, nil
}

// Close finalizes a trade: persists the review fields and the SL-to-BE
// flag, computes the total P&L (partial legs plus the final leg over the
// remaining lots), and applies it to the running balance exactly once.
// A trade that already carries a terminal outcome is rejected unchanged.
func (b *Book) Close(t *Trade, in market.Instrument, rev Review, slToBE bool) (Summary, error) {
	if !t.IsOpen() {
		return Summary{}, fmt.Errorf("%w: outcome %q", ErrAlreadyClosed, t.Review.Outcome)
	}
	if !IsTerminal(rev.Outcome) {
		return Summary{}, fmt.Errorf("%w: %q", ErrNotTerminal, rev.Outcome)
	}

	t.Review = rev
	t.SLToBE = slToBE

	s := Summarize(t, in)
	b.Balance += s.TotalPnL
	return s, nil
}

// SetBalance is the explicit user override for the account balance.
func (b *Book) SetBalance(v float64) {
	b.Balance = v
}
