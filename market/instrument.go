package market

import "fmt"

// Instrument carries the per-symbol constants the conversion engine is
// parameterized by: how large one pip is in price units, and what one pip is
// worth in account currency per lot.
type Instrument struct {
	Symbol          string
	PipValue        float64 // price units per pip
	USDPerPipPerLot float64 // account currency per pip per lot
	PricePrecision  int     // decimals when rounding a derived price
}

var Instruments = map[string]Instrument{
	"XAUUSD": {
		Symbol:          "XAUUSD",
		PipValue:        0.1,
		USDPerPipPerLot: 10,
		PricePrecision:  2,
	},
	"EURUSD": {
		Symbol:          "EURUSD",
		PipValue:        0.0001,
		USDPerPipPerLot: 10,
		PricePrecision:  5,
	},
	"USDJPY": {
		Symbol:          "USDJPY",
		PipValue:        0.01,
		USDPerPipPerLot: 10,
		PricePrecision:  3,
	},
}

// Lookup returns the instrument for symbol.
func Lookup(symbol string) (Instrument, error) {
	in, ok := Instruments[symbol]
	if !ok {
		return Instrument{}, fmt.Errorf("unknown instrument %s", symbol)
	}
	return in, nil
}

// Register adds or replaces an instrument definition. Used by the config
// layer so a journal can track a symbol the built-in table does not know.
func Register(in Instrument) error {
	if in.Symbol == "" {
		return fmt.Errorf("instrument symbol is required")
	}
	if in.PipValue <= 0 {
		return fmt.Errorf("instrument %s: pip_value must be positive", in.Symbol)
	}
	if in.USDPerPipPerLot <= 0 {
		return fmt.Errorf("instrument %s: usd_per_pip_per_lot must be positive", in.Symbol)
	}
	Instruments[in.Symbol] = in
	return nil
}
