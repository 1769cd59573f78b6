package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	{
	    "quotes": [
	        {"symbol": "KGH", "last": 123.45},
	        {"symbol": "PKO", "last": "58,20"}
	    ]
	}
*/

// ImportQuotes reads a JSON quote document and records the last price of
// every listed symbol. Some feeds serve the value as a string with a comma
// decimal separator; both forms are accepted. Malformed entries are skipped
// and reported together, valid entries are always applied.
func (m *MarketData) ImportQuotes(r io.Reader) error {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return fmt.Errorf("could not decode quote document: %w", err)
	}

	path := "$.quotes[*]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return fmt.Errorf("quote document has no quotes: %q %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single answer.
		jlist = []any{jval}
	}

	var errs error
	for _, entry := range jlist {
		quote, ok := entry.(map[string]any)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("quote entry is not an object: %v", entry))
			continue
		}
		symbol, _ := quote["symbol"].(string)
		price, err := readQuoteValue(quote["last"])
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not read quote for %q: %w", symbol, err))
			continue
		}
		if err := m.SetPrice(symbol, M(price)); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// readQuoteValue accepts a float or a string value, with "," as an
// alternative decimal separator.
func readQuoteValue(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		s := strings.ReplaceAll(v, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		val, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("value is an invalid string %q: %w", v, err)
		}
		return val, nil
	default:
		return decimal.Zero, fmt.Errorf("value %v is neither a float nor a string", jval)
	}
}
