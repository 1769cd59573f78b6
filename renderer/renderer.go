// Package renderer renders portfolio reports to markdown strings.
package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/jczaja51/projekt-gielda"
)

// Holding renders a holdings report to a markdown string.
func Holding(h *portfolio.HoldingReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings on %s\n\n", h.Date)

	if len(h.Positions) == 0 {
		fmt.Fprintln(&b, "No assets held.")
	} else {
		fmt.Fprintln(&b, "| Symbol | Name | Class | Quantity | Real Value |")
		fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
		for _, pos := range h.Positions {
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
				pos.Symbol,
				pos.Name,
				pos.Kind,
				pos.Quantity,
				pos.RealValue,
			)
		}
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Cash: %s\n", h.Cash)
	fmt.Fprintf(&b, "- Assets: %s\n", h.TotalAssets)
	fmt.Fprintf(&b, "- **Total: %s**\n", h.TotalValue)

	if len(h.Watchlist) > 0 {
		fmt.Fprintf(&b, "\nWatching: %s\n", strings.Join(h.Watchlist, ", "))
	}
	return b.String()
}

// Orders renders pending orders, in priority order, to a markdown string.
func Orders(orders []portfolio.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Pending orders\n\n")

	if len(orders) == 0 {
		fmt.Fprintln(&b, "The book is empty.")
		return b.String()
	}
	fmt.Fprintln(&b, "| # | Side | Symbol | Quantity | Limit | Placed |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|---:|")
	for i, o := range orders {
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %s | %d |\n",
			i+1,
			o.Side,
			o.Symbol,
			o.Quantity,
			o.LimitPrice,
			o.CreatedAt,
		)
	}
	return b.String()
}

// SellResult renders the lot closures of a sell to a markdown string.
func SellResult(symbol string, r *portfolio.SellResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sold %d %s\n\n", r.QuantitySold(), symbol)
	fmt.Fprintln(&b, "| Lot date | Quantity | Profit |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, c := range r.Closures() {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", c.PurchaseDate, c.QuantitySold, c.Profit)
	}
	fmt.Fprintf(&b, "\n**Realized profit: %s**\n", r.TotalProfit())
	return b.String()
}
