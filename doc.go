// Package portfolio tracks ownership of multiple asset classes inside a
// single portfolio, applies per-class valuation rules, and executes sell
// operations with FIFO cost basis and realized-profit accounting.
//
// The core functionalities include:
//   - Asset classes: shares, currencies and commodities behind one Asset
//     interface, each with its own purchase cost and real value formula.
//   - FIFO lot ledger: every buy creates a dated purchase lot; sells consume
//     the chronologically oldest lots first and report the realized profit
//     per consumed lot.
//   - Order priority: pending limit orders are ranked by a deterministic
//     price-time priority comparator, optionally refined by market data, as
//     groundwork for a matching stage.
//   - Data persistence: the portfolio state round-trips through a
//     human-readable line format with integrity checks on load.
//
// This package serves as the foundational logic for the `gielda`
// command-line tool; all operations are synchronous, in-memory and
// all-or-nothing under failure.
package portfolio
