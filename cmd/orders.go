package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	portfolio "github.com/jczaja51/projekt-gielda"
	"github.com/jczaja51/projekt-gielda/renderer"
)

type ordersCmd struct {
	quotesFile string
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "rank orders read from stdin by price-time priority" }
func (*ordersCmd) Usage() string {
	return `gielda orders [-quotes <file>] < orders.txt

  Reads one order per line from stdin, as SIDE|SYMBOL|QTY|LIMIT, and prints
  them ranked by price-time priority: buys before sells, best price first,
  earlier submission winning ties. With -quotes, a JSON quote document is
  loaded and orders closer to the market rank higher on price ties.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quotesFile, "quotes", "", "JSON quote document for the market-distance tiebreak.")
}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market := portfolio.NewMarketData()
	if c.quotesFile != "" {
		qf, err := os.Open(c.quotesFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		err = market.ImportQuotes(qf)
		qf.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("some quotes were not imported")
		}
	}

	book := portfolio.NewOrderBook(portfolio.NewOrderComparator(market))
	var seq portfolio.Sequence

	scanner := bufio.NewScanner(os.Stdin)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		order, err := parseOrderLine(&seq, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			return subcommands.ExitUsageError
		}
		book.Add(order)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Orders(slices.Collect(book.Orders())))
	return subcommands.ExitSuccess
}

// parseOrderLine reads a SIDE|SYMBOL|QTY|LIMIT line.
func parseOrderLine(seq *portfolio.Sequence, line string) (portfolio.Order, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 4 {
		return portfolio.Order{}, fmt.Errorf("want SIDE|SYMBOL|QTY|LIMIT, got %q", line)
	}
	side, err := portfolio.ParseSide(fields[0])
	if err != nil {
		return portfolio.Order{}, err
	}
	qty, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return portfolio.Order{}, fmt.Errorf("invalid quantity %q: %w", fields[2], err)
	}
	limit, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return portfolio.Order{}, fmt.Errorf("invalid limit price %q: %w", fields[3], err)
	}
	return portfolio.NewOrder(seq, fields[1], side, qty, portfolio.M(limit))
}
