package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	portfolio "github.com/jczaja51/projekt-gielda"
)

type buyCmd struct {
	kind    string
	symbol  string
	name    string
	price   float64
	qty     int64
	spread  float64
	storage float64
	date    string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy an asset, appending a purchase lot" }
func (*buyCmd) Usage() string {
	return `gielda buy -type <share|currency|commodity> -symbol <sym> -name <name> -price <base> -qty <n> [-spread <s>] [-storage <s>] [-d <date>]

  Buys a quantity of an asset at its base price. The purchase cost is charged
  to cash according to the asset class (shares add the manipulation fee) and
  a new purchase lot is recorded for the given date (today by default).
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "share", "Asset class (share, currency, commodity).")
	f.StringVar(&c.symbol, "symbol", "", "Asset symbol, 3-6 letters.")
	f.StringVar(&c.name, "name", "", "Asset display name.")
	f.Float64Var(&c.price, "price", 0, "Base price per unit.")
	f.Int64Var(&c.qty, "qty", 0, "Quantity to buy.")
	f.Float64Var(&c.spread, "spread", 0, "Bid/ask spread (currency only).")
	f.Float64Var(&c.storage, "storage", 0, "Storage cost per unit per day (commodity only).")
	f.StringVar(&c.date, "d", "", "Purchase date (defaults to today).")
}

// asset builds the asset described by the flags.
func (c *buyCmd) asset() (portfolio.Asset, error) {
	kind, err := portfolio.ParseAssetType(c.kind)
	if err != nil {
		return nil, err
	}
	base := portfolio.M(c.price)
	switch kind {
	case portfolio.CurrencyType:
		return portfolio.NewCurrency(c.symbol, c.name, base, portfolio.M(c.spread))
	case portfolio.CommodityType:
		return portfolio.NewCommodity(c.symbol, c.name, base, portfolio.M(c.storage))
	default:
		return portfolio.NewShare(c.symbol, c.name, base)
	}
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asset, err := c.asset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	day := portfolio.Today()
	if c.date != "" {
		if day, err = portfolio.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := p.BuyOn(asset, c.qty, day); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := savePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %d %s, cash left %s\n", c.qty, asset.Symbol(), p.Cash())
	return subcommands.ExitSuccess
}
