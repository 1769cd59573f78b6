package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	portfolio "github.com/jczaja51/projekt-gielda"
	"github.com/jczaja51/projekt-gielda/renderer"
)

type sellCmd struct {
	symbol string
	qty    int64
	price  float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a holding, consuming lots first-in first-out" }
func (*sellCmd) Usage() string {
	return `gielda sell -symbol <sym> -qty <n> -price <p>

  Sells a quantity of a holding at the given price per unit. The oldest lots
  are consumed first; the realized profit is reported per consumed lot.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Symbol of the holding to sell.")
	f.Int64Var(&c.qty, "qty", 0, "Quantity to sell.")
	f.Float64Var(&c.price, "price", 0, "Sell price per unit.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := p.Sell(c.symbol, c.qty, portfolio.M(c.price))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := savePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SellResult(c.symbol, &result))
	return subcommands.ExitSuccess
}
