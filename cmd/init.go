package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	portfolio "github.com/jczaja51/projekt-gielda"
)

type initCmd struct {
	cash float64
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new empty portfolio file" }
func (*initCmd) Usage() string {
	return `gielda init -cash <amount>

  Creates a new portfolio file with an initial cash balance. Fails if the
  file already exists.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.cash, "cash", 0, "Initial cash balance.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*portfolioFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: portfolio file %q already exists\n", *portfolioFile)
		return subcommands.ExitFailure
	}

	p, err := portfolio.NewPortfolio(portfolio.M(c.cash), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := savePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created %s with %s\n", *portfolioFile, p.Cash())
	return subcommands.ExitSuccess
}
