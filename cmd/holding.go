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

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display current holdings and their real value" }
func (*holdingCmd) Usage() string {
	return `gielda holding

  Displays every held asset with its quantity and real value (net of fees,
  spread or storage costs), the cash balance and the total portfolio value.
`
}

func (*holdingCmd) SetFlags(_ *flag.FlagSet) {}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := p.HoldingReport(portfolio.Today())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Holding(report))
	return subcommands.ExitSuccess
}
