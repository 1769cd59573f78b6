// Package cmd implements the CLI application to manage a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	portfolio "github.com/jczaja51/projekt-gielda"
)

// Commands returns every subcommand of the application.
// A main package registers them on a commander and executes the selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&initCmd{},
		&buyCmd{},
		&sellCmd{},
		&holdingCmd{},
		&ordersCmd{},
		&fmtCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.txt", "Path to the portfolio file (line format)")

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// loadPortfolio loads the app portfolio file.
func loadPortfolio() (*portfolio.Portfolio, error) {
	p, err := portfolio.LoadPortfolio(*portfolioFile)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("file", *portfolioFile).Msg("portfolio loaded")
	return p, nil
}

// savePortfolio writes the portfolio back to the app portfolio file.
func savePortfolio(p *portfolio.Portfolio) error {
	if err := portfolio.SavePortfolio(*portfolioFile, p); err != nil {
		return err
	}
	logger.Debug().Str("file", *portfolioFile).Msg("portfolio saved")
	return nil
}

// printMarkdown renders markdown for the terminal. On rendering errors the
// raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
