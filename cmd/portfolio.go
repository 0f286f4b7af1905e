package cmd

import (
	"context"
	"flag"
	"fmt"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/esmelobi/brvm-watch/renderer"
	"github.com/google/subcommands"
)

// defaultUnit is the number of shares each position is valued at when
// -unit is not given.
const defaultUnit = 100

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	unit int64
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the virtual portfolio valuation" }
func (*portfolioCmd) Usage() string {
	return `bw portfolio [-unit <shares>]

  Values every open conseil as if the same fixed number of shares had been
  bought at the entry price, against current prices. Positions without a
  known current price are excluded and counted separately.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.unit, "unit", defaultUnit, "Shares per position")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.unit <= 0 {
		return fail(fmt.Errorf("-unit must be a positive number of shares"))
	}
	client := newClient()
	list, err := client.Conseils(ctx)
	if err != nil {
		return fail(err)
	}
	stats, err := client.Stats(ctx)
	if err != nil {
		return fail(err)
	}
	report := brvmwatch.NewPortfolioReport(list, brvmwatch.NewQuantityFromInt(c.unit), stats)
	printMarkdown(renderer.PortfolioMarkdown(report))
	return subcommands.ExitSuccess
}
