package cmd

import (
	"context"
	"flag"
	"fmt"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/esmelobi/brvm-watch/renderer"
	"github.com/google/subcommands"
)

// securitiesCmd holds the flags for the 'securities' subcommand.
type securitiesCmd struct {
	query  string
	sortBy string
	asc    bool
}

func (*securitiesCmd) Name() string     { return "securities" }
func (*securitiesCmd) Synopsis() string { return "display the quote table of all listed securities" }
func (*securitiesCmd) Usage() string {
	return `bw securities [-q <query>] [-sort <column>] [-asc]

  Displays every listed security. -q keeps the securities whose symbol or
  title contains the query. -sort picks the column (symbol, title, sector,
  close, var, varyear, volume, value, per, yield), descending unless -asc.
  Securities missing the sorted value always rank last.
`
}

func (c *securitiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter on symbol or title")
	f.StringVar(&c.sortBy, "sort", "symbol", "Sort column")
	f.BoolVar(&c.asc, "asc", false, "Sort ascending instead of descending")
}

func (c *securitiesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	col, err := brvmwatch.ParseColumn(c.sortBy)
	if err != nil {
		return fail(err)
	}
	list, err := newClient().Securities(ctx)
	if err != nil {
		return fail(err)
	}
	report := brvmwatch.NewSecuritiesReport(list, c.query, brvmwatch.SortSpec{Column: col, Desc: !c.asc})
	printMarkdown(renderer.RenderSecurities(report))
	return subcommands.ExitSuccess
}

// securityCmd shows the detail panel of one symbol.
type securityCmd struct{}

func (*securityCmd) Name() string     { return "security" }
func (*securityCmd) Synopsis() string { return "display one security with its price history" }
func (*securityCmd) Usage() string {
	return `bw security <symbol>

  Displays one security's identity card and full price history.
`
}

func (*securityCmd) SetFlags(_ *flag.FlagSet) {}

func (c *securityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one symbol, got %d arguments", f.NArg()))
	}
	detail, err := newClient().Security(ctx, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	report := brvmwatch.NewSecuritiesReport(nil, "", brvmwatch.SortSpec{}).WithDetail(detail)
	printMarkdown(renderer.RenderSecurities(report))
	return subcommands.ExitSuccess
}
