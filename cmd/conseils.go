package cmd

import (
	"context"
	"flag"
	"fmt"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/esmelobi/brvm-watch/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// conseilsCmd displays the open conseils with their derived metrics.
type conseilsCmd struct{}

func (*conseilsCmd) Name() string     { return "conseils" }
func (*conseilsCmd) Synopsis() string { return "display the open conseils and their metrics" }
func (*conseilsCmd) Usage() string {
	return `bw conseils

  Displays every open conseil with its derived metrics: potential to target,
  risk to stop, risk/reward ratio and progress toward the target. A conseil
  without a current price shows a dash in every metric column.
`
}

func (*conseilsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *conseilsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := newClient().Conseils(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderAdvice(brvmwatch.NewAdviceReport(list)))
	return subcommands.ExitSuccess
}

// conseilAddCmd creates a conseil.
type conseilAddCmd struct {
	symbol string
	typ    string
	entry  string
	target string
	stop   string
	note   string
}

func (*conseilAddCmd) Name() string     { return "conseil-add" }
func (*conseilAddCmd) Synopsis() string { return "create a conseil" }
func (*conseilAddCmd) Usage() string {
	return `bw conseil-add -symbol <symbol> -type <ACHAT|VENTE|NEUTRE> -entry <price> -target <price> -stop <price> [-note <text>]

  Creates a conseil. The symbol and all three prices are required and
  validated before any request is sent.
`
}

func (c *conseilAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Security symbol")
	f.StringVar(&c.typ, "type", "ACHAT", "Advice type (ACHAT, VENTE or NEUTRE)")
	f.StringVar(&c.entry, "entry", "", "Entry price")
	f.StringVar(&c.target, "target", "", "Target price")
	f.StringVar(&c.stop, "stop", "", "Stop loss")
	f.StringVar(&c.note, "note", "", "Rationale")
}

func (c *conseilAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := brvmwatch.ParseAdviceType(c.typ)
	if err != nil {
		return fail(err)
	}
	prices := make([]decimal.Decimal, 3)
	for i, s := range []string{c.entry, c.target, c.stop} {
		if s == "" {
			continue // Validate reports the missing price
		}
		p, err := decimal.NewFromString(s)
		if err != nil {
			return fail(fmt.Errorf("invalid price %q: %w", s, err))
		}
		prices[i] = p
	}
	n := brvmwatch.NewConseil{
		Symbol:    c.symbol,
		Type:      typ,
		Entry:     prices[0],
		Target:    prices[1],
		Stop:      prices[2],
		Rationale: c.note,
	}
	if err := n.Validate(); err != nil {
		return fail(err)
	}
	created, err := newClient().CreateConseil(ctx, n)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Conseil %d created: %s %s\n", created.ID, created.Type, created.Symbol)
	return subcommands.ExitSuccess
}

// conseilCloseCmd closes a conseil.
type conseilCloseCmd struct {
	id int64
}

func (*conseilCloseCmd) Name() string     { return "conseil-close" }
func (*conseilCloseCmd) Synopsis() string { return "close a conseil" }
func (*conseilCloseCmd) Usage() string {
	return `bw conseil-close -id <id>

  Closes a conseil. It disappears from the active list only after the
  backend confirms.
`
}

func (c *conseilCloseCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Conseil id to close")
}

func (c *conseilCloseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		return fail(fmt.Errorf("a positive -id is required"))
	}
	if err := newClient().CloseConseil(ctx, c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Conseil %d closed.\n", c.id)
	return subcommands.ExitSuccess
}
