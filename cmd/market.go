package cmd

import (
	"context"
	"flag"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/esmelobi/brvm-watch/renderer"
	"github.com/google/subcommands"
)

// marketCmd holds the flags for the 'market' subcommand.
type marketCmd struct {
	window string
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display the latest séance and the composite chart" }
func (*marketCmd) Usage() string {
	return `bw market [-window <10|21|60>]

  Displays the latest séance exactly as the bulletin published it: the three
  headline indices with their variations, the session activity, and the
  composite over a trailing window of séances.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "window", "21", "Chart window in séances (10, 21 or 60)")
}

func (c *marketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := brvmwatch.ParseWindow(c.window)
	if err != nil {
		return fail(err)
	}
	seances, err := newClient().Seances(ctx, int(w))
	if err != nil {
		return fail(err)
	}
	report, err := brvmwatch.NewMarketReport(seances, w)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.MarketMarkdown(report))
	return subcommands.ExitSuccess
}
