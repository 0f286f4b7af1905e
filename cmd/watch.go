package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/esmelobi/brvm-watch/brvmapi"
	"github.com/esmelobi/brvm-watch/renderer"
	"github.com/google/subcommands"
)

// watchCmd re-renders the market screen at a fixed interval.
type watchCmd struct {
	every  int
	window string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "re-render the market screen periodically" }
func (*watchCmd) Usage() string {
	return `bw watch [-every <seconds>] [-window <10|21|60>]

  Re-fetches and re-renders the market screen every n seconds. A fetch that
  completes after a newer one has been issued is discarded, never displayed.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.every, "every", 60, "Refresh interval in seconds")
	f.StringVar(&c.window, "window", "21", "Chart window in séances (10, 21 or 60)")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := brvmwatch.ParseWindow(c.window)
	if err != nil {
		return fail(err)
	}
	if c.every <= 0 {
		return fail(fmt.Errorf("-every must be a positive number of seconds"))
	}

	client := newClient()
	var res brvmapi.Resource[brvmwatch.MarketReport]
	fetch := func(ctx context.Context) (*brvmwatch.MarketReport, error) {
		seances, err := client.Seances(ctx, int(w))
		if err != nil {
			return nil, err
		}
		return brvmwatch.NewMarketReport(seances, w)
	}

	for {
		snapshot := res.Fetch(ctx, fetch)
		fmt.Println("\033[2J")
		switch {
		case snapshot.Err != "":
			fmt.Fprintf(os.Stderr, "Error: %s\n", snapshot.Err)
		case snapshot.Data != nil:
			printMarkdown(renderer.MarketMarkdown(snapshot.Data))
		}
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-time.After(time.Duration(c.every) * time.Second):
		}
	}
}
