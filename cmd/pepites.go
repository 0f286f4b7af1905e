package cmd

import (
	"context"
	"flag"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/esmelobi/brvm-watch/renderer"
	"github.com/google/subcommands"
)

// pepitesCmd holds the flags for the 'pepites' subcommand.
type pepitesCmd struct {
	jours int
}

func (*pepitesCmd) Name() string     { return "pepites" }
func (*pepitesCmd) Synopsis() string { return "display the best and worst performers" }
func (*pepitesCmd) Usage() string {
	return `bw pepites [-jours <5|7|14|30>]

  Displays the backend-computed performance ranking over a trailing window.
  The window is a request parameter; changing it re-fetches.
`
}

func (c *pepitesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.jours, "jours", 7, "Trailing window in days (5, 7, 14 or 30)")
}

func (c *pepitesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	days, err := brvmwatch.ParseRankingDays(c.jours)
	if err != nil {
		return fail(err)
	}
	p, err := newClient().Pepites(ctx, days)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderRankings(brvmwatch.NewRankingsReport(*p)))
	return subcommands.ExitSuccess
}
