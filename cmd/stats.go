package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// statsCmd shows the backend database counters.
type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the backend database counters" }
func (*statsCmd) Usage() string {
	return `bw stats

  Displays the backend database counters: séances, cours, conseils and the
  covered date range, as reported by the stats endpoint.
`
}

func (*statsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stats, err := newClient().Stats(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Séances:  %d\n", stats.Seances)
	fmt.Printf("Cours:    %d\n", stats.Cours)
	fmt.Printf("Conseils: %d\n", stats.Conseils)
	if stats.FirstSeance != "" {
		fmt.Printf("Période:  %s à %s\n", stats.FirstSeance, stats.LastSeance)
	}
	return subcommands.ExitSuccess
}

// healthCmd probes the backend.
type healthCmd struct{}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "check that the backend is reachable" }
func (*healthCmd) Usage() string {
	return `bw health

  Probes the backend health endpoint.
`
}

func (*healthCmd) SetFlags(_ *flag.FlagSet) {}

func (c *healthCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := newClient().Health(ctx); err != nil {
		return fail(err)
	}
	fmt.Printf("Backend %s is healthy.\n", *apiURL)
	return subcommands.ExitSuccess
}
