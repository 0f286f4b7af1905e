package cmd

import (
	"context"
	"flag"
	"fmt"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/google/subcommands"
)

// uploadCmd submits a bulletin PDF.
type uploadCmd struct{}

func (*uploadCmd) Name() string     { return "upload" }
func (*uploadCmd) Synopsis() string { return "submit a daily bulletin PDF" }
func (*uploadCmd) Usage() string {
	return `bw upload <bulletin.pdf>

  Submits a daily bulletin to the backend, which extracts the séance and
  all quotes from it. Only PDF files are accepted; anything else is
  rejected before a request is sent.
`
}

func (*uploadCmd) SetFlags(_ *flag.FlagSet) {}

func (c *uploadCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one bulletin file, got %d arguments", f.NArg()))
	}

	var w brvmwatch.UploadWorkflow
	if err := w.Select(f.Arg(0)); err != nil {
		return fail(err)
	}
	if err := w.Submit(ctx, newClient().UploadBulletin); err != nil {
		return fail(err)
	}
	result := w.Result()
	fmt.Printf("Bulletin accepted: séance n°%d du %s.\n", result.Number, result.Date)
	w.Close()
	return subcommands.ExitSuccess
}

// refreshCmd asks the backend to re-scrape the exchange website.
type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "ask the backend to re-scrape the exchange website" }
func (*refreshCmd) Usage() string {
	return `bw refresh

  Asks the backend to fetch the latest data from the exchange website
  instead of uploading a bulletin file.
`
}

func (*refreshCmd) SetFlags(_ *flag.FlagSet) {}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := newClient().Refresh(ctx); err != nil {
		return fail(err)
	}
	fmt.Println("Refresh started.")
	return subcommands.ExitSuccess
}
