package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/esmelobi/brvm-watch/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd starts the AI assistant.
type assistCmd struct {
	unit int64
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `bw assist [-unit <shares>] [<question>]

  Starts an interactive session with the AI assistant. The assistant reads
  the live dashboard through the backend and can search for recent news
  about BRVM-listed companies.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.unit, "unit", defaultUnit, "Shares per position for portfolio questions")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	marche := agent.NewMarche()
	analyste := agent.NewAnalyste(newClient(), brvmwatch.NewQuantityFromInt(c.unit))
	a := agent.New(os.Stdout, os.Stdin, marche, analyste)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
