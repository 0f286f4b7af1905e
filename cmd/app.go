// Package cmd implements the CLI application behind the bw dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/esmelobi/brvm-watch/brvmapi"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&marketCmd{},
	&securitiesCmd{},
	&securityCmd{},
	&pepitesCmd{},
	&conseilsCmd{},
	&conseilAddCmd{},
	&conseilCloseCmd{},
	&portfolioCmd{},
	&uploadCmd{},
	&refreshCmd{},
	&statsCmd{},
	&healthCmd{},
	&watchCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application the lifecycle is one command, so global flags are ok.

var apiURL = flag.String("api", "http://localhost:8000", "Base URL of the bulletin backend")
var timeout = flag.Duration("timeout", brvmapi.DefaultTimeout, "HTTP request timeout")

// newClient builds the backend client from the global flags. The base URL
// is passed down explicitly; nothing below this point reads flags.
func newClient() *brvmapi.Client {
	return brvmapi.New(*apiURL, *timeout)
}

// fail prints an error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
