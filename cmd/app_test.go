package cmd

import (
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/subcommands"
)

func TestCommandNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Commands {
		if seen[c.Name()] {
			t.Errorf("duplicate subcommand name %q", c.Name())
		}
		seen[c.Name()] = true
		if c.Synopsis() == "" || c.Usage() == "" {
			t.Errorf("subcommand %q lacks a synopsis or usage", c.Name())
		}
	}
}

// pointAt aims the global client flags at a test server.
func pointAt(t *testing.T, srv *httptest.Server) {
	t.Helper()
	old := *apiURL
	*apiURL = srv.URL
	t.Cleanup(func() { *apiURL = old })
}

func TestMarketCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"date":"2026-02-11","seance_num":27,"composite":210.5,"var_composite":-0.32}]`))
	}))
	defer srv.Close()
	pointAt(t, srv)

	c := &marketCmd{window: "21"}
	if got := c.Execute(context.Background(), flag.NewFlagSet("market", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Errorf("Execute = %v, want success", got)
	}
}

func TestMarketCmdRejectsBadWindow(t *testing.T) {
	c := &marketCmd{window: "15"}
	if got := c.Execute(context.Background(), flag.NewFlagSet("market", flag.ContinueOnError)); got != subcommands.ExitFailure {
		t.Errorf("Execute = %v, want failure for an unsupported window", got)
	}
}

func TestConseilCloseRequiresID(t *testing.T) {
	c := &conseilCloseCmd{}
	if got := c.Execute(context.Background(), flag.NewFlagSet("conseil-close", flag.ContinueOnError)); got != subcommands.ExitFailure {
		t.Errorf("Execute = %v, want failure without -id", got)
	}
}

func TestPortfolioCmdRejectsNonPositiveUnit(t *testing.T) {
	c := &portfolioCmd{unit: 0}
	if got := c.Execute(context.Background(), flag.NewFlagSet("portfolio", flag.ContinueOnError)); got != subcommands.ExitFailure {
		t.Errorf("Execute = %v, want failure for unit 0", got)
	}
}
