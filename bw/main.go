package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/esmelobi/brvm-watch/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It exits the
// process when invoked by the shell, before any flag parsing.
func completion() {
	windows := predict.Set{"10", "21", "60"}
	columns := predict.Set{"symbol", "title", "sector", "close", "var", "varyear", "volume", "value", "per", "yield"}

	bw := &complete.Command{
		Flags: map[string]complete.Predictor{
			"api":     predict.Something,
			"timeout": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"market": {Flags: map[string]complete.Predictor{"window": windows}},
			"securities": {Flags: map[string]complete.Predictor{
				"q":    predict.Something,
				"sort": columns,
				"asc":  predict.Nothing,
			}},
			"security": {Args: predict.Something},
			"pepites":  {Flags: map[string]complete.Predictor{"jours": predict.Set{"5", "7", "14", "30"}}},
			"conseils": {},
			"conseil-add": {Flags: map[string]complete.Predictor{
				"symbol": predict.Something,
				"type":   predict.Set{"ACHAT", "VENTE", "NEUTRE"},
				"entry":  predict.Something,
				"target": predict.Something,
				"stop":   predict.Something,
				"note":   predict.Something,
			}},
			"conseil-close": {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"portfolio":     {Flags: map[string]complete.Predictor{"unit": predict.Something}},
			"upload":        {Args: predict.Files("*.pdf")},
			"refresh":       {},
			"stats":         {},
			"health":        {},
			"watch": {Flags: map[string]complete.Predictor{
				"every":  predict.Something,
				"window": windows,
			}},
			"topic":  {Args: predict.Something},
			"assist": {Flags: map[string]complete.Predictor{"unit": predict.Something}},
		},
	}
	bw.Complete("bw")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
