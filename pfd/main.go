package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/parkrow/propfin/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Local .env files hold the export API key during development.
	godotenv.Load()

	name := path.Base(os.Args[0])
	completer(name).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completer declares the shell completion tree for the CLI.
func completer(name string) *complete.Command {
	property := map[string]complete.Predictor{
		"p": predict.Nothing,
		"d": predict.Nothing,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"cashflow":  {Flags: property},
			"balance":   {Flags: property},
			"t12":       {Flags: map[string]complete.Predictor{"p": predict.Nothing, "to": predict.Nothing}},
			"variance":  {Flags: property},
			"property":  {Flags: map[string]complete.Predictor{"p": predict.Nothing}},
			"portfolio": {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"topic":     {Args: predict.Set{"readme", "categories", "reports", "thresholds", "fallback", "*"}},
			"assist":    {},
		},
		Flags: map[string]complete.Predictor{
			"api-url":        predict.Nothing,
			"rentroll-url":   predict.Nothing,
			"ledger-api-key": predict.Nothing,
		},
	}
}
