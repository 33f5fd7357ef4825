package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Start the interactive trainer"`
	Quiz     QuizCmd          `cmd:"" help:"Show the textbook answer for one hand"`
	Chart    ChartCmd         `cmd:"" help:"Print range charts for seats and scenarios"`
	Simulate SimulateCmd      `cmd:"" help:"Score an automated student over many rounds"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("preflop-trainer"),
		kong.Description("Practice textbook Texas Hold'em pre-flop decisions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
