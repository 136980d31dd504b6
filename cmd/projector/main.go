// Command projector runs the projection and windowing engines from the shell:
// project a JSON chart payload, or replay zoom and pan gestures over a series.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-projector/internal/logging"
)

// globals holds options shared by every command.
type globals struct {
	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Log level."`
	Dump     bool   `help:"Dump internal state to stderr."`

	logger *logrus.Logger
	out    io.Writer
	errOut io.Writer
}

var cli struct {
	Globals globals `embed:""`

	Project projectCmd `cmd:"" help:"Project a chart payload under a spending reduction config."`
	Window  windowCmd  `cmd:"" help:"Replay zoom and pan gestures and print the visible range."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("projector"),
		kong.Description("Spending projection and chart windowing."),
		kong.UsageOnError(),
	)

	logger, err := logging.SetupLoggingWithLevel(cli.Globals.LogLevel)
	ctx.FatalIfErrorf(err)
	logger.Out = os.Stderr

	cli.Globals.logger = logger
	cli.Globals.out = os.Stdout
	cli.Globals.errOut = os.Stderr

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
