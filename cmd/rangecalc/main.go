// Binary rangecalc merges, subtracts and compares ranges given on the
// command line, e.g.
//
//	rangecalc subtract 1..20 2..3 4...6 7..12
//	rangecalc -type ip merge 10.0.0.1..10.0.0.5 10.0.0.4..10.0.0.9
//	rangecalc subtract -- -5..10 0..1
//
// Ranges starting with a minus sign must follow --.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "path to a TOML config file.")
	rangeType  = flag.String("type", "", "element type of the ranges: int, float, time or ip.")
	delta      = flag.String("delta", "", "step between adjacent values, a number or a duration for time ranges.")
	layout     = flag.String("layout", "", "time layout of time ranges.")
	debug      = flag.Bool("debug", false, "enable debug logging.")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(Overlaps), "")
	subcommands.Register(new(Merge), "")
	subcommands.Register(new(Subtract), "")
	subcommands.Register(new(Closed), "")

	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	conf, err := loadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	applyFlags(conf)
	if err := conf.validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	level, _ := logrus.ParseLevel(conf.LogLevel)
	log.SetLevel(level)
	log.WithFields(logrus.Fields{"type": conf.Type, "delta": conf.Delta}).Debug("config")

	calc, err := newCalculator(conf)
	if err != nil {
		log.WithError(err).Fatal("creating calculator")
	}

	e := &env{calc: calc, out: os.Stdout, log: log}
	os.Exit(int(subcommands.Execute(context.Background(), e)))
}

// applyFlags overrides the config with the flags set on the command line.
func applyFlags(c *config) {
	if *rangeType != "" {
		c.Type = *rangeType
	}
	if *delta != "" {
		c.Delta = *delta
	}
	if *layout != "" {
		c.Layout = *layout
	}
	if *debug {
		c.LogLevel = logrus.DebugLevel.String()
	}
}
