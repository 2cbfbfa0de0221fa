package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// dashUsage explains how to pass ranges starting with a minus sign, which the
// flag package would take for flags.
const dashUsage = "Ranges with a negative begin must follow --, e.g. subtract -- -5..10 0..1.\n"

// Overlaps implements subcommands.Command for the "overlaps" command.
type Overlaps struct{}

// Name implements subcommands.Command.Name.
func (*Overlaps) Name() string { return "overlaps" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Overlaps) Synopsis() string { return "report whether two ranges overlap" }

// Usage implements subcommands.Command.Usage.
func (*Overlaps) Usage() string { return "overlaps [--] <range> <range>\n" + dashUsage }

// SetFlags implements subcommands.Command.SetFlags.
func (*Overlaps) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Overlaps) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	env := args[0].(*env)
	ok, err := env.calc.Overlaps(f.Arg(0), f.Arg(1))
	if err != nil {
		return env.fail(err)
	}
	fmt.Fprintln(env.out, ok)
	return subcommands.ExitSuccess
}

// Merge implements subcommands.Command for the "merge" command.
type Merge struct{}

// Name implements subcommands.Command.Name.
func (*Merge) Name() string { return "merge" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Merge) Synopsis() string { return "merge overlapping ranges" }

// Usage implements subcommands.Command.Usage.
func (*Merge) Usage() string { return "merge [--] <range>...\n" + dashUsage }

// SetFlags implements subcommands.Command.SetFlags.
func (*Merge) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Merge) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := args[0].(*env)
	out, err := env.calc.Merge(f.Args())
	if err != nil {
		return env.fail(err)
	}
	env.print(out)
	return subcommands.ExitSuccess
}

// Subtract implements subcommands.Command for the "subtract" command.
type Subtract struct{}

// Name implements subcommands.Command.Name.
func (*Subtract) Name() string { return "subtract" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Subtract) Synopsis() string { return "remove ranges from a base range" }

// Usage implements subcommands.Command.Usage.
func (*Subtract) Usage() string { return "subtract [--] <base> <range>...\n" + dashUsage }

// SetFlags implements subcommands.Command.SetFlags.
func (*Subtract) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Subtract) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	env := args[0].(*env)
	out, err := env.calc.Subtract(f.Arg(0), f.Args()[1:])
	if err != nil {
		return env.fail(err)
	}
	env.print(out)
	return subcommands.ExitSuccess
}

// Closed implements subcommands.Command for the "closed" command.
type Closed struct{}

// Name implements subcommands.Command.Name.
func (*Closed) Name() string { return "closed" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Closed) Synopsis() string { return "convert a range to one including its end" }

// Usage implements subcommands.Command.Usage.
func (*Closed) Usage() string { return "closed [--] <range>\n" + dashUsage }

// SetFlags implements subcommands.Command.SetFlags.
func (*Closed) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Closed) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	env := args[0].(*env)
	out, err := env.calc.Closed(f.Arg(0))
	if err != nil {
		return env.fail(err)
	}
	env.print([]string{out})
	return subcommands.ExitSuccess
}

// env is passed to every command.
type env struct {
	calc calculator
	out  io.Writer
	log  logrus.FieldLogger
}

func (e *env) print(rr []string) {
	e.log.WithField("count", len(rr)).Debug("result")
	for _, r := range rr {
		fmt.Fprintln(e.out, r)
	}
}

func (e *env) fail(err error) subcommands.ExitStatus {
	e.log.WithError(err).Error("command failed")
	return subcommands.ExitFailure
}
