// Command dcmdparse parses a diagnostic-command line against argument
// declarations given as flags and prints the normalized values.
//
//	dcmdparse -arg interval:nanotime:0 -arg size:memorysize 'interval=5ms size=2k'
//	interval=5000000
//	size=2048
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/justjake/go-dcmd/cli"
	"github.com/justjake/go-dcmd/dcmd"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/kr/pretty"
)

const maxArgs = 64

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	var (
		args     []dcmd.Argument
		lenient  bool
		sep      string
		oneLine  bool
		verbose  bool
		helpArgs bool
	)

	fs := flag.NewFlagSet("dcmdparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(cli.Max(maxArgs, cli.Repeated(cli.ArgumentFlag, &args)), "arg",
		"Declare an argument as `name:type[:default]`; put ! after the type to make it mandatory. Pass more than once.")
	fs.BoolVar(&lenient, "lenient", false, "Ignore undeclared arguments instead of failing")
	fs.StringVar(&sep, "sep", "", "Argument `separator`; any whitespace if empty")
	fs.BoolVar(&oneLine, "line", false, "Print the values as a single escaped command line")
	fs.BoolVar(&verbose, "v", false, "Log debug output to stderr")
	fs.BoolVar(&helpArgs, "help-args", false, "Describe the declared arguments and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: dcmdparse [flags] [command line]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("invoked", "argv", shellquote.Join(argv...))

	if helpArgs {
		usage := &cli.Usage{
			Description: cli.Description{
				Name:  "dcmdparse",
				Short: "Parse a diagnostic command line.",
			},
			Args: args,
		}
		usage.Overview(stdout)
		return exitOK
	}

	if fs.NArg() > 1 {
		logger.Error("expected at most one command line; quote it", "got", fs.NArg())
		return exitUsage
	}

	p := dcmd.Parser{Lenient: lenient}
	if sep != "" {
		if utf8.RuneCountInString(sep) != 1 {
			logger.Error("separator must be a single character", "sep", sep)
			return exitUsage
		}
		p.Separator, _ = utf8.DecodeRuneInString(sep)
	}

	line := fs.Arg(0)
	logger.Debug("parsing", "line", line, "args", pretty.Sprintf("%# v", args))

	values, err := p.Parse(line, args)
	if err != nil {
		logger.Error("parse failed", "err", err)
		if errors.Is(err, dcmd.ErrInvalidArgument) {
			return exitInvalid
		}
		return exitUsage
	}
	logger.Debug("parsed", "values", pretty.Sprintf("%# v", values))

	if oneLine {
		fmt.Fprintln(stdout, values)
		return exitOK
	}
	for _, v := range values {
		fmt.Fprintf(stdout, "%s=%s\n", v.Name, v.Value)
	}
	return exitOK
}
