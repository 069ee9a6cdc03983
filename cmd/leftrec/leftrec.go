/*
leftrec is a console utility checking a context-free grammar for left
recursion. Usage is

	leftrec [-v] [-q] [--table] <file>

-v enables debug logging;

-q suppresses normal output, the verdict is reported through the exit code only;

--table renders the grammar as a table instead of plain text;

<file> contains a grammar in the notation parsed by the bnf package.

Exit code is 0 when the grammar is free of left recursion, 1 when left
recursion is found, and 2 on usage or grammar errors.
*/
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/leftrec/leftrec/bnf"
	"github.com/leftrec/leftrec/format"
)

var cli struct {
	Verbose bool   `short:"v" help:"Enable debug logging."`
	Quiet   bool   `short:"q" help:"Report through the exit code only."`
	Table   bool   `help:"Render the grammar as a table."`
	File    string `arg:"" type:"existingfile" help:"Grammar file."`
}

func main() {
	kong.Parse(&cli, kong.Description("Checks a context-free grammar for left recursion."))

	logger := log.NewLogfmtLogger(os.Stderr)
	if cli.Verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	code, e := run(logger)
	if e != nil {
		level.Error(logger).Log("err", e)
		os.Exit(2)
	}
	os.Exit(code)
}

func run(logger log.Logger) (int, error) {
	content, e := os.ReadFile(cli.File)
	if e != nil {
		return 0, errors.Wrapf(e, "cannot read %s", cli.File)
	}

	g, e := bnf.Parse(cli.File, content)
	if e != nil {
		return 0, e
	}
	level.Debug(logger).Log("msg", "grammar parsed", "rules", len(g.Rules()))

	if !cli.Quiet {
		if cli.Table {
			fmt.Println(format.Table(g))
		} else {
			fmt.Print(format.Text(g))
		}
	}

	if cli.Verbose {
		for _, r := range g.Rules() {
			level.Debug(logger).Log("rule", r.Symbol().Text(), "direct", r.HasDirectLeftRecursion())
		}
	}

	recursive, e := g.HasLeftRecursion()
	if e != nil {
		return 0, e
	}

	if !cli.Quiet {
		fmt.Println("Has left recursion?", recursive)
	}
	if recursive {
		return 1, nil
	}
	return 0, nil
}
