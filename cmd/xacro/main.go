package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/xacro-go/xacro"
	"github.com/xacro-go/xacro/internal/cli"
	"github.com/xacro-go/xacro/internal/diag"
	"github.com/xacro-go/xacro/internal/run"
)

var version = "dev"

// engine is the macro expansion engine this front-end drives. The engine is
// an external collaborator; integrating builds assign their implementation
// here. Argument resolution, remapping extraction and diagnostics all work
// without one.
var engine xacro.Engine = func(inputFile string, opts xacro.Options) error {
	return errors.New("no processing engine linked into this build")
}

func main() {
	opts, input, err := cli.Parse(os.Args[1:], true)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			fmt.Fprintln(os.Stdout, cli.Usage())
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrVersion) {
			fmt.Fprintf(os.Stdout, "xacro %s\n", versionString())
			os.Exit(0)
		}
		diag.Error(err.Error())
		var uerr *cli.UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, cli.Usage())
		}
		os.Exit(2)
	}

	os.Exit(run.Run(engine, opts, input))
}

func versionString() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	if info.Main.Version == "" || info.Main.Version == "(devel)" {
		return version
	}
	return info.Main.Version
}
