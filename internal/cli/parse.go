package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/xacro-go/xacro"
	"github.com/xacro-go/xacro/internal/diag"
)

var ErrHelp = errors.New("help requested")
var ErrVersion = errors.New("version requested")

// UsageError reports an invocation the flag surface cannot accept. The CLI
// entrypoint prints it colorized together with the usage text and exits
// non-zero.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

// quietValue, verboseValue and verbosityValue all write the same field, so
// pflag's left-to-right application yields last-applied-wins across -q,
// -v and --verbosity. A -v increments whatever value is in place at its
// position.
type quietValue struct{ level *int }

func (quietValue) String() string     { return "false" }
func (quietValue) Type() string       { return "bool" }
func (q quietValue) Set(string) error { *q.level = 0; return nil }

type verboseValue struct{ level *int }

func (verboseValue) String() string     { return "0" }
func (verboseValue) Type() string       { return "count" }
func (v verboseValue) Set(string) error { *v.level++; return nil }

type verbosityValue struct{ level *int }

func (v verbosityValue) String() string { return strconv.Itoa(*v.level) }
func (verbosityValue) Type() string     { return "int" }
func (v verbosityValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid verbosity level %q", s)
	}
	*v.level = n
	return nil
}

// Parse resolves the raw argument vector into Options and the input file.
//
// Remapping arguments are extracted first and never reach flag parsing.
// Exactly one positional argument is required; with requireInput false a
// missing input resolves to "" instead of failing.
func Parse(args []string, requireInput bool) (xacro.Options, string, error) {
	opts := xacro.DefaultOptions()
	var help bool
	var showVersion bool
	var inOrder bool

	mappings, filtered, err := ExtractMappings(args)
	if err != nil {
		return xacro.Options{}, "", err
	}

	fs := pflag.NewFlagSet("xacro", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVarP(&opts.Output, "output", "o", "", "Write output to FILE instead of stdout")
	fs.BoolVar(&opts.JustDeps, "deps", false, "Print file dependencies")
	fs.BoolVarP(&inOrder, "inorder", "i", false, "Process in read order (default, can be omitted)")
	fs.VarP(quietValue{&opts.Verbosity}, "quiet", "q", "Quiet operation, suppressing warnings")
	fs.Lookup("quiet").NoOptDefVal = "true"
	fs.VarP(verboseValue{&opts.Verbosity}, "verbose", "v", "Increase verbosity")
	fs.Lookup("verbose").NoOptDefVal = "+1"
	fs.Var(verbosityValue{&opts.Verbosity}, "verbosity", "Set verbosity level (0-4)")
	fs.BoolVarP(&help, "help", "h", false, "Show help")
	fs.BoolVar(&showVersion, "version", false, "Show version")

	if err := fs.Parse(filtered); err != nil {
		return xacro.Options{}, "", &UsageError{msg: err.Error()}
	}
	if help {
		return xacro.Options{}, "", ErrHelp
	}
	if showVersion {
		return xacro.Options{}, "", ErrVersion
	}

	if inOrder {
		diag.Message("xacro: in-order processing became default in ROS Melodic. You can drop the option.")
	}
	opts.InOrder = true

	input := ""
	if fs.NArg() != 1 {
		if requireInput {
			return xacro.Options{}, "", &UsageError{msg: "expected exactly one input file as argument"}
		}
	} else {
		input = fs.Arg(0)
	}

	opts.Mappings = mappings
	return opts, input, nil
}

func Usage() string {
	return strings.TrimSpace(`Usage:
  xacro [options] <input>

Remappings:
  name:=value                 Remap name to value during processing
  _name:=value                Parameter assignment, ignored by the remapper

Options:
  -o, --output FILE           Write output to FILE instead of stdout
      --deps                  Print file dependencies
  -i, --inorder               Process in read order (default, can be omitted)
  -q, --quiet                 Quiet operation, suppressing warnings
  -v                          Increase verbosity (repeatable)
      --verbosity LEVEL       Set verbosity level:
                                0: quiet, suppressing warnings
                                1: default, showing warnings and error locations
                                2: show stack trace
                                3: log property definitions and usage on top level
                                4: log property definitions and usage on all levels
      --version               Show version
  -h, --help                  Show help
`)
}
