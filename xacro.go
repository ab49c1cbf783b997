// Package xacro is the command-line front-end of an XML macro expansion
// engine: it resolves arguments and name remappings into an Options record
// and drives an Engine against either the real stdout or a capture buffer.
// The expansion engine itself is an external collaborator plugged in behind
// the Engine contract.
package xacro

// Options is the fully-resolved configuration for a single invocation.
//
// It is constructed once per invocation (by cli.Parse or by a Process
// caller) and never mutated afterwards.
type Options struct {
	// Output is the destination file. Empty means the process stdout.
	Output string

	// JustDeps makes the engine print file dependencies instead of the
	// expanded document.
	JustDeps bool

	// InOrder is always true after resolution. The flag that once
	// controlled it is retained only to print an obsolescence notice.
	InOrder bool

	// XacroNS toggles namespace preservation and is passed through to the
	// engine untouched.
	XacroNS bool

	// Verbosity ranges over 0 (quiet) to 4 (trace everything); 1 is the
	// default, showing warnings and error locations.
	Verbosity int

	// Mappings holds name remappings extracted from name:=value arguments.
	Mappings map[string]string
}

// Engine processes inputFile according to opts. When opts.Output is empty
// it must write to the process stdout (os.Stdout resolved at call time, so
// that Process can capture it).
type Engine func(inputFile string, opts Options) error

// DefaultOptions returns the options an invocation starts from. The
// mapping is a fresh empty map on every call.
func DefaultOptions() Options {
	return Options{
		InOrder:   true,
		XacroNS:   true,
		Verbosity: 1,
		Mappings:  map[string]string{},
	}
}
