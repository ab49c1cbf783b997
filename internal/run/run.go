// Package run invokes the processing engine for the terminal entrypoint,
// against the real streams designated by the resolved options.
package run

import (
	"github.com/xacro-go/xacro"
	"github.com/xacro-go/xacro/internal/diag"
)

// Run drives eng with the resolved options and returns the process exit
// code. The engine writes to whichever stream opts.Output designates; this
// layer only maps an engine failure to a diagnostic and a non-zero code.
func Run(eng xacro.Engine, opts xacro.Options, input string) int {
	if err := eng(input, opts); err != nil {
		diag.Error(err.Error())
		return 2
	}
	return 0
}
