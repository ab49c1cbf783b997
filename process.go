package xacro

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// stdoutMu serializes the swap-call-restore sequence in Process. The swap
// targets the process-global os.Stdout, so concurrent captures would
// misattribute each other's output.
var stdoutMu sync.Mutex

// Process runs eng with the process stdout redirected into a buffer and
// returns the captured text. opts.Output is ignored and forced empty so the
// engine writes to the (redirected) stdout; a nil Mappings is replaced with
// a fresh empty map. Diagnostics keep going to the real stderr throughout.
//
// os.Stdout is restored on every exit path, including an engine panic.
// Output the engine writes through a writer cached before the call is not
// captured.
func Process(eng Engine, inputFile string, opts Options) (string, error) {
	opts.Output = ""
	if opts.Mappings == nil {
		opts.Mappings = map[string]string{}
	}

	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("redirect stdout: %w", err)
	}

	var buf bytes.Buffer
	drained := make(chan error, 1)
	go func() {
		_, err := io.Copy(&buf, r)
		r.Close()
		drained <- err
	}()

	orig := os.Stdout
	os.Stdout = w
	restored := false
	restore := func() {
		if restored {
			return
		}
		restored = true
		os.Stdout = orig
		w.Close()
	}
	defer restore()

	engErr := eng(inputFile, opts)

	restore()
	if err := <-drained; err != nil {
		return "", fmt.Errorf("read captured output: %w", err)
	}
	if engErr != nil {
		return "", engErr
	}
	return buf.String(), nil
}
