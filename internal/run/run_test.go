package run

import (
	"errors"
	"testing"

	"github.com/xacro-go/xacro"
)

func TestRunSuccess(t *testing.T) {
	var gotInput string
	eng := func(inputFile string, opts xacro.Options) error {
		gotInput = inputFile
		return nil
	}

	code := Run(eng, xacro.DefaultOptions(), "model.xml")
	if code != 0 {
		t.Fatalf("Run() = %d, want 0", code)
	}
	if gotInput != "model.xml" {
		t.Fatalf("Run() engine input = %q, want %q", gotInput, "model.xml")
	}
}

func TestRunEngineFailure(t *testing.T) {
	eng := func(inputFile string, opts xacro.Options) error {
		return errors.New("boom")
	}

	if code := Run(eng, xacro.DefaultOptions(), "model.xml"); code != 2 {
		t.Fatalf("Run() = %d, want 2", code)
	}
}

func TestRunPassesOptionsThrough(t *testing.T) {
	var seen xacro.Options
	eng := func(inputFile string, opts xacro.Options) error {
		seen = opts
		return nil
	}

	opts := xacro.DefaultOptions()
	opts.Output = "out.xml"
	opts.JustDeps = true
	opts.Mappings = map[string]string{"foo": "bar"}

	if code := Run(eng, opts, "model.xml"); code != 0 {
		t.Fatalf("Run() = %d, want 0", code)
	}
	if seen.Output != "out.xml" || !seen.JustDeps || seen.Mappings["foo"] != "bar" {
		t.Fatalf("Run() engine opts = %+v, want passthrough of resolved options", seen)
	}
}
