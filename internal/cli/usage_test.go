package cli

import (
	"strings"
	"testing"
)

func TestUsageIncludesUsageHeader(t *testing.T) {
	text := Usage()
	if !strings.Contains(text, "Usage:") {
		t.Fatalf("Usage() missing Usage header")
	}
	if !strings.Contains(text, "xacro") {
		t.Fatalf("Usage() missing xacro command")
	}
}

func TestUsageCoversFlagSurface(t *testing.T) {
	text := Usage()
	for _, flag := range []string{"--output", "--deps", "--inorder", "--verbosity", "-q", "-v", "name:=value"} {
		if !strings.Contains(text, flag) {
			t.Fatalf("Usage() missing %q", flag)
		}
	}
}
