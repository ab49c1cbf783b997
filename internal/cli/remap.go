package cli

import (
	"fmt"
	"strings"
)

// remapDelim separates source and destination in a remapping argument,
// as in name:=value.
const remapDelim = ":="

// ExtractMappings splits the raw argument list into name remappings and the
// remaining arguments. Every token containing the remap delimiter is
// consumed here and never reaches flag parsing; the rest pass through in
// their original order.
//
// A delimiter-bearing token must split into exactly two parts that are
// non-empty after trimming. A source of the form _name (single leading
// underscore, length above one) is a parameter assignment: the token is
// consumed but not recorded. When the same source appears twice, the last
// occurrence wins.
func ExtractMappings(args []string) (map[string]string, []string, error) {
	mappings := map[string]string{}
	filtered := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.Contains(arg, remapDelim) {
			filtered = append(filtered, arg)
			continue
		}
		parts := strings.Split(arg, remapDelim)
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("invalid remapping argument %q", arg)
		}
		src := strings.TrimSpace(parts[0])
		dst := strings.TrimSpace(parts[1])
		if src == "" || dst == "" {
			return nil, nil, fmt.Errorf("invalid remapping argument %q", arg)
		}
		if len(src) > 1 && src[0] == '_' && src[1] != '_' {
			// Parameter assignment, not a name remapping.
			continue
		}
		mappings[src] = dst
	}
	return mappings, filtered, nil
}
