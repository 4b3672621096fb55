// Package flagx lets several configuration layers share one argv without
// tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns a slice of command-line arguments that only contains
// the allowed flags (and their values) specified in allowedFlags.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      -config=conf.json
//
// Parameters:
//
//	args         : the command-line arguments (usually os.Args[1:])
//	allowedFlags : list of allowed flag names (e.g. []string{"-c", "-config"})
//
// The result is never nil. A separate value is taken only when the next
// argument does not start with "-", so it may be a bool flag's neighbour;
// callers that own bool flags should check for leftover arguments.
func FilterArgs(args []string, allowedFlags []string) []string {
	// Set of allowed names for O(1) lookup.
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// Case 1: "-flag=value", kept whole when the name is allowed.
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		// Case 2: "-flag" with its value, if any, in the next argument.
		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++ // skip the value on the next iteration
			}
		}
	}

	return filtered
}

// ConfigFileFlag extracts the config file path given with -c or -config.
// It returns "" when neither is present.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
