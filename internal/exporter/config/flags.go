package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/nimdaved/toolrent/internal/flagx"
)

// parseFlags overlays command-line flags onto config.
//
// Supported flags:
//
//	-e string   comma-separated entity names (e.g. "authority,user")
//	-o string   output directory
//	-indent     pretty-print JSON; compact output needs the -indent=false form
//	-l string   log level
//
// A bool flag never takes a separate value, so "-indent false" leaves
// "false" behind as an argument. Such leftovers are rejected.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-e", "-o", "-indent", "-l"})

	fs := flag.NewFlagSet("samples", flag.ContinueOnError)

	entities := fs.String("e", strings.Join(config.Entities, ","), "entities to export")
	fs.StringVar(&config.OutputDir, "o", config.OutputDir, "output directory")
	fs.BoolVar(&config.Indent, "indent", config.Indent, "pretty-print JSON")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q (use -flag=value for bool flags)", rest[0])
	}

	config.Entities = splitList(*entities)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
