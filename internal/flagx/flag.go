// Package flagx contains helpers for parsing command-line flags in layers.
// Each configuration layer picks out only the flags it owns and leaves the
// rest of os.Args for other layers, so independent flag sets never collide.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Filter returns the subset of args that belongs to the given flag names,
// keeping values in both the "-f value" and "--flag=value" forms.
func Filter(args []string, names ...string) []string {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		// "--flag=value" travels as a single argument.
		if name, _, found := strings.Cut(arg, "="); found {
			if known[name] {
				out = append(out, arg)
			}
			continue
		}

		if known[arg] {
			out = append(out, arg)
			// A following argument that does not look like a flag is
			// this flag's value.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				out = append(out, args[i+1])
				i++
			}
		}
	}
	return out
}

// ConfigFilePath extracts the JSON config file path given via -c or -config.
// Only these two flags are parsed; everything else in os.Args is ignored.
// Returns the empty string when neither flag is present.
func ConfigFilePath() string {
	var path string

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(Filter(os.Args[1:], "-c", "-config"))

	return path
}
