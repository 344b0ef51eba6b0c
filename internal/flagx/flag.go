// Package flagx lets independent loaders (JSON file, .env file, flags) each
// pick out their own flags from os.Args without tripping over the others.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags (and their values) from args.
//
// Both "-c conf.json" and "--config=conf.json" forms are recognised. A token
// that starts with "-" is never consumed as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFileFlag returns the JSON config path given via -c or -config,
// or "" when neither is present.
func ConfigFileFlag() string {
	return lookupString(os.Args[1:], "config", "c")
}

// EnvFileFlag returns the dotenv path given via -env, or "".
func EnvFileFlag() string {
	return lookupString(os.Args[1:], "env")
}

// lookupString parses a single string flag that may be spelled under
// several names. When repeated, the last occurrence wins.
func lookupString(args []string, names ...string) string {
	var value string

	allowed := make([]string, 0, len(names)*2)
	for _, n := range names {
		allowed = append(allowed, "-"+n, "--"+n)
	}

	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	fs.SetOutput(discard{})
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(args, allowed))

	return value
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
