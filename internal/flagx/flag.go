// Package flagx lets independent config loaders each parse only the
// command-line flags they own, without tripping over the others.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args made of allowedFlags and their values.
//
// Two forms are recognised:
//
//	-c conf.json          flag and value as separate arguments
//	--config=conf.json    flag and value joined with '='
//
// A value is taken from the next argument only if it does not start with '-'.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, joined := strings.Cut(arg, "="); joined && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFileFlag extracts the JSON config path given with -c or -config.
// It returns "" when neither is present; the last occurrence wins.
func ConfigFileFlag(args []string) string {
	return stringFlag(args, "json", "config", "c", "Path to config file")
}

// EnvFileFlag extracts the dotenv file path given with -e or -env.
func EnvFileFlag(args []string) string {
	return stringFlag(args, "env", "env", "e", "Path to .env file")
}

func stringFlag(args []string, set, long, short, usage string) string {
	var value string

	filtered := FilterArgs(args, []string{"-" + short, "-" + long, "--" + short, "--" + long})

	fs := flag.NewFlagSet(set, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&value, long, "", usage)
	fs.StringVar(&value, short, "", usage+" (short)")
	_ = fs.Parse(filtered)

	return value
}
