package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/studyprep/internal/flagx"
)

// parseFlags populates cfg from the command line. Only the flags below are
// looked at; the rest of args is left to other loaders.
//
//	-a string   API base URL
//	-d string   database path
//	-t int      request timeout (seconds)
//	-l string   log level
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "StudyPrep API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t overrides only when given, so a sub-second value from JSON survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
