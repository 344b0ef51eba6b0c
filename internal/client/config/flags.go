package config

import (
	"flag"
	"os"
	"time"

	"github.com/ethiocareer/careercli/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed
// here are considered so that -c/-env and REPL arguments do not clash.
// A malformed value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-ai", "-d", "-s", "-r", "-p", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.AIChatURL, "ai", cfg.AIChatURL, "AI chat endpoint URL")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (sqlite|redis)")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	pollInterval := fs.Int("p", int(cfg.PollInterval.Seconds()), "notification poll interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "API request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// duration flags are whole seconds; an unset flag keeps the finer
	// value loaded from env or JSON
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.PollInterval = time.Duration(*pollInterval) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
