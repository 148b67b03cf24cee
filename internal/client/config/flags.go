package config

import (
	"flag"
	"os"
	"time"

	"github.com/oncall-app/oncall-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend (default from Config)
//	-t int      request timeout in milliseconds (default from Config)
//	-d string   path of the local sqlite database (default from Config)
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, so it does not interfere with other parsing stages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend")
	timeoutMs := fs.Int("t", int(cfg.Timeout.Milliseconds()), "request timeout (in milliseconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Timeout = time.Duration(*timeoutMs) * time.Millisecond
}
