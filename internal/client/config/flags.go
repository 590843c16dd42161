package config

import (
	"flag"
	"os"

	"github.com/cityzen/tripbuddy/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -d, -l and -m are looked at; other arguments are left for the other
// loaders. A malformed flag panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Currency, "m", cfg.Currency, "currency shown next to budgets")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
