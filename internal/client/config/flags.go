package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tempchat/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-r int      message retention window in hours (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	retentionHours := fs.Int("r", int(cfg.RetentionWindow.Hours()), "message retention window (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RetentionWindow = time.Duration(*retentionHours) * time.Hour
}
