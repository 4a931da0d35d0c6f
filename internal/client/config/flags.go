package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/krishi/internal/flagx"
)

// parseFlags overlays cfg with the flags it knows:
//
//	-d string      store DSN
//	-driver string store driver (sqlite, postgres)
//	-l int         log level
//	-lang string   ambient language, e.g. ml_IN.UTF-8
//
// Unknown flags in args are ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-driver", "-l", "-lang"})

	fs := flag.NewFlagSet("krishi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "store DSN")
	fs.StringVar(&cfg.StoreDriver, "driver", cfg.StoreDriver, "store driver (sqlite, postgres)")
	fs.IntVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (-4 debug, 0 info, 4 warn, 8 error)")
	fs.StringVar(&cfg.AmbientLanguage, "lang", cfg.AmbientLanguage, "ambient language")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
