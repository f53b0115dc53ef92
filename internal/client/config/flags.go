package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/wepub/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string     API base address
//	-t duration   request timeout
//	-g duration   article generation timeout
//	-s string     credential store file
//	-l string     log level
//	-e            keep the credential in memory only
//	-color string auto, always or never
//
// Only these flags are picked out of os.Args, so other components can define
// their own.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-g", "-s", "-l", "-color"}, "-e")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "API base address")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.DurationVar(&cfg.GenerateTimeout, "g", cfg.GenerateTimeout, "article generation timeout")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "credential store file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "colored output: auto, always or never")
	fs.BoolVar(&cfg.Ephemeral, "e", cfg.Ephemeral, "do not persist the credential")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
