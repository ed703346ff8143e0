package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/portfolioadmin/internal/flagx"
)

// parseFlags overlays cfg with command-line flags (see the package doc for
// the list). Only the flags handled here are picked out of os.Args, so the
// config-file flag can be parsed independently.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d", "-l", "-t", "-b", "-g", "-e", "-k", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "session database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	toast := fs.Int("t", int(cfg.ToastDuration.Seconds()), "toast display time (in seconds)")

	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for backups")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3AccessKey, "k", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "s", cfg.S3SecretKey, "S3 secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t overrides the JSON value only when passed.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.ToastDuration = time.Duration(*toast) * time.Second
		}
	})
}
