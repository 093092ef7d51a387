package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hbrook/galerie/internal/exhibit"
	"github.com/hbrook/galerie/internal/logging"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

const defaultAPIURL = "https://galerie.hbrook.dev/exhibits.json"

type config struct {
	APIURL   string
	Mirrors  []string
	Link     string
	CacheTTL time.Duration
	Debug    bool

	loggingOptions logging.Options

	Version bool
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".galerie.yaml")

	fs := ff.NewFlagSet("galerie")
	fs.StringVar(&cfg.APIURL, 'a', "api-url", defaultAPIURL, "URL of the exhibit listing API.")
	fs.StringListVar(&cfg.Mirrors, 'm', "mirror", "Mirror base URL to fall back on when the API is unreachable. Can set more than once.")
	fs.StringVar(&cfg.Link, 0, "link", "", "Deep link to restore a previous view, as shown by the share key.")
	fs.DurationVar(&cfg.CacheTTL, 0, "cache-ttl", exhibit.DefaultCacheTTL, "How long a fetched exhibit listing stays fresh.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("GALERIE"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}

	return cfg, nil
}
