// Package config loads the generator's settings from the environment and
// the command line.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/avahowell/passgen/pwgen"
)

// Config holds every setting of the command line tool. Environment values
// are applied first and command-line flags override them.
type Config struct {
	Length          int           `env:"PWGEN_LENGTH" envDefault:"12"`
	Count           int           `env:"PWGEN_COUNT" envDefault:"5"`
	Lower           bool          `env:"PWGEN_LOWER" envDefault:"true"`
	Upper           bool          `env:"PWGEN_UPPER" envDefault:"true"`
	Digits          bool          `env:"PWGEN_DIGITS" envDefault:"true"`
	Special         bool          `env:"PWGEN_SPECIAL" envDefault:"true"`
	AvoidAmbiguous  bool          `env:"PWGEN_AVOID_AMBIGUOUS" envDefault:"true"`
	StartWithLetter bool          `env:"PWGEN_START_WITH_LETTER" envDefault:"false"`
	ExportDir       string        `env:"PWGEN_EXPORT_DIR"`
	ClipTimeout     time.Duration `env:"PWGEN_CLIP_TIMEOUT" envDefault:"30s"`
	LogLevel        string        `env:"PWGEN_LOG_LEVEL" envDefault:"info"`

	// Seed makes generation reproducible. Zero means crypto/rand.
	Seed uint64

	Interactive bool
	Dashboard   bool
	Export      bool
	Clip        bool
}

// Load reads the configuration from `environ` (as returned by os.Environ)
// and then from the command-line arguments `args`. flag.ErrHelp is returned
// if -h was given.
func Load(args []string, environ []string, usage io.Writer) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = os.TempDir()
	}

	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.IntVar(&cfg.Length, "length", cfg.Length, "password length, clamped to [4,128]")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of passwords, clamped to [1,200]")
	fs.BoolVar(&cfg.Lower, "lower", cfg.Lower, "include lowercase letters (a-z)")
	fs.BoolVar(&cfg.Upper, "upper", cfg.Upper, "include uppercase letters (A-Z)")
	fs.BoolVar(&cfg.Digits, "digits", cfg.Digits, "include digits (0-9)")
	fs.BoolVar(&cfg.Special, "special", cfg.Special, "include special characters (!@#$...)")
	fs.BoolVar(&cfg.AvoidAmbiguous, "avoid-ambiguous", cfg.AvoidAmbiguous, "avoid ambiguous characters (O/0, l/1, S/5...)")
	fs.BoolVar(&cfg.StartWithLetter, "start-letter", cfg.StartWithLetter, "start every password with a letter")
	fs.StringVar(&cfg.ExportDir, "dir", cfg.ExportDir, "directory exported password files are written to")
	fs.DurationVar(&cfg.ClipTimeout, "clip-timeout", cfg.ClipTimeout, "how long copied passwords stay on the clipboard")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "deterministic seed for testing; never use for real passwords")
	fs.BoolVar(&cfg.Interactive, "i", false, "start an interactive prompt")
	fs.BoolVar(&cfg.Dashboard, "ui", false, "start the terminal dashboard")
	fs.BoolVar(&cfg.Export, "export", false, "write the generated passwords to a timestamped file")
	fs.BoolVar(&cfg.Clip, "clip", false, "copy the generated passwords to the clipboard")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.Interactive && cfg.Dashboard {
		return Config{}, fmt.Errorf("-i and -ui cannot be combined")
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Request returns the password policy described by the configuration.
func (c Config) Request() pwgen.Request {
	return pwgen.Request{
		Length:          c.Length,
		Count:           c.Count,
		Lower:           c.Lower,
		Upper:           c.Upper,
		Digits:          c.Digits,
		Special:         c.Special,
		AvoidAmbiguous:  c.AvoidAmbiguous,
		StartWithLetter: c.StartWithLetter,
	}
}

// Source returns the random source selected by the configuration.
func (c Config) Source() pwgen.RandomSource {
	if c.Seed != 0 {
		return pwgen.NewSeededSource(c.Seed)
	}
	return pwgen.CryptoSource{}
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
