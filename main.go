package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/avahowell/passgen/config"
	"github.com/avahowell/passgen/repl"
	"github.com/avahowell/passgen/secureclip"
)

const usage = `Usage: passgen [flags]

Generates random passwords and prints them one per line. The strength
estimate is printed to stderr. Use -i for an interactive prompt or -ui for
the terminal dashboard.
`

func die(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func startRepl(s *session) error {
	r := repl.New("passgen > ")
	r.AddCommand(genCmd(s))
	r.AddCommand(setCmd(s))
	r.AddCommand(showCmd(s))
	r.AddCommand(strengthCmd(s))
	r.AddCommand(exportCmd(s))
	r.AddCommand(clipCmd(s))
	r.OnStop(func() {
		if err := secureclip.Clear(); err != nil {
			s.log.Warn("could not clear clipboard", "error", err)
		}
	})
	return r.Loop()
}

// runOnce generates a single batch, writing the passwords to stdout and the
// strength estimate to stderr, then exports and copies it if requested.
func runOnce(s *session, save, toClipboard bool, stdout, stderr io.Writer) error {
	res, err := s.generate()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, res.Text())
	fmt.Fprintln(stderr, res.Report.Summary())

	if save {
		if _, err := s.export(); err != nil {
			return err
		}
	}
	if toClipboard {
		if _, err := s.copyLast(0); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg, err := config.Load(os.Args[1:], os.Environ(), os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(0)
	}
	if err != nil {
		die(err)
	}

	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if cfg.Seed != 0 {
		log.Warn("using a deterministic seed, generated passwords are not secret", "seed", cfg.Seed)
	}
	secureclip.SetTimeout(cfg.ClipTimeout)

	s := newSession(cfg, log)
	switch {
	case cfg.Interactive:
		err = startRepl(s)
	case cfg.Dashboard:
		err = runUI(s)
	default:
		err = runOnce(s, cfg.Export, cfg.Clip, os.Stdout, os.Stderr)
		if err == nil && cfg.Clip {
			// the clipboard must be cleared before the process exits
			timeout := secureclip.Timeout()
			log.Info("passwords copied to clipboard", "clear_after", timeout)
			time.Sleep(timeout)
			err = secureclip.Clear()
		}
	}
	if err != nil {
		die(err)
	}
}
