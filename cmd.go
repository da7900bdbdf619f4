package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/avahowell/passgen/config"
	"github.com/avahowell/passgen/export"
	"github.com/avahowell/passgen/pwgen"
	"github.com/avahowell/passgen/repl"
	"github.com/avahowell/passgen/secureclip"
)

// session is the state shared by the interactive commands and the
// dashboard: the current policy and the last generated batch.
type session struct {
	gen      *pwgen.Generator
	req      pwgen.Request
	last     pwgen.Result
	exporter *export.Writer
	clip     func(string) error
	log      *slog.Logger
}

func newSession(cfg config.Config, log *slog.Logger) *session {
	return &session{
		gen:      pwgen.New(cfg.Source()),
		req:      cfg.Request(),
		exporter: export.NewWriter(cfg.ExportDir, export.SystemClock{}),
		clip:     secureclip.Clip,
		log:      log,
	}
}

func (s *session) generate() (pwgen.Result, error) {
	res, err := s.gen.GenerateBatch(s.req)
	if err != nil {
		return pwgen.Result{}, err
	}
	s.last = res
	s.log.Debug("generated passwords",
		"count", len(res.Passwords),
		"pool_size", res.Report.PoolSize,
		"bits", res.Report.Bits)
	return res, nil
}

func (s *session) export() (string, error) {
	if len(s.last.Passwords) == 0 {
		return "", fmt.Errorf("nothing to export, run gen first")
	}
	path, err := s.exporter.Write(s.last.Passwords)
	if err != nil {
		return "", err
	}
	s.log.Info("passwords exported", "path", path, "count", len(s.last.Passwords))
	return path, nil
}

// copyLast copies the password at the 1-based index `n` of the last batch,
// or the whole batch if n is 0.
func (s *session) copyLast(n int) (string, error) {
	if len(s.last.Passwords) == 0 {
		return "", fmt.Errorf("nothing to copy, run gen first")
	}
	text, label := s.last.Text(), fmt.Sprintf("%v passwords", len(s.last.Passwords))
	if n != 0 {
		if n < 1 || n > len(s.last.Passwords) {
			return "", fmt.Errorf("no password %v in the last batch of %v", n, len(s.last.Passwords))
		}
		text, label = s.last.Passwords[n-1], fmt.Sprintf("password %v", n)
	}
	if err := s.clip(text); err != nil {
		return "", err
	}
	return label, nil
}

func (s *session) set(option, value string) error {
	switch option {
	case "length", "count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%v must be a number: %w", option, err)
		}
		if option == "length" {
			s.req.Length = n
		} else {
			s.req.Count = n
		}
		return nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%v must be true or false: %w", option, err)
	}
	switch option {
	case "lower":
		s.req.Lower = b
	case "upper":
		s.req.Upper = b
	case "digits":
		s.req.Digits = b
	case "special":
		s.req.Special = b
	case "avoid-ambiguous":
		s.req.AvoidAmbiguous = b
	case "start-letter":
		s.req.StartWithLetter = b
	default:
		return fmt.Errorf("unknown option %q. See help for usage", option)
	}
	return nil
}

func (s *session) settings() string {
	r := s.req
	var b strings.Builder
	fmt.Fprintf(&b, "length: %v\n", r.Length)
	fmt.Fprintf(&b, "count: %v\n", r.Count)
	fmt.Fprintf(&b, "lower: %v\n", r.Lower)
	fmt.Fprintf(&b, "upper: %v\n", r.Upper)
	fmt.Fprintf(&b, "digits: %v\n", r.Digits)
	fmt.Fprintf(&b, "special: %v\n", r.Special)
	fmt.Fprintf(&b, "avoid-ambiguous: %v\n", r.AvoidAmbiguous)
	fmt.Fprintf(&b, "start-letter: %v\n", r.StartWithLetter)
	fmt.Fprintf(&b, "export dir: %v\n", s.exporter.Dir())
	return b.String()
}

var (
	genCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "gen",
			Action: gen(s),
			Usage:  "gen [count]: generate a batch of passwords using the current settings. [count] overrides the batch size once.",
		}
	}

	setCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "set",
			Action: set(s),
			Usage:  "set [option] [value]: change a setting. Options: length, count, lower, upper, digits, special, avoid-ambiguous, start-letter",
		}
	}

	showCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "show",
			Action: show(s),
			Usage:  "show: display the current settings",
		}
	}

	strengthCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "strength",
			Action: strength(s),
			Usage:  "strength: display the strength estimate of the last batch",
		}
	}

	exportCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "export",
			Action: exportBatch(s),
			Usage:  "export: write the last batch to a timestamped file in the export directory",
		}
	}

	clipCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "clip",
			Action: clip(s),
			Usage:  "clip [n]: copy password n of the last batch, or the whole batch, to the clipboard",
		}
	}
)

func gen(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) > 1 {
			return "", fmt.Errorf("gen takes at most one argument. See help for usage.")
		}
		if len(args) == 1 {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("count must be a number: %w", err)
			}
			saved := s.req.Count
			s.req.Count = count
			defer func() { s.req.Count = saved }()
		}

		res, err := s.generate()
		if err != nil {
			return "", err
		}
		return res.Text() + "\n\n" + res.Report.Summary() + "\n", nil
	}
}

func set(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 2 {
			return "", fmt.Errorf("set requires 2 arguments. See help for usage.")
		}
		if err := s.set(args[0], args[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("%v set to %v\n", args[0], args[1]), nil
	}
}

func show(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		return s.settings(), nil
	}
}

func strength(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(s.last.Passwords) == 0 {
			return "", fmt.Errorf("nothing generated yet, run gen first")
		}
		return s.last.Report.Summary() + "\n", nil
	}
}

func exportBatch(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		path, err := s.export()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%v passwords saved to %v\n", len(s.last.Passwords), path), nil
	}
}

func clip(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) > 1 {
			return "", fmt.Errorf("clip takes at most one argument. See help for usage.")
		}
		n := 0
		if len(args) == 1 {
			var err error
			if n, err = strconv.Atoi(args[0]); err != nil {
				return "", fmt.Errorf("n must be a number: %w", err)
			}
			if n == 0 {
				return "", fmt.Errorf("passwords are numbered from 1")
			}
		}
		label, err := s.copyLast(n)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%v copied to clipboard, will clear in %v\n", label, secureclip.Timeout()), nil
	}
}
