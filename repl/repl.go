package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"
)

// ErrUnknownCommand is returned when the input names no registered command.
var ErrUnknownCommand = errors.New("command not recognized. Type `help` for a list of commands")

type (
	// REPL is a read-eval-print loop used to drive the password generator
	// interactively.
	REPL struct {
		prompt   string
		commands map[string]Command
		input    io.Reader
		output   io.Writer

		mu       sync.Mutex
		rl       *readline.Instance
		stopfunc func()
		stopOnce sync.Once
	}

	// Command is a command that can be registered with the REPL. It consists
	// of a name, an action that is run when the name is input to the REPL, and
	// a usage string.
	Command struct {
		Name   string
		Action ActionFunc
		Usage  string
	}

	// ActionFunc is the action run for a command. It receives the arguments
	// following the command name and returns the text to print, or an error.
	ActionFunc func([]string) (string, error)
)

// New instantiates a new REPL using the provided `prompt`, reading from
// stdin and writing to stdout.
func New(prompt string) *REPL {
	return NewWithIO(prompt, os.Stdin, os.Stdout)
}

// NewWithIO instantiates a REPL that reads from `in` and writes to `out`.
func NewWithIO(prompt string, in io.Reader, out io.Writer) *REPL {
	r := &REPL{
		commands: make(map[string]Command),
		prompt:   prompt,
		input:    in,
		output:   out,
	}

	r.AddCommand(Command{
		Name:  "help",
		Usage: "help: displays available commands and their usage",
		Action: func(args []string) (string, error) {
			return r.Usage(), nil
		},
	})

	r.AddCommand(Command{
		Name:  "exit",
		Usage: "exit: exit the interactive prompt",
		Action: func(args []string) (string, error) {
			return "", r.Stop()
		},
	})

	r.AddCommand(Command{
		Name:  "clear",
		Usage: "clear: clear the terminal",
		Action: func(args []string) (string, error) {
			if _, err := readline.ClearScreen(r.output); err != nil {
				return "", err
			}
			return "", nil
		},
	})

	return r
}

// OnStop registers a function to be called when the REPL stops. It runs at
// most once, whether the REPL is stopped by Stop, an interrupt, or the end
// of its input.
func (r *REPL) OnStop(sf func()) {
	r.stopfunc = sf
}

// Usage returns the usage of every command, sorted by name.
func (r *REPL) Usage() string {
	names := r.names()
	var b strings.Builder
	for _, name := range names {
		b.WriteString(r.commands[name].Usage)
		b.WriteString("\n")
	}
	return b.String()
}

func (r *REPL) names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddCommand registers the command provided in `cmd` with the REPL,
// replacing any command with the same name.
func (r *REPL) AddCommand(cmd Command) {
	r.commands[cmd.Name] = cmd
}

func (r *REPL) completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, name := range r.names() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

// eval evaluates a line that was input to the REPL.
func (r *REPL) eval(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, exists := r.commands[args[0]]
	if !exists {
		return "", ErrUnknownCommand
	}

	return cmd.Action(args[1:])
}

// Stop stops a running Loop and calls the OnStop function.
func (r *REPL) Stop() error {
	r.runStop()
	return r.closeReadline()
}

func (r *REPL) closeReadline() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rl == nil {
		return nil
	}
	err := r.rl.Close()
	r.rl = nil
	return err
}

func (r *REPL) runStop() {
	r.stopOnce.Do(func() {
		if r.stopfunc != nil {
			r.stopfunc()
		}
	})
}

// Loop starts the Read-Eval-Print loop. It returns when the input is
// exhausted, the user interrupts, or Stop is called.
func (r *REPL) Loop() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       r.prompt,
		AutoComplete: r.completer(),
		Stdin:        io.NopCloser(r.input),
		Stdout:       r.output,
	})
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.rl = rl
	r.mu.Unlock()
	defer r.closeReadline()
	defer r.runStop()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		res, err := r.eval(line)
		if err != nil {
			fmt.Fprintln(r.output, err.Error())
			continue
		}
		fmt.Fprint(r.output, res)
	}
	return nil
}
