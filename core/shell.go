package core

import (
	"io"
	"log"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/minsh/minsh/core/host"
)

// Name prefixes every error message the interpreter reports.
const Name = "minsh"

// defaultPrompt is emitted before each read. There is no prompt
// customization.
const defaultPrompt = "> "

var promptColor = color.New(color.FgGreen, color.Bold)

// Signal tells the dispatch loop whether to keep prompting after a command.
type Signal int

const (
	// Continue keeps the loop prompting.
	Continue Signal = iota
	// Stop terminates the loop.
	Stop
)

// LineReader acquires one line of operator input per call, blocking until a
// full line is available or input ends.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

var _ LineReader = (*readline.Instance)(nil)

// Shell is an interactive command interpreter over a host OS.
type Shell struct {
	Host   host.OS
	Reader LineReader

	// Quit stops the dispatch loop before the next prompt.
	Quit bool
}

// NewShell returns a Shell that reads lines from the host's stdin.
func NewShell(hostOS host.OS) (*Shell, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(hostOS.Stdin()),
		Stdout: hostOS.Stdout(),
		Stderr: hostOS.Stderr(),
		FuncGetWidth: func() int {
			return hostOS.GetPTY().Width
		},
		FuncIsTerminal: func() bool {
			return hostOS.GetPTY().IsPTY
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{Host: hostOS, Reader: rl}, nil
}

// prompt returns the fixed prompt, colored when a terminal is attached.
func (s *Shell) prompt() string {
	if s.Host.GetPTY().IsPTY {
		return promptColor.Sprint(defaultPrompt)
	}
	return defaultPrompt
}

// Run prompts, reads and dispatches commands until the operator exits or
// input is closed. At most one command is ever outstanding: the loop blocks
// on each dispatch before prompting again.
func (s *Shell) Run() {
	for !s.Quit {
		s.Reader.SetPrompt(s.prompt())
		line, err := s.Reader.Readline()

		switch {
		case err == io.EOF:
			return // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		case len(line) == 0:
			continue // empty line

		default:
			if s.dispatch(SplitLine(line)) == Stop {
				s.Quit = true
			}
		}
	}
}

// dispatch runs one tokenized command and reports whether to keep prompting.
// A vector with no command name is a no-op cycle and never reaches the
// launcher.
func (s *Shell) dispatch(args []string) Signal {
	if len(args) == 0 {
		return Continue
	}

	if builtin, ok := AllBuiltins[args[0]]; ok {
		return builtin.Main(s, args)
	}

	return s.runProgram(args)
}

// Close releases the line reader.
func (s *Shell) Close() error {
	return s.Reader.Close()
}
