// Package host abstracts the operating system surface the interpreter
// drives: standard streams, the working directory, terminal information and
// launching external programs.
package host

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"golang.org/x/term"
)

// IO holds the standard streams of an execution context.
type IO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// PTY describes the terminal attached to the interpreter, if any.
type PTY struct {
	Width  int
	Height int
	IsPTY  bool
}

// ProcState is the terminal state of a child process: it either exited on
// its own or was killed by a signal. A child that is merely stopped never
// produces a ProcState.
type ProcState struct {
	// PID of the child.
	PID int
	// ExitCode of the child, or -1 if it was killed.
	ExitCode int
	// Signaled reports whether the child was killed rather than exiting.
	Signaled bool
}

// OS is the host platform the interpreter runs against.
type OS interface {
	IO

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// Chdir changes the working directory. All subsequent relative path
	// resolution, including by child processes, uses the new directory.
	Chdir(dir string) error

	// GetPTY reports the dimensions and nature of the attached terminal.
	GetPTY() PTY

	// Run starts the program named by args[0], resolved against the
	// system's executable search path, with args[1:] passed verbatim and
	// the interpreter's standard streams attached. It blocks until the
	// child reaches a terminal state. args must be non-empty.
	//
	// A non-nil error means the child never started (the name didn't
	// resolve or process creation failed); a child that ran returns its
	// ProcState and a nil error whatever its exit code.
	Run(args []string) (ProcState, error)
}

// NewOS returns the real operating system.
func NewOS() OS {
	return &systemOS{}
}

type systemOS struct{}

var _ OS = (*systemOS)(nil)

func (*systemOS) Stdin() io.ReadCloser   { return os.Stdin }
func (*systemOS) Stdout() io.WriteCloser { return os.Stdout }
func (*systemOS) Stderr() io.WriteCloser { return os.Stderr }

func (*systemOS) Getwd() (string, error) { return os.Getwd() }
func (*systemOS) Chdir(dir string) error { return os.Chdir(dir) }

// GetPTY queries the terminal on every call so window resizes are picked up
// by the next prompt.
func (*systemOS) GetPTY() PTY {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return PTY{}
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return PTY{IsPTY: true}
	}

	return PTY{Width: width, Height: height, IsPTY: true}
}

// Run implements OS.Run on top of os/exec. Wait returns only once the child
// has exited or been killed; a child that is stopped by a signal keeps the
// wait alive until it terminates for real.
func (o *systemOS) Run(args []string) (ProcState, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// The child never reached a terminal state because it never
		// existed: path lookup or process creation failed.
		return ProcState{}, err
	}

	return procState(cmd.ProcessState), nil
}

func procState(ps *os.ProcessState) ProcState {
	return ProcState{
		PID:      ps.Pid(),
		ExitCode: ps.ExitCode(),
		Signaled: !ps.Exited(),
	}
}
