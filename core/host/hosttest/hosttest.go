// Package hosttest provides a deterministic in-memory host.OS for tests.
package hosttest

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/minsh/minsh/core/host"
)

// ProcessFunc is a fake external program.
type ProcessFunc func(stdio host.IO, args []string) int

// ProcessResolver looks up a fake program by name, returning nil if no
// program with that name exists.
type ProcessResolver func(name string) ProcessFunc

// MapResolver resolves programs from a fixed name-to-function map.
func MapResolver(procs map[string]ProcessFunc) ProcessResolver {
	return func(name string) ProcessFunc {
		return procs[name]
	}
}

// OS implements host.OS against an afero in-memory filesystem and a resolver
// of fake programs, recording everything the interpreter asks it to do.
type OS struct {
	// FS backs working-directory checks.
	FS afero.Fs
	// Dir is the current working directory.
	Dir string
	// Resolver locates fake programs. A nil resolver knows no programs.
	Resolver ProcessResolver
	// PTYInfo is returned by GetPTY.
	PTYInfo host.PTY
	// StartErr, if set, fails every Run before any program starts,
	// simulating a failure to create the child execution context.
	StartErr error

	// Out and Err collect everything written to stdout and stderr.
	Out bytes.Buffer
	Err bytes.Buffer

	// Calls records the argument vector of every Run invocation.
	Calls [][]string

	stdin   io.ReadCloser
	lastPID int
}

var _ host.OS = (*OS)(nil)

// NewOS returns an OS rooted at "/" whose stdin yields the given input.
func NewOS(input string) *OS {
	return &OS{
		FS:    afero.NewMemMapFs(),
		Dir:   "/",
		stdin: io.NopCloser(strings.NewReader(input)),
	}
}

func (o *OS) Stdin() io.ReadCloser   { return o.stdin }
func (o *OS) Stdout() io.WriteCloser { return writeCloser{&o.Out} }
func (o *OS) Stderr() io.WriteCloser { return writeCloser{&o.Err} }

func (o *OS) Getwd() (string, error) { return o.Dir, nil }

// Chdir mirrors the real call: the target must exist and be a directory.
// Relative paths resolve against the current directory.
func (o *OS) Chdir(dir string) error {
	if !path.IsAbs(dir) {
		dir = path.Clean(path.Join(o.Dir, dir))
	}

	stat, err := o.FS.Stat(dir)
	switch {
	case err != nil:
		return err
	case !stat.IsDir():
		return fmt.Errorf("chdir %s: not a directory", dir)
	default:
		o.Dir = dir
		return nil
	}
}

func (o *OS) GetPTY() host.PTY { return o.PTYInfo }

// Run records the call and dispatches to the resolver. Unknown names fail
// the same way the real executable search does.
func (o *OS) Run(args []string) (host.ProcState, error) {
	o.Calls = append(o.Calls, args)

	if o.StartErr != nil {
		return host.ProcState{}, o.StartErr
	}

	var proc ProcessFunc
	if o.Resolver != nil {
		proc = o.Resolver(args[0])
	}
	if proc == nil {
		return host.ProcState{}, &exec.Error{Name: args[0], Err: exec.ErrNotFound}
	}

	o.lastPID++
	return host.ProcState{PID: o.lastPID, ExitCode: proc(o, args)}, nil
}

type writeCloser struct {
	io.Writer
}

func (writeCloser) Close() error { return nil }
