package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// runProgram launches args[0] as an external program with the remaining
// tokens as its arguments and blocks until it terminates. The child's exit
// code never reaches the loop; every path returns Continue.
func (s *Shell) runProgram(args []string) Signal {
	_, err := s.Host.Run(args)

	switch {
	case errors.Is(err, exec.ErrNotFound):
		fmt.Fprintf(s.Host.Stderr(), "%s: %s: command not found\n", Name, args[0])
	case errors.Is(err, fs.ErrPermission):
		fmt.Fprintf(s.Host.Stderr(), "%s: %s: permission denied\n", Name, args[0])
	case err != nil:
		// The child context couldn't be created at all. Not fatal to the
		// interpreter.
		fmt.Fprintf(s.Host.Stderr(), "%s: %v\n", Name, err)
	}

	return Continue
}
