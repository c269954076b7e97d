package core

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/abiosoft/readline"
	"github.com/stretchr/testify/assert"

	"github.com/minsh/minsh/core/host"
	"github.com/minsh/minsh/core/host/hosttest"
)

// scriptReader feeds a fixed sequence of reads to the dispatch loop and
// signals end-of-input once the script runs out.
type scriptReader struct {
	script  []scriptLine
	prompts []string
}

type scriptLine struct {
	line string
	err  error
}

func lines(ls ...string) []scriptLine {
	var script []scriptLine
	for _, l := range ls {
		script = append(script, scriptLine{line: l})
	}
	return script
}

func (r *scriptReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func (r *scriptReader) Readline() (string, error) {
	if len(r.script) == 0 {
		return "", io.EOF
	}

	next := r.script[0]
	r.script = r.script[1:]
	return next.line, next.err
}

func (r *scriptReader) Close() error { return nil }

func newTestShell(script []scriptLine) (*Shell, *hosttest.OS, *scriptReader) {
	fake := hosttest.NewOS("")
	reader := &scriptReader{script: script}
	return &Shell{Host: fake, Reader: reader}, fake, reader
}

func TestRunEmptyAndWhitespaceLines(t *testing.T) {
	s, fake, reader := newTestShell(lines("", "   ", "\t \r", "exit"))

	s.Run()

	assert.Empty(t, fake.Calls, "no process launched")
	assert.Empty(t, fake.Out.String())
	assert.Empty(t, fake.Err.String())
	assert.Len(t, reader.prompts, 4, "each line gets a fresh prompt")
	assert.True(t, s.Quit)
}

func TestRunEndOfInput(t *testing.T) {
	s, fake, _ := newTestShell(nil)

	s.Run()

	assert.False(t, s.Quit, "end of input terminates without the exit builtin")
	assert.Empty(t, fake.Calls)
}

func TestRunHelpThenExit(t *testing.T) {
	s, fake, reader := newTestShell(lines("help", "exit", "help"))

	s.Run()

	assert.True(t, s.Quit)
	assert.Equal(t, 1, len(reader.script), "nothing read past exit")
	for _, name := range []string{"cd", "help", "exit"} {
		assert.Contains(t, fake.Out.String(), name)
	}
	assert.Empty(t, fake.Calls, "builtins never launch a process")
}

func TestRunCdHelpExitScenario(t *testing.T) {
	s, fake, _ := newTestShell(lines("cd /tmp", "help", "exit"))
	if err := fake.FS.MkdirAll("/tmp", 0777); err != nil {
		t.Fatal(err)
	}

	s.Run()

	assert.True(t, s.Quit)
	assert.Equal(t, "/tmp", fake.Dir)
	assert.Contains(t, fake.Out.String(), "built in")
	assert.Empty(t, fake.Err.String())
}

func TestRunExternalProgram(t *testing.T) {
	s, fake, _ := newTestShell(lines("echo hi", "exit"))
	fake.Resolver = hosttest.MapResolver(map[string]hosttest.ProcessFunc{
		"echo": func(stdio host.IO, args []string) int {
			fmt.Fprintln(stdio.Stdout(), args[1])
			return 0
		},
	})

	s.Run()

	assert.Equal(t, [][]string{{"echo", "hi"}}, fake.Calls)
	assert.Equal(t, "hi\n", fake.Out.String())
	assert.True(t, s.Quit)
}

func TestRunUnknownProgramContinues(t *testing.T) {
	s, fake, _ := newTestShell(lines("frobnicate", "echo ok", "exit"))
	fake.Resolver = hosttest.MapResolver(map[string]hosttest.ProcessFunc{
		"echo": func(stdio host.IO, args []string) int {
			fmt.Fprintln(stdio.Stdout(), args[1])
			return 0
		},
	})

	s.Run()

	assert.Contains(t, fake.Err.String(), "frobnicate: command not found")
	assert.Equal(t, "ok\n", fake.Out.String(), "the loop keeps going after a failed lookup")
	assert.True(t, s.Quit)
}

func TestRunCdWithoutArgument(t *testing.T) {
	s, fake, _ := newTestShell(lines("cd", "exit"))

	s.Run()

	assert.Contains(t, fake.Err.String(), `expected argument to "cd"`)
	assert.Empty(t, fake.Calls, "cd never reaches the launcher")
	assert.Equal(t, "/", fake.Dir)
}

func TestRunInterruptClearsLine(t *testing.T) {
	script := append([]scriptLine{{line: "hel", err: readline.ErrInterrupt}}, lines("exit")...)
	s, fake, _ := newTestShell(script)

	s.Run()

	assert.True(t, s.Quit)
	assert.Empty(t, fake.Out.String(), "the interrupted line is discarded")
	assert.Empty(t, fake.Calls)
}

func TestRunReadErrorContinues(t *testing.T) {
	script := append([]scriptLine{{err: errors.New("tty gone weird")}}, lines("exit")...)
	s, _, _ := newTestShell(script)

	s.Run()

	assert.True(t, s.Quit, "read errors do not end the loop")
}

func TestDispatchEmptyVector(t *testing.T) {
	s, fake, _ := newTestShell(nil)

	assert.Equal(t, Continue, s.dispatch(nil))
	assert.Empty(t, fake.Calls)
}

func TestPromptWithoutTerminal(t *testing.T) {
	s, _, _ := newTestShell(nil)

	assert.Equal(t, "> ", s.prompt())
}
