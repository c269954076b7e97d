package core

import (
	"fmt"
	"sort"
)

// AllBuiltins holds every registered shell builtin keyed by command name.
// The table is filled during init and immutable afterwards.
var AllBuiltins = make(map[string]Builtin)

// Builtin is a command implemented inside the interpreter rather than as an
// external program.
type Builtin interface {
	Main(s *Shell, args []string) Signal
}

// BuiltinFunc adapts a plain function into a Builtin.
type BuiltinFunc func(s *Shell, args []string) Signal

func (f BuiltinFunc) Main(s *Shell, args []string) Signal {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// BuiltinNames returns the registered builtin names in sorted order.
func BuiltinNames() []string {
	var names []string
	for name := range AllBuiltins {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func mustAddBuiltin(name string, builtin Builtin) {
	if _, ok := AllBuiltins[name]; ok {
		panic(fmt.Sprintf("duplicate builtin: %q", name))
	}
	AllBuiltins[name] = builtin
}

// Cd is the cd builtin, it changes the interpreter's working directory.
// Arguments past the path are ignored.
func Cd(s *Shell, args []string) Signal {
	if len(args) < 2 {
		fmt.Fprintf(s.Host.Stderr(), "%s: expected argument to %q\n", Name, args[0])
		return Continue
	}

	if err := s.Host.Chdir(args[1]); err != nil {
		fmt.Fprintf(s.Host.Stderr(), "%s: %v\n", Name, err)
	}

	return Continue
}

// Help prints the interpreter's usage text.
func Help(s *Shell, args []string) Signal {
	w := s.Host.Stdout()
	fmt.Fprintf(w, "%s, a minimal command interpreter.\n", Name)
	fmt.Fprintln(w, "Type a program name with arguments and press enter.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The following are built in:")
	for _, name := range BuiltinNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use the man command for information on other programs.")

	return Continue
}

// Exit stops the dispatch loop.
func Exit(s *Shell, args []string) Signal {
	return Stop
}

func init() {
	mustAddBuiltin("cd", BuiltinFunc(Cd))
	mustAddBuiltin("help", BuiltinFunc(Help))
	mustAddBuiltin("exit", BuiltinFunc(Exit))
}
