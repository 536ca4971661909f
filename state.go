package cmdtree

import (
	"flag"
	"fmt"
	"io"
	"slices"
)

// State is handed to every invoked action. It carries the positional
// arguments that survived option separation, the parser's I/O streams, and
// the process-lifetime scratch store.
type State struct {
	// Args contains the positional arguments for the resolved command, after
	// option separation and command-name consumption.
	Args []string

	// Standard I/O streams for the action.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Data is a mutable key/value store shared by every action invoked
	// through the same [Parser]. It is created when the parser is and is
	// never cleared.
	Data map[string]any

	path []*Command
}

// Path returns the resolved command chain, root first.
func (s *State) Path() []*Command {
	return slices.Clone(s.path)
}

// Command returns the command being invoked, the last entry of the chain.
func (s *State) Command() *Command {
	return s.path[len(s.path)-1]
}

// GetFlag retrieves a flag value by name with type inference, searching the
// resolved command chain from the leaf upward and finally the parser's
// global flags, so actions can read options defined at any enclosing level:
//
//	verbose := cmdtree.GetFlag[bool](s, "verbose")
//
// A missing flag or a type mismatch panics: both mean a flag was referenced
// that the host program never registered as such, and it is better to fail
// loudly during development than to return a zero value silently.
func GetFlag[T any](s *State, name string) T {
	for i := len(s.path) - 1; i >= 0; i-- {
		if v, ok := lookupFlag[T](s.path[i].Flags, name); ok {
			return v
		}
	}
	if p := s.path[0].parser; p != nil {
		if v, ok := lookupFlag[T](p.GlobalFlags, name); ok {
			return v
		}
	}
	panic(fmt.Sprintf("internal error: flag %q not found in command %q or its parents",
		name, s.Command().Name))
}

func lookupFlag[T any](fset *flag.FlagSet, name string) (T, bool) {
	var zero T
	if fset == nil {
		return zero, false
	}
	f := fset.Lookup(name)
	if f == nil {
		return zero, false
	}
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		return zero, false
	}
	value := getter.Get()
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for flag %q: registered %T, requested %T",
			name, value, zero))
	}
	return v, true
}
