package cmdtree

import (
	"context"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/cmdtree/cmdtree/pkg/prefixmap"
	"github.com/cmdtree/cmdtree/pkg/suggest"
)

// Command is a node in the command tree: either an interior node that
// accepts subcommands or a leaf that accepts positional arguments and
// performs an action.
//
// The exported fields describe the command and are expected to be set once,
// before the command is attached to a tree. Tree structure is built with
// [Command.AddCommand] only; commands are never removed or re-parented.
type Command struct {
	// Name is a single word identifying the command among its siblings.
	Name string

	// ShortHelp is a brief description shown in subcommand listings and at
	// the top of the command's help text.
	ShortHelp string

	// LongHelp is an optional longer description shown in the command's help
	// text after the usage line.
	LongHelp string

	// ArgsUsage describes the positional arguments in usage lines, for
	// example "NAME [VALUE...]". Only meaningful on leaf commands.
	ArgsUsage string

	// Flags holds the command's own option definitions. May be nil.
	Flags *flag.FlagSet

	// Options, if set, replaces the default flag-set collaborator for this
	// command's option separation. When nil, Flags is merged with ancestor
	// and global flag sets and parsed with the shipped FlagSet adapter.
	Options OptionParser

	// TakesCommands reports whether this command accepts subcommands. A
	// command with TakesCommands false is always a dispatch leaf and never
	// gets a default subcommand.
	TakesCommands bool

	// PartialMatching enables unique-prefix resolution of this command's
	// subcommand names. It is inherited by commands added below this one,
	// so enabling it on the root enables it for the whole tree.
	PartialMatching bool

	// MinArgs is the minimum number of positional arguments the leaf action
	// requires.
	MinArgs int

	// Variadic reports whether the leaf action accepts an unlimited number
	// of positional arguments beyond MinArgs. When false, supplying more
	// than MinArgs arguments is an error.
	Variadic bool

	// Exec is the leaf action, invoked with the resolved [State] after
	// arity validation.
	Exec func(ctx context.Context, s *State) error

	children    *prefixmap.Map[*Command]
	defaultName string
	parent      *Command
	parser      *Parser // set on the root by NewParser
}

// AddCommand registers sub under sub.Name in c's subcommand table and sets
// the parent back-reference. It returns a [TakesNoCommandsError] if c is a
// leaf, and an error on an empty, blank-containing, or duplicate name; both
// indicate host-program misconfiguration and should fail setup loudly.
//
// If isDefault is set, sub becomes the command substituted when no further
// token is present at this level. At most one subcommand is the default;
// a later default silently replaces an earlier one.
func (c *Command) AddCommand(sub *Command, isDefault bool) error {
	if !c.TakesCommands {
		return &TakesNoCommandsError{Command: c}
	}
	if sub.Name == "" {
		return fmt.Errorf("command %q: subcommand has no name", c.Name)
	}
	if strings.Contains(sub.Name, " ") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", sub.Name)
	}
	if c.children == nil {
		c.children = prefixmap.New[*Command]()
	}
	if err := c.children.Insert(sub.Name, sub); err != nil {
		return fmt.Errorf("command %q: %w", c.Name, err)
	}
	sub.parent = c
	if c.PartialMatching {
		sub.PartialMatching = true
	}
	if isDefault {
		c.defaultName = sub.Name
	}
	return nil
}

// MustAddCommand is like [Command.AddCommand] but panics on error and
// returns sub, so trees can be declared as a chain of registrations.
func (c *Command) MustAddCommand(sub *Command, isDefault bool) *Command {
	if err := c.AddCommand(sub, isDefault); err != nil {
		panic(err)
	}
	return sub
}

// findCommand resolves name against c's subcommands: exact match first, then
// unique-prefix match when partial matching is enabled for this subtree.
// Returns nil on no match, including an ambiguous abbreviation.
func (c *Command) findCommand(name string) *Command {
	if c.children == nil {
		return nil
	}
	if sub, ok := c.children.Get(name); ok {
		return sub
	}
	if c.PartialMatching {
		if sub, ok := c.children.GetPrefix(name); ok {
			return sub
		}
	}
	return nil
}

func (c *Command) unknownCommandError(name string) error {
	var known []string
	if c.children != nil {
		known = c.children.Names()
	}
	return &UnknownCommandError{
		Name:        name,
		Suggestions: suggest.FindSimilar(name, known, 3),
	}
}

// chain returns the path from the root command down to c.
func (c *Command) chain() []*Command {
	var path []*Command
	for n := c; n != nil; n = n.parent {
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}

// root walks the parent back-references up to the top of the tree.
func (c *Command) root() *Command {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

// invoke validates arity and runs the leaf action. Non-variadic commands
// receive exactly MinArgs arguments; variadic commands receive everything
// that remains.
func (c *Command) invoke(ctx context.Context, s *State) error {
	if len(s.Args) < c.MinArgs {
		return &NotEnoughArgumentsError{Command: c, Min: c.MinArgs, Got: len(s.Args)}
	}
	if !c.Variadic && len(s.Args) > c.MinArgs {
		return &TooManyArgumentsError{Command: c, Max: c.MinArgs, Got: len(s.Args)}
	}
	if c.Exec == nil {
		return &NoExecError{Command: c}
	}
	return c.Exec(ctx, s)
}

func commandPath(chain []*Command) string {
	names := make([]string, len(chain))
	for i, c := range chain {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}
