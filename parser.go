package cmdtree

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"syscall"
)

// ErrorPolicy controls what [Parser.Parse] does with errors raised during
// resolution and dispatch.
type ErrorPolicy int

const (
	// Propagate returns errors to the caller unchanged.
	Propagate ErrorPolicy = iota

	// HandleWithHelp prints the error, then contextual help for the deepest
	// command resolved before the failure, and exits with the usage-error
	// status.
	HandleWithHelp

	// HandleWithoutHelp prints the error and exits with the usage-error
	// status.
	HandleWithoutHelp
)

// PosixEnvVar is the environment variable that forces order-mode option
// separation even at leaf commands, matching strict POSIX behavior.
const PosixEnvVar = "POSIXLY_CORRECT"

// Parser owns the root of a command tree and drives resolution: it walks the
// argument vector down the tree one command name per level, delegates option
// separation to each level's collaborator, validates leaf arity, and invokes
// the resolved action.
//
// A Parser supports one Parse call at a time; concurrent parses on the same
// Parser are not supported.
type Parser struct {
	// Root is the top-level command.
	Root *Command

	// GlobalFlags holds options usable before or around any command name,
	// such as the switches registered by [Parser.AddHelpCommand] and
	// [Parser.AddVersionCommand].
	GlobalFlags *flag.FlagSet

	// Policy selects how Parse reacts to errors. The default, [Propagate],
	// returns them to the caller.
	Policy ErrorPolicy

	// Observer, if set, is called once per resolved tree level with the
	// zero-based level and the command reached. It has no effect on control
	// flow; it exists for diagnostics.
	Observer func(level int, cmd *Command)

	// Name is the program name used in messages. Defaults to Root.Name.
	Name string

	// Version and Banner are printed by the built-in version command.
	Version string
	Banner  string

	// Standard I/O streams passed to actions and used for parser output.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Data is the process-lifetime scratch store handed to every action.
	Data map[string]any

	exit    func(int)
	current *Command
}

// NewParser returns a Parser owning root. The root's parser back-reference
// is set so built-in commands can locate their owner through the tree.
func NewParser(root *Command) *Parser {
	p := &Parser{
		Root:        root,
		GlobalFlags: flag.NewFlagSet(root.Name, flag.ContinueOnError),
		Name:        root.Name,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Data:        make(map[string]any),
		exit:        os.Exit,
	}
	root.parser = p
	return p
}

// Parse resolves args against the command tree and invokes the resolved
// leaf's action. Errors are returned or handled according to the parser's
// [ErrorPolicy]; a broken downstream pipe is swallowed silently in either
// case. The in-flight command pointer is cleared before Parse returns.
func (p *Parser) Parse(ctx context.Context, args []string) error {
	p.setDefaults()
	err := p.parse(ctx, args)
	reached := p.current
	p.current = nil
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) {
		return nil
	}
	if p.Policy == Propagate {
		return err
	}
	if errors.Is(err, context.Canceled) {
		p.exit(exitInterrupt)
		return err
	}
	fmt.Fprintf(p.Stderr, "%s: %v\n", p.Name, err)
	if p.Policy == HandleWithHelp && reached != nil {
		fmt.Fprintln(p.Stderr)
		fmt.Fprintln(p.Stderr, usageText(reached))
	}
	p.exit(exitUsage)
	return err
}

// setDefaults fills zero-valued fields so a Parser built as a struct literal
// behaves like one from [NewParser].
func (p *Parser) setDefaults() {
	if p.Name == "" && p.Root != nil {
		p.Name = p.Root.Name
	}
	if p.Stdin == nil {
		p.Stdin = os.Stdin
	}
	if p.Stdout == nil {
		p.Stdout = os.Stdout
	}
	if p.Stderr == nil {
		p.Stderr = os.Stderr
	}
	if p.Data == nil {
		p.Data = make(map[string]any)
	}
	if p.exit == nil {
		p.exit = os.Exit
	}
	if p.Root != nil && p.Root.parser == nil {
		p.Root.parser = p
	}
}

func (p *Parser) parse(ctx context.Context, args []string) error {
	if p.Root == nil {
		return errors.New("parse: root command is nil")
	}
	if err := validateTree(p.Root, nil); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	// Everything after a literal "--" bypasses option separation and is
	// appended to the leaf's positional arguments.
	rest := args
	var tail []string
	for i, arg := range args {
		if arg == "--" {
			rest = args[:i]
			tail = args[i+1:]
			break
		}
	}

	strict := os.Getenv(PosixEnvVar) != ""
	node := p.Root
	for level := 0; ; level++ {
		p.current = node

		// Interior nodes always separate in order mode so that the next
		// command name is never swallowed; leaves permute unless strict
		// POSIX behavior is requested.
		var err error
		sep := p.separator(node)
		if node.TakesCommands || strict {
			rest, err = sep.Order(rest)
		} else {
			rest, err = sep.Permute(rest)
		}
		if err != nil {
			return &InvalidOptionError{Command: node.Name, Err: err}
		}
		if p.Observer != nil {
			p.Observer(level, node)
		}
		if !node.TakesCommands {
			break
		}

		name := node.defaultName
		fromInput := false
		if len(rest) > 0 {
			name = rest[0]
			fromInput = true
		}
		if name == "" {
			return &NoCommandGivenError{Command: node}
		}
		sub := node.findCommand(name)
		if sub == nil {
			return node.unknownCommandError(name)
		}
		if fromInput {
			rest = rest[1:]
		}
		node = sub
	}

	positional := slices.Clone(rest)
	positional = append(positional, tail...)
	s := &State{
		Args:   positional,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
		Stderr: p.Stderr,
		Data:   p.Data,
		path:   node.chain(),
	}
	return node.invoke(ctx, s)
}

// separator builds the option-separation collaborator for one tree level. A
// command with its own Options collaborator uses it directly; otherwise its
// flag set is merged with its ancestors' and the global set into a fresh
// combined set, the nearest definition winning name collisions.
func (p *Parser) separator(node *Command) OptionParser {
	if node.Options != nil {
		return node.Options
	}
	combined := flag.NewFlagSet(node.Name, flag.ContinueOnError)
	merge := func(fset *flag.FlagSet) {
		if fset == nil {
			return
		}
		fset.VisitAll(func(f *flag.Flag) {
			if combined.Lookup(f.Name) == nil {
				combined.Var(f.Value, f.Name, f.Usage)
			}
		})
	}
	chain := node.chain()
	for i := len(chain) - 1; i >= 0; i-- {
		merge(chain[i].Flags)
	}
	merge(p.GlobalFlags)
	return NewFlagSetParser(combined)
}

// validateTree checks setup invariants before any token is consumed, so host
// misconfiguration fails loudly instead of surfacing as end-user errors.
func validateTree(c *Command, path []string) error {
	if c.Name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.Contains(c.Name, " ") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", c.Name)
	}
	if c.MinArgs < 0 {
		return fmt.Errorf("command %q has negative minimum arity", c.Name)
	}
	if !c.TakesCommands && c.children != nil && c.children.Len() > 0 {
		return fmt.Errorf("command %q takes no subcommands but has %d registered", c.Name, c.children.Len())
	}
	current := append(path, c.Name)
	if c.children != nil {
		for _, name := range c.children.Names() {
			sub, _ := c.children.Get(name)
			if err := validateTree(sub, current); err != nil {
				return err
			}
		}
	}
	return nil
}
