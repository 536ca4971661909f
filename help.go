package cmdtree

import (
	"context"
	"fmt"
)

// AddHelpCommand registers the built-in help command under the root, along
// with global -h/--help switches. Triggered mid-parse, the switches render
// help for the command chain reached so far and terminate the process.
func (p *Parser) AddHelpCommand() error {
	help := &Command{
		Name:      "help",
		ShortHelp: "show help for a command",
		ArgsUsage: "[COMMAND...]",
		Variadic:  true,
		Exec:      execHelp,
	}
	if err := p.Root.AddCommand(help, false); err != nil {
		return err
	}
	fn := func(string) error {
		node := p.current
		if node == nil {
			node = p.Root
		}
		p.printHelp(node)
		p.exit(exitOK)
		return nil
	}
	p.GlobalFlags.BoolFunc("help", "show help for the command reached so far", fn)
	p.GlobalFlags.BoolFunc("h", "show help for the command reached so far", fn)
	return nil
}

// execHelp walks its arguments from the root one name at a time using exact
// lookup only; abbreviations are not accepted here even when the tree
// resolves them elsewhere.
func execHelp(ctx context.Context, s *State) error {
	node := s.path[0]
	for _, name := range s.Args {
		var sub *Command
		if node.children != nil {
			sub, _ = node.children.Get(name)
		}
		if sub == nil {
			return &InvalidArgumentError{
				Value:  name,
				Reason: fmt.Sprintf("no such command under %q", commandPath(node.chain())),
			}
		}
		node = sub
	}
	p := s.path[0].parser
	p.printHelp(node)
	p.exit(exitOK)
	return nil
}

// printHelp writes the help screen for c to the parser's stdout.
func (p *Parser) printHelp(c *Command) {
	fmt.Fprintln(p.Stdout, usageText(c))
}
