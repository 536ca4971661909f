package cmdtree

import (
	"context"
	"fmt"
)

// AddVersionCommand registers the built-in version command under the root,
// along with global -v/--version switches. Both print the program name and
// version and terminate the process.
func (p *Parser) AddVersionCommand() error {
	version := &Command{
		Name:      "version",
		ShortHelp: "show program name and version",
		Exec:      execVersion,
	}
	if err := p.Root.AddCommand(version, false); err != nil {
		return err
	}
	fn := func(string) error {
		p.printVersion()
		p.exit(exitOK)
		return nil
	}
	p.GlobalFlags.BoolFunc("version", "show program version", fn)
	p.GlobalFlags.BoolFunc("v", "show program version", fn)
	return nil
}

func execVersion(ctx context.Context, s *State) error {
	p := s.path[0].parser
	p.printVersion()
	p.exit(exitOK)
	return nil
}

func (p *Parser) printVersion() {
	if p.Banner != "" {
		fmt.Fprintln(p.Stdout, p.Banner)
	}
	version := p.Version
	if version == "" {
		version = "(unknown)"
	}
	fmt.Fprintf(p.Stdout, "%s %s\n", p.Name, version)
}
