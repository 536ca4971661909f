package cmdtree

import (
	"flag"
	"fmt"
	"io"

	"github.com/mfridman/xflag"
)

// OptionParser separates option tokens from the rest of an argument vector.
// The parser walks the command tree with one of two disciplines per level:
// Order for nodes that still expect a command name (so a command name is
// never swallowed as an option argument) and Permute for leaf nodes whose
// options may be mixed freely among positional arguments.
//
// Both separation methods act on recognized options as a side effect, for
// example by setting bound flag variables. Errors from either method surface
// to callers wrapped in [InvalidOptionError].
type OptionParser interface {
	// Order consumes leading option tokens and stops at the first token that
	// is not an option, returning the unconsumed remainder.
	Order(args []string) ([]string, error)

	// Permute consumes option tokens from anywhere in args and returns the
	// non-option tokens in their original relative order.
	Permute(args []string) ([]string, error)

	// Summarize returns human-readable help lines, one per option.
	Summarize() []string
}

// FlagsFunc creates a new flag.FlagSet and applies fn to it. Intended to
// simplify flag setup in command definitions:
//
//	cmd.Flags = cmdtree.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("verbose", false, "enable verbose output")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

// NewFlagSetParser returns an [OptionParser] backed by fset. Order maps to
// FlagSet.Parse, which stops at the first non-flag argument; Permute maps to
// xflag.ParseToEnd, which parses flags interspersed with positional
// arguments.
func NewFlagSetParser(fset *flag.FlagSet) OptionParser {
	fset.SetOutput(io.Discard)
	return &flagSetParser{fset: fset}
}

type flagSetParser struct {
	fset *flag.FlagSet
}

func (p *flagSetParser) Order(args []string) ([]string, error) {
	if err := p.fset.Parse(args); err != nil {
		return nil, err
	}
	return p.fset.Args(), nil
}

func (p *flagSetParser) Permute(args []string) ([]string, error) {
	if err := xflag.ParseToEnd(p.fset, args); err != nil {
		return nil, err
	}
	return p.fset.Args(), nil
}

func (p *flagSetParser) Summarize() []string {
	var lines []string
	p.fset.VisitAll(func(f *flag.Flag) {
		line := "-" + f.Name
		if f.Usage != "" {
			line += "    " + f.Usage
		}
		if f.DefValue != "" && f.DefValue != "false" {
			line += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		lines = append(lines, line)
	})
	return lines
}
