package cmdtree

import (
	"fmt"
	"strings"

	"github.com/cmdtree/cmdtree/pkg/textutil"
)

const helpWidth = 80

// usageText assembles the help screen for one command: banner, short and
// long descriptions, usage line built from the chain to the root, subcommand
// listing with the default marked, positional-argument line, and local and
// global option summaries from the separation collaborators.
func usageText(c *Command) string {
	var b strings.Builder
	p := c.root().parser

	if p != nil && p.Banner != "" {
		b.WriteString(p.Banner)
		b.WriteString("\n\n")
	}
	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, helpWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Usage:\n  ")
	usage := commandPath(c.chain())
	if len(optionSummary(c)) > 0 {
		usage += " [flags]"
	}
	if c.TakesCommands {
		usage += " <command>"
	} else if c.ArgsUsage != "" {
		usage += " " + c.ArgsUsage
	}
	b.WriteString(usage)
	b.WriteString("\n\n")

	if c.LongHelp != "" {
		for _, line := range textutil.Wrap(c.LongHelp, helpWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	if c.TakesCommands && c.children != nil && c.children.Len() > 0 {
		b.WriteString("Available Commands:\n")
		names := c.children.Names()

		maxLen := 0
		labels := make(map[string]string, len(names))
		for _, name := range names {
			label := name
			if name == c.defaultName {
				label += " (default)"
			}
			labels[name] = label
			if len(label) > maxLen {
				maxLen = len(label)
			}
		}

		nameWidth := maxLen + 4
		wrapWidth := helpWidth - nameWidth
		for _, name := range names {
			sub, _ := c.children.Get(name)
			label := labels[name]
			if sub.ShortHelp == "" {
				fmt.Fprintf(&b, "  %s\n", label)
				continue
			}
			lines := textutil.Wrap(sub.ShortHelp, wrapWidth)
			padding := strings.Repeat(" ", maxLen-len(label)+4)
			fmt.Fprintf(&b, "  %s%s%s\n", label, padding, lines[0])
			indent := strings.Repeat(" ", nameWidth+2)
			for _, line := range lines[1:] {
				fmt.Fprintf(&b, "%s%s\n", indent, line)
			}
		}
		b.WriteRune('\n')
	}

	if !c.TakesCommands && c.ArgsUsage != "" {
		fmt.Fprintf(&b, "Arguments:\n  %s\n\n", c.ArgsUsage)
	}

	if local := optionSummary(c); len(local) > 0 {
		b.WriteString("Flags:\n")
		for _, line := range local {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteRune('\n')
	}
	if global := globalOptionSummary(c, p); len(global) > 0 {
		b.WriteString("Global Flags:\n")
		for _, line := range global {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteRune('\n')
	}

	if c.TakesCommands {
		fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n",
			commandPath(c.chain()))
	}
	return strings.TrimRight(b.String(), "\n")
}

// optionSummary returns the help lines of c's own option collaborator.
func optionSummary(c *Command) []string {
	if c.Options != nil {
		return c.Options.Summarize()
	}
	if c.Flags == nil {
		return nil
	}
	return NewFlagSetParser(c.Flags).Summarize()
}

// globalOptionSummary returns help lines for options inherited from ancestor
// commands and the parser's global flag set.
func globalOptionSummary(c *Command, p *Parser) []string {
	var lines []string
	chain := c.chain()
	for _, ancestor := range chain[:len(chain)-1] {
		lines = append(lines, optionSummary(ancestor)...)
	}
	if p != nil && p.GlobalFlags != nil {
		lines = append(lines, NewFlagSetParser(p.GlobalFlags).Summarize()...)
	}
	return lines
}
