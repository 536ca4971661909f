package cmdtree

import (
	"fmt"
	"strings"
)

// Exit statuses used when the parser handles errors itself. The usage status
// follows the sysexits EX_USAGE convention; interrupt is 128+SIGINT.
const (
	exitOK        = 0
	exitUsage     = 64
	exitInterrupt = 130
)

// UnknownCommandError is returned when a token does not resolve to exactly
// one subcommand at the current tree level, either because nothing matches
// or because an abbreviation matches more than one sibling.
type UnknownCommandError struct {
	// Name is the offending token.
	Name string

	// Suggestions holds near-miss command names, best first.
	Suggestions []string
}

func (e *UnknownCommandError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown command %q. Did you mean one of these?\n\t%s",
			e.Name, strings.Join(e.Suggestions, "\n\t"))
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}

// InvalidArgumentError is returned when a positional argument fails
// command-specific validation.
type InvalidArgumentError struct {
	// Value is the offending argument.
	Value string

	// Reason describes why the argument was rejected.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Value, e.Reason)
}

// InvalidOptionError wraps a rejection from the option-separation
// collaborator, such as an undefined flag or a malformed value.
type InvalidOptionError struct {
	// Command names the command whose options were being separated.
	Command string

	// Err is the collaborator's error.
	Err error
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *InvalidOptionError) Unwrap() error { return e.Err }

// NoCommandGivenError is returned when a command-accepting node runs out of
// tokens and has no default subcommand configured.
type NoCommandGivenError struct {
	Command *Command
}

func (e *NoCommandGivenError) Error() string {
	return fmt.Sprintf("command %q requires a subcommand", commandPath(e.Command.chain()))
}

// TakesNoCommandsError indicates a programming error: a subcommand was added
// to a command configured as a leaf.
type TakesNoCommandsError struct {
	Command *Command
}

func (e *TakesNoCommandsError) Error() string {
	return fmt.Sprintf("command %q takes no subcommands", e.Command.Name)
}

// NotEnoughArgumentsError is returned when a leaf command receives fewer
// positional arguments than its declared minimum.
type NotEnoughArgumentsError struct {
	Command *Command
	Min     int
	Got     int
}

func (e *NotEnoughArgumentsError) Error() string {
	return fmt.Sprintf("command %q requires at least %d argument(s), got %d",
		commandPath(e.Command.chain()), e.Min, e.Got)
}

// TooManyArgumentsError is returned when a non-variadic leaf command receives
// more positional arguments than its declared minimum.
type TooManyArgumentsError struct {
	Command *Command
	Max     int
	Got     int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("command %q takes at most %d argument(s), got %d",
		commandPath(e.Command.chain()), e.Max, e.Got)
}

// NoExecError is returned when resolution reaches a leaf command that has no
// execution function.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", commandPath(e.Command.chain()))
}
