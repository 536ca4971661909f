// Package cmdtree resolves and dispatches hierarchical command-line commands
// of the form "program area action --flag arg". It owns the command tree, the
// walk that consumes one command name per tree level, unambiguous-prefix
// resolution, default-subcommand substitution, positional arity validation,
// and the error and exit-status contract of a program built on it.
//
// Option parsing itself is delegated to a collaborator (see [OptionParser]);
// the shipped implementation wraps a standard flag.FlagSet and uses
// github.com/mfridman/xflag when options may appear anywhere among
// positional arguments. The package does not implement any flag syntax of
// its own.
package cmdtree
