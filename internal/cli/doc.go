// Package cli implements the twine command: a set of cobra subcommands that
// decode, encode, validate and reshape text with the twine toolkit.
//
// Every subcommand reads its text from the positional arguments, joined by
// single spaces, or from standard input when there are none (staircase falls
// back to a fixed greeting instead). Standard input is decoded from the
// configured charset; arguments are always UTF-8. The text is then held in a
// buffer of the configured encoding, and results are written back out as
// UTF-8.
package cli
