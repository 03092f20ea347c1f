// Package cli provides the command-line interface for inplace.
package cli

// CommandLineOpts are the command line options, for `go-flags` to parse
// command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	DemoCommand    DemoCommand    `command:"demo" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

// Opts is the global variable holding the parsed command line options.
var Opts CommandLineOpts
