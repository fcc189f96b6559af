// Package cli implements the snippets command line: put, get, search and
// catalog subcommands built with cobra.
//
// Every subcommand loads the configuration, opens the application (log sink
// plus database connection) once, runs a single SnippetService operation and
// prints the result to the command's output writer. Failures are logged to
// the diagnostic log and returned to the caller, which exits non-zero.
package cli
