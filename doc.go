// Package clicklite turns plain Go functions into command-line commands. A command is a
// function taking a typed argument struct; the framework reflects the struct's fields to
// derive the command's flag set, parses a Google-style documentation string for per-flag
// help text, and dispatches os.Args to the matching registered function.
//
// The package prioritizes simplicity: register functions on a [Registry], hand the
// registry to a [Dispatcher], and call [Dispatcher.Execute]. There is no code generation
// and no hidden global state.
package clicklite
