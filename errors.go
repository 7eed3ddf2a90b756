package clicklite

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCommand is returned when the argument vector contains no command token.
var ErrNoCommand = errors.New("no command specified")

// NotCallableError is returned when a value handed to the signature reader is not a
// function.
type NotCallableError struct {
	// Type is the concrete Go type of the offending value.
	Type string
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("value of type %s is not callable, only functions can be read", e.Type)
}

// InvalidSignatureError is returned when a function does not have a supported command
// shape. Commands are func(T) error or func(context.Context, T) error where T is a
// struct.
type InvalidSignatureError struct {
	Expected string
	Actual   string
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("expected signature %s but got %s", e.Expected, e.Actual)
}

// InvalidParameterError is returned when a parameter descriptor is built from something
// other than a reflected struct field.
type InvalidParameterError struct {
	Expected string
	Actual   string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("expected type %s for parameter but got %s", e.Expected, e.Actual)
}

// CommandNotFoundError is returned when registry resolution misses at either level.
type CommandNotFoundError struct {
	Name string
	// Sub is empty when the top-level command itself was not found.
	Sub string

	// Suggestions holds registered names similar to the unknown one, if any.
	Suggestions []string
}

func (e *CommandNotFoundError) Error() string {
	var b strings.Builder
	if e.Sub != "" {
		fmt.Fprintf(&b, "command %q has no subcommand %q", e.Name, e.Sub)
	} else {
		fmt.Fprintf(&b, "unknown command %q", e.Name)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, ". Did you mean one of these?\n\t%s", strings.Join(e.Suggestions, "\n\t"))
	}
	return b.String()
}

// TooManyCommandsError is returned when more than two leading positional tokens precede
// the first flag.
type TooManyCommandsError struct {
	Tokens []string
}

func (e *TooManyCommandsError) Error() string {
	return fmt.Sprintf("too many commands specified: %s", strings.Join(e.Tokens, " "))
}
