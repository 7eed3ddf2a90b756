package clicklite

import (
	"flag"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
)

// splitCommandLine extracts the command and optional subcommand tokens from an argument
// vector (os.Args[1:] shaped). The scan consumes every leading token up to the first
// flag, so flags placed before the command name and command names starting with "-" are
// rejected rather than silently misparsed. The consumed tokens are removed from the
// returned remainder so the flag parser never sees them as positionals.
func splitCommandLine(args []string) (cmd, sub string, rest []string, err error) {
	var names []string
	i := 0
	for ; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			break
		}
		names = append(names, args[i])
		if len(names) > 2 {
			return "", "", nil, &TooManyCommandsError{Tokens: names}
		}
	}
	switch len(names) {
	case 0:
		return "", "", nil, ErrNoCommand
	case 1:
		return names[0], "", args[i:], nil
	default:
		return names[0], names[1], args[i:], nil
	}
}

// isHelpToken reports whether a raw argument requests help.
func isHelpToken(arg string) bool {
	switch arg {
	case "-h", "--h", "-help", "--help":
		return true
	}
	return false
}

func hasHelpToken(args []string) bool {
	for _, arg := range args {
		if isHelpToken(arg) {
			return true
		}
	}
	return false
}

// buildFlagSet creates a flag set with one flag per signature parameter. Defaults come
// from the parameter descriptors; optional parameters therefore resolve to their
// declared default when the flag is absent.
func buildFlagSet(name string, sig *Signature) *flag.FlagSet {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	for _, p := range sig.Params() {
		switch {
		case p.Type == durationType:
			fset.Duration(p.Name, paramDefault[time.Duration](p), p.Description)
		case p.Type.Kind() == reflect.String:
			fset.String(p.Name, paramDefault[string](p), p.Description)
		case p.Type.Kind() == reflect.Bool:
			fset.Bool(p.Name, paramDefault[bool](p), p.Description)
		case p.Type.Kind() == reflect.Int:
			fset.Int(p.Name, paramDefault[int](p), p.Description)
		case p.Type.Kind() == reflect.Int64:
			fset.Int64(p.Name, paramDefault[int64](p), p.Description)
		case p.Type.Kind() == reflect.Uint:
			fset.Uint(p.Name, paramDefault[uint](p), p.Description)
		case p.Type.Kind() == reflect.Uint64:
			fset.Uint64(p.Name, paramDefault[uint64](p), p.Description)
		case p.Type.Kind() == reflect.Float64:
			fset.Float64(p.Name, paramDefault[float64](p), p.Description)
		}
	}
	return fset
}

// paramDefault returns the parameter's declared default, or the zero value for required
// parameters.
func paramDefault[T any](p *Parameter) T {
	if p.Default != nil {
		if v, ok := p.Default.(T); ok {
			return v
		}
	}
	var zero T
	return zero
}

// checkRequired verifies that every required parameter was supplied on the command line.
// Presence is checked against the raw argument vector: a required flag must appear as
// -name, --name, -name=... or --name=... .
func checkRequired(name string, sig *Signature, args []string) error {
	var missing []string
	for _, p := range sig.Params() {
		if !p.Required {
			continue
		}
		found := false
		for _, arg := range args {
			if arg == "-"+p.Name || arg == "--"+p.Name ||
				strings.HasPrefix(arg, "-"+p.Name+"=") ||
				strings.HasPrefix(arg, "--"+p.Name+"=") {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("command %q: required flag(s) %q not set", name, strings.Join(missing, ", "))
	}
	return nil
}

// bindArgs materializes the argument struct from the parsed flag set.
func bindArgs(sig *Signature, fset *flag.FlagSet) (reflect.Value, error) {
	v := reflect.New(sig.argsType).Elem()
	for _, p := range sig.Params() {
		f := fset.Lookup(p.Name)
		if f == nil {
			return reflect.Value{}, fmt.Errorf("internal error: parameter %q not found in flag set", p.Name)
		}
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return reflect.Value{}, fmt.Errorf("internal error: flag %q has no value getter", p.Name)
		}
		field := v.Field(p.fieldIndex)
		field.Set(reflect.ValueOf(getter.Get()).Convert(field.Type()))
	}
	return v, nil
}
