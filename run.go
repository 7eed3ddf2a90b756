package clicklite

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/mfridman/xflag"
)

// DispatchOptions specifies options for dispatching a command.
type DispatchOptions struct {
	// Stdout and Stderr receive generated help text. If nil, [os.Stdout] and
	// [os.Stderr] are used.
	Stdout, Stderr io.Writer
}

// Dispatcher resolves and invokes registered commands. It owns no state beyond the
// registry and reader handed to it at construction.
type Dispatcher struct {
	registry *Registry
	reader   *Reader
	stdout   io.Writer
	stderr   io.Writer
}

// NewDispatcher creates a dispatcher over the given registry. The options parameter may
// be nil, in which case default streams are used.
func NewDispatcher(registry *Registry, options *DispatchOptions) *Dispatcher {
	options = checkAndSetDispatchOptions(options)
	return &Dispatcher{
		registry: registry,
		reader:   NewReader(),
		stdout:   options.Stdout,
		stderr:   options.Stderr,
	}
}

// Run is a convenience function that builds a [Dispatcher] and executes the given
// argument vector in one call. See [Dispatcher.Execute] for details.
func Run(ctx context.Context, registry *Registry, args []string, options *DispatchOptions) error {
	return NewDispatcher(registry, options).Execute(ctx, args)
}

// Execute dispatches an argument vector (os.Args[1:] shaped): it extracts the command
// and optional subcommand tokens, resolves the registered function, reads its signature,
// parses the remaining tokens as flags keyed by the signature's parameters, and invokes
// the function with the bound argument struct. Errors from any stage propagate
// unmodified; a help request prints usage and returns [flag.ErrHelp].
//
// Execute freezes the registry: the registration phase is over once dispatch begins.
func (d *Dispatcher) Execute(ctx context.Context, args []string) error {
	d.registry.Freeze()

	cmd, sub, rest, err := splitCommandLine(args)
	if err != nil {
		if errors.Is(err, ErrNoCommand) && hasHelpToken(args) {
			fmt.Fprintln(d.stdout, registryUsage(d.registry))
			return flag.ErrHelp
		}
		return err
	}

	fn, err := d.registry.Resolve(cmd, sub)
	if err != nil {
		return err
	}
	sig, err := d.reader.Read(fn)
	if err != nil {
		return err
	}

	path := cmd
	if sub != "" {
		path += " " + sub
	}
	if hasHelpToken(rest) {
		fmt.Fprintln(d.stdout, commandUsage(path, sig))
		return flag.ErrHelp
	}

	fset := buildFlagSet(path, sig)
	if err := xflag.ParseToEnd(fset, rest); err != nil {
		return fmt.Errorf("command %q: %w", path, err)
	}
	if err := checkRequired(path, sig, rest); err != nil {
		return err
	}
	if extra := fset.Args(); len(extra) > 0 {
		return fmt.Errorf("command %q: unexpected arguments: %v", path, extra)
	}

	argsValue, err := bindArgs(sig, fset)
	if err != nil {
		return err
	}
	return invoke(ctx, fn, sig, argsValue)
}

func invoke(ctx context.Context, fn any, sig *Signature, args reflect.Value) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var in []reflect.Value
	if sig.takesCtx {
		in = append(in, reflect.ValueOf(ctx))
	}
	in = append(in, args)
	out := reflect.ValueOf(fn).Call(in)
	if err, ok := out[0].Interface().(error); ok && err != nil {
		return err
	}
	return nil
}

func checkAndSetDispatchOptions(opt *DispatchOptions) *DispatchOptions {
	if opt == nil {
		opt = &DispatchOptions{}
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
