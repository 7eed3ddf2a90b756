package clicklite

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/raman4793/click-lite/pkg/suggest"
)

// Registry maps command names to functions. It is a two-level table: a name resolves to
// either a leaf function or a nested table of subcommand functions. A Registry is
// populated during a registration phase at process start, then frozen before dispatch;
// it is not safe for concurrent use and does not need to be.
type Registry struct {
	commands map[string]*registryEntry
	frozen   bool
}

type registryEntry struct {
	fn   any
	subs map[string]any
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]*registryEntry)}
}

// Register stores fn under the lower-cased identifier derived from the function's own
// symbol name. Re-registering a name silently overwrites the previous entry. Registering
// on a frozen registry is an error.
func (r *Registry) Register(fn any) error {
	if r.frozen {
		return fmt.Errorf("registry is frozen, commands must be registered before dispatch")
	}
	name, err := commandName(fn)
	if err != nil {
		return err
	}
	e := r.commands[name]
	if e == nil {
		e = &registryEntry{}
		r.commands[name] = e
	}
	e.fn = fn
	return nil
}

// RegisterSub stores fn as a subcommand of group. The group name is lower-cased; the
// subcommand key is derived from fn's symbol name like [Registry.Register] does. The
// group need not exist as a leaf command.
func (r *Registry) RegisterSub(group string, fn any) error {
	if r.frozen {
		return fmt.Errorf("registry is frozen, commands must be registered before dispatch")
	}
	if group == "" {
		return fmt.Errorf("subcommand group name is empty")
	}
	name, err := commandName(fn)
	if err != nil {
		return err
	}
	group = strings.ToLower(group)
	e := r.commands[group]
	if e == nil {
		e = &registryEntry{}
		r.commands[group] = e
	}
	if e.subs == nil {
		e.subs = make(map[string]any)
	}
	e.subs[name] = fn
	return nil
}

// Freeze closes the registration phase. Lookups remain available.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Resolve looks up a command, descending into its subcommand table when sub is
// non-empty. A miss at either level returns a [CommandNotFoundError]; top-level misses
// carry suggestions for similarly named registered commands.
func (r *Registry) Resolve(name, sub string) (any, error) {
	e := r.commands[name]
	if e == nil {
		return nil, &CommandNotFoundError{
			Name:        name,
			Suggestions: suggest.Closest(name, r.Names(), 3),
		}
	}
	if sub == "" {
		if e.fn == nil {
			return nil, fmt.Errorf("command %q requires a subcommand", name)
		}
		return e.fn, nil
	}
	fn := e.subs[sub]
	if fn == nil {
		return nil, &CommandNotFoundError{
			Name:        name,
			Sub:         sub,
			Suggestions: suggest.Closest(sub, r.SubNames(name), 3),
		}
	}
	return fn, nil
}

// Names returns the sorted top-level command names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SubNames returns the sorted subcommand names of a group, or nil if the group has none.
func (r *Registry) SubNames(group string) []string {
	e := r.commands[group]
	if e == nil || len(e.subs) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.subs))
	for name := range e.subs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// commandName derives the registry key from the function's symbol name: the identifier
// after the last dot, lower-cased. Method values carry a "-fm" suffix that is stripped.
func commandName(fn any) (string, error) {
	if fn == nil {
		return "", &NotCallableError{Type: "<nil>"}
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return "", &NotCallableError{Type: fmt.Sprintf("%T", fn)}
	}
	full := runtime.FuncForPC(v.Pointer()).Name()
	full = strings.TrimSuffix(full, "-fm")
	name := full[strings.LastIndex(full, ".")+1:]
	if name == "" {
		return "", fmt.Errorf("cannot derive a command name from %q", full)
	}
	return strings.ToLower(name), nil
}
