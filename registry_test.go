package clicklite

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyArgs struct{}

func Greet(ctx context.Context, args emptyArgs) error { return nil }

type greeter struct{}

// Greet collides with the top-level Greet on purpose: both derive the key "greet".
func (greeter) Greet(ctx context.Context, args emptyArgs) error { return nil }

func Version(args emptyArgs) error { return nil }

func fnPointer(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func TestCommandName(t *testing.T) {
	t.Parallel()

	t.Run("plain function", func(t *testing.T) {
		name, err := commandName(Greet)
		require.NoError(t, err)
		assert.Equal(t, "greet", name)
	})
	t.Run("method value strips the bound suffix", func(t *testing.T) {
		name, err := commandName(greeter{}.Greet)
		require.NoError(t, err)
		assert.Equal(t, "greet", name)
	})
	t.Run("not a function", func(t *testing.T) {
		_, err := commandName("greet")
		var notCallable *NotCallableError
		require.ErrorAs(t, err, &notCallable)
		assert.Equal(t, "string", notCallable.Type)
	})
	t.Run("nil", func(t *testing.T) {
		_, err := commandName(nil)
		var notCallable *NotCallableError
		require.ErrorAs(t, err, &notCallable)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("register and resolve", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(Greet))
		require.NoError(t, r.Register(Version))

		fn, err := r.Resolve("greet", "")
		require.NoError(t, err)
		assert.Equal(t, fnPointer(Greet), fnPointer(fn))

		assert.Equal(t, []string{"greet", "version"}, r.Names())
	})
	t.Run("last write wins", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(Greet))
		require.NoError(t, r.Register(greeter{}.Greet))

		fn, err := r.Resolve("greet", "")
		require.NoError(t, err)
		assert.NotEqual(t, fnPointer(Greet), fnPointer(fn))
	})
	t.Run("unknown command with suggestions", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(Version))

		_, err := r.Resolve("verzion", "")
		require.Error(t, err)
		var notFound *CommandNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "verzion", notFound.Name)
		assert.Contains(t, notFound.Suggestions, "version")
		assert.Contains(t, err.Error(), "Did you mean one of these?")
	})
	t.Run("subcommands", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterSub("Remote", Greet))

		fn, err := r.Resolve("remote", "greet")
		require.NoError(t, err)
		assert.Equal(t, fnPointer(Greet), fnPointer(fn))

		assert.Equal(t, []string{"greet"}, r.SubNames("remote"))

		_, err = r.Resolve("remote", "gone")
		var notFound *CommandNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "remote", notFound.Name)
		assert.Equal(t, "gone", notFound.Sub)
		assert.Contains(t, err.Error(), `command "remote" has no subcommand "gone"`)
	})
	t.Run("group without leaf requires a subcommand", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterSub("remote", Greet))

		_, err := r.Resolve("remote", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `command "remote" requires a subcommand`)
	})
	t.Run("leaf and group coexist", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(Greet))
		require.NoError(t, r.RegisterSub("greet", Version))

		fn, err := r.Resolve("greet", "")
		require.NoError(t, err)
		assert.Equal(t, fnPointer(Greet), fnPointer(fn))

		fn, err = r.Resolve("greet", "version")
		require.NoError(t, err)
		assert.Equal(t, fnPointer(Version), fnPointer(fn))
	})
	t.Run("freeze closes registration", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(Greet))
		r.Freeze()

		err := r.Register(Version)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "frozen")

		err = r.RegisterSub("remote", Version)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "frozen")

		// Lookups keep working after freeze.
		_, err = r.Resolve("greet", "")
		require.NoError(t, err)
	})
	t.Run("register non-function", func(t *testing.T) {
		r := New()
		err := r.Register(42)
		var notCallable *NotCallableError
		require.ErrorAs(t, err, &notCallable)
	})
	t.Run("empty group name", func(t *testing.T) {
		r := New()
		err := r.RegisterSub("", Greet)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "group name is empty")
	})
}
