package cmdtree

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFlag(t *testing.T) {
	t.Parallel()

	t.Run("leaf shadows ancestor", func(t *testing.T) {
		t.Parallel()
		root := &Command{
			Name:          "root",
			TakesCommands: true,
			Flags: FlagsFunc(func(f *flag.FlagSet) {
				f.String("output", "root-default", "output path")
			}),
		}
		leaf := root.MustAddCommand(&Command{
			Name: "leaf",
			Flags: FlagsFunc(func(f *flag.FlagSet) {
				f.String("output", "leaf-default", "output path")
			}),
		}, false)
		s := &State{path: leaf.chain()}
		assert.Equal(t, "leaf-default", GetFlag[string](s, "output"))
	})
	t.Run("falls back to global flags", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "root", TakesCommands: true}
		p := NewParser(root)
		p.GlobalFlags.Int("retries", 3, "retry count")
		s := &State{path: root.chain()}
		assert.Equal(t, 3, GetFlag[int](s, "retries"))
	})
	t.Run("missing flag panics", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "root"}
		s := &State{path: root.chain()}
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.Contains(t, r.(string), `flag "missing" not found`)
		}()
		_ = GetFlag[bool](s, "missing")
	})
	t.Run("type mismatch panics", func(t *testing.T) {
		t.Parallel()
		root := &Command{
			Name: "root",
			Flags: FlagsFunc(func(f *flag.FlagSet) {
				f.String("version", "1.0.0", "version")
			}),
		}
		s := &State{path: root.chain()}
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.Contains(t, r.(string), "type mismatch")
		}()
		_ = GetFlag[bool](s, "version")
	})
}

func TestStatePath(t *testing.T) {
	t.Parallel()

	root := &Command{Name: "root", TakesCommands: true}
	leaf := root.MustAddCommand(&Command{Name: "leaf"}, false)
	s := &State{path: leaf.chain()}

	assert.Equal(t, leaf, s.Command())
	path := s.Path()
	require.Len(t, path, 2)
	assert.Equal(t, root, path[0])

	// Mutating the returned slice must not affect the state.
	path[0] = nil
	assert.Equal(t, root, s.Path()[0])
}
