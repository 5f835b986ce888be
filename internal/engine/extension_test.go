package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Validation(t *testing.T) {
	e := New()

	assert.Error(t, e.Register("", Extension{Execute: func(c *Caps, args ...any) any { return nil }}))
	assert.Error(t, e.Register("noexec", Extension{}))

	require.NoError(t, e.Register("ok", Extension{Execute: func(c *Caps, args ...any) any { return nil }}))
	assert.Error(t, e.Register("ok", Extension{Execute: func(c *Caps, args ...any) any { return nil }}), "duplicate names are rejected")
}

func TestExtensions_SortedNames(t *testing.T) {
	e := New()
	exec := func(c *Caps, args ...any) any { return nil }
	require.NoError(t, e.Register("zeta", Extension{Execute: exec}))
	require.NoError(t, e.Register("alpha", Extension{Execute: exec}))

	assert.Equal(t, []string{"alpha", "zeta"}, e.Extensions())
}

func TestInvoke_UnknownExtension(t *testing.T) {
	e := newTestEngine()

	var invokeErr error
	require.NoError(t, e.SetProgram(func(c *Caps) {
		_, invokeErr = c.Invoke("missing")
	}))

	require.Error(t, invokeErr)
	assert.True(t, IsUnknownExtensionError(invokeErr))
	assert.EqualError(t, invokeErr, `unknown extension "missing"`)
}

func TestInvoke_InitOnceAcrossThreeReruns(t *testing.T) {
	e := newTestEngine("run-1", "run-2", "run-3")

	inits, execs := 0, 0
	require.NoError(t, e.Register("tracked", Extension{
		Init:    func(*Engine) { inits++ },
		Execute: func(c *Caps, args ...any) any { execs++; return nil },
	}))

	prog := func(c *Caps) {
		_, err := c.Invoke("tracked")
		require.NoError(t, err)
	}
	require.NoError(t, e.SetProgram(prog))
	require.NoError(t, e.Rerun())
	require.NoError(t, e.Rerun())

	assert.Equal(t, 1, inits, "init runs exactly once per registered name")
	assert.Equal(t, 3, execs)
}

func TestInvoke_ExtensionUsesBaseCapabilities(t *testing.T) {
	e := newTestEngine()

	// A composite capability built from a base accessor: a named counter
	// hook that bumps itself once.
	require.NoError(t, e.Register("counter", Extension{
		Execute: func(c *Caps, args ...any) any {
			limit := args[0].(int)
			v, set := c.State(0)
			if n := v.(int); n < limit {
				_ = set.Set(n + 1)
			}
			return v
		},
	}))

	var final any
	require.NoError(t, e.SetProgram(func(c *Caps) {
		v, err := c.Invoke("counter", 3)
		require.NoError(t, err)
		final = v
	}))

	assert.Equal(t, 3, final)
	assert.Len(t, e.Snapshots(), 4, "extension state participates in stabilization")
}

func TestInvoke_ExtensionsCompose(t *testing.T) {
	e := newTestEngine()

	require.NoError(t, e.Register("inner", Extension{
		Execute: func(c *Caps, args ...any) any { return "inner:" + args[0].(string) },
	}))
	require.NoError(t, e.Register("outer", Extension{
		Execute: func(c *Caps, args ...any) any {
			v, err := c.Invoke("inner", args[0])
			if err != nil {
				return err
			}
			return "outer(" + v.(string) + ")"
		},
	}))

	var got any
	require.NoError(t, e.SetProgram(func(c *Caps) {
		v, err := c.Invoke("outer", "x")
		require.NoError(t, err)
		got = v
	}))

	assert.Equal(t, "outer(inner:x)", got)
}

func TestInvoke_InitSurvivesReentrantRestart(t *testing.T) {
	e := newTestEngine("run-1", "run-2")

	inits := 0
	require.NoError(t, e.Register("ext", Extension{
		Init:    func(*Engine) { inits++ },
		Execute: func(c *Caps, args ...any) any { return nil },
	}))

	var set *Setter
	require.NoError(t, e.SetProgram(func(c *Caps) {
		_, set = c.State(0)
		_, err := c.Invoke("ext")
		require.NoError(t, err)
	}))

	// External write triggers a fresh run; init must not fire again.
	require.NoError(t, set.Set(1))
	assert.Equal(t, 1, inits)
}
