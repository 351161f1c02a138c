package singleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct{ n int }

// TestNew_MutexOnlyWhenThreadSafe verifies the lock is allocated at wrap time
// and only for thread-safe wrappers.
func TestNew_MutexOnlyWhenThreadSafe(t *testing.T) {
	t.Parallel()

	safe := New(Func(func() *box { return &box{} }))
	require.NotNil(t, safe.mu)

	unsafe := New(Func(func() *box { return &box{} }), WithThreadSafe(false))
	assert.Nil(t, unsafe.mu)

	// Both still cache.
	assert.Same(t, safe.MustGet(), safe.MustGet())
	assert.Same(t, unsafe.MustGet(), unsafe.MustGet())
}

// TestTypeName verifies the default diagnostic name for a few shapes of T.
func TestTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "singleton.box", typeName[box]())
	assert.Equal(t, "int", typeName[int]())
	assert.Equal(t, "map[string]int", typeName[map[string]int]())
}

// TestConstruct_ErrorWithInstanceIsNotCached verifies a constructor that
// returns both a value and an error does not populate the slot.
func TestConstruct_ErrorWithInstanceIsNotCached(t *testing.T) {
	t.Parallel()

	w := New(func(...any) (*box, error) { return &box{n: 1}, assert.AnError })

	got, err := w.Get()
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, got)
	assert.Nil(t, w.inst.Load())
}

// TestDefaultSettings verifies the defaults shared by Of and DefaultConfig.
func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := defaultSettings("x")
	assert.Equal(t, settings{name: "x", threadSafe: true}, s)

	var fromCfg settings
	WithConfig(DefaultConfig())(&fromCfg)
	assert.Equal(t, s.threadSafe, fromCfg.threadSafe)
	assert.Equal(t, s.strict, fromCfg.strict)
}
