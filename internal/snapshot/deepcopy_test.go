package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_Primitives(t *testing.T) {
	assert.Nil(t, Clone(nil))
	assert.Equal(t, 42, Clone(42))
	assert.Equal(t, "hi", Clone("hi"))
	assert.Equal(t, true, Clone(true))
	assert.Equal(t, 1.5, Clone(1.5))
}

func TestClone_Slice(t *testing.T) {
	src := []any{1, "a", []int{2, 3}}
	got := Clone(src).([]any)

	require.Equal(t, src, got)

	// Mutating the source must not leak into the clone, at any depth.
	src[0] = 99
	src[2].([]int)[0] = 99
	assert.Equal(t, 1, got[0])
	assert.Equal(t, []int{2, 3}, got[2])
}

func TestClone_TypedSlice(t *testing.T) {
	src := []int{1, 2}
	got := Clone(src).([]int)
	require.Equal(t, src, got)
	src[0] = 9
	assert.Equal(t, 1, got[0])
}

func TestClone_NilSliceAndMapPreserved(t *testing.T) {
	var s []int
	var m map[string]int
	assert.Nil(t, Clone(s))
	assert.Nil(t, Clone(m))
}

func TestClone_Map(t *testing.T) {
	src := map[string]any{"xs": []int{1}, "n": 5}
	got := Clone(src).(map[string]any)

	require.Equal(t, src, got)

	src["n"] = 6
	src["xs"].([]int)[0] = 9
	assert.Equal(t, 5, got["n"])
	assert.Equal(t, []int{1}, got["xs"])
}

func TestClone_SetLikeMap(t *testing.T) {
	src := map[string]struct{}{"a": {}, "b": {}}
	got := Clone(src).(map[string]struct{})
	require.Equal(t, src, got)
	delete(src, "a")
	assert.Len(t, got, 2)
}

func TestClone_Time(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, ts, Clone(ts))

	p := &ts
	got := Clone(p).(*time.Time)
	require.Equal(t, ts, *got)
	assert.NotSame(t, p, got)

	var nilP *time.Time
	assert.Nil(t, Clone(nilP).(*time.Time))
}

func TestClone_OpaqueByReference(t *testing.T) {
	type opaque struct{ n int }
	o := &opaque{n: 1}
	got := Clone(o).(*opaque)

	// Unrecognized structured types are shared, not cloned.
	assert.Same(t, o, got)

	fn := func() {}
	assert.NotNil(t, Clone(fn))
}

func TestClone_NilInterfaceElement(t *testing.T) {
	src := []any{nil, 1}
	got := Clone(src).([]any)
	assert.Nil(t, got[0])
	assert.Equal(t, 1, got[1])

	m := map[string]any{"k": nil}
	gm := Clone(m).(map[string]any)
	v, ok := gm["k"]
	assert.True(t, ok)
	assert.Nil(t, v)
}
