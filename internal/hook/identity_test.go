package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentical_Nil(t *testing.T) {
	assert.True(t, Identical(nil, nil))
	assert.False(t, Identical(nil, 0))
	assert.False(t, Identical("", nil))
}

func TestIdentical_Primitives(t *testing.T) {
	assert.True(t, Identical(1, 1))
	assert.False(t, Identical(1, 2))
	assert.True(t, Identical("a", "a"))
	assert.False(t, Identical("a", "b"))
	assert.True(t, Identical(true, true))

	// Different dynamic types are never identical, even when == would hold
	// after conversion.
	assert.False(t, Identical(1, int64(1)))
	assert.False(t, Identical(1.0, 1))
}

func TestIdentical_Slices(t *testing.T) {
	s := []int{1, 2, 3}
	same := s
	assert.True(t, Identical(s, same))

	// Equal content, fresh backing array: a change.
	assert.False(t, Identical(s, []int{1, 2, 3}))

	// Same backing array, different length: a change.
	assert.False(t, Identical(s, s[:2]))
}

func TestIdentical_MapsAndPointers(t *testing.T) {
	m := map[string]int{"a": 1}
	assert.True(t, Identical(m, m))
	assert.False(t, Identical(m, map[string]int{"a": 1}))

	p := &StateSlot{}
	assert.True(t, Identical(p, p))
	assert.False(t, Identical(p, &StateSlot{}))
}

func TestIdentical_NonComparableStruct(t *testing.T) {
	type wrapper struct{ xs []int }
	w := wrapper{xs: []int{1}}
	// Non-comparable, non-reference values are never identical, not even
	// to themselves: they have no stable identity.
	assert.False(t, Identical(w, w))
}

func TestDepsChanged(t *testing.T) {
	shared := []int{1}

	// No list supplied: always changed.
	assert.True(t, DepsChanged([]any{1}, nil))
	assert.True(t, DepsChanged(nil, nil))

	// Length mismatch.
	assert.True(t, DepsChanged([]any{1}, []any{1, 2}))

	// Element identity mismatch.
	assert.True(t, DepsChanged([]any{[]int{1}}, []any{[]int{1}}))

	// Unchanged: same primitives, same references.
	assert.False(t, DepsChanged([]any{1, "a", shared}, []any{1, "a", shared}))

	// Empty non-nil list never changes after the first visit.
	assert.False(t, DepsChanged([]any{}, []any{}))
	assert.False(t, DepsChanged(nil, []any{}), "stored absent vs supplied empty compare as equal lengths")
}
