package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	set := NewSet(1, 2, 2, 3)

	assert.Len(t, set, 3)
	assert.True(t, set.Contains(1))
	assert.True(t, set.Contains(2))
	assert.True(t, set.Contains(3))
	assert.False(t, set.Contains(4))
}

func TestAddRemove(t *testing.T) {
	set := NewSet[string]()

	set.Add("a")
	set.Add("a")
	assert.Len(t, set, 1)
	assert.True(t, set.Contains("a"))

	set.Remove("a")
	assert.False(t, set.Contains("a"))

	set.Remove("missing")
	assert.Len(t, set, 0)
}

func TestDifference(t *testing.T) {
	set := NewSet(1, 2, 3, 4)
	other := NewSet(2, 4, 6)

	difference := set.Difference(other)

	assert.Equal(t, NewSet(1, 3), difference)
	assert.Len(t, set, 4, "difference leaves the receiver untouched")
}

func TestIntersectionEx(t *testing.T) {
	set := NewSet(1, 2)
	superset := NewSet(1, 2, 3)
	overlapping := NewSet(2, 3)
	disjoint := NewSet(8, 9)

	intersection, isSubset := set.IntersectionEx(superset)
	assert.True(t, isSubset)
	assert.Equal(t, NewSet(1, 2), intersection)

	intersection, isSubset = set.IntersectionEx(overlapping)
	assert.False(t, isSubset)
	assert.Equal(t, NewSet(2), intersection)

	intersection, isSubset = set.IntersectionEx(disjoint)
	assert.False(t, isSubset)
	assert.Len(t, intersection, 0)

	_, isSubset = set.IntersectionEx(set)
	assert.True(t, isSubset, "a set is a subset of itself")
}

func TestIntersection(t *testing.T) {
	assert.Equal(t, NewSet(2, 3), NewSet(1, 2, 3).Intersection(NewSet(2, 3, 4)))
}
