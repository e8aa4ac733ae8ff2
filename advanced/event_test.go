package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue(t *testing.T) {
	var q eventQueue
	first := &EdgeCollapse{Point: Point3{0, 0, 2}, Left: 0, Right: 1}
	split := &Split{Point: Point3{0, 0, 2}, Vertex: 2, EdgeLeft: 3, EdgeRight: 4}
	lowest := &EdgeCollapse{Point: Point3{0, 0, 1}, Left: 5, Right: 6}
	nearlyTied := &EdgeCollapse{Point: Point3{0, 0, 2 - Epsilon/10}, Left: 7, Right: 8}

	assert.True(t, q.push(first))
	assert.True(t, q.push(split))
	assert.True(t, q.push(lowest))
	assert.True(t, q.push(nearlyTied))
	assert.False(t, q.push(&EdgeCollapse{Point: Infinite}), "never events are not queued")
	assert.False(t, q.push(nil))
	require.Equal(t, 4, q.Len())

	assert.Same(t, lowest, q.pop())
	assert.Same(t, split, q.pop(), "splits go first among tied heights")
	assert.Same(t, first, q.pop(), "then insertion order")
	assert.Same(t, nearlyTied, q.pop())
	assert.Nil(t, q.pop())
}

func TestEventStrings(t *testing.T) {
	collapse := &EdgeCollapse{Point: Point3{1, 2, 3}, Left: 4, Right: 5}
	assert.Equal(t, "collapse v4-v5 at (1, 2, 3)", collapse.String())
	assert.Equal(t, Number(3), collapse.Height())

	split := &Split{Point: Point3{1, 2, 3}, Vertex: 6, EdgeLeft: 7, EdgeRight: 8}
	assert.Equal(t, "split v6 against v7-v8 at (1, 2, 3)", split.String())
}
