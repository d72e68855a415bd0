package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/container"
)

func TestQueueInit(t *testing.T) {
	q := &container.Queue[string]{}
	assert.Nil(t, q.First())
	assert.Nil(t, q.Last())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, []float64{}, q.Keys())
	assert.Equal(t, []string{}, q.Values())
}

func TestQueueOperation(t *testing.T) {
	q := &container.Queue[string]{ID: "test"}

	// test: insert

	// ^, a, ^
	na := &container.QueueNode[string]{S: 1, Value: "a"}
	q.PushBack(na)
	// ^, b, a, ^
	nb := &container.QueueNode[string]{S: 2, Value: "b"}
	q.PushFront(nb)
	// ^, c, b, a, ^
	nc := &container.QueueNode[string]{S: 3, Value: "c"}
	nb.InsertBefore(nc)
	// ^, c, b, a, d, ^
	nd := &container.QueueNode[string]{S: 4, Value: "d"}
	na.InsertAfter(nd)
	assert.Equal(t, 4, q.Len())

	// test: first last next prev

	n := q.First()
	assert.Equal(t, nc, n)
	n = n.Next()
	assert.Equal(t, nb, n)
	n = n.Next()
	assert.Equal(t, na, n)
	assert.Equal(t, n, n.Next().Prev())
	assert.Equal(t, n, n.Prev().Next())
	n = n.Next()
	assert.Equal(t, nd, n)
	assert.Nil(t, n.Next())

	assert.Equal(t, nd, q.Last())
	assert.Equal(t, q, nd.Parent())

	// test: keys values keep insertion order

	assert.Equal(t, []float64{3, 2, 1, 4}, q.Keys())
	assert.Equal(t, []string{"c", "b", "a", "d"}, q.Values())

	// test: remove

	q.Remove(nb)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"c", "a", "d"}, q.Values())
	assert.Nil(t, nb.Parent())

	q.Remove(nc)
	assert.Equal(t, na, q.First())
	q.Remove(nd)
	assert.Equal(t, na, q.Last())
	q.Remove(na)
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.First())
	assert.Nil(t, q.Last())

	// removed nodes can be reused
	q.PushBack(na)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, []string{"a"}, q.Values())
}
