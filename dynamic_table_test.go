package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicTableAddOrder(t *testing.T) {
	dt := NewDynamicTable(4096)
	dt.Add(HeaderField{Name: "foo", Value: "bar0"})
	dt.Add(HeaderField{Name: "foo1", Value: "bar00"})
	dt.Add(HeaderField{Name: "foo2", Value: "bar000"})

	require.Equal(t, uint32(3), dt.Len())

	// Newest entry sits at index 1
	field, ok := dt.Get(1)
	require.True(t, ok)
	assert.Equal(t, "foo2", field.Name)

	field, ok = dt.Get(3)
	require.True(t, ok)
	assert.Equal(t, "foo", field.Name)

	_, ok = dt.Get(0)
	assert.False(t, ok)
	_, ok = dt.Get(4)
	assert.False(t, ok)
}

func TestDynamicTableSizeAccounting(t *testing.T) {
	dt := NewDynamicTable(4096)
	a := HeaderField{Name: "foo", Value: "bar0"}
	b := HeaderField{Name: "foo1", Value: "bar00"}
	dt.Add(a)
	dt.Add(b)

	assert.Equal(t, a.Size()+b.Size(), dt.CurrentSize())

	evicted, ok := dt.RemoveOldest()
	require.True(t, ok)
	assert.Equal(t, a, evicted)
	assert.Equal(t, b.Size(), dt.CurrentSize())
}

func TestDynamicTableRemoveOldestEmpty(t *testing.T) {
	dt := NewDynamicTable(4096)
	_, ok := dt.RemoveOldest()
	assert.False(t, ok)
}

func TestDynamicTableFind(t *testing.T) {
	dt := NewDynamicTable(4096)
	dt.Add(HeaderField{Name: "foo", Value: "bar"})
	dt.Add(HeaderField{Name: "baz", Value: "qux"})

	index, ok := dt.FindExact("foo", "bar")
	require.True(t, ok)
	assert.Equal(t, uint32(2), index)

	_, ok = dt.FindExact("foo", "other")
	assert.False(t, ok)

	index, ok = dt.FindName("foo")
	require.True(t, ok)
	assert.Equal(t, uint32(2), index)

	_, ok = dt.FindName("missing")
	assert.False(t, ok)
}
