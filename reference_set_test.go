package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceSetValueIdentity(t *testing.T) {
	rs := NewReferenceSet()

	h0 := HeaderField{Name: "foo", Value: "bar0"}
	h1 := HeaderField{Name: "foo1", Value: "bar00"}
	h2 := HeaderField{Name: "foo2", Value: "bar000"}

	rs.Add(h0, true)
	rs.Add(h1, false)
	rs.Add(h2, true)
	require.Equal(t, 3, rs.Len())

	// Same name, different value is a distinct reference
	h3 := HeaderField{Name: "foo2", Value: "bar0000"}
	rs.Add(h3, true)
	assert.Equal(t, 4, rs.Len())

	rs.Remove(h2)
	assert.Equal(t, 3, rs.Len())
	assert.False(t, rs.Has(h2))
	assert.True(t, rs.Has(h3))
}

func TestReferenceSetRemove(t *testing.T) {
	rs := NewReferenceSet()
	field := HeaderField{Name: "foo", Value: "bar"}
	rs.Add(field, true)

	assert.True(t, rs.Remove(field))
	assert.False(t, rs.Remove(field))
	assert.Equal(t, 0, rs.Len())
}

func TestReferenceSetReset(t *testing.T) {
	rs := NewReferenceSet()
	rs.Add(HeaderField{Name: "foo", Value: "bar"}, true)
	rs.Add(HeaderField{Name: "baz", Value: "qux"}, true)

	rs.Reset()

	assert.Len(t, rs.Unemitted(), 2)
	assert.Equal(t, 2, rs.Len())
}

func TestReferenceSetEmpty(t *testing.T) {
	rs := NewReferenceSet()
	rs.Add(HeaderField{Name: "foo", Value: "bar"}, false)
	rs.Empty()

	assert.Equal(t, 0, rs.Len())
	assert.False(t, rs.Has(HeaderField{Name: "foo", Value: "bar"}))
}

func TestReferenceSetUnemitted(t *testing.T) {
	rs := NewReferenceSet()
	emitted := HeaderField{Name: "a", Value: "1"}
	pending := HeaderField{Name: "b", Value: "2"}
	rs.Add(emitted, true)
	rs.Add(pending, false)

	unemitted := rs.Unemitted()
	require.Len(t, unemitted, 1)
	assert.Equal(t, pending, unemitted[0])
}
