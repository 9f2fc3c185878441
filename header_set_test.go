package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderFieldSize(t *testing.T) {
	assert.Equal(t, uint32(38), HeaderField{Name: "foo", Value: "bar"}.Size())
	assert.Equal(t, uint32(32), HeaderField{}.Size())
	assert.Equal(t, uint32(42), HeaderField{Name: ":authority", Value: ""}.Size())
}

func TestHeaderSetOrderAndValues(t *testing.T) {
	hs := &HeaderSet{}
	hs.Add("cookie", "a=1")
	hs.Add("date", "04-04-2014")
	hs.Add("cookie", "b=2")

	assert.Equal(t, 3, hs.Len())
	assert.Equal(t, []string{"a=1", "b=2"}, hs.Values("cookie"))
	assert.Equal(t, []string{"04-04-2014"}, hs.Values("date"))
	assert.Nil(t, hs.Values("absent"))
}

func TestHeaderSetCaseSensitive(t *testing.T) {
	hs := NewHeaderSet(HeaderField{Name: "Foo", Value: "Bar"})

	assert.True(t, hs.Contains(HeaderField{Name: "Foo", Value: "Bar"}))
	assert.False(t, hs.Contains(HeaderField{Name: "foo", Value: "Bar"}))
	assert.Nil(t, hs.Values("foo"))
}

func TestHeaderSetEqual(t *testing.T) {
	a := NewHeaderSet(
		HeaderField{Name: "foo", Value: "bar"},
		HeaderField{Name: "foo", Value: "bar"},
		HeaderField{Name: "baz", Value: "qux"},
	)
	b := NewHeaderSet(
		HeaderField{Name: "baz", Value: "qux"},
		HeaderField{Name: "foo", Value: "bar"},
		HeaderField{Name: "foo", Value: "bar"},
	)
	c := NewHeaderSet(
		HeaderField{Name: "foo", Value: "bar"},
		HeaderField{Name: "baz", Value: "qux"},
	)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))
}
