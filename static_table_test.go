package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTableEntries(t *testing.T) {
	st := GetStaticTable()
	require.Equal(t, 61, st.Size())

	// Spot checks against draft-07 Appendix B
	cases := []struct {
		index uint32
		field HeaderField
	}{
		{1, HeaderField{Name: ":authority", Value: ""}},
		{2, HeaderField{Name: ":method", Value: "GET"}},
		{5, HeaderField{Name: ":path", Value: "/index.html"}},
		{8, HeaderField{Name: ":status", Value: "200"}},
		{16, HeaderField{Name: "accept-encoding", Value: ""}},
		{61, HeaderField{Name: "www-authenticate", Value: ""}},
	}
	for _, tc := range cases {
		field, ok := st.Get(tc.index)
		require.True(t, ok, "index %d", tc.index)
		assert.Equal(t, tc.field, field)
	}
}

func TestStaticTableGetOutOfRange(t *testing.T) {
	st := GetStaticTable()

	_, ok := st.Get(0)
	assert.False(t, ok)
	_, ok = st.Get(62)
	assert.False(t, ok)
}

func TestStaticTableFind(t *testing.T) {
	st := GetStaticTable()

	index, ok := st.FindExact(":method", "POST")
	require.True(t, ok)
	assert.Equal(t, uint32(3), index)

	_, ok = st.FindExact(":method", "PATCH")
	assert.False(t, ok)

	index, ok = st.FindName(":status")
	require.True(t, ok)
	assert.Equal(t, uint32(8), index)

	_, ok = st.FindName("x-custom")
	assert.False(t, ok)
}

func TestStaticTableSingleton(t *testing.T) {
	assert.Same(t, GetStaticTable(), GetStaticTable())
}
