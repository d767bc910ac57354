package view

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruction(t *testing.T) {
	tests := []struct {
		name string
		v    View
		want string
	}{
		{"zero value", View{}, ""},
		{"Empty", Empty(), ""},
		{"FromString", FromString("hello"), "hello"},
		{"FromString empty", FromString(""), ""},
		{"FromBytes", FromBytes([]byte("abc")), "abc"},
		{"FromBytes nil", FromBytes(nil), ""},
		{"FromParts prefix", FromParts([]byte("abcdef"), 3), "abc"},
		{"FromParts zero", FromParts(nil, 0), ""},
		{"FromCString terminated", FromCString([]byte("abc\x00def")), "abc"},
		{"FromCString unterminated", FromCString([]byte("abc")), "abc"},
		{"FromCString nil", FromCString(nil), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
			assert.Equal(t, len(tt.want), tt.v.Len())
			assert.Equal(t, tt.want == "", tt.v.IsEmpty())
		})
	}
}

func TestFromBytesAliases(t *testing.T) {
	b := []byte("abc")
	v := FromBytes(b)
	b[0] = 'x'
	assert.Equal(t, byte('x'), v.At(0))
	assert.Equal(t, len(b), cap(v.Bytes()))
}

func TestFromPartsPanics(t *testing.T) {
	require.Panics(t, func() { FromParts([]byte("ab"), 3) })
	require.Panics(t, func() { FromParts([]byte("ab"), -1) })
}

func TestElementAccess(t *testing.T) {
	v := FromString("xyz")
	assert.Equal(t, byte('x'), v.At(0))
	assert.Equal(t, byte('z'), v.At(2))
	assert.Equal(t, byte('x'), v.First())
	assert.Equal(t, byte('z'), v.Last())

	require.PanicsWithValue(t, "view: index 3 out of range [0, 3)", func() { v.At(3) })
	require.Panics(t, func() { v.At(-1) })
	require.PanicsWithValue(t, "view: First on empty view", func() { Empty().First() })
	require.PanicsWithValue(t, "view: Last on empty view", func() { Empty().Last() })
}

func TestSubstr(t *testing.T) {
	v := FromString("hello world")
	tests := []struct {
		name       string
		pos, count int
		want       string
	}{
		{"middle", 6, 5, "world"},
		{"prefix", 0, 5, "hello"},
		{"empty at end", 11, 0, ""},
		{"whole", 0, 11, "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Substr(tt.pos, tt.count).String())
		})
	}

	require.PanicsWithValue(t, "view: Substr(6, 6) out of range for length 11", func() { v.Substr(6, 6) })
	require.Panics(t, func() { v.Substr(12, 0) })
	require.Panics(t, func() { v.Substr(-1, 1) })
	require.Panics(t, func() { v.Substr(0, -1) })
}

func TestSubstrWholeIsIdentity(t *testing.T) {
	f := func(s string) bool {
		v := FromString(s)
		return v.Substr(0, v.Len()).Equal(v)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestTakeDropPartition(t *testing.T) {
	f := func(s string, k uint8) bool {
		v := FromString(s)
		n := 0
		if v.Len() > 0 {
			n = int(k) % (v.Len() + 1)
		}
		head, rest := v.Take(n), v.Drop(n)
		return head.Len()+rest.Len() == v.Len() && head.String()+rest.String() == s &&
			v.TakeLast(n).String()+v.DropLast(n).String() == s[len(s)-n:]+s[:len(s)-n] &&
			v.DropLast(n).String()+v.TakeLast(n).String() == s
	}
	require.NoError(t, quick.Check(f, nil))
}
