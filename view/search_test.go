package view

import (
	"bytes"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexByte(t *testing.T) {
	v := FromString("hello")
	assert.Equal(t, 2, v.IndexByte('l'))
	assert.Equal(t, 3, v.LastIndexByte('l'))
	assert.Equal(t, NPos, v.IndexByte('z'))
	assert.Equal(t, NPos, v.LastIndexByte('z'))
	assert.Equal(t, NPos, Empty().IndexByte('a'))
	assert.Equal(t, NPos, Empty().LastIndexByte('a'))
}

func TestIndexByteFrom(t *testing.T) {
	v := FromString("a,b,c")
	tests := []struct {
		name string
		pos  int
		want int
	}{
		{"start", 0, 1},
		{"on delimiter", 1, 1},
		{"after first", 2, 3},
		{"past last", 4, NPos},
		{"at end", 5, NPos},
		{"beyond end", 100, NPos},
		{"negative", -7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IndexByteFrom(tt.pos, ','))
		})
	}
	assert.Equal(t, NPos, Empty().IndexByteFrom(0, ','))
}

func TestLastIndexByteFrom(t *testing.T) {
	v := FromString("a,b,c")
	tests := []struct {
		name string
		pos  int
		want int
	}{
		{"end", 4, 3},
		{"on delimiter", 3, 3},
		{"before last", 2, 1},
		{"before first", 0, NPos},
		{"beyond end", 100, 3},
		{"negative", -1, NPos},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.LastIndexByteFrom(tt.pos, ','))
		})
	}
	assert.Equal(t, NPos, Empty().LastIndexByteFrom(0, ','))
	assert.Equal(t, 0, FromString(",").LastIndexByteFrom(-3, ','))
}

func TestIndexBanana(t *testing.T) {
	v := FromString("banana")

	assert.Equal(t, 1, v.IndexString("ana"))
	assert.Equal(t, 3, v.LastIndexString("ana"))
	assert.Equal(t, 3, v.IndexStringFrom(2, "ana"))
	assert.Equal(t, 1, v.LastIndexStringFrom(2, "ana"))
	assert.Equal(t, NPos, v.IndexStringFrom(4, "ana"))
	assert.Equal(t, 3, v.LastIndexStringFrom(100, "ana"))
	assert.Equal(t, NPos, v.LastIndexStringFrom(0, "ana"))
	assert.Equal(t, 0, v.IndexStringFrom(-5, "ban"))
	assert.Equal(t, NPos, v.IndexString("bananas"))
	assert.Equal(t, NPos, v.LastIndexString("bananas"))
	assert.Equal(t, NPos, v.IndexString("nab"))
	assert.Equal(t, 0, v.IndexString("banana"))
	assert.Equal(t, 0, v.LastIndexString("banana"))
}

func TestLastIndexFromNeedsRoom(t *testing.T) {
	v := FromString("abcabc")
	// A match may extend past pos as long as it starts at or before it, but
	// the first pos+1 bytes must be able to hold the needle.
	assert.Equal(t, 3, v.LastIndexStringFrom(3, "abc"))
	assert.Equal(t, 0, v.LastIndexStringFrom(2, "abc"))
	assert.Equal(t, NPos, v.LastIndexStringFrom(1, "abc"))
}

func TestEmptyNeedle(t *testing.T) {
	for _, s := range []string{"", "a", "banana"} {
		v := FromString(s)
		assert.Equal(t, 0, v.IndexString(""), "haystack %q", s)
		assert.Equal(t, len(s), v.LastIndexString(""), "haystack %q", s)
		assert.Equal(t, 0, v.IndexStringFrom(-1, ""), "haystack %q", s)
		assert.Equal(t, len(s), v.IndexStringFrom(len(s)+10, ""), "haystack %q", s)
		assert.Equal(t, len(s), v.LastIndexStringFrom(len(s)+10, ""), "haystack %q", s)
		assert.True(t, v.ContainsString(""), "haystack %q", s)
	}
	assert.Equal(t, 2, FromString("banana").IndexStringFrom(2, ""))
	assert.Equal(t, 2, FromString("banana").LastIndexStringFrom(2, ""))
}

func TestContains(t *testing.T) {
	v := FromString("the quick brown fox")
	assert.True(t, v.ContainsString("quick"))
	assert.True(t, v.Contains(FromString("fox")))
	assert.False(t, v.ContainsString("slow"))
	assert.False(t, Empty().ContainsString("x"))
}

func TestSingleOccurrenceAgrees(t *testing.T) {
	v := FromString("xxxxNEEDLExxxx")
	assert.Equal(t, 4, v.IndexString("NEEDLE"))
	assert.Equal(t, 4, v.LastIndexString("NEEDLE"))
}

func TestIndexMatchesStrings(t *testing.T) {
	f := func(hay, needle []byte) bool {
		// Narrow the alphabet so matches actually happen.
		for i := range hay {
			hay[i] = 'a' + hay[i]%3
		}
		for i := range needle {
			needle[i] = 'a' + needle[i]%3
		}
		if len(needle) > 4 {
			needle = needle[:4]
		}
		v, n := FromBytes(hay), FromBytes(needle)
		return v.Index(n) == bytes.Index(hay, needle) &&
			v.LastIndex(n) == bytes.LastIndex(hay, needle)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 2000}))
}

func TestIndexFromMatchesStrings(t *testing.T) {
	f := func(hay []byte, pos int8) bool {
		for i := range hay {
			hay[i] = 'a' + hay[i]%2
		}
		s := string(hay)
		p := int(pos)
		clamped := min(max(p, 0), len(s))

		want := strings.Index(s[clamped:], "ab")
		if want >= 0 {
			want += clamped
		}
		if FromString(s).IndexStringFrom(p, "ab") != want {
			return false
		}

		// The last match starting at or before pos, once pos+1 bytes can hold it.
		wantLast := NPos
		if clamped+1 >= len("ab") {
			limit := min(clamped+len("ab"), len(s))
			wantLast = strings.LastIndex(s[:limit], "ab")
		}
		return FromString(s).LastIndexStringFrom(p, "ab") == wantLast
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 2000}))
}
