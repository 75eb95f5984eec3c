package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toUTF16(s string) []uint16 {
	units := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		units[i] = uint16(s[i])
	}
	return units
}

func TestUtf16Search_CaseSensitive(t *testing.T) {
	idx, found := Utf16Search(toUTF16("xxHelloyy"), toUTF16("Hello"), true)
	require.True(t, found)
	assert.Equal(t, 2, idx)

	_, found = Utf16Search(toUTF16("xxhelloyy"), toUTF16("Hello"), true)
	assert.False(t, found)
}

func TestUtf16Search_CaseFold(t *testing.T) {
	idx, found := Utf16Search(toUTF16("xxHELLOyy"), toUTF16("hello"), false)
	require.True(t, found)
	assert.Equal(t, 2, idx)
}

func TestUtf16Search_NotFound(t *testing.T) {
	_, found := Utf16Search(toUTF16("abc"), toUTF16("xyz"), true)
	assert.False(t, found)
}

func TestUtf16Search_PatternLongerThanText(t *testing.T) {
	_, found := Utf16Search(toUTF16("ab"), toUTF16("abcdef"), true)
	assert.False(t, found)
}
