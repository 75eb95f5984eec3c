package corefind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAll_Plain(t *testing.T) {
	m, err := New(Plain, []byte("needle"), DefaultOptions())
	require.NoError(t, err)
	defer m.Close()

	matches := FindAll(m, []byte("a needle in a needle stack"))
	require.Len(t, matches, 2)
	assert.Equal(t, Match{Start: 2, Length: 6}, matches[0])
	assert.Equal(t, Match{Start: 14, Length: 6}, matches[1])
}

func TestFindAll_NoMatches(t *testing.T) {
	m, err := New(Plain, []byte("xyz"), DefaultOptions())
	require.NoError(t, err)
	defer m.Close()

	assert.Empty(t, FindAll(m, []byte("nothing here")))
}

func TestNew_InvalidBndmPattern(t *testing.T) {
	_, err := New(Bndm32, make([]byte, 64), DefaultOptions())
	require.Error(t, err)
	var createErr *CreateError
	require.ErrorAs(t, err, &createErr)
}
