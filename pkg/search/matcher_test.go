package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectAll drives FindNext to exhaustion and returns the (start, length)
// pairs in order, the way a host would iterate a session.
func collectAll(t *testing.T, m Matcher, text []byte) [][2]int {
	t.Helper()
	p := NewParams(text)
	var got [][2]int
	for {
		m.FindNext(p)
		if p.MatchStart < 0 {
			break
		}
		got = append(got, [2]int{p.MatchStart, p.MatchLength})
	}
	return got
}

func TestPlain_BasicMatches(t *testing.T) {
	// spec §8 scenario 1
	m, err := New(Plain, []byte("ab"), MatchCase)
	require.NoError(t, err)
	got := collectAll(t, m, []byte("xaabab"))
	assert.Equal(t, [][2]int{{2, 2}, {4, 2}}, got)
}

func TestBndm32_CaseInsensitive(t *testing.T) {
	// spec §8 scenario 2
	m, err := New(Bndm32, []byte("AbC"), 0)
	require.NoError(t, err)
	got := collectAll(t, m, []byte("xxabcxxABCx"))
	assert.Equal(t, [][2]int{{2, 3}, {7, 3}}, got)
}

func TestBoyerMoore_EmptyText(t *testing.T) {
	// spec §8 scenario 3
	m, err := New(BoyerMoore, []byte("needle"), MatchCase)
	require.NoError(t, err)
	got := collectAll(t, m, []byte(""))
	assert.Empty(t, got)
}

func TestEcmaRegex_ZeroLengthForwardProgress(t *testing.T) {
	// spec §8 scenario 4
	m, err := New(EcmaRegex, []byte("a*"), MatchCase)
	require.NoError(t, err)
	defer m.Close()
	got := collectAll(t, m, []byte("bbb"))
	require.Len(t, got, 4)
	for i, g := range got {
		assert.Equal(t, i, g[0])
		assert.Equal(t, 0, g[1])
	}
}

func TestWholeWord_Plain(t *testing.T) {
	// spec §8 scenario 5
	m, err := New(Plain, []byte("cat"), MatchWholeWord|MatchCase)
	require.NoError(t, err)
	got := collectAll(t, m, []byte("cat cathedral scat cat!"))
	assert.Equal(t, [][2]int{{0, 3}, {19, 3}}, got)
}

func TestBndm64_LongerPattern(t *testing.T) {
	m, err := New(Bndm64, []byte("needle-in-a-haystack"), MatchCase)
	require.NoError(t, err)
	got := collectAll(t, m, []byte("zzzneedle-in-a-haystackzzzneedle-in-a-haystackzzz"))
	assert.Equal(t, [][2]int{{3, 20}, {26, 20}}, got)
}

func TestBndm32_RejectsPatternTooLong(t *testing.T) {
	_, err := New(Bndm32, make([]byte, 33), MatchCase)
	require.Error(t, err)
	var ce *CreateError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrInvalidArgument, ce.Code)
}

func TestBndm64_RejectsPatternTooLong(t *testing.T) {
	_, err := New(Bndm64, make([]byte, 65), MatchCase)
	require.Error(t, err)
}

func TestRe2Regex_Basic(t *testing.T) {
	m, err := New(Re2Regex, []byte(`\d+`), MatchCase)
	require.NoError(t, err)
	got := collectAll(t, m, []byte("a12 b345 c6"))
	assert.Equal(t, [][2]int{{1, 2}, {5, 3}, {10, 1}}, got)
}

func TestRe2Regex_CaseFold(t *testing.T) {
	m, err := New(Re2Regex, []byte("cat"), 0)
	require.NoError(t, err)
	got := collectAll(t, m, []byte("CAT cat Cat"))
	assert.Len(t, got, 3)
}

func TestRe2Regex_InvalidPatternNormalizesMessage(t *testing.T) {
	_, err := New(Re2Regex, []byte("(unterminated"), MatchCase)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Regular expression: ")
}

func TestEcmaRegex_InvalidPatternNormalizesMessage(t *testing.T) {
	_, err := New(EcmaRegex, []byte("(unterminated"), MatchCase)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Regular expression: ")
}

func TestEcmaRegex_Backreference(t *testing.T) {
	// EcmaRegex allows backreferences; Re2Regex cannot express this at all.
	m, err := New(EcmaRegex, []byte(`(\w+) \1`), MatchCase)
	require.NoError(t, err)
	defer m.Close()
	got := collectAll(t, m, []byte("hello hello world world"))
	require.Len(t, got, 2)
}

func TestCaseFoldEquivalence(t *testing.T) {
	// spec §8 "Case-fold equivalence": MatchCase unset on mixed text should
	// equal case-sensitive search over the folded text.
	text := []byte("FooBarFooBar")
	pattern := []byte("foobar")

	insensitive, err := New(Plain, pattern, 0)
	require.NoError(t, err)
	got := collectAll(t, insensitive, text)

	folded := make([]byte, len(text))
	for i, b := range text {
		folded[i] = foldByte(b)
	}
	sensitive, err := New(Plain, pattern, MatchCase)
	require.NoError(t, err)
	want := collectAll(t, sensitive, folded)

	assert.Equal(t, want, got)
}

func TestNonOverlapAndBounds(t *testing.T) {
	for _, kind := range []AlgorithmKind{Plain, Bndm32, Bndm64, BoyerMoore} {
		m, err := New(kind, []byte("aa"), MatchCase)
		require.NoError(t, err)
		text := []byte("aaaaaa")
		matches := collectAll(t, m, text)
		require.NotEmpty(t, matches)
		for i := 1; i < len(matches); i++ {
			prevEnd := matches[i-1][0] + matches[i-1][1]
			assert.GreaterOrEqual(t, matches[i][0], prevEnd)
		}
		for _, mt := range matches {
			assert.GreaterOrEqual(t, mt[0], 0)
			assert.LessOrEqual(t, mt[0]+mt[1], len(text))
		}
	}
}

func TestCancelSearch_ResetsToFreshSession(t *testing.T) {
	m, err := New(EcmaRegex, []byte("a+"), MatchCase)
	require.NoError(t, err)
	defer m.Close()

	p := NewParams([]byte("aaa bbb aaa"))
	m.FindNext(p)
	require.True(t, p.hasMatch())

	m.CancelSearch(p)
	assert.False(t, p.hasMatch())

	// Idempotent.
	m.CancelSearch(p)
	assert.False(t, p.hasMatch())

	// A fresh session starts over from the head of text.
	m.FindNext(p)
	require.True(t, p.hasMatch())
	assert.Equal(t, 0, p.MatchStart)
}

func TestGetSearchBufferSize(t *testing.T) {
	plain, err := New(Plain, []byte("x"), MatchCase)
	require.NoError(t, err)
	assert.Zero(t, plain.GetSearchBufferSize())

	re2, err := New(Re2Regex, []byte("x"), MatchCase)
	require.NoError(t, err)
	assert.Zero(t, re2.GetSearchBufferSize())

	ecma, err := New(EcmaRegex, []byte("x"), MatchCase)
	require.NoError(t, err)
	defer ecma.Close()
	assert.Positive(t, ecma.GetSearchBufferSize())
}
