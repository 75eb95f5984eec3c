package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vschromium/corefind/pkg/search"
)

const sampleYAML = `
profiles:
  - name: aws-key
    description: AWS access key id
    pattern: AKIA[0-9A-Z]{16}
    algorithm: re2-regex
    match_case: true
    keywords: ["AKIA"]
  - name: todo
    pattern: TODO
    algorithm: plain
    match_case: false
    whole_word: true
`

func TestParse_Basic(t *testing.T) {
	list, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "aws-key", list[0].Name)
	assert.Equal(t, "re2-regex", list[0].Algorithm)
	assert.True(t, list[0].MatchCase)
	assert.Equal(t, []string{"AKIA"}, list[0].Keywords)
}

func TestParse_MissingName(t *testing.T) {
	_, err := Parse([]byte("profiles:\n  - pattern: x\n    algorithm: plain\n"))
	assert.Error(t, err)
}

func TestAlgorithmKind_Unknown(t *testing.T) {
	p := &Profile{Name: "bad", Algorithm: "quantum"}
	_, err := p.AlgorithmKind()
	assert.Error(t, err)
}

func TestAlgorithmKind_Known(t *testing.T) {
	p := &Profile{Name: "x", Algorithm: "bndm64"}
	kind, err := p.AlgorithmKind()
	require.NoError(t, err)
	assert.Equal(t, search.Bndm64, kind)
}

func TestOptions_Bits(t *testing.T) {
	p := &Profile{MatchCase: true, WholeWord: true}
	opts := p.Options()
	assert.True(t, opts&search.MatchCase != 0)
	assert.True(t, opts&search.MatchWholeWord != 0)
}

func TestNewMatcher_Plain(t *testing.T) {
	list, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	todo, err := Find(list, "todo")
	require.NoError(t, err)

	m, err := todo.NewMatcher()
	require.NoError(t, err)
	defer m.Close()

	p := search.NewParams([]byte("please TODO this"))
	m.FindNext(p)
	require.True(t, p.MatchStart >= 0 && p.MatchLength > 0)
	assert.Equal(t, 7, p.MatchStart)
}

func TestFind_NotFound(t *testing.T) {
	list, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	_, err = Find(list, "nope")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/profiles.yaml")
	assert.Error(t, err)
}
