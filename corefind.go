// Package corefind provides an in-memory pattern-search library: plain
// substring, BNDM, Boyer-Moore and ECMAScript/RE2-flavored regular
// expression matching, plus the text-kind classification and line-extent
// helpers a source-code search tool builds on.
//
// # Basic usage
//
//	m, err := corefind.New(corefind.Plain, []byte("needle"), corefind.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	matches := corefind.FindAll(m, []byte("a needle in a haystack"))
//	for _, match := range matches {
//	    fmt.Printf("match at %d, length %d\n", match.Start, match.Length)
//	}
package corefind

import (
	"github.com/vschromium/corefind/pkg/search"
)

// Re-export commonly used types for convenience. Users can import just
// "github.com/vschromium/corefind" without subpackages.
type (
	// Matcher is the common interface every search engine implements.
	Matcher = search.Matcher

	// Params is the iteration handle threaded through a search session.
	Params = search.Params

	// Options is the bitset of match-time behaviors (case sensitivity,
	// whole-word filtering).
	Options = search.Options

	// AlgorithmKind selects which search engine New constructs.
	AlgorithmKind = search.AlgorithmKind

	// CreateError reports why a matcher could not be constructed.
	CreateError = search.CreateError

	// CreateErrorCode classifies a CreateError.
	CreateErrorCode = search.CreateErrorCode
)

// Re-export algorithm kind constants.
const (
	Plain      = search.Plain
	Bndm32     = search.Bndm32
	Bndm64     = search.Bndm64
	BoyerMoore = search.BoyerMoore
	EcmaRegex  = search.EcmaRegex
	Re2Regex   = search.Re2Regex
)

// Re-export option bits.
const (
	MatchCase      = search.MatchCase
	MatchWholeWord = search.MatchWholeWord
)

// New constructs a Matcher for the given algorithm, pattern and options.
func New(kind AlgorithmKind, pattern []byte, opts Options) (Matcher, error) {
	return search.New(kind, pattern, opts)
}

// DefaultOptions returns the zero-value Options (case-insensitive, no
// whole-word filtering), matching search.DefaultOptions.
func DefaultOptions() Options {
	return search.DefaultOptions()
}

// Match is one non-overlapping occurrence found by FindAll.
type Match struct {
	Start  int
	Length int
}

// FindAll collects every non-overlapping match of m over text, driving it
// to exhaustion the way a caller would with its own NewParams/FindNext loop.
func FindAll(m Matcher, text []byte) []Match {
	p := search.NewParams(text)
	var matches []Match
	for {
		m.FindNext(p)
		if p.MatchStart < 0 {
			break
		}
		matches = append(matches, Match{Start: p.MatchStart, Length: p.MatchLength})
	}
	m.CancelSearch(p)
	return matches
}
