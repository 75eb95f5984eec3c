// Package prefilter gives a pattern-search host a cheap way to skip files
// that provably cannot contain a match, before handing them to the
// (comparatively expensive) engines in pkg/search. It is grounded on the
// teacher's pkg/prefilter/prefilter.go, generalized from "skip detection
// rules whose keywords are absent" to "skip candidate files whose search
// profile's required literal substrings are absent."
//
// A prefilter never changes what pkg/search reports for a file it does
// decide to hand over — it only changes which files reach the matcher — so
// it must never be used to second-guess a match, only to skip scanning.
package prefilter

import "github.com/cloudflare/ahocorasick"

// Entry associates an identifier (typically a search profile name) with the
// literal substrings that must all be absent for the entry to be safely
// skipped. An Entry with no keywords is always considered a candidate,
// mirroring the teacher's "no keywords = always check this rule."
type Entry struct {
	ID       string
	Keywords []string
}

// Prefilter answers "which entries might match this content" using a single
// Aho-Corasick automaton over the union of all entries' keywords.
type Prefilter struct {
	matcher        *ahocorasick.Matcher
	keywords       []string
	keywordEntries map[string][]string
	always         []string
}

// New builds a Prefilter from entries.
func New(entries []Entry) *Prefilter {
	pf := &Prefilter{keywordEntries: make(map[string][]string)}

	seen := make(map[string]bool)
	for _, e := range entries {
		if len(e.Keywords) == 0 {
			pf.always = append(pf.always, e.ID)
			continue
		}
		for _, kw := range e.Keywords {
			if !seen[kw] {
				seen[kw] = true
				pf.keywords = append(pf.keywords, kw)
			}
			pf.keywordEntries[kw] = append(pf.keywordEntries[kw], e.ID)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}
	return pf
}

// Candidates returns the IDs of entries that might match content: every
// always-checked entry, plus every keyword-gated entry whose keyword
// occurs in content.
func (pf *Prefilter) Candidates(content []byte) []string {
	result := make([]string, 0, len(pf.always))
	result = append(result, pf.always...)

	if pf.matcher == nil {
		return result
	}

	seen := make(map[string]bool, len(result))
	for _, id := range result {
		seen[id] = true
	}

	for _, hit := range pf.matcher.Match(content) {
		kw := pf.keywords[hit]
		for _, id := range pf.keywordEntries[kw] {
			if !seen[id] {
				seen[id] = true
				result = append(result, id)
			}
		}
	}
	return result
}
