package search

// wholeWordMatcher wraps an inner Matcher, re-invoking its FindNext until a
// match satisfies the word-boundary predicate or the inner engine is
// exhausted. Grounded on search_base.cpp's IsWholeWordMatch/IsWordCharacter:
// word characters are ASCII letters only — digits and underscore are
// deliberately excluded (spec §4.6, §9).
type wholeWordMatcher struct {
	inner Matcher
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func (m *wholeWordMatcher) GetSearchBufferSize() int { return m.inner.GetSearchBufferSize() }

func (m *wholeWordMatcher) FindNext(p *Params) {
	for {
		m.inner.FindNext(p)
		if !p.hasMatch() {
			return
		}
		if m.isWholeWord(p) {
			return
		}
	}
}

func (m *wholeWordMatcher) isWholeWord(p *Params) bool {
	if p.MatchStart > 0 && isWordByte(p.Text[p.MatchStart-1]) {
		return false
	}
	end := p.MatchStart + p.MatchLength
	if end < len(p.Text) && isWordByte(p.Text[end]) {
		return false
	}
	return true
}

func (m *wholeWordMatcher) CancelSearch(p *Params) { m.inner.CancelSearch(p) }

func (m *wholeWordMatcher) Close() error { return m.inner.Close() }
