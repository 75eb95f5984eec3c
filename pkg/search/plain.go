package search

// plainMatcher is a straightforward byte scan for the first occurrence of
// pattern in text, grounded on search_strstr.cpp. Unlike the native
// StrStrSearch (which calls libc strstr on null-terminated text and
// therefore restarts at MatchStart+1), this port restarts at
// MatchStart+patternLen per spec §9's normalization: all substring engines
// are non-overlapping.
type plainMatcher struct {
	pattern []byte
	fold    caseFolder
}

func newPlainMatcher(pattern []byte, opts Options) (*plainMatcher, error) {
	return &plainMatcher{pattern: pattern, fold: folderFor(opts.has(MatchCase))}, nil
}

func (m *plainMatcher) GetSearchBufferSize() int { return 0 }

func (m *plainMatcher) FindNext(p *Params) {
	start := p.nextScanStart()
	n := len(m.pattern)
	if n == 0 {
		// An empty pattern "matches" everywhere; advance one byte per call
		// so FindNext still makes forward progress like every other engine.
		if start > len(p.Text) {
			p.exhausted()
			return
		}
		p.MatchStart, p.MatchLength = start, 0
		return
	}

	for i := start; i+n <= len(p.Text); i++ {
		if m.matchesAt(p.Text, i) {
			p.MatchStart, p.MatchLength = i, n
			return
		}
	}
	p.exhausted()
}

func (m *plainMatcher) matchesAt(text []byte, i int) bool {
	for j := range m.pattern {
		if m.fold.fetch(text, i+j) != m.fold.fetch(m.pattern, j) {
			return false
		}
	}
	return true
}

func (m *plainMatcher) CancelSearch(p *Params) { p.exhausted() }

func (m *plainMatcher) Close() error { return nil }
