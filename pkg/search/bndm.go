package search

import "fmt"

// bndmMatcher is the bit-parallel Backward Nondeterministic DAWG Matching
// search, grounded on search_bndm32.h / search_bndm64.h. Both native
// variants share one algorithm differing only in the mask word width (32 or
// 64 bits); this port keeps both behind a single implementation backed by a
// uint64, and rejects patterns exceeding the requested width exactly as the
// native PreProcess's assert(patternLen <= 32/64) does, but as a returned
// error rather than an assertion.
type bndmMatcher struct {
	pattern []byte
	fold    caseFolder
	mask    [256]uint64 // mask[c] has bit (patternLen-1-i) set iff pattern[i]==c
}

func newBndmMatcher(pattern []byte, opts Options, wordBits int) (*bndmMatcher, error) {
	if len(pattern) > wordBits {
		return nil, &CreateError{
			Code:    ErrInvalidArgument,
			Message: truncateMessage(fmt.Sprintf("pattern length %d exceeds bndm%d limit", len(pattern), wordBits)),
		}
	}

	m := &bndmMatcher{pattern: pattern, fold: folderFor(opts.has(MatchCase))}
	n := len(pattern)
	for i := 0; i < n; i++ {
		c := m.fold.fetch(pattern, i)
		m.mask[c] |= uint64(1) << uint(n-1-i)
	}
	return m, nil
}

func (m *bndmMatcher) GetSearchBufferSize() int { return 0 }

func (m *bndmMatcher) FindNext(p *Params) {
	start := p.nextScanStart()
	n := len(m.pattern)
	if n == 0 {
		if start > len(p.Text) {
			p.exhausted()
			return
		}
		p.MatchStart, p.MatchLength = start, 0
		return
	}

	text := p.Text
	textLen := len(text)
	for i := start; i <= textLen-n; {
		mask := m.mask[m.fold.fetch(text, i+n-1)]
		j := n
		matched := false
		for mask != 0 {
			j--
			if j == 0 {
				matched = true
				break
			}
			mask = (mask << 1) & m.mask[m.fold.fetch(text, i+j-1)]
		}
		if matched {
			p.MatchStart, p.MatchLength = i, n
			return
		}
		// j is the last index tried before mask went to zero (or 0, which
		// would have reported a match above); the outer index always
		// advances by at least 1.
		if j < 1 {
			j = 1
		}
		i += j
	}
	p.exhausted()
}

func (m *bndmMatcher) CancelSearch(p *Params) { p.exhausted() }

func (m *bndmMatcher) Close() error { return nil }
