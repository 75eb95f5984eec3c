package search

// boyerMooreMatcher is the classic Boyer-Moore search with bad-character
// (delta1) and good-suffix (delta2) shift tables, grounded on
// search_boyer_moore.cpp's make_delta1/make_delta2/boyer_moore_algo.
type boyerMooreMatcher struct {
	pattern []byte
	fold    caseFolder
	delta1  [256]int
	delta2  []int
}

func newBoyerMooreMatcher(pattern []byte, opts Options) (*boyerMooreMatcher, error) {
	m := &boyerMooreMatcher{
		pattern: pattern,
		fold:    folderFor(opts.has(MatchCase)),
		delta2:  make([]int, len(pattern)),
	}
	if len(pattern) > 0 {
		m.makeDelta1()
		m.makeDelta2()
	}
	return m, nil
}

func (m *boyerMooreMatcher) makeDelta1() {
	n := len(m.pattern)
	for i := range m.delta1 {
		m.delta1[i] = n
	}
	for i := 0; i < n-1; i++ {
		m.delta1[m.fold.fetch(m.pattern, i)] = n - 1 - i
	}
}

// isPrefix reports whether pattern[pos:] is a prefix of pattern.
func (m *boyerMooreMatcher) isPrefix(pos int) bool {
	n := len(m.pattern)
	suffixLen := n - pos
	for i := 0; i < suffixLen; i++ {
		if m.fold.fetch(m.pattern, i) != m.fold.fetch(m.pattern, pos+i) {
			return false
		}
	}
	return true
}

// suffixLength is the length of the longest suffix of pattern ending at
// pattern[pos].
func (m *boyerMooreMatcher) suffixLength(pos int) int {
	n := len(m.pattern)
	i := 0
	for i < pos && m.fold.fetch(m.pattern, pos-i) == m.fold.fetch(m.pattern, n-1-i) {
		i++
	}
	return i
}

func (m *boyerMooreMatcher) makeDelta2() {
	n := len(m.pattern)
	lastPrefixIndex := n - 1

	// First pass: case 1, the mismatch suffix doesn't recur in pattern.
	for p := n - 1; p >= 0; p-- {
		if m.isPrefix(p + 1) {
			lastPrefixIndex = p + 1
		}
		m.delta2[p] = lastPrefixIndex + (n - 1 - p)
	}

	// Second pass: case 2, the mismatch suffix recurs elsewhere in pattern.
	for p := 0; p < n-1; p++ {
		slen := m.suffixLength(p)
		if m.fold.fetch(m.pattern, p-slen) != m.fold.fetch(m.pattern, n-1-slen) {
			m.delta2[n-1-slen] = n - 1 - p + slen
		}
	}
}

func (m *boyerMooreMatcher) GetSearchBufferSize() int { return 0 }

func (m *boyerMooreMatcher) FindNext(p *Params) {
	n := len(m.pattern)
	if n == 0 {
		start := p.nextScanStart()
		if start > len(p.Text) {
			p.exhausted()
			return
		}
		p.MatchStart, p.MatchLength = start, 0
		return
	}

	start := p.nextScanStart()
	text := p.Text
	textLen := len(text)

	i := start + n - 1
	for i < textLen {
		j := n - 1
		for j >= 0 && m.fold.fetch(text, i) == m.fold.fetch(m.pattern, j) {
			i--
			j--
		}
		if j < 0 {
			p.MatchStart, p.MatchLength = i+1, n
			return
		}
		d1 := m.delta1[m.fold.fetch(text, i)]
		d2 := m.delta2[j]
		if d1 > d2 {
			i += d1
		} else {
			i += d2
		}
	}
	p.exhausted()
}

func (m *boyerMooreMatcher) CancelSearch(p *Params) { p.exhausted() }

func (m *boyerMooreMatcher) Close() error { return nil }
