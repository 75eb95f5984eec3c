package search

import "regexp"

// re2Matcher is the RE2 regex engine. The standard library's regexp package
// is literally Google's RE2 automaton compiled to Go (no backreferences, no
// catastrophic backtracking) — it is the domain dependency here, not a
// stdlib shortcut; see DESIGN.md. Grounded on search_re2.cpp, which is
// likewise stateless across calls: each FindNext asks for the first
// unanchored match starting after the previous one.
type re2Matcher struct {
	re *regexp.Regexp
}

func newRe2Matcher(pattern []byte, opts Options) (*re2Matcher, error) {
	pat := string(pattern)
	if !opts.has(MatchCase) {
		pat = "(?i)" + pat
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, &CreateError{Code: ErrInvalidArgument, Message: normalizeRegexError(err.Error())}
	}
	return &re2Matcher{re: re}, nil
}

func (m *re2Matcher) GetSearchBufferSize() int { return 0 }

func (m *re2Matcher) FindNext(p *Params) {
	start := p.nextScanStart()
	if start > len(p.Text) {
		p.exhausted()
		return
	}
	loc := m.re.FindIndex(p.Text[start:])
	if loc == nil {
		p.exhausted()
		return
	}
	p.MatchStart = start + loc[0]
	p.MatchLength = loc[1] - loc[0]
}

func (m *re2Matcher) CancelSearch(p *Params) { p.exhausted() }

func (m *re2Matcher) Close() error { return nil }
