package search

// Params is the iteration handle threaded through a search session. It plays
// the role of the native SearchParams struct: callers do not construct
// matches by hand, they hold one Params per session and repeatedly pass it
// to Matcher.FindNext.
//
// MatchStart is -1 when there is no match yet ("null" in the native API).
// After exhaustion FindNext resets MatchStart to -1 and MatchLength is not
// meaningful until the next match.
type Params struct {
	Text        []byte
	MatchStart  int
	MatchLength int

	// session is the opaque, caller-owned-in-spirit scratch slot a matcher
	// may populate on the first FindNext of a session (MatchStart == -1 on
	// entry) and must clear on exhaustion or CancelSearch. Its layout is
	// private to each engine; see ecma.go for the one engine that uses it.
	session any
}

// NewParams starts a fresh session over text. Equivalent to zero-initializing
// a native SearchParams with TextStart/TextLength set and MatchStart null.
func NewParams(text []byte) *Params {
	return &Params{Text: text, MatchStart: -1}
}

// Reset rewinds p to the head of text, discarding any in-flight session
// state. Callers normally prefer CancelSearch on the owning Matcher, which
// also tears down engine-side session state; Reset is for reusing a Params
// value across unrelated text windows.
func (p *Params) Reset(text []byte) {
	p.Text = text
	p.MatchStart = -1
	p.MatchLength = 0
	p.session = nil
}

// exhausted marks the session as having no current match.
func (p *Params) exhausted() {
	p.MatchStart = -1
	p.MatchLength = 0
}

// hasMatch reports whether the session currently names a match.
func (p *Params) hasMatch() bool { return p.MatchStart >= 0 }

// nextScanStart computes where a resumed scan should begin: TextStart on a
// fresh session, or MatchStart + max(MatchLength, 1) otherwise. Every engine
// in this package except EcmaRegex (which resumes through regexp2's own
// match cursor, see ecma.go) uses this one rule: substring engines always
// have MatchLength == pattern length so it degenerates to "restart after the
// match"; the RE2 engine relies on the max(.,1) bump to make forward
// progress past a zero-length match (spec §4.5).
func (p *Params) nextScanStart() int {
	if !p.hasMatch() {
		return 0
	}
	step := p.MatchLength
	if step < 1 {
		step = 1
	}
	return p.MatchStart + step
}
