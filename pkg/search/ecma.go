package search

import (
	"strings"
	"unsafe"

	"github.com/dlclark/regexp2"
)

// ecmaMatcher is the ECMAScript-syntax regex engine (lookahead,
// backreferences allowed), grounded on search_regex.cpp and on the
// teacher's pkg/matcher/regexp.go use of dlclark/regexp2 for the same
// Perl/ECMAScript-compatible feature set.
type ecmaMatcher struct {
	re *regexp2.Regexp
}

// regexEcmaSession is the iterator state search_regex.cpp placement-
// constructs into the caller's scratch buffer on the first FindNext of a
// session. Go has no placement-new, so this is instead stored through
// Params.session; GetSearchBufferSize still reports its size via
// unsafe.Sizeof to keep the ABI-shaped contract observable (see DESIGN.md).
type regexEcmaSession struct {
	text string
	cur  *regexp2.Match
}

func newEcmaMatcher(pattern []byte, opts Options) (*ecmaMatcher, error) {
	flags := regexp2.None
	if !opts.has(MatchCase) {
		flags |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(string(pattern), flags)
	if err != nil {
		return nil, &CreateError{Code: ErrInvalidArgument, Message: normalizeRegexError(err.Error())}
	}
	return &ecmaMatcher{re: re}, nil
}

// normalizeRegexError strips any leading diagnostic prefix up to and
// including the first ": " and re-prefixes with the literal string the
// spec mandates (§4.4, §7), matching search_regex.cpp's PreProcess.
func normalizeRegexError(msg string) string {
	if idx := strings.Index(msg, ": "); idx >= 0 {
		msg = msg[idx+2:]
	}
	return truncateMessage("Invalid Regular expression: " + msg)
}

func (m *ecmaMatcher) GetSearchBufferSize() int { return int(unsafe.Sizeof(regexEcmaSession{})) }

func (m *ecmaMatcher) FindNext(p *Params) {
	sess, ok := p.session.(*regexEcmaSession)
	if !ok {
		sess = &regexEcmaSession{text: string(p.Text)}
		match, _ := m.re.FindStringMatch(sess.text)
		sess.cur = match
		p.session = sess
	} else if sess.cur != nil {
		next, _ := m.re.FindNextMatch(sess.cur)
		sess.cur = next
	}

	if sess.cur == nil {
		p.exhausted()
		p.session = nil
		return
	}

	// Report the engine's length unchanged; the forward-progress bump
	// (spec §4.5) lives in Params.nextScanStart, which this engine does not
	// use. Here the regexp2 iterator tracks its own cursor internally, so
	// zero-length matches never stall FindNext.
	p.MatchStart = sess.cur.Index
	p.MatchLength = sess.cur.Length
}

func (m *ecmaMatcher) CancelSearch(p *Params) {
	p.exhausted()
	p.session = nil
}

func (m *ecmaMatcher) Close() error { return nil }
