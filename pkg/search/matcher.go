// Package search implements the embeddable matching core: a uniform
// incremental match iterator over six concrete algorithms (plain substring,
// BNDM-32, BNDM-64, Boyer-Moore, ECMAScript regex, RE2 regex), a whole-word
// filter that wraps any of them, and the ASCII case-fold policy they share.
//
// The package performs no I/O and makes no assumption about where the text
// buffer came from; it is designed to be embedded by a host that already
// holds the bytes in memory (see cmd/corefind for such a host).
package search

import "fmt"

// Matcher is the contract every concrete engine satisfies: preprocess once
// at construction (see New), then FindNext repeatedly against a Params
// value, optionally CancelSearch between sessions, and Close when done.
//
// Ordering: New -> (FindNext* | CancelSearch)* -> Close. A Matcher is not
// safe for concurrent sessions; give each goroutine its own Matcher and
// Params pair.
type Matcher interface {
	// GetSearchBufferSize reports the scratch state a session needs, in
	// bytes. Substring engines report 0. EcmaRegex reports the size of one
	// iterator state (see ecma.go); Go's GC means callers never need to
	// allocate this themselves, but the method is kept so the ABI-shaped
	// contract in spec §4.1 is still observable and testable.
	GetSearchBufferSize() int

	// FindNext advances p to the next match, or sets p.MatchStart to -1 on
	// exhaustion. When p.MatchStart is -1 on entry, scanning starts at the
	// head of p.Text; otherwise it resumes per Params.nextScanStart.
	FindNext(p *Params)

	// CancelSearch releases any session-scoped state and resets p to the
	// empty/no-match state. Always safe to call, including with no active
	// session.
	CancelSearch(p *Params)

	// Close releases matcher-scoped state (pattern tables, compiled
	// automaton). Distinct from CancelSearch, which is per-session.
	Close() error
}

// CreateError is returned by New when preprocessing fails. It carries the
// same (code, message) shape as the native SearchCreateResult, with the
// 128-byte message cap enforced by truncateMessage.
type CreateError struct {
	Code    CreateErrorCode
	Message string
}

func (e *CreateError) Error() string { return e.Message }

// CreateErrorCode is the create-result error taxonomy from spec §7.
type CreateErrorCode int

const (
	// ErrNone never appears on a returned error; New returns nil error on
	// success.
	ErrNone CreateErrorCode = iota
	ErrOutOfMemory
	ErrInvalidArgument
	ErrInternal
)

// maxMessageLen is the fixed create-result message capacity from spec §3,
// §9 ("Error-buffer sizing"): 128 bytes, truncated on a UTF-8 boundary.
const maxMessageLen = 128

func truncateMessage(msg string) string {
	if len(msg) <= maxMessageLen {
		return msg
	}
	cut := maxMessageLen
	for cut > 0 && !utf8RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}

func utf8RuneStart(b byte) bool { return b&0xC0 != 0x80 }

// New constructs a Matcher for the given algorithm kind, pattern and
// options. Pattern length constraints are engine-specific: Bndm32 rejects
// patterns longer than 32 bytes, Bndm64 rejects patterns longer than 64
// bytes, the rest are unbounded. When options has MatchWholeWord set, the
// returned Matcher transparently re-invokes the inner engine until a match
// satisfies the word-boundary predicate (spec §4.6) — this wrapping applies
// uniformly regardless of which of the six algorithm kinds was requested.
func New(kind AlgorithmKind, pattern []byte, opts Options) (Matcher, error) {
	var (
		m   Matcher
		err error
	)

	switch kind {
	case Plain:
		m, err = newPlainMatcher(pattern, opts)
	case Bndm32:
		m, err = newBndmMatcher(pattern, opts, 32)
	case Bndm64:
		m, err = newBndmMatcher(pattern, opts, 64)
	case BoyerMoore:
		m, err = newBoyerMooreMatcher(pattern, opts)
	case EcmaRegex:
		m, err = newEcmaMatcher(pattern, opts)
	case Re2Regex:
		m, err = newRe2Matcher(pattern, opts)
	default:
		return nil, &CreateError{Code: ErrInvalidArgument, Message: fmt.Sprintf("unknown algorithm kind %d", int(kind))}
	}
	if err != nil {
		return nil, err
	}

	if opts.has(MatchWholeWord) {
		return &wholeWordMatcher{inner: m}, nil
	}
	return m, nil
}
