// Package textutil implements the heuristic text-kind classifier and the
// line-extent, comparison and UTF-16 search primitives that accompany the
// matching core in pkg/search. These are stateless helpers, grounded on
// VsChromiumNative.cpp's Text_GetKind/Text_ContentKind/IsUtf8Rune,
// GetLineExtentFromPosition, Ascii_Compare and Utf16_Search.
package textutil

// Kind is the heuristic classification of a text buffer.
type Kind int

const (
	Ascii Kind = iota
	AsciiWithUTF8BOM
	UTF8
	UTF8WithBOM
	ProbablyBinary
)

func (k Kind) String() string {
	switch k {
	case Ascii:
		return "ascii"
	case AsciiWithUTF8BOM:
		return "ascii-with-utf8-bom"
	case UTF8:
		return "utf8"
	case UTF8WithBOM:
		return "utf8-with-bom"
	case ProbablyBinary:
		return "probably-binary"
	default:
		return "unknown"
	}
}

// HasUTF8BOM reports whether text begins with the UTF-8 byte-order mark
// EF BB BF.
func HasUTF8BOM(text []byte) bool {
	return len(text) >= 3 && text[0] == 0xEF && text[1] == 0xBB && text[2] == 0xBF
}

type contentKind int

const (
	contentAscii contentKind = iota
	contentUTF8
	contentBinary
)

const (
	maskSeq2 = 0xE0 // 111x-xxxx
	maskSeq3 = 0xF0 // 1111-xxxx
	maskSeq4 = 0xF8 // 1111-1xxx
	maskRest = 0xC0 // 11xx-xxxx

	valueSeq2 = 0xC0 // 110x-xxxx
	valueSeq3 = 0xE0 // 1110-xxxx
	valueSeq4 = 0xF0 // 1111-0xxx
	valueRest = 0x80 // 10xx-xxxx
)

func isSeq(b byte, mask, value byte) bool { return b&mask == value }
func isRest(b byte) bool                  { return b&maskRest == valueRest }

// isUTF8Rune inspects text[0] and, if it begins a well-formed 2/3/4-byte
// UTF-8 sequence whose continuation bytes are all in [0x80,0xBF], returns
// the sequence length. Otherwise returns 0 and the caller charges a single
// byte to otherCount, exactly like IsUtf8Rune's leading-byte-only fallback.
func isUTF8Rune(text []byte) int {
	if len(text) >= 4 && isSeq(text[0], maskSeq4, valueSeq4) {
		if isRest(text[1]) && isRest(text[2]) && isRest(text[3]) {
			return 4
		}
	} else if len(text) >= 3 && isSeq(text[0], maskSeq3, valueSeq3) {
		if isRest(text[1]) && isRest(text[2]) {
			return 3
		}
	} else if len(text) >= 2 && isSeq(text[0], maskSeq2, valueSeq2) {
		if isRest(text[1]) {
			return 2
		}
	}
	return 0
}

// classify implements Text_ContentKind's asciiCount/utf8Count/otherCount
// scan and decision rule.
func classify(text []byte) contentKind {
	var asciiCount, utf8Count, otherCount int

	for len(text) > 0 {
		ch := text[0]
		switch {
		case (ch >= 0x20 && ch <= 0x7E) || ch == '\t' || ch == '\r' || ch == '\n':
			asciiCount++
			text = text[1:]
		default:
			if n := isUTF8Rune(text); n > 0 {
				utf8Count++
				text = text[n:]
			} else {
				otherCount++
				text = text[1:]
			}
		}
	}

	if otherCount == 0 {
		if utf8Count == 0 {
			return contentAscii
		}
		return contentUTF8
	}

	ratio := float64(asciiCount) / float64(otherCount)
	if ratio >= 0.9 && asciiCount > otherCount {
		return contentAscii
	}
	return contentBinary
}

// GetKind classifies text as one of the five public Kind tags, combining
// the BOM test with the content-kind heuristic exactly as Text_GetKind
// does: the BOM, if present, is skipped before running the heuristic, and
// a binary verdict on BOM-prefixed text is reported as ProbablyBinary (the
// BOM itself never promotes binary content to text).
func GetKind(text []byte) Kind {
	if HasUTF8BOM(text) {
		switch classify(text[3:]) {
		case contentAscii:
			return AsciiWithUTF8BOM
		case contentUTF8:
			return UTF8WithBOM
		default:
			return ProbablyBinary
		}
	}
	switch classify(text) {
	case contentAscii:
		return Ascii
	case contentUTF8:
		return UTF8
	default:
		return ProbablyBinary
	}
}
