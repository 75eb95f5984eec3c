package textutil

// codeUnit is satisfied by the two code-unit widths the native template was
// instantiated over: byte (8-bit, for Ascii_GetLineExtentFromPosition) and
// uint16 (for Utf16_GetLineExtentFromPosition).
type codeUnit interface {
	~uint8 | ~uint16
}

const newline = 10 // '\n' in both ASCII and UTF-16 code units

// lineExtent is the single generic implementation behind LineExtent and
// LineExtent16, grounded on GetLineExtentFromPosition<CharType> in
// VsChromiumNative.cpp. It returns the half-open [start, start+length) range
// of the line containing position, clipped to a window of ±maxOffset code
// units.
func lineExtent[T codeUnit](text []T, position, maxOffset int) (start, length int) {
	low := position - maxOffset
	if low < 0 {
		low = 0
	}
	high := position + maxOffset
	if high > len(text) {
		high = len(text)
	}

	// Scan backward from position-1 down to low (inclusive) for a newline;
	// the line starts just after it, or at low if none is found.
	s := position
	if s > low {
		s--
		for s >= low {
			if text[s] == newline {
				break
			}
			s--
		}
		s++
	}

	// Scan forward from position up to high (exclusive) for a newline,
	// including it in the line when found.
	e := position
	for e < high {
		if text[e] == newline {
			e++
			break
		}
		e++
	}

	return s, e - s
}

// LineExtent computes the byte range of the line containing position within
// an 8-bit text buffer, clipped to a window of ±maxOffset bytes around
// position.
func LineExtent(text []byte, position, maxOffset int) (start, length int) {
	return lineExtent(text, position, maxOffset)
}

// LineExtent16 is LineExtent over UTF-16 code units.
func LineExtent16(text []uint16, position, maxOffset int) (start, length int) {
	return lineExtent(text, position, maxOffset)
}
