package textutil

// foldUnit16 applies the deterministic ASCII upper->lower fold to a single
// UTF-16 code unit. Some native Utf16_Search variants fold case using the
// process locale (std::tolower(x, loc)); per spec §4.7 and §9 this port
// always uses the deterministic ASCII fold instead, to keep results
// reproducible across hosts.
func foldUnit16(c uint16) uint16 {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}
	return c
}

// Utf16Search finds the first occurrence of pattern in text. It returns the
// index of the match and true, or (0, false) when pattern does not occur —
// the Go equivalent of Utf16_Search returning a pointer or null. matchCase
// selects identity comparison; its absence selects the ASCII fold on both
// sides.
func Utf16Search(text, pattern []uint16, matchCase bool) (index int, found bool) {
	n := len(pattern)
	if n == 0 {
		return 0, true
	}
	if n > len(text) {
		return 0, false
	}

	for i := 0; i+n <= len(text); i++ {
		if unitsEqual(text[i:i+n], pattern, matchCase) {
			return i, true
		}
	}
	return 0, false
}

func unitsEqual(a, b []uint16, matchCase bool) bool {
	for i := range a {
		x, y := a[i], b[i]
		if !matchCase {
			x, y = foldUnit16(x), foldUnit16(y)
		}
		if x != y {
			return false
		}
	}
	return true
}
