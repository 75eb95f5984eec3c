package search

// caseFolder fetches a byte from a buffer under a case policy resolved once
// at matcher-construction time. The two implementations below are picked by
// New based on Options.MatchCase and baked into the engine so the hot loop
// never branches on case-sensitivity per byte.
type caseFolder interface {
	fetch(buf []byte, i int) byte
}

type identityFold struct{}

func (identityFold) fetch(buf []byte, i int) byte { return buf[i] }

type asciiFold struct{}

func (asciiFold) fetch(buf []byte, i int) byte {
	b := buf[i]
	if b >= 'A' && b <= 'Z' {
		b |= 0x20
	}
	return b
}

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}

func folderFor(matchCase bool) caseFolder {
	if matchCase {
		return identityFold{}
	}
	return asciiFold{}
}
