package wtf8

import "unicode/utf8"

const (
	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111

	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// Pre-computed sequence widths keyed by lead byte - faster than switch chains.
// Continuation bytes and bytes that never start a sequence map to 0.
var seqWidthLUT = func() (lut [256]uint8) {
	for b := 0; b < 256; b++ {
		switch {
		case b <= 0x7f:
			lut[b] = 1
		case b >= 0xc2 && b <= 0xdf:
			lut[b] = 2
		case b >= 0xe0 && b <= 0xef:
			lut[b] = 3
		case b >= 0xf0 && b <= 0xf4:
			lut[b] = 4
		}
	}
	return lut
}()

func isContinuation(b byte) bool {
	return b&0xc0 == tx
}

// appendCodePoint is like utf8.AppendRune but also encodes code points in the
// surrogate range. It performs no concatenation check.
func appendCodePoint(p []byte, cp rune) []byte {
	// Negative values are erroneous. Making it unsigned addresses the problem.
	switch i := uint32(cp); {
	case i <= rune1Max:
		return append(p, byte(cp))
	case i <= rune2Max:
		return append(p, t2|byte(cp>>6), tx|byte(cp)&maskx)
	case i <= rune3Max:
		return append(p, t3|byte(cp>>12), tx|byte(cp>>6)&maskx, tx|byte(cp)&maskx)
	case i <= utf8.MaxRune:
		return append(p, t4|byte(cp>>18), tx|byte(cp>>12)&maskx, tx|byte(cp>>6)&maskx, tx|byte(cp)&maskx)
	default:
		return utf8.AppendRune(p, utf8.RuneError)
	}
}

// decodeCodePoint decodes the first code point of well-formed WTF-8, including
// surrogate code points. Truncated input yields RuneError with width 1.
func decodeCodePoint(b []byte) (rune, int) {
	if len(b) == 0 {
		return utf8.RuneError, 0
	}

	b0 := b[0]
	switch seqWidthLUT[b0] {
	case 1:
		return rune(b0), 1
	case 2:
		if len(b) < 2 {
			return utf8.RuneError, 1
		}
		return rune(b0&mask2)<<6 | rune(b[1]&maskx), 2
	case 3:
		if len(b) < 3 {
			return utf8.RuneError, 1
		}
		return rune(b0&mask3)<<12 | rune(b[1]&maskx)<<6 | rune(b[2]&maskx), 3
	case 4:
		if len(b) < 4 {
			return utf8.RuneError, 1
		}
		return rune(b0&mask4)<<18 | rune(b[1]&maskx)<<12 | rune(b[2]&maskx)<<6 | rune(b[3]&maskx), 4
	}
	return utf8.RuneError, 1
}

// sequenceLen validates the sequence starting at b[0] and returns its width.
// Surrogate code points (ED A0..BF xx) are accepted. short reports that b
// ends before the sequence is complete.
func sequenceLen(b []byte) (n int, ok, short bool) {
	if len(b) == 0 {
		return 0, false, true
	}
	b0 := b[0]
	width := int(seqWidthLUT[b0])
	if width == 0 {
		return 0, false, false
	}
	if width == 1 {
		return 1, true, false
	}

	// Allowed range for the second byte, as in the UTF-8 first-byte table,
	// except that ED also admits A0..BF.
	lo, hi := byte(0x80), byte(0xbf)
	switch b0 {
	case 0xe0:
		lo = 0xa0
	case 0xf0:
		lo = 0x90
	case 0xf4:
		hi = 0x8f
	}

	for i := 1; i < width; i++ {
		if i >= len(b) {
			return 0, false, true
		}
		c := b[i]
		if i == 1 && (c < lo || c > hi) {
			return 0, false, false
		}
		if !isContinuation(c) {
			return 0, false, false
		}
	}
	return width, true, false
}
