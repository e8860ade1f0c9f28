package wtf8

// highSurrogate holds the last two bytes of a high surrogate's canonical
// 3-byte encoding, e.g. U+D800 is `ED A0 80` so the value is 0xA080.
// Valid values lie in 0xA080..0xAFBF; zero means "no surrogate".
type highSurrogate uint16

// lowSurrogate is the low-surrogate counterpart of highSurrogate.
// Valid values lie in 0xB080..0xBFBF; zero means "no surrogate".
type lowSurrogate uint16

// Code unit ranges of UTF-16 surrogates.
const (
	surr1    = 0xd800 // first high surrogate
	surr2    = 0xdc00 // first low surrogate
	surr3    = 0xe000 // first code unit past the surrogate block
	surrSelf = 0x10000
)

// Numeric ranges of a 3-byte window read as a big-endian integer.
const (
	canonicalHighMin = 0xeda000
	canonicalHighMax = 0xedafff
	canonicalLowMin  = 0xedb000
	canonicalLowMax  = 0xedbfff
	splitHighMin     = 0xf00000
	splitHighMax     = 0xffffff
	splitLowMin      = 0x800000
	splitLowMax      = 0xbfffff
)

// fourByteHeader is the fixed lead/continuation bit pattern of a 4-byte sequence.
const fourByteHeader = 0xf0808000

// encode returns the canonical 3-byte WTF-8 encoding.
func (h highSurrogate) encode() [3]byte {
	return [3]byte{0xed, byte(h >> 8), byte(h)}
}

func (l lowSurrogate) encode() [3]byte {
	return [3]byte{0xed, byte(l >> 8), byte(l)}
}

// encodeSurrogateValue packs a surrogate code unit into the last two bytes of
// its 3-byte encoding, ORed with base (0xA080 for high, 0xB080 for low).
func encodeSurrogateValue(cu uint16, base uint16) uint16 {
	return cu&0x3f | (cu<<2)&0xf00 | base
}

// highSurrogateFromCodeUnit converts a code unit in 0xD800..0xDBFF.
func highSurrogateFromCodeUnit(cu uint16) (highSurrogate, bool) {
	if !isHighCodeUnit(cu) {
		return 0, false
	}
	return highSurrogate(encodeSurrogateValue(cu, 0xa080)), true
}

// lowSurrogateFromCodeUnit converts a code unit in 0xDC00..0xDFFF.
func lowSurrogateFromCodeUnit(cu uint16) (lowSurrogate, bool) {
	if !isLowCodeUnit(cu) {
		return 0, false
	}
	return lowSurrogate(encodeSurrogateValue(cu, 0xb080)), true
}

func isHighCodeUnit(cu uint16) bool {
	return cu >= surr1 && cu < surr2
}

func isLowCodeUnit(cu uint16) bool {
	return cu >= surr2 && cu < surr3
}

func isSurrogateCodeUnit(cu uint16) bool {
	return cu >= surr1 && cu < surr3
}

// decodeSurrogatePair builds the 4-byte UTF-8 encoding of the supplementary
// scalar formed by high and low.
//
// The bits move from
//
//	high surrogate'   low surrogate
//	101wvuts 10rqpnmk 1011jihg 10fedcba
//
// to
//
//	11110wvu 10tsrqpn 10mkjihg 10fedcba
//
// The 0x100 added to the high half undoes the UTF-16 offset of 0x10000.
func decodeSurrogatePair(high highSurrogate, low lowSurrogate) [4]byte {
	lo := uint32(low)
	hi := uint32(high) + 0x100
	combined := lo&0xfff | hi<<12&0x303000 | hi<<14&0x70f0000 | fourByteHeader
	return [4]byte{byte(combined >> 24), byte(combined >> 16), byte(combined >> 8), byte(combined)}
}

// threeByteSeq is a 3-byte window read as a big-endian 24-bit integer.
type threeByteSeq uint32

// newThreeByteSeq reads the first three bytes of b. b must hold at least three bytes.
func newThreeByteSeq(b []byte) threeByteSeq {
	_ = b[2]
	return threeByteSeq(uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]))
}

func (s threeByteSeq) isCanonicalHigh() bool {
	return s >= canonicalHighMin && s <= canonicalHighMax
}

func (s threeByteSeq) isCanonicalLow() bool {
	return s >= canonicalLowMin && s <= canonicalLowMax
}

func (s threeByteSeq) isSplitHigh() bool {
	return s >= splitHighMin && s <= splitHighMax
}

func (s threeByteSeq) isSplitLow() bool {
	return s >= splitLowMin && s <= splitLowMax
}

// highFromSplit extracts the high surrogate from the first three bytes of a
// 4-byte sequence.
//
// The window has the bit pattern 11110kji 10hgfedc 10ba****. The middle bits
// are gathered into 000kjihg 00fedcba, shifted back by the UTF-16 offset and
// ORed with 0xA080 so the result compares equal to the canonical form.
func (s threeByteSeq) highFromSplit() highSurrogate {
	v := uint32(s)
	return highSurrogate(((v>>4&0x303 | v>>6&0x3c3c) - 0x100) | 0xa080)
}

// lowFromSplit extracts the low surrogate from the last three bytes of a
// 4-byte sequence.
func (s threeByteSeq) lowFromSplit() lowSurrogate {
	return lowSurrogate(uint32(s) | 0xb000)
}

// toHighSurrogate returns the high surrogate held by the window, in either
// canonical or split form.
func (s threeByteSeq) toHighSurrogate() (highSurrogate, bool) {
	var h highSurrogate
	switch {
	case s.isCanonicalHigh():
		h = highSurrogate(s)
	case s.isSplitHigh():
		h = s.highFromSplit()
	}
	return h, h != 0
}

// toLowSurrogate returns the low surrogate held by the window, in either
// canonical or split form.
func (s threeByteSeq) toLowSurrogate() (lowSurrogate, bool) {
	var l lowSurrogate
	switch {
	case s.isCanonicalLow():
		l = lowSurrogate(s)
	case s.isSplitLow():
		l = s.lowFromSplit()
	}
	return l, l != 0
}

// codeUnit extracts the WTF-16 code unit encoded by the window. The window is
// either a 3-byte sequence or a split surrogate.
func (s threeByteSeq) codeUnit() uint16 {
	v := uint32(s)
	switch {
	case s.isSplitHigh():
		return uint16((v>>4&3 | v>>6&0xfc | v>>8&0x700) + 0xd7c0)
	case s.isSplitLow():
		return uint16(v&0x3f | v>>2&0x3c0 | 0xdc00)
	default:
		return uint16(v&0x3f | v>>2&0xfc0 | v>>4&0xf000)
	}
}
