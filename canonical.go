package wtf8

import "bytes"

// canonicalForm is a view split into an optional leading low surrogate, the
// well-formed middle and an optional trailing high surrogate. Zero surrogate
// values mean absent.
type canonicalForm struct {
	low  lowSurrogate
	mid  []byte
	high highSurrogate
}

// splitOffFirstLow strips a leading low surrogate, canonical or split.
func splitOffFirstLow(b []byte) (lowSurrogate, []byte) {
	if len(b) < 3 {
		return 0, b
	}
	low, ok := newThreeByteSeq(b).toLowSurrogate()
	if !ok {
		return 0, b
	}
	return low, b[3:]
}

// splitOffLastHigh strips a trailing high surrogate, canonical or split.
func splitOffLastHigh(b []byte) (highSurrogate, []byte) {
	e := len(b) - 3
	if e < 0 {
		return 0, b
	}
	high, ok := newThreeByteSeq(b[e:]).toHighSurrogate()
	if !ok {
		return 0, b
	}
	return high, b[:e]
}

// canonicalize decomposes b without touching it. Used for comparing and hashing.
func canonicalize(b []byte) canonicalForm {
	low, rest := splitOffFirstLow(b)
	high, mid := splitOffLastHigh(rest)
	return canonicalForm{low: low, mid: mid, high: high}
}

// canonicalizeInPlace rewrites split surrogates at both edges of b into their
// canonical 3-byte form. The length never changes and a second call is a no-op.
func canonicalizeInPlace(b []byte) {
	n := len(b)
	if n < 3 {
		return
	}
	// first 3 bytes form a split low surrogate
	if isContinuation(b[0]) {
		b[0] = 0xed
		b[1] |= 0x30
	}
	// last 3 bytes form a split high surrogate
	if b[n-3] >= 0xf0 {
		high := newThreeByteSeq(b[n-3:]).highFromSplit().encode()
		copy(b[n-3:], high[:])
	}
}

// compare orders canonical forms: absent surrogates sort before present ones.
func (c canonicalForm) compare(o canonicalForm) int {
	if r := compareUint16(uint16(c.low), uint16(o.low)); r != 0 {
		return r
	}
	if r := bytes.Compare(c.mid, o.mid); r != 0 {
		return r
	}
	return compareUint16(uint16(c.high), uint16(o.high))
}

func (c canonicalForm) equal(o canonicalForm) bool {
	return c.low == o.low && c.high == o.high && bytes.Equal(c.mid, o.mid)
}

func compareUint16(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
