package wtf8

// searcher finds non-overlapping occurrences of a needle in a haystack.
//
// The needle is held in canonical form. Its edge surrogates also match the
// matching half of a 4-byte sequence in the haystack: a leading low surrogate
// matches the second half (the match starts at the FourByteSeq2 midpoint) and
// a trailing high surrogate matches the first half (the match ends there).
type searcher struct {
	haystack []byte
	needle   canonicalForm
	pos      int // next candidate start offset
}

func newSearcher(haystack, needle Wtf8) *searcher {
	return &searcher{
		haystack: haystack.bytes,
		needle:   canonicalize(needle.bytes),
	}
}

// isEmpty reports whether the needle matches the empty string.
func (s *searcher) isEmpty() bool {
	return s.needle.low == 0 && s.needle.high == 0 && len(s.needle.mid) == 0
}

// next returns the offsets of the next match.
func (s *searcher) next() (start, end int, ok bool) {
	for s.pos <= len(s.haystack) {
		i := s.pos
		kind := classifyIndex(s.haystack, i)
		if kind.legal() {
			if end, ok := s.matchAt(i, kind); ok {
				if end == i {
					s.pos = i + 1 // Empty match, step over it
				} else {
					s.pos = end
				}
				return i, end, true
			}
		}
		s.pos++
	}
	return 0, 0, false
}

// matchAt tries to match the needle starting at offset i of kind kind.
func (s *searcher) matchAt(i int, kind IndexType) (int, bool) {
	h := s.haystack
	j := i

	if s.needle.low != 0 {
		var low lowSurrogate
		var found bool
		if kind == FourByteSeq2 {
			// second half of the 4-byte sequence starting at i-2
			low, found = newThreeByteSeq(h[i-1:]).toLowSurrogate()
			j = i + 2
		} else if i+3 <= len(h) {
			low, found = newThreeByteSeq(h[i:]).toLowSurrogate()
			j = i + 3
		}
		if !found || low != s.needle.low {
			return 0, false
		}
	} else if kind == FourByteSeq2 {
		return 0, false
	}

	mid := s.needle.mid
	if j+len(mid) > len(h) || !memEqual(h[j:], mid, len(mid)) {
		return 0, false
	}
	j += len(mid)

	if s.needle.high != 0 {
		if j+3 > len(h) {
			return 0, false
		}
		high, found := newThreeByteSeq(h[j:]).toHighSurrogate()
		if !found || high != s.needle.high {
			return 0, false
		}
		if h[j] >= 0xf0 && j+4 <= len(h) {
			// first half of a complete 4-byte sequence
			return j + 2, true
		}
		return j + 3, true
	}

	// A needle ending in ordinary text must end on a boundary of the haystack.
	if classifyIndex(h, j) != CharBoundary {
		return 0, false
	}
	return j, true
}

// Index returns the byte offset of the first occurrence of needle, or -1.
// The offset may be a FourByteSeq2 midpoint when needle starts with a low
// surrogate matching the second half of a supplementary character.
func (v Wtf8) Index(needle Wtf8) int {
	start, _, ok := newSearcher(v, needle).next()
	if !ok {
		return -1
	}
	return start
}

// Contains reports whether needle occurs in v.
func (v Wtf8) Contains(needle Wtf8) bool {
	return v.Index(needle) >= 0
}

// Count returns the number of non-overlapping occurrences of needle. An empty
// needle matches at every code point boundary.
func (v Wtf8) Count(needle Wtf8) int {
	s := newSearcher(v, needle)
	n := 0
	for {
		if _, _, ok := s.next(); !ok {
			return n
		}
		n++
	}
}

// HasPrefix reports whether v begins with prefix.
func (v Wtf8) HasPrefix(prefix Wtf8) bool {
	_, ok := newSearcher(v, prefix).matchAt(0, CharBoundary)
	return ok
}

// HasSuffix reports whether v ends with suffix.
func (v Wtf8) HasSuffix(suffix Wtf8) bool {
	s := newSearcher(v, suffix)
	n := len(v.bytes)
	// Split edges make a match up to two bytes shorter than the needle.
	for i := max(n-len(suffix.bytes), 0); i <= min(n, n-len(suffix.bytes)+2); i++ {
		kind := classifyIndex(v.bytes, i)
		if !kind.legal() {
			continue
		}
		if end, ok := s.matchAt(i, kind); ok && end == n {
			return true
		}
	}
	return false
}
