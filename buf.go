package wtf8

import "slices"

// Buf is an owned, growable string of well-formed WTF-8 data.
//
// Similar to a []byte holding UTF-8 text, but it may additionally contain
// surrogate code points that are not part of a pair. The content is canonical
// after every method returns: no split surrogate survives at either edge, and
// a high surrogate directly followed by a low one is always merged into the
// 4-byte encoding of the supplementary character.
//
// A Buf has a single owner; it is not safe for concurrent mutation. Freeze it
// to share the content.
type Buf struct {
	bytes []byte
}

// New creates an empty buffer.
func New() *Buf {
	return &Buf{}
}

// WithCapacity creates an empty buffer with room for n bytes.
func WithCapacity(n int) *Buf {
	return &Buf{bytes: make([]byte, 0, n)}
}

// FromString creates a buffer holding a copy of the UTF-8 string s.
func FromString(s string) *Buf {
	return &Buf{bytes: []byte(s)}
}

// FromBytes checks that b is canonical WTF-8 and copies it into a new buffer.
func FromBytes(b []byte) (*Buf, error) {
	if err := validate(b, false); err != nil {
		return nil, err
	}
	return &Buf{bytes: slices.Clone(b)}, nil
}

// FromBytesUnchecked takes ownership of b without checking it. The caller
// asserts that b is canonical WTF-8.
func FromBytesUnchecked(b []byte) *Buf {
	return &Buf{bytes: b}
}

// FromWide creates a buffer from potentially ill-formed UTF-16. This is
// lossless: EncodeWide on the result yields v again.
func FromWide(v []uint16) *Buf {
	buf := WithCapacity(len(v))
	for i := 0; i < len(v); i++ {
		cu := v[i]
		switch {
		case !isSurrogateCodeUnit(cu):
			buf.pushCodePointUnchecked(rune(cu))
		case isHighCodeUnit(cu) && i+1 < len(v) && isLowCodeUnit(v[i+1]):
			r := (rune(cu)-surr1)<<10 | (rune(v[i+1]) - surr2) + surrSelf
			buf.pushCodePointUnchecked(r)
			i++
		default:
			// Pairs were decoded above, so this one is unpaired by
			// construction: skip the concatenation check.
			buf.pushCodePointUnchecked(rune(cu))
		}
	}
	return buf
}

// pushCodePointUnchecked appends cp without the concatenation check.
func (b *Buf) pushCodePointUnchecked(cp rune) {
	b.bytes = appendCodePoint(b.bytes, cp)
}

// AsSlice returns a view of the buffer. It is invalidated by the next mutation.
func (b *Buf) AsSlice() Wtf8 {
	return Wtf8{bytes: b.bytes}
}

// Bytes returns the canonical WTF-8 bytes. They must not be modified.
func (b *Buf) Bytes() []byte {
	return b.bytes
}

func (b *Buf) Len() int {
	return len(b.bytes)
}

func (b *Buf) IsEmpty() bool {
	return len(b.bytes) == 0
}

// Cap returns the number of bytes the buffer can hold without reallocating.
func (b *Buf) Cap() int {
	return cap(b.bytes)
}

func (b *Buf) Clear() {
	b.bytes = b.bytes[:0]
}

// Reserve makes room for at least additional more bytes.
func (b *Buf) Reserve(additional int) {
	b.bytes = slices.Grow(b.bytes, additional)
}

// ReserveExact makes room for exactly additional more bytes when it has to grow.
func (b *Buf) ReserveExact(additional int) {
	if cap(b.bytes)-len(b.bytes) >= additional {
		return
	}
	grown := make([]byte, len(b.bytes), len(b.bytes)+additional)
	copy(grown, b.bytes)
	b.bytes = grown
}

func (b *Buf) ShrinkToFit() {
	b.bytes = slices.Clip(b.bytes)
	if cap(b.bytes) > len(b.bytes) {
		b.bytes = slices.Clone(b.bytes)
	}
}

// ShrinkTo lowers the capacity to max(minCapacity, Len()) if it is larger.
func (b *Buf) ShrinkTo(minCapacity int) {
	target := max(minCapacity, len(b.bytes))
	if cap(b.bytes) <= target {
		return
	}
	shrunk := make([]byte, len(b.bytes), target)
	copy(shrunk, b.bytes)
	b.bytes = shrunk
}

// Clone returns an independent copy.
func (b *Buf) Clone() *Buf {
	return &Buf{bytes: slices.Clone(b.bytes)}
}

// PushStr appends a UTF-8 string.
func (b *Buf) PushStr(s string) {
	b.bytes = append(b.bytes, s...)
}

// PushRune appends a code point. Surrogate code points are accepted: a low
// surrogate pushed right after a high one merges with it. Values outside the
// Unicode range append U+FFFD.
func (b *Buf) PushRune(r rune) {
	if r >= 0 && r <= 0xffff && isLowCodeUnit(uint16(r)) {
		low, _ := lowSurrogateFromCodeUnit(uint16(r))
		b.pushLowSurrogate(low)
		return
	}
	b.pushCodePointUnchecked(r)
}

// PushWtf8 appends a view.
//
// A low surrogate at the start of other that meets a high surrogate at the end
// of the buffer is replaced, together with it, by the supplementary code point
// they form, like concatenating ill-formed UTF-16 would. Split surrogates at
// the edges of other are written in canonical form.
func (b *Buf) PushWtf8(other Wtf8) {
	b.Reserve(len(other.bytes))
	c := canonicalize(other.bytes)
	if c.low != 0 {
		b.pushLowSurrogate(c.low)
	}
	b.bytes = append(b.bytes, c.mid...)
	if c.high != 0 {
		enc := c.high.encode()
		b.bytes = append(b.bytes, enc[:]...)
	}
}

// PushBuf appends the content of another buffer.
func (b *Buf) PushBuf(other *Buf) {
	b.PushWtf8(other.AsSlice())
}

// pushLowSurrogate appends low, merging it with a trailing high surrogate.
func (b *Buf) pushLowSurrogate(low lowSurrogate) {
	if high, rest := splitOffLastHigh(b.bytes); high != 0 {
		pair := decodeSurrogatePair(high, low)
		b.bytes = append(rest, pair[:]...)
		return
	}
	enc := low.encode()
	b.bytes = append(b.bytes, enc[:]...)
}

// Truncate shortens the buffer to newLen bytes.
//
// newLen may be a code point boundary or the midpoint of a 4-byte sequence; in
// the latter case the high surrogate half of the sequence is kept in canonical
// form, so the result is one byte longer than newLen. Any other offset yields
// a *BoundaryError and leaves the buffer untouched.
func (b *Buf) Truncate(newLen int) error {
	switch kind := classifyIndex(b.bytes, newLen); kind {
	case CharBoundary:
		b.bytes = b.bytes[:newLen]
		return nil
	case FourByteSeq2:
		b.bytes = b.bytes[:newLen+1]
		canonicalizeInPlace(b.bytes)
		return nil
	default:
		return &BoundaryError{Op: "truncate", Begin: newLen, End: newLen, Kind: kind, Len: len(b.bytes)}
	}
}

// MakeASCIIUpper converts ASCII letters to upper case in place. Other bytes,
// including every byte of a multi-byte sequence, are left as they are.
func (b *Buf) MakeASCIIUpper() {
	for i, c := range b.bytes {
		if c >= 'a' && c <= 'z' {
			b.bytes[i] = c - 32 // Convert to uppercase
		}
	}
}

// IntoString consumes the buffer and converts it to UTF-8 without copying.
//
// If the buffer holds surrogates it is not consumed: the returned
// *LossyConversionError carries it back unchanged.
func (b *Buf) IntoString() (string, error) {
	if pos, _, found := nextSurrogate(b.bytes, 0); found {
		return "", &LossyConversionError{Buf: b, Offset: pos}
	}
	return b.take(), nil
}

// IntoStringLossy consumes the buffer and converts it to UTF-8, replacing each
// surrogate with U+FFFD. Both are three bytes long, so this rewrites in place.
func (b *Buf) IntoStringLossy() string {
	pos := 0
	for {
		next, _, found := nextSurrogate(b.bytes, pos)
		if !found {
			return b.take()
		}
		pos = next + 3
		copy(b.bytes[next:pos], replacementChar)
	}
}

// take hands the bytes over as a string and leaves the buffer empty.
func (b *Buf) take() string {
	s := unsafeBytesToString(b.bytes)
	b.bytes = nil
	return s
}

// Freeze consumes the buffer and returns an immutable view that may be shared
// between goroutines. The buffer is left empty.
func (b *Buf) Freeze() *Frozen {
	bytes := slices.Clip(b.bytes)
	b.bytes = nil
	canonicalizeInPlace(bytes)
	return &Frozen{bytes: bytes}
}

func (b *Buf) Equal(other *Buf) bool {
	return b.AsSlice().Equal(other.AsSlice())
}

func (b *Buf) Compare(other *Buf) int {
	return b.AsSlice().Compare(other.AsSlice())
}

func (b *Buf) String() string {
	return b.AsSlice().String()
}

func (b *Buf) GoString() string {
	return b.AsSlice().GoString()
}

// MarshalBinary returns a copy of the WTF-8 bytes.
func (b *Buf) MarshalBinary() ([]byte, error) {
	return slices.Clone(b.bytes), nil
}

// UnmarshalBinary replaces the content with data after checking it is
// canonical WTF-8.
func (b *Buf) UnmarshalBinary(data []byte) error {
	if err := validate(data, false); err != nil {
		return err
	}
	b.bytes = append(b.bytes[:0], data...)
	return nil
}
