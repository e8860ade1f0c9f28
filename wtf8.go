package wtf8

import (
	"fmt"
	"strconv"
	"strings"
)

const replacementChar = "�"

// Wtf8 is a borrowed, read-only view of well-formed WTF-8 data.
//
// A view may begin or end in the middle of a 4-byte sequence when it was cut
// at a FourByteSeq2 offset; such edges carry one half of a surrogate pair in
// split form. Comparison and hashing see through the split form.
type Wtf8 struct {
	bytes []byte
}

// ViewString returns a view of s. Since WTF-8 is a superset of UTF-8 this
// always succeeds and does not copy.
func ViewString(s string) Wtf8 {
	return Wtf8{bytes: unsafeStringToBytes(s)}
}

// ViewBytes checks b once and returns a view over it without copying. The
// caller must not modify b while the view is in use.
func ViewBytes(b []byte) (Wtf8, error) {
	if err := validate(b, true); err != nil {
		return Wtf8{}, err
	}
	return Wtf8{bytes: b}, nil
}

// viewUnchecked wraps bytes already known to be well-formed.
func viewUnchecked(b []byte) Wtf8 {
	return Wtf8{bytes: b}
}

// Bytes returns the underlying bytes. They must not be modified.
func (v Wtf8) Bytes() []byte {
	return v.bytes
}

// Len returns the length in WTF-8 bytes.
func (v Wtf8) Len() int {
	return len(v.bytes)
}

func (v Wtf8) IsEmpty() bool {
	return len(v.bytes) == 0
}

// ASCIIByteAt returns the byte at position if it is ASCII, or 0xFF otherwise.
// It panics if position is out of range.
func (v Wtf8) ASCIIByteAt(position int) byte {
	if b := v.bytes[position]; b <= 0x7f {
		return b
	}
	return 0xff
}

// AsString converts the view to UTF-8. It reports false if the view holds
// any surrogate.
func (v Wtf8) AsString() (string, bool) {
	if _, _, found := nextSurrogate(v.bytes, 0); found {
		return "", false
	}
	return string(v.bytes), true
}

// ToStringLossy converts the view to UTF-8, replacing every surrogate with
// U+FFFD.
func (v Wtf8) ToStringLossy() string {
	pos, _, found := nextSurrogate(v.bytes, 0)
	if !found {
		return string(v.bytes)
	}

	var sb strings.Builder
	sb.Grow(len(v.bytes))
	sb.Write(v.bytes[:pos])
	sb.WriteString(replacementChar)
	pos += 3
	for {
		next, _, found := nextSurrogate(v.bytes, pos)
		if !found {
			sb.Write(v.bytes[pos:])
			return sb.String()
		}
		sb.Write(v.bytes[pos:next])
		sb.WriteString(replacementChar)
		pos = next + 3
	}
}

// String formats the view for display: surrogates become U+FFFD.
func (v Wtf8) String() string {
	return v.ToStringLossy()
}

// GoString formats the view with double quotes, Go escapes for ordinary text
// and surrogates as \u{xxxx}, e.g. "a\u{d800}".
func (v Wtf8) GoString() string {
	var sb strings.Builder
	sb.WriteByte('"')
	pos := 0
	for {
		next, cu, found := nextSurrogate(v.bytes, pos)
		if !found {
			break
		}
		writeEscaped(&sb, v.bytes[pos:next])
		fmt.Fprintf(&sb, `\u{%x}`, cu)
		pos = next + 3
	}
	writeEscaped(&sb, v.bytes[pos:])
	sb.WriteByte('"')
	return sb.String()
}

func writeEscaped(sb *strings.Builder, utf8 []byte) {
	if len(utf8) == 0 {
		return
	}
	q := strconv.Quote(unsafeBytesToString(utf8))
	sb.WriteString(q[1 : len(q)-1])
}

// nextSurrogate finds the first surrogate at or after pos and returns its
// offset and WTF-16 code unit.
func nextSurrogate(b []byte, pos int) (int, uint16, bool) {
	for pos < len(b) {
		c := b[pos]
		switch {
		case c <= 0x7f:
			pos++
		case c <= 0xbf:
			// split low surrogate opening the view
			return pos, newThreeByteSeq(b[pos:]).codeUnit(), true
		case c <= 0xdf:
			pos += 2
		case c <= 0xef:
			if c == 0xed && b[pos+1] >= 0xa0 {
				return pos, newThreeByteSeq(b[pos:]).codeUnit(), true
			}
			pos += 3
		default:
			if len(b) == pos+3 {
				// split high surrogate closing the view
				return pos, newThreeByteSeq(b[pos:]).codeUnit(), true
			}
			pos += 4
		}
	}
	return 0, 0, false
}

// Equal reports whether both views hold the same code points once split
// surrogates are canonicalized.
func (v Wtf8) Equal(other Wtf8) bool {
	return canonicalize(v.bytes).equal(canonicalize(other.bytes))
}

// Compare orders views by their canonical form and returns -1, 0 or +1.
func (v Wtf8) Compare(other Wtf8) int {
	return canonicalize(v.bytes).compare(canonicalize(other.bytes))
}

// Slice returns the view of bytes [begin:end).
//
// An offset at the midpoint of a 4-byte sequence is legal: the result then
// starts or ends with that sequence's surrogate half in split form. Any other
// offset inside a sequence yields a *BoundaryError.
func (v Wtf8) Slice(begin, end int) (Wtf8, error) {
	if begin > end || begin < 0 || end > len(v.bytes) {
		return Wtf8{}, v.boundaryError(begin, end, OutOfBounds)
	}
	if begin == end {
		return Wtf8{bytes: v.bytes[begin:begin]}, nil
	}
	from, kind := adjustBegin(v.bytes, begin)
	if !kind.legal() {
		return Wtf8{}, v.boundaryError(begin, end, kind)
	}
	to, kind := adjustEnd(v.bytes, end)
	if !kind.legal() {
		return Wtf8{}, v.boundaryError(begin, end, kind)
	}
	return Wtf8{bytes: v.bytes[from:to]}, nil
}

// SliceFrom returns the view of bytes [begin:].
func (v Wtf8) SliceFrom(begin int) (Wtf8, error) {
	return v.Slice(begin, len(v.bytes))
}

// SliceTo returns the view of bytes [:end].
func (v Wtf8) SliceTo(end int) (Wtf8, error) {
	return v.Slice(0, end)
}

// MustSlice is like Slice but panics with the *BoundaryError. Offsets found
// by this package (Index, MatchIndices, ...) never make it panic.
func (v Wtf8) MustSlice(begin, end int) Wtf8 {
	s, err := v.Slice(begin, end)
	if err != nil {
		panic(err)
	}
	return s
}

func (v Wtf8) boundaryError(begin, end int, kind IndexType) error {
	return &BoundaryError{Op: "slice", Begin: begin, End: end, Kind: kind, Len: len(v.bytes)}
}

// adjustBegin moves a FourByteSeq2 start back onto the split low surrogate.
func adjustBegin(b []byte, begin int) (int, IndexType) {
	kind := classifyIndex(b, begin)
	if kind == FourByteSeq2 {
		begin--
	}
	return begin, kind
}

// adjustEnd moves a FourByteSeq2 end forward past the split high surrogate.
func adjustEnd(b []byte, end int) (int, IndexType) {
	kind := classifyIndex(b, end)
	if kind == FourByteSeq2 {
		end++
	}
	return end, kind
}

// sliceTrusted slices at offsets produced by this package.
func sliceTrusted(b []byte, begin, end int) Wtf8 {
	if begin == end {
		return Wtf8{bytes: b[begin:begin]}
	}
	begin, _ = adjustBegin(b, begin)
	end, _ = adjustEnd(b, end)
	return Wtf8{bytes: b[begin:end]}
}

// ToBuf copies the view into a new canonical buffer.
func (v Wtf8) ToBuf() *Buf {
	buf := WithCapacity(len(v.bytes))
	buf.PushWtf8(v)
	return buf
}
