package wtf8

import "fmt"

// IndexType is the kind of a byte offset in a WTF-8 view.
type IndexType uint8

const (
	// CharBoundary is the boundary of a WTF-8 character sequence.
	CharBoundary IndexType = iota
	// FourByteSeq1 is byte 1 of a 4-byte sequence.
	FourByteSeq1
	// FourByteSeq2 is byte 2 of a 4-byte sequence, the only legal interior
	// slice point: both halves decompose into surrogate encodings.
	FourByteSeq2
	// FourByteSeq3 is byte 3 of a 4-byte sequence.
	FourByteSeq3
	// Interior points inside a 2- or 3-byte sequence.
	Interior
	// OutOfBounds lies past the end of the view.
	OutOfBounds
)

func (t IndexType) String() string {
	switch t {
	case CharBoundary:
		return "CharBoundary"
	case FourByteSeq1:
		return "FourByteSeq1"
	case FourByteSeq2:
		return "FourByteSeq2"
	case FourByteSeq3:
		return "FourByteSeq3"
	case Interior:
		return "Interior"
	case OutOfBounds:
		return "OutOfBounds"
	}
	return fmt.Sprintf("IndexType(%d)", uint8(t))
}

// legal reports whether slicing or truncating at an offset of this kind is allowed.
func (t IndexType) legal() bool {
	return t == CharBoundary || t == FourByteSeq2
}

// classifyIndex classifies offset index in b.
//
// A continuation byte is attributed to a 4-byte sequence only when a lead
// byte >= 0xF0 sits 1..3 bytes back and the whole sequence would fit in b.
// A lead byte closer to the end than that leaves the offset Interior.
func classifyIndex(b []byte, index int) IndexType {
	n := len(b)
	if index == 0 || index == n {
		return CharBoundary
	}
	if index < 0 || index > n {
		return OutOfBounds
	}
	if !isContinuation(b[index]) {
		return CharBoundary
	}

	maxOffset := min(index, 3)
	minOffset := max(index+3-n, 0)
	for offset := minOffset; offset < maxOffset; offset++ {
		d := offset + 1
		if b[index-d] >= 0xf0 {
			return IndexType(d)
		}
	}
	return Interior
}
