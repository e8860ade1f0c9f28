package wtf8

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCodePointBoundary is matched by every *BoundaryError.
	ErrNotCodePointBoundary = errors.New("wtf8: not a code point boundary")
	// ErrUnpairedSurrogate is matched by *LossyConversionError.
	ErrUnpairedSurrogate = errors.New("wtf8: unpaired surrogate")
	// ErrInvalidWTF8 is matched by *ValidationError.
	ErrInvalidWTF8 = errors.New("wtf8: invalid WTF-8")
	// ErrTruncatedWide reports a WTF-16 byte stream with an odd byte count.
	ErrTruncatedWide = errors.New("wtf8: truncated WTF-16 code unit")
)

// BoundaryError reports a slice or truncate at an illegal offset.
type BoundaryError struct {
	Op    string // "slice" or "truncate"
	Begin int
	End   int       // equal to Begin for single-offset operations
	Kind  IndexType // classification of the first offending offset
	Len   int
}

func (e *BoundaryError) Error() string {
	if e.Op == "truncate" {
		if e.Kind == OutOfBounds {
			return fmt.Sprintf("wtf8: truncate to %d beyond length %d", e.Begin, e.Len)
		}
		return fmt.Sprintf("wtf8: not a code point boundary at index %d (%s)", e.Begin, e.Kind)
	}
	if e.Begin > e.End {
		return fmt.Sprintf("wtf8: slice bounds out of range [%d:%d]", e.Begin, e.End)
	}
	return fmt.Sprintf("wtf8: index %d and/or %d do not lie on a code point boundary (%s, length %d)",
		e.Begin, e.End, e.Kind, e.Len)
}

func (e *BoundaryError) Unwrap() error {
	return ErrNotCodePointBoundary
}

// LossyConversionError is returned when a buffer holding surrogates is
// converted to UTF-8 without substitution. Buf hands the original buffer back
// unchanged.
type LossyConversionError struct {
	Buf    *Buf
	Offset int // byte offset of the first surrogate
}

func (e *LossyConversionError) Error() string {
	return fmt.Sprintf("wtf8: surrogate at byte %d prevents lossless UTF-8 conversion", e.Offset)
}

func (e *LossyConversionError) Unwrap() error {
	return ErrUnpairedSurrogate
}

// ValidationError reports the first offset at which input is not well-formed.
type ValidationError struct {
	Offset int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("wtf8: invalid WTF-8 at byte %d: %s", e.Offset, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidWTF8
}
