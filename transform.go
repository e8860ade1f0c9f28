package wtf8

import (
	"encoding/binary"

	"golang.org/x/text/transform"
)

// wideEncoder transcodes a WTF-8 byte stream into WTF-16 bytes.
type wideEncoder struct {
	transform.NopResetter
	order binary.ByteOrder
}

// NewWideEncoder returns a Transformer from WTF-8 to WTF-16 in the given byte
// order. Surrogate code points come out as single code units, so the
// conversion is lossless for every well-formed input. No BOM is written.
func NewWideEncoder(order binary.ByteOrder) transform.Transformer {
	return &wideEncoder{order: order}
}

func (e *wideEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		width, ok, short := sequenceLen(src[nSrc:])
		if !ok {
			if short && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			reason := "invalid byte sequence"
			if short {
				reason = "truncated sequence"
			}
			return nDst, nSrc, &ValidationError{Offset: nSrc, Reason: reason}
		}

		cp, _ := decodeCodePoint(src[nSrc : nSrc+width])
		if cp < surrSelf {
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			e.order.PutUint16(dst[nDst:], uint16(cp))
			nDst += 2
		} else {
			if nDst+4 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			cp -= surrSelf
			e.order.PutUint16(dst[nDst:], surr1|uint16(cp>>10))
			e.order.PutUint16(dst[nDst+2:], surr2|uint16(cp&0x3ff))
			nDst += 4
		}
		nSrc += width
	}
	return nDst, nSrc, nil
}

// wideDecoder transcodes WTF-16 bytes into canonical WTF-8.
type wideDecoder struct {
	transform.NopResetter
	order binary.ByteOrder
}

// NewWideDecoder returns a Transformer from WTF-16 in the given byte order to
// WTF-8. Surrogate pairs become 4-byte sequences and unpaired surrogates are
// kept as 3-byte sequences, so the output is always canonical WTF-8. An odd
// trailing byte at the end of the stream yields ErrTruncatedWide.
func NewWideDecoder(order binary.ByteOrder) transform.Transformer {
	return &wideDecoder{order: order}
}

func (d *wideDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var scratch [4]byte
	for nSrc < len(src) {
		if len(src)-nSrc < 2 {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, ErrTruncatedWide
		}

		cu := d.order.Uint16(src[nSrc:])
		consumed := 2
		cp := rune(cu)
		if isHighCodeUnit(cu) {
			if len(src)-nSrc < 4 && !atEOF {
				// the low half may be in the next chunk
				return nDst, nSrc, transform.ErrShortSrc
			}
			if len(src)-nSrc >= 4 {
				if next := d.order.Uint16(src[nSrc+2:]); isLowCodeUnit(next) {
					cp = (rune(cu)-surr1)<<10 | (rune(next) - surr2) + surrSelf
					consumed = 4
				}
			}
		}

		enc := appendCodePoint(scratch[:0], cp)
		if nDst+len(enc) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], enc)
		nSrc += consumed
	}
	return nDst, nSrc, nil
}
