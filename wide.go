package wtf8

import "iter"

// EncodeWide yields the potentially ill-formed UTF-16 code units of a view.
// Create one with Wtf8.EncodeWide; a fresh iterator restarts from the beginning.
type EncodeWide struct {
	bytes []byte
	extra uint16 // buffered second half of a surrogate pair
}

// EncodeWide returns an iterator over the view's WTF-16 code units. This is
// lossless: FromWide on the collected units rebuilds an equal string.
func (v Wtf8) EncodeWide() *EncodeWide {
	return &EncodeWide{bytes: v.bytes}
}

// Next returns the next code unit, or false once the view is exhausted.
func (it *EncodeWide) Next() (uint16, bool) {
	if it.extra != 0 {
		cu := it.extra
		it.extra = 0
		return cu, true
	}
	if len(it.bytes) == 0 {
		return 0, false
	}

	b0 := it.bytes[0]
	if isContinuation(b0) || (b0 >= 0xf0 && len(it.bytes) == 3) {
		// split surrogate at an edge of the view
		cu := newThreeByteSeq(it.bytes).codeUnit()
		it.bytes = it.bytes[3:]
		return cu, true
	}

	cp, size := decodeCodePoint(it.bytes)
	it.bytes = it.bytes[size:]
	if cp < surrSelf {
		return uint16(cp), true
	}
	cp -= surrSelf
	it.extra = surr2 | uint16(cp&0x3ff)
	return surr1 | uint16(cp>>10), true
}

// SizeHint bounds the number of code units left. Every 3-byte sequence gives
// one unit, which is the densest case; every byte giving one unit is the
// loosest. A buffered second half counts toward both bounds.
func (it *EncodeWide) SizeHint() (lower, upper int) {
	n := len(it.bytes)
	lower, upper = (n+2)/3, n
	if it.extra != 0 {
		lower++
		upper++
	}
	return lower, upper
}

// Clone returns an independent iterator at the same position.
func (it *EncodeWide) Clone() *EncodeWide {
	c := *it
	return &c
}

// All drains the iterator as a range-over-func sequence.
func (it *EncodeWide) All() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for {
			cu, ok := it.Next()
			if !ok || !yield(cu) {
				return
			}
		}
	}
}

// WideUnits returns a sequence that restarts from the beginning of the view on
// every range loop.
func (v Wtf8) WideUnits() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for cu := range v.EncodeWide().All() {
			if !yield(cu) {
				return
			}
		}
	}
}

// ToWide returns the WTF-16 code units with ONE allocation for the result slice.
func (v Wtf8) ToWide() []uint16 {
	_, upper := v.EncodeWide().SizeHint()
	return v.AppendWide(make([]uint16, 0, upper))
}

// AppendWide appends the WTF-16 code units to dst and returns the extended
// slice. No allocation happens when dst has enough spare capacity; the caller
// owns the memory.
func (v Wtf8) AppendWide(dst []uint16) []uint16 {
	it := EncodeWide{bytes: v.bytes}
	for {
		cu, ok := it.Next()
		if !ok {
			return dst
		}
		dst = append(dst, cu)
	}
}

// EncodeWide returns an iterator over the buffer's WTF-16 code units.
func (b *Buf) EncodeWide() *EncodeWide {
	return b.AsSlice().EncodeWide()
}

// ToWide returns the buffer's WTF-16 code units.
func (b *Buf) ToWide() []uint16 {
	return b.AsSlice().ToWide()
}
